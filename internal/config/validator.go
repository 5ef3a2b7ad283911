package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "api.base_url")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateAPI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateAPI validates the APIConfig
func (c *Config) validateAPI() []ValidationError {
	var errors []ValidationError

	if c.API.BaseURL == "" {
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "cannot be empty",
		})
	} else if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "must be an absolute URL like https://eval.ai/api",
		})
	}

	if c.API.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "api.timeout_seconds",
			Value:   c.API.TimeoutSeconds,
			Message: "must be positive",
		})
	}

	// A stuck request should not pin the UI forever
	const maxTimeoutSeconds = 600
	if c.API.TimeoutSeconds > maxTimeoutSeconds {
		errors = append(errors, ValidationError{
			Field:   "api.timeout_seconds",
			Value:   c.API.TimeoutSeconds,
			Message: fmt.Sprintf("exceeds maximum of %d seconds", maxTimeoutSeconds),
		})
	}

	if c.API.PageSize <= 0 {
		errors = append(errors, ValidationError{
			Field:   "api.page_size",
			Value:   c.API.PageSize,
			Message: "must be positive",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
