package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Error is an error response from the API. It carries the HTTP status, the
// server's detail message when one was provided, and any per-field
// validation messages (e.g. {"team_name": ["A team with this name already
// exists!"]}).
type Error struct {
	StatusCode int
	Detail     string
	Fields     map[string][]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// FieldError returns the first validation message recorded for the given
// field, or "" when the field has none.
func (e *Error) FieldError(field string) string {
	msgs := e.Fields[field]
	if len(msgs) == 0 {
		return ""
	}
	return msgs[0]
}

// IsPermissionDenied reports whether err is an API error with an
// authentication or authorization status.
func IsPermissionDenied(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// ErrorDetail returns the server's detail message for err, falling back to
// err.Error() for non-API errors.
func ErrorDetail(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return err.Error()
}

// decodeError builds an *Error from a non-2xx response body. The API uses
// three shapes: {"detail": "..."}, {"error": "..."} and a map of field name
// to a list of validation messages.
func decodeError(statusCode int, body []byte) *Error {
	apiErr := &Error{StatusCode: statusCode}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		apiErr.Detail = strings.TrimSpace(string(body))
		return apiErr
	}

	for key, val := range raw {
		var msg string
		if err := json.Unmarshal(val, &msg); err == nil {
			if key == "detail" || key == "error" {
				apiErr.Detail = msg
			} else {
				if apiErr.Fields == nil {
					apiErr.Fields = make(map[string][]string)
				}
				apiErr.Fields[key] = []string{msg}
			}
			continue
		}

		var msgs []string
		if err := json.Unmarshal(val, &msgs); err == nil {
			if apiErr.Fields == nil {
				apiErr.Fields = make(map[string][]string)
			}
			apiErr.Fields[key] = msgs
		}
	}

	return apiErr
}
