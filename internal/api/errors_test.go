package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestDecodeError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantDetail string
		wantField  string
		wantMsg    string
	}{
		{
			name:       "detail shape",
			statusCode: http.StatusForbidden,
			body:       `{"detail": "Authentication credentials were not provided."}`,
			wantDetail: "Authentication credentials were not provided.",
		},
		{
			name:       "error shape",
			statusCode: http.StatusBadRequest,
			body:       `{"error": "Something went wrong"}`,
			wantDetail: "Something went wrong",
		},
		{
			name:       "field errors",
			statusCode: http.StatusBadRequest,
			body:       `{"team_name": ["This field may not be blank.", "too short"]}`,
			wantField:  "team_name",
			wantMsg:    "This field may not be blank.",
		},
		{
			name:       "single string field",
			statusCode: http.StatusBadRequest,
			body:       `{"email": "Enter a valid email address."}`,
			wantField:  "email",
			wantMsg:    "Enter a valid email address.",
		},
		{
			name:       "non-JSON body",
			statusCode: http.StatusBadGateway,
			body:       "upstream unavailable",
			wantDetail: "upstream unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := decodeError(tt.statusCode, []byte(tt.body))

			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, apiErr.StatusCode)
			}
			if apiErr.Detail != tt.wantDetail {
				t.Errorf("expected detail %q, got %q", tt.wantDetail, apiErr.Detail)
			}
			if tt.wantField != "" {
				if got := apiErr.FieldError(tt.wantField); got != tt.wantMsg {
					t.Errorf("expected field message %q, got %q", tt.wantMsg, got)
				}
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "detail wins",
			err:  &Error{StatusCode: 400, Detail: "bad request"},
			want: "bad request",
		},
		{
			name: "field errors joined",
			err:  &Error{StatusCode: 400, Fields: map[string][]string{"team_name": {"required"}}},
			want: "team_name: required",
		},
		{
			name: "status fallback",
			err:  &Error{StatusCode: 500},
			want: "request failed with status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestIsPermissionDenied(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unauthorized", &Error{StatusCode: http.StatusUnauthorized}, true},
		{"forbidden", &Error{StatusCode: http.StatusForbidden}, true},
		{"bad request", &Error{StatusCode: http.StatusBadRequest}, false},
		{"wrapped forbidden", fmt.Errorf("list teams: %w", &Error{StatusCode: http.StatusForbidden}), true},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPermissionDenied(tt.err); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFieldError_Missing(t *testing.T) {
	apiErr := &Error{StatusCode: 400}
	if got := apiErr.FieldError("team_name"); got != "" {
		t.Errorf("expected empty string for missing field, got %q", got)
	}
}
