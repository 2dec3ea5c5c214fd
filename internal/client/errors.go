package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Code    string
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	return e.Message
}

// NetworkError means the server could not be reached at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "could not reach server"
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// LoginErrorMessage is the text shown for a failed sign-in. Bad passwords
// and malformed input share one message; unknown accounts get their own.
func LoginErrorMessage(err error) string {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Error()
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return "Login failed. Please try again."
	}
	switch apiErr.Status {
	case http.StatusNotFound:
		return "User with this email does not exist."
	case http.StatusBadRequest, http.StatusUnauthorized:
		return "Invalid email or password."
	default:
		return apiErr.Message
	}
}

// parseError reads an error body best-effort. It understands
// {error_code, message, errors} as well as {title, errors: {field: [..]}}.
func parseError(status int, body []byte) *APIError {
	out := &APIError{Status: status}

	var raw struct {
		Code    string          `json:"error_code"`
		Message string          `json:"message"`
		Title   string          `json:"title"`
		Errors  json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &raw); err == nil {
		out.Code = raw.Code
		out.Message = strings.TrimSpace(raw.Message)
		if out.Message == "" {
			out.Message = strings.TrimSpace(raw.Title)
		}
		out.Fields = parseFields(raw.Errors)
	}

	if out.Message == "" && len(out.Fields) > 0 {
		keys := make([]string, 0, len(out.Fields))
		for k := range out.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out.Message = fmt.Sprintf("%s %s", keys[0], out.Fields[keys[0]])
	}
	if out.Message == "" {
		out.Message = fmt.Sprintf("Request failed with status %d.", status)
	}
	return out
}

func parseFields(raw json.RawMessage) map[string]string {
	if len(raw) == 0 {
		return nil
	}

	var flat map[string]string
	if err := json.Unmarshal(raw, &flat); err == nil {
		return flat
	}

	var lists map[string][]string
	if err := json.Unmarshal(raw, &lists); err == nil {
		out := make(map[string]string, len(lists))
		for k, v := range lists {
			out[k] = strings.Join(v, " ")
		}
		return out
	}
	return nil
}
