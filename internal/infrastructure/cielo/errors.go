package cielo

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorDetail is one entry of the error array the API returns on failures.
type ErrorDetail struct {
	Code    int    `json:"Code"`
	Message string `json:"Message"`
}

type APIError struct {
	StatusCode int
	Details    []ErrorDetail
	// Body is the raw response when it was not an error array.
	Body string
}

func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		if e.Body != "" {
			return fmt.Sprintf("cielo returned status %d: %s", e.StatusCode, e.Body)
		}
		return fmt.Sprintf("cielo returned status %d", e.StatusCode)
	}

	msgs := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		msgs = append(msgs, fmt.Sprintf("[%d] %s", d.Code, d.Message))
	}
	return fmt.Sprintf("cielo error %s (status: %d)", strings.Join(msgs, "; "), e.StatusCode)
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	if err := json.Unmarshal(body, &apiErr.Details); err != nil || len(apiErr.Details) == 0 {
		apiErr.Details = nil
		apiErr.Body = strings.TrimSpace(string(body))
	}
	return apiErr
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
