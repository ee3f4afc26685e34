package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrRequestCanceled = errors.New("request canceled")

type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

type NetworkTimeoutError struct {
	Op      string
	Timeout time.Duration
}

func (e *NetworkTimeoutError) Error() string {
	return fmt.Sprintf("%s: request timed out after %s", e.Op, e.Timeout)
}

// ServerError is a non-2xx reply. Message is the backend's own text and is shown to
// the user as is.
type ServerError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}

func newServerError(op string, status int, body []byte) *ServerError {
	return &ServerError{
		Op:         op,
		StatusCode: status,
		Message:    errorMessage(body, fmt.Sprintf("HTTP error! status: %d", status)),
	}
}

func errorMessage(body []byte, fallback string) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") && len(text) < 256 {
		return text
	}
	return fallback
}

func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

func IsTimeout(err error) bool {
	var timeoutErr *NetworkTimeoutError
	return errors.As(err, &timeoutErr)
}

func IsServer(err error) bool {
	var serverErr *ServerError
	return errors.As(err, &serverErr)
}

func IsCanceled(err error) bool {
	return errors.Is(err, ErrRequestCanceled)
}

func Message(err error) string {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
