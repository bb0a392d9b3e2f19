package eureka

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

const serverDownMessage = "The server may be down."

// RemoteError is a transport or server failure of an upstream call.
// Status is zero when no response was received.
type RemoteError struct {
	Status  int
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("upstream request failed: %s", e.Message)
	}
	return fmt.Sprintf("upstream request failed (%d): %s", e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var rerr *RemoteError
	if errors.As(err, &rerr) {
		return rerr.Status == http.StatusNotFound
	}
	return false
}

// AggregateLookupFailure is returned when one lookup of a joined batch fails.
type AggregateLookupFailure struct {
	Key string
	Err error
}

func (e *AggregateLookupFailure) Error() string {
	return fmt.Sprintf("lookup of %s failed: %v", e.Key, e.Err)
}

func (e *AggregateLookupFailure) Unwrap() error {
	return e.Err
}

// newRemoteError derives the message from the error body, then the status
// text, then a generic fallback.
func newRemoteError(resp *http.Response) *RemoteError {
	msg := ""
	if resp.Body != nil {
		data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if err == nil {
			msg = extractMessage(data)
		}
	}
	if msg == "" {
		msg = statusText(resp)
	}
	if msg == "" {
		msg = serverDownMessage
	}
	return &RemoteError{Status: resp.StatusCode, Message: msg}
}

func extractMessage(data []byte) string {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return trimmed
	}
	if m := strings.TrimSpace(payload.Message); m != "" {
		return m
	}
	if m := strings.TrimSpace(payload.Error); m != "" {
		return m
	}
	return trimmed
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
