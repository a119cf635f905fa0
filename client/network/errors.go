package network

import "fmt"

// ErrTransport is returned when a request fails or the service rejects it.
type ErrTransport struct {
	// Status is the HTTP status code, or 0 when no response was received.
	Status int
	// Message is the reason reported by the service, or a description of the failure.
	Message string
}

func (e *ErrTransport) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func IsTransport(err error) bool {
	_, ok := err.(*ErrTransport)
	return ok
}

// statusFallback is the message used when the service returns no error body.
func statusFallback(status int) string {
	return fmt.Sprintf("HTTP error! status: %d", status)
}
