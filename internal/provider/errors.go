package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderNotFound is returned when a provider is not registered.
	ErrProviderNotFound = errors.New("provider not found")
	// ErrNotFound is a generic "entity does not exist" error. Providers and
	// test doubles may wrap it; IsNotFound implementations should accept it.
	ErrNotFound = errors.New("not found")
)

// ConnectError wraps provider connection failures with actionable guidance.
type ConnectError struct {
	Provider string
	Cause    error
	Hint     string
}

func (e *ConnectError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("connect %s: %v\n\n%s", e.Provider, e.Cause, e.Hint)
	}
	return fmt.Sprintf("connect %s: %v", e.Provider, e.Cause)
}

func (e *ConnectError) Unwrap() error {
	return e.Cause
}
