package errors

import "fmt"

// ─── types ────────────────────────────────────────────────────────────────────

// InputError is a request-level validation failure. It is always returned
// before any probe is sent.
type InputError struct {
	Field   string
	Message string
}

// NetworkError is a request-level network failure, such as a host that
// cannot be resolved. Per-port connect failures never produce one.
type NetworkError struct {
	Target  string
	Message string
	Err     error
}

// ─── error interfaces ─────────────────────────────────────────────────────────

func (e *InputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("input error: %s", e.Message)
}

func (e *NetworkError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("network error [%s]: %s", e.Target, e.Message)
	}
	return fmt.Sprintf("network error: %s", e.Message)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ─── constructors ─────────────────────────────────────────────────────────────

func Input(field, msg string) error {
	return &InputError{Field: field, Message: msg}
}

func Inputf(field, format string, args ...any) error {
	return &InputError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func Network(target, msg string, err error) error {
	return &NetworkError{Target: target, Message: msg, Err: err}
}
