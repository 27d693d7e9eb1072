package types

import "fmt"

// NotFoundError reports that a provider has no entity for the query.
type NotFoundError struct {
	Kind  string // what was looked up, e.g. "wikipedia article", "ticker symbol"
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found for %q", e.Kind, e.Query)
}

// TransientError reports a network, timeout or auth failure against a provider.
// Err may be nil when the failure is detected before any call is made.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// ParseError reports model output that could not be reduced to a competitor list.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse model output: %s", e.Reason)
}
