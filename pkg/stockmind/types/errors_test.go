package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindsMatchThroughWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := fmt.Errorf("stage failed: %w", &TransientError{Op: "alpha vantage request", Err: cause})

	var te *TransientError
	if !errors.As(wrapped, &te) {
		t.Fatal("expected TransientError to match through wrapping")
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("expected cause to be reachable via Unwrap")
	}

	var nf *NotFoundError
	if errors.As(wrapped, &nf) {
		t.Fatal("TransientError must not match NotFoundError")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", &NotFoundError{Kind: "ticker symbol", Query: "Acme"}, `ticker symbol not found for "Acme"`},
		{"transient bare", &TransientError{Op: "gemini: API key is missing"}, "gemini: API key is missing"},
		{"transient wrapped", &TransientError{Op: "request", Err: errors.New("timeout")}, "request: timeout"},
		{"parse", &ParseError{Reason: "no competitor names in model output"}, "parse model output: no competitor names in model output"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}
