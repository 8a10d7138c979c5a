package app

import (
	"errors"
	"testing"
)

func TestOperationErrorMessage(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{"op only", NewOperationError("snapshot", "", nil), "snapshot"},
		{"with target", NewOperationError("load", "abc", cause), "load abc: boom"},
		{"with context", NewOperationError("load", "abc", cause).WithContext("sketch"), "load abc (sketch): boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperationErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewOperationError("save", "x", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}

	var nilErr *OperationError
	if nilErr.WithContext("ctx") != nil {
		t.Error("WithContext on nil should return nil")
	}
	if nilErr.Unwrap() != nil || nilErr.Error() != "" {
		t.Error("nil OperationError should be empty")
	}
}

func TestRecoveredPanicError(t *testing.T) {
	err := &RecoveredPanicError{Value: 42}
	if err.Error() != "panic: 42" {
		t.Errorf("Error() = %q, want panic: 42", err.Error())
	}
}
