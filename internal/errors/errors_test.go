package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestOperationError(t *testing.T) {
	tests := []struct {
		name string
		op   string
		err  error
		want string
	}{
		{
			name: "with underlying error",
			op:   "clone",
			err:  fmt.Errorf("network unreachable"),
			want: "clone: network unreachable",
		},
		{
			name: "without underlying error",
			op:   "commit",
			err:  nil,
			want: "commit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.op, tt.err)
			if got := e.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(e, New(tt.op, nil)) {
				t.Error("Is() should match on operation name")
			}
		})
	}
}

func TestOperationErrorUnwrap(t *testing.T) {
	underlying := fmt.Errorf("wrapped: %w", ErrMissingParameter)
	e := New("cherry-pick", underlying)

	if !errors.Is(e, ErrMissingParameter) {
		t.Error("expected ErrMissingParameter to be reachable through Unwrap")
	}
}

func TestCommandError(t *testing.T) {
	e := NewCommand(`git -C "/repo" push`, "", "fatal: no remote", fmt.Errorf("exit status 128"))

	msg := e.Error()
	if msg == "" {
		t.Fatal("Error() returned empty string")
	}
	for _, part := range []string{`git -C "/repo" push`, "fatal: no remote", "exit status 128"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Error() = %q, missing %q", msg, part)
		}
	}
}

func TestItemErrorAnnotation(t *testing.T) {
	e := NewItem(2, New("push", ErrUnsupportedOperation))

	if got, want := e.Error(), "item 2: push: unsupported operation"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(e, ErrUnsupportedOperation) {
		t.Error("expected sentinel to be reachable through the item wrapper")
	}

	var item *ItemError
	if !errors.As(e, &item) || item.Index != 2 {
		t.Error("expected As() to recover the item index")
	}
}
