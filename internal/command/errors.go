package command

import (
	"errors"
	"fmt"

	"github.com/smileynet/assistbot/internal/contact"
)

// Kind classifies a dispatch error for presentation.
type Kind int

const (
	KindNone Kind = iota
	KindUnknownCommand
	KindInvalidArgs
	KindNotFound
	KindEmpty
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUnknownCommand:
		return "unknown-command"
	case KindInvalidArgs:
		return "invalid-args"
	case KindNotFound:
		return "not-found"
	case KindEmpty:
		return "empty"
	default:
		return "unexpected"
	}
}

// Sentinel errors for caller-checkable conditions.
var (
	ErrNotFound   = errors.New("command: contact not found")
	ErrNoContacts = errors.New("command: no contacts available")
)

// UnknownCommandError indicates the first token of a line is not registered.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command '%s'", e.Name)
}

// ArgError indicates wrong arity or an argument that failed validation.
// Usage is the one-line usage hint for the command.
type ArgError struct {
	Usage string
	Err   error // Validation failure, nil for arity mismatches.
}

func (e *ArgError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s)", e.Err, e.Usage)
	}
	return e.Usage
}

func (e *ArgError) Unwrap() error {
	return e.Err
}

// NotFoundError indicates a command referenced a name absent from the contacts.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Name '%s' not found.", e.Name)
}

// Is reports ErrNotFound so callers can match on the sentinel.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// PanicError wraps a value recovered from a panicking handler.
type PanicError struct {
	Command string
	Value   any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("command %q panicked: %v", e.Command, e.Value)
}

// KindOf classifies err. Nil maps to KindNone and anything unrecognized
// maps to KindUnexpected.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var uce *UnknownCommandError
	if errors.As(err, &uce) {
		return KindUnknownCommand
	}
	var ae *ArgError
	if errors.As(err, &ae) || errors.Is(err, contact.ErrInvalid) {
		return KindInvalidArgs
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, contact.ErrNotFound) {
		return KindNotFound
	}
	if errors.Is(err, ErrNoContacts) {
		return KindEmpty
	}
	return KindUnexpected
}

// Detail returns the user-facing description of err, without any prefix
// the package adds for logging.
func Detail(err error) string {
	var uce *UnknownCommandError
	if errors.As(err, &uce) {
		return fmt.Sprintf("Unknown command '%s'", uce.Name)
	}
	var ae *ArgError
	if errors.As(err, &ae) {
		if ae.Err != nil {
			var ve *contact.ValidationError
			if errors.As(ae.Err, &ve) {
				return ve.Reason + "\n" + ae.Usage
			}
		}
		return ae.Usage
	}
	var nfe *NotFoundError
	if errors.As(err, &nfe) {
		return nfe.Error()
	}
	if errors.Is(err, ErrNoContacts) {
		return "No contacts available."
	}
	return err.Error()
}
