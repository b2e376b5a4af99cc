// Package contact holds the validated contact model: Name and Phone value
// objects, the Record that groups them, and the AddressBook container.
package contact

import (
	"errors"
	"fmt"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrInvalid  = errors.New("contact: invalid value")
	ErrNotFound = errors.New("contact: record not found")
)

// PhoneLength is the exact number of digits a Phone must carry.
const PhoneLength = 10

// ValidationError reports why a raw value was rejected. It matches ErrInvalid.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "contact: " + e.Reason
}

// Is reports ErrInvalid so callers can match on the sentinel.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// validated is a string that passed its predicate at construction.
// The zero value is never handed out by a constructor.
type validated[T ~string] struct {
	value T
}

func (v validated[T]) String() string { return string(v.value) }

// newValidated returns raw wrapped as a validated value, or a
// *ValidationError carrying reason when check rejects it.
func newValidated[T ~string](raw string, check func(string) bool, reason string) (validated[T], error) {
	if !check(raw) {
		return validated[T]{}, &ValidationError{Reason: reason}
	}
	return validated[T]{value: T(raw)}, nil
}

type nameValue string

type phoneValue string

// Name is a non-empty contact name.
type Name struct {
	validated[nameValue]
}

// NewName validates raw and returns it as a Name.
func NewName(raw string) (Name, error) {
	v, err := newValidated[nameValue](raw, isNonEmpty, "Name cannot be empty.")
	if err != nil {
		return Name{}, err
	}
	return Name{v}, nil
}

// Phone is a phone number of exactly PhoneLength decimal digits.
type Phone struct {
	validated[phoneValue]
}

// NewPhone validates raw and returns it as a Phone.
func NewPhone(raw string) (Phone, error) {
	v, err := newValidated[phoneValue](raw, isPhoneNumber, fmt.Sprintf("Phone number must be %d digits.", PhoneLength))
	if err != nil {
		return Phone{}, err
	}
	return Phone{v}, nil
}

func isNonEmpty(s string) bool {
	return s != ""
}

// isPhoneNumber reports whether s is exactly PhoneLength ASCII digits.
func isPhoneNumber(s string) bool {
	if len(s) != PhoneLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
