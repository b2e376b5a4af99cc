package contact

import (
	"errors"
	"strings"
	"testing"
)

// phoneValues returns the raw strings of r's phones.
func phoneValues(r *Record) []string {
	phones := r.Phones()
	out := make([]string, len(phones))
	for i, p := range phones {
		out[i] = p.String()
	}
	return out
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func newTestRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	if err != nil {
		t.Fatalf("NewRecord(%q) error = %v", name, err)
	}
	for _, p := range phones {
		if err := r.AddPhone(p); err != nil {
			t.Fatalf("AddPhone(%q) error = %v", p, err)
		}
	}
	return r
}

func TestNewRecord_EmptyName(t *testing.T) {
	_, err := NewRecord("")
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("NewRecord(\"\") error = %v, want ErrInvalid", err)
	}
}

func TestRecord_AddPhone(t *testing.T) {
	r := newTestRecord(t, "Jane", "9876543210")

	if err := r.AddPhone("2233445566"); err != nil {
		t.Fatalf("AddPhone() error = %v", err)
	}
	got := phoneValues(r)
	want := []string{"9876543210", "2233445566"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("phones = %v, want %v", got, want)
	}
}

func TestRecord_AddPhone_Invalid(t *testing.T) {
	r := newTestRecord(t, "Jane")

	if err := r.AddPhone("12345"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("AddPhone(short) error = %v, want ErrInvalid", err)
	}
	if len(r.Phones()) != 0 {
		t.Errorf("invalid phone should not be stored, got %v", phoneValues(r))
	}
}

func TestRecord_AddPhone_AllowsDuplicates(t *testing.T) {
	r := newTestRecord(t, "Jane", "1112223333", "1112223333")
	if n := len(r.Phones()); n != 2 {
		t.Errorf("len(phones) = %d, want 2", n)
	}
}

func TestRecord_RemovePhone(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890", "5555555555")

	r.RemovePhone("1234567890")

	got := phoneValues(r)
	if contains(got, "1234567890") {
		t.Errorf("phones = %v, removed phone still present", got)
	}
	if !contains(got, "5555555555") {
		t.Errorf("phones = %v, other phone should remain", got)
	}
}

func TestRecord_RemovePhone_FirstMatchOnly(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890", "5555555555", "1234567890")

	r.RemovePhone("1234567890")

	got := strings.Join(phoneValues(r), ",")
	if got != "5555555555,1234567890" {
		t.Errorf("phones = %s, want 5555555555,1234567890", got)
	}
}

func TestRecord_RemovePhone_MissingIsNoop(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890")

	r.RemovePhone("0000000000")

	if n := len(r.Phones()); n != 1 {
		t.Errorf("len(phones) = %d, want 1", n)
	}
}

func TestRecord_EditPhone(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890", "5555555555")

	if err := r.EditPhone("1234567890", "5554444666"); err != nil {
		t.Fatalf("EditPhone() error = %v", err)
	}

	got := phoneValues(r)
	if !contains(got, "5554444666") {
		t.Errorf("phones = %v, want new phone present", got)
	}
	if contains(got, "1234567890") {
		t.Errorf("phones = %v, want old phone gone", got)
	}
}

func TestRecord_EditPhone_MissingOldAppends(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890")

	if err := r.EditPhone("0000000000", "5554444666"); err != nil {
		t.Fatalf("EditPhone() error = %v", err)
	}

	got := strings.Join(phoneValues(r), ",")
	if got != "1234567890,5554444666" {
		t.Errorf("phones = %s, want 1234567890,5554444666", got)
	}
}

func TestRecord_EditPhone_InvalidNewLeavesRecord(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890")

	if err := r.EditPhone("1234567890", "bad"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("EditPhone(invalid) error = %v, want ErrInvalid", err)
	}

	got := strings.Join(phoneValues(r), ",")
	if got != "1234567890" {
		t.Errorf("phones = %s, want unchanged 1234567890", got)
	}
}

func TestRecord_FindPhone(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890", "5555555555")

	p, ok := r.FindPhone("5555555555")
	if !ok {
		t.Fatal("FindPhone() should find existing phone")
	}
	if p.String() != "5555555555" {
		t.Errorf("FindPhone() = %q, want %q", p.String(), "5555555555")
	}

	if _, ok := r.FindPhone("0000000000"); ok {
		t.Error("FindPhone() should report missing phone as not found")
	}
}

func TestRecord_PhonesReturnsCopy(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890")

	phones := r.Phones()
	phones[0], _ = NewPhone("0000000000")

	if got := phoneValues(r)[0]; got != "1234567890" {
		t.Errorf("mutating Phones() result changed record: %q", got)
	}
}

func TestRecord_String(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890", "5555555555")

	want := "Contact name: John, phones: 1234567890; 5555555555"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
