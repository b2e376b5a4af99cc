package contact

import (
	"slices"
	"strings"
)

// Record is one contact: a Name plus an insertion-ordered list of phones.
// Duplicate phones are allowed.
type Record struct {
	name   Name
	phones []Phone
}

// NewRecord creates a Record with no phones for the given raw name.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the record's name.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the record's phones in insertion order.
func (r *Record) Phones() []Phone {
	return slices.Clone(r.phones)
}

// AddPhone validates raw and appends it.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to raw. Missing phones are ignored.
func (r *Record) RemovePhone(raw string) {
	i := r.indexOf(raw)
	if i < 0 {
		return
	}
	r.phones = slices.Delete(r.phones, i, i+1)
}

// EditPhone removes oldRaw and appends newRaw. If oldRaw is not present
// the removal is a no-op and newRaw is still appended.
// newRaw is validated first, so an invalid replacement leaves r unchanged.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	p, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	r.RemovePhone(oldRaw)
	r.phones = append(r.phones, p)
	return nil
}

// FindPhone returns the first phone equal to raw.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	i := r.indexOf(raw)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

func (r *Record) indexOf(raw string) int {
	return slices.IndexFunc(r.phones, func(p Phone) bool {
		return p.String() == raw
	})
}

// String renders the record as "Contact name: <name>, phones: <p1>; <p2>".
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	return "Contact name: " + r.name.String() + ", phones: " + strings.Join(phones, "; ")
}
