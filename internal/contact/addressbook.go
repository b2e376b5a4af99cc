package contact

import (
	"fmt"
	"slices"
	"strings"
)

// AddressBook maps contact names to Records. At most one Record is kept
// per name; later inserts overwrite earlier ones in place.
// It is not safe for concurrent use.
type AddressBook struct {
	records map[string]*Record
	order   []string // Names in first-insertion order.
}

// NewAddressBook creates an empty AddressBook.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord inserts r keyed by its name, replacing any existing record.
// An overwritten name keeps its original position.
func (b *AddressBook) AddRecord(r *Record) {
	name := r.Name().String()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = r
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name.
// Returns an error wrapping ErrNotFound if there is none.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })
	return nil
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, len(b.order))
	for i, name := range b.order {
		out[i] = b.records[name]
	}
	return out
}

// String renders one record per line in insertion order.
func (b *AddressBook) String() string {
	lines := make([]string, 0, len(b.records))
	for _, r := range b.Records() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}
