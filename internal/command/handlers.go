package command

import (
	"github.com/smileynet/assistbot/internal/contact"
)

// Contacts is the flat name to phone store driven by the interactive
// session. One phone per name; adding a known name never overwrites.
// Names are listed in the order they were first added.
type Contacts struct {
	phones map[string]string
	order  []string
}

// NewContacts creates an empty Contacts.
func NewContacts() *Contacts {
	return &Contacts{phones: make(map[string]string)}
}

// Set stores phone under name. A new name goes to the end of the listing;
// a known name keeps its position.
func (c *Contacts) Set(name, phone string) {
	if _, ok := c.phones[name]; !ok {
		c.order = append(c.order, name)
	}
	c.phones[name] = phone
}

// Lookup returns the phone stored under name.
func (c *Contacts) Lookup(name string) (string, bool) {
	p, ok := c.phones[name]
	return p, ok
}

// Len returns the number of contacts.
func (c *Contacts) Len() int {
	return len(c.order)
}

// Entries returns every contact in insertion order.
func (c *Contacts) Entries() []Entry {
	entries := make([]Entry, len(c.order))
	for i, name := range c.order {
		entries[i] = Entry{Name: name, Phone: c.phones[name]}
	}
	return entries
}

// Usage hints, shown with invalid-argument errors.
const (
	UsageHello  = "Usage: hello"
	UsageAdd    = "Usage: add [name] [phone number]"
	UsageChange = "Usage: change [name] [new phone number]"
	UsagePhone  = "Usage: phone [name]"
	UsageAll    = "Usage: all"
	UsageExit   = "Usage: exit"
	UsageHelp   = "Usage: help"
)

// ExitCommands are the names that end the session.
var ExitCommands = []string{"close", "exit", "quit"}

func registerBuiltins(d *Dispatcher, c *Contacts) {
	d.Register("hello", 0, UsageHello, func([]string) (Result, error) {
		return Result{Outcome: OutcomeGreeting}, nil
	})
	d.Register("add", 2, UsageAdd, func(args []string) (Result, error) {
		return c.add(args[0], args[1])
	})
	d.Register("change", 2, UsageChange, func(args []string) (Result, error) {
		return c.change(args[0], args[1])
	})
	d.Register("phone", 1, UsagePhone, func(args []string) (Result, error) {
		return c.phone(args[0])
	})
	d.Register("all", 0, UsageAll, func([]string) (Result, error) {
		return c.all()
	})
	for _, name := range ExitCommands {
		d.Register(name, 0, UsageExit, func([]string) (Result, error) {
			return Result{Outcome: OutcomeExit}, nil
		})
	}
	d.Register("help", 0, UsageHelp, func([]string) (Result, error) {
		return Result{Outcome: OutcomeHelp}, nil
	})
}

// validate checks name and phone against the contact model.
func validate(name, phone, usage string) error {
	if _, err := contact.NewName(name); err != nil {
		return &ArgError{Usage: usage, Err: err}
	}
	if _, err := contact.NewPhone(phone); err != nil {
		return &ArgError{Usage: usage, Err: err}
	}
	return nil
}

func (c *Contacts) add(name, phone string) (Result, error) {
	if err := validate(name, phone, UsageAdd); err != nil {
		return Result{}, err
	}
	current, ok := c.Lookup(name)
	switch {
	case !ok:
		c.Set(name, phone)
		return Result{Outcome: OutcomeAdded, Name: name, Phone: phone}, nil
	case current == phone:
		return Result{Outcome: OutcomeExists, Name: name, Phone: phone}, nil
	default:
		return Result{Outcome: OutcomeConflict, Name: name, Phone: phone, Previous: current}, nil
	}
}

func (c *Contacts) change(name, phone string) (Result, error) {
	if err := validate(name, phone, UsageChange); err != nil {
		return Result{}, err
	}
	current, ok := c.Lookup(name)
	if !ok {
		return Result{}, &NotFoundError{Name: name}
	}
	if current == phone {
		return Result{Outcome: OutcomeUnchanged, Name: name, Phone: phone}, nil
	}
	c.Set(name, phone)
	return Result{Outcome: OutcomeChanged, Name: name, Phone: phone, Previous: current}, nil
}

func (c *Contacts) phone(name string) (Result, error) {
	p, ok := c.Lookup(name)
	if !ok {
		return Result{}, &NotFoundError{Name: name}
	}
	return Result{Outcome: OutcomePhone, Name: name, Phone: p}, nil
}

// all lists every contact in insertion order.
func (c *Contacts) all() (Result, error) {
	if c.Len() == 0 {
		return Result{}, ErrNoContacts
	}
	return Result{Outcome: OutcomeList, Entries: c.Entries()}, nil
}
