// Package command parses input lines and dispatches them to contact handlers.
package command

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Handler runs a command with its positional arguments.
// Arity has already been checked by the Dispatcher.
type Handler func(args []string) (Result, error)

// Command is a registered handler together with its fixed arity and usage hint.
type Command struct {
	Name    string
	Arity   int
	Usage   string
	Handler Handler
}

// Dispatcher maps command names to handlers.
// It is not safe for concurrent use; one Dispatcher serves one session.
type Dispatcher struct {
	commands map[string]Command
	contacts *Contacts
	logger   *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithContacts sets the contacts the built-in handlers operate on.
func WithContacts(c *Contacts) Option {
	return func(d *Dispatcher) {
		d.contacts = c
	}
}

// WithLogger sets the logger for dispatch diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// New creates a Dispatcher with the built-in contact commands registered.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		commands: make(map[string]Command),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.contacts == nil {
		d.contacts = NewContacts()
	}
	registerBuiltins(d, d.contacts)
	return d
}

// Register adds a command. Overwrites if name already exists.
// Panics if name is empty, arity is negative, or h is nil (programmer error).
func (d *Dispatcher) Register(name string, arity int, usage string, h Handler) {
	if name == "" {
		panic("command: Register called with empty name")
	}
	if arity < 0 {
		panic("command: Register called with negative arity")
	}
	if h == nil {
		panic("command: Register called with nil handler")
	}
	d.commands[name] = Command{Name: name, Arity: arity, Usage: usage, Handler: h}
}

// Commands returns registered command names in sorted order.
func (d *Dispatcher) Commands() []string {
	names := make([]string, 0, len(d.commands))
	for name := range d.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Contacts returns the contacts the built-in handlers operate on.
func (d *Dispatcher) Contacts() *Contacts {
	return d.contacts
}

// Parse lower-cases line and splits it on whitespace. The first field is
// the command; the rest are its arguments. A blank line yields "" and nil.
func Parse(line string) (string, []string) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// Dispatch parses line and runs the matching handler.
// Handler panics are recovered and returned as *PanicError.
func (d *Dispatcher) Dispatch(line string) (res Result, err error) {
	name, args := Parse(line)

	cmd, ok := d.commands[name]
	if !ok {
		err = &UnknownCommandError{Name: name}
		d.logger.Info("dispatch failed", "command", name, "kind", KindOf(err))
		return Result{}, err
	}
	if len(args) != cmd.Arity {
		err = &ArgError{Usage: cmd.Usage}
		d.logger.Info("dispatch failed", "command", name, "args", len(args), "want", cmd.Arity, "kind", KindOf(err))
		return Result{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			res, err = Result{}, &PanicError{Command: name, Value: r}
			d.logger.Error("handler panicked", "command", name, "panic", fmt.Sprint(r))
		}
	}()

	d.logger.Debug("dispatch", "command", name, "args", len(args))
	res, err = cmd.Handler(args)
	if err != nil {
		d.logger.Info("command failed", "command", name, "kind", KindOf(err), "error", err)
	}
	return res, err
}
