// Package shell runs the interactive read-dispatch-print loop, either as a
// Bubble Tea program on a terminal or as a plain line reader otherwise.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/smileynet/assistbot/internal/command"
	"github.com/smileynet/assistbot/internal/ui"
)

// Shell runs one interactive session until an exit command, end of input,
// or ctx cancellation.
type Shell interface {
	Run(ctx context.Context) error
}

// Session executes input lines against a dispatcher and renders the outcome.
type Session struct {
	dispatcher *command.Dispatcher
	presenter  *ui.Presenter
}

// NewSession couples d and p.
func NewSession(d *command.Dispatcher, p *ui.Presenter) *Session {
	return &Session{dispatcher: d, presenter: p}
}

// Execute runs line and returns the rendered output and whether the
// session should end.
func (s *Session) Execute(line string) (string, bool) {
	res, err := s.dispatcher.Dispatch(line)
	if err != nil {
		return s.presenter.Error(err), false
	}
	return s.presenter.Result(res), res.Quit()
}

// Options configures shell creation.
type Options struct {
	In         io.Reader // Input source (default: os.Stdin).
	Out        io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force the plain shell even on a TTY.
	Prompt     string    // Prompt text shown before each line.
	Banner     bool      // Print the welcome text at start.
	History    int       // Lines of input history kept by the TUI.
}

// New returns a TUI shell when both In and Out are terminals, or a plain
// shell otherwise. ForcePlain overrides TTY detection.
func New(s *Session, opts Options) Shell {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if !Interactive(opts) {
		return &PlainShell{session: s, opts: opts}
	}
	return &TUIShell{session: s, opts: opts}
}

// Interactive reports whether opts select the TUI shell.
func Interactive(opts Options) bool {
	return !opts.ForcePlain && isTTY(opts.In) && isTTY(opts.Out)
}

// isTTY reports whether v is an *os.File connected to a terminal.
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainShell reads newline-terminated commands and prints plain output lines.
type PlainShell struct {
	session *Session
	opts    Options
}

// scanResult is one line read from input, or the error that ended reading.
type scanResult struct {
	line string
	err  error
}

// Run loops over input lines until an exit command or EOF, returning nil
// in both cases. Returns ctx.Err() if ctx is cancelled while waiting.
func (s *PlainShell) Run(ctx context.Context) error {
	w := s.opts.Out
	if s.opts.Banner {
		_, _ = fmt.Fprintln(w, s.session.presenter.Welcome())
	}

	// Release the reader goroutine however the loop ends.
	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := readLines(readCtx, s.opts.In)
	prompt := s.session.presenter.Prompt(s.opts.Prompt)

	for {
		_, _ = fmt.Fprint(w, prompt)

		select {
		case <-ctx.Done():
			_, _ = fmt.Fprintln(w)
			return ctx.Err()
		case sr, ok := <-lines:
			if !ok {
				_, _ = fmt.Fprintln(w)
				return nil
			}
			if sr.err != nil {
				return fmt.Errorf("shell: reading input: %w", sr.err)
			}
			out, quit := s.session.Execute(sr.line)
			if out != "" {
				_, _ = fmt.Fprintln(w, out)
			}
			if quit {
				return nil
			}
		}
	}
}

// readLines scans r on its own goroutine so the loop can also watch ctx.
// The channel is closed at EOF or once ctx is done; a read error is sent
// before closing. A Read already blocked on r is not interrupted.
func readLines(ctx context.Context, r io.Reader) <-chan scanResult {
	ch := make(chan scanResult)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case ch <- scanResult{line: sc.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			select {
			case ch <- scanResult{err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return ch
}
