package shell

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea model for the interactive prompt. Command output
// is printed above the program so it stays in the terminal scrollback.
type Model struct {
	session    *Session
	input      textinput.Model
	keys       keyMap
	help       help.Model
	prompt     string // Rendered prompt, echoed with each submitted line.
	welcome    string
	history    []string
	histIdx    int // Position in history while browsing; len(history) when not.
	maxHistory int
	lastOutput string
	quitting   bool
}

// ModelOptions configures a Model.
type ModelOptions struct {
	Prompt      string   // Prompt text, styled by the session's presenter.
	Banner      bool     // Print the welcome text on start.
	History     int      // Lines of input history to keep; 0 disables history.
	Suggestions []string // Completions offered on tab.
}

// NewModel creates a Model bound to s.
func NewModel(s *Session, opts ModelOptions) Model {
	in := textinput.New()
	in.Prompt = s.presenter.Prompt(opts.Prompt)
	in.ShowSuggestions = len(opts.Suggestions) > 0
	in.SetSuggestions(opts.Suggestions)
	in.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	in.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))
	in.Focus()

	m := Model{
		session:    s,
		input:      in,
		keys:       defaultKeyMap(),
		help:       help.New(),
		prompt:     in.Prompt,
		maxHistory: opts.History,
	}
	if opts.Banner {
		m.welcome = s.presenter.Welcome()
	}
	return m
}

// Init prints the welcome text and starts the cursor blink.
func (m Model) Init() tea.Cmd {
	if m.welcome == "" {
		return textinput.Blink
	}
	return tea.Batch(tea.Println(m.welcome), textinput.Blink)
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit),
			key.Matches(msg, m.keys.EOF) && m.input.Value() == "":
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Prev):
			m.browse(-1)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.browse(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit executes the current input line and prints the echo and output.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.remember(line)

	out, quit := m.session.Execute(line)
	m.lastOutput = out

	printed := m.prompt + line
	if out != "" {
		printed += "\n" + out
	}
	if quit {
		m.quitting = true
		return m, tea.Sequence(tea.Println(printed), tea.Quit)
	}
	return m, tea.Println(printed)
}

// remember appends line to history, skipping blanks and repeats.
func (m *Model) remember(line string) {
	defer func() { m.histIdx = len(m.history) }()
	if m.maxHistory <= 0 || strings.TrimSpace(line) == "" {
		return
	}
	if n := len(m.history); n > 0 && m.history[n-1] == line {
		return
	}
	m.history = append(m.history, line)
	if over := len(m.history) - m.maxHistory; over > 0 {
		m.history = m.history[over:]
	}
}

// browse moves through history by delta and loads the entry into the input.
// Moving past the newest entry clears the input.
func (m *Model) browse(delta int) {
	if len(m.history) == 0 {
		return
	}
	idx := m.histIdx + delta
	switch {
	case idx < 0:
		idx = 0
	case idx >= len(m.history):
		m.histIdx = len(m.history)
		m.input.SetValue("")
		return
	}
	m.histIdx = idx
	m.input.SetValue(m.history[idx])
	m.input.CursorEnd()
}

// View renders the input line and the key help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.input.View() + "\n" + m.help.View(m.keys)
}

// TUIShell runs the session as a Bubble Tea program.
// Falls back to PlainShell if the program fails to start.
type TUIShell struct {
	session *Session
	opts    Options
}

// Run starts the Bubble Tea program and blocks until it exits.
func (s *TUIShell) Run(ctx context.Context) error {
	m := NewModel(s.session, ModelOptions{
		Prompt:      s.opts.Prompt,
		Banner:      s.opts.Banner,
		History:     s.opts.History,
		Suggestions: s.session.dispatcher.Commands(),
	})
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(s.opts.In),
		tea.WithOutput(s.opts.Out),
	)

	_, err := p.Run()
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, tea.ErrInterrupted) {
		return nil
	}

	// Fall back to plain text on the same session; contacts survive.
	plain := &PlainShell{session: s.session, opts: s.opts}
	return plain.Run(ctx)
}
