package ui

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/assistbot/internal/command"
)

// Options configures presenter creation.
type Options struct {
	Writer io.Writer // Destination the output is rendered for (default: os.Stdout).
	Color  string    // ColorAuto, ColorAlways, or ColorNever.
	Assets fs.FS     // Holds banner.txt and help.yaml.
}

// Presenter turns command results and errors into display text.
// It is the only place that knows how each outcome and error kind looks.
type Presenter struct {
	styles Styles
	help   *HelpCatalog
	banner string
}

// NewPresenter loads the help catalog and banner from opts.Assets.
func NewPresenter(opts Options) (*Presenter, error) {
	r, err := NewRenderer(opts.Writer, opts.Color)
	if err != nil {
		return nil, err
	}
	if opts.Assets == nil {
		return nil, fmt.Errorf("ui: no assets filesystem")
	}
	help, err := LoadHelp(opts.Assets)
	if err != nil {
		return nil, err
	}
	banner, err := LoadBanner(opts.Assets)
	if err != nil {
		return nil, err
	}
	return &Presenter{styles: NewStyles(r), help: help, banner: banner}, nil
}

// Styles returns the presenter's palette.
func (p *Presenter) Styles() Styles {
	return p.styles
}

// quoted renders base text with every odd-indexed part highlighted.
func (p *Presenter) quoted(base lipgloss.Style, parts ...string) string {
	var b strings.Builder
	for i, part := range parts {
		if i%2 == 1 {
			b.WriteString(p.styles.Highlight.Render(part))
			continue
		}
		if part != "" {
			b.WriteString(base.Render(part))
		}
	}
	return b.String()
}

// Result renders the message for a successful command.
func (p *Presenter) Result(res command.Result) string {
	s := p.styles
	switch res.Outcome {
	case command.OutcomeGreeting:
		return s.Highlight.Render("How can I help you?")
	case command.OutcomeAdded:
		return p.quoted(s.Success, `Contact "`, res.Name, `" added with phone number "`, res.Phone, `".`)
	case command.OutcomeExists:
		return p.quoted(s.Warning, `Contact "`, res.Name, `" with phone number "`, res.Phone, `" already exists.`)
	case command.OutcomeConflict:
		return p.quoted(s.Warning, `Contact "`, res.Name, `" is already added with the number "`, res.Previous, `".`) + "\n" +
			s.Warning.Render(`To change the number, use the "`) + s.Plain.Render("change") + s.Warning.Render(`" command.`)
	case command.OutcomeChanged:
		return s.Success.Render("For user ") + s.Highlight.Render(`"`+res.Name+`"`) +
			p.quoted(s.Success, `, the phone has been changed from "`, res.Previous, `" to "`, res.Phone, `".`)
	case command.OutcomeUnchanged:
		return p.quoted(s.Warning, `Contact "`, res.Name, `" already has this phone number: "`, res.Phone, `". No changes were made.`)
	case command.OutcomePhone:
		return p.quoted(s.Success, `Phone number of "`, res.Name, `": `, res.Phone)
	case command.OutcomeList:
		lines := make([]string, len(res.Entries))
		for i, e := range res.Entries {
			lines[i] = s.Success.Render(e.Name+": ") + s.Highlight.Render(e.Phone)
		}
		return strings.Join(lines, "\n")
	case command.OutcomeHelp:
		return p.Help()
	case command.OutcomeExit:
		return s.Farewell.Render("Good bye!")
	default:
		return ""
	}
}

// Error renders one message per error kind. Unknown commands are followed
// by the help text.
func (p *Presenter) Error(err error) string {
	if err == nil {
		return ""
	}
	s := p.styles
	var header string
	switch command.KindOf(err) {
	case command.KindUnknownCommand:
		header = "Error: Incorrect command."
	case command.KindInvalidArgs:
		header = "Error: Incorrect arguments."
	case command.KindNotFound:
		header = "Error: Contact not found."
	case command.KindEmpty:
		header = "Error: Index out of range."
	default:
		header = "An unexpected error occurred:"
	}

	out := s.Error.Render(header) + "\n" + s.Detail.Render(command.Detail(err))
	if command.KindOf(err) == command.KindUnknownCommand {
		out += "\n" + p.Help()
	}
	return out
}

// Help renders the command list and usage examples.
func (p *Presenter) Help() string {
	s := p.styles
	var lines []string
	for _, l := range p.help.Intro {
		lines = append(lines, s.Success.Render(l))
	}
	for _, e := range p.help.Commands {
		lines = append(lines, p.entry(e))
	}
	if len(p.help.Examples) > 0 {
		lines = append(lines, "", s.Highlight.Render("Example usage:"))
		for _, e := range p.help.Examples {
			lines = append(lines, p.entry(e))
		}
	}
	return strings.Join(lines, "\n")
}

func (p *Presenter) entry(e HelpEntry) string {
	return p.styles.Plain.Render(e.Usage) + p.quoted(p.styles.Success, splitHighlights(" - "+e.Description)...)
}

// Welcome renders the banner, the welcome line, and the help text shown at
// session start.
func (p *Presenter) Welcome() string {
	var parts []string
	if p.banner != "" {
		parts = append(parts, p.styles.Success.Render(p.banner), "")
	}
	if p.help.Welcome != "" {
		parts = append(parts, p.styles.Welcome.Render(p.help.Welcome), "")
	}
	parts = append(parts, p.Help())
	return strings.Join(parts, "\n")
}

// Prompt renders the input prompt text.
func (p *Presenter) Prompt(text string) string {
	return p.styles.Prompt.Render(text)
}
