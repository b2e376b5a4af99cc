package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/smileynet/assistbot/internal/command"
	"github.com/smileynet/assistbot/internal/contact"
)

const testHelp = `
welcome: Welcome aboard!
intro:
  - Manage your contacts.
commands:
  - usage: hello
    description: Greets the user.
  - usage: phone [name]
    description: Shows the phone number of a contact.
examples:
  - usage: phone John
    description: Shows the phone number of ` + "`John.`" + `
`

func testAssets() fstest.MapFS {
	return fstest.MapFS{
		HelpFile:   &fstest.MapFile{Data: []byte(testHelp)},
		BannerFile: &fstest.MapFile{Data: []byte("=== BOT ===\n")},
	}
}

// newPlainPresenter returns a presenter that emits no escape sequences.
func newPlainPresenter(t *testing.T) *Presenter {
	t.Helper()
	p, err := NewPresenter(Options{Writer: &bytes.Buffer{}, Color: ColorNever, Assets: testAssets()})
	if err != nil {
		t.Fatalf("NewPresenter() error = %v", err)
	}
	return p
}

func TestNewPresenter_Errors(t *testing.T) {
	t.Run("bad color mode", func(t *testing.T) {
		_, err := NewPresenter(Options{Writer: &bytes.Buffer{}, Color: "rainbow", Assets: testAssets()})
		if err == nil {
			t.Fatal("expected error for unknown color mode")
		}
	})
	t.Run("nil assets", func(t *testing.T) {
		_, err := NewPresenter(Options{Writer: &bytes.Buffer{}, Color: ColorNever})
		if err == nil {
			t.Fatal("expected error for nil assets")
		}
	})
	t.Run("missing help", func(t *testing.T) {
		_, err := NewPresenter(Options{Writer: &bytes.Buffer{}, Color: ColorNever, Assets: fstest.MapFS{}})
		if err == nil {
			t.Fatal("expected error for missing help.yaml")
		}
	})
}

func TestPresenter_Result(t *testing.T) {
	p := newPlainPresenter(t)

	tests := []struct {
		name string
		res  command.Result
		want string
	}{
		{"greeting", command.Result{Outcome: command.OutcomeGreeting}, "How can I help you?"},
		{
			"added",
			command.Result{Outcome: command.OutcomeAdded, Name: "alice", Phone: "1234567890"},
			`Contact "alice" added with phone number "1234567890".`,
		},
		{
			"exists",
			command.Result{Outcome: command.OutcomeExists, Name: "alice", Phone: "1234567890"},
			`Contact "alice" with phone number "1234567890" already exists.`,
		},
		{
			"conflict",
			command.Result{Outcome: command.OutcomeConflict, Name: "alice", Phone: "9999999999", Previous: "1234567890"},
			`Contact "alice" is already added with the number "1234567890".` + "\n" +
				`To change the number, use the "change" command.`,
		},
		{
			"changed",
			command.Result{Outcome: command.OutcomeChanged, Name: "bob", Phone: "2222222222", Previous: "1111111111"},
			`For user "bob", the phone has been changed from "1111111111" to "2222222222".`,
		},
		{
			"unchanged",
			command.Result{Outcome: command.OutcomeUnchanged, Name: "bob", Phone: "1111111111"},
			`Contact "bob" already has this phone number: "1111111111". No changes were made.`,
		},
		{
			"phone",
			command.Result{Outcome: command.OutcomePhone, Name: "bob", Phone: "1111111111"},
			`Phone number of "bob": 1111111111`,
		},
		{
			"list",
			command.Result{Outcome: command.OutcomeList, Entries: []command.Entry{
				{Name: "adam", Phone: "2222222222"},
				{Name: "zoe", Phone: "1111111111"},
			}},
			"adam: 2222222222\nzoe: 1111111111",
		},
		{"exit", command.Result{Outcome: command.OutcomeExit}, "Good bye!"},
		{"none", command.Result{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Result(tt.res); got != tt.want {
				t.Errorf("Result() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestPresenter_Error(t *testing.T) {
	p := newPlainPresenter(t)
	_, invalid := contact.NewPhone("12")

	tests := []struct {
		name       string
		err        error
		wantHeader string
		wantDetail string
		wantHelp   bool
	}{
		{"unknown", &command.UnknownCommandError{Name: "fly"}, "Error: Incorrect command.", "Unknown command 'fly'", true},
		{"arity", &command.ArgError{Usage: command.UsagePhone}, "Error: Incorrect arguments.", command.UsagePhone, false},
		{"validation", &command.ArgError{Usage: command.UsageAdd, Err: invalid}, "Error: Incorrect arguments.", "Phone number must be 10 digits.", false},
		{"not found", &command.NotFoundError{Name: "bob"}, "Error: Contact not found.", "Name 'bob' not found.", false},
		{"empty", command.ErrNoContacts, "Error: Index out of range.", "No contacts available.", false},
		{"unexpected", errors.New("boom"), "An unexpected error occurred:", "boom", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Error(tt.err)
			if !strings.HasPrefix(got, tt.wantHeader+"\n") {
				t.Errorf("Error() should start with %q, got:\n%s", tt.wantHeader, got)
			}
			if !strings.Contains(got, tt.wantDetail) {
				t.Errorf("Error() missing detail %q:\n%s", tt.wantDetail, got)
			}
			hasHelp := strings.Contains(got, "Manage your contacts.")
			if hasHelp != tt.wantHelp {
				t.Errorf("help included = %v, want %v", hasHelp, tt.wantHelp)
			}
		})
	}
}

func TestPresenter_ErrorNil(t *testing.T) {
	if got := newPlainPresenter(t).Error(nil); got != "" {
		t.Errorf("Error(nil) = %q, want empty", got)
	}
}

func TestPresenter_Help(t *testing.T) {
	got := newPlainPresenter(t).Help()

	want := strings.Join([]string{
		"Manage your contacts.",
		"hello - Greets the user.",
		"phone [name] - Shows the phone number of a contact.",
		"",
		"Example usage:",
		"phone John - Shows the phone number of John.",
	}, "\n")
	if got != want {
		t.Errorf("Help() =\n%s\nwant\n%s", got, want)
	}
}

func TestPresenter_HelpOutcomeMatchesHelp(t *testing.T) {
	p := newPlainPresenter(t)
	if p.Result(command.Result{Outcome: command.OutcomeHelp}) != p.Help() {
		t.Error("help outcome should render the help text")
	}
}

func TestPresenter_Welcome(t *testing.T) {
	got := newPlainPresenter(t).Welcome()

	for _, want := range []string{"=== BOT ===", "Welcome aboard!", "hello - Greets the user."} {
		if !strings.Contains(got, want) {
			t.Errorf("Welcome() missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "=== BOT ===") > strings.Index(got, "Welcome aboard!") {
		t.Error("banner should precede the welcome line")
	}
}

func TestPresenter_WelcomeWithoutBanner(t *testing.T) {
	assets := testAssets()
	delete(assets, BannerFile)
	p, err := NewPresenter(Options{Writer: &bytes.Buffer{}, Color: ColorNever, Assets: assets})
	if err != nil {
		t.Fatalf("NewPresenter() error = %v", err)
	}
	if !strings.HasPrefix(p.Welcome(), "Welcome aboard!") {
		t.Errorf("Welcome() without banner should start with the welcome line:\n%s", p.Welcome())
	}
}

func TestPresenter_ColorAlwaysEmitsEscapes(t *testing.T) {
	p, err := NewPresenter(Options{Writer: &bytes.Buffer{}, Color: ColorAlways, Assets: testAssets()})
	if err != nil {
		t.Fatalf("NewPresenter() error = %v", err)
	}
	if got := p.Result(command.Result{Outcome: command.OutcomeGreeting}); !strings.Contains(got, "\x1b[") {
		t.Errorf("ColorAlways output has no escape sequences: %q", got)
	}
	if got := p.Prompt("> "); !strings.Contains(got, "\x1b[") {
		t.Errorf("ColorAlways prompt has no escape sequences: %q", got)
	}
}

func TestPresenter_ColorNeverIsPlain(t *testing.T) {
	p := newPlainPresenter(t)
	out := p.Error(&command.UnknownCommandError{Name: "x"}) + p.Welcome() + p.Prompt("> ")
	if strings.Contains(out, "\x1b[") {
		t.Errorf("ColorNever output contains escape sequences: %q", out)
	}
}
