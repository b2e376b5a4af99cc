package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"

	assistbot "github.com/smileynet/assistbot"
	"github.com/smileynet/assistbot/internal/command"
	"github.com/smileynet/assistbot/internal/config"
	"github.com/smileynet/assistbot/internal/shell"
	"github.com/smileynet/assistbot/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for assistbot.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Chat    ChatCmd          `cmd:"" default:"withargs" help:"Start an interactive session (default)."`
}

// ChatCmd runs the interactive contact session.
type ChatCmd struct {
	NoTUI    bool   `help:"Force plain line input even if stdin and stdout are a TTY." default:"false"`
	Config   string `help:"Config file layered over the user and project configs." type:"path"`
	LogLevel string `help:"Log level (debug, info, warn, error). Overrides config."`
}

// Run executes the chat command.
func (c *ChatCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	// Apply CLI flag overrides.
	if c.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(c.LogLevel)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return run(ctx, shell.Options{
		In:         os.Stdin,
		Out:        os.Stdout,
		ForcePlain: c.NoTUI,
	}, os.Stderr, cfg)
}

// loadConfig loads layered config from user, project, and extra paths with
// env overrides.
func loadConfig(extra string) (*config.Config, error) {
	paths := []string{
		os.ExpandEnv("$HOME/.config/assistbot/config.yaml"),
		".assistbot.yaml",
	}
	if extra != "" {
		if _, err := os.Stat(extra); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		paths = append(paths, extra)
	}

	cfg, err := config.LoadLayered(paths...)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes text logs to w in plain mode. The TUI redraws the
// prompt in place, so interactive sessions discard logs.
func newLogger(w io.Writer, cfg *config.Config, interactive bool) (*slog.Logger, error) {
	if interactive {
		return slog.New(slog.DiscardHandler), nil
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// run wires the presenter, dispatcher, and shell from cfg and runs one
// session. Interruption ends the session normally.
func run(ctx context.Context, opts shell.Options, logOut io.Writer, cfg *config.Config) error {
	opts.Prompt = cfg.Shell.Prompt
	opts.Banner = cfg.Shell.Banner
	opts.History = cfg.Shell.History

	logger, err := newLogger(logOut, cfg, shell.Interactive(opts))
	if err != nil {
		return err
	}

	presenter, err := ui.NewPresenter(ui.Options{
		Writer: opts.Out,
		Color:  cfg.Display.Color,
		Assets: assistbot.OverlayFS(cfg.Display.AssetsDir, assistbot.Assets),
	})
	if err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	d := command.New(command.WithLogger(logger))
	sh := shell.New(shell.NewSession(d, presenter), opts)

	logger.Debug("session start", "commands", strings.Join(d.Commands(), ","))
	err = sh.Run(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		logger.Debug("session end", "contacts", d.Contacts().Len())
		return nil
	default:
		return &SessionError{Err: err}
	}
}

// SessionError reports a failure after the session started, such as a
// broken input stream.
type SessionError struct {
	Err error
}

func (e *SessionError) Error() string {
	return "session: " + e.Err.Error()
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

// Exit codes.
const (
	exitSuccess = 0
	exitSession = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *SessionError
	if errors.As(err, &se) {
		return exitSession
	}
	return exitSetup
}

func main() {
	var cli CLI
	parser := kong.Must(&cli,
		kong.Name("assistbot"),
		kong.Description("An interactive assistant that keeps a contact list for the session."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		parser.Errorf("%s", err)
		os.Exit(exitSetup)
	}
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
