// ABOUTME: CLI entry point for kilo with terminal crash recovery
// ABOUTME: Loads settings, enters raw mode behind a guard, and runs the editor loop

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mauromedda/kilo-go/internal/config"
	"github.com/mauromedda/kilo-go/internal/editor"
	kilolog "github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

var (
	commit = "unknown"
	date   = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("kilo %s (%s) built %s\n", editor.Version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "kilo: %v\n", err)
		os.Exit(1)
	}
}

// run sets up the terminal and drives the editor until the user quits.
// The terminal is back in its original mode by the time run returns.
func run(args cliArgs) error {
	settings, err := config.Load(args.configPath)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(args)
	if err != nil {
		return err
	}
	defer closeLog()

	// Registered before raw mode so a signal never bypasses the restore.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	return runTerminal(ctx, terminal.NewProcessTerminal(), settings)
}

// runTerminal holds t in raw mode for the life of the editor. Every
// failure, including entering or leaving raw mode, clears the screen
// and homes the cursor before it is returned.
func runTerminal(ctx context.Context, t terminal.Terminal, settings *config.Settings) (err error) {
	defer func() {
		if err != nil {
			kilolog.Error("%v", err)
			_ = terminal.ClearScreen(t)
		}
	}()

	guard, err := terminal.EnableRawMode(t)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := guard.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	defer terminal.RestoreOnPanic(guard)

	return runEditor(ctx, guard.Terminal(), settings)
}

// runEditor resolves the window size and runs the editor loop. Quitting
// and a cancelled ctx (SIGTERM/SIGHUP) are both clean exits.
func runEditor(ctx context.Context, t terminal.Terminal, settings *config.Settings) error {
	rows, cols, err := terminal.ResolveSize(t)
	if err != nil {
		return err
	}
	kilolog.Info("window %dx%d", cols, rows)

	state, err := editor.NewState(rows, cols)
	if err != nil {
		return err
	}
	renderer := editor.NewRenderer(settings.BannerText(editor.Version), settings.Marker)
	ed := editor.New(t, state, renderer)

	err = ctx.Err()
	if err == nil {
		err = ed.Run(ctx)
	}
	switch {
	case errors.Is(err, editor.ErrQuit):
		return nil
	case errors.Is(err, context.Canceled):
		kilolog.Info("terminated by signal")
		_ = terminal.ClearScreen(t)
		return nil
	}
	return err
}

// setupLogging routes log output to args.logPath. Without it logging is
// discarded: stderr shares the screen the editor draws on.
func setupLogging(args cliArgs) (func(), error) {
	if args.debug {
		kilolog.SetLevel(kilolog.LevelDebug)
	}
	if args.logPath == "" {
		kilolog.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(args.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	kilolog.SetOutput(f)
	return func() {
		kilolog.SetOutput(io.Discard)
		_ = f.Close()
	}, nil
}
