// Command forwardemail sends email and inspects a Forward Email account from
// the command line.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/forwardemail/forwardemail-go-client/internal/cli"
	"github.com/forwardemail/forwardemail-go-client/internal/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Warn("failed to load .env", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	level := new(slog.LevelVar)
	level.Set(parseLevel(os.Getenv("FORWARD_EMAIL_LOG_LEVEL")))

	app := &cli.App{
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Logger:   slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
		LogLevel: level,
	}

	code := app.Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// parseLevel maps FORWARD_EMAIL_LOG_LEVEL to a slog level. Unknown values
// mean warn.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
