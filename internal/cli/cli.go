// Package cli implements the forwardemail command-line tool.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	client "github.com/forwardemail/forwardemail-go-client"
	"github.com/forwardemail/forwardemail-go-client/internal/config"
)

// Process exit codes returned by [App.Run].
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// App holds the I/O and environment of one CLI invocation.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// ConfigPath overrides the config file location. When empty the
	// --config flag, then config.DefaultPath, is used.
	ConfigPath string

	// Logger receives request logs when it is enabled at debug level.
	// Defaults to a text handler on Stderr.
	Logger *slog.Logger

	// LogLevel, when set, is the level of Logger. --debug lowers it to
	// debug.
	LogLevel *slog.LevelVar
}

type flags struct {
	from       string
	to         string
	subject    string
	text       string
	html       string
	cc         string
	bcc        string
	apiKey     string
	baseURL    string
	configPath string
	debug      bool
	help       bool
}

// usageError is reported with [ExitUsage].
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// failure prefixes an error with the action that failed.
type failure struct {
	action string
	err    error
}

func (f *failure) Error() string { return f.action + ": " + f.err.Error() }
func (f *failure) Unwrap() error { return f.err }

var errNotConfigured = errors.New("API key not configured")

type command func(ctx context.Context, r *runner) error

var commands = map[string]command{
	"config":  configCommand,
	"test":    testCommand,
	"send":    sendCommand,
	"list":    listCommand,
	"account": accountCommand,
	"limits":  limitsCommand,
	"domains": domainsCommand,
	"aliases": aliasesCommand,
}

// runner carries the parsed state shared by commands.
type runner struct {
	app     *App
	flags   *flags
	args    []string
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
}

// Run executes the command line args (without the program name) and
// returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	f, positional, err := parseArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		printHelp(a.Stdout)
		return ExitOK
	}
	if err != nil {
		fmt.Fprintf(a.Stderr, "Error: %v\n", err)
		fmt.Fprintln(a.Stderr, `Run "forwardemail help" for usage information.`)
		return ExitUsage
	}

	if len(positional) == 0 || positional[0] == "help" || f.help {
		printHelp(a.Stdout)
		return ExitOK
	}

	name := positional[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(a.Stderr, "Unknown command: %s\n", name)
		fmt.Fprintln(a.Stderr, `Run "forwardemail help" for usage information.`)
		return ExitUsage
	}

	r := &runner{
		app:    a,
		flags:  f,
		args:   positional[1:],
		logger: a.logger(f.debug),
	}

	if err := r.loadConfig(); err != nil {
		fmt.Fprintf(a.Stderr, "Error: %v\n", err)
		return ExitFailure
	}

	if err := cmd(ctx, r); err != nil {
		return a.report(err)
	}

	return ExitOK
}

func (a *App) report(err error) int {
	var usage *usageError
	if errors.As(err, &usage) {
		fmt.Fprintf(a.Stderr, "Error: %s\n", usage.msg)
		return ExitUsage
	}

	if errors.Is(err, errNotConfigured) {
		fmt.Fprintln(a.Stderr, "Error: API key not configured.")
		fmt.Fprintln(a.Stderr, `Run "forwardemail config" to configure your API key.`)
		return ExitFailure
	}

	var apiErr *client.Error
	if errors.As(err, &apiErr) && apiErr.Kind == client.KindValidation {
		fmt.Fprintf(a.Stderr, "Error: %s\n", apiErr.Message)
		return ExitFailure
	}

	fmt.Fprintf(a.Stderr, "✗ %s\n", err)
	if code := client.StatusCode(err); code != 0 {
		fmt.Fprintf(a.Stderr, "   HTTP Status: %d\n", code)
	}
	return ExitFailure
}

func (a *App) logger(debug bool) *slog.Logger {
	if a.Logger != nil {
		if debug && a.LogLevel != nil {
			a.LogLevel.Set(slog.LevelDebug)
		}
		return a.Logger
	}

	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(a.Stderr, &slog.HandlerOptions{Level: level}))
}

func (r *runner) loadConfig() error {
	path := r.app.ConfigPath
	if r.flags.configPath != "" {
		path = r.flags.configPath
	}
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	r.cfg = cfg
	r.cfgPath = path
	return nil
}

// newClient builds an API client from flags, environment and config file,
// in that order of precedence.
func (r *runner) newClient() (*client.Client, error) {
	apiKey := firstNonEmpty(r.flags.apiKey, r.cfg.APIKey)
	if apiKey == "" {
		return nil, errNotConfigured
	}

	opts := []client.Option{
		client.WithBaseURL(firstNonEmpty(r.flags.baseURL, r.cfg.BaseURL)),
		client.WithTimeout(r.cfg.Timeout.Std()),
	}
	if r.flags.debug || r.logger.Enabled(context.Background(), slog.LevelDebug) {
		opts = append(opts, client.WithRequestLogger(client.NewSlogLogger(r.logger)))
	}

	return client.New(apiKey, opts...)
}

func parseArgs(args []string) (*flags, []string, error) {
	f := &flags{}

	fs := flag.NewFlagSet("forwardemail", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.from, "from", "", "sender email address")
	fs.StringVar(&f.to, "to", "", "recipient email address(es), comma-separated")
	fs.StringVar(&f.subject, "subject", "", "email subject")
	fs.StringVar(&f.text, "text", "", "plain text content")
	fs.StringVar(&f.html, "html", "", "HTML content")
	fs.StringVar(&f.cc, "cc", "", "CC recipients, comma-separated")
	fs.StringVar(&f.bcc, "bcc", "", "BCC recipients, comma-separated")
	fs.StringVar(&f.apiKey, "api-key", "", "API key (overrides config)")
	fs.StringVar(&f.baseURL, "base-url", "", "API base URL (overrides config)")
	fs.StringVar(&f.configPath, "config", "", "config file path")
	fs.BoolVar(&f.debug, "debug", false, "log HTTP requests")
	fs.BoolVar(&f.help, "help", false, "show help")

	// The flag package stops at the first positional argument; resume
	// parsing after each one so flags may follow the command.
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}

	return f, positional, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `
Forward Email CLI - Email API Tool

USAGE:
  forwardemail [command] [options]

COMMANDS:
  config               Configure API key and settings
  test                 Test API access
  send                 Send an email
  list                 List sent emails
  account              Get account information
  limits               Check email sending limits
  domains              List all domains
  aliases <domain>     List aliases for a domain
  help                 Show this help message

EXAMPLES:
  forwardemail config
  forwardemail send --from "you@domain.com" --to "user@example.com" \
    --subject "Hello" --text "Test message"
  forwardemail aliases yourdomain.com

OPTIONS:
  --from       Sender email address
  --to         Recipient email address(es), comma-separated
  --subject    Email subject
  --text       Plain text content
  --html       HTML content
  --cc         CC recipients (comma-separated)
  --bcc        BCC recipients (comma-separated)
  --api-key    API key (overrides config)
  --base-url   API base URL (overrides config)
  --config     Config file path
  --debug      Log HTTP requests to stderr
  --help       Show this help message

CONFIGURATION:
  Config file: ~/.forwardemail/config.json (or $FORWARD_EMAIL_CONFIG)
  Environment: FORWARD_EMAIL_API_KEY, FORWARD_EMAIL_BASE_URL,
               FORWARD_EMAIL_FROM, FORWARD_EMAIL_TIMEOUT

For more info, visit: https://forwardemail.net/api
`)
}
