package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-smtp-mailer/internal/adapter"
	"github.com/MKhiriev/go-smtp-mailer/internal/crypto"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/utils"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

const usage = `usage: mailerctl [flags] <command> [args]

commands:
  login         -u login -p password [-copy]
  settings get
  settings set  [-host h] [-port n] [-auth=true|false] [-username u] [-password p]
                [-secure ""|ssl|tls] [-from-email e] [-from-name n] [-debug 0-4]
  send          -to address -subject text -message html
  status
  version
  hash-password -p password
`

// App dispatches mailerctl subcommands.
type App struct {
	adapter adapter.ServerAdapter
	hasher  crypto.PasswordHasher

	out io.Writer
	// copyToClipboard is swapped in tests.
	copyToClipboard func(string) error

	logger *logger.Logger
}

// NewApp returns the CLI. serverAdapter may be nil when only offline
// commands are run.
func NewApp(serverAdapter adapter.ServerAdapter, hasher crypto.PasswordHasher, out io.Writer, log *logger.Logger) *App {
	return &App{
		adapter:         serverAdapter,
		hasher:          hasher,
		out:             out,
		copyToClipboard: clipboard.WriteAll,
		logger:          log,
	}
}

// IsOffline reports whether command runs without contacting the service.
func IsOffline(command string) bool {
	return command == "hash-password" || command == "help"
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("running command")

	switch command {
	case "help":
		fmt.Fprint(a.out, usage)
		return nil
	case "hash-password":
		return a.hashPassword(rest)
	case "login":
		return a.login(ctx, rest)
	case "settings":
		if len(rest) == 0 {
			return fmt.Errorf("%w: settings get|set", ErrMissingArgument)
		}
		switch rest[0] {
		case "get":
			return a.settingsGet(ctx)
		case "set":
			return a.settingsSet(ctx, rest[1:])
		}
		return fmt.Errorf("%w: settings %s", ErrUnknownCommand, rest[0])
	case "send":
		return a.send(ctx, rest)
	case "status":
		return a.status(ctx)
	case "version":
		return a.version(ctx)
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func (a *App) hashPassword(args []string) error {
	fs := newFlagSet("hash-password")
	password := fs.String("p", "", "password to hash")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *password == "" {
		return fmt.Errorf("%w: -p", ErrMissingArgument)
	}

	encoded, err := a.hasher.Hash(*password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	fmt.Fprintln(a.out, encoded)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	login := fs.String("u", "", "administrator login")
	password := fs.String("p", "", "administrator password")
	copyToken := fs.Bool("copy", false, "copy the token to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *login == "" || *password == "" {
		return fmt.Errorf("%w: -u and -p", ErrMissingArgument)
	}

	token, err := a.adapter.Login(ctx, models.AdminCredentials{Login: *login, Password: *password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	fmt.Fprintln(a.out, token)
	if sub, err := utils.ParseSubjectFromJWT(token); err == nil {
		fmt.Fprintf(a.out, "logged in as %s\n", sub)
	}

	if *copyToken {
		if err = a.copyToClipboard(token); err != nil {
			a.logger.Warn().Err(err).Msg("clipboard is unavailable")
			fmt.Fprintln(a.out, "warning: token was not copied to the clipboard")
			return nil
		}
		fmt.Fprintln(a.out, "token copied to the clipboard")
	}

	return nil
}

func (a *App) settingsGet(ctx context.Context) error {
	if err := a.requireToken(); err != nil {
		return err
	}

	s, err := a.adapter.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}

	printSettings(a.out, s)
	return nil
}

func (a *App) settingsSet(ctx context.Context, args []string) error {
	if err := a.requireToken(); err != nil {
		return err
	}

	fs := newFlagSet("settings set")
	host := fs.String("host", "", "SMTP host")
	port := fs.String("port", "", "SMTP port")
	auth := fs.Bool("auth", true, "authenticate with username and password")
	username := fs.String("username", "", "SMTP username")
	password := fs.String("password", "", "SMTP password, empty keeps the stored one")
	secure := fs.String("secure", "", `encryption: "", ssl or tls`)
	fromEmail := fs.String("from-email", "", "sender address")
	fromName := fs.String("from-name", "", "sender name")
	debug := fs.String("debug", "", "SMTP debug level 0-4")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// The save replaces the whole record, so unset flags are sent as their
	// defaults.
	input := models.SettingsInput{
		Host:      host,
		Port:      port,
		Auth:      auth,
		Username:  username,
		Secure:    secure,
		FromEmail: fromEmail,
		FromName:  fromName,
		Debug:     debug,
		Password:  password,
	}

	result, err := a.adapter.SaveSettings(ctx, input)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	fmt.Fprintln(a.out, "settings saved")
	for _, w := range result.Warnings {
		fmt.Fprintf(a.out, "warning: %s\n", w)
	}
	printSettings(a.out, result.Settings)

	return nil
}

func (a *App) send(ctx context.Context, args []string) error {
	if err := a.requireToken(); err != nil {
		return err
	}

	fs := newFlagSet("send")
	to := fs.String("to", "", "recipient address")
	subject := fs.String("subject", "", "subject")
	message := fs.String("message", "", "HTML body")
	if err := fs.Parse(args); err != nil {
		return err
	}

	report, err := a.adapter.SendTestEmail(ctx, models.Message{To: *to, Subject: *subject, Body: *message})
	if err != nil {
		if errors.Is(err, adapter.ErrBadGateway) {
			return fmt.Errorf("send: the service could not deliver the message: %w", err)
		}
		return fmt.Errorf("send: %w", err)
	}

	fmt.Fprintf(a.out, "%s\ntransport: %s\n", report.Message, report.Transport)
	return nil
}

func (a *App) status(ctx context.Context) error {
	if err := a.requireToken(); err != nil {
		return err
	}

	report, err := a.adapter.Status(ctx)
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}

	fmt.Fprintf(a.out, "version:          %s\n", report.Version)
	fmt.Fprintf(a.out, "transport:        %s\n", report.Transport)
	fmt.Fprintf(a.out, "crypto available: %t\n", report.CryptoAvailable)
	if len(report.MissingSecrets) > 0 {
		names := make([]string, len(report.MissingSecrets))
		for i, s := range report.MissingSecrets {
			names[i] = string(s)
		}
		fmt.Fprintf(a.out, "missing secrets:  %s\n", strings.Join(names, ", "))
	}
	for _, n := range report.Notices {
		fmt.Fprintf(a.out, "notice: %s\n", n)
	}

	return nil
}

func (a *App) version(ctx context.Context) error {
	v, err := a.adapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("version: %w", err)
	}

	fmt.Fprintln(a.out, v)
	return nil
}

func (a *App) requireToken() error {
	if a.adapter.Token() == "" {
		return ErrNotLoggedIn
	}
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func printSettings(w io.Writer, s models.Settings) {
	password := "not set"
	if s.PasswordSet {
		password = "set"
	}

	fmt.Fprintf(w, "host:       %s\n", s.Host)
	fmt.Fprintf(w, "port:       %d\n", s.Port)
	fmt.Fprintf(w, "auth:       %t\n", s.Auth)
	fmt.Fprintf(w, "username:   %s\n", s.Username)
	fmt.Fprintf(w, "password:   %s\n", password)
	fmt.Fprintf(w, "secure:     %s\n", s.Secure)
	fmt.Fprintf(w, "from email: %s\n", s.FromEmail)
	fmt.Fprintf(w, "from name:  %s\n", s.FromName)
	fmt.Fprintf(w, "debug:      %d\n", s.Debug)
}
