// mailerctl is the operator CLI of the mailer service.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-smtp-mailer/internal/adapter"
	"github.com/MKhiriev/go-smtp-mailer/internal/client"
	"github.com/MKhiriev/go-smtp-mailer/internal/config"
	"github.com/MKhiriev/go-smtp-mailer/internal/crypto"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("mailerctl")
	hasher := crypto.NewPasswordHasher()

	// GetClientConfig parses the global flags; the subcommand follows them.
	cfg, cfgErr := config.GetClientConfig()
	args := flag.Args()

	if len(args) > 0 && args[0] == "build-info" {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	var serverAdapter adapter.ServerAdapter
	if len(args) == 0 || !client.IsOffline(args[0]) {
		if cfgErr != nil {
			log.Error().Err(cfgErr).Msg("error getting configs")
			fmt.Fprintf(os.Stderr, "mailerctl: %v\n", cfgErr)
			os.Exit(1)
		}

		var err error
		serverAdapter, err = adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
		if err != nil {
			log.Error().Err(err).Msg("error creating adapter")
			fmt.Fprintf(os.Stderr, "mailerctl: %v\n", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, hasher, os.Stdout, log)
	if err := app.Run(ctx, args); err != nil {
		log.Error().Err(err).Strs("args", redact(args)).Msg("command failed")
		fmt.Fprintf(os.Stderr, "mailerctl: %v\n", err)
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// redact hides password flag values before args are logged.
func redact(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i, a := range out {
		name, _, hasValue := strings.Cut(strings.TrimLeft(a, "-"), "=")
		if !strings.HasPrefix(a, "-") || (name != "p" && name != "password") {
			continue
		}
		if hasValue {
			out[i] = a[:strings.Index(a, "=")+1] + "***"
		} else if i+1 < len(out) {
			out[i+1] = "***"
		}
	}
	return out
}
