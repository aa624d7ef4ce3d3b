package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

var errInvalidNetAddress = errors.New("need address in a form `host:port`")

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a admin API listen address in format [host]:[port]
//	-s admin API address used by mailerctl in format [host]:[port]
//	-d database DSN
//	-db-driver database/sql driver (sqlite3 or pgx)
//	-f settings JSON file path (used when no DSN is given)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-token admin bearer token used by mailerctl
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key request integrity hash key
//	-admin-login administrator login
//	-admin-password-hash administrator argon2id hash
//	-site-name fallback sender name
//	-sendmail local transport binary
//	-smtp-timeout SMTP dial and session timeout
//	-legacy-secrets derive key and IV with the legacy secret layout
func ParseFlags() *StructuredConfig {
	var serverAddress, adapterAddress NetAddress
	var databaseDSN, databaseDriver string
	var settingsFile string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer, token string
	var tokenDuration, requestTimeout, smtpTimeout time.Duration
	var hashKey string
	var adminLogin, adminPasswordHash string
	var siteName, sendmailPath string
	var legacySecrets bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&adapterAddress, "s", "Admin API address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "db-driver", "", "Database driver (sqlite3, pgx)")
	flag.StringVar(&settingsFile, "f", "", "Settings file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.StringVar(&token, "token", "", "Admin bearer token")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&hashKey, "hash-key", "", "Request integrity hash key")
	flag.StringVar(&adminLogin, "admin-login", "", "Administrator login")
	flag.StringVar(&adminPasswordHash, "admin-password-hash", "", "Administrator password hash")
	flag.StringVar(&siteName, "site-name", "", "Fallback sender name")
	flag.StringVar(&sendmailPath, "sendmail", "", "Sendmail binary path")
	flag.DurationVar(&smtpTimeout, "smtp-timeout", 0, "SMTP timeout (e.g., 15s)")
	flag.BoolVar(&legacySecrets, "legacy-secrets", false, "Use legacy key/IV secret layout")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:      tokenSignKey,
			TokenIssuer:       tokenIssuer,
			TokenDuration:     tokenDuration,
			HashKey:           hashKey,
			SiteName:          siteName,
			AdminLogin:        adminLogin,
			AdminPasswordHash: adminPasswordHash,
		},
		Secrets: Secrets{
			LegacyLayout: legacySecrets,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Files: Files{
				SettingsFile: settingsFile,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Mail: Mail{
			SendmailPath: sendmailPath,
			SMTPTimeout:  smtpTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: requestTimeout,
			Token:          token,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String renders the address for net.Listen and URLs. A zero address is
// rendered as the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts host:port, [ipv6]:port or :port. Host names are allowed since
// the CLI usually points at a service by name.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q is not in 1-65535", errInvalidNetAddress, portStr)
	}

	if strings.ContainsAny(host, " /") {
		return fmt.Errorf("%w: bad host %q", errInvalidNetAddress, host)
	}

	a.Host = host
	a.Port = port
	return nil
}
