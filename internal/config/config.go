// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-smtp-mailer/models"
)

// StructuredConfig is the top-level configuration container for the
// go-smtp-mailer service and its CLI. It is populated by merging defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the admin account and site identity.
	App App `envPrefix:"APP_"`

	// Secrets holds the eight platform secrets the credential key and IV
	// are derived from.
	Secrets Secrets `envPrefix:"SECRETS_"`

	// Storage selects where the settings record lives.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the admin HTTP API listen address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Mail holds outbound delivery parameters.
	Mail Mail `envPrefix:"MAIL_"`

	// Adapter holds the CLI's view of the admin API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// TokenSignKey signs and verifies admin JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued admin token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the admin token lifetime (e.g. "1h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key of the HashSHA256 request integrity header.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via /api/version/ and the status endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// SiteName is the fallback sender display name.
	// Env: APP_SITE_NAME
	SiteName string `env:"SITE_NAME"`

	// AdminEmail is the recipient of test messages when none is given.
	// Env: APP_ADMIN_EMAIL
	AdminEmail string `env:"ADMIN_EMAIL"`

	// AdminLogin and AdminPasswordHash identify the single administrator.
	// The hash is an argon2id PHC string produced by `mailerctl hash-password`.
	// Env: APP_ADMIN_LOGIN, APP_ADMIN_PASSWORD_HASH
	AdminLogin        string `env:"ADMIN_LOGIN"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

// Secrets holds the platform secrets. Missing values are not fatal at
// startup: protect and reveal fail safe and the status endpoint lists them.
type Secrets struct {
	AuthKey        string `env:"AUTH_KEY"`
	SecureAuthKey  string `env:"SECURE_AUTH_KEY"`
	LoggedInKey    string `env:"LOGGED_IN_KEY"`
	NonceKey       string `env:"NONCE_KEY"`
	AuthSalt       string `env:"AUTH_SALT"`
	SecureAuthSalt string `env:"SECURE_AUTH_SALT"`
	LoggedInSalt   string `env:"LOGGED_IN_SALT"`
	NonceSalt      string `env:"NONCE_SALT"`

	// LegacyLayout switches key/IV derivation to the layout used by
	// installations whose envelopes predate the 4/4 split.
	// Env: SECRETS_LEGACY_LAYOUT
	LegacyLayout bool `env:"LEGACY_LAYOUT"`
}

// Bundle returns the secrets keyed by their canonical names.
func (s Secrets) Bundle() models.SecretsBundle {
	return models.SecretsBundle{
		models.SecretAuthKey:        s.AuthKey,
		models.SecretSecureAuthKey:  s.SecureAuthKey,
		models.SecretLoggedInKey:    s.LoggedInKey,
		models.SecretNonceKey:       s.NonceKey,
		models.SecretAuthSalt:       s.AuthSalt,
		models.SecretSecureAuthSalt: s.SecureAuthSalt,
		models.SecretLoggedInSalt:   s.LoggedInSalt,
		models.SecretNonceSalt:      s.NonceSalt,
	}
}

// Storage groups the settings store backends.
type Storage struct {
	// DB is used when DSN is set.
	DB DB `envPrefix:"DB_"`

	// Files is used when DB.DSN is empty.
	Files Files `envPrefix:"FILES_"`
}

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// DB holds connection settings for the SQL settings store.
type DB struct {
	// Driver is DriverSQLite or DriverPostgres.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string
	// (e.g. "file:mailer.db?_busy_timeout=5000" or "postgres://...").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds settings for the JSON file store.
type Files struct {
	// SettingsFile is the path of the JSON settings document.
	// Env: STORAGE_FILES_SETTINGS_FILE
	SettingsFile string `env:"SETTINGS_FILE"`
}

// Server holds network and timeout settings for the admin API.
type Server struct {
	// HTTPAddress is the "host:port" the admin API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Mail holds outbound delivery parameters.
type Mail struct {
	// SendmailPath is the binary used by the local transport.
	// Env: MAIL_SENDMAIL_PATH
	SendmailPath string `env:"SENDMAIL_PATH"`

	// SMTPTimeout bounds dialing and talking to the SMTP server.
	// Env: MAIL_SMTP_TIMEOUT
	SMTPTimeout time.Duration `env:"SMTP_TIMEOUT"`

	// Charset of outgoing messages.
	// Env: MAIL_CHARSET
	Charset string `env:"CHARSET"`
}

// Adapter holds the CLI's connection to the admin API.
type Adapter struct {
	// HTTPAddress is the base address of the admin API ("host:port" or URL).
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is a previously issued admin bearer token.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// GetStructuredConfig loads, merges, and validates the server configuration.
// Sources are applied in order, later non-zero fields win:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
