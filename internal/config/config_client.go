package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the HMAC key used to sign request bodies.
	HashKey string
}

// ClientAdapter holds the admin API connection used by mailerctl.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	// Token is the admin bearer token; empty until `mailerctl login`.
	Token string
}

// ClientConfig is the mailerctl configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the CLI view of the merged
// configuration. Server-only groups are loaded but not validated.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
	}

	return clientCfg, clientCfg.validate()
}
