package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-smtp-mailer/internal/config"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/utils"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns the REST implementation of [ServerAdapter].
// The base URL is adapterCfg.HTTPAddress; a missing scheme defaults to http.
// A token from the configuration is preloaded.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: log,
	}
	if appCfg.HashKey != "" {
		a.hasher = utils.NewHasher(appCfg.HashKey)
	}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login posts to /api/auth/login and takes the token from the Authorization
// response header.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.AdminCredentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("login", credentials.Login).Msg("logged in")

	return token, nil
}

func (h *httpServerAdapter) GetSettings(ctx context.Context) (models.Settings, error) {
	var settings models.Settings

	resp, err := h.authedRequest(ctx).
		SetResult(&settings).
		Get("/api/settings/")
	if err != nil {
		return models.Settings{}, fmt.Errorf("get settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Settings{}, err
	}

	return settings, nil
}

// SaveSettings puts input to /api/settings/. The exact bytes sent are the
// ones covered by the HashSHA256 header.
func (h *httpServerAdapter) SaveSettings(ctx context.Context, input models.SettingsInput) (models.SaveResult, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return models.SaveResult{}, fmt.Errorf("encode settings: %w", err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.hasher != nil {
		req.SetHeader(utils.HashHeader, h.hasher.HexSum(body))
	}

	var result models.SaveResult
	resp, err := req.SetResult(&result).Put("/api/settings/")
	if err != nil {
		return models.SaveResult{}, fmt.Errorf("save settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SaveResult{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) SendTestEmail(ctx context.Context, msg models.Message) (models.SendReport, error) {
	var report models.SendReport

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		SetResult(&report).
		Post("/api/mail/test")
	if err != nil {
		return models.SendReport{}, fmt.Errorf("send test email request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SendReport{}, err
	}

	return report, nil
}

func (h *httpServerAdapter) Status(ctx context.Context) (models.StatusReport, error) {
	var report models.StatusReport

	resp, err := h.authedRequest(ctx).
		SetResult(&report).
		Get("/api/status/")
	if err != nil {
		return models.StatusReport{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusReport{}, err
	}

	return report, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
