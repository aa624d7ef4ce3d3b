// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/MKhiriev/go-smtp-mailer/internal/config"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

// fallbackFrom is used when neither the settings nor the configuration name
// a sender.
const fallbackFrom = "root@localhost"

// Mailer is the production [Transport].
type Mailer struct {
	sendmailPath string
	timeout      time.Duration
	defaultFrom  string

	// local and smtp are replaced in tests.
	local func(ctx context.Context, msg *mail.Msg) error
	smtp  func(ctx context.Context, client *mail.Client, msg *mail.Msg) error

	logger *logger.Logger
}

// NewMailer builds a Mailer. defaultFrom is the sender used when the
// transport configuration carries none.
func NewMailer(cfg config.Mail, defaultFrom string, log *logger.Logger) *Mailer {
	if defaultFrom == "" {
		defaultFrom = fallbackFrom
	}

	m := &Mailer{
		sendmailPath: cfg.SendmailPath,
		timeout:      cfg.SMTPTimeout,
		defaultFrom:  defaultFrom,
		logger:       log,
	}
	m.local = func(ctx context.Context, msg *mail.Msg) error {
		return msg.WriteToSendmailWithContext(ctx, m.sendmailPath)
	}
	m.smtp = func(ctx context.Context, client *mail.Client, msg *mail.Msg) error {
		return client.DialAndSendWithContext(ctx, msg)
	}

	return m
}

func (m *Mailer) Send(ctx context.Context, cfg models.TransportConfig, message models.Message) error {
	log := logger.FromContext(ctx)

	msg, err := m.buildMessage(cfg, message)
	if err != nil {
		log.Err(err).Str("to", message.To).Msg("failed to build message")
		return err
	}

	if !cfg.IsSMTP() {
		if err = m.local(ctx, msg); err != nil {
			log.Err(err).Str("sendmail", m.sendmailPath).Msg("local delivery failed")
			return fmt.Errorf("%w: %w", ErrLocalDelivery, err)
		}
		log.Info().Str("to", message.To).Str("transport", string(models.TransportLocal)).Msg("message delivered")
		return nil
	}

	client, err := m.newClient(cfg)
	if err != nil {
		log.Err(err).Str("host", cfg.Host).Uint("port", cfg.Port).Msg("failed to create SMTP client")
		return fmt.Errorf("%w: %w", ErrCreatingClient, err)
	}

	if err = m.smtp(ctx, client, msg); err != nil {
		log.Err(err).Str("host", cfg.Host).Uint("port", cfg.Port).Msg("SMTP delivery failed")
		return fmt.Errorf("%w: %w", ErrSMTPDelivery, err)
	}

	log.Info().Str("to", message.To).Str("transport", string(models.TransportSMTP)).Msg("message delivered")
	return nil
}

func (m *Mailer) buildMessage(cfg models.TransportConfig, message models.Message) (*mail.Msg, error) {
	msg := mail.NewMsg(mail.WithCharset(charset(cfg.Charset)))

	from := cfg.From
	if from == "" {
		from = m.defaultFrom
	}

	var err error
	if cfg.FromName != "" {
		err = msg.FromFormat(cfg.FromName, from)
	} else {
		err = msg.From(from)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: sender: %w", ErrBuildingMessage, err)
	}

	if err = msg.To(message.To); err != nil {
		return nil, fmt.Errorf("%w: recipient: %w", ErrBuildingMessage, err)
	}

	msg.Subject(message.Subject)
	msg.SetBodyString(mail.TypeTextHTML, message.Body)

	return msg, nil
}

func (m *Mailer) newClient(cfg models.TransportConfig) (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(int(cfg.Port)),
		mail.WithTimeout(m.timeout),
	}

	switch cfg.Secure {
	case models.SecureSSL:
		opts = append(opts, mail.WithSSL())
	case models.SecureTLS:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	if cfg.Auth {
		opts = append(opts,
			mail.WithSMTPAuthCustom(newNegotiatingAuth(cfg.Username, cfg.Password, cfg.Host)),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	if cfg.Debug > 0 && cfg.DebugSink != nil {
		opts = append(opts, mail.WithDebugLog(), mail.WithLogger(newDebugLogger(cfg.Debug, cfg.DebugSink)))
	}

	return mail.NewClient(cfg.Host, opts...)
}

func charset(name string) mail.Charset {
	if name == "" {
		return mail.CharsetUTF8
	}
	return mail.Charset(name)
}
