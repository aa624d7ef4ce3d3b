package mailer

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-smtp-mailer/models"
)

// Transport delivers one message using the given transport configuration.
type Transport interface {
	Send(ctx context.Context, cfg models.TransportConfig, msg models.Message) error
}
