package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-smtp-mailer/internal/validators"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

type mailValidationService struct {
	inner     MailService
	validator validators.Validator
}

func NewMailValidationService() MailServiceWrapper {
	return &mailValidationService{
		validator: validators.NewMailerValidator(),
	}
}

func (v *mailValidationService) Send(ctx context.Context, message models.Message) (models.SendResult, error) {
	if err := v.validator.Validate(ctx, message); err != nil {
		return models.SendResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Send(ctx, message)
}

func (v *mailValidationService) Wrap(inner MailService) MailService {
	v.inner = inner
	return v
}
