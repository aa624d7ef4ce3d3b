package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-smtp-mailer/internal/validators"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

type settingsValidationService struct {
	inner     SettingsService
	validator validators.Validator
}

func NewSettingsValidationService() SettingsServiceWrapper {
	return &settingsValidationService{
		validator: validators.NewMailerValidator(),
	}
}

func (v *settingsValidationService) Get(ctx context.Context) (models.Settings, error) {
	return v.inner.Get(ctx)
}

func (v *settingsValidationService) Save(ctx context.Context, input models.SettingsInput) (models.SaveResult, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Save(ctx, input)
}

func (v *settingsValidationService) Wrap(inner SettingsService) SettingsService {
	v.inner = inner
	return v
}
