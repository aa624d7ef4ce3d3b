package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-smtp-mailer/internal/crypto"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/mock"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

func newTestSettingsSvc(t *testing.T) (SettingsService, *mock.MockSettingsStore, *mock.MockCredentialCipher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mock.NewMockSettingsStore(ctrl)
	c := mock.NewMockCredentialCipher(ctrl)
	return NewSettingsService(st, c, logger.Nop()), st, c
}

func fullInput() models.SettingsInput {
	return models.SettingsInput{
		Host:      strPtr("  smtp.example.com "),
		Port:      strPtr("587"),
		Auth:      boolPtr(true),
		Username:  strPtr("user@example.com"),
		Secure:    strPtr("TLS"),
		FromEmail: strPtr("noreply@example.com"),
		FromName:  strPtr("Example\tSite\x00"),
		Debug:     strPtr("2"),
		Password:  strPtr("s3cret"),
	}
}

func TestSettingsService_Save_ProtectsPassword(t *testing.T) {
	svc, st, c := newTestSettingsSvc(t)
	ctx := context.Background()

	st.EXPECT().Get(ctx).Return(models.Options{}, nil)
	c.EXPECT().Protect(ctx, "s3cret").Return(models.Envelope{Ciphertext: "Y3Q=", IV: "aXY="}, nil)

	var saved models.Options
	st.EXPECT().Put(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o models.Options) error {
		saved = o
		return nil
	})

	res, err := svc.Save(ctx, fullInput())
	require.NoError(t, err)

	assert.Equal(t, models.Options{
		models.OptionHost:       "smtp.example.com",
		models.OptionPort:       "587",
		models.OptionAuth:       "1",
		models.OptionUsername:   "user@example.com",
		models.OptionSecure:     "tls",
		models.OptionFromEmail:  "noreply@example.com",
		models.OptionFromName:   "Example Site",
		models.OptionDebug:      "2",
		models.OptionPassword:   "Y3Q=",
		models.OptionPasswordIV: "aXY=",
	}, saved)

	assert.Empty(t, res.Warnings)
	assert.True(t, res.Settings.PasswordSet)
	assert.Empty(t, res.Settings.Password)
	assert.Empty(t, res.Settings.PasswordIV)
}

func TestSettingsService_Save_ProtectFailureKeepsPreviousPassword(t *testing.T) {
	svc, st, c := newTestSettingsSvc(t)
	ctx := context.Background()

	st.EXPECT().Get(ctx).Return(models.Options{
		models.OptionPassword:   "b2xk",
		models.OptionPasswordIV: "b2xkaXY=",
	}, nil)
	c.EXPECT().Protect(ctx, "s3cret").Return(models.Envelope{}, crypto.ErrMissingSecrets)

	var saved models.Options
	st.EXPECT().Put(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o models.Options) error {
		saved = o
		return nil
	})

	res, err := svc.Save(ctx, fullInput())
	require.NoError(t, err)

	assert.Equal(t, "b2xk", saved[models.OptionPassword])
	assert.Equal(t, "b2xkaXY=", saved[models.OptionPasswordIV])
	assert.Equal(t, []string{WarnPasswordNotSaved}, res.Warnings)
}

func TestSettingsService_Save_ProtectFailureWithoutPreviousIV(t *testing.T) {
	svc, st, c := newTestSettingsSvc(t)
	ctx := context.Background()

	st.EXPECT().Get(ctx).Return(models.Options{models.OptionPassword: "b2xk"}, nil)
	c.EXPECT().Protect(ctx, gomock.Any()).Return(models.Envelope{}, crypto.ErrEncryptionFailed)

	var saved models.Options
	st.EXPECT().Put(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o models.Options) error {
		saved = o
		return nil
	})

	_, err := svc.Save(ctx, fullInput())
	require.NoError(t, err)

	assert.Equal(t, "b2xk", saved[models.OptionPassword])
	iv, ok := saved[models.OptionPasswordIV]
	assert.True(t, ok)
	assert.Empty(t, iv)
}

func TestSettingsService_Save_EmptyPassword(t *testing.T) {
	tests := []struct {
		name     string
		previous models.Options
		wantPass string
		wantIV   string
	}{
		{
			name:     "keeps previous",
			previous: models.Options{models.OptionPassword: "b2xk", models.OptionPasswordIV: "aXY="},
			wantPass: "b2xk",
			wantIV:   "aXY=",
		},
		{
			name:     "initialises empty",
			previous: models.Options{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st, _ := newTestSettingsSvc(t)
			ctx := context.Background()

			st.EXPECT().Get(ctx).Return(tt.previous, nil)

			var saved models.Options
			st.EXPECT().Put(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o models.Options) error {
				saved = o
				return nil
			})

			in := fullInput()
			in.Password = strPtr("")

			_, err := svc.Save(ctx, in)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPass, saved[models.OptionPassword])
			assert.Equal(t, tt.wantIV, saved[models.OptionPasswordIV])
			assert.Contains(t, saved, models.OptionPasswordIV)
		})
	}
}

func TestSettingsService_Save_SanitizesAbsentAndOddFields(t *testing.T) {
	svc, st, _ := newTestSettingsSvc(t)
	ctx := context.Background()

	st.EXPECT().Get(ctx).Return(models.Options{}, nil)

	var saved models.Options
	st.EXPECT().Put(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o models.Options) error {
		saved = o
		return nil
	})

	_, err := svc.Save(ctx, models.SettingsInput{
		Port:      strPtr("-465abc"),
		FromEmail: strPtr("not an email"),
		Debug:     strPtr("9"),
	})
	require.NoError(t, err)

	assert.Equal(t, "465", saved[models.OptionPort])
	assert.Equal(t, "0", saved[models.OptionAuth], "absent checkbox means auth off")
	assert.Equal(t, "", saved[models.OptionFromEmail])
	assert.Equal(t, "4", saved[models.OptionDebug])
	assert.Equal(t, "", saved[models.OptionHost])
}

func TestSettingsService_Save_MinIntPortAndDebug(t *testing.T) {
	svc, st, _ := newTestSettingsSvc(t)
	ctx := context.Background()

	st.EXPECT().Get(ctx).Return(models.Options{}, nil)

	var saved models.Options
	st.EXPECT().Put(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o models.Options) error {
		saved = o
		return nil
	})

	minInt := strconv.Itoa(math.MinInt)
	_, err := svc.Save(ctx, models.SettingsInput{Port: &minInt, Debug: &minInt})
	require.NoError(t, err)

	assert.Equal(t, strconv.Itoa(math.MaxInt), saved[models.OptionPort])
	assert.Equal(t, "4", saved[models.OptionDebug])
}

func TestSettingsService_Save_StoreErrors(t *testing.T) {
	t.Run("read", func(t *testing.T) {
		svc, st, _ := newTestSettingsSvc(t)
		st.EXPECT().Get(gomock.Any()).Return(nil, errStore)

		_, err := svc.Save(context.Background(), fullInput())
		assert.ErrorIs(t, err, ErrReadingSettings)
		assert.ErrorIs(t, err, errStore)
	})

	t.Run("write", func(t *testing.T) {
		svc, st, c := newTestSettingsSvc(t)
		st.EXPECT().Get(gomock.Any()).Return(models.Options{}, nil)
		c.EXPECT().Protect(gomock.Any(), gomock.Any()).Return(models.Envelope{Ciphertext: "a", IV: "b"}, nil)
		st.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errStore)

		_, err := svc.Save(context.Background(), fullInput())
		assert.ErrorIs(t, err, ErrSavingSettings)
	})
}

func TestSettingsService_Get_Redacts(t *testing.T) {
	svc, st, _ := newTestSettingsSvc(t)

	st.EXPECT().Get(gomock.Any()).Return(models.Options{
		models.OptionHost:       "smtp.example.com",
		models.OptionPort:       "465",
		models.OptionSecure:     "ssl",
		models.OptionPassword:   "Y3Q=",
		models.OptionPasswordIV: "aXY=",
	}, nil)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com", got.Host)
	assert.Equal(t, uint(465), got.Port)
	assert.Equal(t, models.SecureSSL, got.Secure)
	assert.True(t, got.PasswordSet)
	assert.Empty(t, got.Password)
}

func TestSettingsService_Get_StoreError(t *testing.T) {
	svc, st, _ := newTestSettingsSvc(t)
	st.EXPECT().Get(gomock.Any()).Return(nil, errStore)

	_, err := svc.Get(context.Background())
	assert.True(t, errors.Is(err, errStore))
}

func TestSettingsService_SaveThenReveal(t *testing.T) {
	st := &memoryStore{options: models.Options{}}
	c := realCipher(t)
	svc := NewSettingsService(st, c, logger.Nop())

	_, err := svc.Save(context.Background(), fullInput())
	require.NoError(t, err)

	settings := models.SettingsFromOptions(st.options)
	got, err := c.RevealEnvelope(context.Background(), settings.Envelope())
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
}

func TestSettingsValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockSettingsService(ctrl)
	svc := NewSettingsValidationService().Wrap(inner)

	bad := models.SettingsInput{Port: strPtr("99999")}
	_, err := svc.Save(context.Background(), bad)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	good := fullInput()
	inner.EXPECT().Save(gomock.Any(), good).Return(models.SaveResult{}, nil)
	_, err = svc.Save(context.Background(), good)
	assert.NoError(t, err)

	inner.EXPECT().Get(gomock.Any()).Return(models.Settings{Host: "h"}, nil)
	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "h", got.Host)
}
