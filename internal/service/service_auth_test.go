package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-smtp-mailer/internal/config"
	"github.com/MKhiriev/go-smtp-mailer/internal/crypto"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/mock"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

const testHash = "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:      "sign-key",
		TokenIssuer:       "go-smtp-mailer",
		TokenDuration:     time.Hour,
		AdminLogin:        "admin",
		AdminPasswordHash: testHash,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mock.NewMockPasswordHasher(ctrl)
	svc := NewAuthService(hasher, testAppConfig(), logger.Nop())

	hasher.EXPECT().Verify("correct horse", testHash).Return(true, nil)

	token, err := svc.Login(context.Background(), models.AdminCredentials{Login: "admin", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "admin", token.Login)
	assert.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "admin", parsed.Login)
}

func TestAuthService_Login_Failures(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func(c *config.App)
		creds   models.AdminCredentials
		verify  func(h *mock.MockPasswordHasher)
		wantErr error
	}{
		{
			name:    "empty password",
			creds:   models.AdminCredentials{Login: "admin"},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "no hash configured",
			cfg:     func(c *config.App) { c.AdminPasswordHash = "" },
			creds:   models.AdminCredentials{Login: "admin", Password: "pw"},
			wantErr: ErrAdminNotConfigured,
		},
		{
			name:  "wrong password",
			creds: models.AdminCredentials{Login: "admin", Password: "pw"},
			verify: func(h *mock.MockPasswordHasher) {
				h.EXPECT().Verify("pw", testHash).Return(false, nil)
			},
			wantErr: ErrWrongCredentials,
		},
		{
			name:  "wrong login",
			creds: models.AdminCredentials{Login: "root", Password: "pw"},
			verify: func(h *mock.MockPasswordHasher) {
				h.EXPECT().Verify("pw", testHash).Return(true, nil)
			},
			wantErr: ErrWrongCredentials,
		},
		{
			name:  "broken hash",
			creds: models.AdminCredentials{Login: "admin", Password: "pw"},
			verify: func(h *mock.MockPasswordHasher) {
				h.EXPECT().Verify("pw", testHash).Return(false, crypto.ErrInvalidHash)
			},
			wantErr: ErrAdminNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			hasher := mock.NewMockPasswordHasher(ctrl)
			if tt.verify != nil {
				tt.verify(hasher)
			}

			cfg := testAppConfig()
			if tt.cfg != nil {
				tt.cfg(&cfg)
			}

			_, err := NewAuthService(hasher, cfg, logger.Nop()).Login(context.Background(), tt.creds)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestAuthService_Login_RealHasher(t *testing.T) {
	hasher := crypto.NewPasswordHasher()
	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)

	cfg := testAppConfig()
	cfg.AdminPasswordHash = hash
	svc := NewAuthService(hasher, cfg, logger.Nop())

	_, err = svc.Login(context.Background(), models.AdminCredentials{Login: "admin", Password: "correct horse"})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), models.AdminCredentials{Login: "admin", Password: "battery staple"})
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_CreateToken_MissingSignKey(t *testing.T) {
	cfg := testAppConfig()
	cfg.TokenSignKey = ""

	_, err := NewAuthService(nil, cfg, logger.Nop()).CreateToken(context.Background(), "admin")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := NewAuthService(nil, testAppConfig(), logger.Nop())

	other := testAppConfig()
	other.TokenSignKey = "other-key"
	foreign, err := NewAuthService(nil, other, logger.Nop()).CreateToken(context.Background(), "admin")
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", foreign.SignedString} {
		_, err := svc.ParseToken(context.Background(), raw)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	}
}
