package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-smtp-mailer/internal/config"
	"github.com/MKhiriev/go-smtp-mailer/internal/crypto"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/utils"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

// authService authenticates the single administrator configured in
// [config.App] and issues JWTs for the admin API.
type authService struct {
	hasher crypto.PasswordHasher

	adminLogin        string
	adminPasswordHash string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim. Tokens with another issuer are rejected.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

func NewAuthService(hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		hasher:            hasher,
		adminLogin:        cfg.AdminLogin,
		adminPasswordHash: cfg.AdminPasswordHash,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Login checks credentials against the configured login and argon2id hash
// and issues a token.
//
// Returns ErrInvalidDataProvided for an empty login or password,
// ErrAdminNotConfigured when no hash is configured and ErrWrongCredentials
// on mismatch. A wrong login and a wrong password are indistinguishable.
func (a *authService) Login(ctx context.Context, credentials models.AdminCredentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if credentials.Login == "" || credentials.Password == "" {
		log.Error().Str("login", credentials.Login).Msg("invalid credentials provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	if a.adminPasswordHash == "" {
		log.Error().Msg("login attempt while administrator password hash is not configured")
		return models.Token{}, ErrAdminNotConfigured
	}

	ok, err := a.hasher.Verify(credentials.Password, a.adminPasswordHash)
	if err != nil {
		log.Err(err).Msg("configured administrator password hash is unusable")
		return models.Token{}, fmt.Errorf("%w: %w", ErrAdminNotConfigured, err)
	}

	loginOK := subtle.ConstantTimeCompare([]byte(credentials.Login), []byte(a.adminLogin)) == 1
	if !ok || !loginOK {
		log.Warn().Str("login", credentials.Login).Msg("wrong login or password")
		return models.Token{}, ErrWrongCredentials
	}

	return a.CreateToken(ctx, credentials.Login)
}

func (a *authService) CreateToken(ctx context.Context, login string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, login, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken normalises every validation failure to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
