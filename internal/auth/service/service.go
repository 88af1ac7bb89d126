// Package service provides business logic layer for auth module.
package service

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	authModel "github.com/hackdesk/hackdesk/internal/auth/model"
	appConfig "github.com/hackdesk/hackdesk/internal/config"
)

// Verifier validates the first-factor auth token for an email.
// In production this is the external OTP system; the default implementation
// checks a shared secret from configuration.
type Verifier interface {
	Verify(ctx context.Context, email, authToken string) error
}

type sharedSecretVerifier struct {
	secret string
}

// NewSharedSecretVerifier creates a verifier that compares the auth token
// against a configured shared secret.
func NewSharedSecretVerifier(secret string) Verifier {
	return &sharedSecretVerifier{secret: secret}
}

func (v *sharedSecretVerifier) Verify(_ context.Context, _, authToken string) error {
	if v.secret == "" {
		return authModel.ErrUnauthenticated
	}
	if subtle.ConstantTimeCompare([]byte(v.secret), []byte(authToken)) != 1 {
		return authModel.ErrUnauthenticated
	}
	return nil
}

// Service defines the interface for auth business logic operations.
type Service interface {
	// IssueSession verifies the auth token and returns a signed session token.
	IssueSession(ctx context.Context, req *authModel.SessionRequest) (*authModel.SessionResponse, error)

	// ResolvePrincipal validates a session token and returns the principal email.
	ResolvePrincipal(ctx context.Context, token string) (string, error)
}

type service struct {
	cfg      appConfig.AuthConfig
	verifier Verifier
	logger   *zap.SugaredLogger
}

// New creates a new auth service instance.
func New(cfg appConfig.AuthConfig, verifier Verifier, logger *zap.SugaredLogger) Service {
	return &service{
		cfg:      cfg,
		verifier: verifier,
		logger:   logger,
	}
}

// IssueSession verifies the auth token and returns a signed session token.
func (s *service) IssueSession(
	ctx context.Context,
	req *authModel.SessionRequest,
) (*authModel.SessionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, authModel.ErrInvalidEmail
	}

	if err := s.verifier.Verify(ctx, email, req.AuthToken); err != nil {
		return nil, err
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.SessionTTL)
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &authModel.SessionResponse{
		Token:     signed,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}, nil
}

// ResolvePrincipal validates a session token and returns the principal email.
func (s *service) ResolvePrincipal(_ context.Context, token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, authModel.ErrUnauthenticated
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return "", authModel.ErrUnauthenticated
	}

	if claims.Subject == "" {
		return "", authModel.ErrUnauthenticated
	}

	return claims.Subject, nil
}
