// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package admin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/naildesignsart/naildesigns-art/internal/platform/apperr"
	"github.com/naildesignsart/naildesigns-art/internal/platform/constants"
	"github.com/naildesignsart/naildesigns-art/internal/platform/sec"
	"github.com/naildesignsart/naildesigns-art/internal/platform/validate"
	"github.com/naildesignsart/naildesigns-art/pkg/uuidv7"
)

// TokenProvider defines the contract for minting and checking access
// tokens.
type TokenProvider interface {
	GenerateAccessToken(adminID, email, sessionID string, timeToLive time.Duration) (string, error)
	VerifyToken(tokenString string) (*sec.AdminClaims, error)
}

// Service implements console sign-in and sign-out.
type Service struct {
	accounts AccountRepository
	sessions SessionRepository
	tokens   TokenProvider
	logger   *slog.Logger
}

func NewService(accounts AccountRepository, sessions SessionRepository, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// LoginInput holds submitted credentials.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is a successfully established console session.
type LoginResult struct {
	AccessToken string   `json:"accessToken"`
	ExpiresAt   string   `json:"expiresAt"`
	Account     *Account `json:"account"`
}

// Login verifies credentials, records a session and issues a JWT bound to
// it.
//
// Failures are uniformly Unauthorized regardless of whether the email or
// the password was wrong, so the endpoint cannot be used to enumerate
// accounts.
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	account, err := service.accounts.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Constant-time comparison inside bcrypt.
	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	sessionID := uuidv7.New()
	if err := service.sessions.Create(ctx, sessionID, account.ID, constants.AccessTokenTTL); err != nil {
		return nil, fmt.Errorf("admin_session_create_failed: %w", err)
	}

	expiresAt := time.Now().UTC().Add(constants.AccessTokenTTL)
	accessToken, err := service.tokens.GenerateAccessToken(account.ID, account.Email, sessionID, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("admin_token_generation_failed: %w", err)
	}

	service.logger.Info("admin_login", slog.String("admin_id", account.ID))

	return &LoginResult{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt.Format(time.RFC3339),
		Account:     account,
	}, nil
}

// Logout revokes the session named by the verified claims. Revoking an
// already-gone session still succeeds; logout is idempotent.
func (service *Service) Logout(ctx context.Context, claims *sec.AdminClaims) error {
	if err := service.sessions.Delete(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("admin_logout_failed: %w", err)
	}
	service.logger.Info("admin_logout", slog.String("admin_id", claims.AdminID))
	return nil
}

// VerifyToken satisfies the middleware's token verifier: the JWT signature
// and expiry are checked first, then the session it names must still exist
// in the session store. A signed-out token fails here even before expiry.
func (service *Service) VerifyToken(tokenString string) (*sec.AdminClaims, error) {
	claims, err := service.tokens.VerifyToken(tokenString)
	if err != nil {
		return nil, err
	}

	if _, err := service.sessions.Get(context.Background(), claims.SessionID); err != nil {
		return nil, apperr.Unauthorized("Session has been revoked")
	}
	return claims, nil
}

// EnsureAccount creates the account when the email is unknown. Startup
// calls this with operator-provided credentials so a fresh deployment has
// a way in; an existing account is left untouched.
func (service *Service) EnsureAccount(ctx context.Context, email, password string) error {
	if _, err := service.accounts.FindByEmail(ctx, email); err == nil {
		return nil
	}

	passwordHash, err := sec.HashPassword(password)
	if err != nil {
		return fmt.Errorf("admin_hash_failed: %w", err)
	}

	account := &Account{
		ID:           uuidv7.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := service.accounts.Create(ctx, account); err != nil {
		return fmt.Errorf("admin_bootstrap_failed: %w", err)
	}

	service.logger.Info("admin_account_bootstrapped", slog.String("email", email))
	return nil
}
