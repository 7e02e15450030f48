// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package admin_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naildesignsart/naildesigns-art/internal/admin"
	"github.com/naildesignsart/naildesigns-art/internal/platform/apperr"
	"github.com/naildesignsart/naildesigns-art/internal/platform/sec"
)

type fakeAccounts struct {
	accounts map[string]*admin.Account
}

func (f *fakeAccounts) FindByEmail(_ context.Context, email string) (*admin.Account, error) {
	account, ok := f.accounts[email]
	if !ok {
		return nil, apperr.NotFound("admin not found")
	}
	return account, nil
}

func (f *fakeAccounts) FindByID(_ context.Context, id string) (*admin.Account, error) {
	for _, account := range f.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, apperr.NotFound("admin not found")
}

func (f *fakeAccounts) Create(_ context.Context, account *admin.Account) error {
	if f.accounts == nil {
		f.accounts = make(map[string]*admin.Account)
	}
	f.accounts[account.Email] = account
	return nil
}

type fakeSessions struct {
	sessions map[string]string
}

func (f *fakeSessions) Create(_ context.Context, sessionID, adminID string, _ time.Duration) error {
	if f.sessions == nil {
		f.sessions = make(map[string]string)
	}
	f.sessions[sessionID] = adminID
	return nil
}

func (f *fakeSessions) Get(_ context.Context, sessionID string) (string, error) {
	adminID, ok := f.sessions[sessionID]
	if !ok {
		return "", apperr.Unauthorized("Session is invalid or expired")
	}
	return adminID, nil
}

func (f *fakeSessions) Delete(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

// fakeTokens issues transparent tokens of the form "token:{sessionID}" so
// tests can verify the session binding without real signing.
type fakeTokens struct {
	claims map[string]*sec.AdminClaims
}

func (f *fakeTokens) GenerateAccessToken(adminID, email, sessionID string, _ time.Duration) (string, error) {
	if f.claims == nil {
		f.claims = make(map[string]*sec.AdminClaims)
	}
	token := "token:" + sessionID
	f.claims[token] = &sec.AdminClaims{AdminID: adminID, Email: email, SessionID: sessionID}
	return token, nil
}

func (f *fakeTokens) VerifyToken(tokenString string) (*sec.AdminClaims, error) {
	claims, ok := f.claims[tokenString]
	if !ok {
		return nil, apperr.Unauthorized("Invalid token")
	}
	return claims, nil
}

func newTestService(t *testing.T) (*admin.Service, *fakeSessions) {
	t.Helper()

	passwordHash, err := sec.HashPassword("correct-horse")
	require.NoError(t, err)

	accounts := &fakeAccounts{accounts: map[string]*admin.Account{
		"ops@naildesigns.art": {
			ID:           "admin-1",
			Email:        "ops@naildesigns.art",
			PasswordHash: passwordHash,
		},
	}}
	sessions := &fakeSessions{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return admin.NewService(accounts, sessions, &fakeTokens{}, logger), sessions
}

/*
TestService_Login verifies the happy path: credentials accepted, session
recorded, token bound to it.
*/
func TestService_Login(t *testing.T) {
	service, sessions := newTestService(t)

	result, err := service.Login(context.Background(), admin.LoginInput{
		Email:    "ops@naildesigns.art",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "admin-1", result.Account.ID)
	assert.Len(t, sessions.sessions, 1)
}

/*
TestService_Login_Rejections verifies that wrong passwords and unknown
emails fail identically, preventing account enumeration.
*/
func TestService_Login_Rejections(t *testing.T) {
	service, _ := newTestService(t)

	wrongPassword, err1 := service.Login(context.Background(), admin.LoginInput{
		Email:    "ops@naildesigns.art",
		Password: "wrong",
	})
	unknownEmail, err2 := service.Login(context.Background(), admin.LoginInput{
		Email:    "nobody@naildesigns.art",
		Password: "correct-horse",
	})

	assert.Nil(t, wrongPassword)
	assert.Nil(t, unknownEmail)

	appError1 := apperr.As(err1)
	appError2 := apperr.As(err2)
	require.NotNil(t, appError1)
	require.NotNil(t, appError2)
	assert.Equal(t, appError1.Code, appError2.Code)
	assert.Equal(t, appError1.Message, appError2.Message)
}

/*
TestService_Login_Validation verifies malformed credentials are rejected
before any lookup.
*/
func TestService_Login_Validation(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Login(context.Background(), admin.LoginInput{Email: "not-an-email", Password: "x"})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}

/*
TestService_LogoutRevokesToken verifies the session binding: a token that
verified fine stops verifying after logout, well before its expiry.
*/
func TestService_LogoutRevokesToken(t *testing.T) {
	service, _ := newTestService(t)

	result, err := service.Login(context.Background(), admin.LoginInput{
		Email:    "ops@naildesigns.art",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	// 1. Token verifies while the session lives
	claims, err := service.VerifyToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)

	// 2. Logout, then the same token is refused
	require.NoError(t, service.Logout(context.Background(), claims))

	_, err = service.VerifyToken(result.AccessToken)
	assert.Error(t, err)
}

/*
TestService_EnsureAccount verifies bootstrap semantics: creates once,
leaves an existing account untouched.
*/
func TestService_EnsureAccount(t *testing.T) {
	service, _ := newTestService(t)

	// 1. New email gets an account that can then sign in
	err := service.EnsureAccount(context.Background(), "new@naildesigns.art", "secret-phrase")
	require.NoError(t, err)

	_, err = service.Login(context.Background(), admin.LoginInput{
		Email:    "new@naildesigns.art",
		Password: "secret-phrase",
	})
	assert.NoError(t, err)

	// 2. Existing email is untouched; the old password still works
	err = service.EnsureAccount(context.Background(), "ops@naildesigns.art", "different-password")
	require.NoError(t, err)

	_, err = service.Login(context.Background(), admin.LoginInput{
		Email:    "ops@naildesigns.art",
		Password: "correct-horse",
	})
	assert.NoError(t, err)
}
