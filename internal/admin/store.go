// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package admin

import (
	"context"
	"time"
)

// AccountRepository is the persistence contract for console accounts.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	Create(ctx context.Context, account *Account) error
}

// SessionRepository tracks live sessions. Entries expire with the access
// token; deleting one revokes the token before its expiry.
type SessionRepository interface {
	Create(ctx context.Context, sessionID, adminID string, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}
