// Copyright (c) 2026 NailDesigns.art. All rights reserved.

/*
Package admin implements the console's authentication surface.

There is no role model: an account is either signed in or it is not.
Access tokens are JWTs tied to a Redis-backed session, so signing out
revokes the token server-side before its expiry.
*/
package admin

import "time"

// Account is a console operator.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Validation field names.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)
