// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the socialix HTTP API.
//
// The primary abstraction is [APIClient], which hides request building,
// session token handling, and error decoding from its callers. The package
// ships an HTTP/REST implementation ([NewHTTPAPIClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/socialix/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// APIClient talks to a socialix server on behalf of one user.
// Implementations keep the session token returned by SignIn or Login and
// attach it to every authenticated request.
type APIClient interface {
	// SetToken stores the session token used by subsequent requests.
	SetToken(token string)

	// Token returns the stored session token, or an empty string.
	Token() string

	// SignIn registers a new account and stores the issued session token.
	SignIn(ctx context.Context, req models.SignInRequest) (models.User, error)

	// Login authenticates with email and password and stores the issued
	// session token. Returns the server confirmation message.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// Logout ends the session on the server and forgets the local token.
	Logout(ctx context.Context) error

	// Me returns the authenticated user with populated followers.
	Me(ctx context.Context) (models.User, error)

	// ToggleFollow follows targetID, or unfollows it when already followed.
	// Returns the server confirmation message ("Followed x" / "Unfollowed x").
	ToggleFollow(ctx context.Context, targetID string) (string, error)

	// GetUser returns the public details of the user identified by id.
	GetUser(ctx context.Context, id string) (models.User, error)

	// SearchUsers returns users whose name or email matches query.
	SearchUsers(ctx context.Context, query string) ([]models.User, error)

	// ListUsers returns every user.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateProfile changes the bio and/or the profile image. A nil bio
	// leaves the bio untouched; a nil media reader keeps the current image.
	UpdateProfile(ctx context.Context, bio *string, fileName string, media io.Reader) (models.User, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
