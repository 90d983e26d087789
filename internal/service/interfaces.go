package service

import (
	"context"
	"time"

	"github.com/MKhiriev/socialix/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and logs in users and issues and verifies session
// tokens.
type AuthService interface {
	// Register validates req, rejects taken user names and emails, and stores
	// the account with a bcrypt password hash.
	Register(ctx context.Context, req models.SignInRequest) (models.User, error)
	// Login checks the email and password pair.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	// CreateToken issues a signed session token for user valid for ttl.
	CreateToken(ctx context.Context, user models.User, ttl time.Duration) (models.Token, error)
	// ParseToken verifies raw. Any failure is reported as ErrInvalidToken.
	ParseToken(ctx context.Context, raw string) (models.Token, error)
	// Authenticate verifies raw and loads its user with followers populated.
	Authenticate(ctx context.Context, raw string) (models.User, error)
}

// UserService implements the follow toggle and read access to user profiles.
type UserService interface {
	ToggleFollow(ctx context.Context, actorID uuid.UUID, targetID string) (models.FollowResult, error)
	GetUserDetails(ctx context.Context, id string) (models.User, error)
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ProfileService updates the bio and the profile image of a user.
type ProfileService interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MediaCleaner accepts media handles whose destroy failed so that it can be
// retried later.
type MediaCleaner interface {
	Enqueue(publicID string)
}
