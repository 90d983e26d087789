package store

import (
	"context"

	"github.com/MKhiriev/socialix/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts, follower sets and profile fields in
// the credential store.
type UserRepository interface {
	// CreateUser inserts a new account. Returns ErrUserAlreadyExists when the
	// user name or email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// ExistsByUserNameOrEmail reports whether any account uses userName or email.
	ExistsByUserNameOrEmail(ctx context.Context, userName, email string) (bool, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	// FindUsersByIDs returns the users whose ids are listed, in the order given.
	// Unknown ids are skipped.
	FindUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)
	// ToggleFollower adds followerID to the follower set of targetID, or
	// removes it when already present, in a single statement. Returns whether
	// followerID is a follower after the call.
	ToggleFollower(ctx context.Context, targetID, followerID uuid.UUID) (bool, error)
	UpdateBio(ctx context.Context, id uuid.UUID, bio string) error
	UpdateProfilePic(ctx context.Context, id uuid.UUID, media models.Media) error
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// MediaStorage stores profile images in an external object store.
type MediaStorage interface {
	// Upload stores file under folder and returns its public URL and handle.
	Upload(ctx context.Context, folder string, file models.MediaFile) (models.Media, error)
	// Destroy removes the object identified by publicID.
	Destroy(ctx context.Context, publicID string) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
