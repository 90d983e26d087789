package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/socialix/internal/config"
	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/internal/store"
	"github.com/MKhiriev/socialix/models"
	"github.com/google/uuid"
)

// profileService updates profile text and swaps profile images. The image
// swap runs as upload, persist, destroy-old; a failed persist destroys the new
// upload and a failed destroy of the old image is handed to the cleaner.
type profileService struct {
	userRepository store.UserRepository
	mediaStorage   store.MediaStorage
	cleaner        MediaCleaner
	folder         string
	logger         *logger.Logger
}

func NewProfileService(
	userRepository store.UserRepository,
	mediaStorage store.MediaStorage,
	cleaner MediaCleaner,
	cfg config.Media,
	logger *logger.Logger,
) ProfileService {
	return &profileService{
		userRepository: userRepository,
		mediaStorage:   mediaStorage,
		cleaner:        cleaner,
		folder:         cfg.Folder,
		logger:         logger,
	}
}

// UpdateProfile applies update to the user and returns the stored result.
//
// Returns:
//   - ErrUserNotFound if the user does not exist.
//   - ErrUpstream if the media store rejects the upload.
func (p *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx).WithUserID(userID.String())

	user, err := p.findUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if update.Bio != nil {
		if err := p.userRepository.UpdateBio(ctx, userID, *update.Bio); err != nil {
			log.Err(err).Msg("bio update failed")
			return models.User{}, p.mapStoreError(err, "error updating bio")
		}
	}

	if update.Media != nil {
		if err := p.swapProfilePic(ctx, user, *update.Media); err != nil {
			return models.User{}, err
		}
	}

	updated, err := p.findUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	return populateFollowers(ctx, p.userRepository, updated)
}

func (p *profileService) swapProfilePic(ctx context.Context, user models.User, file models.MediaFile) error {
	log := logger.FromContext(ctx).WithUserID(user.ID.String())

	media, err := p.mediaStorage.Upload(ctx, p.folder, file)
	switch {
	case errors.Is(err, store.ErrEmptyMedia):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	case err != nil:
		log.Err(err).Msg("profile image upload failed")
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	if err := p.userRepository.UpdateProfilePic(ctx, user.ID, media); err != nil {
		log.Err(err).Str("public_id", media.PublicID).Msg("persisting profile image failed, destroying upload")
		if destroyErr := p.mediaStorage.Destroy(ctx, media.PublicID); destroyErr != nil {
			log.Err(destroyErr).Str("public_id", media.PublicID).Msg("destroying orphaned upload failed")
			p.cleaner.Enqueue(media.PublicID)
		}
		return p.mapStoreError(err, "error saving profile image")
	}

	if user.PublicID == "" {
		return nil
	}

	if err := p.mediaStorage.Destroy(ctx, user.PublicID); err != nil {
		log.Warn().Err(err).Str("public_id", user.PublicID).Msg("destroying previous profile image failed, scheduled for cleanup")
		p.cleaner.Enqueue(user.PublicID)
	}

	return nil
}

func (p *profileService) findUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, p.mapStoreError(err, "error loading user")
	}
	return user, nil
}

func (p *profileService) mapStoreError(err error, msg string) error {
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
