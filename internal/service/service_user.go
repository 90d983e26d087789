package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/internal/store"
	"github.com/MKhiriev/socialix/models"
	"github.com/google/uuid"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ToggleFollow adds actorID to the followers of targetID, or removes it when
// already present.
//
// Returns:
//   - ErrMissingTarget if targetID is empty or not a valid id.
//   - ErrSelfFollow if targetID equals actorID.
//   - ErrTargetNotFound if no such user exists. Nothing is written.
func (s *userService) ToggleFollow(ctx context.Context, actorID uuid.UUID, targetID string) (models.FollowResult, error) {
	log := logger.FromContext(ctx)

	target, err := uuid.Parse(strings.TrimSpace(targetID))
	if err != nil || target == uuid.Nil {
		return models.FollowResult{}, ErrMissingTarget
	}
	if target == actorID {
		return models.FollowResult{}, ErrSelfFollow
	}

	targetUser, err := s.userRepository.FindUserByID(ctx, target)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.FollowResult{}, ErrTargetNotFound
	case err != nil:
		return models.FollowResult{}, fmt.Errorf("error loading follow target: %w", err)
	}

	followed, err := s.userRepository.ToggleFollower(ctx, target, actorID)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		// deleted between lookup and update
		return models.FollowResult{}, ErrTargetNotFound
	case err != nil:
		return models.FollowResult{}, fmt.Errorf("error toggling follower: %w", err)
	}

	log.Info().
		Str("actor_id", actorID.String()).
		Str("target_id", target.String()).
		Bool("followed", followed).
		Msg("follow toggled")

	return models.FollowResult{Followed: followed, Target: targetUser}, nil
}

// GetUserDetails returns the user identified by id with followers populated.
func (s *userService) GetUserDetails(ctx context.Context, id string) (models.User, error) {
	userID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return models.User{}, ErrInvalidUserID
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, ErrUserNotFound
	case err != nil:
		return models.User{}, fmt.Errorf("error loading user: %w", err)
	}

	return populateFollowers(ctx, s.userRepository, user)
}

// SearchUsers never returns a nil slice on success.
func (s *userService) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	users, err := s.userRepository.SearchUsers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error searching users: %w", err)
	}

	return nonNil(users), nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return nonNil(users), nil
}

func nonNil(users []models.User) []models.User {
	if users == nil {
		return []models.User{}
	}
	return users
}
