package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/socialix/internal/store"
	"github.com/MKhiriev/socialix/models"
)

// populateFollowers resolves user.FollowerIDs into follower summaries.
// Followers that no longer exist are skipped.
func populateFollowers(ctx context.Context, repo store.UserRepository, user models.User) (models.User, error) {
	if len(user.FollowerIDs) == 0 {
		user.Followers = []models.User{}
		return user, nil
	}

	followers, err := repo.FindUsersByIDs(ctx, user.FollowerIDs)
	if err != nil {
		return models.User{}, fmt.Errorf("error loading followers: %w", err)
	}

	user.Followers = make([]models.User, 0, len(followers))
	for _, follower := range followers {
		user.Followers = append(user.Followers, follower.Summary())
	}

	return user, nil
}
