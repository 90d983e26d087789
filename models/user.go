// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents an account of the social network together with its profile
// data and relationship references.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID v7, generated server-side).
	ID uuid.UUID `json:"id"`

	// UserName is the unique public handle of the user.
	UserName string `json:"userName"`

	// Email is the unique e-mail address used to log in.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Bio is free-form profile text. An empty string is a valid bio.
	Bio string `json:"bio"`

	// ProfilePic is the secure URL of the current profile image, if any.
	ProfilePic string `json:"profilePic"`

	// PublicID is the media store handle of the current profile image.
	// It is required to destroy the image and is kept server-side only.
	PublicID string `json:"-"`

	// FollowerIDs holds the identifiers of users following this user.
	// Each identifier appears at most once.
	FollowerIDs []uuid.UUID `json:"-"`

	// Followers holds the populated follower records. It is filled only by
	// operations that resolve FollowerIDs (auth gate, user details). When nil,
	// "followers" is encoded as the list of FollowerIDs.
	Followers []User `json:"-"`

	// PostIDs, ReplyIDs and RepostIDs are references to content owned by
	// the user. Content itself lives outside this service.
	PostIDs   []uuid.UUID `json:"posts"`
	ReplyIDs  []uuid.UUID `json:"replies"`
	RepostIDs []uuid.UUID `json:"reposts"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// MarshalJSON encodes "followers" as populated records when available and as
// identifiers otherwise. Reference lists are never encoded as null.
func (u User) MarshalJSON() ([]byte, error) {
	type plainUser User

	var followers any = nonNilIDs(u.FollowerIDs)
	if u.Followers != nil {
		followers = u.Followers
	}

	return json.Marshal(struct {
		plainUser
		Followers any         `json:"followers"`
		PostIDs   []uuid.UUID `json:"posts"`
		ReplyIDs  []uuid.UUID `json:"replies"`
		RepostIDs []uuid.UUID `json:"reposts"`
	}{
		plainUser: plainUser(u),
		Followers: followers,
		PostIDs:   nonNilIDs(u.PostIDs),
		ReplyIDs:  nonNilIDs(u.ReplyIDs),
		RepostIDs: nonNilIDs(u.RepostIDs),
	})
}

// Summary returns a copy of u without relationship data, suitable for
// embedding in another user's follower list.
func (u User) Summary() User {
	return User{
		ID:         u.ID,
		UserName:   u.UserName,
		Email:      u.Email,
		Bio:        u.Bio,
		ProfilePic: u.ProfilePic,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
