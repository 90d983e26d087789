package service

import "errors"

// Validation errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrMissingTarget       = errors.New("target user id is missing or invalid")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrSelfFollow          = errors.New("users cannot follow themselves")
)

// Authentication errors.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingToken       = errors.New("no session token provided")
	ErrInvalidToken       = errors.New("session token is invalid or expired")
	ErrUnknownUser        = errors.New("session user does not exist")
)

// Lookup and conflict errors.
var (
	ErrUserAlreadyExists = errors.New("user name or email already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrTargetNotFound    = errors.New("target user not found")
)

// Infrastructure errors.
var (
	ErrTokenCreationFailed   = errors.New("failed to create session token")
	ErrUpstream              = errors.New("media store request failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
