package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/socialix/internal/config"
	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/internal/store"
	"github.com/MKhiriev/socialix/internal/utils"
	"github.com/MKhiriev/socialix/internal/validators"
	"github.com/MKhiriev/socialix/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	ids *utils.UUIDGenerator

	// validator checks sign-in and login payloads before the store is touched.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		ids:            utils.NewUUIDGenerator(),
		validator:      validators.NewRequestValidator(),
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if any of userName, email, password is empty
//     or the password exceeds the bcrypt limit. The store is not touched.
//   - ErrUserAlreadyExists if the user name or email is taken, either found
//     up front or reported by the store's unique constraint.
func (a *authService) Register(ctx context.Context, req models.SignInRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	userName := strings.TrimSpace(req.UserName)
	email := strings.TrimSpace(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("user_name", userName).Str("email", email).Msg("invalid sign-in data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	exists, err := a.userRepository.ExistsByUserNameOrEmail(ctx, userName, email)
	if err != nil {
		log.Err(err).Str("user_name", userName).Msg("user existence check failed")
		return models.User{}, fmt.Errorf("user existence check failed: %w", err)
	}
	if exists {
		return models.User{}, ErrUserAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.ids.Generate(),
		UserName:     userName,
		Email:        email,
		PasswordHash: hash,
	})
	switch {
	case errors.Is(err, store.ErrUserAlreadyExists):
		return models.User{}, ErrUserAlreadyExists
	case err != nil:
		log.Err(err).Str("user_name", userName).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", registeredUser.ID.String()).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrUserNotFound if no account uses the email.
//   - ErrInvalidCredentials if the password does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("email", email).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := utils.ComparePassword(foundUser.PasswordHash, req.Password); err != nil {
		log.Warn().Err(err).Str("user_id", foundUser.ID.String()).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after ttl.
func (a *authService) CreateToken(ctx context.Context, user models.User, ttl time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, ttl, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID.String()).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed,
// missing subject) is normalised to ErrInvalidToken so that callers do not
// need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, raw string) (models.Token, error) {
	if raw == "" {
		return models.Token{}, ErrMissingToken
	}

	token, err := utils.ValidateAndParseJWTToken(raw, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}

// Authenticate resolves raw to its user, followers populated.
// A valid token for a deleted account yields ErrUnknownUser.
func (a *authService) Authenticate(ctx context.Context, raw string) (models.User, error) {
	token, err := a.ParseToken(ctx, raw)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, ErrUnknownUser
	case err != nil:
		return models.User{}, fmt.Errorf("error loading session user: %w", err)
	}

	return populateFollowers(ctx, a.userRepository, user)
}
