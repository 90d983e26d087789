package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgtype"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, follower toggling and profile updates
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one users row. uuid[] columns are decoded by pgx's array
// codec; a fresh type map per row keeps concurrent scans independent.
func scanUser(row rowScanner) (models.User, error) {
	var (
		user                                models.User
		followers, posts, replies, reposts []pgtype.UUID
	)
	typeMap := pgtype.NewMap()

	err := row.Scan(
		&user.ID,
		&user.UserName,
		&user.Email,
		&user.PasswordHash,
		&user.Bio,
		&user.ProfilePic,
		&user.PublicID,
		typeMap.SQLScanner(&followers),
		typeMap.SQLScanner(&posts),
		typeMap.SQLScanner(&replies),
		typeMap.SQLScanner(&reposts),
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.FollowerIDs = toUUIDs(followers)
	user.PostIDs = toUUIDs(posts)
	user.ReplyIDs = toUUIDs(replies)
	user.RepostIDs = toUUIDs(reposts)

	return user, nil
}

func toUUIDs(values []pgtype.UUID) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		if v.Valid {
			ids = append(ids, uuid.UUID(v.Bytes))
		}
	}
	return ids
}

// CreateUser inserts user and returns the stored row.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user.ID, user.UserName, user.Email, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return created, nil
}

func (r *userRepository) ExistsByUserNameOrEmail(ctx context.Context, userName, email string) (bool, error) {
	var exists bool
	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.DB.QueryRowContext(ctx, existsByUserNameOrEmail, userName, email).Scan(&exists)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ExistsByUserNameOrEmail").Msg("error checking user existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// FindUserByEmail returns [ErrNoUserWasFound] when no account uses email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildFindUserByEmailQuery(email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByEmail", query, args)
}

// FindUserByID returns [ErrNoUserWasFound] when id is unknown.
func (r *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	query, args, err := buildFindUserByIDQuery(id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		user, scanErr = scanUser(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// FindUsersByIDs keeps the order of ids and skips unknown ones. An empty ids
// slice returns an empty result without touching the database.
func (r *userRepository) FindUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	query, args, err := buildFindUsersByIDsQuery(ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := r.findMany(ctx, "*userRepository.FindUsersByIDs", query, args)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.User, len(found))
	for _, user := range found {
		byID[user.ID] = user
	}

	ordered := make([]models.User, 0, len(found))
	for _, id := range ids {
		if user, ok := byID[id]; ok {
			ordered = append(ordered, user)
		}
	}

	return ordered, nil
}

func (r *userRepository) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	sqlQuery, args, err := buildSearchUsersQuery(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findMany(ctx, "*userRepository.SearchUsers", sqlQuery, args)
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	query, args, err := buildListUsersQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findMany(ctx, "*userRepository.ListUsers", query, args)
}

func (r *userRepository) findMany(ctx context.Context, funcName, query string, args []any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	var users []models.User
	err := r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		users = make([]models.User, 0, 16)
		for rows.Next() {
			user, err := scanUser(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			users = append(users, user)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error listing users")
		return nil, err
	}

	return users, nil
}

// ToggleFollower returns [ErrNoUserWasFound] when targetID is unknown; nothing
// is written in that case.
func (r *userRepository) ToggleFollower(ctx context.Context, targetID, followerID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	var followed bool
	err := r.DB.QueryRowContext(ctx, toggleFollower, targetID.String(), followerID.String()).Scan(&followed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, ErrNoUserWasFound
	case err != nil:
		log.Err(err).
			Str("func", "*userRepository.ToggleFollower").
			Str("target_id", targetID.String()).
			Str("follower_id", followerID.String()).
			Msg("error toggling follower")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return followed, nil
}

func (r *userRepository) UpdateBio(ctx context.Context, id uuid.UUID, bio string) error {
	return r.execUpdate(ctx, "*userRepository.UpdateBio", updateBio, id.String(), bio)
}

func (r *userRepository) UpdateProfilePic(ctx context.Context, id uuid.UUID, media models.Media) error {
	return r.execUpdate(ctx, "*userRepository.UpdateProfilePic", updateProfilePic, id.String(), media.SecureURL, media.PublicID)
}

func (r *userRepository) execUpdate(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
