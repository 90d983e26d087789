package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because the user name or email is already taken.
	ErrUserAlreadyExists = errors.New("user name or email already exists")

	// ErrNoUserWasFound is returned when a query or update expected to match
	// one user record matches none.
	ErrNoUserWasFound = errors.New("no user was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan user rows")
)

// Media store errors.
var (
	// ErrMediaUpload is returned when the object store rejects an upload.
	ErrMediaUpload = errors.New("failed to upload media")

	// ErrMediaDestroy is returned when the object store fails to delete an object.
	ErrMediaDestroy = errors.New("failed to destroy media")

	// ErrEmptyMedia is returned when an upload has no content.
	ErrEmptyMedia = errors.New("media file is empty")
)
