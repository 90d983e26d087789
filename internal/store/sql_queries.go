package store

import (
	"strings"

	"github.com/MKhiriev/socialix/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var usersTable = models.User{}.TableName()

// userColumns is the scan order used by scanUser.
var userColumns = []string{
	"id",
	"user_name",
	"email",
	"password",
	"bio",
	"profile_pic",
	"public_id",
	"followers",
	"posts",
	"replies",
	"reposts",
	"created_at",
	"updated_at",
}

const (
	// toggleFollower flips membership of $2 in the follower set of $1 in one
	// row update and reports the resulting membership.
	toggleFollower = `UPDATE users
		SET followers = CASE
				WHEN $2::uuid = ANY(followers) THEN array_remove(followers, $2::uuid)
				ELSE array_append(followers, $2::uuid)
			END,
			updated_at = now()
		WHERE id = $1
		RETURNING $2::uuid = ANY(followers);`

	existsByUserNameOrEmail = `SELECT EXISTS (
		SELECT 1 FROM users WHERE user_name = $1 OR email = $2
	);`

	updateBio = `UPDATE users
		SET bio = $2, updated_at = now()
		WHERE id = $1;`

	updateProfilePic = `UPDATE users
		SET profile_pic = $2, public_id = $3, updated_at = now()
		WHERE id = $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func selectUsers() sq.SelectBuilder {
	return psql.Select(userColumns...).From(usersTable)
}

func buildCreateUserQuery(id uuid.UUID, userName, email, passwordHash string) (string, []any, error) {
	return psql.Insert(usersTable).
		Columns("id", "user_name", "email", "password").
		Values(id.String(), userName, email, passwordHash).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return selectUsers().Where(sq.Eq{"email": email}).ToSql()
}

func buildFindUserByIDQuery(id uuid.UUID) (string, []any, error) {
	return selectUsers().Where(sq.Eq{"id": id.String()}).ToSql()
}

func buildFindUsersByIDsQuery(ids []uuid.UUID) (string, []any, error) {
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}

	return selectUsers().Where(sq.Eq{"id": values}).ToSql()
}

// buildSearchUsersQuery matches query as a case-insensitive substring of the
// user name or the email. LIKE metacharacters in query are matched literally.
func buildSearchUsersQuery(query string) (string, []any, error) {
	pattern := "%" + escapeLike(query) + "%"

	return selectUsers().
		Where(sq.Or{sq.ILike{"user_name": pattern}, sq.ILike{"email": pattern}}).
		OrderBy("user_name").
		ToSql()
}

func buildListUsersQuery() (string, []any, error) {
	return selectUsers().OrderBy("created_at").ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
