package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-phone-auth/models"
)

var usersTable = models.User{}.TableName()

const (
	columnID       = "id"
	columnPhone    = "phone"
	columnPassword = "password"
)

// buildInsertUserQuery returns an INSERT of phone and password hash. On
// postgres the new id comes back through RETURNING; the other drivers
// report it via LastInsertId.
func buildInsertUserQuery(db *DB, user models.User) (string, []any, error) {
	q := db.builder().
		Insert(usersTable).
		Columns(columnPhone, columnPassword).
		Values(user.Phone, user.Password)

	if db.driver == DriverPostgres {
		q = q.Suffix("RETURNING " + columnID)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectUserByPhoneQuery(db *DB, phone string) (string, []any, error) {
	query, args, err := db.builder().
		Select(columnID, columnPhone, columnPassword).
		From(usersTable).
		Where(sq.Eq{columnPhone: phone}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
