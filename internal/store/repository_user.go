package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-phone-auth/internal/logger"
	"github.com/MKhiriev/go-phone-auth/models"
)

// userRepository is the SQL implementation of [UserRepository] working
// against the "users" table of any supported driver.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a user row and returns user with UserID populated.
//
// No lookup precedes the INSERT: the unique constraint on users.phone is
// the only duplicate check, so two concurrent registrations of the same
// phone produce exactly one row and one [ErrPhoneAlreadyExists].
//
// Error handling:
//   - unique violation → [ErrPhoneAlreadyExists];
//   - connection problems → wraps [ErrDatabaseUnavailable];
//   - anything else → wraps [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	if r.db.driver == DriverPostgres {
		err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID)
	} else {
		var res sql.Result
		res, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			user.UserID, err = res.LastInsertId()
		}
	}

	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.errorClassificator.Classify(err).IsRetryable()).
			Msg("error inserting user")
		return models.User{}, wrapDBError(r.db.errorClassificator, err)
	}

	return user, nil
}

// FindUserByPhone retrieves the user row with the given phone, password hash
// included.
//
// Error handling:
//   - no rows → [ErrNoUserWasFound];
//   - connection problems → wraps [ErrDatabaseUnavailable];
//   - anything else → wraps [ErrExecutingQuery].
func (r *userRepository) FindUserByPhone(ctx context.Context, phone string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByPhoneQuery(r.db, phone)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByPhone").Msg("error building query")
		return models.User{}, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByPhone").Msg("error querying user")
		return models.User{}, wrapDBError(r.db.errorClassificator, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			log.Err(err).Str("func", "*userRepository.FindUserByPhone").Msg("error iterating rows")
			return models.User{}, wrapDBError(r.db.errorClassificator, err)
		}
		return models.User{}, ErrNoUserWasFound
	}

	var found models.User
	if err = rows.Scan(&found.UserID, &found.Phone, &found.Password); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByPhone").Msg("error scanning row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}
