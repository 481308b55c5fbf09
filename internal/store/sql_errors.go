package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified covers every error the classifier has no opinion on.
	Unclassified ErrorClassification = iota

	// UniqueViolation means a unique or primary key constraint rejected the
	// statement.
	UniqueViolation

	// Unavailable means the database could not be reached or is refusing
	// connections. Such failures are transient.
	Unavailable
)

func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case Unavailable:
		return "unavailable"
	default:
		return "unclassified"
	}
}

// IsRetryable reports whether an operation that failed with c may succeed
// if attempted again.
func (c ErrorClassification) IsRetryable() bool {
	return c == Unavailable
}

// wrapDBError converts a driver error into one of the package sentinels.
// notFound-style errors must be handled by the caller before this point.
func wrapDBError(classifier ErrorClassificator, err error) error {
	if errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	switch classifier.Classify(err) {
	case UniqueViolation:
		return ErrPhoneAlreadyExists
	case Unavailable:
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
