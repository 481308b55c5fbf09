package store

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers the classifier cares about.
// See https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html.
const (
	mysqlErrDupEntry         = 1062
	mysqlErrConCount         = 1040
	mysqlErrServerShutdown   = 1053
	mysqlErrTooManyUserConns = 1203
	mysqlErrLockWaitTimeout  = 1205
)

// MySQLErrorClassifier implements [ErrorClassificator] for MySQL and MariaDB.
type MySQLErrorClassifier struct{}

func NewMySQLErrorClassifier() *MySQLErrorClassifier {
	return &MySQLErrorClassifier{}
}

func (c *MySQLErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	if errors.Is(err, mysql.ErrInvalidConn) {
		return Unavailable
	}

	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return Unclassified
	}

	switch myErr.Number {
	case mysqlErrDupEntry:
		return UniqueViolation
	case mysqlErrConCount, mysqlErrTooManyUserConns, mysqlErrServerShutdown, mysqlErrLockWaitTimeout:
		return Unavailable
	}

	return Unclassified
}
