package repository

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"

	"github.com/umputun/pushhub/pkg/domain"
)

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an article with the same content hash already exists in the feature
	ErrDuplicate = errors.New("duplicate article")
)

// errCritical is the termination marker passed to repeater, matched by every criticalError
var errCritical = errors.New("critical database error")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Is(target error) bool {
	return target == errCritical //nolint:errorlint // identity check of the marker
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// isUniqueError checks if an error is a unique constraint violation
func isUniqueError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// stringsSQL is a JSON array of strings for SQL operations
type stringsSQL []string

// Value implements driver.Valuer for database storage
func (s stringsSQL) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database retrieval
func (s *stringsSQL) Scan(value any) error {
	data, ok := scanBytes(value)
	if !ok {
		*s = stringsSQL{}
		return nil
	}
	return json.Unmarshal(data, s)
}

// entitiesSQL stores domain.Entities as a JSON object
type entitiesSQL domain.Entities

// Value implements driver.Valuer for database storage
func (e entitiesSQL) Value() (driver.Value, error) {
	b, err := json.Marshal(domain.Entities(e))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database retrieval
func (e *entitiesSQL) Scan(value any) error {
	data, ok := scanBytes(value)
	if !ok {
		*e = entitiesSQL{}
		return nil
	}
	return json.Unmarshal(data, (*domain.Entities)(e))
}

func scanBytes(value any) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, len(v) > 0
	case string:
		return []byte(v), v != ""
	default:
		return nil, false
	}
}
