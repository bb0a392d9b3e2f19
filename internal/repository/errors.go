package repository

import (
	"errors"

	"github.com/lib/pq"
)

const codeForeignKeyViolation pq.ErrorCode = "23503"

// IsForeignKeyViolation reports whether err is a foreign key violation,
// e.g. members written for a draft that no longer exists.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
