package errors

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// sqlstates maps the SQLSTATEs repos care about to a code and whether a retry can help
// anything else is a plain DB error
var sqlstates = map[string]struct {
	code  ErrorCode
	retry bool
}{
	"23505": {ErrorCodeDuplicateKey, false},    // unique_violation
	"23503": {ErrorCodeInvalidArgument, false}, // foreign_key_violation
	"23502": {ErrorCodeValidation, false},      // not_null_violation
	"23514": {ErrorCodeValidation, false},      // check_violation
	"22001": {ErrorCodeInvalidArgument, false}, // string_data_right_truncation
	"22P02": {ErrorCodeInvalidArgument, false}, // invalid_text_representation
	"40001": {ErrorCodeDB, true},               // serialization_failure
	"40P01": {ErrorCodeDB, true},               // deadlock_detected
	"55P03": {ErrorCodeDB, true},               // lock_not_available
	"25006": {ErrorCodeUnavailable, false},     // read_only_sql_transaction
	"57P03": {ErrorCodeUnavailable, false},     // cannot_connect_now
}

// retryText covers driver messages that arrive without a PgError, e.g. on commit
var retryText = []string{
	"commit unexpectedly resulted in rollback",
	"deadlock detected",
	"could not serialize access",
	"canceling statement due to lock timeout",
	"canceling statement due to statement timeout",
	"terminating connection due to administrator command",
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	ok := stderrs.As(err, &pe)
	return pe, ok
}

func sqlstate(err error) string {
	if pe, ok := pgError(err); ok {
		return pe.Code
	}
	return ""
}

// IsDuplicateKey reports a unique violation anywhere in err's chain
func IsDuplicateKey(err error) bool { return sqlstate(err) == "23505" }

// IsForeignKeyViolation reports a foreign key violation anywhere in err's chain
func IsForeignKeyViolation(err error) bool { return sqlstate(err) == "23503" }

// FromPostgres wraps err with msg and the code its SQLSTATE maps to
// non postgres errors become ErrorCodeDB; nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code := ErrorCodeDB
	if s, ok := sqlstates[sqlstate(err)]; ok {
		code = s.code
	}
	return Wrap(err, code, msg)
}

// FromPostgresWithField is FromPostgres plus the offending field when postgres names one
// the column wins; otherwise the last segment of the constraint name, ignoring a bare "key"
func FromPostgresWithField(err error, msg string) error {
	out := FromPostgres(err, msg)
	pe, ok := pgError(err)
	if !ok {
		return out
	}
	field := strings.TrimSpace(pe.ColumnName)
	if field == "" {
		c := strings.TrimSpace(pe.ConstraintName)
		if tail := c[strings.LastIndex(c, "_")+1:]; tail != "key" {
			field = tail
		}
	}
	if field == "" {
		return out
	}
	return WithField(out, field)
}

// IsRetryable reports a transient postgres failure; ctx cancellation never is
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pe, ok := pgError(err); ok {
		return sqlstates[pe.Code].retry
	}
	msg := strings.ToLower(Root(err).Error())
	for _, s := range retryText {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
