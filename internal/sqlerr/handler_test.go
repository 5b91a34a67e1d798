package sqlerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_NotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23502",
		Severity:   "ERROR",
		Message:    `null value in column "email" violates not-null constraint`,
		TableName:  "submissions",
		ColumnName: "email",
	}

	err := HandleError(fmt.Errorf("insert: %w", pgErr))

	var sqlErr *Error
	require.True(t, errors.As(err, &sqlErr))
	assert.Equal(t, NotNullViolation, sqlErr.Code)
	assert.Equal(t, SeverityError, sqlErr.Severity)
	assert.Equal(t, "SUBMISSION_REQUIRED", sqlErr.AppCode)
	assert.Equal(t, "The Email is required", sqlErr.Friendly)
	assert.Contains(t, err.Error(), "violates not-null constraint")
	assert.ErrorIs(t, err, pgErr)
	assert.Equal(t, NotNullViolation, ErrCode(err))
}

func TestHandleError_UndefinedTable(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "42P01", Message: `relation "form_ns.submissions" does not exist`})

	assert.Equal(t, UndefinedTable, ErrCode(err))
	assert.Contains(t, err.Error(), "The storage collection does not exist")
	assert.Contains(t, err.Error(), "42P01")
}

func TestHandleError_InsufficientPrivilege(t *testing.T) {
	err := ConvertPgError(&pgconn.PgError{Code: "42501", Message: "permission denied for schema form_ns"})

	assert.Equal(t, InsufficientPrivilege, err.Code)
	assert.Equal(t, "RECORD_UNAVAILABLE", err.AppCode)
	assert.Equal(t, "The database user may not access the storage collection", err.Friendly)
}

func TestHandleError_PassThrough(t *testing.T) {
	assert.NoError(t, HandleError(nil))

	plain := errors.New("dial tcp: connection refused")
	assert.Same(t, plain, HandleError(plain))
	assert.Equal(t, Other, ErrCode(plain))
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, UndefinedTable, MapCode("42P01"))
	assert.Equal(t, InsufficientPrivilege, MapCode("42501"))
	assert.Equal(t, ConnectionFailure, MapCode("08006"))
	assert.Equal(t, QueryCanceled, MapCode("57014"))
	assert.Equal(t, Other, MapCode("23505"))
	assert.Equal(t, Other, MapCode("XX000"))
}

func TestUnmappedCodeHasNoFriendlyMessage(t *testing.T) {
	err := ConvertPgError(&pgconn.PgError{Code: "XX000", Message: "internal error", TableName: "submissions"})

	assert.Empty(t, err.Friendly)
	assert.Equal(t, "SUBMISSION_ERROR", err.AppCode)
	assert.Equal(t, "internal error (SQLSTATE XX000)", err.Error())
}
