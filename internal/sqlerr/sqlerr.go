// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database driver and
// converts them into descriptions a client can act on (e.g. a
// missing column value becomes "The Email is required") while keeping
// the original driver error reachable.
package sqlerr

import (
	"fmt"
	"strings"
)

// Code is a driver-independent classification of a database error.
type Code string

const (
	Other                 Code = "other"
	NotNullViolation      Code = "not_null_violation"
	UndefinedTable        Code = "undefined_table"
	InsufficientPrivilege Code = "insufficient_privilege"
	ConnectionFailure     Code = "connection_failure"
	QueryCanceled         Code = "query_canceled"
)

// Severity mirrors the Postgres severity field.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a structured database error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	// AppCode is a stable machine code such as SUBMISSION_REQUIRED.
	AppCode string
	// Friendly is a human-readable description of what went wrong.
	Friendly string

	driverErr error
}

func (e *Error) Error() string {
	if e.Friendly == "" {
		return fmt.Sprintf("%s (SQLSTATE %s)", e.Message, e.DatabaseCode)
	}
	return fmt.Sprintf("%s: %s (SQLSTATE %s)", e.Friendly, e.Message, e.DatabaseCode)
}

// Unwrap returns the original driver error.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode converts a Postgres SQLSTATE into a Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "42P01":
		return UndefinedTable
	case "42501":
		return InsufficientPrivilege
	case "57014":
		return QueryCanceled
	}
	// Class 08: connection exception.
	if strings.HasPrefix(sqlState, "08") {
		return ConnectionFailure
	}
	return Other
}

// MapSeverity converts the Postgres severity string into a Severity.
func MapSeverity(severity string) Severity {
	switch strings.ToUpper(severity) {
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	case "WARNING":
		return SeverityWarning
	case "NOTICE":
		return SeverityNotice
	case "DEBUG":
		return SeverityDebug
	case "INFO":
		return SeverityInfo
	case "LOG":
		return SeverityLog
	default:
		return SeverityError
	}
}
