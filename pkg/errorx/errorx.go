package errorx

import (
	"errors"
	"fmt"
)

// CodeError is an error carrying a business status code.
// It supports %w wrapping and is recognised by errors.Is/errors.As.
type CodeError struct {
	Code  int    // business status code
	Msg   string // user-facing message
	cause error  // wrapped underlying error
}

// Error implements the error interface. When an underlying error is
// present the message is rendered as "msg: cause".
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap exposes the underlying error to errors.Is/errors.As.
func (e *CodeError) Unwrap() error {
	return e.cause
}

// New creates a CodeError without an underlying cause.
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf creates a CodeError with a formatted message.
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap attaches a business code and message to an underlying error.
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode extracts the business code from an error chain.
// Non-CodeError errors map to CodeServerBusy.
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy
}

// Business status codes.
const (
	CodeSuccess          = 1000
	CodeInvalidParam     = 1001
	CodeUserExist        = 1002
	CodeUserNotExist     = 1003
	CodeInvalidPassword  = 1004
	CodeServerBusy       = 1005
	CodeUnauthorized     = 1006
	CodeForbidden        = 1007
	CodeNotFound         = 1008
	CodeAlreadyMember    = 1009
	CodeDBError          = 1010
	CodeCacheError       = 1011
	CodePasswordMismatch = 1012
	CodeUnknownFaction   = 1013
)

// Predefined error instances, usable directly or with errors.Is.
var (
	ErrInvalidParam = New(CodeInvalidParam, "invalid request parameters")
	ErrServerBusy   = New(CodeServerBusy, "server busy, try again later")
	ErrForbidden    = New(CodeForbidden, "you are not allowed to perform this action")
)

// IsNotFound reports whether err represents a missing record,
// including gorm.ErrRecordNotFound surfaced through a repository.
func IsNotFound(err error) bool {
	var codeErr *CodeError
	if errors.As(err, &codeErr) && codeErr.Code == CodeNotFound {
		return true
	}
	return err != nil && err.Error() == "record not found"
}
