package models

import "errors"

// ErrorKind classifies an AppError. Handlers map each kind to exactly
// one response shape; adding a kind means extending that mapping.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindAuthentication
	KindForbidden
	KindNotFound
	KindDuplicate
	KindDataStore
)

// Machine-readable error codes carried in the response envelope.
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeForbidden          = "FORBIDDEN"
	CodeUserExists         = "USER_EXISTS"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodePostNotFound       = "POST_NOT_FOUND"
	CodeDuplicateLike      = "DUPLICATE_LIKE"
	CodeLikeNotFound       = "LIKE_NOT_FOUND"
	CodeDatabaseError      = "DB_ERROR"
)

// AppError is the tagged error type every layer surfaces upward.
type AppError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Code: CodeInvalidInput, Message: message}
}

func AuthenticationError(code, message string) *AppError {
	return &AppError{Kind: KindAuthentication, Code: code, Message: message}
}

func ForbiddenError(message string) *AppError {
	return &AppError{Kind: KindForbidden, Code: CodeForbidden, Message: message}
}

func NotFoundError(code, message string) *AppError {
	return &AppError{Kind: KindNotFound, Code: code, Message: message}
}

func DuplicateError(code, message string) *AppError {
	return &AppError{Kind: KindDuplicate, Code: code, Message: message}
}

func DataStoreError(message string, err error) *AppError {
	return &AppError{Kind: KindDataStore, Code: CodeDatabaseError, Message: message, Err: err}
}

// AsAppError unwraps err into an *AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
