package domain

import "errors"

// Error taxonomy shared by the stores and the HTTP layer.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// AppError carries the HTTP status and the static message shown to the caller.
type AppError struct {
	Code    int    // HTTP status code
	Message string // static, user facing
	Err     error  // one of the sentinels above, or the underlying cause
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

func NewUnauthorizedError(msg string) *AppError {
	return &AppError{Code: 401, Message: msg, Err: ErrUnauthorized}
}

// NewConflictError reports a uniqueness violation. Registration answers it
// with 400 like every other rejected signup.
func NewConflictError(msg string) *AppError {
	return &AppError{Code: 400, Message: msg, Err: ErrConflict}
}

func NewBadRequestError(msg string) *AppError {
	return &AppError{Code: 400, Message: msg, Err: ErrInvalidInput}
}

func NewInternalError(msg string, err error) *AppError {
	return &AppError{Code: 500, Message: msg, Err: errors.Join(ErrInternal, err)}
}
