package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Detail is the machine-readable cause shown to the client, if any
	Detail string `json:"error,omitempty"`
	Err    error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail exposes the underlying error text to the client.
func (e *AppError) WithDetail() *AppError {
	if e.Err != nil {
		e.Detail = e.Err.Error()
	}
	return e
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return New(http.StatusInternalServerError, message, err)
}
