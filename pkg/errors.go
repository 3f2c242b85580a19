package pkg

import "fmt"

// AppError is the error shape returned to HTTP clients.
//
// Handlers translate use case sentinel errors into an AppError and render it
// with ToHTTPError. Err keeps the underlying cause for logs only; it is never
// serialized.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Fields     map[string]string
}

type HTTPError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewValidationError reports per-field messages, rendered inline by the front.
func NewValidationError(message string, fields map[string]string, httpStatus int) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: message, HTTPStatus: httpStatus, Fields: fields}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Fields: e.Fields}
}
