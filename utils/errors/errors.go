package errors

import "github.com/muhammadheryan/contact-manager/constant"

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// ValidationError carries field-keyed messages for rejected input.
type ValidationError struct {
	Fields map[string]string
}

func (v ValidationError) Error() string {
	return constant.ErrorTypeMessage[constant.ErrInvalidRequest]
}

func (v ValidationError) ErrorCode() string {
	return constant.ErrorTypeCode[constant.ErrInvalidRequest]
}

func (v ValidationError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[constant.ErrInvalidRequest]
}

func NewValidationError(fields map[string]string) ValidationError {
	return ValidationError{Fields: fields}
}

// DuplicateError reports a conflicting normalized (email, phone) pair.
// It carries the pair as structured data so consumers never have to
// parse the message text to find out which fields collided.
type DuplicateError struct {
	Email string
	Phone string
}

func (d DuplicateError) Error() string {
	return constant.ErrorTypeMessage[constant.ErrDuplicateContact]
}

func (d DuplicateError) ErrorCode() string {
	return constant.ErrorTypeCode[constant.ErrDuplicateContact]
}

func (d DuplicateError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[constant.ErrDuplicateContact]
}

func NewDuplicateError(email, phone string) DuplicateError {
	return DuplicateError{Email: email, Phone: phone}
}
