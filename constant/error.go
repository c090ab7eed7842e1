package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrDuplicateContact
	ErrStorageUnavailable
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "Contact not found",
	ErrInvalidRequest:     "invalid request",
	ErrDuplicateContact:   "A contact with this email and phone already exists",
	ErrStorageUnavailable: "error internal",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrDuplicateContact:   http.StatusConflict,
	ErrStorageUnavailable: http.StatusInternalServerError,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrDuplicateContact:   "0004",
	ErrStorageUnavailable: "0005",
}
