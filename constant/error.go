package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrConflict
	ErrValidation
	ErrInvalidRequest
	ErrForbidden
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:        "success",
	ErrInternal:       "error internal",
	ErrNotFound:       "data not found",
	ErrConflict:       "conflicting request",
	ErrValidation:     "invalid input",
	ErrInvalidRequest: "invalid request",
	ErrForbidden:      "forbidden",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:        http.StatusOK,
	ErrInternal:       http.StatusInternalServerError,
	ErrNotFound:       http.StatusNotFound,
	ErrConflict:       http.StatusConflict,
	ErrValidation:     http.StatusUnprocessableEntity,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrForbidden:      http.StatusForbidden,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:        "0000",
	ErrInternal:       "0001",
	ErrNotFound:       "0002",
	ErrConflict:       "0003",
	ErrValidation:     "0004",
	ErrInvalidRequest: "0005",
	ErrForbidden:      "0006",
}
