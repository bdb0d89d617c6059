package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrConstraintViolation
	ErrInvalidUser
	ErrInvalidPassword
	ErrInvalidToken
	ErrExpiredToken
	ErrUnauthorize
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrConstraintViolation: "constraint violation",
	ErrInvalidUser:         "user not found",
	ErrInvalidPassword:     "password invalid",
	ErrInvalidToken:        "token invalid",
	ErrExpiredToken:        "token expired",
	ErrUnauthorize:         "unauthorize request",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrConstraintViolation: http.StatusConflict,
	ErrInvalidUser:         http.StatusUnauthorized,
	ErrInvalidPassword:     http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrUnauthorize:         http.StatusUnauthorized,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrConstraintViolation: "0004",
	ErrInvalidUser:         "0005",
	ErrInvalidPassword:     "0006",
	ErrInvalidToken:        "0007",
	ErrExpiredToken:        "0008",
	ErrUnauthorize:         "0009",
}
