package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

// 呼び出し側が判定できるエラー種別
type ErrorCode string

const (
	CodeValidation        ErrorCode = "VALIDATION_ERROR"
	CodeNotFound          ErrorCode = "NOT_FOUND"
	CodeConflict          ErrorCode = "CONFLICT"
	CodeInsufficientStock ErrorCode = "INSUFFICIENT_STOCK"
	CodeInternal          ErrorCode = "INTERNAL"
	CodeUnauthorized      ErrorCode = "UNAUTHORIZED"
	CodeForbidden         ErrorCode = "FORBIDDEN"
)

type HTTPError struct {
	Status  int
	Code    ErrorCode
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

func NewHTTPError(status int, code ErrorCode, message string) error {
	return &HTTPError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// errのコードがcodeかどうか
func IsCode(err error, code ErrorCode) bool {
	he, ok := AsHTTPError(err)
	return ok && he.Code == code
}

func errValidation(msg string) error {
	return NewHTTPError(http.StatusBadRequest, CodeValidation, msg)
}

func errNotFound(msg string) error {
	return NewHTTPError(http.StatusNotFound, CodeNotFound, msg)
}

func errConflict(msg string) error {
	return NewHTTPError(http.StatusConflict, CodeConflict, msg)
}

func errInsufficientStock() error {
	return NewHTTPError(http.StatusBadRequest, CodeInsufficientStock, "insufficient stock")
}

// 中身は呼び出し側に出さない
func errInternal() error {
	return NewHTTPError(http.StatusInternalServerError, CodeInternal, "server error")
}
