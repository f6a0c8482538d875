package errors

import (
	"errors"
	"net/http"
)

// Exception is an error that carries the HTTP status it should be reported with.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// Validation returns a 422 exception with the given message.
func Validation(message string) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
	}
}
