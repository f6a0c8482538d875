package errors

import "net/http"

var ErrInvalidID = &Exception{
	Message:    "id must be an integer",
	StatusCode: http.StatusUnprocessableEntity,
}

var ErrInvalidProjectFilter = &Exception{
	Message:    "project_id must be an integer",
	StatusCode: http.StatusUnprocessableEntity,
}
