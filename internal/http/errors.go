package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "taskflow.com/taskflow/internal/errors"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

// NewErrorHandler renders every error as {"detail": "..."}. Exceptions keep
// their status, echo errors keep theirs, anything else is a logged 500.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		detail := http.StatusText(code)

		var appErr *apperrors.Exception
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			code = appErr.StatusCode
			detail = appErr.Message
		case errors.As(err, &httpErr):
			code = httpErr.Code
			detail = fmt.Sprint(httpErr.Message)
		}

		req := c.Request()
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(req.Context(), "request failed",
				"method", req.Method,
				"uri", req.RequestURI,
				"status", code,
				"error", err,
			)
		}

		if req.Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, errorResponse{Detail: detail})
		}
		if err != nil {
			logger.ErrorContext(req.Context(), "failed to write error response", "error", err)
		}
	}
}
