package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskflow.com/taskflow/internal/data_models"
)

func (h *Handler) Seed(c echo.Context) error {
	ctx := c.Request().Context()

	message, seeded, err := h.seedService.Seed(ctx)
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "seed requested", "seeded", seeded)
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}
