package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "taskflow.com/taskflow/internal/errors"
	"taskflow.com/taskflow/internal/services"
)

type Handler struct {
	projectService *services.ProjectService
	taskService    *services.TaskService
	seedService    *services.SeedService
	healthService  *services.HealthService
	logger         *slog.Logger
}

func NewHandler(
	projectService *services.ProjectService,
	taskService *services.TaskService,
	seedService *services.SeedService,
	healthService *services.HealthService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		projectService: projectService,
		taskService:    taskService,
		seedService:    seedService,
		healthService:  healthService,
		logger:         logger,
	}
}

// bind decodes the JSON body into req. Any decoding failure, including a
// wrong field type, is reported as a 422.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	return nil
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.ErrInvalidID
	}
	return id, nil
}

// projectFilter returns nil when project_id is omitted or empty. Any other
// value, 0 included, is a real filter.
func projectFilter(c echo.Context) (*int64, error) {
	raw := strings.TrimSpace(c.QueryParam("project_id"))
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperrors.ErrInvalidProjectFilter
	}
	return &id, nil
}

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) Health(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.healthService.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, "database ping failed", "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
	}
	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
