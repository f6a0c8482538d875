package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskflow.com/taskflow/internal/data_models"
	"taskflow.com/taskflow/internal/http/validators"
)

func (h *Handler) ListTasks(c echo.Context) error {
	projectID, err := projectFilter(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), projectID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponses(tasks))
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	h.logger.InfoContext(ctx, "creating task", "title", *req.Title, "project_id", *req.ProjectID)

	task, err := h.taskService.CreateTask(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewTaskResponse(task))
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	h.logger.InfoContext(ctx, "updating task", "id", id)

	task, err := h.taskService.UpdateTask(ctx, id, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	h.logger.InfoContext(ctx, "deleting task", "id", id)

	if err := h.taskService.DeleteTask(ctx, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
