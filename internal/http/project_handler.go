package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskflow.com/taskflow/internal/data_models"
	"taskflow.com/taskflow/internal/http/validators"
)

func (h *Handler) ListProjects(c echo.Context) error {
	projects, err := h.projectService.ListProjects(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewProjectResponses(projects))
}

func (h *Handler) CreateProject(c echo.Context) error {
	var req dto.CreateProjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := validators.ValidateCreateProjectRequest(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	h.logger.InfoContext(ctx, "creating project", "name", *req.Name)

	project, err := h.projectService.CreateProject(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewProjectResponse(project))
}

func (h *Handler) GetProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	project, err := h.projectService.GetProject(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewProjectResponse(project))
}

func (h *Handler) UpdateProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateUpdateProjectRequest(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	h.logger.InfoContext(ctx, "updating project", "id", id)

	project, err := h.projectService.UpdateProject(ctx, id, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewProjectResponse(project))
}

func (h *Handler) DeleteProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	h.logger.InfoContext(ctx, "deleting project", "id", id)

	if err := h.projectService.DeleteProject(ctx, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
