package dto

import (
	"time"

	"taskflow.com/taskflow/internal/constants"
	model "taskflow.com/taskflow/internal/models"
)

type CreateProjectRequest struct {
	Name        *string          `json:"name" validate:"required,max=100"`
	Description Optional[string] `json:"description"`
	Color       Optional[string] `json:"color"`
}

// ToModel builds a new project row, filling in defaults for omitted fields.
func (r CreateProjectRequest) ToModel() *model.Project {
	var name string
	if r.Name != nil {
		name = *r.Name
	}

	return &model.Project{
		Name:        name,
		Description: r.Description.Value,
		Color:       r.Color.Or(constants.DefaultProjectColor),
	}
}

type UpdateProjectRequest struct {
	Name        Optional[string] `json:"name"`
	Description Optional[string] `json:"description"`
	Color       Optional[string] `json:"color"`
}

// ApplyTo copies every supplied field onto p and reports whether any field
// was supplied. Absent fields are left untouched.
func (r UpdateProjectRequest) ApplyTo(p *model.Project) bool {
	changed := false

	if r.Name.Set && r.Name.Value != nil {
		p.Name = *r.Name.Value
		changed = true
	}
	if r.Description.Set {
		p.Description = r.Description.Value
		changed = true
	}
	if r.Color.Set && r.Color.Value != nil {
		p.Color = *r.Color.Value
		changed = true
	}

	return changed
}

type ProjectResponse struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Color       string         `json:"color"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Tasks       []TaskResponse `json:"tasks"`
}

func NewProjectResponse(p *model.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Color:       p.Color,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Tasks:       NewTaskResponses(p.Tasks),
	}
}

func NewProjectResponses(projects []model.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, NewProjectResponse(&projects[i]))
	}
	return out
}

type MessageResponse struct {
	Message string `json:"message"`
}
