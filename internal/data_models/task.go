package dto

import (
	"time"

	"taskflow.com/taskflow/internal/constants"
	model "taskflow.com/taskflow/internal/models"
)

type CreateTaskRequest struct {
	Title       *string          `json:"title" validate:"required,max=200"`
	Description Optional[string] `json:"description"`
	Status      Optional[string] `json:"status"`
	Priority    Optional[string] `json:"priority"`
	ProjectID   *int64           `json:"project_id" validate:"required"`
}

func (r CreateTaskRequest) ToModel() *model.Task {
	task := &model.Task{
		Description: r.Description.Value,
		Status:      r.Status.Or(constants.DefaultTaskStatus),
		Priority:    r.Priority.Or(constants.DefaultTaskPriority),
	}
	if r.Title != nil {
		task.Title = *r.Title
	}
	if r.ProjectID != nil {
		task.ProjectID = *r.ProjectID
	}
	return task
}

// UpdateTaskRequest has no project_id: a task never moves between projects.
type UpdateTaskRequest struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Status      Optional[string] `json:"status"`
	Priority    Optional[string] `json:"priority"`
}

func (r UpdateTaskRequest) ApplyTo(t *model.Task) bool {
	changed := false

	if r.Title.Set && r.Title.Value != nil {
		t.Title = *r.Title.Value
		changed = true
	}
	if r.Description.Set {
		t.Description = r.Description.Value
		changed = true
	}
	if r.Status.Set && r.Status.Value != nil {
		t.Status = *r.Status.Value
		changed = true
	}
	if r.Priority.Set && r.Priority.Value != nil {
		t.Priority = *r.Priority.Value
		changed = true
	}

	return changed
}

type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	ProjectID   int64     `json:"project_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewTaskResponse(t *model.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		ProjectID:   t.ProjectID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}
