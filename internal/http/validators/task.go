package validators

import (
	"taskflow.com/taskflow/internal/constants"
	dto "taskflow.com/taskflow/internal/data_models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	return firstError(
		notNull("status", r.Status),
		notNull("priority", r.Priority),
	)
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	return firstError(
		notNull("title", r.Title),
		maxLength("title", r.Title, constants.TaskTitleMaxLength),
		notNull("status", r.Status),
		notNull("priority", r.Priority),
	)
}
