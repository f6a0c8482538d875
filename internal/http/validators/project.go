package validators

import (
	"taskflow.com/taskflow/internal/constants"
	dto "taskflow.com/taskflow/internal/data_models"
)

// ValidateCreateProjectRequest covers what struct tags cannot: a present but
// null color.
func ValidateCreateProjectRequest(r *dto.CreateProjectRequest) error {
	return notNull("color", r.Color)
}

func ValidateUpdateProjectRequest(r *dto.UpdateProjectRequest) error {
	return firstError(
		notNull("name", r.Name),
		maxLength("name", r.Name, constants.ProjectNameMaxLength),
		notNull("color", r.Color),
	)
}
