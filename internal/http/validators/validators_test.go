package validators

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
)

func TestValidateUpdateProjectRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.UpdateProjectRequest
		wantErr string
	}{
		{name: "empty", req: dto.UpdateProjectRequest{}},
		{name: "null description", req: dto.UpdateProjectRequest{Description: dto.Null[string]()}},
		{name: "null name", req: dto.UpdateProjectRequest{Name: dto.Null[string]()}, wantErr: "name may not be null"},
		{name: "null color", req: dto.UpdateProjectRequest{Color: dto.Null[string]()}, wantErr: "color may not be null"},
		{name: "long name", req: dto.UpdateProjectRequest{Name: dto.Some(strings.Repeat("n", 101))}, wantErr: "name must be at most 100 characters"},
		{name: "max name", req: dto.UpdateProjectRequest{Name: dto.Some(strings.Repeat("n", 100))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpdateProjectRequest(&tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
			assert.Equal(t, http.StatusUnprocessableEntity, apperrors.StatusCode(err))
		})
	}
}

func TestValidateCreateProjectRequest(t *testing.T) {
	assert.NoError(t, ValidateCreateProjectRequest(&dto.CreateProjectRequest{}))
	assert.EqualError(t, ValidateCreateProjectRequest(&dto.CreateProjectRequest{Color: dto.Null[string]()}), "color may not be null")
}

func TestValidateTaskRequests(t *testing.T) {
	assert.NoError(t, ValidateCreateTaskRequest(&dto.CreateTaskRequest{Description: dto.Null[string]()}))
	assert.EqualError(t, ValidateCreateTaskRequest(&dto.CreateTaskRequest{Priority: dto.Null[string]()}), "priority may not be null")

	assert.NoError(t, ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Status: dto.Some("blocked")}))
	assert.EqualError(t, ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Title: dto.Null[string]()}), "title may not be null")
	assert.EqualError(t,
		ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Title: dto.Some(strings.Repeat("é", 201))}),
		"title must be at most 200 characters",
	)
	assert.EqualError(t, ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Status: dto.Null[string]()}), "status may not be null")
}
