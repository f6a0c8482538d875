package services

import (
	"context"

	"gorm.io/gorm"

	dto "taskflow.com/taskflow/internal/data_models"
	model "taskflow.com/taskflow/internal/models"
	repository "taskflow.com/taskflow/internal/repositories"
)

type ProjectService struct {
	db       *gorm.DB
	projects *repository.ProjectRepository
	tasks    *repository.TaskRepository
}

func NewProjectService(
	db *gorm.DB,
	projects *repository.ProjectRepository,
	tasks *repository.TaskRepository,
) *ProjectService {
	return &ProjectService{
		db:       db,
		projects: projects,
		tasks:    tasks,
	}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		projects, err = s.projects.WithTx(tx).List(ctx)
		return err
	})
	return projects, err
}

func (s *ProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*model.Project, error) {
	project := req.ToModel()
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		return s.projects.WithTx(tx).Create(ctx, project)
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	var project *model.Project
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		project, err = s.projects.WithTx(tx).FindByID(ctx, id)
		return err
	})
	return project, err
}

// UpdateProject overwrites only the fields present in req. A request that
// supplies no field leaves the row, updated_at included, untouched.
func (s *ProjectService) UpdateProject(ctx context.Context, id int64, req dto.UpdateProjectRequest) (*model.Project, error) {
	var project *model.Project
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		repo := s.projects.WithTx(tx)

		var err error
		project, err = repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if !req.ApplyTo(project) {
			return nil
		}
		return repo.Update(ctx, project)
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes the project's tasks and then the project itself in
// one transaction, so no task outlives its project.
func (s *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	return inTx(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.tasks.WithTx(tx).DeleteByProject(ctx, id); err != nil {
			return err
		}
		return s.projects.WithTx(tx).Delete(ctx, id)
	})
}
