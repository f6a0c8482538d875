package services

import (
	"context"

	"gorm.io/gorm"

	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
	repository "taskflow.com/taskflow/internal/repositories"
)

type TaskService struct {
	db       *gorm.DB
	projects *repository.ProjectRepository
	tasks    *repository.TaskRepository
}

func NewTaskService(
	db *gorm.DB,
	projects *repository.ProjectRepository,
	tasks *repository.TaskRepository,
) *TaskService {
	return &TaskService{
		db:       db,
		projects: projects,
		tasks:    tasks,
	}
}

// ListTasks returns every task, or only the tasks of projectID when it is set.
func (s *TaskService) ListTasks(ctx context.Context, projectID *int64) ([]model.Task, error) {
	var tasks []model.Task
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		tasks, err = s.tasks.WithTx(tx).List(ctx, projectID)
		return err
	})
	return tasks, err
}

func (s *TaskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error) {
	task := req.ToModel()
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.projects.WithTx(tx).Exists(ctx, task.ProjectID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrProjectNotFound
		}
		return s.tasks.WithTx(tx).Create(ctx, task)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	var task *model.Task
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		task, err = s.tasks.WithTx(tx).FindByID(ctx, id)
		return err
	})
	return task, err
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, req dto.UpdateTaskRequest) (*model.Task, error) {
	var task *model.Task
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		repo := s.tasks.WithTx(tx)

		var err error
		task, err = repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if !req.ApplyTo(task) {
			return nil
		}
		return repo.Update(ctx, task)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	return inTx(ctx, s.db, func(tx *gorm.DB) error {
		return s.tasks.WithTx(tx).Delete(ctx, id)
	})
}
