package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) WithTx(tx *gorm.DB) *TaskRepository {
	return &TaskRepository{db: tx}
}

// List returns all tasks, or only those of projectID when it is non-nil.
func (r *TaskRepository) List(ctx context.Context, projectID *int64) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Order("id asc")
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}

	var tasks []model.Task
	err := query.Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) CreateMany(ctx context.Context, tasks []model.Task) error {
	return r.db.WithContext(ctx).Create(&tasks).Error
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	task.UpdatedAt = r.db.NowFunc()

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"status":      task.Status,
			"priority":    task.Priority,
			"updated_at":  task.UpdatedAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

// DeleteByProject removes every task of a project and returns how many went.
func (r *TaskRepository) DeleteByProject(ctx context.Context, projectID int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&model.Task{})
	return res.RowsAffected, res.Error
}
