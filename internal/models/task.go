package model

import (
	"time"

	"taskflow.com/taskflow/internal/constants"
)

type Task struct {
	ID          int64                  `gorm:"primaryKey;autoIncrement"`
	Title       string                 `gorm:"size:200;not null"`
	Description *string                `gorm:"type:text"`
	Status      constants.TaskStatus   `gorm:"size:20;not null"`
	Priority    constants.TaskPriority `gorm:"size:10;not null"`
	ProjectID   int64                  `gorm:"not null;index"`
	CreatedAt   time.Time              `gorm:"not null"`
	UpdatedAt   time.Time              `gorm:"not null"`
}
