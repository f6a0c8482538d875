package model

import "time"

type Project struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"size:100;not null"`
	Description *string   `gorm:"type:text"`
	Color       string    `gorm:"size:7;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	Tasks []Task `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
