package models

import (
	"time"

	"gorm.io/gorm"
)

// Tag is the registry of every tag name ever used on an article, backing
// the public tag listing. Articles keep their own ordered TagList inline.
type Tag struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
