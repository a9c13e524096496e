package repositories

import (
	"conduit-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepository interface {
	Ensure(names []string) error
	GetAllNames() ([]string, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// Ensure registers any tag names not seen before. Already-known names are
// skipped via the unique index.
func (r *tagRepository) Ensure(names []string) error {
	if len(names) == 0 {
		return nil
	}
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, models.Tag{Name: name})
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&tags).Error
}

func (r *tagRepository) GetAllNames() ([]string, error) {
	var names []string
	err := r.db.Model(&models.Tag{}).
		Order("name asc").
		Pluck("name", &names).Error
	return names, err
}
