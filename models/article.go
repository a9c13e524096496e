package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// TagList is an ordered list of tag names stored as a single comma-joined
// text column, so listings can filter on it with LIKE.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	return strings.Join(t, ","), nil
}

func (t *TagList) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = TagList{}
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into TagList", src)
	}

	if raw == "" {
		*t = TagList{}
		return nil
	}
	*t = TagList(strings.Split(raw, ","))
	return nil
}

type Article struct {
	ID             uint           `json:"id" gorm:"primarykey"`
	Slug           string         `json:"slug" gorm:"uniqueIndex;not null"`
	Title          string         `json:"title" gorm:"not null"`
	Description    string         `json:"description"`
	Body           string         `json:"body" gorm:"type:text"`
	TagList        TagList        `json:"tag_list" gorm:"type:text"`
	FavoritesCount int            `json:"favorites_count" gorm:"not null;default:0"`
	AuthorID       uint           `json:"author_id" gorm:"not null"`
	Author         User           `json:"author" gorm:"foreignKey:AuthorID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// ArticleFilters is the set of independently optional listing filters.
// A nil IDs slice means "no filter on ids"; an empty non-nil slice matches
// nothing. Limit and Offset of zero mean unbounded.
type ArticleFilters struct {
	Tag       string
	AuthorID  uint
	AuthorIDs []uint
	IDs       []uint
	Limit     int
	Offset    int
}
