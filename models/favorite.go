package models

import "time"

// Favorite is a user -> article edge. The denormalized favorites_count on
// Article moves together with this edge inside one transaction.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_article"`
	ArticleID uint      `json:"article_id" gorm:"not null;index;uniqueIndex:idx_user_article"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "user_favorites"
}
