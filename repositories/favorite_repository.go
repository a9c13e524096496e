package repositories

import (
	"conduit-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository interface {
	Add(userID, articleID uint) error
	Remove(userID, articleID uint) error
	IsFavorited(userID, articleID uint) (bool, error)
	FavoritedIDs(userID uint) ([]uint, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add creates the edge and increments the article counter in one
// transaction. The increment is gated on the insert actually happening, so
// re-favoriting (or a concurrent duplicate) never double-counts.
func (r *favoriteRepository) Add(userID, articleID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		favorite := models.Favorite{
			UserID:    userID,
			ArticleID: articleID,
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&favorite)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.Article{}).
			Where("id = ?", articleID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count + 1")).Error
	})
}

// Remove deletes the edge and decrements the counter only if the edge
// existed, keeping favorites_count non-negative.
func (r *favoriteRepository) Remove(userID, articleID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("user_id = ? AND article_id = ?", userID, articleID).
			Delete(&models.Favorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.Article{}).
			Where("id = ? AND favorites_count > 0", articleID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count - 1")).Error
	})
}

func (r *favoriteRepository) IsFavorited(userID, articleID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count).Error
	return count > 0, err
}

func (r *favoriteRepository) FavoritedIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("article_id", &ids).Error
	return ids, err
}
