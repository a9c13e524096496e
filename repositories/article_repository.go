package repositories

import (
	"math"

	"conduit-api/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetBySlug(slug string) (*models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error
	GetList(filters models.ArticleFilters) ([]models.Article, int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").Where("slug = ?", slug).First(&article).Error
	return &article, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

// GetList composes the filtered listing. Filters are independently optional;
// total is counted on the filtered set before limit/offset apply. Order is
// newest first, ties broken by insertion order.
func (r *articleRepository) GetList(filters models.ArticleFilters) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).Preload("Author")

	if filters.Tag != "" {
		query = query.Where("articles.tag_list LIKE ?", "%"+filters.Tag+"%")
	}

	if filters.AuthorID > 0 {
		query = query.Where("articles.author_id = ?", filters.AuthorID)
	}

	if filters.AuthorIDs != nil {
		query = query.Where("articles.author_id IN ?", filters.AuthorIDs)
	}

	if filters.IDs != nil {
		query = query.Where("articles.id IN ?", filters.IDs)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("articles.created_at DESC, articles.id ASC")

	limit := filters.Limit
	if limit <= 0 && filters.Offset > 0 {
		// SQLite rejects OFFSET without LIMIT, so "unbounded" still needs a
		// concrete limit when only an offset is given.
		limit = math.MaxInt32
	}

	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&articles).Error
	return articles, total, err
}
