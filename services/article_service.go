package services

import (
	"errors"
	"fmt"

	"conduit-api/models"
	"conduit-api/repositories"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

type ArticleService interface {
	CreateArticle(req models.NewArticle, userID uint) (*models.ArticleResponse, error)
	GetArticle(slug string, viewerID uint) (*models.ArticleResponse, error)
	UpdateArticle(slug string, patch models.ArticlePatch, userID uint) (*models.ArticleResponse, error)
	DeleteArticle(slug string, userID uint) error
	ListArticles(params models.ArticleListParams, viewerID uint) (*models.ArticlesResponse, error)
	GetFeed(params models.FeedParams, viewerID uint) (*models.ArticlesResponse, error)
	FavoriteArticle(slug string, userID uint) (*models.ArticleResponse, error)
	UnfavoriteArticle(slug string, userID uint) (*models.ArticleResponse, error)
	ListTags() ([]string, error)
}

type articleService struct {
	articleRepo  repositories.ArticleRepository
	userRepo     repositories.UserRepository
	followRepo   repositories.FollowRepository
	favoriteRepo repositories.FavoriteRepository
	tagRepo      repositories.TagRepository
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
	favoriteRepo repositories.FavoriteRepository,
	tagRepo repositories.TagRepository,
) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		userRepo:     userRepo,
		followRepo:   followRepo,
		favoriteRepo: favoriteRepo,
		tagRepo:      tagRepo,
	}
}

func (s *articleService) CreateArticle(req models.NewArticle, userID uint) (*models.ArticleResponse, error) {
	tagList := req.TagList
	if tagList == nil {
		tagList = []string{}
	}

	if err := s.tagRepo.Ensure(tagList); err != nil {
		return nil, err
	}

	article := &models.Article{
		Slug:        generateSlug(req.Title),
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		TagList:     models.TagList(tagList),
		AuthorID:    userID,
	}

	// Slug uniqueness is not pre-checked and creation is not retried; a
	// duplicate suffix on the same title surfaces as a conflict.
	if err := s.articleRepo.Create(article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("slug %q: %w", article.Slug, models.ErrConflict)
		}
		return nil, err
	}

	return s.buildArticleResponse(article, userID)
}

func (s *articleService) GetArticle(slug string, viewerID uint) (*models.ArticleResponse, error) {
	article, err := s.findBySlug(slug)
	if err != nil {
		return nil, err
	}
	return s.buildArticleResponse(article, viewerID)
}

func (s *articleService) UpdateArticle(slug string, patch models.ArticlePatch, userID uint) (*models.ArticleResponse, error) {
	article, err := s.findBySlug(slug)
	if err != nil {
		return nil, err
	}

	if article.AuthorID != userID {
		return nil, fmt.Errorf("not the article author: %w", models.ErrForbidden)
	}

	if patch.Title != nil {
		article.Title = *patch.Title
		article.Slug = generateSlug(*patch.Title)
	}
	if patch.Description != nil {
		article.Description = *patch.Description
	}
	if patch.Body != nil {
		article.Body = *patch.Body
	}
	if patch.TagList != nil {
		article.TagList = models.TagList(*patch.TagList)
		if err := s.tagRepo.Ensure(*patch.TagList); err != nil {
			return nil, err
		}
	}

	if err := s.articleRepo.Update(article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("slug %q: %w", article.Slug, models.ErrConflict)
		}
		return nil, err
	}

	return s.buildArticleResponse(article, userID)
}

func (s *articleService) DeleteArticle(slug string, userID uint) error {
	article, err := s.findBySlug(slug)
	if err != nil {
		return err
	}

	if article.AuthorID != userID {
		return fmt.Errorf("not the article author: %w", models.ErrForbidden)
	}

	return s.articleRepo.Delete(article.ID)
}

func (s *articleService) ListArticles(params models.ArticleListParams, viewerID uint) (*models.ArticlesResponse, error) {
	filters := models.ArticleFilters{
		Tag:    params.Tag,
		Limit:  params.Limit,
		Offset: params.Offset,
	}

	if params.Author != "" {
		author, err := s.userRepo.GetByUsername(params.Author)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return emptyArticles(), nil
			}
			return nil, err
		}
		filters.AuthorID = author.ID
	}

	if params.Favorited != "" {
		favoriter, err := s.userRepo.GetByUsername(params.Favorited)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return emptyArticles(), nil
			}
			return nil, err
		}
		ids, err := s.favoriteRepo.FavoritedIDs(favoriter.ID)
		if err != nil {
			return nil, err
		}
		if ids == nil {
			// An empty favorite set filters everything out; it is not an error.
			ids = []uint{}
		}
		filters.IDs = ids
	}

	articles, total, err := s.articleRepo.GetList(filters)
	if err != nil {
		return nil, err
	}

	views, err := s.annotate(articles, viewerID)
	if err != nil {
		return nil, err
	}

	return &models.ArticlesResponse{Articles: views, ArticlesCount: total}, nil
}

func (s *articleService) GetFeed(params models.FeedParams, viewerID uint) (*models.ArticlesResponse, error) {
	followingIDs, err := s.followRepo.FollowingIDs(viewerID)
	if err != nil {
		return nil, err
	}

	// Following nobody means an empty feed without touching the article store.
	if len(followingIDs) == 0 {
		return emptyArticles(), nil
	}

	articles, total, err := s.articleRepo.GetList(models.ArticleFilters{
		AuthorIDs: followingIDs,
		Limit:     params.Limit,
		Offset:    params.Offset,
	})
	if err != nil {
		return nil, err
	}

	views, err := s.annotate(articles, viewerID)
	if err != nil {
		return nil, err
	}

	return &models.ArticlesResponse{Articles: views, ArticlesCount: total}, nil
}

func (s *articleService) FavoriteArticle(slug string, userID uint) (*models.ArticleResponse, error) {
	article, err := s.findBySlug(slug)
	if err != nil {
		return nil, err
	}

	if err := s.favoriteRepo.Add(userID, article.ID); err != nil {
		return nil, err
	}

	// Re-read for the updated counter.
	return s.GetArticle(article.Slug, userID)
}

func (s *articleService) UnfavoriteArticle(slug string, userID uint) (*models.ArticleResponse, error) {
	article, err := s.findBySlug(slug)
	if err != nil {
		return nil, err
	}

	if err := s.favoriteRepo.Remove(userID, article.ID); err != nil {
		return nil, err
	}

	return s.GetArticle(article.Slug, userID)
}

func (s *articleService) ListTags() ([]string, error) {
	names, err := s.tagRepo.GetAllNames()
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (s *articleService) findBySlug(slug string) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("article %q: %w", slug, models.ErrNotFound)
		}
		return nil, err
	}
	return article, nil
}

// annotate attaches the viewer's favorite and follow state to every item.
// Both id sets are fetched once per request, never per article; an anonymous
// viewer gets favorited=false and following=false everywhere.
func (s *articleService) annotate(articles []models.Article, viewerID uint) ([]models.ArticleView, error) {
	var favoritedIDs, followingIDs []uint

	if viewerID > 0 {
		var err error
		if favoritedIDs, err = s.favoriteRepo.FavoritedIDs(viewerID); err != nil {
			return nil, err
		}
		if followingIDs, err = s.followRepo.FollowingIDs(viewerID); err != nil {
			return nil, err
		}
	}

	views := lo.Map(articles, func(a models.Article, _ int) models.ArticleView {
		return buildArticleView(
			&a,
			lo.Contains(favoritedIDs, a.ID),
			lo.Contains(followingIDs, a.AuthorID),
		)
	})
	return views, nil
}

func (s *articleService) buildArticleResponse(article *models.Article, viewerID uint) (*models.ArticleResponse, error) {
	var favorited, following bool

	// Author preload is skipped on fresh inserts.
	if article.Author.ID == 0 {
		author, err := s.userRepo.GetByID(article.AuthorID)
		if err != nil {
			return nil, err
		}
		article.Author = *author
	}

	if viewerID > 0 {
		var err error
		if favorited, err = s.favoriteRepo.IsFavorited(viewerID, article.ID); err != nil {
			return nil, err
		}
		if following, err = s.followRepo.IsFollowing(viewerID, article.AuthorID); err != nil {
			return nil, err
		}
	}

	view := buildArticleView(article, favorited, following)
	return &models.ArticleResponse{Article: view}, nil
}

func buildArticleView(article *models.Article, favorited, following bool) models.ArticleView {
	tagList := []string(article.TagList)
	if tagList == nil {
		tagList = []string{}
	}

	return models.ArticleView{
		Slug:           article.Slug,
		Title:          article.Title,
		Description:    article.Description,
		Body:           article.Body,
		TagList:        tagList,
		CreatedAt:      article.CreatedAt,
		UpdatedAt:      article.UpdatedAt,
		Favorited:      favorited,
		FavoritesCount: article.FavoritesCount,
		Author: models.Profile{
			Username:  article.Author.Username,
			Bio:       article.Author.Bio,
			Image:     article.Author.Image,
			Following: following,
		},
	}
}

func emptyArticles() *models.ArticlesResponse {
	return &models.ArticlesResponse{
		Articles:      []models.ArticleView{},
		ArticlesCount: 0,
	}
}
