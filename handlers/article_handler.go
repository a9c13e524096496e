package handlers

import (
	"net/http"

	"conduit-api/models"
	"conduit-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := HTTPHelper.BindJSON(c, &req); err != nil {
		HTTPHelper.SendBindError(c, err)
		return
	}

	resp, err := h.articleService.CreateArticle(req.Article, currentUserID(c))
	if err != nil {
		HTTPHelper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		HTTPHelper.SendBindError(c, err)
		return
	}

	resp, err := h.articleService.ListArticles(params, currentUserID(c))
	if err != nil {
		HTTPHelper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ArticleHandler) GetFeed(c *gin.Context) {
	var params models.FeedParams
	if err := c.ShouldBindQuery(&params); err != nil {
		HTTPHelper.SendBindError(c, err)
		return
	}

	resp, err := h.articleService.GetFeed(params, currentUserID(c))
	if err != nil {
		HTTPHelper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	resp, err := h.articleService.GetArticle(c.Param("slug"), currentUserID(c))
	if err != nil {
		HTTPHelper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req models.UpdateArticleRequest
	if err := HTTPHelper.BindJSON(c, &req); err != nil {
		HTTPHelper.SendBindError(c, err)
		return
	}

	resp, err := h.articleService.UpdateArticle(c.Param("slug"), req.Article, currentUserID(c))
	if err != nil {
		HTTPHelper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if err := h.articleService.DeleteArticle(c.Param("slug"), currentUserID(c)); err != nil {
		HTTPHelper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}

func (h *ArticleHandler) FavoriteArticle(c *gin.Context) {
	resp, err := h.articleService.FavoriteArticle(c.Param("slug"), currentUserID(c))
	if err != nil {
		HTTPHelper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ArticleHandler) UnfavoriteArticle(c *gin.Context) {
	resp, err := h.articleService.UnfavoriteArticle(c.Param("slug"), currentUserID(c))
	if err != nil {
		HTTPHelper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
