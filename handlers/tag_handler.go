package handlers

import (
	"net/http"

	"conduit-api/models"
	"conduit-api/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	articleService services.ArticleService
}

func NewTagHandler(articleService services.ArticleService) *TagHandler {
	return &TagHandler{articleService: articleService}
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.articleService.ListTags()
	if err != nil {
		HTTPHelper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TagsResponse{Tags: tags})
}
