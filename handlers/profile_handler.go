package handlers

import (
	"net/http"

	"conduit-api/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	resp, err := h.profileService.GetProfile(c.Param("username"), currentUserID(c))
	if err != nil {
		HTTPHelper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) FollowUser(c *gin.Context) {
	resp, err := h.profileService.FollowUser(c.Param("username"), currentUserID(c))
	if err != nil {
		HTTPHelper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UnfollowUser(c *gin.Context) {
	resp, err := h.profileService.UnfollowUser(c.Param("username"), currentUserID(c))
	if err != nil {
		HTTPHelper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
