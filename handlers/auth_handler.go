package handlers

import (
	"net/http"

	"conduit-api/helper"
	"conduit-api/models"
	"conduit-api/services"

	"github.com/gin-gonic/gin"
)

var HTTPHelper = helper.NewHTTPHelper()

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := HTTPHelper.BindJSON(c, &req); err != nil {
		HTTPHelper.SendBindError(c, err)
		return
	}

	resp, err := h.authService.Register(req.User)
	if err != nil {
		HTTPHelper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := HTTPHelper.BindJSON(c, &req); err != nil {
		HTTPHelper.SendBindError(c, err)
		return
	}

	resp, err := h.authService.Login(req.User)
	if err != nil {
		HTTPHelper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	resp, err := h.authService.GetUser(currentUserID(c))
	if err != nil {
		HTTPHelper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) UpdateCurrentUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := HTTPHelper.BindJSON(c, &req); err != nil {
		HTTPHelper.SendBindError(c, err)
		return
	}

	resp, err := h.authService.UpdateUser(currentUserID(c), req.User)
	if err != nil {
		HTTPHelper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
