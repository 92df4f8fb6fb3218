package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postable/helper"
	"postable/middleware"
	"postable/models"
	"postable/services"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered",
		"user":    response.User,
		"token":   response.Token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "login success",
		"user":    response.User,
		"token":   response.Token,
	})
}

func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req models.UpdatePasswordRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	user, err := h.authService.UpdatePassword(userID, req.Password)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, "password updated", "user", user)
}

func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	if err := h.authService.DeleteUser(userID); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, "user deleted", "", nil)
}
