package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postable/helper"
	"postable/middleware"
	"postable/services"
)

type LikeHandler struct {
	likeService services.LikeService
	Helper      *helper.HTTPHelper
}

func NewLikeHandler(likeService services.LikeService, h *helper.HTTPHelper) *LikeHandler {
	return &LikeHandler{likeService: likeService, Helper: h}
}

func (h *LikeHandler) AddLike(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString(middleware.ContextUserID)

	like, err := h.likeService.AddLike(postID, userID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, "like added", "like", like)
}

func (h *LikeHandler) RemoveLike(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString(middleware.ContextUserID)

	if err := h.likeService.RemoveLike(postID, userID); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, "like removed", "", nil)
}
