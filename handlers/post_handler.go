package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postable/helper"
	"postable/middleware"
	"postable/models"
	"postable/services"
)

type PostHandler struct {
	postService services.PostService
	Helper      *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService, h *helper.HTTPHelper) *PostHandler {
	return &PostHandler{postService: postService, Helper: h}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req models.CreatePostRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	post, err := h.postService.CreatePost(req, userID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, "post created", "post", post)
}

func (h *PostHandler) GetPosts(c *gin.Context) {
	var params models.PostListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendError(c, models.ValidationError("invalid pagination parameters"))
		return
	}

	response, err := h.postService.GetPosts(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPost(c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req models.UpdatePostRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	post, err := h.postService.UpdatePost(c.Param("id"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, "post updated", "post", post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postService.DeletePost(c.Param("id")); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, "post deleted", "", nil)
}
