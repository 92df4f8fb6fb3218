package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"postable/helper"
	"postable/models"
	"postable/repositories"
	"postable/services"
)

// Context keys populated by the middleware chain.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
	ContextPost   = "post"
)

// AuthMiddleware verifies the bearer token and stores the caller's
// identity in the request context. Missing credentials are 401; a
// token that fails verification is 403.
func AuthMiddleware(tokens services.TokenService, h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			h.SendError(c, models.AuthenticationError("", "authorization header required"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			h.SendError(c, models.AuthenticationError("", "bearer token required"))
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			h.SendError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.ID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireOwnershipOrAdmin gates mutating post routes. It must run
// after AuthMiddleware; a failed check aborts before the handler ever
// executes. Ownership is read from the local post store, and the
// fetched post is stashed in the context so handlers do not re-query.
func RequireOwnershipOrAdmin(posts repositories.PostRepository, h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := c.GetString(ContextUserID)
		role := models.UserRole(c.GetString(ContextRole))
		if callerID == "" {
			h.SendError(c, models.AuthenticationError("", "caller identity not established"))
			c.Abort()
			return
		}

		post, err := posts.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.SendError(c, models.NotFoundError(models.CodePostNotFound, "post not found"))
			} else {
				h.SendError(c, models.DataStoreError("failed to load post", err))
			}
			c.Abort()
			return
		}

		if !services.CanMutatePost(post.UserID, callerID, role) {
			h.SendError(c, models.ForbiddenError("you do not have permission to modify this post"))
			c.Abort()
			return
		}

		c.Set(ContextPost, post)
		c.Next()
	}
}
