package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0xGitteth/Exhibit-sub000/internal/helpers"
	"github.com/0xGitteth/Exhibit-sub000/internal/models"
	"github.com/0xGitteth/Exhibit-sub000/internal/query"
	"github.com/0xGitteth/Exhibit-sub000/internal/services"
)

func currentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

func GetMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(200, user)
	}
}

func UpdateMe(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		var patch map[string]any
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		updated, err := u.UpdateUser(c.Request.Context(), user.Email, patch)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, updated)
	}
}

// UpdateUserByEmail patches another account; the affiliation reconciliation
// uses it for the reciprocal linked_models writes.
func UpdateUserByEmail(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := helpers.StringTrim(c.Param("email"))
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user email is required"})
			return
		}

		var patch map[string]any
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		updated, err := u.UpdateUser(c.Request.Context(), email, patch)
		if err != nil {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, updated)
	}
}

func FilterUsers(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, ok := bindFilter(c)
		if !ok {
			return
		}
		users, err := u.FilterUsers(c.Request.Context(), f)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, users)
	}
}

// bindFilter reads an optional filter object from the body; an empty body
// means match everything.
func bindFilter(c *gin.Context) (query.Filter, bool) {
	var f query.Filter
	if err := c.ShouldBindJSON(&f); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(400, gin.H{"error": err.Error(), "message": "invalid filter object"})
		return nil, false
	}
	if f == nil {
		f = query.Filter{}
	}
	return f, true
}
