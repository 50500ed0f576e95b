package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/0xGitteth/Exhibit-sub000/internal/helpers"
	"github.com/0xGitteth/Exhibit-sub000/internal/services"
)

type joinRequest struct {
	PostID    string `json:"post_id" binding:"required"`
	UserEmail string `json:"user_email"`
}

func CreateLike(j *services.JoinService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		var req joinRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error(), "message": "invalid request payload"})
			return
		}
		if req.UserEmail == "" {
			req.UserEmail = user.Email
		}

		like, err := j.CreateLike(c.Request.Context(), req.PostID, req.UserEmail)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, like)
	}
}

func DeleteLike(j *services.JoinService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))
		if err := j.DeleteLike(c.Request.Context(), id); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"message": "Like removed"})
	}
}

func FilterLikes(j *services.JoinService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, ok := bindFilter(c)
		if !ok {
			return
		}
		likes, err := j.FilterLikes(c.Request.Context(), f)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, likes)
	}
}

func CreateSavedPost(j *services.JoinService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		var req joinRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error(), "message": "invalid request payload"})
			return
		}
		if req.UserEmail == "" {
			req.UserEmail = user.Email
		}

		saved, err := j.CreateSavedPost(c.Request.Context(), req.PostID, req.UserEmail)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, saved)
	}
}

func DeleteSavedPost(j *services.JoinService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))
		if err := j.DeleteSavedPost(c.Request.Context(), id); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"message": "Saved post removed"})
	}
}

func FilterSavedPosts(j *services.JoinService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, ok := bindFilter(c)
		if !ok {
			return
		}
		saved, err := j.FilterSavedPosts(c.Request.Context(), f)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, saved)
	}
}
