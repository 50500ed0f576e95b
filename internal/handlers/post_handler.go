package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/0xGitteth/Exhibit-sub000/internal/models"
	"github.com/0xGitteth/Exhibit-sub000/internal/services"
)

func CreatePost(p *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		var post models.Post
		if err := c.ShouldBindJSON(&post); err != nil {
			c.JSON(400, gin.H{"error": err.Error(), "message": "invalid request payload"})
			return
		}
		if post.CreatedBy == "" {
			post.CreatedBy = user.Email
		}

		created, err := p.CreatePost(c.Request.Context(), &post)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, created)
	}
}

func FilterPosts(p *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, ok := bindFilter(c)
		if !ok {
			return
		}
		posts, err := p.FilterPosts(c.Request.Context(), f)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, posts)
	}
}
