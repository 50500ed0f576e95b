package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/0xGitteth/Exhibit-sub000/internal/services"
)

func ListCommunities(cs *services.CommunityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		communities, err := cs.ListCommunities(c.Request.Context())
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, communities)
	}
}
