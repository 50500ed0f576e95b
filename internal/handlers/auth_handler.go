package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/0xGitteth/Exhibit-sub000/internal/helpers"
	"github.com/0xGitteth/Exhibit-sub000/internal/models"
	"github.com/0xGitteth/Exhibit-sub000/internal/query"
	"github.com/0xGitteth/Exhibit-sub000/internal/services"
)

func Login(a *services.AuthService, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error(), "message": "invalid request payload"})
			return
		}

		user, err := a.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			c.JSON(401, gin.H{"error": err.Error(), "message": "invalid email or password"})
			return
		}

		token, err := helpers.IssueToken(secret, user.Email)
		if err != nil {
			c.JSON(500, gin.H{"error": "failed to issue session token"})
			return
		}

		setSessionCookie(c, token)
		c.JSON(200, gin.H{"user": user, "token": token})
	}
}

func Register(a *services.AuthService, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload map[string]any
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(400, gin.H{"error": err.Error(), "message": "invalid request payload"})
			return
		}
		password, _ := payload["password"].(string)
		delete(payload, "password")

		var user models.User
		if err := query.FromDoc(payload, &user); err != nil {
			c.JSON(400, gin.H{"error": err.Error(), "message": "invalid request payload"})
			return
		}

		created, err := a.Register(c.Request.Context(), &user, password)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		token, err := helpers.IssueToken(secret, created.Email)
		if err != nil {
			c.JSON(500, gin.H{"error": "failed to issue session token"})
			return
		}

		setSessionCookie(c, token)
		c.JSON(201, gin.H{"user": created, "token": token})
	}
}

// Logout handler
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		isProduction := os.Getenv("GIN_MODE") == "production"
		c.SetCookie("access_token", "", -1, "/", "", isProduction, true)

		c.JSON(http.StatusOK, gin.H{
			"message": "Logged out successfully",
		})
	}
}

func setSessionCookie(c *gin.Context, token string) {
	isProduction := os.Getenv("GIN_MODE") == "production"
	c.SetCookie(
		"access_token",
		token,
		int(helpers.TokenTTL.Seconds()),
		"/",
		"", // let Gin pick current domain
		isProduction,
		true,
	)
}
