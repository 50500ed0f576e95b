package gateway

import (
	"context"
	"net/http"

	"github.com/0xGitteth/Exhibit-sub000/internal/models"
)

type AuthGateway struct {
	c *Client
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (g *AuthGateway) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	payload := map[string]string{"email": email, "password": password}
	var res authResponse
	if err := g.c.do(ctx, http.MethodPost, "/auth/login", payload, &res); err != nil {
		return nil, "", err
	}
	g.c.SetToken(res.Token)
	return &res.User, res.Token, nil
}

func (g *AuthGateway) Register(ctx context.Context, payload map[string]any) (*models.User, string, error) {
	var res authResponse
	if err := g.c.do(ctx, http.MethodPost, "/auth/register", payload, &res); err != nil {
		return nil, "", err
	}
	g.c.SetToken(res.Token)
	return &res.User, res.Token, nil
}

// Logout drops the client token whatever the remote call returned.
func (g *AuthGateway) Logout(ctx context.Context) error {
	err := g.c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	g.c.SetToken("")
	return err
}
