package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/0xGitteth/Exhibit-sub000/internal/models"
	"github.com/0xGitteth/Exhibit-sub000/internal/query"
)

type UserGateway struct {
	c *Client
}

// Me returns the session user, fetching and caching it on first use. This is
// the only path that fills the session cache outside login and registration.
func (g *UserGateway) Me(ctx context.Context) (*models.User, error) {
	if u, ok := g.c.session.Current(); ok {
		return u, nil
	}
	var u models.User
	if err := g.c.do(ctx, http.MethodGet, "/users/me", nil, &u); err != nil {
		return nil, err
	}
	if err := g.c.session.Save(&u); err != nil {
		g.c.logger.Warn("failed to cache session user", "error", err)
	}
	return &u, nil
}

// UpdateMyUserData merges the payload onto the current user server-side,
// persists the merged record to the session store and returns it.
func (g *UserGateway) UpdateMyUserData(ctx context.Context, payload map[string]any) (*models.User, error) {
	var u models.User
	if err := g.c.do(ctx, http.MethodPatch, "/users/me", payload, &u); err != nil {
		return nil, err
	}
	if err := g.c.session.Save(&u); err != nil {
		g.c.logger.Warn("failed to cache session user", "error", err)
	}
	return &u, nil
}

// Update is UpdateMyUserData under the name older call sites use; the two
// must behave identically.
func (g *UserGateway) Update(ctx context.Context, payload map[string]any) (*models.User, error) {
	return g.UpdateMyUserData(ctx, payload)
}

func (g *UserGateway) Filter(ctx context.Context, f query.Filter) ([]models.User, error) {
	users := []models.User{}
	if err := g.c.do(ctx, http.MethodPost, "/users/filter", f, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateByEmail patches another account; used by the affiliation
// reconciliation side-effect writes.
func (g *UserGateway) UpdateByEmail(ctx context.Context, email string, payload map[string]any) (*models.User, error) {
	var u models.User
	if err := g.c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(email), payload, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
