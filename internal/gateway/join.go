package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/0xGitteth/Exhibit-sub000/internal/models"
	"github.com/0xGitteth/Exhibit-sub000/internal/query"
)

// Like and saved-post gateways are pure pass-throughs for reads; the create
// and delete calls back the like/save toggles.

type LikeGateway struct {
	c *Client
}

func (g *LikeGateway) Filter(ctx context.Context, f query.Filter) ([]models.Like, error) {
	likes := []models.Like{}
	if err := g.c.do(ctx, http.MethodPost, "/likes/filter", f, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

func (g *LikeGateway) Create(ctx context.Context, postID string) (*models.Like, error) {
	payload := map[string]string{"post_id": postID}
	var like models.Like
	if err := g.c.do(ctx, http.MethodPost, "/likes", payload, &like); err != nil {
		return nil, err
	}
	return &like, nil
}

func (g *LikeGateway) Delete(ctx context.Context, id string) error {
	return g.c.do(ctx, http.MethodDelete, "/likes/"+url.PathEscape(id), nil, nil)
}

type SavedPostGateway struct {
	c *Client
}

func (g *SavedPostGateway) Filter(ctx context.Context, f query.Filter) ([]models.SavedPost, error) {
	saved := []models.SavedPost{}
	if err := g.c.do(ctx, http.MethodPost, "/saved-posts/filter", f, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (g *SavedPostGateway) Create(ctx context.Context, postID string) (*models.SavedPost, error) {
	payload := map[string]string{"post_id": postID}
	var saved models.SavedPost
	if err := g.c.do(ctx, http.MethodPost, "/saved-posts", payload, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (g *SavedPostGateway) Delete(ctx context.Context, id string) error {
	return g.c.do(ctx, http.MethodDelete, "/saved-posts/"+url.PathEscape(id), nil, nil)
}
