package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/0xGitteth/Exhibit-sub000/internal/models"
	"github.com/0xGitteth/Exhibit-sub000/internal/query"
)

type PostGateway struct {
	c *Client
}

// Create validates and completes the post, then sends it. The id is assigned
// if absent, created_by defaults to the session user, and any trigger
// warnings the photography style implies are added before the post leaves
// the client. The returned record is the server's stored copy, not the input
// echoed back.
func (g *PostGateway) Create(ctx context.Context, post models.Post) (*models.Post, error) {
	if strings.TrimSpace(post.Title) == "" {
		return nil, fmt.Errorf("post title is required")
	}
	if strings.TrimSpace(post.ImageURL) == "" {
		return nil, fmt.Errorf("post image is required")
	}
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.CreatedBy == "" {
		if u, ok := g.c.session.Current(); ok {
			post.CreatedBy = u.Email
		}
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.TriggerWarnings = models.MergeTriggerWarnings(post.TriggerWarnings, post.PhotographyStyle)

	var created models.Post
	if err := g.c.do(ctx, http.MethodPost, "/posts", post, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Filter returns matching posts, most recent first when no explicit order is
// requested.
func (g *PostGateway) Filter(ctx context.Context, f query.Filter) ([]models.Post, error) {
	posts := []models.Post{}
	if err := g.c.do(ctx, http.MethodPost, "/posts/filter", f, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
