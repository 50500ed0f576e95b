package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/0xGitteth/Exhibit-sub000/internal/models"
	"github.com/0xGitteth/Exhibit-sub000/internal/query"
)

type PostService struct {
	postRepo models.PostRepo
}

func NewPostService(postRepo models.PostRepo) *PostService {
	return &PostService{
		postRepo: postRepo,
	}
}

// CreatePost validates, completes and stores the post. Either the complete
// stored record comes back or an error; no partial post state is observable.
func (ps *PostService) CreatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	if err := models.Validate.Struct(post); err != nil {
		return nil, err
	}
	if post.CreatedBy == "" {
		return nil, fmt.Errorf("created_by is required")
	}
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.CreatedDate.IsZero() {
		post.CreatedDate = time.Now()
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.TriggerWarnings == nil {
		post.TriggerWarnings = []string{}
	}

	return ps.postRepo.CreatePost(ctx, post)
}

// FilterPosts returns matching posts, most recent first.
func (ps *PostService) FilterPosts(ctx context.Context, f query.Filter) ([]models.Post, error) {
	posts, err := ps.postRepo.FilterPosts(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to filter posts: %v", err)
	}
	return posts, nil
}
