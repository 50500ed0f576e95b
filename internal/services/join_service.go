package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/0xGitteth/Exhibit-sub000/internal/models"
	"github.com/0xGitteth/Exhibit-sub000/internal/query"
)

// JoinService manages the like and saved-post join records between users and
// posts.
type JoinService struct {
	joinRepo models.JoinRepo
}

func NewJoinService(joinRepo models.JoinRepo) *JoinService {
	return &JoinService{
		joinRepo: joinRepo,
	}
}

func (js *JoinService) CreateLike(ctx context.Context, postID, userEmail string) (*models.Like, error) {
	if strings.TrimSpace(postID) == "" {
		return nil, fmt.Errorf("post ID cannot be empty")
	}
	if strings.TrimSpace(userEmail) == "" {
		return nil, fmt.Errorf("user email cannot be empty")
	}
	like := &models.Like{
		ID:        uuid.New().String(),
		PostID:    postID,
		UserEmail: userEmail,
		CreatedAt: time.Now(),
	}
	return js.joinRepo.CreateLike(ctx, like)
}

func (js *JoinService) DeleteLike(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("like ID cannot be empty")
	}
	return js.joinRepo.DeleteLike(ctx, id)
}

func (js *JoinService) FilterLikes(ctx context.Context, f query.Filter) ([]models.Like, error) {
	return js.joinRepo.FilterLikes(ctx, f)
}

func (js *JoinService) CreateSavedPost(ctx context.Context, postID, userEmail string) (*models.SavedPost, error) {
	if strings.TrimSpace(postID) == "" {
		return nil, fmt.Errorf("post ID cannot be empty")
	}
	if strings.TrimSpace(userEmail) == "" {
		return nil, fmt.Errorf("user email cannot be empty")
	}
	saved := &models.SavedPost{
		ID:        uuid.New().String(),
		PostID:    postID,
		UserEmail: userEmail,
		CreatedAt: time.Now(),
	}
	return js.joinRepo.CreateSavedPost(ctx, saved)
}

func (js *JoinService) DeleteSavedPost(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("saved post ID cannot be empty")
	}
	return js.joinRepo.DeleteSavedPost(ctx, id)
}

func (js *JoinService) FilterSavedPosts(ctx context.Context, f query.Filter) ([]models.SavedPost, error) {
	return js.joinRepo.FilterSavedPosts(ctx, f)
}
