package services

import (
	"context"
	"fmt"
	"time"

	"github.com/0xGitteth/Exhibit-sub000/internal/models"
	"github.com/0xGitteth/Exhibit-sub000/internal/query"
)

type UserService struct {
	userRepo models.UserRepo
}

func NewUserService(userRepo models.UserRepo) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

func (us *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := us.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return user, nil
}

// UpdateUser merges the patch onto the stored record. The email key is
// immutable; the repo re-derives primary_role and dedupes the linked sets.
func (us *UserService) UpdateUser(ctx context.Context, email string, patch map[string]any) (*models.User, error) {
	delete(patch, "email")
	patch["updated_at"] = time.Now()

	updated, err := us.userRepo.UpdateUser(ctx, email, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %v", err)
	}
	return updated, nil
}

func (us *UserService) FilterUsers(ctx context.Context, f query.Filter) ([]models.User, error) {
	users, err := us.userRepo.FilterUsers(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to filter users: %v", err)
	}
	return users, nil
}
