package services

import (
	"context"
	"fmt"

	"github.com/0xGitteth/Exhibit-sub000/internal/models"
)

type CommunityService struct {
	communityRepo models.CommunityRepo
}

func NewCommunityService(communityRepo models.CommunityRepo) *CommunityService {
	return &CommunityService{
		communityRepo: communityRepo,
	}
}

func (cs *CommunityService) ListCommunities(ctx context.Context) ([]models.Community, error) {
	communities, err := cs.communityRepo.ListCommunities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list communities: %v", err)
	}
	return communities, nil
}
