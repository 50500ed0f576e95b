package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

type CommunityRepo interface {
	ListCommunities(ctx context.Context) ([]Community, error)
}

func (m *MemoryRepo) ListCommunities(ctx context.Context) ([]Community, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Community{}, m.communities...), nil
}

func (mdb *MongodbRepo) ListCommunities(ctx context.Context) ([]Community, error) {
	col, err := mdb.GetCollection(ExhibitDbName, CommunitiesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}
	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding communities: %v", err)
	}
	defer cursor.Close(ctx)

	communities := []Community{}
	for cursor.Next(ctx) {
		var c Community
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("error decoding community: %v", err)
		}
		communities = append(communities, c)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return communities, nil
}
