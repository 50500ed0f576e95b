package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/0xGitteth/Exhibit-sub000/internal/query"
)

type JoinRepo interface {
	CreateLike(ctx context.Context, like *Like) (*Like, error)
	// DeleteLike is idempotent: deleting an id that is not present is a no-op.
	DeleteLike(ctx context.Context, id string) error
	FilterLikes(ctx context.Context, f query.Filter) ([]Like, error)
	CreateSavedPost(ctx context.Context, saved *SavedPost) (*SavedPost, error)
	DeleteSavedPost(ctx context.Context, id string) error
	FilterSavedPosts(ctx context.Context, f query.Filter) ([]SavedPost, error)
}

func (m *MemoryRepo) CreateLike(ctx context.Context, like *Like) (*Like, error) {
	doc, err := query.ToDoc(like)
	if err != nil {
		return nil, fmt.Errorf("error encoding like: %v", err)
	}
	m.mu.Lock()
	m.likes = append(m.likes, doc)
	m.mu.Unlock()

	var stored Like
	if err := query.FromDoc(doc, &stored); err != nil {
		return nil, fmt.Errorf("error decoding stored like: %v", err)
	}
	return &stored, nil
}

func (m *MemoryRepo) DeleteLike(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.likes = removeDocByID(m.likes, id)
	return nil
}

func (m *MemoryRepo) FilterLikes(ctx context.Context, f query.Filter) ([]Like, error) {
	m.mu.RLock()
	matched := query.Apply(m.likes, f, query.JoinFields)
	m.mu.RUnlock()

	likes := make([]Like, 0, len(matched))
	if err := query.FromDoc(matched, &likes); err != nil {
		return nil, fmt.Errorf("error decoding likes: %v", err)
	}
	return likes, nil
}

func (m *MemoryRepo) CreateSavedPost(ctx context.Context, saved *SavedPost) (*SavedPost, error) {
	doc, err := query.ToDoc(saved)
	if err != nil {
		return nil, fmt.Errorf("error encoding saved post: %v", err)
	}
	m.mu.Lock()
	m.savedPosts = append(m.savedPosts, doc)
	m.mu.Unlock()

	var stored SavedPost
	if err := query.FromDoc(doc, &stored); err != nil {
		return nil, fmt.Errorf("error decoding stored saved post: %v", err)
	}
	return &stored, nil
}

func (m *MemoryRepo) DeleteSavedPost(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.savedPosts = removeDocByID(m.savedPosts, id)
	return nil
}

func (m *MemoryRepo) FilterSavedPosts(ctx context.Context, f query.Filter) ([]SavedPost, error) {
	m.mu.RLock()
	matched := query.Apply(m.savedPosts, f, query.JoinFields)
	m.mu.RUnlock()

	saved := make([]SavedPost, 0, len(matched))
	if err := query.FromDoc(matched, &saved); err != nil {
		return nil, fmt.Errorf("error decoding saved posts: %v", err)
	}
	return saved, nil
}

func removeDocByID(docs []map[string]any, id string) []map[string]any {
	out := docs[:0]
	for _, doc := range docs {
		if doc["id"] == id {
			continue
		}
		out = append(out, doc)
	}
	return out
}

func (mdb *MongodbRepo) CreateLike(ctx context.Context, like *Like) (*Like, error) {
	col, err := mdb.GetCollection(ExhibitDbName, LikesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}
	if _, err := col.InsertOne(ctx, like); err != nil {
		return nil, fmt.Errorf("error inserting like: %v", err)
	}
	var stored Like
	if err := col.FindOne(ctx, bson.M{"id": like.ID}).Decode(&stored); err != nil {
		return nil, fmt.Errorf("error reading back like: %v", err)
	}
	return &stored, nil
}

func (mdb *MongodbRepo) DeleteLike(ctx context.Context, id string) error {
	col, err := mdb.GetCollection(ExhibitDbName, LikesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}
	_, err = col.DeleteOne(ctx, bson.M{"id": id})
	return err
}

func (mdb *MongodbRepo) FilterLikes(ctx context.Context, f query.Filter) ([]Like, error) {
	col, err := mdb.GetCollection(ExhibitDbName, LikesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}
	cursor, err := col.Find(ctx, query.ToBSON(f, query.JoinFields))
	if err != nil {
		return nil, fmt.Errorf("error finding likes: %v", err)
	}
	defer cursor.Close(ctx)

	likes := []Like{}
	for cursor.Next(ctx) {
		var l Like
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("error decoding like: %v", err)
		}
		likes = append(likes, l)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return likes, nil
}

func (mdb *MongodbRepo) CreateSavedPost(ctx context.Context, saved *SavedPost) (*SavedPost, error) {
	col, err := mdb.GetCollection(ExhibitDbName, SavedPostsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}
	if _, err := col.InsertOne(ctx, saved); err != nil {
		return nil, fmt.Errorf("error inserting saved post: %v", err)
	}
	var stored SavedPost
	if err := col.FindOne(ctx, bson.M{"id": saved.ID}).Decode(&stored); err != nil {
		return nil, fmt.Errorf("error reading back saved post: %v", err)
	}
	return &stored, nil
}

func (mdb *MongodbRepo) DeleteSavedPost(ctx context.Context, id string) error {
	col, err := mdb.GetCollection(ExhibitDbName, SavedPostsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}
	_, err = col.DeleteOne(ctx, bson.M{"id": id})
	return err
}

func (mdb *MongodbRepo) FilterSavedPosts(ctx context.Context, f query.Filter) ([]SavedPost, error) {
	col, err := mdb.GetCollection(ExhibitDbName, SavedPostsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}
	cursor, err := col.Find(ctx, query.ToBSON(f, query.JoinFields))
	if err != nil {
		return nil, fmt.Errorf("error finding saved posts: %v", err)
	}
	defer cursor.Close(ctx)

	saved := []SavedPost{}
	for cursor.Next(ctx) {
		var s SavedPost
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding saved post: %v", err)
		}
		saved = append(saved, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return saved, nil
}
