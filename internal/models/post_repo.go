package models

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/0xGitteth/Exhibit-sub000/internal/query"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *Post) (*Post, error)
	// FilterPosts returns matching posts ordered by creation time descending.
	FilterPosts(ctx context.Context, f query.Filter) ([]Post, error)
}

func (m *MemoryRepo) CreatePost(ctx context.Context, post *Post) (*Post, error) {
	doc, err := query.ToDoc(post)
	if err != nil {
		return nil, fmt.Errorf("error encoding post: %v", err)
	}
	m.mu.Lock()
	m.posts = append(m.posts, doc)
	m.mu.Unlock()

	// Round trip through the stored representation rather than echoing the
	// input, so the caller sees exactly what later reads will see.
	var stored Post
	if err := query.FromDoc(doc, &stored); err != nil {
		return nil, fmt.Errorf("error decoding stored post: %v", err)
	}
	return &stored, nil
}

func (m *MemoryRepo) FilterPosts(ctx context.Context, f query.Filter) ([]Post, error) {
	m.mu.RLock()
	matched := query.Apply(m.posts, f, query.PostFields)
	m.mu.RUnlock()

	posts := make([]Post, 0, len(matched))
	if err := query.FromDoc(matched, &posts); err != nil {
		return nil, fmt.Errorf("error decoding posts: %v", err)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedDate.After(posts[j].CreatedDate)
	})
	return posts, nil
}

func (mdb *MongodbRepo) CreatePost(ctx context.Context, post *Post) (*Post, error) {
	col, err := mdb.GetCollection(ExhibitDbName, PostsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}
	if _, err := col.InsertOne(ctx, post); err != nil {
		return nil, fmt.Errorf("error inserting post: %v", err)
	}

	var stored Post
	if err := col.FindOne(ctx, bson.M{"id": post.ID}).Decode(&stored); err != nil {
		return nil, fmt.Errorf("error reading back post: %v", err)
	}
	return &stored, nil
}

func (mdb *MongodbRepo) FilterPosts(ctx context.Context, f query.Filter) ([]Post, error) {
	col, err := mdb.GetCollection(ExhibitDbName, PostsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_date", Value: -1}})
	cursor, err := col.Find(ctx, query.ToBSON(f, query.PostFields), opts)
	if err != nil {
		return nil, fmt.Errorf("error finding posts: %v", err)
	}
	defer cursor.Close(ctx)

	posts := []Post{}
	for cursor.Next(ctx) {
		var p Post
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("error decoding post: %v", err)
		}
		posts = append(posts, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return posts, nil
}
