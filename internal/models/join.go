package models

import "time"

// Like and SavedPost are join records between a user and a post. They are
// created and removed by the like/save toggles and otherwise only queried,
// never mutated in place.

type Like struct {
	ID        string    `bson:"id" json:"id"`
	PostID    string    `bson:"post_id" json:"post_id" validate:"required"`
	UserEmail string    `bson:"user_email" json:"user_email" validate:"required"`
	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

type SavedPost struct {
	ID        string    `bson:"id" json:"id"`
	PostID    string    `bson:"post_id" json:"post_id" validate:"required"`
	UserEmail string    `bson:"user_email" json:"user_email" validate:"required"`
	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
