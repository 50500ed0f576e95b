package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/0xGitteth/Exhibit-sub000/internal/query"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// UpdateUser merges the patch onto the stored record and returns the
	// merged result. The email key is immutable.
	UpdateUser(ctx context.Context, email string, patch map[string]any) (*User, error)
	FilterUsers(ctx context.Context, f query.Filter) ([]User, error)
}

func (m *MemoryRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	doc, err := query.ToDoc(user)
	if err != nil {
		return nil, fmt.Errorf("error encoding user: %v", err)
	}
	m.mu.Lock()
	for _, existing := range m.users {
		if existing["email"] == doc["email"] {
			m.mu.Unlock()
			return nil, fmt.Errorf("email already in use")
		}
	}
	m.users = append(m.users, doc)
	m.mu.Unlock()

	var stored User
	if err := query.FromDoc(doc, &stored); err != nil {
		return nil, fmt.Errorf("error decoding stored user: %v", err)
	}
	return &stored, nil
}

func (m *MemoryRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, doc := range m.users {
		if doc["email"] == email {
			var u User
			if err := query.FromDoc(doc, &u); err != nil {
				return nil, fmt.Errorf("error decoding user: %v", err)
			}
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (m *MemoryRepo) UpdateUser(ctx context.Context, email string, patch map[string]any) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, doc := range m.users {
		if doc["email"] != email {
			continue
		}
		merged := make(map[string]any, len(doc)+len(patch))
		for k, v := range doc {
			merged[k] = v
		}
		for k, v := range patch {
			merged[k] = v
		}
		merged["email"] = email

		var u User
		if err := query.FromDoc(merged, &u); err != nil {
			return nil, fmt.Errorf("error decoding merged user: %v", err)
		}
		u.NormalizeRoles()
		u.DedupeLinks()

		updated, err := query.ToDoc(&u)
		if err != nil {
			return nil, fmt.Errorf("error encoding updated user: %v", err)
		}
		m.users[i] = updated
		return &u, nil
	}
	return nil, fmt.Errorf("user not found")
}

func (m *MemoryRepo) FilterUsers(ctx context.Context, f query.Filter) ([]User, error) {
	m.mu.RLock()
	matched := query.Apply(m.users, f, query.UserFields)
	m.mu.RUnlock()

	users := make([]User, 0, len(matched))
	if err := query.FromDoc(matched, &users); err != nil {
		return nil, fmt.Errorf("error decoding users: %v", err)
	}
	return users, nil
}

func (mdb *MongodbRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	col, err := mdb.GetCollection(ExhibitDbName, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}
	count, err := col.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return nil, fmt.Errorf("error checking existing user: %v", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("email already in use")
	}
	if _, err := col.InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("error inserting user: %v", err)
	}

	var stored User
	if err := col.FindOne(ctx, bson.M{"email": user.Email}).Decode(&stored); err != nil {
		return nil, fmt.Errorf("error reading back user: %v", err)
	}
	return &stored, nil
}

func (mdb *MongodbRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	col, err := mdb.GetCollection(ExhibitDbName, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}
	var u User
	if err := col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, fmt.Errorf("user not found: %v", err)
	}
	return &u, nil
}

func (mdb *MongodbRepo) UpdateUser(ctx context.Context, email string, patch map[string]any) (*User, error) {
	col, err := mdb.GetCollection(ExhibitDbName, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}
	delete(patch, "email")

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var merged User
	err = col.FindOneAndUpdate(ctx, bson.M{"email": email}, bson.M{"$set": patch}, opts).Decode(&merged)
	if err != nil {
		return nil, fmt.Errorf("error updating user: %v", err)
	}

	merged.NormalizeRoles()
	merged.DedupeLinks()
	if _, err := col.ReplaceOne(ctx, bson.M{"email": email}, &merged); err != nil {
		return nil, fmt.Errorf("error persisting normalized user: %v", err)
	}
	return &merged, nil
}

func (mdb *MongodbRepo) FilterUsers(ctx context.Context, f query.Filter) ([]User, error) {
	col, err := mdb.GetCollection(ExhibitDbName, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}
	cursor, err := col.Find(ctx, query.ToBSON(f, query.UserFields))
	if err != nil {
		return nil, fmt.Errorf("error finding users: %v", err)
	}
	defer cursor.Close(ctx)

	users := []User{}
	for cursor.Next(ctx) {
		var u User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("error decoding user: %v", err)
		}
		users = append(users, u)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return users, nil
}
