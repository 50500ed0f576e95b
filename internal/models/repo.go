package models

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

const (
	ExhibitDbName      = "exhibit"
	UsersColName       = "users"
	PostsColName       = "posts"
	LikesColName       = "likes"
	SavedPostsColName  = "saved_posts"
	CommunitiesColName = "communities"
)

// MemoryRepo keeps every collection in process memory as wire-shaped
// documents and answers filter queries with the same engine the HTTP layer
// speaks. It is the simulated backend the server boots with when no MongoDB
// URI is configured, and the one the tests run against.
type MemoryRepo struct {
	mu          sync.RWMutex
	users       []map[string]any
	posts       []map[string]any
	likes       []map[string]any
	savedPosts  []map[string]any
	communities []Community
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		communities: append([]Community{}, SampleCommunities...),
	}
}

type MongodbRepo struct {
	mongodbClient *mongo.Client
}

func MongodbNewRepo(mongodbClient *mongo.Client) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
	}
}

func (mdb *MongodbRepo) GetCollection(dbName, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(dbName).Collection(colName), nil
}
