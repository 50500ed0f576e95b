package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/0xGitteth/Exhibit-sub000/internal/config"
	"github.com/0xGitteth/Exhibit-sub000/internal/models"
	"github.com/0xGitteth/Exhibit-sub000/internal/services"
)

// Container holds the application's shared dependencies.
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	Cloudinary    *cloudinary.Cloudinary
	MongoDBClient *mongo.Client

	AuthService      *services.AuthService
	UserService      *services.UserService
	PostService      *services.PostService
	JoinService      *services.JoinService
	CommunityService *services.CommunityService
}

// NewContainer wires services to a MongoDB-backed repository when a client is
// provided, and to the in-memory repository otherwise.
func NewContainer(logger *slog.Logger, cfg *config.Config, cld *cloudinary.Cloudinary, mongoClient *mongo.Client) *Container {
	var (
		userRepo      models.UserRepo
		postRepo      models.PostRepo
		joinRepo      models.JoinRepo
		communityRepo models.CommunityRepo
	)

	if mongoClient != nil {
		repo := models.MongodbNewRepo(mongoClient)
		userRepo, postRepo, joinRepo, communityRepo = repo, repo, repo, repo
		logger.Info("Using MongoDB repository", "database", models.ExhibitDbName)
	} else {
		repo := models.NewMemoryRepo()
		userRepo, postRepo, joinRepo, communityRepo = repo, repo, repo, repo
		logger.Info("Using in-memory repository")
	}

	return &Container{
		Logger:           logger,
		Config:           cfg,
		Cloudinary:       cld,
		MongoDBClient:    mongoClient,
		AuthService:      services.NewAuthService(userRepo),
		UserService:      services.NewUserService(userRepo),
		PostService:      services.NewPostService(postRepo),
		JoinService:      services.NewJoinService(joinRepo),
		CommunityService: services.NewCommunityService(communityRepo),
	}
}
