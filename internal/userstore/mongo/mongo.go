package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/haguru/torii/config"
	"github.com/haguru/torii/internal/interfaces"
	"github.com/haguru/torii/internal/models"
	"github.com/haguru/torii/internal/userstore"

	"go.mongodb.org/mongo-driver/bson"
	mongosdk "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection = "users"
	MaxPoolSize     = 20
)

// MongoUserStore implements UserStore on top of a MongoDB collection with a
// unique index on username.
type MongoUserStore struct {
	client *mongosdk.Client
	users  *mongosdk.Collection
}

// NewMongoUserStore connects to MongoDB and returns a credential store backed
// by the configured database.
func NewMongoUserStore(ctx context.Context, cfg *config.MongoDBConfig) (interfaces.UserStore, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("mongo DSN is empty")
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	clientOptions := options.Client().
		ApplyURI(cfg.DSN).
		SetMaxPoolSize(MaxPoolSize).
		SetReadPreference(readpref.PrimaryPreferred())

	client, err := mongosdk.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB server: %w", err)
	}

	return &MongoUserStore{
		client: client,
		users:  client.Database(cfg.DatabaseName).Collection(UsersCollection),
	}, nil
}

// Create inserts a new user document. The unique index on username makes the
// check-and-insert atomic; a duplicate key error maps to ErrDuplicateUsername.
func (s *MongoUserStore) Create(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongosdk.IsDuplicateKeyError(err) {
			return nil, userstore.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to add user to MongoDB: %w", err)
	}

	return &user, nil
}

// FindByUsername retrieves a user document by username.
func (s *MongoUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	filter := bson.M{"username": username}

	if err := s.users.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongosdk.ErrNoDocuments) {
			return nil, userstore.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username from MongoDB: %w", err)
	}

	return &user, nil
}

// EnsureIndices creates the unique index on username.
func (s *MongoUserStore) EnsureIndices(ctx context.Context) error {
	indexModel := mongosdk.IndexModel{
		Keys:    bson.M{"username": 1},
		Options: options.Index().SetUnique(true),
	}

	if _, err := s.users.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create unique username index: %w", err)
	}

	return nil
}

// Close disconnects the MongoDB client.
func (s *MongoUserStore) Close(ctx context.Context) error {
	if s.client != nil {
		return s.client.Disconnect(ctx)
	}
	return nil
}
