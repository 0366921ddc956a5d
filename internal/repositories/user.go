package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbilibin2017/p2p-loans/internal/logger"
	"github.com/sbilibin2017/p2p-loans/internal/models"
)

// ErrDuplicateUsername is returned by Save when the unique index on
// users.username rejects an insert.
var ErrDuplicateUsername = errors.New("username already exists")

// UserReadRepository handles read access to the users collection
type UserReadRepository struct {
	coll *mongo.Collection
}

func NewUserReadRepository(db *mongo.Database) *UserReadRepository {
	return &UserReadRepository{coll: db.Collection(usersCollection)}
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.UserDB, error) {
	filter := bson.M{"_id": id}

	var user models.UserDB
	err := r.coll.FindOne(ctx, filter).Decode(&user)

	logger.Log.Infow("users.FindOne",
		"filter", filter,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns the user with the given exact username, or nil when absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	filter := bson.M{"username": username}

	var user models.UserDB
	err := r.coll.FindOne(ctx, filter).Decode(&user)

	logger.Log.Infow("users.FindOne",
		"filter", filter,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles write access to the users collection
type UserWriteRepository struct {
	coll *mongo.Collection
}

func NewUserWriteRepository(db *mongo.Database) *UserWriteRepository {
	return &UserWriteRepository{coll: db.Collection(usersCollection)}
}

// Save inserts a new user and returns the stored record with its assigned id.
// Returns ErrDuplicateUsername when the username is already taken.
func (r *UserWriteRepository) Save(ctx context.Context, username string) (*models.UserDB, error) {
	res, err := r.coll.InsertOne(ctx, bson.M{"username": username})

	logger.Log.Infow("users.InsertOne",
		"username", username,
		"error", err,
	)

	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateUsername
	}
	if err != nil {
		return nil, err
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return &models.UserDB{ID: id, Username: username}, nil
}

// Delete removes the user with the given id. Returns false when no document matched.
func (r *UserWriteRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": id}

	res, err := r.coll.DeleteOne(ctx, filter)

	var deleted int64
	if res != nil {
		deleted = res.DeletedCount
	}
	logger.Log.Infow("users.DeleteOne",
		"filter", filter,
		"deleted", deleted,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}
