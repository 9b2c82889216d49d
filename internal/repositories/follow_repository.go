package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/primaaawdn/LinkedOn-GC01/internal/models"
)

// FollowRepository defines the interface for follow-edge operations
type FollowRepository interface {
	CreateFollow(ctx context.Context, followerID, followingID string) (*models.Follow, error)
	GetFollowers(ctx context.Context, userID string) ([]models.FollowEdge, error)
	GetFollowing(ctx context.Context, userID string) ([]models.FollowEdge, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)
}

// MongoFollowRepository implements FollowRepository for MongoDB
type MongoFollowRepository struct {
	collection *mongo.Collection
}

// NewMongoFollowRepository creates a new MongoFollowRepository
func NewMongoFollowRepository(db *mongo.Database) *MongoFollowRepository {
	return &MongoFollowRepository{collection: db.Collection("Follow")}
}

// CreateFollow inserts a follow edge. Fails with ErrAlreadyFollowing
// when the (follower, following) pair already exists.
func (r *MongoFollowRepository) CreateFollow(ctx context.Context, followerID, followingID string) (*models.Follow, error) {
	followerObjID, err := primitive.ObjectIDFromHex(followerID)
	if err != nil {
		return nil, fmt.Errorf("invalid follower ID format: %w", models.ErrNotFound)
	}
	followingObjID, err := primitive.ObjectIDFromHex(followingID)
	if err != nil {
		return nil, fmt.Errorf("invalid following ID format: %w", models.ErrNotFound)
	}

	err = r.collection.FindOne(ctx, bson.M{
		"followerId":  followerObjID,
		"followingId": followingObjID,
	}).Err()
	if err == nil {
		return nil, models.ErrAlreadyFollowing
	}
	if err != mongo.ErrNoDocuments {
		return nil, models.NewStoreError("follows.find", err)
	}

	now := time.Now()
	follow := &models.Follow{
		ID:          primitive.NewObjectID(),
		FollowerID:  followerObjID,
		FollowingID: followingObjID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.collection.InsertOne(ctx, follow); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrAlreadyFollowing
		}
		return nil, models.NewStoreError("follows.insert", err)
	}
	return follow, nil
}

// edgePipeline joins the counterpart user of each edge and projects the
// public profile fields onto the edge.
func edgePipeline(matchField string, userID primitive.ObjectID, joinField string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{matchField: userID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "User",
			"localField":   joinField,
			"foreignField": "_id",
			"as":           "counterpart",
		}}},
		bson.D{{Key: "$unwind", Value: "$counterpart"}},
		bson.D{{Key: "$project", Value: bson.M{
			"followerId":  1,
			"followingId": 1,
			"createdAt":   1,
			"updatedAt":   1,
			"name":        "$counterpart.name",
			"username":    "$counterpart.username",
			"image":       "$counterpart.image",
		}}},
	}
}

// GetFollowers lists the edges pointing at userID, joined with each
// follower's public profile
func (r *MongoFollowRepository) GetFollowers(ctx context.Context, userID string) ([]models.FollowEdge, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", models.ErrNotFound)
	}
	return r.aggregateEdges(ctx, edgePipeline("followingId", objID, "followerId"))
}

// GetFollowing lists the edges originating at userID, joined with each
// followee's public profile
func (r *MongoFollowRepository) GetFollowing(ctx context.Context, userID string) ([]models.FollowEdge, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", models.ErrNotFound)
	}
	return r.aggregateEdges(ctx, edgePipeline("followerId", objID, "followingId"))
}

func (r *MongoFollowRepository) aggregateEdges(ctx context.Context, pipeline mongo.Pipeline) ([]models.FollowEdge, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, models.NewStoreError("follows.aggregate", err)
	}
	defer cursor.Close(ctx)

	edges := []models.FollowEdge{}
	if err = cursor.All(ctx, &edges); err != nil {
		return nil, models.NewStoreError("follows.decode", err)
	}
	return edges, nil
}

// CountFollowers counts edges pointing at userID; zero when none exist
func (r *MongoFollowRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	return r.countEdges(ctx, "followingId", userID)
}

// CountFollowing counts edges originating at userID; zero when none exist
func (r *MongoFollowRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	return r.countEdges(ctx, "followerId", userID)
}

func (r *MongoFollowRepository) countEdges(ctx context.Context, field, userID string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return 0, fmt.Errorf("invalid user ID format: %w", models.ErrNotFound)
	}
	count, err := r.collection.CountDocuments(ctx, bson.M{field: objID})
	if err != nil {
		return 0, models.NewStoreError("follows.count", err)
	}
	return count, nil
}
