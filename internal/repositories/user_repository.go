package repositories

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/primaaawdn/LinkedOn-GC01/internal/auth"
	"github.com/primaaawdn/LinkedOn-GC01/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// MongoUserRepository implements UserRepository for MongoDB
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection("User")}
}

// CreateUser hashes the password and inserts a new user. Fails with
// ErrDuplicateIdentity when the username or email is already taken.
func (r *MongoUserRepository) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	err := r.collection.FindOne(ctx, bson.M{
		"$or": []bson.M{
			{"username": req.Username},
			{"email": req.Email},
		},
	}).Err()
	if err == nil {
		return nil, models.ErrDuplicateIdentity
	}
	if err != mongo.ErrNoDocuments {
		return nil, models.NewStoreError("users.find", err)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, models.NewStoreError("users.hash", err)
	}

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrDuplicateIdentity
		}
		return nil, models.NewStoreError("users.insert", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by its hex id
func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", models.ErrNotFound)
	}

	var user models.User
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrNotFound
		}
		return nil, models.NewStoreError("users.find", err)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by its unique username
func (r *MongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrNotFound
		}
		return nil, models.NewStoreError("users.find", err)
	}
	return &user, nil
}

// GetUsers retrieves all users
func (r *MongoUserRepository) GetUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, models.NewStoreError("users.find", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err = cursor.All(ctx, &users); err != nil {
		return nil, models.NewStoreError("users.decode", err)
	}
	return users, nil
}

// SearchUsers matches name or username case-insensitively against a
// substring. No matches yields an empty slice, not an error.
func (r *MongoUserRepository) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"$or": []bson.M{
			{"name": pattern},
			{"username": pattern},
		},
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, models.NewStoreError("users.search", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err = cursor.All(ctx, &users); err != nil {
		return nil, models.NewStoreError("users.decode", err)
	}
	return users, nil
}

// UpdateUser merges the non-nil fields of req into the user document,
// rehashing the password when one is supplied
func (r *MongoUserRepository) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", models.ErrNotFound)
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Username != nil {
		set["username"] = *req.Username
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, models.NewStoreError("users.hash", err)
		}
		set["password"] = hashed
	}
	if req.Image != nil {
		set["image"] = *req.Image
	}
	if req.Occupation != nil {
		set["occupation"] = *req.Occupation
	}
	if req.Bio != nil {
		set["bio"] = *req.Bio
	}
	if len(set) == 0 {
		return r.GetUserByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.User
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrDuplicateIdentity
		}
		return nil, models.NewStoreError("users.update", err)
	}
	return &updated, nil
}

// DeleteUser deletes a user by id
func (r *MongoUserRepository) DeleteUser(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid user ID format: %w", models.ErrNotFound)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return models.NewStoreError("users.delete", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
