package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/primaaawdn/LinkedOn-GC01/internal/models"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, req *models.CreatePostRequest, authorID string) (*models.Post, error)
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	UpdatePost(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, id string) error
	AddComment(ctx context.Context, postID string, req *models.CreateCommentRequest) (*models.Comment, error)
	AddLike(ctx context.Context, postID, username string) (*models.Like, error)
	GetComments(ctx context.Context, postID string) ([]models.Comment, error)
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("Post")}
}

// authorLookup joins the post's author from the User collection and
// trims the join to the public subset {_id, username, name}.
func authorLookup() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "User",
			"localField":   "authorId",
			"foreignField": "_id",
			"as":           "author",
		}}},
		bson.D{{Key: "$unwind", Value: "$author"}},
		bson.D{{Key: "$project", Value: bson.M{
			"content":         1,
			"tags":            1,
			"imgUrl":          1,
			"authorId":        1,
			"comments":        1,
			"likes":           1,
			"createdAt":       1,
			"updatedAt":       1,
			"author._id":      1,
			"author.username": 1,
			"author.name":     1,
		}}},
	}
}

// CreatePost inserts a new post with empty comment and like lists
func (r *MongoPostRepository) CreatePost(ctx context.Context, req *models.CreatePostRequest, authorID string) (*models.Post, error) {
	authorObjID, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author ID format: %w", models.ErrNotFound)
	}

	now := time.Now()
	post := &models.Post{
		ID:        primitive.NewObjectID(),
		Content:   req.Content,
		Tags:      req.Tags,
		ImgURL:    req.ImgURL,
		AuthorID:  authorObjID,
		Comments:  []models.Comment{},
		Likes:     []models.Like{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return nil, models.NewStoreError("posts.insert", err)
	}
	return post, nil
}

// GetAllPosts retrieves every post joined with its author, newest first.
// An empty collection yields an empty slice.
func (r *MongoPostRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	pipeline = append(pipeline, authorLookup()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, models.NewStoreError("posts.aggregate", err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, models.NewStoreError("posts.decode", err)
	}
	return posts, nil
}

// GetPostByID retrieves a single post joined with its author
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID format: %w", models.ErrNotFound)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": objID}}},
	}
	pipeline = append(pipeline, authorLookup()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, models.NewStoreError("posts.aggregate", err)
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, models.NewStoreError("posts.decode", err)
	}
	if len(posts) == 0 {
		return nil, models.ErrNotFound
	}
	return &posts[0], nil
}

// UpdatePost merges the non-nil fields of req into the post document
func (r *MongoPostRepository) UpdatePost(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID format: %w", models.ErrNotFound)
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Content != nil {
		set["content"] = *req.Content
	}
	if req.Tags != nil {
		set["tags"] = req.Tags
	}
	if req.ImgURL != nil {
		set["imgUrl"] = *req.ImgURL
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Post
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrNotFound
		}
		return nil, models.NewStoreError("posts.update", err)
	}
	return &updated, nil
}

// DeletePost deletes a post by id
func (r *MongoPostRepository) DeletePost(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid post ID format: %w", models.ErrNotFound)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return models.NewStoreError("posts.delete", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// AddComment appends a comment to the post's comment list. Fails with
// ErrNotFound when the post does not exist.
func (r *MongoPostRepository) AddComment(ctx context.Context, postID string, req *models.CreateCommentRequest) (*models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID format: %w", models.ErrNotFound)
	}

	now := time.Now()
	comment := models.Comment{
		Content:   req.Content,
		Username:  req.Username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updatedAt": now},
	})
	if err != nil {
		return nil, models.NewStoreError("posts.comment", err)
	}
	if res.MatchedCount == 0 {
		return nil, models.ErrNotFound
	}
	return &comment, nil
}

// AddLike appends a like for username. The filter excludes posts that
// already carry a like by the same username, so the append is atomic
// and one like per user per post is enforced at the store.
func (r *MongoPostRepository) AddLike(ctx context.Context, postID, username string) (*models.Like, error) {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID format: %w", models.ErrNotFound)
	}

	now := time.Now()
	like := models.Like{
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	filter := bson.M{
		"_id":            objID,
		"likes.username": bson.M{"$ne": username},
	}
	res, err := r.collection.UpdateOne(ctx, filter, bson.M{
		"$push": bson.M{"likes": like},
		"$set":  bson.M{"updatedAt": now},
	})
	if err != nil {
		return nil, models.NewStoreError("posts.like", err)
	}
	if res.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": objID})
		if err != nil {
			return nil, models.NewStoreError("posts.count", err)
		}
		if count == 0 {
			return nil, models.ErrNotFound
		}
		return nil, models.ErrAlreadyLiked
	}
	return &like, nil
}

// GetComments returns the post's comment list, oldest first
func (r *MongoPostRepository) GetComments(ctx context.Context, postID string) ([]models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID format: %w", models.ErrNotFound)
	}

	opts := options.FindOne().SetProjection(bson.M{"comments": 1})
	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}, opts).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrNotFound
		}
		return nil, models.NewStoreError("posts.find", err)
	}
	if post.Comments == nil {
		return []models.Comment{}, nil
	}
	return post.Comments, nil
}
