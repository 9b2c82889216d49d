// Package service routes every content read and write through one
// choke-point so the listing cache is invalidated on each mutation
// that changes what the listing shows.
package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/primaaawdn/LinkedOn-GC01/internal/cache"
	"github.com/primaaawdn/LinkedOn-GC01/internal/models"
	"github.com/primaaawdn/LinkedOn-GC01/internal/repositories"
)

// PostsCacheKey is the cache entry holding the serialized post listing
const PostsCacheKey = "posts"

// ContentService composes the post store and the listing cache
type ContentService struct {
	posts repositories.PostRepository
	cache cache.Store
}

// NewContentService creates a ContentService
func NewContentService(posts repositories.PostRepository, store cache.Store) *ContentService {
	return &ContentService{posts: posts, cache: store}
}

// ListPosts is a read-through on the "posts" key: a hit is served from
// the cache, a miss queries the store and populates the entry.
// Concurrent population is last-writer-wins; at worst one redundant
// store query.
func (s *ContentService) ListPosts(ctx context.Context) ([]models.Post, error) {
	raw, err := s.cache.Get(ctx, PostsCacheKey)
	if err == nil {
		var posts []models.Post
		if err := json.Unmarshal(raw, &posts); err == nil {
			return posts, nil
		}
		// Undecodable entry: drop it and fall through to the store.
		if err := s.cache.Del(ctx, PostsCacheKey); err != nil {
			log.Printf("cache: failed to drop corrupt %q entry: %v", PostsCacheKey, err)
		}
	} else if err != cache.ErrMiss {
		return nil, models.NewStoreError("cache.get", err)
	}

	posts, err := s.posts.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(posts); err == nil {
		if err := s.cache.Set(ctx, PostsCacheKey, raw); err != nil {
			log.Printf("cache: failed to store %q entry: %v", PostsCacheKey, err)
		}
	}
	return posts, nil
}

// GetPost reads a single post directly from the store
func (s *ContentService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	return s.posts.GetPostByID(ctx, id)
}

// GetComments reads a post's comments directly from the store
func (s *ContentService) GetComments(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.posts.GetComments(ctx, postID)
}

// CreatePost writes a new post and invalidates the listing
func (s *ContentService) CreatePost(ctx context.Context, req *models.CreatePostRequest, authorID string) (*models.Post, error) {
	post, err := s.posts.CreatePost(ctx, req, authorID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return post, nil
}

// UpdatePost edits a post and invalidates the listing
func (s *ContentService) UpdatePost(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.posts.UpdatePost(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return post, nil
}

// DeletePost removes a post and invalidates the listing
func (s *ContentService) DeletePost(ctx context.Context, id string) error {
	if err := s.posts.DeletePost(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// CommentPost appends a comment and invalidates the listing. Comments
// are visible in the cached listing, so this write invalidates too.
func (s *ContentService) CommentPost(ctx context.Context, postID string, req *models.CreateCommentRequest) (*models.Comment, error) {
	comment, err := s.posts.AddComment(ctx, postID, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return comment, nil
}

// LikePost appends a like and invalidates the listing
func (s *ContentService) LikePost(ctx context.Context, postID, username string) (*models.Like, error) {
	like, err := s.posts.AddLike(ctx, postID, username)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return like, nil
}

func (s *ContentService) invalidate(ctx context.Context) {
	if err := s.cache.Del(ctx, PostsCacheKey); err != nil {
		log.Printf("cache: failed to invalidate %q entry: %v", PostsCacheKey, err)
	}
}
