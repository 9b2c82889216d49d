package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/primaaawdn/LinkedOn-GC01/internal/cache"
	"github.com/primaaawdn/LinkedOn-GC01/internal/models"
)

// memStore is an in-memory cache.Store for tests
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.data[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return val, nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *memStore) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *memStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok
}

// stubPostRepo counts listing queries and serves canned posts
type stubPostRepo struct {
	posts     []models.Post
	listCalls int
}

func (r *stubPostRepo) GetAllPosts(_ context.Context) ([]models.Post, error) {
	r.listCalls++
	return r.posts, nil
}

func (r *stubPostRepo) CreatePost(_ context.Context, req *models.CreatePostRequest, authorID string) (*models.Post, error) {
	objID, _ := primitive.ObjectIDFromHex(authorID)
	post := models.Post{
		ID:        primitive.NewObjectID(),
		Content:   req.Content,
		Tags:      req.Tags,
		ImgURL:    req.ImgURL,
		AuthorID:  objID,
		Comments:  []models.Comment{},
		Likes:     []models.Like{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.posts = append([]models.Post{post}, r.posts...)
	return &post, nil
}

func (r *stubPostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == id {
			return &r.posts[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *stubPostRepo) UpdatePost(_ context.Context, id string, req *models.UpdatePostRequest) (*models.Post, error) {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == id {
			if req.Content != nil {
				r.posts[i].Content = *req.Content
			}
			return &r.posts[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *stubPostRepo) DeletePost(_ context.Context, id string) error {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *stubPostRepo) AddComment(_ context.Context, postID string, req *models.CreateCommentRequest) (*models.Comment, error) {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == postID {
			comment := models.Comment{Content: req.Content, Username: req.Username, CreatedAt: time.Now(), UpdatedAt: time.Now()}
			r.posts[i].Comments = append(r.posts[i].Comments, comment)
			return &comment, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *stubPostRepo) AddLike(_ context.Context, postID, username string) (*models.Like, error) {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == postID {
			for _, l := range r.posts[i].Likes {
				if l.Username == username {
					return nil, models.ErrAlreadyLiked
				}
			}
			like := models.Like{Username: username, CreatedAt: time.Now(), UpdatedAt: time.Now()}
			r.posts[i].Likes = append(r.posts[i].Likes, like)
			return &like, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *stubPostRepo) GetComments(_ context.Context, postID string) ([]models.Comment, error) {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == postID {
			return r.posts[i].Comments, nil
		}
	}
	return nil, models.ErrNotFound
}

func seedPost(content string) models.Post {
	return models.Post{
		ID:        primitive.NewObjectID(),
		Content:   content,
		AuthorID:  primitive.NewObjectID(),
		Comments:  []models.Comment{},
		Likes:     []models.Like{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestListPostsReadThrough(t *testing.T) {
	ctx := context.Background()
	repo := &stubPostRepo{posts: []models.Post{seedPost("first")}}
	store := newMemStore()
	svc := NewContentService(repo, store)

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 1, repo.listCalls)
	assert.True(t, store.has(PostsCacheKey), "miss should populate the cache")

	// Second read is served from the snapshot, not the store.
	posts, err = svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 1, repo.listCalls)
}

func TestListPostsDropsCorruptEntry(t *testing.T) {
	ctx := context.Background()
	repo := &stubPostRepo{posts: []models.Post{seedPost("first")}}
	store := newMemStore()
	require.NoError(t, store.Set(ctx, PostsCacheKey, []byte("{not json")))

	svc := NewContentService(repo, store)
	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, 1, repo.listCalls)
}

func TestWritesInvalidateListing(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		write func(svc *ContentService, repo *stubPostRepo) error
	}{
		{
			name: "createPost",
			write: func(svc *ContentService, _ *stubPostRepo) error {
				_, err := svc.CreatePost(ctx, &models.CreatePostRequest{Content: "hello"}, primitive.NewObjectID().Hex())
				return err
			},
		},
		{
			name: "updatePost",
			write: func(svc *ContentService, repo *stubPostRepo) error {
				content := "edited"
				_, err := svc.UpdatePost(ctx, repo.posts[0].ID.Hex(), &models.UpdatePostRequest{Content: &content})
				return err
			},
		},
		{
			name: "deletePost",
			write: func(svc *ContentService, repo *stubPostRepo) error {
				return svc.DeletePost(ctx, repo.posts[0].ID.Hex())
			},
		},
		{
			// Comments are visible in the listing; appending one must
			// not leave a stale snapshot behind.
			name: "commentPost",
			write: func(svc *ContentService, repo *stubPostRepo) error {
				_, err := svc.CommentPost(ctx, repo.posts[0].ID.Hex(), &models.CreateCommentRequest{Content: "nice", Username: "amalthea"})
				return err
			},
		},
		{
			name: "likePost",
			write: func(svc *ContentService, repo *stubPostRepo) error {
				_, err := svc.LikePost(ctx, repo.posts[0].ID.Hex(), "amalthea")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubPostRepo{posts: []models.Post{seedPost("seed")}}
			store := newMemStore()
			svc := NewContentService(repo, store)

			_, err := svc.ListPosts(ctx)
			require.NoError(t, err)
			require.True(t, store.has(PostsCacheKey))

			require.NoError(t, tt.write(svc, repo))
			assert.False(t, store.has(PostsCacheKey), "write must invalidate the listing snapshot")
		})
	}
}

func TestFailedWriteKeepsListing(t *testing.T) {
	ctx := context.Background()
	repo := &stubPostRepo{posts: []models.Post{seedPost("seed")}}
	store := newMemStore()
	svc := NewContentService(repo, store)

	_, err := svc.ListPosts(ctx)
	require.NoError(t, err)

	_, err = svc.LikePost(ctx, primitive.NewObjectID().Hex(), "amalthea")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.True(t, store.has(PostsCacheKey), "failed write must not invalidate")
}

func TestLikePostDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := &stubPostRepo{posts: []models.Post{seedPost("seed")}}
	svc := NewContentService(repo, newMemStore())
	postID := repo.posts[0].ID.Hex()

	_, err := svc.LikePost(ctx, postID, "amalthea")
	require.NoError(t, err)

	_, err = svc.LikePost(ctx, postID, "amalthea")
	assert.ErrorIs(t, err, models.ErrAlreadyLiked)
	assert.Len(t, repo.posts[0].Likes, 1, "at most one like per user per post")
}
