package graph

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/primaaawdn/LinkedOn-GC01/internal/auth"
	"github.com/primaaawdn/LinkedOn-GC01/internal/cache"
	"github.com/primaaawdn/LinkedOn-GC01/internal/models"
)

// In-memory implementations of the store interfaces, mirroring the
// Mongo repositories' contracts so the schema can be exercised without
// a database.

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

type fakeUserRepo struct {
	users []models.User
}

func (r *fakeUserRepo) CreateUser(_ context.Context, req *models.CreateUserRequest) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == req.Username || u.Email == req.Email {
			return nil, models.ErrDuplicateIdentity
		}
	}
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		ID:       primitive.NewObjectID(),
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}
	r.users = append(r.users, user)
	return &user, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID.Hex() == id {
			return &r.users[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].Username == username {
			return &r.users[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeUserRepo) GetUsers(_ context.Context) ([]models.User, error) {
	return append([]models.User{}, r.users...), nil
}

func (r *fakeUserRepo) SearchUsers(_ context.Context, query string) ([]models.User, error) {
	q := strings.ToLower(query)
	matches := []models.User{}
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Username), q) {
			matches = append(matches, u)
		}
	}
	return matches, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID.Hex() != id {
			continue
		}
		if req.Name != nil {
			r.users[i].Name = *req.Name
		}
		if req.Username != nil {
			r.users[i].Username = *req.Username
		}
		if req.Email != nil {
			r.users[i].Email = *req.Email
		}
		if req.Password != nil {
			hashed, err := auth.HashPassword(*req.Password)
			if err != nil {
				return nil, err
			}
			r.users[i].Password = hashed
		}
		if req.Image != nil {
			r.users[i].Image = *req.Image
		}
		if req.Occupation != nil {
			r.users[i].Occupation = *req.Occupation
		}
		if req.Bio != nil {
			r.users[i].Bio = *req.Bio
		}
		return &r.users[i], nil
	}
	return nil, models.ErrNotFound
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, id string) error {
	for i := range r.users {
		if r.users[i].ID.Hex() == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeFollowRepo struct {
	users *fakeUserRepo
	edges []models.Follow
}

func (r *fakeFollowRepo) CreateFollow(_ context.Context, followerID, followingID string) (*models.Follow, error) {
	for _, e := range r.edges {
		if e.FollowerID.Hex() == followerID && e.FollowingID.Hex() == followingID {
			return nil, models.ErrAlreadyFollowing
		}
	}
	followerObjID, err := primitive.ObjectIDFromHex(followerID)
	if err != nil {
		return nil, models.ErrNotFound
	}
	followingObjID, err := primitive.ObjectIDFromHex(followingID)
	if err != nil {
		return nil, models.ErrNotFound
	}
	now := time.Now()
	edge := models.Follow{
		ID:          primitive.NewObjectID(),
		FollowerID:  followerObjID,
		FollowingID: followingObjID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.edges = append(r.edges, edge)
	return &edge, nil
}

func (r *fakeFollowRepo) join(edge models.Follow, counterpartID primitive.ObjectID) models.FollowEdge {
	joined := models.FollowEdge{
		ID:          edge.ID,
		FollowerID:  edge.FollowerID,
		FollowingID: edge.FollowingID,
		CreatedAt:   edge.CreatedAt,
		UpdatedAt:   edge.UpdatedAt,
	}
	for _, u := range r.users.users {
		if u.ID == counterpartID {
			joined.Name = u.Name
			joined.Username = u.Username
			joined.Image = u.Image
		}
	}
	return joined
}

func (r *fakeFollowRepo) GetFollowers(_ context.Context, userID string) ([]models.FollowEdge, error) {
	edges := []models.FollowEdge{}
	for _, e := range r.edges {
		if e.FollowingID.Hex() == userID {
			edges = append(edges, r.join(e, e.FollowerID))
		}
	}
	return edges, nil
}

func (r *fakeFollowRepo) GetFollowing(_ context.Context, userID string) ([]models.FollowEdge, error) {
	edges := []models.FollowEdge{}
	for _, e := range r.edges {
		if e.FollowerID.Hex() == userID {
			edges = append(edges, r.join(e, e.FollowingID))
		}
	}
	return edges, nil
}

func (r *fakeFollowRepo) CountFollowers(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, e := range r.edges {
		if e.FollowingID.Hex() == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeFollowRepo) CountFollowing(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, e := range r.edges {
		if e.FollowerID.Hex() == userID {
			count++
		}
	}
	return count, nil
}

type fakePostRepo struct {
	users *fakeUserRepo
	posts []models.Post
}

func (r *fakePostRepo) CreatePost(_ context.Context, req *models.CreatePostRequest, authorID string) (*models.Post, error) {
	authorObjID, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, models.ErrNotFound
	}
	now := time.Now()
	post := models.Post{
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
	// Newest first, matching the aggregation's sort order.
	r.posts = append([]models.Post{post}, r.posts...)
	return &post, nil
}

func (r *fakePostRepo) withAuthor(post models.Post) models.Post {
	for _, u := range r.users.users {
		if u.ID == post.AuthorID {
			post.Author = &models.PostAuthor{ID: u.ID, Username: u.Username, Name: u.Name}
		}
	}
	return post
}

func (r *fakePostRepo) GetAllPosts(_ context.Context) ([]models.Post, error) {
	posts := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		posts = append(posts, r.withAuthor(p))
	}
	return posts, nil
}

func (r *fakePostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	for _, p := range r.posts {
		if p.ID.Hex() == id {
			joined := r.withAuthor(p)
			return &joined, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakePostRepo) UpdatePost(_ context.Context, id string, req *models.UpdatePostRequest) (*models.Post, error) {
	for i := range r.posts {
		if r.posts[i].ID.Hex() != id {
			continue
		}
		if req.Content != nil {
			r.posts[i].Content = *req.Content
		}
		if req.Tags != nil {
			r.posts[i].Tags = req.Tags
		}
		if req.ImgURL != nil {
			r.posts[i].ImgURL = *req.ImgURL
		}
		r.posts[i].UpdatedAt = time.Now()
		return &r.posts[i], nil
	}
	return nil, models.ErrNotFound
}

func (r *fakePostRepo) DeletePost(_ context.Context, id string) error {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *fakePostRepo) AddComment(_ context.Context, postID string, req *models.CreateCommentRequest) (*models.Comment, error) {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == postID {
			now := time.Now()
			comment := models.Comment{Content: req.Content, Username: req.Username, CreatedAt: now, UpdatedAt: now}
			r.posts[i].Comments = append(r.posts[i].Comments, comment)
			return &comment, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakePostRepo) AddLike(_ context.Context, postID, username string) (*models.Like, error) {
	for i := range r.posts {
		if r.posts[i].ID.Hex() != postID {
			continue
		}
		for _, l := range r.posts[i].Likes {
			if l.Username == username {
				return nil, models.ErrAlreadyLiked
			}
		}
		now := time.Now()
		like := models.Like{Username: username, CreatedAt: now, UpdatedAt: now}
		r.posts[i].Likes = append(r.posts[i].Likes, like)
		return &like, nil
	}
	return nil, models.ErrNotFound
}

func (r *fakePostRepo) GetComments(_ context.Context, postID string) ([]models.Comment, error) {
	for _, p := range r.posts {
		if p.ID.Hex() == postID {
			return p.Comments, nil
		}
	}
	return nil, models.ErrNotFound
}
