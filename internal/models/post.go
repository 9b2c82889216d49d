package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a post document with embedded comments and likes
type Post struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Content   string             `json:"content" bson:"content"`
	Tags      []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	ImgURL    string             `json:"imgUrl,omitempty" bson:"imgUrl,omitempty"`
	AuthorID  primitive.ObjectID `json:"authorId" bson:"authorId"`
	Comments  []Comment          `json:"comments" bson:"comments"`
	Likes     []Like             `json:"likes" bson:"likes"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`

	// Author is populated by the listing/detail aggregation join,
	// never persisted on the post document itself.
	Author *PostAuthor `json:"author,omitempty" bson:"author,omitempty"`
}

// PostAuthor is the projection of the post's author joined from the
// User collection.
type PostAuthor struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	Username string             `json:"username" bson:"username"`
	Name     string             `json:"name" bson:"name"`
}

// Comment is embedded in a post; the commenter's username is
// denormalized, not a reference. Comments are never edited or removed.
type Comment struct {
	Content   string    `json:"content" bson:"content"`
	Username  string    `json:"username" bson:"username"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Like is embedded in a post; at most one like per username per post.
type Like struct {
	Username  string    `json:"username" bson:"username"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CreatePostRequest defines the input for the addPost mutation. The
// author is always the authenticated caller.
type CreatePostRequest struct {
	Content string   `json:"content" validate:"required,min=1,max=2000"`
	Tags    []string `json:"tags,omitempty"`
	ImgURL  string   `json:"imgUrl,omitempty" validate:"omitempty,url"`
}

// UpdatePostRequest defines the partial input for the updatePost mutation
type UpdatePostRequest struct {
	Content *string  `json:"content,omitempty" validate:"omitempty,min=1,max=2000"`
	Tags    []string `json:"tags,omitempty"`
	ImgURL  *string  `json:"imgUrl,omitempty" validate:"omitempty,url"`
}

// CreateCommentRequest defines the input for the commentPost mutation
type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=500"`
	Username string `json:"username" validate:"required"`
}
