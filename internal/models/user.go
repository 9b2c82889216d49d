package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account document in the User collection.
// Username and email are unique across the collection.
type User struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Username   string             `json:"username" bson:"username"`
	Email      string             `json:"email" bson:"email"`
	Password   string             `json:"-" bson:"password"` // bcrypt hash, never serialized
	Image      string             `json:"image,omitempty" bson:"image,omitempty"`
	Occupation string             `json:"occupation,omitempty" bson:"occupation,omitempty"`
	Bio        string             `json:"bio,omitempty" bson:"bio,omitempty"`
}

// CreateUserRequest defines the input for the addUser mutation
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest defines the partial input for the updateUser mutation.
// Nil fields are left untouched; a non-nil Password is rehashed.
type UpdateUserRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Username   *string `json:"username,omitempty" validate:"omitempty,min=3,max=30"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Password   *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Image      *string `json:"image,omitempty"`
	Occupation *string `json:"occupation,omitempty"`
	Bio        *string `json:"bio,omitempty"`
}

// AuthPayload is the loginUser mutation result
type AuthPayload struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
