package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Follow represents a directed follow edge between two users.
// The (followerId, followingId) pair is unique.
type Follow struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	FollowerID  primitive.ObjectID `json:"followerId" bson:"followerId"`
	FollowingID primitive.ObjectID `json:"followingId" bson:"followingId"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// FollowEdge is a follow edge joined with the counterpart user's public
// profile fields. For a followers listing the counterpart is the
// follower; for a following listing it is the followee.
type FollowEdge struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	FollowerID  primitive.ObjectID `json:"followerId" bson:"followerId"`
	FollowingID primitive.ObjectID `json:"followingId" bson:"followingId"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
	Name        string             `json:"name" bson:"name"`
	Username    string             `json:"username" bson:"username"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
}
