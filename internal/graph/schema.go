package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/primaaawdn/LinkedOn-GC01/internal/models"
)

const timeFormat = time.RFC3339

func formatTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(timeFormat)
}

func userSource(p graphql.ResolveParams) *models.User {
	switch v := p.Source.(type) {
	case models.User:
		return &v
	case *models.User:
		return v
	}
	return nil
}

func postSource(p graphql.ResolveParams) *models.Post {
	switch v := p.Source.(type) {
	case models.Post:
		return &v
	case *models.Post:
		return v
	}
	return nil
}

// NewSchema builds the executable schema over the given resolver
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"_id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if u := userSource(p); u != nil {
						return u.ID.Hex(), nil
					}
					return nil, nil
				},
			},
			"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"username":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"image":      &graphql.Field{Type: graphql.String},
			"occupation": &graphql.Field{Type: graphql.String},
			"bio":        &graphql.Field{Type: graphql.String},
		},
	})

	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"user":  &graphql.Field{Type: graphql.NewNonNull(userType)},
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	postAuthorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PostAuthor",
		Fields: graphql.Fields{
			"_id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					switch v := p.Source.(type) {
					case models.PostAuthor:
						return v.ID.Hex(), nil
					case *models.PostAuthor:
						return v.ID.Hex(), nil
					}
					return nil, nil
				},
			},
			"username": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"name":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	commentType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Comment",
		Fields: graphql.Fields{
			"content":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"username": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return formatTime(commentOf(p).CreatedAt), nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return formatTime(commentOf(p).UpdatedAt), nil
				},
			},
		},
	})

	likeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Like",
		Fields: graphql.Fields{
			"username": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return formatTime(likeOf(p).CreatedAt), nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return formatTime(likeOf(p).UpdatedAt), nil
				},
			},
		},
	})

	postType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"_id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if post := postSource(p); post != nil {
						return post.ID.Hex(), nil
					}
					return nil, nil
				},
			},
			"content": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"tags":    &graphql.Field{Type: graphql.NewList(graphql.String)},
			"imgUrl":  &graphql.Field{Type: graphql.String},
			"authorId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if post := postSource(p); post != nil {
						return post.AuthorID.Hex(), nil
					}
					return nil, nil
				},
			},
			"comments": &graphql.Field{Type: graphql.NewList(commentType)},
			"likes":    &graphql.Field{Type: graphql.NewList(likeType)},
			"createdAt": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if post := postSource(p); post != nil {
						return formatTime(post.CreatedAt), nil
					}
					return nil, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if post := postSource(p); post != nil {
						return formatTime(post.UpdatedAt), nil
					}
					return nil, nil
				},
			},
			"author": &graphql.Field{
				Type:    postAuthorType,
				Resolve: r.postAuthor,
			},
		},
	})

	followType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Follow",
		Fields: graphql.Fields{
			"_id": &graphql.Field{
				Type: graphql.ID,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return followOf(p).ID.Hex(), nil
				},
			},
			"followerId": &graphql.Field{
				Type: graphql.ID,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return followOf(p).FollowerID.Hex(), nil
				},
			},
			"followingId": &graphql.Field{
				Type: graphql.ID,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return followOf(p).FollowingID.Hex(), nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return formatTime(followOf(p).CreatedAt), nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return formatTime(followOf(p).UpdatedAt), nil
				},
			},
		},
	})

	followEdgeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "FollowEdge",
		Fields: graphql.Fields{
			"_id": &graphql.Field{
				Type: graphql.ID,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return edgeOf(p).ID.Hex(), nil
				},
			},
			"followerId": &graphql.Field{
				Type: graphql.ID,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return edgeOf(p).FollowerID.Hex(), nil
				},
			},
			"followingId": &graphql.Field{
				Type: graphql.ID,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return edgeOf(p).FollowingID.Hex(), nil
				},
			},
			"name":     &graphql.Field{Type: graphql.String},
			"username": &graphql.Field{Type: graphql.String},
			"image":    &graphql.Field{Type: graphql.String},
			"createdAt": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return formatTime(edgeOf(p).CreatedAt), nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return formatTime(edgeOf(p).UpdatedAt), nil
				},
			},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.getUser,
			},
			"getUsers": &graphql.Field{
				Type:    graphql.NewList(userType),
				Resolve: r.getUsers,
			},
			"searchUser": &graphql.Field{
				Type: graphql.NewList(userType),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.searchUser,
			},
			"getPosts": &graphql.Field{
				Type:    graphql.NewList(postType),
				Resolve: r.getPosts,
			},
			"getPostById": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.getPostByID,
			},
			"getComments": &graphql.Field{
				Type: graphql.NewList(commentType),
				Args: graphql.FieldConfigArgument{
					"postId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.getComments,
			},
			"followers": &graphql.Field{
				Type: graphql.NewList(followEdgeType),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.authed(r.followers),
			},
			"following": &graphql.Field{
				Type: graphql.NewList(followEdgeType),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.authed(r.following),
			},
			"followersCount": &graphql.Field{
				Type: graphql.Int,
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.authed(r.followersCount),
			},
			"followingCount": &graphql.Field{
				Type: graphql.Int,
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.authed(r.followingCount),
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.addUser,
			},
			"loginUser": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.loginUser,
			},
			"updateUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name":       &graphql.ArgumentConfig{Type: graphql.String},
					"username":   &graphql.ArgumentConfig{Type: graphql.String},
					"email":      &graphql.ArgumentConfig{Type: graphql.String},
					"password":   &graphql.ArgumentConfig{Type: graphql.String},
					"image":      &graphql.ArgumentConfig{Type: graphql.String},
					"occupation": &graphql.ArgumentConfig{Type: graphql.String},
					"bio":        &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.authed(r.updateUser),
			},
			"deleteUser": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.authed(r.deleteUser),
			},
			"addPost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"content": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"tags":    &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
					"imgUrl":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.authed(r.addPost),
			},
			"updatePost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"content": &graphql.ArgumentConfig{Type: graphql.String},
					"tags":    &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
					"imgUrl":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.authed(r.updatePost),
			},
			"deletePost": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.authed(r.deletePost),
			},
			"commentPost": &graphql.Field{
				Type: commentType,
				Args: graphql.FieldConfigArgument{
					"postId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"content":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.authed(r.commentPost),
			},
			"likePost": &graphql.Field{
				Type: likeType,
				Args: graphql.FieldConfigArgument{
					"postId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.authed(r.likePost),
			},
			"followUser": &graphql.Field{
				Type: followType,
				Args: graphql.FieldConfigArgument{
					"followerId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"followingId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.authed(r.followUser),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func commentOf(p graphql.ResolveParams) models.Comment {
	switch v := p.Source.(type) {
	case models.Comment:
		return v
	case *models.Comment:
		return *v
	}
	return models.Comment{}
}

func likeOf(p graphql.ResolveParams) models.Like {
	switch v := p.Source.(type) {
	case models.Like:
		return v
	case *models.Like:
		return *v
	}
	return models.Like{}
}

func followOf(p graphql.ResolveParams) models.Follow {
	switch v := p.Source.(type) {
	case models.Follow:
		return v
	case *models.Follow:
		return *v
	}
	return models.Follow{}
}

func edgeOf(p graphql.ResolveParams) models.FollowEdge {
	switch v := p.Source.(type) {
	case models.FollowEdge:
		return v
	case *models.FollowEdge:
		return *v
	}
	return models.FollowEdge{}
}
