package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/primaaawdn/LinkedOn-GC01/internal/auth"
	"github.com/primaaawdn/LinkedOn-GC01/internal/models"
)

func (r *Resolver) getPosts(p graphql.ResolveParams) (interface{}, error) {
	return r.Content.ListPosts(p.Context)
}

func (r *Resolver) getPostByID(p graphql.ResolveParams) (interface{}, error) {
	return r.Content.GetPost(p.Context, stringArg(p, "id"))
}

func (r *Resolver) getComments(p graphql.ResolveParams) (interface{}, error) {
	return r.Content.GetComments(p.Context, stringArg(p, "postId"))
}

// postAuthor serves the joined author when the aggregation provided
// one and falls back to a user lookup for posts returned by mutations,
// which come straight from the Post collection.
func (r *Resolver) postAuthor(p graphql.ResolveParams) (interface{}, error) {
	post := postSource(p)
	if post == nil {
		return nil, nil
	}
	if post.Author != nil {
		return post.Author, nil
	}
	user, err := r.Users.GetUserByID(p.Context, post.AuthorID.Hex())
	if err != nil {
		return nil, nil
	}
	return &models.PostAuthor{ID: user.ID, Username: user.Username, Name: user.Name}, nil
}

func (r *Resolver) addPost(p graphql.ResolveParams, ident auth.Identity) (interface{}, error) {
	req := &models.CreatePostRequest{
		Content: stringArg(p, "content"),
		Tags:    stringSliceArg(p, "tags"),
	}
	if img := optStringArg(p, "imgUrl"); img != nil {
		req.ImgURL = *img
	}
	if err := r.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return r.Content.CreatePost(p.Context, req, ident.UserID)
}

func (r *Resolver) updatePost(p graphql.ResolveParams, _ auth.Identity) (interface{}, error) {
	req := &models.UpdatePostRequest{
		Content: optStringArg(p, "content"),
		Tags:    stringSliceArg(p, "tags"),
		ImgURL:  optStringArg(p, "imgUrl"),
	}
	if err := r.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return r.Content.UpdatePost(p.Context, stringArg(p, "id"), req)
}

func (r *Resolver) deletePost(p graphql.ResolveParams, _ auth.Identity) (interface{}, error) {
	if err := r.Content.DeletePost(p.Context, stringArg(p, "id")); err != nil {
		return nil, err
	}
	return "Post deleted successfully", nil
}

func (r *Resolver) commentPost(p graphql.ResolveParams, _ auth.Identity) (interface{}, error) {
	req := &models.CreateCommentRequest{
		Content:  stringArg(p, "content"),
		Username: stringArg(p, "username"),
	}
	if err := r.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return r.Content.CommentPost(p.Context, stringArg(p, "postId"), req)
}

func (r *Resolver) likePost(p graphql.ResolveParams, _ auth.Identity) (interface{}, error) {
	return r.Content.LikePost(p.Context, stringArg(p, "postId"), stringArg(p, "username"))
}
