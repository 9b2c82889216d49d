package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/primaaawdn/LinkedOn-GC01/internal/auth"
)

func (r *Resolver) followers(p graphql.ResolveParams, _ auth.Identity) (interface{}, error) {
	return r.Follows.GetFollowers(p.Context, stringArg(p, "userId"))
}

func (r *Resolver) following(p graphql.ResolveParams, _ auth.Identity) (interface{}, error) {
	return r.Follows.GetFollowing(p.Context, stringArg(p, "userId"))
}

func (r *Resolver) followersCount(p graphql.ResolveParams, _ auth.Identity) (interface{}, error) {
	return r.Follows.CountFollowers(p.Context, stringArg(p, "userId"))
}

func (r *Resolver) followingCount(p graphql.ResolveParams, _ auth.Identity) (interface{}, error) {
	return r.Follows.CountFollowing(p.Context, stringArg(p, "userId"))
}

func (r *Resolver) followUser(p graphql.ResolveParams, _ auth.Identity) (interface{}, error) {
	return r.Follows.CreateFollow(p.Context, stringArg(p, "followerId"), stringArg(p, "followingId"))
}
