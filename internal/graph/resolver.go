// Package graph exposes the GraphQL API: schema types, queries and
// mutations composing the stores, the content service and the auth
// gate.
package graph

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/graphql-go/graphql"

	"github.com/primaaawdn/LinkedOn-GC01/internal/auth"
	"github.com/primaaawdn/LinkedOn-GC01/internal/repositories"
	"github.com/primaaawdn/LinkedOn-GC01/internal/service"
)

type ctxKey int

const authHeaderKey ctxKey = 0

// WithAuthHeader stores the request's authorization header on the
// context handed to resolvers
func WithAuthHeader(ctx context.Context, header string) context.Context {
	return context.WithValue(ctx, authHeaderKey, header)
}

// Resolver holds the dependencies GraphQL resolvers operate on
type Resolver struct {
	Users    repositories.UserRepository
	Follows  repositories.FollowRepository
	Content  *service.ContentService
	Tokens   *auth.TokenManager
	validate *validator.Validate
}

// NewResolver creates a Resolver
func NewResolver(users repositories.UserRepository, follows repositories.FollowRepository, content *service.ContentService, tokens *auth.TokenManager) *Resolver {
	return &Resolver{
		Users:    users,
		Follows:  follows,
		Content:  content,
		Tokens:   tokens,
		validate: validator.New(),
	}
}

// authedResolver is the handler shape for operations that require a
// caller identity. Protected fields are built through authed, so a
// resolver cannot reach this signature without the auth gate running.
type authedResolver func(p graphql.ResolveParams, ident auth.Identity) (interface{}, error)

func (r *Resolver) authed(fn authedResolver) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		header, _ := p.Context.Value(authHeaderKey).(string)
		ident, err := r.Tokens.Authenticate(header)
		if err != nil {
			return nil, err
		}
		return fn(p, ident)
	}
}

// stringArg returns the named argument as a string, empty when absent
func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}

// optStringArg returns a pointer to the named argument, nil when absent
func optStringArg(p graphql.ResolveParams, name string) *string {
	if s, ok := p.Args[name].(string); ok {
		return &s
	}
	return nil
}

// stringSliceArg converts a GraphQL list argument to []string
func stringSliceArg(p graphql.ResolveParams, name string) []string {
	raw, ok := p.Args[name].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
