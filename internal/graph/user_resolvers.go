package graph

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/primaaawdn/LinkedOn-GC01/internal/auth"
	"github.com/primaaawdn/LinkedOn-GC01/internal/models"
)

func (r *Resolver) getUser(p graphql.ResolveParams) (interface{}, error) {
	return r.Users.GetUserByID(p.Context, stringArg(p, "id"))
}

func (r *Resolver) getUsers(p graphql.ResolveParams) (interface{}, error) {
	return r.Users.GetUsers(p.Context)
}

func (r *Resolver) searchUser(p graphql.ResolveParams) (interface{}, error) {
	return r.Users.SearchUsers(p.Context, stringArg(p, "query"))
}

func (r *Resolver) addUser(p graphql.ResolveParams) (interface{}, error) {
	req := &models.CreateUserRequest{
		Name:     stringArg(p, "name"),
		Username: stringArg(p, "username"),
		Email:    stringArg(p, "email"),
		Password: stringArg(p, "password"),
	}
	if err := r.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return r.Users.CreateUser(p.Context, req)
}

func (r *Resolver) loginUser(p graphql.ResolveParams) (interface{}, error) {
	user, err := r.Users.GetUserByUsername(p.Context, stringArg(p, "username"))
	if err != nil {
		// An unknown username reads the same as a bad password.
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredential
		}
		return nil, err
	}
	if !auth.ComparePassword(user.Password, stringArg(p, "password")) {
		return nil, models.ErrInvalidCredential
	}
	token, err := r.Tokens.Sign(user)
	if err != nil {
		return nil, models.NewStoreError("token.sign", err)
	}
	return &models.AuthPayload{User: user, Token: token}, nil
}

func (r *Resolver) updateUser(p graphql.ResolveParams, _ auth.Identity) (interface{}, error) {
	req := &models.UpdateUserRequest{
		Name:       optStringArg(p, "name"),
		Username:   optStringArg(p, "username"),
		Email:      optStringArg(p, "email"),
		Password:   optStringArg(p, "password"),
		Image:      optStringArg(p, "image"),
		Occupation: optStringArg(p, "occupation"),
		Bio:        optStringArg(p, "bio"),
	}
	if err := r.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return r.Users.UpdateUser(p.Context, stringArg(p, "id"), req)
}

func (r *Resolver) deleteUser(p graphql.ResolveParams, _ auth.Identity) (interface{}, error) {
	if err := r.Users.DeleteUser(p.Context, stringArg(p, "id")); err != nil {
		return nil, err
	}
	return "User deleted successfully", nil
}
