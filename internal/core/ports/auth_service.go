package ports

import "context"

type AuthService interface {
	Register(ctx context.Context, name, email, password string) error
	// Login authenticates the user and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, error)
}
