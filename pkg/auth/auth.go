package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// JWTKey signs session tokens. Overridden from config at startup.
var JWTKey = []byte("dev-secret-key-change-in-production")

type Claims struct {
	Profile struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"profile"`
	jwt.RegisteredClaims
}

type ctxKey int

const authKey ctxKey = iota

type Auth struct {
	Username string
	Role     string
}

func (a Auth) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func SetAuthContext(ctx context.Context, username, role string) context.Context {
	return context.WithValue(ctx, authKey, Auth{Username: username, Role: role})
}

func FromContext(ctx context.Context) (Auth, error) {
	a, ok := ctx.Value(authKey).(Auth)
	if !ok || a.Username == "" {
		return Auth{}, errors.New("no auth in context")
	}
	return a, nil
}
