package userModel

import (
	"context"
	"errors"
)

var ErrUserExists = errors.New("username already exists")

type User struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	// bcrypt hash, never the plaintext
	PasswordHash string `json:"-"`
}

type UserStore interface {
	GetUser(ctx context.Context, username string) (User, bool, error)
	// SaveUser fails when the username is already taken.
	SaveUser(ctx context.Context, user User) error
}
