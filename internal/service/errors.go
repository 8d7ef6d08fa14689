package service

import "errors"

var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrAuthorNotFound     = errors.New("author not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrNotPostOwner       = errors.New("post belongs to another author")
)
