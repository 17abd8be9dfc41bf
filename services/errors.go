package services

import "errors"

var (
	ErrDuplicateEmail  = errors.New("existing user found with same email address")
	ErrInvalidEmail    = errors.New("wrong email id")
	ErrInvalidPassword = errors.New("wrong password")
	ErrUnauthenticated = errors.New("please authenticate using a valid token")
	ErrInvalidToken    = errors.New("invalid token")
	ErrUserNotFound    = errors.New("user not found")
)
