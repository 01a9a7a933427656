package service

import "errors"

var (
	ErrInvalidUserData = errors.New("invalid user data provided")
)
