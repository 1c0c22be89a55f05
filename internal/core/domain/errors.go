package domain

import "errors"

var (
	ErrFoodNotFound       = errors.New("food not found in this restaurant")
	ErrDuplicateVote      = errors.New("user has already voted for this food today")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInternal           = errors.New("internal server error")
)
