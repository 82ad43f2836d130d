package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrUserNotFound       = errors.New("user not found")
	ErrCategoryExists     = errors.New("category already exists")
	ErrInvalidCategory    = errors.New("category does not exist")
	ErrTutorProfileExists = errors.New("tutor profile already exists for this user")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
	ErrWeakPassword       = errors.New("password must be 8-128 characters with an uppercase letter, a lowercase letter, and a digit")
)
