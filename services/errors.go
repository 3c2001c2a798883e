package services

import "errors"

var (
	ErrValidation              = errors.New("validation failed")
	ErrAuthInvalidCredentials  = errors.New("invalid username or password")
	ErrAuthUsernameTaken       = errors.New("username is already taken")
	ErrForbidden               = errors.New("operation not allowed")
	ErrPhotoStorageUnavailable = errors.New("photo storage is not configured")
)
