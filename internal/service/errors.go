package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid phone or password")
	ErrPasswordMismatch    = errors.New("password does not match")
	ErrPasswordHashing     = errors.New("password hashing failed")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid   = errors.New("token signature is invalid")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
