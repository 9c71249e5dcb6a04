package domain

import "errors"

// Error taxonomy for the connection lifecycle. Handlers branch on these
// with errors.Is and map them to stable response codes; services never
// wrap one kind into another.
var (
	ErrValidation    = errors.New("validation failed")
	ErrSelfReference = errors.New("cannot target yourself")
	ErrAlreadyExists = errors.New("already exists")
	ErrNotAuthorized = errors.New("not authorized")
	ErrNotFound      = errors.New("not found")
	ErrNotConnected  = errors.New("no accepted interest between users")
)
