package service

import "errors"

// Common service errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("unprocessable request")
)
