package service

import "errors"

// ErrInvalidInput is wrapped by service validation failures.
var ErrInvalidInput = errors.New("invalid input")
