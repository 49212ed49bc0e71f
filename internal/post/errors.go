package post

import "errors"

// Domain-specific errors for the post package.
var (
	// ErrNotFound means no post carries the requested slug.
	ErrNotFound = errors.New("post not found")
)
