package posts

import "errors"

// ErrPostNotFound indicates the requested post doesn't exist
var ErrPostNotFound = errors.New("post not found")
