package posts

import "errors"

// ErrPostNotFound is returned by the repository when no post has the id.
var ErrPostNotFound = errors.New("post not found")

// ErrPostExists is returned when a create collides with an existing id.
// The service checks before writing, this is the storage-level backstop.
var ErrPostExists = errors.New("post already exists")
