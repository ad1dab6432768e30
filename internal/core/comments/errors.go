package comments

import "errors"

// ErrCommentNotFound is returned by the repository when no comment has the id.
var ErrCommentNotFound = errors.New("comment not found")

// ErrCommentExists is returned when a create collides with an existing id.
var ErrCommentExists = errors.New("comment already exists")
