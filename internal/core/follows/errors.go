package follows

import "errors"

// ErrFollowNotFound is returned when no edge exists for a follower/followee
// pair.
var ErrFollowNotFound = errors.New("follow not found")

// ErrFollowExists is returned when an edge for the pair already exists.
var ErrFollowExists = errors.New("follow already exists")
