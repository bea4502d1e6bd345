package post

import (
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a post could not be located.
	ErrNotFound = errors.New("post not found")
	// ErrNoPosts signals an empty post listing.
	ErrNoPosts = errors.New("no posts available")
)

// Post captures a single published entry with an optional image.
type Post struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	ImageURL    string    `json:"url,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
