package entity

import "time"

// Comment is a short text left by a user on a post.
type Comment struct {
	ID        uint
	PostID    uint
	UserID    uint
	Content   string
	CreatedAt time.Time
}
