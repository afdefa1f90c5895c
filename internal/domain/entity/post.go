package entity

import "time"

// Post is a blog post owned by the user that created it.
type Post struct {
	ID        uint
	Title     string
	ShortDesc string
	Desc      string
	CreatedAt time.Time
	CreatedBy uint  // Owner, set once from the authenticated subject.
	Likes     int64 // Number of distinct users that liked the post.
	Images    []*PostImage
}

// PostDraft carries the mutable, user-supplied fields of a post.
type PostDraft struct {
	Title     string
	ShortDesc string
	Desc      string
}

// PostImage is an image attached to a post.
type PostImage struct {
	ID        uint
	PostID    uint
	URL       string
	CreatedAt time.Time
}

// PostAction names a mutation on a post that passes through the ownership policy.
type PostAction string

const (
	PostActionUpdate      PostAction = "update"
	PostActionDelete      PostAction = "delete"
	PostActionAttachImage PostAction = "attach_image"
	PostActionLike        PostAction = "like"
)

// RequiresOwnership reports whether only the post owner may perform the action.
func (a PostAction) RequiresOwnership() bool {
	switch a {
	case PostActionUpdate, PostActionDelete, PostActionAttachImage:
		return true
	default:
		return false
	}
}
