package impl

import (
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/errors"
)

// authorizePostMutation decides whether subject may perform action on post.
// Every mutation needs an authenticated subject. Update, delete and image attach
// are reserved to the post owner; liking is open to any authenticated user.
func authorizePostMutation(subject uint, post *entity.Post, action entity.PostAction) error {
	if subject == 0 {
		return errors.Wrapf(domainerrors.ErrMissingCredentials, "%s requires an authenticated user", action)
	}
	if action.RequiresOwnership() && post.CreatedBy != subject {
		return errors.Wrapf(domainerrors.ErrForbidden, "user %d cannot %s post %d", subject, action, post.ID)
	}

	return nil
}
