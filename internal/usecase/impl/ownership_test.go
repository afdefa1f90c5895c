package impl

import (
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizePostMutation(t *testing.T) {
	post := &entity.Post{ID: 10, CreatedBy: 1}

	tests := []struct {
		name    string
		subject uint
		action  entity.PostAction
		wantErr error
	}{
		{name: "owner updates", subject: 1, action: entity.PostActionUpdate},
		{name: "owner deletes", subject: 1, action: entity.PostActionDelete},
		{name: "owner attaches image", subject: 1, action: entity.PostActionAttachImage},
		{name: "owner likes", subject: 1, action: entity.PostActionLike},
		{name: "other user likes", subject: 2, action: entity.PostActionLike},
		{name: "other user updates", subject: 2, action: entity.PostActionUpdate, wantErr: domainerrors.ErrForbidden},
		{name: "other user deletes", subject: 2, action: entity.PostActionDelete, wantErr: domainerrors.ErrForbidden},
		{name: "other user attaches image", subject: 2, action: entity.PostActionAttachImage, wantErr: domainerrors.ErrForbidden},
		{name: "anonymous likes", subject: 0, action: entity.PostActionLike, wantErr: domainerrors.ErrMissingCredentials},
		{name: "anonymous updates", subject: 0, action: entity.PostActionUpdate, wantErr: domainerrors.ErrMissingCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorizePostMutation(tt.subject, post, tt.action)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
