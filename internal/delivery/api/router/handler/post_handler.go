package handler

import (
	"context"
	"net/http"

	"blog/internal/delivery/api/response"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PostHandler handles post, like and image endpoints.
type PostHandler struct {
	postUC usecase.PostUsecase
}

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
}

// NewPostHandler is the constructor for PostHandler.
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{postUC: params.PostUC}
}

// CreatePost handles POST /posts. The authenticated user becomes the owner.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req PostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	subject, _ := deliverycontext.GetSubject(c)
	post, err := h.postUC.CreatePost(c.Request().Context(), subject, req.draft())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPostResponse(post))
}

// ListPosts handles GET /posts.
func (h *PostHandler) ListPosts(c echo.Context) error {
	offset, limit, err := page(c)
	if err != nil {
		return err
	}

	posts, err := h.postUC.ListPosts(c.Request().Context(), offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponses(posts))
}

// GetPost handles GET /posts/:id.
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postUC.GetPost(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post))
}

// UpdatePost handles PUT /posts/:id.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req PostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	subject, _ := deliverycontext.GetSubject(c)
	post, err := h.postUC.UpdatePost(c.Request().Context(), subject, id, req.draft())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post))
}

// DeletePost handles DELETE /posts/:id.
func (h *PostHandler) DeletePost(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	subject, _ := deliverycontext.GetSubject(c)
	if err := h.postUC.DeletePost(c.Request().Context(), subject, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// LikePost handles PUT /posts/:id/like. Liking twice counts once.
func (h *PostHandler) LikePost(c echo.Context) error {
	return h.toggleLike(c, h.postUC.LikePost)
}

// UnlikePost handles DELETE /posts/:id/like.
func (h *PostHandler) UnlikePost(c echo.Context) error {
	return h.toggleLike(c, h.postUC.UnlikePost)
}

func (h *PostHandler) toggleLike(c echo.Context, apply func(ctx context.Context, subject, id uint) (*entity.Post, error)) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	subject, _ := deliverycontext.GetSubject(c)
	post, err := apply(c.Request().Context(), subject, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post))
}

// AttachImage handles POST /posts/:id/images, a multipart form with an "image" file.
func (h *PostHandler) AttachImage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	image, closeImage, err := formFile(c, "image")
	if err != nil {
		return err
	}
	defer closeImage()
	if image == nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("image file is required"))
	}

	subject, _ := deliverycontext.GetSubject(c)
	attached, err := h.postUC.AttachImage(c.Request().Context(), subject, id, image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toImageResponse(attached))
}

func (r PostRequest) draft() *entity.PostDraft {
	return &entity.PostDraft{
		Title:     r.Title,
		ShortDesc: r.ShortDesc,
		Desc:      r.Desc,
	}
}
