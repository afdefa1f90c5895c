package handler

import (
	"net/http"

	"blog/internal/delivery/api/response"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommentHandler handles comments on posts.
type CommentHandler struct {
	commentUC usecase.CommentUsecase
}

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
}

// NewCommentHandler is the constructor for CommentHandler.
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{commentUC: params.CommentUC}
}

// AddComment handles POST /posts/:id/comments.
func (h *CommentHandler) AddComment(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	subject, _ := deliverycontext.GetSubject(c)
	comment, err := h.commentUC.AddComment(c.Request().Context(), subject, postID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCommentResponse(comment))
}

// ListComments handles GET /posts/:id/comments.
func (h *CommentHandler) ListComments(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	offset, limit, err := page(c)
	if err != nil {
		return err
	}

	comments, err := h.commentUC.ListComments(c.Request().Context(), postID, offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, toCommentResponse(comment))
	}

	return response.Success(c, http.StatusOK, out)
}

// DeleteComment handles DELETE /comments/:id.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	subject, _ := deliverycontext.GetSubject(c)
	if err := h.commentUC.DeleteComment(c.Request().Context(), subject, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
