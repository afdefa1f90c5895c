// Package handler contains the HTTP handlers of the API.
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

// UserHandler handles account registration, login and profile endpoints.
type UserHandler struct {
	userUC usecase.UserUsecase
}

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userUC: params.UserUC}
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterUser handles POST /users, a multipart form with an optional avatar file.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	avatar, closeAvatar, err := formFile(c, "avatar")
	if err != nil {
		return err
	}
	defer closeAvatar()
	input.Avatar = avatar

	user, err := h.userUC.RegisterUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user, nil))
}

// Login handles POST /login and returns a bearer access token.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLoginResponse(out))
}

// Logout handles POST /logout. Tokens are stateless, so the client simply discards its token.
func (h *UserHandler) Logout(c echo.Context) error {
	subject, _ := deliverycontext.GetSubject(c)
	if err := h.userUC.Logout(c.Request().Context(), subject); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, true)
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	offset, limit, err := page(c)
	if err != nil {
		return err
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserWithPostsResponse(user))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserWithPostsResponse(user))
}

// ChangePassword handles PATCH /users/:id/change-password.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(badRequestBody())
	}
	if req.NewPassword == "" {
		// The original API took the password as a query parameter.
		req.NewPassword = c.QueryParam("new_password")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	subject, _ := deliverycontext.GetSubject(c)
	if err := h.userUC.ChangePassword(c.Request().Context(), subject, id, req.NewPassword); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateProfile handles PATCH /users/:id/change-profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	subject, _ := deliverycontext.GetSubject(c)
	user, err := h.userUC.UpdateProfile(c.Request().Context(), subject, id, &usecase.UpdateProfileInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user, nil))
}
