package handler

import (
	"net/http"
	"strconv"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
)

// --- Request models ---

// LoginRequest is the login form. JSON bodies are accepted as well.
type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// RegisterUserRequest holds the text fields of the multipart registration form.
type RegisterUserRequest struct {
	Username string `form:"username" json:"username" validate:"required,max=64"`
	Email    string `form:"email" json:"email" validate:"required,email,max=254"`
	Password string `form:"password" json:"password" validate:"required,min=8,max=72"`
}

// ChangePasswordRequest carries the replacement password.
type ChangePasswordRequest struct {
	NewPassword string `form:"new_password" json:"new_password" validate:"required,min=8,max=72"`
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	Username string `form:"username" json:"username" validate:"required,max=64"`
	Email    string `form:"email" json:"email" validate:"required,email,max=254"`
}

// PostRequest is the body of post create and update.
type PostRequest struct {
	Title     string `json:"title" form:"title" validate:"required,max=200"`
	ShortDesc string `json:"short_desc" form:"short_desc" validate:"max=500"`
	Desc      string `json:"desc" form:"desc"`
}

// CommentRequest is the body of a new comment.
type CommentRequest struct {
	Content string `json:"content" form:"content" validate:"required,max=2000"`
}

// --- Response models ---

// LoginResponse is the OAuth2-style token response.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

// UserResponse is the public view of a user. It never includes the password hash.
type UserResponse struct {
	ID        uint           `json:"id"`
	Username  string         `json:"username"`
	Email     string         `json:"email"`
	Avatar    string         `json:"avatar"`
	CreatedAt time.Time      `json:"created_at"`
	Posts     []PostResponse `json:"posts"`
}

// ImageResponse is an image attached to a post.
type ImageResponse struct {
	ID  uint   `json:"id"`
	URL string `json:"url"`
}

// PostResponse is the public view of a post.
type PostResponse struct {
	ID        uint            `json:"id"`
	Title     string          `json:"title"`
	ShortDesc string          `json:"short_desc"`
	Desc      string          `json:"desc"`
	Likes     int64           `json:"likes"`
	CreatedBy uint            `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
	Images    []ImageResponse `json:"images"`
}

// CommentResponse is the public view of a comment.
type CommentResponse struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"post_id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func toLoginResponse(out *usecase.LoginOutput) LoginResponse {
	return LoginResponse{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
		ExpiresIn:   int64(out.ExpiresIn / time.Second),
	}
}

func toUserResponse(user *entity.User, posts []*entity.Post) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Avatar:    user.AvatarURL,
		CreatedAt: user.CreatedAt,
		Posts:     toPostResponses(posts),
	}
}

func toUserWithPostsResponse(view *entity.UserWithPosts) UserResponse {
	return toUserResponse(view.User, view.Posts)
}

func toPostResponse(post *entity.Post) PostResponse {
	images := make([]ImageResponse, 0, len(post.Images))
	for _, img := range post.Images {
		images = append(images, toImageResponse(img))
	}

	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		ShortDesc: post.ShortDesc,
		Desc:      post.Desc,
		Likes:     post.Likes,
		CreatedBy: post.CreatedBy,
		CreatedAt: post.CreatedAt,
		Images:    images,
	}
}

func toPostResponses(posts []*entity.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, toPostResponse(post))
	}

	return out
}

func toImageResponse(img *entity.PostImage) ImageResponse {
	return ImageResponse{ID: img.ID, URL: img.URL}
}

func toCommentResponse(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

// --- Request helpers ---

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer"))
	}

	return uint(id), nil
}

// page reads the skip/offset and limit query parameters. Zero values leave the defaults to the usecase.
func page(c echo.Context) (offset, limit int, err error) {
	var skip int
	err = echo.QueryParamsBinder(c).
		Int("offset", &offset).
		Int("skip", &skip).
		Int("limit", &limit).
		BindError()
	if err != nil {
		return 0, 0, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("offset, skip and limit must be integers"))
	}
	if offset == 0 {
		offset = skip
	}

	return offset, limit, nil
}

// bindAndValidate binds the request into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(badRequestBody())
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func badRequestBody() error {
	return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
}

// formFile opens an optional multipart file. The returned close function is always safe to call.
func formFile(c echo.Context, field string) (*usecase.FileInput, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}

		return nil, func() {}, errors.WithStack(badRequestBody())
	}

	file, err := header.Open()
	if err != nil {
		return nil, func() {}, errors.Wrap(err, "open uploaded file")
	}

	input := &usecase.FileInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     file,
	}

	return input, func() { _ = file.Close() }, nil
}
