package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog/internal/delivery/api/response"
	deliverycontext "blog/internal/delivery/context"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/errors"
	mockservice "blog/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		subject    uint
		extractErr error
		wantStatus int
		wantCode   string
	}{
		{name: "valid token", header: "Bearer good", subject: 42, wantStatus: http.StatusOK},
		{name: "missing header", extractErr: domainerrors.ErrMissingCredentials, wantStatus: http.StatusUnauthorized, wantCode: "MISSING_CREDENTIALS"},
		{name: "basic scheme", header: "Basic Zm9vOmJhcg==", extractErr: domainerrors.ErrMalformedCredentials, wantStatus: http.StatusUnauthorized, wantCode: "MALFORMED_CREDENTIALS"},
		{name: "expired token", header: "Bearer old", extractErr: domainerrors.ErrInvalidToken.WrapMessage("token is expired"), wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := mockservice.NewMockIdentityExtractor(t)
			extractor.On("Extract", tt.header).Return(tt.subject, tt.extractErr).Once()

			e := newTestEcho()
			var seen uint
			e.GET("/private", func(c echo.Context) error {
				seen, _ = deliverycontext.GetSubject(c)
				fromCtx, _ := deliverycontext.GetSubjectFromContext(c.Request().Context())
				assert.Equal(t, seen, fromCtx)

				return c.NoContent(http.StatusOK)
			}, NewAuthMiddleware(extractor).Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.subject, seen)
				assert.Empty(t, rec.Header().Get(echo.HeaderWWWAuthenticate))

				return
			}

			assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
			info := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.Nil(t, info.Details)
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	t.Run("anonymous request passes without subject", func(t *testing.T) {
		extractor := mockservice.NewMockIdentityExtractor(t)

		e := newTestEcho()
		e.POST("/logout", func(c echo.Context) error {
			_, ok := deliverycontext.GetSubject(c)
			assert.False(t, ok)

			return c.NoContent(http.StatusOK)
		}, NewAuthMiddleware(extractor).OptionalAuthenticate)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		extractor.AssertNotCalled(t, "Extract", "")
	})

	t.Run("invalid token is still rejected", func(t *testing.T) {
		extractor := mockservice.NewMockIdentityExtractor(t)
		extractor.On("Extract", "Bearer bad").Return(uint(0), domainerrors.ErrInvalidToken).Once()

		e := newTestEcho()
		e.POST("/logout", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}, NewAuthMiddleware(extractor).OptionalAuthenticate)

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "validation error keeps details",
			err:         errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("title is required")),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "title is required",
		},
		{
			name:       "forbidden hides details",
			err:        errors.Wrap(domainerrors.ErrForbidden.WithDetails("user 2 is not the owner"), "update post"),
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "not found",
			err:        errors.Wrapf(domainerrors.ErrPostNotFound, "post %d", 9),
			wantStatus: http.StatusNotFound,
			wantCode:   "POST_NOT_FOUND",
		},
		{
			name:       "store unavailable",
			err:        errors.Wrap(domainerrors.ErrStoreUnavailable.WithDetails("dial tcp: refused"), "find user"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "STORE_UNAVAILABLE",
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("pq: relation does not exist"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			rec := c.Response().Writer.(*httptest.ResponseRecorder)
			deliverycontext.SetRequestID(c, "req-1")

			e.HTTPErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Header().Get(echo.HeaderWWWAuthenticate))

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	e.HTTPErrorHandler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
