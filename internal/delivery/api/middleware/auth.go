package middleware

import (
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/service"
	"blog/internal/errors"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates requests carrying a bearer access token.
type AuthMiddleware struct {
	extractor service.IdentityExtractor
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(extractor service.IdentityExtractor) *AuthMiddleware {
	return &AuthMiddleware{extractor: extractor}
}

// Authenticate rejects the request unless the Authorization header holds a valid token.
// Failures are returned to the centralized error handler, which answers 401 with a Bearer challenge.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		subject, err := m.extractor.Extract(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetSubject(c, subject)

		return next(c)
	}
}

// OptionalAuthenticate authenticates the request when an Authorization header is present and
// lets anonymous requests through. A header that is present but invalid is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	authenticated := m.Authenticate(next)

	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return next(c)
		}

		return authenticated(c)
	}
}
