package auth

import (
	"strings"

	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
)

const bearerScheme = "Bearer"

type bearerExtractor struct {
	tokens service.TokenService
}

// NewBearerExtractor creates an IdentityExtractor that reads "Bearer <token>" headers.
func NewBearerExtractor(tokens service.TokenService) service.IdentityExtractor {
	return &bearerExtractor{tokens: tokens}
}

// Extract parses the header and validates the token it carries.
// Every token failure is reported as ErrInvalidToken; the underlying cause is kept for logging only.
func (e *bearerExtractor) Extract(header string) (uint, error) {
	if strings.TrimSpace(header) == "" {
		return 0, domainerrors.ErrMissingCredentials
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) || token == "" || strings.ContainsAny(token, " \t\r\n") {
		return 0, domainerrors.ErrMalformedCredentials
	}

	subject, err := e.tokens.Validate(token)
	if err != nil {
		return 0, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	return subject, nil
}
