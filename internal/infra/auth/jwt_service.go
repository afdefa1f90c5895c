package auth

import (
	"strconv"
	"time"

	"blog/config"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	"blog/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
// The payload is the registered claim set: sub (decimal user id), iat and exp.
type jwtService struct {
	secret []byte           // HMAC key for signing and verifying access tokens.
	ttl    time.Duration    // Lifetime of tokens issued by Issue.
	now    func() time.Time // Clock used for iat/exp and validation.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	ttl := service.DefaultAccessTokenTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return newJWTService(cfg.SecretKey.Access, ttl, time.Now)
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue signs an access token for subject with the configured TTL.
func (s *jwtService) Issue(subject uint) (string, error) {
	return s.IssueWithTTL(subject, s.ttl)
}

// IssueWithTTL signs an access token for subject that expires ttl from now.
// A zero ttl yields a token that is already expired.
func (s *jwtService) IssueWithTTL(subject uint, ttl time.Duration) (string, error) {
	if subject == 0 {
		return "", errors.New("token subject must be set")
	}
	if ttl < 0 {
		return "", errors.Errorf("token ttl must not be negative: %s", ttl)
	}

	issuedAt := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(subject), 10),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the signature first, then expiry, then the subject claim.
func (s *jwtService) Validate(tokenString string) (uint, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, s.key,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, classifyTokenError(err)
	}

	subject, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || subject == 0 || subject > uint64(^uint(0)) {
		return 0, errors.Wrapf(domainerrors.ErrTokenMalformedPayload, "invalid subject %q", claims.Subject)
	}

	return uint(subject), nil
}

// TTL returns the configured access token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

func (s *jwtService) key(*jwt.Token) (any, error) {
	return s.secret, nil
}

// classifyTokenError maps jwt parser errors onto the token error kinds.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return errors.Wrap(domainerrors.ErrTokenInvalidSignature, err.Error())
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(domainerrors.ErrTokenExpired, err.Error())
	default:
		return errors.Wrap(domainerrors.ErrTokenMalformedPayload, err.Error())
	}
}
