package service

import "time"

// DefaultAccessTokenTTL is used when no access token lifetime is configured.
const DefaultAccessTokenTTL = 15 * time.Minute

// TokenService issues and validates stateless, signed access tokens.
//
// Tokens are not recorded server-side and cannot be revoked: a leaked token stays
// valid until it expires. Keep the TTL short.
type TokenService interface {
	// Issue signs a token for subject using the configured TTL.
	Issue(subject uint) (string, error)

	// IssueWithTTL signs a token for subject that expires ttl from now.
	IssueWithTTL(subject uint, ttl time.Duration) (string, error)

	// Validate verifies the signature, then expiry, then the subject claim, and returns the subject.
	// Failures are ErrTokenInvalidSignature, ErrTokenExpired or ErrTokenMalformedPayload.
	Validate(token string) (uint, error)

	// TTL returns the configured access token lifetime.
	TTL() time.Duration
}
