package service

// IdentityExtractor turns an Authorization header value into the authenticated subject.
type IdentityExtractor interface {
	// Extract returns ErrMissingCredentials for an empty header, ErrMalformedCredentials when the
	// header is not a single bearer token and ErrInvalidToken when the token fails validation.
	Extract(authorizationHeader string) (uint, error)
}
