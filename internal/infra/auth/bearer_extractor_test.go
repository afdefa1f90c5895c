package auth

import (
	"testing"
	"time"

	domainerrors "blog/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerExtractor_Extract(t *testing.T) {
	tokens, clock := newTestJWTService(t, 15*time.Minute)
	extractor := NewBearerExtractor(tokens)

	valid, err := tokens.Issue(7)
	require.NoError(t, err)
	expired, err := tokens.IssueWithTTL(7, 0)
	require.NoError(t, err)
	clock.Advance(time.Second)

	tests := []struct {
		name    string
		header  string
		want    uint
		wantErr error
	}{
		{name: "valid", header: "Bearer " + valid, want: 7},
		{name: "scheme is case-insensitive", header: "bearer " + valid, want: 7},
		{name: "empty", header: "", wantErr: domainerrors.ErrMissingCredentials},
		{name: "blank", header: "   ", wantErr: domainerrors.ErrMissingCredentials},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: domainerrors.ErrMalformedCredentials},
		{name: "no token", header: "Bearer", wantErr: domainerrors.ErrMalformedCredentials},
		{name: "empty token", header: "Bearer ", wantErr: domainerrors.ErrMalformedCredentials},
		{name: "token only", header: valid, wantErr: domainerrors.ErrMalformedCredentials},
		{name: "extra part", header: "Bearer " + valid + " extra", wantErr: domainerrors.ErrMalformedCredentials},
		{name: "garbage token", header: "Bearer not-a-token", wantErr: domainerrors.ErrInvalidToken},
		{name: "expired token", header: "Bearer " + expired, wantErr: domainerrors.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := extractor.Extract(tt.header)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Zero(t, subject)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, subject)
		})
	}
}
