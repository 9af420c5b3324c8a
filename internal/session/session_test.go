package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	token, issued, err := issuer.Issue(42)
	require.NoError(t, err)

	parsed, err := issuer.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), parsed.UserID)
	assert.Equal(t, issued.TokenID, parsed.TokenID)
	assert.Equal(t, issued.ExpiresAt.Unix(), parsed.ExpiresAt.Unix())
	assert.True(t, parsed.Valid(time.Now()))
}

func TestParseRejectsForeignSecret(t *testing.T) {
	token, _, err := NewIssuer("one", time.Hour).Issue(1)
	require.NoError(t, err)

	_, err = NewIssuer("two", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issuer := NewIssuer("secret", time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := issuer.Issue(7)
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequire(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		s    *Session
		ok   bool
	}{
		{"nil session", nil, false},
		{"anonymous", &Session{ExpiresAt: now.Add(time.Hour)}, false},
		{"expired", &Session{UserID: 1, ExpiresAt: now.Add(-time.Second)}, false},
		{"valid", &Session{UserID: 1, ExpiresAt: now.Add(time.Hour)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Require(tt.s)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, "unauthenticated"))
		})
	}
}
