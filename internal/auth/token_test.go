package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parts_office/internal/model"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	raw, err := tokens.Sign(&model.Admin{ID: "admin-1", Super: true})
	require.NoError(t, err)

	actor, err := tokens.Verify("Bearer " + raw)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", actor.ID)
	assert.True(t, actor.Super)
}

func TestVerifyRejectsBadFormat(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	raw, err := tokens.Sign(&model.Admin{ID: "admin-1"})
	require.NoError(t, err)

	for _, header := range []string{
		"",
		"Bearer",
		"Bearer ",
		"Basic " + raw,
		raw, // scheme missing entirely
	} {
		_, err := tokens.Verify(header)
		assert.ErrorIs(t, err, ErrInvalidTokenFormat, "header=%q", header)
	}
}

func TestVerifyRejectsTamperedAndExpired(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	raw, err := tokens.Sign(&model.Admin{ID: "admin-1"})
	require.NoError(t, err)
	_, err = tokens.Verify("Bearer " + raw + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Signed with a different secret.
	other, err := NewTokens("other-secret", time.Hour).Sign(&model.Admin{ID: "admin-1"})
	require.NoError(t, err)
	_, err = tokens.Verify("Bearer " + other)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Already expired.
	expired, err := NewTokens("test-secret", -time.Minute).Sign(&model.Admin{ID: "admin-1"})
	require.NoError(t, err)
	_, err = tokens.Verify("Bearer " + expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
