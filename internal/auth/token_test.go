package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Noam97/mini-project-manager/internal/models"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 24*time.Hour)
	user := &models.User{ID: 42, Username: "alice"}

	token, err := issuer.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)
	user := &models.User{ID: 1, Username: "alice"}

	token, err := issuer.Issue(user)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	user := &models.User{ID: 1, Username: "alice"}

	token, err := issuer.Issue(user)
	require.NoError(t, err)

	other := NewTokenIssuer("different-secret", time.Hour)
	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	_, err := issuer.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
