package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTer() *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "autoshop", TTL: time.Hour}
}

func TestIssueAndParse(t *testing.T) {
	j := newJWTer()
	tok, claims, err := j.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.NotEmpty(t, claims.ID)

	got, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), got.UID)
	assert.Equal(t, claims.ID, got.ID)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	tok, _, err := newJWTer().Issue(1)
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("other"), Issuer: "autoshop", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	j := newJWTer()
	j.TTL = -2 * time.Minute // 超过 60s leeway
	tok, _, err := j.Issue(1)
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	tok, _, err := newJWTer().Issue(1)
	require.NoError(t, err)

	j := newJWTer()
	j.Issuer = "someone-else"
	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func TestNopRevoker(t *testing.T) {
	var r Revoker = NopRevoker{}
	require.NoError(t, r.Revoke(context.Background(), "x", time.Now().Add(time.Hour)))
	revoked, err := r.Revoked(context.Background(), "x")
	require.NoError(t, err)
	assert.False(t, revoked)
}
