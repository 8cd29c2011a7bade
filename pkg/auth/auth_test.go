package auth_test

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cvcraft-backend/internal/domain"
	"cvcraft-backend/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupabaseVerifierHS256(t *testing.T) {
	v := auth.NewSupabaseVerifier("", "top-secret")

	sign := func(claims jwt.MapClaims, secret string) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}

	t.Run("valid token", func(t *testing.T) {
		token := sign(jwt.MapClaims{"sub": "user-1", "email": "a@b.c", "exp": time.Now().Add(time.Hour).Unix()}, "top-secret")
		claims, err := v.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, "a@b.c", claims.Email)
		assert.False(t, claims.ExpiresAt.IsZero())
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := sign(jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(time.Hour).Unix()}, "other")
		_, err := v.Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token := sign(jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(-time.Hour).Unix()}, "top-secret")
		_, err := v.Verify(token)
		assert.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		token := sign(jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}, "top-secret")
		_, err := v.Verify(token)
		assert.Error(t, err)
	})
}

func TestSupabaseVerifierRS256(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/.well-known/jwks.json", r.URL.Path)
		json.NewEncoder(w).Encode(auth.JWKS{Keys: []auth.JSONWebKey{{
			Kid: "k1",
			Kty: "RSA",
			Alg: "RS256",
			N:   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
		}}})
	}))
	defer srv.Close()

	v := auth.NewSupabaseVerifier(srv.URL, "")

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"sub": "user-rs",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token.Header["kid"] = "k1"
	signed, err := token.SignedString(key)
	require.NoError(t, err)

	claims, err := v.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-rs", claims.Subject)

	token.Header["kid"] = "unknown"
	signed, err = token.SignedString(key)
	require.NoError(t, err)
	_, err = v.Verify(signed)
	assert.Error(t, err)
}

func TestStateSigner(t *testing.T) {
	s := auth.NewStateSigner("state-secret", time.Minute)

	token, err := s.Sign(domain.SignInState{WorkspaceID: "ws-1", Next: "/builder"})
	require.NoError(t, err)

	state, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "ws-1", state.WorkspaceID)
	assert.Equal(t, "/builder", state.Next)

	_, err = auth.NewStateSigner("other", time.Minute).Parse(token)
	assert.Error(t, err)

	_, err = s.Parse("garbage")
	assert.Error(t, err)
}
