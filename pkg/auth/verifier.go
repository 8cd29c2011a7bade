package auth

import (
	"errors"
	"fmt"
	"time"

	"cvcraft-backend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// SupabaseVerifier checks Supabase access tokens. HS256 tokens use the
// project secret, RS256 tokens the project JWKS.
type SupabaseVerifier struct {
	secret []byte
	keys   *KeySet
}

// NewSupabaseVerifier builds a verifier; either argument may be empty.
func NewSupabaseVerifier(supabaseURL, jwtSecret string) *SupabaseVerifier {
	v := &SupabaseVerifier{}
	if jwtSecret != "" {
		v.secret = []byte(jwtSecret)
	}
	if supabaseURL != "" {
		v.keys = NewKeySet(supabaseURL + "/auth/v1/.well-known/jwks.json")
	}
	return v
}

func (v *SupabaseVerifier) Verify(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			if v.secret == nil {
				return nil, errors.New("HS256 token received but SUPABASE_JWT_SECRET is not configured")
			}
			return v.secret, nil
		case *jwt.SigningMethodRSA:
			if v.keys == nil {
				return nil, errors.New("RS256 token received but SUPABASE_URL is not configured")
			}
			return v.keys.KeyFunc(token)
		default:
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid claims")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.New("token has no subject")
	}
	email, _ := claims["email"].(string)

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.New("token has no expiry")
	}
	return &domain.TokenClaims{Subject: sub, Email: email, ExpiresAt: exp.Time}, nil
}

// StateSigner signs the OAuth state so the callback can trust the
// workspace it names.
type StateSigner struct {
	secret []byte
	ttl    time.Duration
}

type stateClaims struct {
	WorkspaceID string `json:"ws"`
	Next        string `json:"next,omitempty"`
	jwt.RegisteredClaims
}

func NewStateSigner(secret string, ttl time.Duration) *StateSigner {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &StateSigner{secret: []byte(secret), ttl: ttl}
}

func (s *StateSigner) Sign(state domain.SignInState) (string, error) {
	now := time.Now()
	claims := stateClaims{
		WorkspaceID: state.WorkspaceID,
		Next:        state.Next,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *StateSigner) Parse(token string) (*domain.SignInState, error) {
	var claims stateClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims.WorkspaceID == "" {
		return nil, errors.New("state has no workspace")
	}
	return &domain.SignInState{WorkspaceID: claims.WorkspaceID, Next: claims.Next}, nil
}
