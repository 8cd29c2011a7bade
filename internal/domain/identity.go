package domain

import (
	"context"
	"time"
)

type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

type AuthEventType string

const (
	AuthSignedIn  AuthEventType = "SIGNED_IN"
	AuthSignedOut AuthEventType = "SIGNED_OUT"
)

type AuthEvent struct {
	Type        AuthEventType
	WorkspaceID string
	Session     *Session
}

type Subscription interface {
	Unsubscribe()
}

// IdentityProvider is what the session resolver needs from authentication.
// GetSession returns (nil, nil) when the workspace is anonymous.
type IdentityProvider interface {
	GetSession(ctx context.Context, workspaceID string) (*Session, error)
	Subscribe(workspaceID string, fn func(AuthEvent)) Subscription
}

type IdentityUsecase interface {
	IdentityProvider
	SignInURL(workspaceID, next string) (string, error)
	CompleteSignIn(ctx context.Context, state, code string) (*Session, *SignInState, error)
	SignInWithToken(ctx context.Context, workspaceID, accessToken string) (*Session, error)
	SignOut(ctx context.Context, workspaceID string) error
}

// SignInState travels through the OAuth redirect.
type SignInState struct {
	WorkspaceID string
	Next        string
}

type SessionStore interface {
	Get(ctx context.Context, workspaceID string) (*Session, error)
	Set(ctx context.Context, workspaceID string, session *Session, ttl time.Duration) error
	Delete(ctx context.Context, workspaceID string) error
}

type OAuthUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type OAuthProvider interface {
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*OAuthUser, error)
}

type TokenClaims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}
