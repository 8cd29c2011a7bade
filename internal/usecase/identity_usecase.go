package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"cvcraft-backend/internal/domain"
	"cvcraft-backend/pkg/apperror"
	"cvcraft-backend/pkg/logger"
)

const DefaultSessionTTL = 7 * 24 * time.Hour

// StateCodec signs and verifies the OAuth state parameter.
type StateCodec interface {
	Sign(state domain.SignInState) (string, error)
	Parse(token string) (*domain.SignInState, error)
}

type IdentityConfig struct {
	Sessions   domain.SessionStore
	OAuth      domain.OAuthProvider
	Tokens     domain.TokenVerifier
	State      StateCodec
	SessionTTL time.Duration
	Logger     *slog.Logger
	Now        func() time.Time
}

type identityUsecase struct {
	cfg IdentityConfig
	hub *eventHub
	log *slog.Logger
}

func NewIdentityUsecase(cfg IdentityConfig) domain.IdentityUsecase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Log
	}
	if log == nil {
		log = slog.Default()
	}
	return &identityUsecase{cfg: cfg, hub: newEventHub(), log: log}
}

func (u *identityUsecase) GetSession(ctx context.Context, workspaceID string) (*domain.Session, error) {
	session, err := u.cfg.Sessions.Get(ctx, workspaceID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session.Expired(u.cfg.Now()) {
		if err := u.cfg.Sessions.Delete(ctx, workspaceID); err != nil {
			u.log.Warn("Failed to drop expired session", "workspace_id", workspaceID, "error", err)
		}
		return nil, nil
	}
	return session, nil
}

func (u *identityUsecase) Subscribe(workspaceID string, fn func(domain.AuthEvent)) domain.Subscription {
	return u.hub.subscribe(workspaceID, fn)
}

func (u *identityUsecase) SignInURL(workspaceID, next string) (string, error) {
	if u.cfg.OAuth == nil || u.cfg.State == nil {
		return "", apperror.Unavailable("Google sign-in is not configured")
	}
	state, err := u.cfg.State.Sign(domain.SignInState{WorkspaceID: workspaceID, Next: next})
	if err != nil {
		return "", apperror.Internal(err)
	}
	return u.cfg.OAuth.AuthCodeURL(state), nil
}

func (u *identityUsecase) CompleteSignIn(ctx context.Context, state, code string) (*domain.Session, *domain.SignInState, error) {
	if u.cfg.OAuth == nil || u.cfg.State == nil {
		return nil, nil, apperror.Unavailable("Google sign-in is not configured")
	}
	signIn, err := u.cfg.State.Parse(state)
	if err != nil {
		return nil, nil, apperror.BadRequest("Invalid or expired sign-in state")
	}
	if code == "" {
		return nil, nil, apperror.BadRequest("Missing authorization code")
	}

	user, err := u.cfg.OAuth.Exchange(ctx, code)
	if err != nil {
		u.log.Error("OAuth exchange failed", "workspace_id", signIn.WorkspaceID, "error", err)
		return nil, signIn, apperror.New(http.StatusUnauthorized, "Sign-in with Google failed", err)
	}

	now := u.cfg.Now()
	session := &domain.Session{
		UserID:    u.cfg.OAuth.Name() + ":" + user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Provider:  u.cfg.OAuth.Name(),
		CreatedAt: now,
		ExpiresAt: now.Add(u.cfg.SessionTTL),
	}
	if err := u.establish(ctx, signIn.WorkspaceID, session); err != nil {
		return nil, signIn, err
	}
	return session, signIn, nil
}

func (u *identityUsecase) SignInWithToken(ctx context.Context, workspaceID, accessToken string) (*domain.Session, error) {
	if u.cfg.Tokens == nil {
		return nil, apperror.Unavailable("Token sign-in is not configured")
	}
	claims, err := u.cfg.Tokens.Verify(accessToken)
	if err != nil {
		u.log.Warn("Token validation failed", "workspace_id", workspaceID, "error", err)
		return nil, apperror.Unauthorized("Invalid token")
	}

	now := u.cfg.Now()
	expires := now.Add(u.cfg.SessionTTL)
	if !claims.ExpiresAt.IsZero() && claims.ExpiresAt.Before(expires) {
		expires = claims.ExpiresAt
	}
	session := &domain.Session{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Provider:  "supabase",
		CreatedAt: now,
		ExpiresAt: expires,
	}
	if err := u.establish(ctx, workspaceID, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (u *identityUsecase) establish(ctx context.Context, workspaceID string, session *domain.Session) error {
	ttl := session.ExpiresAt.Sub(session.CreatedAt)
	if err := u.cfg.Sessions.Set(ctx, workspaceID, session, ttl); err != nil {
		return apperror.Internal(fmt.Errorf("store session: %w", err))
	}
	u.log.Info("Signed in", "workspace_id", workspaceID, "user_id", session.UserID, "provider", session.Provider)
	u.hub.publish(domain.AuthEvent{Type: domain.AuthSignedIn, WorkspaceID: workspaceID, Session: session})
	return nil
}

func (u *identityUsecase) SignOut(ctx context.Context, workspaceID string) error {
	if err := u.cfg.Sessions.Delete(ctx, workspaceID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(fmt.Errorf("delete session: %w", err))
	}
	u.log.Info("Signed out", "workspace_id", workspaceID)
	u.hub.publish(domain.AuthEvent{Type: domain.AuthSignedOut, WorkspaceID: workspaceID})
	return nil
}

// eventHub fans auth events out to the subscribers of a workspace.
// Listeners run on the publisher's goroutine, outside the hub lock.
type eventHub struct {
	mu   sync.Mutex
	next uint64
	subs map[string]map[uint64]func(domain.AuthEvent)
}

func newEventHub() *eventHub {
	return &eventHub{subs: make(map[string]map[uint64]func(domain.AuthEvent))}
}

type hubSubscription struct {
	once   sync.Once
	cancel func()
}

func (s *hubSubscription) Unsubscribe() { s.once.Do(s.cancel) }

func (h *eventHub) subscribe(workspaceID string, fn func(domain.AuthEvent)) domain.Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	id := h.next
	if h.subs[workspaceID] == nil {
		h.subs[workspaceID] = make(map[uint64]func(domain.AuthEvent))
	}
	h.subs[workspaceID][id] = fn

	return &hubSubscription{cancel: func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs[workspaceID], id)
		if len(h.subs[workspaceID]) == 0 {
			delete(h.subs, workspaceID)
		}
	}}
}

func (h *eventHub) publish(event domain.AuthEvent) {
	h.mu.Lock()
	fns := make([]func(domain.AuthEvent), 0, len(h.subs[event.WorkspaceID]))
	for _, fn := range h.subs[event.WorkspaceID] {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(event)
	}
}
