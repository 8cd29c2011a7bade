package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"cvcraft-backend/internal/domain"
	"cvcraft-backend/pkg/logger"
)

type ResolverConfig struct {
	WorkspaceID string
	Identity    domain.IdentityProvider
	Local       domain.LocalStore
	Remote      domain.RemoteStore
	Builder     *Builder
	Persistence *PersistenceController
	// Notify receives user-facing messages such as identity failures.
	Notify func(level domain.NoticeLevel, message string)
	// Restore receives the customization stored with a remote document.
	Restore func(custom domain.Customization)
	Timeout time.Duration
	Logger  *slog.Logger
}

// SessionResolver decides whether a workspace edits a local or a remote
// document, resolves which remote document, and follows sign-in changes.
type SessionResolver struct {
	mu      sync.Mutex
	cfg     ResolverConfig
	session *domain.Session
	sub     domain.Subscription
	log     *slog.Logger
}

func NewSessionResolver(cfg ResolverConfig) *SessionResolver {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultRemoteWriteTimeout
	}
	if cfg.Notify == nil {
		cfg.Notify = func(domain.NoticeLevel, string) {}
	}
	if cfg.Restore == nil {
		cfg.Restore = func(domain.Customization) {}
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Log
	}
	if log == nil {
		log = slog.Default()
	}
	return &SessionResolver{cfg: cfg, log: log.With("workspace_id", cfg.WorkspaceID)}
}

// Start resolves the initial document and subscribes to identity changes.
func (r *SessionResolver) Start(ctx context.Context) {
	r.mu.Lock()
	if r.sub == nil && r.cfg.Identity != nil {
		r.sub = r.cfg.Identity.Subscribe(r.cfg.WorkspaceID, r.handle)
	}
	r.mu.Unlock()

	r.resolve(ctx)
}

// Close releases the identity subscription.
func (r *SessionResolver) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sub != nil {
		r.sub.Unsubscribe()
		r.sub = nil
	}
}

func (r *SessionResolver) Session() *domain.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return nil
	}
	s := *r.session
	return &s
}

func (r *SessionResolver) handle(event domain.AuthEvent) {
	ctx := context.Background()
	switch event.Type {
	case domain.AuthSignedIn:
		r.resolve(ctx)
	case domain.AuthSignedOut:
		r.signedOut(ctx)
	}
}

// resolve picks the document for the current session. A pending remote
// save is written first, since the builder content is replaced below.
func (r *SessionResolver) resolve(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cfg.Persistence.Flush(ctx)

	if r.cfg.Identity == nil {
		r.useLocal(ctx)
		return
	}

	session, err := r.cfg.Identity.GetSession(ctx, r.cfg.WorkspaceID)
	if err != nil {
		r.log.Error("Failed to get session", "error", err)
		r.cfg.Notify(domain.NoticeError, "Could not check your sign-in status. Working locally.")
		r.useLocal(ctx)
		return
	}
	if session == nil {
		r.useLocal(ctx)
		return
	}

	r.session = session
	r.useRemote(ctx, session)
}

// useLocal loads the latest local snapshot. A missing or corrupt snapshot
// yields an empty document.
func (r *SessionResolver) useLocal(ctx context.Context) {
	r.session = nil

	doc := domain.NewCVDocument()
	if r.cfg.Local != nil {
		loaded, err := r.cfg.Local.Load(ctx, r.cfg.WorkspaceID)
		switch {
		case err == nil:
			doc = loaded
		case errors.Is(err, domain.ErrNotFound):
		case errors.Is(err, domain.ErrCorruptSnapshot):
			r.log.Warn("Ignoring corrupt local snapshot", "error", err)
		default:
			r.log.Error("Failed to read local snapshot", "error", err)
		}
	}

	r.cfg.Builder.Replace(doc)
	r.cfg.Persistence.UseLocal(r.cfg.Builder.Snapshot())
}

func (r *SessionResolver) useRemote(ctx context.Context, session *domain.Session) {
	r.cfg.Persistence.AwaitRemote()
	if r.cfg.Remote == nil {
		r.log.Error("Signed in but no remote store is configured")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	header, err := r.cfg.Remote.LatestByOwner(ctx, session.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		header, err = r.cfg.Remote.Create(ctx, session.UserID, domain.DefaultDocumentTitle)
		if err == nil {
			r.log.Info("Created remote document", "document_id", header.ID, "user_id", session.UserID)
		}
	}
	if err != nil {
		r.log.Error("Failed to resolve remote document", "user_id", session.UserID, "error", err)
		return
	}

	doc := domain.NewCVDocument()
	data, err := r.cfg.Remote.GetData(ctx, header.ID)
	switch {
	case err == nil:
		if data.Document != nil {
			doc = data.Document
		}
		if data.Customization != nil {
			r.cfg.Restore(data.Customization.WithDefaults())
		}
	case errors.Is(err, domain.ErrNotFound):
		if err := r.cfg.Remote.CreateData(ctx, header.ID); err != nil {
			r.log.Error("Failed to create remote data record", "document_id", header.ID, "error", err)
			return
		}
	default:
		r.log.Error("Failed to load remote document", "document_id", header.ID, "error", err)
		return
	}

	r.cfg.Builder.Replace(doc)
	snapshot := r.cfg.Builder.Snapshot()
	r.cfg.Persistence.UseRemote(header.ID, snapshot)
	r.log.Info("Using remote document", "document_id", header.ID)
}

// signedOut flushes the pending remote save, drops the remote target and
// writes the current content to local storage.
func (r *SessionResolver) signedOut(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cfg.Persistence.Flush(ctx)
	r.session = nil

	doc := r.cfg.Builder.Snapshot()
	r.cfg.Persistence.UseLocal(doc)
	r.cfg.Persistence.Schedule(doc)
}
