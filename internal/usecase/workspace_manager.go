package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cvcraft-backend/internal/domain"
	"cvcraft-backend/pkg/apperror"
	"cvcraft-backend/pkg/logger"
	"cvcraft-backend/pkg/sanitize"
	"cvcraft-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type WorkspaceConfig struct {
	Local        domain.LocalStore
	Remote       domain.RemoteStore
	Identity     domain.IdentityProvider
	Validate     *validator.Validate
	AutosaveIdle time.Duration
	WriteTimeout time.Duration
	// IdleTTL evicts workspaces nobody touched for this long.
	IdleTTL time.Duration
	Logger  *slog.Logger
	Now     func() time.Time
}

// WorkspaceManager owns the live workspaces.
type WorkspaceManager struct {
	mu         sync.Mutex
	workspaces map[string]*Workspace
	cfg        WorkspaceConfig
	sanitizer  *sanitize.Sanitizer
	log        *slog.Logger
}

func NewWorkspaceManager(cfg WorkspaceConfig) *WorkspaceManager {
	if cfg.Validate == nil {
		cfg.Validate = validation.New()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 30 * time.Minute
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Log
	}
	if log == nil {
		log = slog.Default()
	}
	return &WorkspaceManager{
		workspaces: make(map[string]*Workspace),
		cfg:        cfg,
		sanitizer:  sanitize.New(),
		log:        log,
	}
}

// Open returns the live workspace for id or starts one. An empty or
// malformed id gets a fresh one.
func (m *WorkspaceManager) Open(ctx context.Context, id string) (*Workspace, bool) {
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	m.mu.Lock()
	if ws, ok := m.workspaces[id]; ok {
		m.mu.Unlock()
		<-ws.ready
		ws.touch()
		return ws, false
	}
	ws := m.build(id)
	m.workspaces[id] = ws
	m.mu.Unlock()

	ws.Resolver.Start(context.WithoutCancel(ctx))
	close(ws.ready)
	m.log.Info("Workspace opened", "workspace_id", id, "mode", ws.Persistence.Mode())
	return ws, true
}

func (m *WorkspaceManager) build(id string) *Workspace {
	ws := &Workspace{
		ID:     id,
		custom: domain.DefaultCustomization(),
		ready:  make(chan struct{}),
		now:    m.cfg.Now,
	}
	ws.lastSeen = m.cfg.Now()

	ws.Builder = NewBuilder(NewIDGenerator(m.cfg.Now), m.cfg.Validate, m.sanitizer)
	ws.Persistence = NewPersistenceController(PersistenceConfig{
		Key:          id,
		Local:        m.cfg.Local,
		Remote:       m.cfg.Remote,
		Idle:         m.cfg.AutosaveIdle,
		WriteTimeout: m.cfg.WriteTimeout,
		Logger:       m.log,
		Now:          m.cfg.Now,
	})
	ws.Builder.OnChange(ws.Persistence.Schedule)
	ws.Resolver = NewSessionResolver(ResolverConfig{
		WorkspaceID: id,
		Identity:    m.cfg.Identity,
		Local:       m.cfg.Local,
		Remote:      m.cfg.Remote,
		Builder:     ws.Builder,
		Persistence: ws.Persistence,
		Notify:      ws.notify,
		Restore:     ws.restore,
		Timeout:     m.cfg.WriteTimeout,
		Logger:      m.log,
	})
	return ws
}

// Get returns a live workspace.
func (m *WorkspaceManager) Get(id string) (*Workspace, error) {
	m.mu.Lock()
	ws, ok := m.workspaces[id]
	m.mu.Unlock()
	if !ok {
		return nil, apperror.NotFound("Workspace not found. Open a workspace first.")
	}
	<-ws.ready
	ws.touch()
	return ws, nil
}

// Close tears a workspace down, flushing its pending save.
func (m *WorkspaceManager) Close(ctx context.Context, id string) error {
	m.mu.Lock()
	ws, ok := m.workspaces[id]
	delete(m.workspaces, id)
	m.mu.Unlock()
	if !ok {
		return apperror.NotFound("Workspace not found")
	}
	ws.Close(ctx)
	m.log.Info("Workspace closed", "workspace_id", id)
	return nil
}

// CloseAll tears every workspace down. Used on shutdown.
func (m *WorkspaceManager) CloseAll(ctx context.Context) {
	m.mu.Lock()
	all := m.workspaces
	m.workspaces = make(map[string]*Workspace)
	m.mu.Unlock()

	var wg sync.WaitGroup
	for _, ws := range all {
		wg.Add(1)
		go func(ws *Workspace) {
			defer wg.Done()
			ws.Close(ctx)
		}(ws)
	}
	wg.Wait()
	m.log.Info("All workspaces closed", "count", len(all))
}

// EvictIdle closes workspaces idle for longer than the TTL and returns how
// many were closed.
func (m *WorkspaceManager) EvictIdle(ctx context.Context) int {
	cutoff := m.cfg.Now().Add(-m.cfg.IdleTTL)

	m.mu.Lock()
	var idle []*Workspace
	for id, ws := range m.workspaces {
		if ws.idleSince().Before(cutoff) {
			idle = append(idle, ws)
			delete(m.workspaces, id)
		}
	}
	m.mu.Unlock()

	for _, ws := range idle {
		ws.Close(ctx)
		m.log.Info("Workspace evicted", "workspace_id", ws.ID)
	}
	return len(idle)
}

// RunJanitor evicts idle workspaces every interval until ctx is done.
func (m *WorkspaceManager) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.EvictIdle(ctx)
		}
	}
}

func (m *WorkspaceManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.workspaces)
}
