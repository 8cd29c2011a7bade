package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cvcraft-backend/internal/domain"
	"cvcraft-backend/pkg/debounce"
	"cvcraft-backend/pkg/logger"
)

const (
	DefaultAutosaveIdle       = 2 * time.Second
	DefaultRemoteWriteTimeout = 10 * time.Second
)

type PersistenceConfig struct {
	// Key names the local snapshot slot.
	Key          string
	Local        domain.LocalStore
	Remote       domain.RemoteStore
	Idle         time.Duration
	WriteTimeout time.Duration
	Logger       *slog.Logger
	Now          func() time.Time
}

// PersistenceController decides where and when the active document is
// written. Local mode writes on every change. Remote mode with a known
// document waits for the idle window to pass without edits. Failures are
// logged and never surface to the editor.
type PersistenceController struct {
	mu         sync.Mutex
	writeMu    sync.Mutex
	key        string
	local      domain.LocalStore
	remote     domain.RemoteStore
	mode       domain.PersistenceMode
	documentID string
	latest     *domain.CVDocument
	custom     domain.Customization
	lastSaved  time.Time
	saving     bool
	idle       *debounce.Debouncer
	timeout    time.Duration
	log        *slog.Logger
	now        func() time.Time
}

func NewPersistenceController(cfg PersistenceConfig) *PersistenceController {
	if cfg.Idle <= 0 {
		cfg.Idle = DefaultAutosaveIdle
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultRemoteWriteTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Log
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	p := &PersistenceController{
		key:     cfg.Key,
		local:   cfg.Local,
		remote:  cfg.Remote,
		mode:    domain.ModeLocal,
		custom:  domain.DefaultCustomization(),
		timeout: cfg.WriteTimeout,
		log:     cfg.Logger.With("workspace_id", cfg.Key),
		now:     cfg.Now,
	}
	p.idle = debounce.New(cfg.Idle, p.autosave)
	return p
}

// UseLocal switches to local mode with doc as the current content. Nothing
// is written until the next change or save.
func (p *PersistenceController) UseLocal(doc *domain.CVDocument) {
	p.idle.Cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = domain.ModeLocal
	p.documentID = ""
	p.latest = doc
}

// AwaitRemote enters remote mode before the document id is known. Changes
// are held and not written anywhere.
func (p *PersistenceController) AwaitRemote() {
	p.idle.Cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = domain.ModeRemote
	p.documentID = ""
}

// UseRemote binds the controller to a resolved remote document whose
// stored content is doc.
func (p *PersistenceController) UseRemote(documentID string, doc *domain.CVDocument) {
	p.idle.Cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = domain.ModeRemote
	p.documentID = documentID
	p.latest = doc
}

// SetCustomization records the preview options stored alongside the
// remote data record.
func (p *PersistenceController) SetCustomization(custom domain.Customization) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.custom = custom
}

// Schedule records a changed document and writes it according to the mode.
func (p *PersistenceController) Schedule(doc *domain.CVDocument) {
	p.mu.Lock()
	p.latest = doc
	mode, documentID := p.mode, p.documentID
	p.mu.Unlock()

	switch {
	case mode == domain.ModeLocal:
		p.writeLocal(context.Background())
	case documentID != "":
		p.idle.Trigger()
	}
}

// Save cancels the idle timer and writes to the active target now.
func (p *PersistenceController) Save(ctx context.Context) domain.SaveStatus {
	p.idle.Cancel()

	p.mu.Lock()
	mode := p.mode
	p.mu.Unlock()

	if mode == domain.ModeLocal {
		p.writeLocal(ctx)
	} else {
		p.writeRemote(ctx)
	}
	return p.Status()
}

// Flush writes a pending remote save immediately. It reports whether one
// was pending. An autosave already in flight is waited for, so nothing
// is mid-write once Flush returns.
func (p *PersistenceController) Flush(ctx context.Context) bool {
	if !p.idle.Cancel() {
		p.idle.Wait()
		return false
	}
	p.writeRemote(ctx)
	return true
}

// Close flushes pending work. The controller stays usable.
func (p *PersistenceController) Close(ctx context.Context) {
	p.Flush(ctx)
}

func (p *PersistenceController) Status() domain.SaveStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	status := domain.SaveStatus{
		Mode:       p.mode,
		DocumentID: p.documentID,
		Pending:    p.idle.Pending(),
		Saving:     p.saving,
	}
	if !p.lastSaved.IsZero() {
		last := p.lastSaved
		status.LastSaved = &last
	}
	return status
}

func (p *PersistenceController) Mode() domain.PersistenceMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

func (p *PersistenceController) DocumentID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.documentID
}

func (p *PersistenceController) autosave() {
	p.writeRemote(context.Background())
}

func (p *PersistenceController) writeLocal(ctx context.Context) {
	if p.local == nil {
		return
	}

	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	p.mu.Lock()
	doc := p.latest
	p.mu.Unlock()
	if doc == nil {
		doc = domain.NewCVDocument()
	}

	if err := p.local.Save(ctx, p.key, doc); err != nil {
		p.log.Error("Failed to write local snapshot", "error", err)
		return
	}

	p.mu.Lock()
	p.lastSaved = p.now()
	p.mu.Unlock()
}

func (p *PersistenceController) writeRemote(ctx context.Context) {
	if p.remote == nil {
		return
	}

	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	p.mu.Lock()
	documentID, doc, custom := p.documentID, p.latest, p.custom
	if p.mode != domain.ModeRemote || documentID == "" || doc == nil {
		p.mu.Unlock()
		return
	}
	p.saving = true
	p.mu.Unlock()

	// The request must outlive the HTTP call that triggered it.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	err := p.remote.UpdateData(ctx, documentID, doc, custom)
	if err == nil {
		err = p.remote.Touch(ctx, documentID, p.now())
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.saving = false
	if err != nil {
		p.log.Error("Failed to save document remotely", "document_id", documentID, "error", err)
		return
	}
	p.lastSaved = p.now()
}
