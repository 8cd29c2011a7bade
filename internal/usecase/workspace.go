package usecase

import (
	"context"
	"sync"
	"time"

	"cvcraft-backend/internal/domain"
)

const maxNotices = 20

// Workspace is one editing session: its document, where it is saved, how
// it is previewed.
type Workspace struct {
	ID          string
	Builder     *Builder
	Persistence *PersistenceController
	Resolver    *SessionResolver

	// ready is closed once the first resolution has finished.
	ready chan struct{}

	mu       sync.Mutex
	custom   domain.Customization
	photo    string
	notices  []domain.Notice
	lastSeen time.Time
	now      func() time.Time
}

func (w *Workspace) touch() {
	w.mu.Lock()
	w.lastSeen = w.now()
	w.mu.Unlock()
}

func (w *Workspace) idleSince() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeen
}

func (w *Workspace) notify(level domain.NoticeLevel, message string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.notices = append(w.notices, domain.Notice{Level: level, Message: message, At: w.now()})
	if len(w.notices) > maxNotices {
		w.notices = w.notices[len(w.notices)-maxNotices:]
	}
}

// DrainNotices returns pending notices and clears them.
func (w *Workspace) DrainNotices() []domain.Notice {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.notices
	w.notices = nil
	if out == nil {
		out = []domain.Notice{}
	}
	return out
}

func (w *Workspace) Customization() domain.Customization {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.custom
}

// restore applies options loaded with a remote document.
func (w *Workspace) restore(custom domain.Customization) {
	w.mu.Lock()
	w.custom = custom
	w.mu.Unlock()
	w.Persistence.SetCustomization(custom)
}

// SetCustomization changes the preview options and schedules a save so
// they reach the remote data record.
func (w *Workspace) SetCustomization(custom domain.Customization) domain.Customization {
	custom = custom.WithDefaults()
	w.mu.Lock()
	w.custom = custom
	w.mu.Unlock()

	w.Persistence.SetCustomization(custom)
	w.Persistence.Schedule(w.Builder.Snapshot())
	return custom
}

func (w *Workspace) PreviewOptions() domain.PreviewOptions {
	w.mu.Lock()
	defer w.mu.Unlock()
	return domain.PreviewOptions{Customization: w.custom, ProfileImage: w.photo}
}

func (w *Workspace) SetPhoto(dataURL string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.photo = dataURL
}

func (w *Workspace) State() *domain.WorkspaceState {
	w.mu.Lock()
	custom, hasPhoto := w.custom, w.photo != ""
	notices := append([]domain.Notice(nil), w.notices...)
	w.mu.Unlock()

	return &domain.WorkspaceState{
		ID:       w.ID,
		Status:   w.Persistence.Status(),
		Session:  w.Resolver.Session(),
		Options:  custom,
		HasPhoto: hasPhoto,
		Notices:  notices,
		Warnings: w.Builder.Warnings(),
	}
}

// Close flushes pending saves and stops following identity changes.
func (w *Workspace) Close(ctx context.Context) {
	w.Resolver.Close()
	w.Persistence.Close(ctx)
}
