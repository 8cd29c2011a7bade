package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"cvcraft-backend/internal/domain"
	"cvcraft-backend/pkg/apperror"
	"cvcraft-backend/pkg/logger"
	"cvcraft-backend/pkg/storage"

	"github.com/google/uuid"
)

const shareKeyPrefix = "shares/"

type ShareConfig struct {
	Storage  storage.Storage
	Renderer domain.PreviewRenderer
	// BaseURL is the public origin the share links point at.
	BaseURL string
	Logger  *slog.Logger
	Now     func() time.Time
}

type shareUsecase struct {
	manager *WorkspaceManager
	cfg     ShareConfig
	log     *slog.Logger
}

func NewShareUsecase(manager *WorkspaceManager, cfg ShareConfig) domain.ShareUsecase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	log := cfg.Logger
	if log == nil {
		log = logger.Log
	}
	if log == nil {
		log = slog.Default()
	}
	return &shareUsecase{manager: manager, cfg: cfg, log: log}
}

// Publish stores a rendered copy of the current CV. The profile photo is
// left out of published copies.
func (u *shareUsecase) Publish(ctx context.Context, workspaceID string) (*domain.Share, error) {
	if u.cfg.Storage == nil {
		return nil, apperror.Unavailable("Sharing is not configured")
	}
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}

	opts := ws.PreviewOptions()
	opts.ProfileImage = ""
	page, err := u.cfg.Renderer.Render(ws.Builder.Snapshot(), opts)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	id := uuid.NewString()
	if err := u.cfg.Storage.Upload(ctx, shareKey(id), "text/html; charset=utf-8", bytes.NewReader(page)); err != nil {
		u.log.Error("Failed to store share", "workspace_id", workspaceID, "error", err)
		return nil, apperror.Internal(err)
	}
	u.log.Info("CV shared", "workspace_id", workspaceID, "share_id", id)

	return &domain.Share{
		ID:        id,
		URL:       u.cfg.BaseURL + "/v1/shares/" + id,
		CreatedAt: u.cfg.Now(),
	}, nil
}

func (u *shareUsecase) Open(ctx context.Context, shareID string) (io.ReadCloser, error) {
	if u.cfg.Storage == nil {
		return nil, apperror.Unavailable("Sharing is not configured")
	}
	if _, err := uuid.Parse(shareID); err != nil {
		return nil, apperror.NotFound("Share not found")
	}
	body, err := u.cfg.Storage.Download(ctx, shareKey(shareID))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperror.NotFound("Share not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return body, nil
}

func shareKey(id string) string {
	return shareKeyPrefix + id + ".html"
}
