package usecase

import (
	"context"
	"errors"

	"cvcraft-backend/internal/domain"
	"cvcraft-backend/pkg/apperror"
	"cvcraft-backend/pkg/imaging"
	"cvcraft-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type previewUsecase struct {
	manager  *WorkspaceManager
	renderer domain.PreviewRenderer
	validate *validator.Validate
}

func NewPreviewUsecase(manager *WorkspaceManager, renderer domain.PreviewRenderer, validate *validator.Validate) domain.PreviewUsecase {
	if validate == nil {
		validate = validation.New()
	}
	return &previewUsecase{manager: manager, renderer: renderer, validate: validate}
}

func (u *previewUsecase) Options(ctx context.Context, workspaceID string) (*domain.PreviewOptions, error) {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	opts := ws.PreviewOptions()
	return &opts, nil
}

func (u *previewUsecase) SetOptions(ctx context.Context, workspaceID string, custom domain.Customization) (*domain.PreviewOptions, error) {
	if err := u.validate.Struct(custom); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	ws.SetCustomization(custom)
	opts := ws.PreviewOptions()
	return &opts, nil
}

func (u *previewUsecase) SetPhoto(ctx context.Context, workspaceID string, data []byte) error {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return err
	}
	dataURL, err := imaging.ToDataURL(data)
	switch {
	case errors.Is(err, imaging.ErrTooLarge):
		return apperror.BadRequest("Photo must be 5 MB or smaller")
	case errors.Is(err, imaging.ErrUnsupportedFormat):
		return apperror.BadRequest("Photo must be a JPEG, PNG, GIF or WebP image")
	case err != nil:
		return apperror.Internal(err)
	}
	ws.SetPhoto(dataURL)
	return nil
}

func (u *previewUsecase) ClearPhoto(ctx context.Context, workspaceID string) error {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return err
	}
	ws.SetPhoto("")
	return nil
}

func (u *previewUsecase) Render(ctx context.Context, workspaceID string) ([]byte, error) {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	out, err := u.renderer.Render(ws.Builder.Snapshot(), ws.PreviewOptions())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return out, nil
}
