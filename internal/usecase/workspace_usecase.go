package usecase

import (
	"context"

	"cvcraft-backend/internal/domain"
)

type workspaceUsecase struct {
	manager *WorkspaceManager
}

func NewWorkspaceUsecase(manager *WorkspaceManager) domain.WorkspaceUsecase {
	return &workspaceUsecase{manager: manager}
}

func (u *workspaceUsecase) Open(ctx context.Context, workspaceID string) (*domain.WorkspaceState, error) {
	ws, _ := u.manager.Open(ctx, workspaceID)
	return ws.State(), nil
}

func (u *workspaceUsecase) State(ctx context.Context, workspaceID string) (*domain.WorkspaceState, error) {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	return ws.State(), nil
}

func (u *workspaceUsecase) Close(ctx context.Context, workspaceID string) error {
	return u.manager.Close(ctx, workspaceID)
}

func (u *workspaceUsecase) CloseAll(ctx context.Context) {
	u.manager.CloseAll(ctx)
}

func (u *workspaceUsecase) Notices(ctx context.Context, workspaceID string) ([]domain.Notice, error) {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	return ws.DrainNotices(), nil
}

// Notify queues a notice for a live workspace. Unknown workspaces are ignored.
func (u *workspaceUsecase) Notify(ctx context.Context, workspaceID string, level domain.NoticeLevel, message string) error {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return err
	}
	ws.notify(level, message)
	return nil
}

func (u *workspaceUsecase) Warnings(ctx context.Context, workspaceID string) ([]domain.FieldWarning, error) {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	return ws.Builder.Warnings(), nil
}

func (u *workspaceUsecase) Document(ctx context.Context, workspaceID string) (*domain.CVDocument, error) {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	return ws.Builder.Snapshot(), nil
}

func (u *workspaceUsecase) Save(ctx context.Context, workspaceID string) (*domain.SaveStatus, error) {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	status := ws.Persistence.Save(ctx)
	return &status, nil
}

func (u *workspaceUsecase) UpdatePersonalInfo(ctx context.Context, workspaceID, field string, value any) (*domain.CVDocument, error) {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	return ws.Builder.SetPersonalInfo(field, value)
}

func (u *workspaceUsecase) AddEntry(ctx context.Context, workspaceID string, section domain.SectionName, input domain.NewEntryInput) (*domain.CVDocument, error) {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	return ws.Builder.Add(section, input)
}

func (u *workspaceUsecase) UpdateEntry(ctx context.Context, workspaceID string, section domain.SectionName, id domain.EntryID, field string, value any) (*domain.CVDocument, error) {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	return ws.Builder.Update(section, id, field, value)
}

func (u *workspaceUsecase) RemoveEntry(ctx context.Context, workspaceID string, section domain.SectionName, id domain.EntryID) (*domain.CVDocument, error) {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	return ws.Builder.Remove(section, id)
}

func (u *workspaceUsecase) AddCourseSkill(ctx context.Context, workspaceID string, courseID domain.EntryID, skill string) (*domain.CVDocument, error) {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	return ws.Builder.AddCourseSkill(courseID, skill)
}

func (u *workspaceUsecase) RemoveCourseSkill(ctx context.Context, workspaceID string, courseID domain.EntryID, index int) (*domain.CVDocument, error) {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	return ws.Builder.RemoveCourseSkill(courseID, index)
}

func (u *workspaceUsecase) SuggestSkills(ctx context.Context, workspaceID string) (*domain.CVDocument, error) {
	ws, err := u.manager.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	return ws.Builder.SuggestSkills()
}
