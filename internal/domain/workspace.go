package domain

import (
	"context"
	"io"
	"time"
)

type PersistenceMode string

const (
	ModeLocal  PersistenceMode = "local"
	ModeRemote PersistenceMode = "remote"
)

type SaveStatus struct {
	Mode       PersistenceMode `json:"mode"`
	DocumentID string          `json:"document_id,omitempty"`
	LastSaved  *time.Time      `json:"last_saved,omitempty"`
	Pending    bool            `json:"pending"`
	Saving     bool            `json:"saving"`
}

type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice is a transient message for the user, drained on read.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
	At      time.Time   `json:"at"`
}

type WorkspaceState struct {
	ID       string         `json:"id"`
	Status   SaveStatus     `json:"status"`
	Session  *Session       `json:"session,omitempty"`
	Options  Customization  `json:"options"`
	HasPhoto bool           `json:"has_photo"`
	Notices  []Notice       `json:"notices,omitempty"`
	Warnings []FieldWarning `json:"warnings,omitempty"`
}

type WorkspaceUsecase interface {
	Open(ctx context.Context, workspaceID string) (*WorkspaceState, error)
	State(ctx context.Context, workspaceID string) (*WorkspaceState, error)
	Close(ctx context.Context, workspaceID string) error
	CloseAll(ctx context.Context)
	Notices(ctx context.Context, workspaceID string) ([]Notice, error)
	Notify(ctx context.Context, workspaceID string, level NoticeLevel, message string) error
	Warnings(ctx context.Context, workspaceID string) ([]FieldWarning, error)

	Document(ctx context.Context, workspaceID string) (*CVDocument, error)
	Save(ctx context.Context, workspaceID string) (*SaveStatus, error)
	UpdatePersonalInfo(ctx context.Context, workspaceID, field string, value any) (*CVDocument, error)
	AddEntry(ctx context.Context, workspaceID string, section SectionName, input NewEntryInput) (*CVDocument, error)
	UpdateEntry(ctx context.Context, workspaceID string, section SectionName, id EntryID, field string, value any) (*CVDocument, error)
	RemoveEntry(ctx context.Context, workspaceID string, section SectionName, id EntryID) (*CVDocument, error)
	AddCourseSkill(ctx context.Context, workspaceID string, courseID EntryID, skill string) (*CVDocument, error)
	RemoveCourseSkill(ctx context.Context, workspaceID string, courseID EntryID, index int) (*CVDocument, error)
	SuggestSkills(ctx context.Context, workspaceID string) (*CVDocument, error)
}

// TextGenerator produces free text from a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type SuggestionUsecase interface {
	SuggestSummary(ctx context.Context, workspaceID string) (*CVDocument, error)
	SuggestExperience(ctx context.Context, workspaceID string, id EntryID) (*CVDocument, error)
}

type Share struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type ShareUsecase interface {
	Publish(ctx context.Context, workspaceID string) (*Share, error)
	Open(ctx context.Context, shareID string) (io.ReadCloser, error)
}
