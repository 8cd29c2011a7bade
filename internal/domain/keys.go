package domain

type CtxKey string

const (
	KeyWorkspaceID CtxKey = "WorkspaceID"
)
