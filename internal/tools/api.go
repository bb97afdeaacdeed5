package tools

import (
	"context"

	"github.com/ayyazzafar/clickup-mcp-server/internal/clickup"
)

// API is the slice of the ClickUp client the tools depend on. Tools take
// the interface so tests can substitute an in-memory workspace.
type API interface {
	GetWorkspaces(ctx context.Context) ([]clickup.Workspace, error)

	GetSpaces(ctx context.Context, teamID string) ([]clickup.Space, error)
	CreateSpace(ctx context.Context, teamID string, req clickup.CreateSpaceRequest) (clickup.Space, error)
	UpdateSpace(ctx context.Context, spaceID string, req clickup.UpdateSpaceRequest) (clickup.Space, error)
	DeleteSpace(ctx context.Context, spaceID string) error
	GetSpaceTags(ctx context.Context, spaceID string) ([]clickup.Tag, error)

	GetFolders(ctx context.Context, spaceID string) ([]clickup.Folder, error)
	CreateFolder(ctx context.Context, spaceID, name string) (clickup.Folder, error)
	UpdateFolder(ctx context.Context, folderID, name string) (clickup.Folder, error)
	DeleteFolder(ctx context.Context, folderID string) error

	GetFolderLists(ctx context.Context, folderID string) ([]clickup.List, error)
	GetFolderlessLists(ctx context.Context, spaceID string) ([]clickup.List, error)
	CreateListInSpace(ctx context.Context, spaceID string, req clickup.CreateListRequest) (clickup.List, error)
	CreateListInFolder(ctx context.Context, folderID string, req clickup.CreateListRequest) (clickup.List, error)
	UpdateList(ctx context.Context, listID string, req clickup.UpdateListRequest) (clickup.List, error)
	DeleteList(ctx context.Context, listID string) error

	GetViews(ctx context.Context, parentKind, parentID string) ([]clickup.View, error)
	CreateView(ctx context.Context, parentKind, parentID string, req clickup.CreateViewRequest) (clickup.View, error)
	UpdateView(ctx context.Context, viewID string, req clickup.UpdateViewRequest) (clickup.View, error)
	DeleteView(ctx context.Context, viewID string) error

	GetTasks(ctx context.Context, listID string, opts clickup.GetTasksOptions) ([]clickup.Task, error)
	GetTask(ctx context.Context, taskID string) (clickup.Task, error)
	CreateTask(ctx context.Context, listID string, req clickup.CreateTaskRequest) (clickup.Task, error)
	UpdateTask(ctx context.Context, taskID string, req clickup.UpdateTaskRequest) (clickup.Task, error)
}
