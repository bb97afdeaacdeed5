// Package clickup is the ClickUp REST API v2 client. It is pure request/
// response glue: no caching, no retries — retry/backoff policy and cache
// consistency both live with the callers.
package clickup

import "fmt"

// Workspace is a ClickUp team, the root of the container hierarchy.
type Workspace struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// Space is a top-level organizational container within a workspace.
type Space struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Private           bool     `json:"private"`
	Archived          bool     `json:"archived"`
	MultipleAssignees bool     `json:"multiple_assignees"`
	Statuses          []Status `json:"statuses,omitempty"`
}

// Status is one status option configured on a space or list.
type Status struct {
	Status string `json:"status"`
	Color  string `json:"color,omitempty"`
	Type   string `json:"type,omitempty"`
}

// ContainerRef is the id/name stub ClickUp embeds for a parent container.
type ContainerRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Folder is an optional grouping container within a space.
type Folder struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Hidden    bool         `json:"hidden"`
	TaskCount string       `json:"task_count,omitempty"`
	Space     ContainerRef `json:"space"`
}

// List is a task container, nested in a folder or directly in a space.
type List struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Content  string        `json:"content,omitempty"`
	Archived bool          `json:"archived"`
	Folder   *ContainerRef `json:"folder,omitempty"`
	Space    ContainerRef  `json:"space"`
}

// ViewParent identifies the container a view is attached to. Type uses
// ClickUp's numeric encoding: 7 = team, 4 = space, 5 = folder, 6 = list.
type ViewParent struct {
	ID   string `json:"id"`
	Type int    `json:"type"`
}

// View is a saved visualization attached to any container level.
type View struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Type   string     `json:"type"`
	Parent ViewParent `json:"parent"`
}

// Tag is a space-level tag.
type Tag struct {
	Name  string `json:"name"`
	TagFg string `json:"tag_fg,omitempty"`
	TagBg string `json:"tag_bg,omitempty"`
}

// TaskPriority is the priority object ClickUp attaches to a task.
type TaskPriority struct {
	Priority string `json:"priority"`
	Color    string `json:"color,omitempty"`
}

// Task is a trimmed ClickUp task.
type Task struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Status      Status        `json:"status"`
	Priority    *TaskPriority `json:"priority,omitempty"`
	DueDate     *string       `json:"due_date,omitempty"`
	URL         string        `json:"url,omitempty"`
	List        *ContainerRef `json:"list,omitempty"`
}

// --- Request bodies ---

// CreateSpaceRequest creates a space in a workspace.
type CreateSpaceRequest struct {
	Name              string `json:"name"`
	MultipleAssignees bool   `json:"multiple_assignees"`
}

// UpdateSpaceRequest updates a space; nil fields are left unchanged.
type UpdateSpaceRequest struct {
	Name     *string `json:"name,omitempty"`
	Color    *string `json:"color,omitempty"`
	Private  *bool   `json:"private,omitempty"`
	Archived *bool   `json:"archived,omitempty"`
}

// CreateListRequest creates a list in a space or folder.
type CreateListRequest struct {
	Name    string `json:"name"`
	Content string `json:"content,omitempty"`
}

// UpdateListRequest updates a list; nil fields are left unchanged.
type UpdateListRequest struct {
	Name    *string `json:"name,omitempty"`
	Content *string `json:"content,omitempty"`
}

// CreateViewRequest creates a view under any container.
type CreateViewRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// UpdateViewRequest updates a view; nil fields are left unchanged.
type UpdateViewRequest struct {
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// CreateTaskRequest creates a task in a list.
type CreateTaskRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	Priority    *int     `json:"priority,omitempty"`
	DueDate     *int64   `json:"due_date,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// UpdateTaskRequest updates a task; nil fields are left unchanged.
type UpdateTaskRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	DueDate     *int64  `json:"due_date,omitempty"`
}

// GetTasksOptions filters a task listing.
type GetTasksOptions struct {
	Archived      bool
	IncludeClosed bool
	Page          int
}

// --- Errors ---

// APIError is a non-2xx response from the ClickUp API, decoded from the
// {"err": ..., "ECODE": ...} error body.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("clickup api: %d %s (%s)", e.StatusCode, e.Message, e.Code)
	}
	return fmt.Sprintf("clickup api: %d %s", e.StatusCode, e.Message)
}

// apiErrorBody is ClickUp's wire error shape.
type apiErrorBody struct {
	Err   string `json:"err"`
	ECode string `json:"ECODE"`
}
