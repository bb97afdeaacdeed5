package tools

import (
	"context"

	"github.com/ayyazzafar/clickup-mcp-server/internal/clickup"
	"github.com/ayyazzafar/clickup-mcp-server/internal/hierarchy"
	"github.com/mark3labs/mcp-go/mcp"
)

// Task tools never touch the hierarchy cache: tasks are leaves below the
// cached container tree, so task mutations cannot change what any cached
// scope resolves to.

// GetTasksTool handles clickup_get_tasks.
type GetTasksTool struct {
	api      API
	resolver *hierarchy.ParentResolver
}

// NewGetTasksTool creates the tool.
func NewGetTasksTool(api API, resolver *hierarchy.ParentResolver) *GetTasksTool {
	return &GetTasksTool{api: api, resolver: resolver}
}

func (t *GetTasksTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_get_tasks",
		mcp.WithDescription("List the tasks of a list. Identify the list by listId or listName (searched across all spaces and folders)."),
		mcp.WithString("listId", mcp.Description("List id (preferred when known)")),
		mcp.WithString("listName", mcp.Description("List name, resolved if listId is absent")),
		mcp.WithBoolean("archived", mcp.Description("Include archived tasks")),
		mcp.WithBoolean("includeClosed", mcp.Description("Include closed tasks")),
		mcp.WithNumber("page", mcp.Description("Result page, starting at 0")),
	)
}

func (t *GetTasksTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	listID, err := t.resolver.Resolve(ctx, hierarchy.KindList, refFromRequest(req, "list"))
	if err != nil {
		return toolError(err), nil
	}

	page := 0
	if p := optInt(req, "page"); p != nil {
		page = *p
	}
	tasks, err := t.api.GetTasks(ctx, listID, clickup.GetTasksOptions{
		Archived:      req.GetBool("archived", false),
		IncludeClosed: req.GetBool("includeClosed", false),
		Page:          page,
	})
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(tasks), nil
}

// GetTaskTool handles clickup_get_task_by_id.
type GetTaskTool struct {
	api API
}

// NewGetTaskTool creates the tool.
func NewGetTaskTool(api API) *GetTaskTool {
	return &GetTaskTool{api: api}
}

func (t *GetTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_get_task_by_id",
		mcp.WithDescription("Fetch one task by its id."),
		mcp.WithString("taskId",
			mcp.Required(),
			mcp.Description("Task id"),
		),
	)
}

func (t *GetTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID := req.GetString("taskId", "")
	if taskID == "" {
		return mcp.NewToolResultError("'taskId' is required"), nil
	}

	task, err := t.api.GetTask(ctx, taskID)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(task), nil
}

// CreateTaskTool handles clickup_create_task.
type CreateTaskTool struct {
	api      API
	resolver *hierarchy.ParentResolver
}

// NewCreateTaskTool creates the tool.
func NewCreateTaskTool(api API, resolver *hierarchy.ParentResolver) *CreateTaskTool {
	return &CreateTaskTool{api: api, resolver: resolver}
}

func (t *CreateTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_create_task",
		mcp.WithDescription("Create a task in a list. Identify the list by listId or listName (searched across all spaces and folders)."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Task name"),
		),
		mcp.WithString("listId", mcp.Description("List id (preferred when known)")),
		mcp.WithString("listName", mcp.Description("List name, resolved if listId is absent")),
		mcp.WithString("description", mcp.Description("Task description (markdown)")),
		mcp.WithString("status", mcp.Description("Status name; must exist on the list")),
		mcp.WithNumber("priority", mcp.Description("Priority: 1 urgent, 2 high, 3 normal, 4 low")),
		mcp.WithNumber("dueDate", mcp.Description("Due date as epoch milliseconds")),
	)
}

func (t *CreateTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}

	listID, err := t.resolver.Resolve(ctx, hierarchy.KindList, refFromRequest(req, "list"))
	if err != nil {
		return toolError(err), nil
	}

	task, err := t.api.CreateTask(ctx, listID, clickup.CreateTaskRequest{
		Name:        name,
		Description: req.GetString("description", ""),
		Status:      req.GetString("status", ""),
		Priority:    optInt(req, "priority"),
		DueDate:     optInt64(req, "dueDate"),
	})
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(task), nil
}

// UpdateTaskTool handles clickup_update_task.
type UpdateTaskTool struct {
	api API
}

// NewUpdateTaskTool creates the tool.
func NewUpdateTaskTool(api API) *UpdateTaskTool {
	return &UpdateTaskTool{api: api}
}

func (t *UpdateTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_update_task",
		mcp.WithDescription("Update a task's fields. Absent parameters are left unchanged."),
		mcp.WithString("taskId",
			mcp.Required(),
			mcp.Description("Task id"),
		),
		mcp.WithString("name", mcp.Description("New task name")),
		mcp.WithString("description", mcp.Description("New description (markdown)")),
		mcp.WithString("status", mcp.Description("New status name")),
		mcp.WithNumber("priority", mcp.Description("Priority: 1 urgent, 2 high, 3 normal, 4 low")),
		mcp.WithNumber("dueDate", mcp.Description("Due date as epoch milliseconds")),
	)
}

func (t *UpdateTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID := req.GetString("taskId", "")
	if taskID == "" {
		return mcp.NewToolResultError("'taskId' is required"), nil
	}

	task, err := t.api.UpdateTask(ctx, taskID, clickup.UpdateTaskRequest{
		Name:        optString(req, "name"),
		Description: optString(req, "description"),
		Status:      optString(req, "status"),
		Priority:    optInt(req, "priority"),
		DueDate:     optInt64(req, "dueDate"),
	})
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(task), nil
}
