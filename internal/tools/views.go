package tools

import (
	"context"

	"github.com/ayyazzafar/clickup-mcp-server/internal/clickup"
	"github.com/ayyazzafar/clickup-mcp-server/internal/hierarchy"
	"github.com/mark3labs/mcp-go/mcp"
)

// viewContainer resolves the parentType + parentId/parentName triple every
// view tool accepts into a (kind, id) container.
func viewContainer(ctx context.Context, resolver *hierarchy.ParentResolver, req mcp.CallToolRequest) (hierarchy.Kind, string, error) {
	kind, err := parseContainerKind(req.GetString("parentType", "workspace"))
	if err != nil {
		return "", "", err
	}
	id, err := resolver.Resolve(ctx, kind, refFromRequest(req, "parent"))
	if err != nil {
		return "", "", err
	}
	return kind, id, nil
}

// parentParamsProvided reports whether the caller pinned down the view's
// container explicitly rather than leaning on the workspace default.
func parentParamsProvided(req mcp.CallToolRequest) bool {
	args := req.GetArguments()
	for _, key := range []string{"parentType", "parentId", "parentName"} {
		if v, ok := args[key].(string); ok && v != "" {
			return true
		}
	}
	return false
}

// viewParentScope maps ClickUp's numeric view-parent encoding to the cache
// scope holding that container's views. The response parent is authoritative:
// it names the real container even when the caller only supplied a viewId.
func viewParentScope(parent clickup.ViewParent) (hierarchy.Scope, bool) {
	var kind hierarchy.Kind
	switch parent.Type {
	case 7:
		kind = hierarchy.KindWorkspace
	case 4:
		kind = hierarchy.KindSpace
	case 5:
		kind = hierarchy.KindFolder
	case 6:
		kind = hierarchy.KindList
	default:
		return hierarchy.Scope{}, false
	}
	if parent.ID == "" {
		return hierarchy.Scope{}, false
	}
	scope, err := hierarchy.ViewsOf(kind, parent.ID)
	if err != nil {
		return hierarchy.Scope{}, false
	}
	return scope, true
}

// withViewContainerParams declares the shared container parameters.
func withViewContainerParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("parentType",
			mcp.Description("Container level the view lives at. Defaults to 'workspace'."),
			mcp.DefaultString("workspace"),
			mcp.Enum("workspace", "space", "folder", "list"),
		),
		mcp.WithString("parentId", mcp.Description("Container id (preferred when known; ignored for parentType=workspace)")),
		mcp.WithString("parentName", mcp.Description("Container name, resolved if parentId is absent")),
	}
}

// GetViewsTool handles clickup_get_views.
type GetViewsTool struct {
	api      API
	resolver *hierarchy.ParentResolver
}

// NewGetViewsTool creates the tool.
func NewGetViewsTool(api API, resolver *hierarchy.ParentResolver) *GetViewsTool {
	return &GetViewsTool{api: api, resolver: resolver}
}

func (t *GetViewsTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("List the views of a container at any level (workspace, space, folder, or list)."),
	}
	opts = append(opts, withViewContainerParams()...)
	return mcp.NewTool("clickup_get_views", opts...)
}

func (t *GetViewsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, parentID, err := viewContainer(ctx, t.resolver, req)
	if err != nil {
		return toolError(err), nil
	}

	views, err := t.api.GetViews(ctx, string(kind), parentID)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(views), nil
}

// CreateViewTool handles clickup_create_view.
type CreateViewTool struct {
	api      API
	resolver *hierarchy.ParentResolver
	cache    *hierarchy.Cache
}

// NewCreateViewTool creates the tool.
func NewCreateViewTool(api API, resolver *hierarchy.ParentResolver, cache *hierarchy.Cache) *CreateViewTool {
	return &CreateViewTool{api: api, resolver: resolver, cache: cache}
}

func (t *CreateViewTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Create a view under a container at any level."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the view to create"),
		),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("View type"),
			mcp.Enum("list", "board", "calendar", "gantt", "table", "timeline", "workload", "activity", "map", "chat", "doc"),
		),
	}
	opts = append(opts, withViewContainerParams()...)
	return mcp.NewTool("clickup_create_view", opts...)
}

func (t *CreateViewTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	viewType := req.GetString("type", "")
	if name == "" || viewType == "" {
		return mcp.NewToolResultError("'name' and 'type' are required"), nil
	}

	kind, parentID, err := viewContainer(ctx, t.resolver, req)
	if err != nil {
		return toolError(err), nil
	}

	view, err := t.api.CreateView(ctx, string(kind), parentID, clickup.CreateViewRequest{
		Name: name,
		Type: viewType,
	})
	if err != nil {
		return toolError(err), nil
	}

	if scope, err := hierarchy.ViewsOf(kind, parentID); err == nil {
		t.cache.Invalidate(scope)
	}
	return jsonResult(view), nil
}

// UpdateViewTool handles clickup_update_view.
type UpdateViewTool struct {
	api      API
	resolver *hierarchy.ParentResolver
	cache    *hierarchy.Cache
}

// NewUpdateViewTool creates the tool.
func NewUpdateViewTool(api API, resolver *hierarchy.ParentResolver, cache *hierarchy.Cache) *UpdateViewTool {
	return &UpdateViewTool{api: api, resolver: resolver, cache: cache}
}

func (t *UpdateViewTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Update a view. Identify it by viewId, or by viewName together with its " +
				"container — view names are only unique within one container.",
		),
		mcp.WithString("viewId", mcp.Description("View id (preferred when known)")),
		mcp.WithString("viewName", mcp.Description("View name, looked up within the container if viewId is absent")),
		mcp.WithString("name", mcp.Description("New name for the view")),
	}
	opts = append(opts, withViewContainerParams()...)
	return mcp.NewTool("clickup_update_view", opts...)
}

func (t *UpdateViewTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, parentID, viewID, result := t.resolveView(ctx, req)
	if result != nil {
		return result, nil
	}

	view, err := t.api.UpdateView(ctx, viewID, clickup.UpdateViewRequest{
		Name: optString(req, "name"),
	})
	if err != nil {
		return toolError(err), nil
	}

	// The response parent names the view's real container, which matters
	// when the caller identified the view by id without container params.
	if scope, ok := viewParentScope(view.Parent); ok {
		t.cache.Invalidate(scope)
	} else if scope, err := hierarchy.ViewsOf(kind, parentID); err == nil {
		t.cache.Invalidate(scope)
	}
	return jsonResult(view), nil
}

// resolveView turns the viewId/viewName + container parameters into a view
// id, resolving the container either way so invalidation stays scoped.
func (t *UpdateViewTool) resolveView(ctx context.Context, req mcp.CallToolRequest) (hierarchy.Kind, string, string, *mcp.CallToolResult) {
	kind, parentID, err := viewContainer(ctx, t.resolver, req)
	if err != nil {
		return "", "", "", toolError(err)
	}

	if viewID := req.GetString("viewId", ""); viewID != "" {
		return kind, parentID, viewID, nil
	}
	viewName := req.GetString("viewName", "")
	if viewName == "" {
		return "", "", "", mcp.NewToolResultError("provide viewId or viewName")
	}

	node, err := t.resolver.FindByName(ctx, kind, parentID, hierarchy.KindView, viewName)
	if err != nil {
		return "", "", "", toolError(err)
	}
	return kind, parentID, node.ID, nil
}

// DeleteViewTool handles clickup_delete_view.
type DeleteViewTool struct {
	api      API
	resolver *hierarchy.ParentResolver
	cache    *hierarchy.Cache
}

// NewDeleteViewTool creates the tool.
func NewDeleteViewTool(api API, resolver *hierarchy.ParentResolver, cache *hierarchy.Cache) *DeleteViewTool {
	return &DeleteViewTool{api: api, resolver: resolver, cache: cache}
}

func (t *DeleteViewTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Delete a view. Identify it by viewId, or by viewName together with its " +
				"container — view names are only unique within one container.",
		),
		mcp.WithString("viewId", mcp.Description("View id (preferred when known)")),
		mcp.WithString("viewName", mcp.Description("View name, looked up within the container if viewId is absent")),
	}
	opts = append(opts, withViewContainerParams()...)
	return mcp.NewTool("clickup_delete_view", opts...)
}

func (t *DeleteViewTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, parentID, err := viewContainer(ctx, t.resolver, req)
	if err != nil {
		return toolError(err), nil
	}

	viewID := req.GetString("viewId", "")
	byID := viewID != ""
	if !byID {
		viewName := req.GetString("viewName", "")
		if viewName == "" {
			return mcp.NewToolResultError("provide viewId or viewName"), nil
		}
		node, err := t.resolver.FindByName(ctx, kind, parentID, hierarchy.KindView, viewName)
		if err != nil {
			return toolError(err), nil
		}
		viewID = node.ID
	}

	if err := t.api.DeleteView(ctx, viewID); err != nil {
		return toolError(err), nil
	}

	// Deletion returns an empty body, so a bare viewId leaves the view's
	// real container unknown. Clear everything rather than leave that
	// container's cached views stale.
	if byID && !parentParamsProvided(req) {
		t.cache.InvalidateAll()
	} else if scope, err := hierarchy.ViewsOf(kind, parentID); err == nil {
		t.cache.Invalidate(scope)
	}
	return mcp.NewToolResultText("view " + viewID + " deleted"), nil
}
