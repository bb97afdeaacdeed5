package tools

import (
	"context"

	"github.com/ayyazzafar/clickup-mcp-server/internal/clickup"
	"github.com/ayyazzafar/clickup-mcp-server/internal/hierarchy"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetSpacesTool handles clickup_get_spaces.
type GetSpacesTool struct {
	api      API
	resolver *hierarchy.ParentResolver
}

// NewGetSpacesTool creates the tool.
func NewGetSpacesTool(api API, resolver *hierarchy.ParentResolver) *GetSpacesTool {
	return &GetSpacesTool{api: api, resolver: resolver}
}

func (t *GetSpacesTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_get_spaces",
		mcp.WithDescription("List all spaces in the workspace."),
	)
}

func (t *GetSpacesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spaces, err := t.api.GetSpaces(ctx, t.resolver.WorkspaceID())
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(spaces), nil
}

// CreateSpaceTool handles clickup_create_space.
type CreateSpaceTool struct {
	api      API
	resolver *hierarchy.ParentResolver
	cache    *hierarchy.Cache
}

// NewCreateSpaceTool creates the tool.
func NewCreateSpaceTool(api API, resolver *hierarchy.ParentResolver, cache *hierarchy.Cache) *CreateSpaceTool {
	return &CreateSpaceTool{api: api, resolver: resolver, cache: cache}
}

func (t *CreateSpaceTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_create_space",
		mcp.WithDescription("Create a new space in the workspace."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the space to create"),
		),
		mcp.WithBoolean("multipleAssignees",
			mcp.Description("Allow multiple assignees on tasks in this space"),
		),
	)
}

func (t *CreateSpaceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}

	space, err := t.api.CreateSpace(ctx, t.resolver.WorkspaceID(), clickup.CreateSpaceRequest{
		Name:              name,
		MultipleAssignees: req.GetBool("multipleAssignees", false),
	})
	if err != nil {
		return toolError(err), nil
	}

	t.cache.Invalidate(hierarchy.SpacesOf(t.resolver.WorkspaceID()))
	return jsonResult(space), nil
}

// UpdateSpaceTool handles clickup_update_space.
type UpdateSpaceTool struct {
	api      API
	resolver *hierarchy.ParentResolver
	cache    *hierarchy.Cache
}

// NewUpdateSpaceTool creates the tool.
func NewUpdateSpaceTool(api API, resolver *hierarchy.ParentResolver, cache *hierarchy.Cache) *UpdateSpaceTool {
	return &UpdateSpaceTool{api: api, resolver: resolver, cache: cache}
}

func (t *UpdateSpaceTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_update_space",
		mcp.WithDescription("Update a space. Identify it by spaceId or spaceName."),
		mcp.WithString("spaceId", mcp.Description("Space id (preferred when known)")),
		mcp.WithString("spaceName", mcp.Description("Space name, resolved if spaceId is absent")),
		mcp.WithString("name", mcp.Description("New name for the space")),
		mcp.WithString("color", mcp.Description("New color for the space")),
		mcp.WithBoolean("private", mcp.Description("Whether the space is private")),
		mcp.WithBoolean("archived", mcp.Description("Archive or unarchive the space")),
	)
}

func (t *UpdateSpaceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spaceID, err := t.resolver.Resolve(ctx, hierarchy.KindSpace, refFromRequest(req, "space"))
	if err != nil {
		return toolError(err), nil
	}

	update := clickup.UpdateSpaceRequest{
		Name:     optString(req, "name"),
		Color:    optString(req, "color"),
		Private:  optBool(req, "private"),
		Archived: optBool(req, "archived"),
	}
	space, err := t.api.UpdateSpace(ctx, spaceID, update)
	if err != nil {
		return toolError(err), nil
	}

	// A rename changes what names resolve to at the space level.
	t.cache.Invalidate(hierarchy.SpacesOf(t.resolver.WorkspaceID()))
	return jsonResult(space), nil
}

// DeleteSpaceTool handles clickup_delete_space.
type DeleteSpaceTool struct {
	api      API
	resolver *hierarchy.ParentResolver
	cache    *hierarchy.Cache
}

// NewDeleteSpaceTool creates the tool.
func NewDeleteSpaceTool(api API, resolver *hierarchy.ParentResolver, cache *hierarchy.Cache) *DeleteSpaceTool {
	return &DeleteSpaceTool{api: api, resolver: resolver, cache: cache}
}

func (t *DeleteSpaceTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_delete_space",
		mcp.WithDescription("Delete a space and everything nested in it (folders, lists, views). Identify it by spaceId or spaceName."),
		mcp.WithString("spaceId", mcp.Description("Space id (preferred when known)")),
		mcp.WithString("spaceName", mcp.Description("Space name, resolved if spaceId is absent")),
	)
}

func (t *DeleteSpaceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spaceID, err := t.resolver.Resolve(ctx, hierarchy.KindSpace, refFromRequest(req, "space"))
	if err != nil {
		return toolError(err), nil
	}

	if err := t.api.DeleteSpace(ctx, spaceID); err != nil {
		return toolError(err), nil
	}

	// Deleting a space also deletes nested folders, lists, and views; the
	// blast radius spans scopes we may never have cached, so clear everything.
	t.cache.InvalidateAll()
	return mcp.NewToolResultText("space " + spaceID + " deleted"), nil
}

// GetSpaceTagsTool handles clickup_get_space_tags.
type GetSpaceTagsTool struct {
	api      API
	resolver *hierarchy.ParentResolver
}

// NewGetSpaceTagsTool creates the tool.
func NewGetSpaceTagsTool(api API, resolver *hierarchy.ParentResolver) *GetSpaceTagsTool {
	return &GetSpaceTagsTool{api: api, resolver: resolver}
}

func (t *GetSpaceTagsTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_get_space_tags",
		mcp.WithDescription("List the tags configured on a space. Identify it by spaceId or spaceName."),
		mcp.WithString("spaceId", mcp.Description("Space id (preferred when known)")),
		mcp.WithString("spaceName", mcp.Description("Space name, resolved if spaceId is absent")),
	)
}

func (t *GetSpaceTagsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spaceID, err := t.resolver.Resolve(ctx, hierarchy.KindSpace, refFromRequest(req, "space"))
	if err != nil {
		return toolError(err), nil
	}

	tags, err := t.api.GetSpaceTags(ctx, spaceID)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(tags), nil
}
