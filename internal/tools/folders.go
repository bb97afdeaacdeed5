package tools

import (
	"context"

	"github.com/ayyazzafar/clickup-mcp-server/internal/hierarchy"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetFoldersTool handles clickup_get_folders.
type GetFoldersTool struct {
	api      API
	resolver *hierarchy.ParentResolver
}

// NewGetFoldersTool creates the tool.
func NewGetFoldersTool(api API, resolver *hierarchy.ParentResolver) *GetFoldersTool {
	return &GetFoldersTool{api: api, resolver: resolver}
}

func (t *GetFoldersTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_get_folders",
		mcp.WithDescription("List the folders of a space. Identify the space by spaceId or spaceName."),
		mcp.WithString("spaceId", mcp.Description("Space id (preferred when known)")),
		mcp.WithString("spaceName", mcp.Description("Space name, resolved if spaceId is absent")),
	)
}

func (t *GetFoldersTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spaceID, err := t.resolver.Resolve(ctx, hierarchy.KindSpace, refFromRequest(req, "space"))
	if err != nil {
		return toolError(err), nil
	}

	folders, err := t.api.GetFolders(ctx, spaceID)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(folders), nil
}

// CreateFolderTool handles clickup_create_folder.
type CreateFolderTool struct {
	api      API
	resolver *hierarchy.ParentResolver
	cache    *hierarchy.Cache
}

// NewCreateFolderTool creates the tool.
func NewCreateFolderTool(api API, resolver *hierarchy.ParentResolver, cache *hierarchy.Cache) *CreateFolderTool {
	return &CreateFolderTool{api: api, resolver: resolver, cache: cache}
}

func (t *CreateFolderTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_create_folder",
		mcp.WithDescription("Create a folder in a space. Identify the space by spaceId or spaceName."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the folder to create"),
		),
		mcp.WithString("spaceId", mcp.Description("Space id (preferred when known)")),
		mcp.WithString("spaceName", mcp.Description("Space name, resolved if spaceId is absent")),
	)
}

func (t *CreateFolderTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}

	spaceID, err := t.resolver.Resolve(ctx, hierarchy.KindSpace, refFromRequest(req, "space"))
	if err != nil {
		return toolError(err), nil
	}

	folder, err := t.api.CreateFolder(ctx, spaceID, name)
	if err != nil {
		return toolError(err), nil
	}

	t.cache.Invalidate(hierarchy.FoldersOf(spaceID))
	return jsonResult(folder), nil
}

// UpdateFolderTool handles clickup_update_folder.
type UpdateFolderTool struct {
	api      API
	resolver *hierarchy.ParentResolver
	cache    *hierarchy.Cache
}

// NewUpdateFolderTool creates the tool.
func NewUpdateFolderTool(api API, resolver *hierarchy.ParentResolver, cache *hierarchy.Cache) *UpdateFolderTool {
	return &UpdateFolderTool{api: api, resolver: resolver, cache: cache}
}

func (t *UpdateFolderTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_update_folder",
		mcp.WithDescription("Rename a folder. Identify it by folderId or folderName (searched across all spaces)."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("New name for the folder"),
		),
		mcp.WithString("folderId", mcp.Description("Folder id (preferred when known)")),
		mcp.WithString("folderName", mcp.Description("Folder name, resolved if folderId is absent")),
	)
}

func (t *UpdateFolderTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}

	folderID, err := t.resolver.Resolve(ctx, hierarchy.KindFolder, refFromRequest(req, "folder"))
	if err != nil {
		return toolError(err), nil
	}

	folder, err := t.api.UpdateFolder(ctx, folderID, name)
	if err != nil {
		return toolError(err), nil
	}

	// The response names the containing space, so the invalidation can stay
	// narrow even when the folder was resolved by name.
	if folder.Space.ID != "" {
		t.cache.Invalidate(hierarchy.FoldersOf(folder.Space.ID))
	} else {
		t.cache.InvalidateAll()
	}
	return jsonResult(folder), nil
}

// DeleteFolderTool handles clickup_delete_folder.
type DeleteFolderTool struct {
	api      API
	resolver *hierarchy.ParentResolver
	cache    *hierarchy.Cache
}

// NewDeleteFolderTool creates the tool.
func NewDeleteFolderTool(api API, resolver *hierarchy.ParentResolver, cache *hierarchy.Cache) *DeleteFolderTool {
	return &DeleteFolderTool{api: api, resolver: resolver, cache: cache}
}

func (t *DeleteFolderTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_delete_folder",
		mcp.WithDescription("Delete a folder and its lists. Identify it by folderId or folderName (searched across all spaces)."),
		mcp.WithString("folderId", mcp.Description("Folder id (preferred when known)")),
		mcp.WithString("folderName", mcp.Description("Folder name, resolved if folderId is absent")),
	)
}

func (t *DeleteFolderTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folderID, err := t.resolver.Resolve(ctx, hierarchy.KindFolder, refFromRequest(req, "folder"))
	if err != nil {
		return toolError(err), nil
	}

	if err := t.api.DeleteFolder(ctx, folderID); err != nil {
		return toolError(err), nil
	}

	// Nested lists and views disappear with the folder; the delete response
	// carries no container info, so clear everything.
	t.cache.InvalidateAll()
	return mcp.NewToolResultText("folder " + folderID + " deleted"), nil
}
