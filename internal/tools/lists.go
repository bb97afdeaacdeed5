package tools

import (
	"context"

	"github.com/ayyazzafar/clickup-mcp-server/internal/clickup"
	"github.com/ayyazzafar/clickup-mcp-server/internal/hierarchy"
	"github.com/mark3labs/mcp-go/mcp"
)

// listParent resolves the container a list tool operates on: a folder if a
// folder reference was given, otherwise a space. Exactly this precedence is
// documented on every list tool.
func listParent(ctx context.Context, resolver *hierarchy.ParentResolver, req mcp.CallToolRequest) (hierarchy.Kind, string, error) {
	if folderRef := refFromRequest(req, "folder"); !folderRef.IsZero() {
		id, err := resolver.Resolve(ctx, hierarchy.KindFolder, folderRef)
		return hierarchy.KindFolder, id, err
	}
	id, err := resolver.Resolve(ctx, hierarchy.KindSpace, refFromRequest(req, "space"))
	return hierarchy.KindSpace, id, err
}

// GetListsTool handles clickup_get_lists.
type GetListsTool struct {
	api      API
	resolver *hierarchy.ParentResolver
}

// NewGetListsTool creates the tool.
func NewGetListsTool(api API, resolver *hierarchy.ParentResolver) *GetListsTool {
	return &GetListsTool{api: api, resolver: resolver}
}

func (t *GetListsTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_get_lists",
		mcp.WithDescription(
			"List the lists of a container. Give folderId/folderName for a folder's lists, "+
				"or spaceId/spaceName for a space's folderless lists. A folder reference wins "+
				"when both are given.",
		),
		mcp.WithString("folderId", mcp.Description("Folder id")),
		mcp.WithString("folderName", mcp.Description("Folder name, searched across all spaces")),
		mcp.WithString("spaceId", mcp.Description("Space id")),
		mcp.WithString("spaceName", mcp.Description("Space name")),
	)
}

func (t *GetListsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, parentID, err := listParent(ctx, t.resolver, req)
	if err != nil {
		return toolError(err), nil
	}

	var lists []clickup.List
	if kind == hierarchy.KindFolder {
		lists, err = t.api.GetFolderLists(ctx, parentID)
	} else {
		lists, err = t.api.GetFolderlessLists(ctx, parentID)
	}
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(lists), nil
}

// CreateListTool handles clickup_create_list.
type CreateListTool struct {
	api      API
	resolver *hierarchy.ParentResolver
	cache    *hierarchy.Cache
}

// NewCreateListTool creates the tool.
func NewCreateListTool(api API, resolver *hierarchy.ParentResolver, cache *hierarchy.Cache) *CreateListTool {
	return &CreateListTool{api: api, resolver: resolver, cache: cache}
}

func (t *CreateListTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_create_list",
		mcp.WithDescription(
			"Create a list. Give folderId/folderName to nest it in a folder, or "+
				"spaceId/spaceName for a folderless list. A folder reference wins when both "+
				"are given.",
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the list to create"),
		),
		mcp.WithString("content", mcp.Description("List description")),
		mcp.WithString("folderId", mcp.Description("Folder id")),
		mcp.WithString("folderName", mcp.Description("Folder name, searched across all spaces")),
		mcp.WithString("spaceId", mcp.Description("Space id")),
		mcp.WithString("spaceName", mcp.Description("Space name")),
	)
}

func (t *CreateListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}

	kind, parentID, err := listParent(ctx, t.resolver, req)
	if err != nil {
		return toolError(err), nil
	}

	create := clickup.CreateListRequest{Name: name, Content: req.GetString("content", "")}
	var list clickup.List
	if kind == hierarchy.KindFolder {
		list, err = t.api.CreateListInFolder(ctx, parentID, create)
	} else {
		list, err = t.api.CreateListInSpace(ctx, parentID, create)
	}
	if err != nil {
		return toolError(err), nil
	}

	if scope, err := hierarchy.ListsOf(kind, parentID); err == nil {
		t.cache.Invalidate(scope)
	}
	return jsonResult(list), nil
}

// UpdateListTool handles clickup_update_list.
type UpdateListTool struct {
	api      API
	resolver *hierarchy.ParentResolver
	cache    *hierarchy.Cache
}

// NewUpdateListTool creates the tool.
func NewUpdateListTool(api API, resolver *hierarchy.ParentResolver, cache *hierarchy.Cache) *UpdateListTool {
	return &UpdateListTool{api: api, resolver: resolver, cache: cache}
}

func (t *UpdateListTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_update_list",
		mcp.WithDescription("Update a list. Identify it by listId or listName (searched across all spaces and folders)."),
		mcp.WithString("listId", mcp.Description("List id (preferred when known)")),
		mcp.WithString("listName", mcp.Description("List name, resolved if listId is absent")),
		mcp.WithString("name", mcp.Description("New name for the list")),
		mcp.WithString("content", mcp.Description("New description for the list")),
	)
}

func (t *UpdateListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	listID, err := t.resolver.Resolve(ctx, hierarchy.KindList, refFromRequest(req, "list"))
	if err != nil {
		return toolError(err), nil
	}

	list, err := t.api.UpdateList(ctx, listID, clickup.UpdateListRequest{
		Name:    optString(req, "name"),
		Content: optString(req, "content"),
	})
	if err != nil {
		return toolError(err), nil
	}

	// Invalidate the containing scope the response names: the folder's
	// lists when nested, otherwise the space's folderless lists.
	switch {
	case list.Folder != nil && list.Folder.ID != "":
		if scope, err := hierarchy.ListsOf(hierarchy.KindFolder, list.Folder.ID); err == nil {
			t.cache.Invalidate(scope)
		}
	case list.Space.ID != "":
		if scope, err := hierarchy.ListsOf(hierarchy.KindSpace, list.Space.ID); err == nil {
			t.cache.Invalidate(scope)
		}
	default:
		t.cache.InvalidateAll()
	}
	return jsonResult(list), nil
}

// DeleteListTool handles clickup_delete_list.
type DeleteListTool struct {
	api      API
	resolver *hierarchy.ParentResolver
	cache    *hierarchy.Cache
}

// NewDeleteListTool creates the tool.
func NewDeleteListTool(api API, resolver *hierarchy.ParentResolver, cache *hierarchy.Cache) *DeleteListTool {
	return &DeleteListTool{api: api, resolver: resolver, cache: cache}
}

func (t *DeleteListTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_delete_list",
		mcp.WithDescription("Delete a list and its tasks. Identify it by listId or listName (searched across all spaces and folders)."),
		mcp.WithString("listId", mcp.Description("List id (preferred when known)")),
		mcp.WithString("listName", mcp.Description("List name, resolved if listId is absent")),
	)
}

func (t *DeleteListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	listID, err := t.resolver.Resolve(ctx, hierarchy.KindList, refFromRequest(req, "list"))
	if err != nil {
		return toolError(err), nil
	}

	if err := t.api.DeleteList(ctx, listID); err != nil {
		return toolError(err), nil
	}

	// The delete response is empty, so the containing scope is unknown when
	// the list was referenced by id.
	t.cache.InvalidateAll()
	return mcp.NewToolResultText("list " + listID + " deleted"), nil
}
