// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates the HTTP client, the hierarchy
// cache and resolvers, and injects them into the tools. No business logic
// lives here, only wiring.
package server

import (
	"go.uber.org/zap"

	"github.com/ayyazzafar/clickup-mcp-server/internal/clickup"
	"github.com/ayyazzafar/clickup-mcp-server/internal/config"
	"github.com/ayyazzafar/clickup-mcp-server/internal/hierarchy"
	"github.com/ayyazzafar/clickup-mcp-server/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all ClickUp tools
// registered. The returned cleanup function releases the HTTP client's
// connections and must be called on shutdown (typically via defer).
func New(cfg config.Config, log *zap.Logger) (*server.MCPServer, func(), error) {
	client := clickup.New(cfg.APIURL, cfg.APIToken, log)
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Warn("closing clickup client", zap.Error(err))
		}
	}

	cache := hierarchy.NewCache(client, log)
	names := hierarchy.NewResolver(cache, log)
	resolver := hierarchy.NewParentResolver(cfg.TeamID, cache, names)

	s := server.NewMCPServer(
		"clickup-mcp-server",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	registerTools(s, client, resolver, cache)

	return s, cleanup, nil
}

func registerTools(s *server.MCPServer, api tools.API, resolver *hierarchy.ParentResolver, cache *hierarchy.Cache) {
	// --- Workspaces ---
	workspacesTool := tools.NewGetWorkspacesTool(api)
	s.AddTool(workspacesTool.Definition(), workspacesTool.Handle)

	// --- Spaces ---
	getSpaces := tools.NewGetSpacesTool(api, resolver)
	s.AddTool(getSpaces.Definition(), getSpaces.Handle)

	createSpace := tools.NewCreateSpaceTool(api, resolver, cache)
	s.AddTool(createSpace.Definition(), createSpace.Handle)

	updateSpace := tools.NewUpdateSpaceTool(api, resolver, cache)
	s.AddTool(updateSpace.Definition(), updateSpace.Handle)

	deleteSpace := tools.NewDeleteSpaceTool(api, resolver, cache)
	s.AddTool(deleteSpace.Definition(), deleteSpace.Handle)

	spaceTags := tools.NewGetSpaceTagsTool(api, resolver)
	s.AddTool(spaceTags.Definition(), spaceTags.Handle)

	// --- Folders ---
	getFolders := tools.NewGetFoldersTool(api, resolver)
	s.AddTool(getFolders.Definition(), getFolders.Handle)

	createFolder := tools.NewCreateFolderTool(api, resolver, cache)
	s.AddTool(createFolder.Definition(), createFolder.Handle)

	updateFolder := tools.NewUpdateFolderTool(api, resolver, cache)
	s.AddTool(updateFolder.Definition(), updateFolder.Handle)

	deleteFolder := tools.NewDeleteFolderTool(api, resolver, cache)
	s.AddTool(deleteFolder.Definition(), deleteFolder.Handle)

	// --- Lists ---
	getLists := tools.NewGetListsTool(api, resolver)
	s.AddTool(getLists.Definition(), getLists.Handle)

	createList := tools.NewCreateListTool(api, resolver, cache)
	s.AddTool(createList.Definition(), createList.Handle)

	updateList := tools.NewUpdateListTool(api, resolver, cache)
	s.AddTool(updateList.Definition(), updateList.Handle)

	deleteList := tools.NewDeleteListTool(api, resolver, cache)
	s.AddTool(deleteList.Definition(), deleteList.Handle)

	// --- Views ---
	getViews := tools.NewGetViewsTool(api, resolver)
	s.AddTool(getViews.Definition(), getViews.Handle)

	createView := tools.NewCreateViewTool(api, resolver, cache)
	s.AddTool(createView.Definition(), createView.Handle)

	updateView := tools.NewUpdateViewTool(api, resolver, cache)
	s.AddTool(updateView.Definition(), updateView.Handle)

	deleteView := tools.NewDeleteViewTool(api, resolver, cache)
	s.AddTool(deleteView.Definition(), deleteView.Handle)

	// --- Tasks ---
	getTasks := tools.NewGetTasksTool(api, resolver)
	s.AddTool(getTasks.Definition(), getTasks.Handle)

	getTask := tools.NewGetTaskTool(api)
	s.AddTool(getTask.Definition(), getTask.Handle)

	createTask := tools.NewCreateTaskTool(api, resolver)
	s.AddTool(createTask.Definition(), createTask.Handle)

	updateTask := tools.NewUpdateTaskTool(api)
	s.AddTool(updateTask.Definition(), updateTask.Handle)
}

// serverInstructions returns the system instructions that tell the AI
// how to use the ClickUp tools effectively.
func serverInstructions() string {
	return `You have access to a ClickUp MCP server that manages a workspace's
spaces, folders, lists, views, and tasks.

## Hierarchy
ClickUp organizes work as workspace → spaces → folders → lists → tasks.
Lists can also live directly under a space (folderless). Views can be
attached to the workspace, a space, a folder, or a list.

## Names versus ids
Every tool that targets a container accepts either an id or a name
(e.g. spaceId/spaceName, folderId/folderName, listId/listName). Prefer
ids when you have them: id lookups skip the name search entirely. When
only a name is available, pass the name and the server resolves it.

Name resolution rules:
- Matching is exact first, then case-insensitive. The two tiers never mix.
- Space names are matched within the workspace. Folder and list names are
  matched across the whole workspace, including folderless lists.
- If a name matches more than one container, the tool returns an error
  listing every candidate with its id. Pick the right one and retry with
  the explicit id. The server never guesses.
- If a name matches nothing, the tool says so. Check the spelling or list
  the parent's children first.

## Views
View tools take parentType (workspace, space, folder, or list) plus
parentId/parentName to pick the container. parentType defaults to
workspace. Update and delete accept viewId or viewName; a viewName is
looked up only within the chosen container.

## Caching
The server caches the workspace hierarchy per scope and refreshes a scope
after any mutation that touches it, so a container you just created is
immediately addressable by name. Tasks are never cached; task reads
always hit ClickUp.`
}
