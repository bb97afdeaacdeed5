package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetWorkspacesTool handles clickup_get_workspaces.
type GetWorkspacesTool struct {
	api API
}

// NewGetWorkspacesTool creates the tool.
func NewGetWorkspacesTool(api API) *GetWorkspacesTool {
	return &GetWorkspacesTool{api: api}
}

// Definition returns the MCP tool definition for registration.
func (t *GetWorkspacesTool) Definition() mcp.Tool {
	return mcp.NewTool("clickup_get_workspaces",
		mcp.WithDescription(
			"List the ClickUp workspaces (teams) the configured API token can access. "+
				"The server operates within one configured workspace; this tool is mainly "+
				"useful to discover workspace ids.",
		),
	)
}

// Handle processes the tool call.
func (t *GetWorkspacesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workspaces, err := t.api.GetWorkspaces(ctx)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(workspaces), nil
}
