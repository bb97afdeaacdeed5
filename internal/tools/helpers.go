// Package tools implements the MCP tool handlers for the ClickUp workspace.
//
// Each tool is a struct holding its dependencies (the API slice it calls and
// the shared hierarchy resolver/cache), with Definition() returning the
// mcp.Tool schema and Handle() processing the call.
//
// Conventions shared by every tool:
//   - Container references are always an id/name parameter pair
//     (spaceId/spaceName, ...); ids win and are passed through unvalidated,
//     names go through hierarchy.ParentResolver — no tool re-implements
//     lookup.
//   - Resolution failures (not found, ambiguous, missing pair) are user
//     errors returned via mcp.NewToolResultError; transport and API
//     failures are too, since the caller is an AI that should see them.
//   - Every successful mutation invalidates the affected cache scopes
//     before returning, so the next resolution observes fresh state.
package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ayyazzafar/clickup-mcp-server/internal/hierarchy"
	"github.com/mark3labs/mcp-go/mcp"
)

// refFromRequest reads the id/name parameter pair for an entity, e.g.
// refFromRequest(req, "space") reads spaceId and spaceName.
func refFromRequest(req mcp.CallToolRequest, entity string) hierarchy.ParentRef {
	return hierarchy.ParentRef{
		ID:   req.GetString(entity+"Id", ""),
		Name: req.GetString(entity+"Name", ""),
	}
}

// parseContainerKind maps a parentType parameter onto a hierarchy level.
func parseContainerKind(s string) (hierarchy.Kind, error) {
	kind := hierarchy.Kind(s)
	switch kind {
	case hierarchy.KindWorkspace, hierarchy.KindSpace, hierarchy.KindFolder, hierarchy.KindList:
		return kind, nil
	}
	return "", &hierarchy.InvalidScopeError{Kind: kind}
}

// jsonResult renders v as an indented JSON text result.
func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding response: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

// toolError renders a resolution or API failure as a tool error the caller
// can act on. Ambiguous matches list every candidate with its id so the
// caller can re-issue the request by id.
func toolError(err error) *mcp.CallToolResult {
	var ambiguous *hierarchy.AmbiguousError
	if errors.As(err, &ambiguous) {
		var b strings.Builder
		fmt.Fprintf(&b, "%s name %q matches %d entities — retry with an explicit id:\n",
			ambiguous.Kind, ambiguous.Name, len(ambiguous.Candidates))
		for _, c := range ambiguous.Candidates {
			fmt.Fprintf(&b, "  - %q (id: %s)\n", c.Name, c.ID)
		}
		return mcp.NewToolResultError(b.String())
	}

	// Not-found, missing-parent, and API errors all carry an actionable
	// message as-is.
	return mcp.NewToolResultError(err.Error())
}

// optString returns a pointer to the string parameter, or nil if absent.
func optString(req mcp.CallToolRequest, key string) *string {
	if v, ok := req.GetArguments()[key].(string); ok {
		return &v
	}
	return nil
}

// optBool returns a pointer to the bool parameter, or nil if absent.
func optBool(req mcp.CallToolRequest, key string) *bool {
	if v, ok := req.GetArguments()[key].(bool); ok {
		return &v
	}
	return nil
}

// optInt returns a pointer to the integer parameter, or nil if absent
// (JSON numbers arrive as float64).
func optInt(req mcp.CallToolRequest, key string) *int {
	if v, ok := req.GetArguments()[key].(float64); ok {
		i := int(v)
		return &i
	}
	return nil
}

// optInt64 is optInt for epoch-millisecond parameters.
func optInt64(req mcp.CallToolRequest, key string) *int64 {
	if v, ok := req.GetArguments()[key].(float64); ok {
		i := int64(v)
		return &i
	}
	return nil
}
