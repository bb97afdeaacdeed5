package clickup

import (
	"context"

	"github.com/ayyazzafar/clickup-mcp-server/internal/hierarchy"
)

// FetchScope implements hierarchy.Fetcher: it maps a cache scope onto the
// API call that lists that scope's children and flattens the result into
// hierarchy nodes. Only identifying fields (id, name, parent) cross this
// boundary — the full entity payloads stay in the CRUD layer.
func (c *Client) FetchScope(ctx context.Context, scope hierarchy.Scope) ([]hierarchy.Node, error) {
	switch scope.Child {
	case hierarchy.KindSpace:
		spaces, err := c.GetSpaces(ctx, scope.ParentID)
		if err != nil {
			return nil, err
		}
		nodes := make([]hierarchy.Node, len(spaces))
		for i, s := range spaces {
			nodes[i] = hierarchy.Node{ID: s.ID, Name: s.Name, Kind: hierarchy.KindSpace, ParentID: scope.ParentID}
		}
		return nodes, nil

	case hierarchy.KindFolder:
		folders, err := c.GetFolders(ctx, scope.ParentID)
		if err != nil {
			return nil, err
		}
		nodes := make([]hierarchy.Node, len(folders))
		for i, f := range folders {
			nodes[i] = hierarchy.Node{ID: f.ID, Name: f.Name, Kind: hierarchy.KindFolder, ParentID: scope.ParentID}
		}
		return nodes, nil

	case hierarchy.KindList:
		var (
			lists []List
			err   error
		)
		if scope.ParentKind == hierarchy.KindSpace {
			lists, err = c.GetFolderlessLists(ctx, scope.ParentID)
		} else {
			lists, err = c.GetFolderLists(ctx, scope.ParentID)
		}
		if err != nil {
			return nil, err
		}
		nodes := make([]hierarchy.Node, len(lists))
		for i, l := range lists {
			nodes[i] = hierarchy.Node{ID: l.ID, Name: l.Name, Kind: hierarchy.KindList, ParentID: scope.ParentID}
		}
		return nodes, nil

	case hierarchy.KindView:
		views, err := c.GetViews(ctx, string(scope.ParentKind), scope.ParentID)
		if err != nil {
			return nil, err
		}
		nodes := make([]hierarchy.Node, len(views))
		for i, v := range views {
			nodes[i] = hierarchy.Node{ID: v.ID, Name: v.Name, Kind: hierarchy.KindView, ParentID: scope.ParentID}
		}
		return nodes, nil
	}

	return nil, &hierarchy.InvalidScopeError{Kind: scope.Child}
}
