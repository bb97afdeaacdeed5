package hierarchy

import (
	"context"
	"fmt"
)

// ParentRef is the explicit id-or-name pair every tool accepts for a
// container reference. An id always wins over a name; a zero ParentRef is a
// caller error (ErrMissingParent).
type ParentRef struct {
	ID   string
	Name string
}

// IsZero reports whether neither an id nor a name was supplied.
func (r ParentRef) IsZero() bool { return r.ID == "" && r.Name == "" }

// ParentResolver turns a container reference at any hierarchy level into a
// canonical identifier. It is the single chokepoint every tool that accepts
// an id/name pair goes through — entity CRUD code never re-implements
// lookup.
type ParentResolver struct {
	workspaceID string
	cache       *Cache
	names       *Resolver
}

// NewParentResolver creates a ParentResolver rooted at the configured
// workspace (team) id.
func NewParentResolver(workspaceID string, cache *Cache, names *Resolver) *ParentResolver {
	return &ParentResolver{workspaceID: workspaceID, cache: cache, names: names}
}

// WorkspaceID returns the fixed root workspace identifier.
func (p *ParentResolver) WorkspaceID() string { return p.workspaceID }

// Resolve returns the identifier for a container of the given kind.
//
// Rules, in order: the workspace level always resolves to the configured
// team id; a supplied id is returned unchanged (the remote system validates
// it on the subsequent call); otherwise the name is resolved in the scope
// appropriate to the kind. Spaces are looked up among the workspace's
// spaces; folders and lists are searched workspace-wide, because callers
// often don't know which space contains them — duplicate names across
// spaces surface as *AmbiguousError, never a silent pick.
func (p *ParentResolver) Resolve(ctx context.Context, kind Kind, ref ParentRef) (string, error) {
	if kind == KindWorkspace {
		return p.workspaceID, nil
	}
	if ref.ID != "" {
		return ref.ID, nil
	}
	if ref.Name == "" {
		return "", fmt.Errorf("%w: provide %sId or %sName", ErrMissingParent, kind, kind)
	}

	switch kind {
	case KindSpace:
		node, err := p.names.ResolveByName(ctx, SpacesOf(p.workspaceID), ref.Name)
		if err != nil {
			return "", err
		}
		return node.ID, nil

	case KindFolder:
		candidates, err := p.allFolders(ctx)
		if err != nil {
			return "", err
		}
		node, err := Match(candidates, KindFolder, ref.Name)
		if err != nil {
			return "", err
		}
		return node.ID, nil

	case KindList:
		candidates, err := p.allLists(ctx)
		if err != nil {
			return "", err
		}
		node, err := Match(candidates, KindList, ref.Name)
		if err != nil {
			return "", err
		}
		return node.ID, nil
	}

	return "", &InvalidScopeError{Kind: kind}
}

// FindByName resolves a named leaf entity (typically a view) among the
// children of one already-resolved container. Unlike folders and lists,
// leaves are not assumed unique workspace-wide, so the search never leaves
// the container.
func (p *ParentResolver) FindByName(ctx context.Context, parentKind Kind, parentID string, kind Kind, name string) (Node, error) {
	var (
		scope Scope
		err   error
	)
	switch kind {
	case KindView:
		scope, err = ViewsOf(parentKind, parentID)
	case KindList:
		scope, err = ListsOf(parentKind, parentID)
	case KindFolder:
		if parentKind != KindSpace {
			err = &InvalidScopeError{Kind: parentKind}
		} else {
			scope = FoldersOf(parentID)
		}
	case KindSpace:
		if parentKind != KindWorkspace {
			err = &InvalidScopeError{Kind: parentKind}
		} else {
			scope = SpacesOf(parentID)
		}
	default:
		err = &InvalidScopeError{Kind: kind}
	}
	if err != nil {
		return Node{}, err
	}
	return p.names.ResolveByName(ctx, scope, name)
}

// allFolders gathers every folder in the workspace, across all spaces.
// Matching runs over the combined set so the exact tier is evaluated
// globally before any case-insensitive fallback.
func (p *ParentResolver) allFolders(ctx context.Context) ([]Node, error) {
	spaces, err := p.cache.GetScope(ctx, SpacesOf(p.workspaceID))
	if err != nil {
		return nil, err
	}

	var folders []Node
	for _, space := range spaces.Children(p.workspaceID) {
		tree, err := p.cache.GetScope(ctx, FoldersOf(space.ID))
		if err != nil {
			return nil, err
		}
		folders = append(folders, tree.Children(space.ID)...)
	}
	return folders, nil
}

// allLists gathers every list in the workspace: the folderless lists of
// each space plus the lists of each folder.
func (p *ParentResolver) allLists(ctx context.Context) ([]Node, error) {
	folders, err := p.allFolders(ctx)
	if err != nil {
		return nil, err
	}
	spaces, err := p.cache.GetScope(ctx, SpacesOf(p.workspaceID))
	if err != nil {
		return nil, err
	}

	var lists []Node
	for _, space := range spaces.Children(p.workspaceID) {
		scope, err := ListsOf(KindSpace, space.ID)
		if err != nil {
			return nil, err
		}
		tree, err := p.cache.GetScope(ctx, scope)
		if err != nil {
			return nil, err
		}
		lists = append(lists, tree.Children(space.ID)...)
	}
	for _, folder := range folders {
		scope, err := ListsOf(KindFolder, folder.ID)
		if err != nil {
			return nil, err
		}
		tree, err := p.cache.GetScope(ctx, scope)
		if err != nil {
			return nil, err
		}
		lists = append(lists, tree.Children(folder.ID)...)
	}
	return lists, nil
}
