package hierarchy

import "fmt"

// Scope names one cached subtree: the children of a single kind under a
// single parent container (e.g. the folders of space 123). Each scope is
// fetched, cached, and invalidated independently — there is no global tree.
//
// Scope is comparable and is used directly as a cache map key; Key renders
// the canonical string form ("space:123/folders") for logs and errors.
type Scope struct {
	ParentKind Kind
	ParentID   string
	Child      Kind
}

// Key returns the canonical string form of the scope.
func (s Scope) Key() string {
	return fmt.Sprintf("%s:%s/%s", s.ParentKind, s.ParentID, s.Child.plural())
}

// SpacesOf is the scope holding the spaces of a workspace.
func SpacesOf(workspaceID string) Scope {
	return Scope{ParentKind: KindWorkspace, ParentID: workspaceID, Child: KindSpace}
}

// FoldersOf is the scope holding the folders of a space.
func FoldersOf(spaceID string) Scope {
	return Scope{ParentKind: KindSpace, ParentID: spaceID, Child: KindFolder}
}

// ListsOf is the scope holding the lists of a space (folderless lists) or of
// a folder. Other parent kinds cannot contain lists.
func ListsOf(parent Kind, parentID string) (Scope, error) {
	switch parent {
	case KindSpace, KindFolder:
		return Scope{ParentKind: parent, ParentID: parentID, Child: KindList}, nil
	}
	return Scope{}, &InvalidScopeError{Kind: parent}
}

// ViewsOf is the scope holding the views of any container level. Views
// cannot contain views.
func ViewsOf(parent Kind, parentID string) (Scope, error) {
	switch parent {
	case KindWorkspace, KindSpace, KindFolder, KindList:
		return Scope{ParentKind: parent, ParentID: parentID, Child: KindView}, nil
	}
	return Scope{}, &InvalidScopeError{Kind: parent}
}
