package hierarchy

import (
	"context"
	"errors"
	"testing"
)

// workspaceFixture wires a fake fetcher with a small two-space workspace:
//
//	w1
//	├── space sEng "Eng"
//	│   ├── folder fEng "Sprint 23"
//	│   │   └── list lSprint "Sprint Work"
//	│   └── list lBacklog "Backlog"       (folderless)
//	└── space sDesign "Design"
//	    └── folder fDesign "Sprint 23"
func workspaceFixture() *fakeFetcher {
	f := newFakeFetcher()
	f.nodes[SpacesOf("w1")] = []Node{
		{ID: "sEng", Name: "Eng", Kind: KindSpace, ParentID: "w1"},
		{ID: "sDesign", Name: "Design", Kind: KindSpace, ParentID: "w1"},
	}
	f.nodes[FoldersOf("sEng")] = []Node{
		{ID: "fEng", Name: "Sprint 23", Kind: KindFolder, ParentID: "sEng"},
	}
	f.nodes[FoldersOf("sDesign")] = []Node{
		{ID: "fDesign", Name: "Sprint 23", Kind: KindFolder, ParentID: "sDesign"},
	}
	f.nodes[mustScope(ListsOf(KindSpace, "sEng"))] = []Node{
		{ID: "lBacklog", Name: "Backlog", Kind: KindList, ParentID: "sEng"},
	}
	f.nodes[mustScope(ListsOf(KindFolder, "fEng"))] = []Node{
		{ID: "lSprint", Name: "Sprint Work", Kind: KindList, ParentID: "fEng"},
	}
	// Design space has no folderless lists; the folder fDesign has none either.
	f.nodes[mustScope(ListsOf(KindSpace, "sDesign"))] = nil
	f.nodes[mustScope(ListsOf(KindFolder, "fDesign"))] = nil
	return f
}

func mustScope(s Scope, err error) Scope {
	if err != nil {
		panic(err)
	}
	return s
}

func newTestResolver(f *fakeFetcher) *ParentResolver {
	cache := NewCache(f, nil)
	return NewParentResolver("w1", cache, NewResolver(cache, nil))
}

// --- Resolve ---

func TestResolve_WorkspaceNeedsNoLookup(t *testing.T) {
	f := workspaceFixture()
	p := newTestResolver(f)

	id, err := p.Resolve(context.Background(), KindWorkspace, ParentRef{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id != "w1" {
		t.Errorf("id = %s, want w1", id)
	}
	if got := f.count(SpacesOf("w1")); got != 0 {
		t.Errorf("workspace resolution fetched %d times, want 0", got)
	}
}

func TestResolve_IDWinsWithoutValidation(t *testing.T) {
	f := workspaceFixture()
	p := newTestResolver(f)

	id, err := p.Resolve(context.Background(), KindSpace, ParentRef{ID: "does-not-exist", Name: "Eng"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id != "does-not-exist" {
		t.Errorf("id = %s, want the supplied id unchanged", id)
	}
	if got := f.count(SpacesOf("w1")); got != 0 {
		t.Errorf("id passthrough fetched %d times, want 0", got)
	}
}

func TestResolve_MissingParent(t *testing.T) {
	p := newTestResolver(workspaceFixture())

	_, err := p.Resolve(context.Background(), KindList, ParentRef{})
	if !errors.Is(err, ErrMissingParent) {
		t.Fatalf("error = %v, want ErrMissingParent", err)
	}
}

func TestResolve_SpaceByName(t *testing.T) {
	p := newTestResolver(workspaceFixture())

	id, err := p.Resolve(context.Background(), KindSpace, ParentRef{Name: "Design"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id != "sDesign" {
		t.Errorf("id = %s, want sDesign", id)
	}
}

func TestResolve_FolderDuplicateAcrossSpacesIsAmbiguous(t *testing.T) {
	p := newTestResolver(workspaceFixture())

	_, err := p.Resolve(context.Background(), KindFolder, ParentRef{Name: "Sprint 23"})
	var ambiguous *AmbiguousError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("error = %v, want *AmbiguousError", err)
	}
	if len(ambiguous.Candidates) != 2 {
		t.Fatalf("candidates = %d, want 2", len(ambiguous.Candidates))
	}
	got := map[string]bool{}
	for _, c := range ambiguous.Candidates {
		got[c.ID] = true
	}
	if !got["fEng"] || !got["fDesign"] {
		t.Errorf("candidates = %v, want fEng and fDesign", ambiguous.Candidates)
	}
}

func TestResolve_ListByNameSearchesWorkspaceWide(t *testing.T) {
	p := newTestResolver(workspaceFixture())

	// Folderless list attached directly to a space.
	id, err := p.Resolve(context.Background(), KindList, ParentRef{Name: "Backlog"})
	if err != nil {
		t.Fatalf("Resolve(Backlog): %v", err)
	}
	if id != "lBacklog" {
		t.Errorf("id = %s, want lBacklog", id)
	}

	// List nested in a folder.
	id, err = p.Resolve(context.Background(), KindList, ParentRef{Name: "Sprint Work"})
	if err != nil {
		t.Fatalf("Resolve(Sprint Work): %v", err)
	}
	if id != "lSprint" {
		t.Errorf("id = %s, want lSprint", id)
	}
}

func TestResolve_UnknownKind(t *testing.T) {
	p := newTestResolver(workspaceFixture())

	_, err := p.Resolve(context.Background(), Kind("milestone"), ParentRef{Name: "x"})
	var invalid *InvalidScopeError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *InvalidScopeError", err)
	}
}

func TestResolve_UpstreamFailurePropagates(t *testing.T) {
	f := workspaceFixture()
	f.errs[FoldersOf("sDesign")] = errors.New("502 bad gateway")
	p := newTestResolver(f)

	_, err := p.Resolve(context.Background(), KindFolder, ParentRef{Name: "Sprint 23"})
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
}

// --- FindByName ---

func TestFindByName_ViewScopedToContainer(t *testing.T) {
	f := workspaceFixture()
	engViews := mustScope(ViewsOf(KindSpace, "sEng"))
	designViews := mustScope(ViewsOf(KindSpace, "sDesign"))
	f.nodes[engViews] = []Node{
		{ID: "vBoard", Name: "Board", Kind: KindView, ParentID: "sEng"},
	}
	f.nodes[designViews] = []Node{
		{ID: "vBoard2", Name: "Board", Kind: KindView, ParentID: "sDesign"},
	}
	p := newTestResolver(f)

	// The same view name exists in both spaces, but lookup inside one
	// container never sees the other.
	node, err := p.FindByName(context.Background(), KindSpace, "sEng", KindView, "Board")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if node.ID != "vBoard" {
		t.Errorf("id = %s, want vBoard", node.ID)
	}
	if got := f.count(designViews); got != 0 {
		t.Errorf("sibling container fetched %d times, want 0", got)
	}
}

func TestFindByName_NotFound(t *testing.T) {
	f := workspaceFixture()
	f.nodes[mustScope(ViewsOf(KindList, "lBacklog"))] = nil
	p := newTestResolver(f)

	_, err := p.FindByName(context.Background(), KindList, "lBacklog", KindView, "Gantt")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
}

func TestFindByName_InvalidChildKind(t *testing.T) {
	p := newTestResolver(workspaceFixture())

	_, err := p.FindByName(context.Background(), KindView, "v1", KindView, "x")
	var invalid *InvalidScopeError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *InvalidScopeError", err)
	}
}

// Mutation followed by invalidation makes the new entity visible on the
// next lookup (no stale-cache miss).
func TestInvalidationAfterMutation_FreshLookup(t *testing.T) {
	f := workspaceFixture()
	views := mustScope(ViewsOf(KindSpace, "sEng"))
	f.nodes[views] = nil
	cache := NewCache(f, nil)
	p := NewParentResolver("w1", cache, NewResolver(cache, nil))

	ctx := context.Background()
	if _, err := p.FindByName(ctx, KindSpace, "sEng", KindView, "Burndown"); err == nil {
		t.Fatal("expected not-found before the view exists")
	}

	// Simulate create view + the invalidation a mutation handler performs.
	f.mu.Lock()
	f.nodes[views] = []Node{{ID: "vBurn", Name: "Burndown", Kind: KindView, ParentID: "sEng"}}
	f.mu.Unlock()
	cache.Invalidate(views)

	node, err := p.FindByName(ctx, KindSpace, "sEng", KindView, "Burndown")
	if err != nil {
		t.Fatalf("FindByName after invalidation: %v", err)
	}
	if node.ID != "vBurn" {
		t.Errorf("id = %s, want vBurn", node.ID)
	}
}
