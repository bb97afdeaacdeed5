package tools

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/ayyazzafar/clickup-mcp-server/internal/clickup"
	"github.com/ayyazzafar/clickup-mcp-server/internal/hierarchy"
	"github.com/mark3labs/mcp-go/mcp"
)

// fakeAPI is an in-memory ClickUp workspace. It implements both the tools'
// API interface and hierarchy.Fetcher, so the resolver and the handlers
// operate on the same mutable state — exactly like production, where both
// sides are the same HTTP client.
type fakeAPI struct {
	mu sync.Mutex

	teamID  string
	spaces  []clickup.Space
	folders map[string][]clickup.Folder // by space id
	lists   map[string][]clickup.List   // by space id (folderless) or folder id
	views   map[string][]clickup.View   // by container "<kind>/<id>"
	tasks   map[string][]clickup.Task   // by list id

	fetches map[hierarchy.Scope]int
	nextID  int
}

func newFakeAPI() *fakeAPI {
	f := &fakeAPI{
		teamID:  "team1",
		folders: make(map[string][]clickup.Folder),
		lists:   make(map[string][]clickup.List),
		views:   make(map[string][]clickup.View),
		tasks:   make(map[string][]clickup.Task),
		fetches: make(map[hierarchy.Scope]int),
		nextID:  100,
	}
	// Two spaces; "Sprint 23" folders in both; a folderless "Backlog" list
	// in Eng.
	f.spaces = []clickup.Space{
		{ID: "sEng", Name: "Eng"},
		{ID: "sDesign", Name: "Design"},
	}
	f.folders["sEng"] = []clickup.Folder{
		{ID: "fEng", Name: "Sprint 23", Space: clickup.ContainerRef{ID: "sEng"}},
	}
	f.folders["sDesign"] = []clickup.Folder{
		{ID: "fDesign", Name: "Sprint 23", Space: clickup.ContainerRef{ID: "sDesign"}},
	}
	f.lists["sEng"] = []clickup.List{
		{ID: "lBacklog", Name: "Backlog", Space: clickup.ContainerRef{ID: "sEng"}},
	}
	return f
}

func (f *fakeAPI) genID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s%d", prefix, f.nextID)
}

// --- hierarchy.Fetcher ---

func (f *fakeAPI) FetchScope(_ context.Context, scope hierarchy.Scope) ([]hierarchy.Node, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches[scope]++

	var nodes []hierarchy.Node
	switch scope.Child {
	case hierarchy.KindSpace:
		for _, s := range f.spaces {
			nodes = append(nodes, hierarchy.Node{ID: s.ID, Name: s.Name, Kind: hierarchy.KindSpace, ParentID: scope.ParentID})
		}
	case hierarchy.KindFolder:
		for _, fo := range f.folders[scope.ParentID] {
			nodes = append(nodes, hierarchy.Node{ID: fo.ID, Name: fo.Name, Kind: hierarchy.KindFolder, ParentID: scope.ParentID})
		}
	case hierarchy.KindList:
		for _, l := range f.lists[scope.ParentID] {
			nodes = append(nodes, hierarchy.Node{ID: l.ID, Name: l.Name, Kind: hierarchy.KindList, ParentID: scope.ParentID})
		}
	case hierarchy.KindView:
		key := string(scope.ParentKind) + "/" + scope.ParentID
		for _, v := range f.views[key] {
			nodes = append(nodes, hierarchy.Node{ID: v.ID, Name: v.Name, Kind: hierarchy.KindView, ParentID: scope.ParentID})
		}
	}
	return nodes, nil
}

func (f *fakeAPI) fetchCount(scope hierarchy.Scope) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches[scope]
}

// --- API ---

func (f *fakeAPI) GetWorkspaces(context.Context) ([]clickup.Workspace, error) {
	return []clickup.Workspace{{ID: f.teamID, Name: "Acme"}}, nil
}

func (f *fakeAPI) GetSpaces(context.Context, string) ([]clickup.Space, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]clickup.Space(nil), f.spaces...), nil
}

func (f *fakeAPI) CreateSpace(_ context.Context, _ string, req clickup.CreateSpaceRequest) (clickup.Space, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := clickup.Space{ID: f.genID("s"), Name: req.Name, MultipleAssignees: req.MultipleAssignees}
	f.spaces = append(f.spaces, s)
	return s, nil
}

func (f *fakeAPI) UpdateSpace(_ context.Context, spaceID string, req clickup.UpdateSpaceRequest) (clickup.Space, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.spaces {
		if s.ID == spaceID {
			if req.Name != nil {
				f.spaces[i].Name = *req.Name
			}
			if req.Archived != nil {
				f.spaces[i].Archived = *req.Archived
			}
			return f.spaces[i], nil
		}
	}
	return clickup.Space{}, &clickup.APIError{StatusCode: 404, Message: "Space not found"}
}

func (f *fakeAPI) DeleteSpace(_ context.Context, spaceID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.spaces {
		if s.ID == spaceID {
			f.spaces = append(f.spaces[:i], f.spaces[i+1:]...)
			return nil
		}
	}
	return &clickup.APIError{StatusCode: 404, Message: "Space not found"}
}

func (f *fakeAPI) GetSpaceTags(context.Context, string) ([]clickup.Tag, error) {
	return []clickup.Tag{{Name: "urgent"}}, nil
}

func (f *fakeAPI) GetFolders(_ context.Context, spaceID string) ([]clickup.Folder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]clickup.Folder(nil), f.folders[spaceID]...), nil
}

func (f *fakeAPI) CreateFolder(_ context.Context, spaceID, name string) (clickup.Folder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	folder := clickup.Folder{ID: f.genID("f"), Name: name, Space: clickup.ContainerRef{ID: spaceID}}
	f.folders[spaceID] = append(f.folders[spaceID], folder)
	return folder, nil
}

func (f *fakeAPI) UpdateFolder(_ context.Context, folderID, name string) (clickup.Folder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for spaceID, folders := range f.folders {
		for i, fo := range folders {
			if fo.ID == folderID {
				f.folders[spaceID][i].Name = name
				return f.folders[spaceID][i], nil
			}
		}
	}
	return clickup.Folder{}, &clickup.APIError{StatusCode: 404, Message: "Folder not found"}
}

func (f *fakeAPI) DeleteFolder(_ context.Context, folderID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for spaceID, folders := range f.folders {
		for i, fo := range folders {
			if fo.ID == folderID {
				f.folders[spaceID] = append(folders[:i], folders[i+1:]...)
				return nil
			}
		}
	}
	return &clickup.APIError{StatusCode: 404, Message: "Folder not found"}
}

func (f *fakeAPI) GetFolderLists(_ context.Context, folderID string) ([]clickup.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]clickup.List(nil), f.lists[folderID]...), nil
}

func (f *fakeAPI) GetFolderlessLists(_ context.Context, spaceID string) ([]clickup.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]clickup.List(nil), f.lists[spaceID]...), nil
}

func (f *fakeAPI) CreateListInSpace(_ context.Context, spaceID string, req clickup.CreateListRequest) (clickup.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := clickup.List{ID: f.genID("l"), Name: req.Name, Content: req.Content, Space: clickup.ContainerRef{ID: spaceID}}
	f.lists[spaceID] = append(f.lists[spaceID], list)
	return list, nil
}

func (f *fakeAPI) CreateListInFolder(_ context.Context, folderID string, req clickup.CreateListRequest) (clickup.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := clickup.List{ID: f.genID("l"), Name: req.Name, Content: req.Content, Folder: &clickup.ContainerRef{ID: folderID}}
	f.lists[folderID] = append(f.lists[folderID], list)
	return list, nil
}

func (f *fakeAPI) UpdateList(_ context.Context, listID string, req clickup.UpdateListRequest) (clickup.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, lists := range f.lists {
		for i, l := range lists {
			if l.ID == listID {
				if req.Name != nil {
					f.lists[key][i].Name = *req.Name
				}
				return f.lists[key][i], nil
			}
		}
	}
	return clickup.List{}, &clickup.APIError{StatusCode: 404, Message: "List not found"}
}

func (f *fakeAPI) DeleteList(_ context.Context, listID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, lists := range f.lists {
		for i, l := range lists {
			if l.ID == listID {
				f.lists[key] = append(lists[:i], lists[i+1:]...)
				return nil
			}
		}
	}
	return &clickup.APIError{StatusCode: 404, Message: "List not found"}
}

func (f *fakeAPI) GetViews(_ context.Context, parentKind, parentID string) ([]clickup.View, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]clickup.View(nil), f.views[parentKind+"/"+parentID]...), nil
}

// viewParentCode is ClickUp's numeric encoding for view containers.
func viewParentCode(parentKind string) int {
	switch parentKind {
	case "workspace":
		return 7
	case "space":
		return 4
	case "folder":
		return 5
	case "list":
		return 6
	}
	return 0
}

func (f *fakeAPI) CreateView(_ context.Context, parentKind, parentID string, req clickup.CreateViewRequest) (clickup.View, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := clickup.View{
		ID:     f.genID("v"),
		Name:   req.Name,
		Type:   req.Type,
		Parent: clickup.ViewParent{ID: parentID, Type: viewParentCode(parentKind)},
	}
	key := parentKind + "/" + parentID
	f.views[key] = append(f.views[key], v)
	return v, nil
}

func (f *fakeAPI) UpdateView(_ context.Context, viewID string, req clickup.UpdateViewRequest) (clickup.View, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, views := range f.views {
		for i, v := range views {
			if v.ID == viewID {
				if req.Name != nil {
					f.views[key][i].Name = *req.Name
				}
				return f.views[key][i], nil
			}
		}
	}
	return clickup.View{}, &clickup.APIError{StatusCode: 404, Message: "View not found"}
}

func (f *fakeAPI) DeleteView(_ context.Context, viewID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, views := range f.views {
		for i, v := range views {
			if v.ID == viewID {
				f.views[key] = append(views[:i], views[i+1:]...)
				return nil
			}
		}
	}
	return &clickup.APIError{StatusCode: 404, Message: "View not found"}
}

func (f *fakeAPI) GetTasks(_ context.Context, listID string, _ clickup.GetTasksOptions) ([]clickup.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]clickup.Task(nil), f.tasks[listID]...), nil
}

func (f *fakeAPI) GetTask(_ context.Context, taskID string) (clickup.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, tasks := range f.tasks {
		for _, task := range tasks {
			if task.ID == taskID {
				return task, nil
			}
		}
	}
	return clickup.Task{}, &clickup.APIError{StatusCode: 404, Message: "Task not found"}
}

func (f *fakeAPI) CreateTask(_ context.Context, listID string, req clickup.CreateTaskRequest) (clickup.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task := clickup.Task{ID: f.genID("t"), Name: req.Name, Description: req.Description}
	f.tasks[listID] = append(f.tasks[listID], task)
	return task, nil
}

func (f *fakeAPI) UpdateTask(_ context.Context, taskID string, req clickup.UpdateTaskRequest) (clickup.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for listID, tasks := range f.tasks {
		for i, task := range tasks {
			if task.ID == taskID {
				if req.Name != nil {
					f.tasks[listID][i].Name = *req.Name
				}
				return f.tasks[listID][i], nil
			}
		}
	}
	return clickup.Task{}, &clickup.APIError{StatusCode: 404, Message: "Task not found"}
}

// --- Test helpers ---

type harness struct {
	api      *fakeAPI
	cache    *hierarchy.Cache
	resolver *hierarchy.ParentResolver
}

func newHarness() *harness {
	api := newFakeAPI()
	cache := hierarchy.NewCache(api, nil)
	resolver := hierarchy.NewParentResolver(api.teamID, cache, hierarchy.NewResolver(cache, nil))
	return &harness{api: api, cache: cache, resolver: resolver}
}

func newRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func isErrorResult(result *mcp.CallToolResult) bool {
	return result != nil && result.IsError
}

// getResultText extracts the text content from a CallToolResult.
func getResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// --- Spaces ---

func TestUpdateSpace_ByName(t *testing.T) {
	h := newHarness()
	tool := NewUpdateSpaceTool(h.api, h.resolver, h.cache)

	req := newRequest(map[string]any{"spaceName": "Eng", "name": "Engineering"})
	result, err := tool.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got: %s", getResultText(result))
	}
	if !strings.Contains(getResultText(result), "Engineering") {
		t.Errorf("result should contain the new name, got: %s", getResultText(result))
	}
}

func TestUpdateSpace_RenameVisibleAfterInvalidation(t *testing.T) {
	h := newHarness()
	tool := NewUpdateSpaceTool(h.api, h.resolver, h.cache)

	// Warm the spaces scope, then rename through the tool.
	if _, err := h.resolver.Resolve(context.Background(), hierarchy.KindSpace, hierarchy.ParentRef{Name: "Eng"}); err != nil {
		t.Fatalf("warm resolve: %v", err)
	}

	req := newRequest(map[string]any{"spaceName": "Eng", "name": "Engineering"})
	if result, err := tool.Handle(context.Background(), req); err != nil || isErrorResult(result) {
		t.Fatalf("rename failed: %v / %s", err, getResultText(result))
	}

	// The old name no longer resolves; the new one does.
	if _, err := h.resolver.Resolve(context.Background(), hierarchy.KindSpace, hierarchy.ParentRef{Name: "Eng"}); err == nil {
		t.Error("old name still resolves after rename + invalidation")
	}
	id, err := h.resolver.Resolve(context.Background(), hierarchy.KindSpace, hierarchy.ParentRef{Name: "Engineering"})
	if err != nil {
		t.Fatalf("new name should resolve: %v", err)
	}
	if id != "sEng" {
		t.Errorf("id = %s, want sEng", id)
	}

	// One fetch to warm, one after the tool invalidated the scope.
	if got := h.api.fetchCount(hierarchy.SpacesOf(h.api.teamID)); got != 2 {
		t.Errorf("spaces scope fetched %d times, want 2", got)
	}
}

func TestDeleteSpace_MissingRef(t *testing.T) {
	h := newHarness()
	tool := NewDeleteSpaceTool(h.api, h.resolver, h.cache)

	result, err := tool.Handle(context.Background(), newRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("expected a tool error for a missing spaceId/spaceName pair")
	}
	if !strings.Contains(getResultText(result), "spaceId or spaceName") {
		t.Errorf("error should name the parameter pair, got: %s", getResultText(result))
	}
}

// --- Folders ---

func TestUpdateFolder_AmbiguousNameListsCandidates(t *testing.T) {
	h := newHarness()
	tool := NewUpdateFolderTool(h.api, h.resolver, h.cache)

	req := newRequest(map[string]any{"folderName": "Sprint 23", "name": "Sprint 24"})
	result, err := tool.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("expected a tool error for an ambiguous folder name")
	}
	text := getResultText(result)
	if !strings.Contains(text, "fEng") || !strings.Contains(text, "fDesign") {
		t.Errorf("ambiguous error should list both candidate ids, got: %s", text)
	}
}

func TestCreateFolder_InvalidatesSpaceFolders(t *testing.T) {
	h := newHarness()
	tool := NewCreateFolderTool(h.api, h.resolver, h.cache)

	ctx := context.Background()
	// Warm the folders scope via a by-name folder resolution.
	if _, err := h.resolver.Resolve(ctx, hierarchy.KindFolder, hierarchy.ParentRef{Name: "nope"}); err == nil {
		t.Fatal("expected not-found for a folder that does not exist yet")
	}

	req := newRequest(map[string]any{"name": "Roadmaps", "spaceName": "Design"})
	result, err := tool.Handle(ctx, req)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("create failed: %s", getResultText(result))
	}

	// The fresh folder resolves by name without any manual cache poke.
	if _, err := h.resolver.Resolve(ctx, hierarchy.KindFolder, hierarchy.ParentRef{Name: "Roadmaps"}); err != nil {
		t.Errorf("new folder should resolve after invalidation: %v", err)
	}
}

// --- Lists ---

func TestCreateList_FolderReferenceWins(t *testing.T) {
	h := newHarness()
	tool := NewCreateListTool(h.api, h.resolver, h.cache)

	req := newRequest(map[string]any{
		"name":      "Q4 Work",
		"folderId":  "fEng",
		"spaceName": "Design",
	})
	result, err := tool.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("create failed: %s", getResultText(result))
	}

	h.api.mu.Lock()
	defer h.api.mu.Unlock()
	if len(h.api.lists["fEng"]) != 1 {
		t.Error("list should be created in the folder, not the space")
	}
	if len(h.api.lists["sDesign"]) != 0 {
		t.Error("space reference should be ignored when a folder is given")
	}
}

func TestGetTasks_ByListName(t *testing.T) {
	h := newHarness()
	h.api.tasks["lBacklog"] = []clickup.Task{{ID: "t1", Name: "Fix login"}}
	tool := NewGetTasksTool(h.api, h.resolver)

	req := newRequest(map[string]any{"listName": "Backlog"})
	result, err := tool.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got: %s", getResultText(result))
	}
	if !strings.Contains(getResultText(result), "Fix login") {
		t.Errorf("result should contain the task, got: %s", getResultText(result))
	}
}

// --- Views ---

func TestCreateView_ThenFindByName(t *testing.T) {
	h := newHarness()
	create := NewCreateViewTool(h.api, h.resolver, h.cache)

	ctx := context.Background()
	req := newRequest(map[string]any{
		"name":       "Burndown",
		"type":       "board",
		"parentType": "space",
		"parentName": "Eng",
	})
	result, err := create.Handle(ctx, req)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("create failed: %s", getResultText(result))
	}

	node, err := h.resolver.FindByName(ctx, hierarchy.KindSpace, "sEng", hierarchy.KindView, "Burndown")
	if err != nil {
		t.Fatalf("FindByName after create+invalidate: %v", err)
	}
	if node.Name != "Burndown" {
		t.Errorf("node = %+v", node)
	}
}

func TestDeleteView_ByNameWithinContainer(t *testing.T) {
	h := newHarness()
	h.api.views["space/sEng"] = []clickup.View{{ID: "v1", Name: "Board", Type: "board"}}
	h.api.views["space/sDesign"] = []clickup.View{{ID: "v2", Name: "Board", Type: "board"}}
	tool := NewDeleteViewTool(h.api, h.resolver, h.cache)

	req := newRequest(map[string]any{
		"viewName":   "Board",
		"parentType": "space",
		"parentName": "Eng",
	})
	result, err := tool.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("delete failed: %s", getResultText(result))
	}

	h.api.mu.Lock()
	defer h.api.mu.Unlock()
	if len(h.api.views["space/sEng"]) != 0 {
		t.Error("view in the Eng space should be deleted")
	}
	if len(h.api.views["space/sDesign"]) != 1 {
		t.Error("the same-named view in Design must be untouched")
	}
}

func TestUpdateView_ByIDInvalidatesRealContainer(t *testing.T) {
	h := newHarness()
	h.api.views["space/sEng"] = []clickup.View{
		{ID: "v1", Name: "Board", Type: "board", Parent: clickup.ViewParent{ID: "sEng", Type: 4}},
	}
	tool := NewUpdateViewTool(h.api, h.resolver, h.cache)

	ctx := context.Background()
	// Warm the Eng space's views scope.
	if _, err := h.resolver.FindByName(ctx, hierarchy.KindSpace, "sEng", hierarchy.KindView, "Board"); err != nil {
		t.Fatalf("warm FindByName: %v", err)
	}

	// Rename by id alone — no container params. The response parent still
	// identifies the space, so its views scope must not stay stale.
	req := newRequest(map[string]any{"viewId": "v1", "name": "Sprint Board"})
	if result, err := tool.Handle(ctx, req); err != nil || isErrorResult(result) {
		t.Fatalf("rename failed: %v / %s", err, getResultText(result))
	}

	if _, err := h.resolver.FindByName(ctx, hierarchy.KindSpace, "sEng", hierarchy.KindView, "Board"); err == nil {
		t.Error("old view name still resolves after rename")
	}
	node, err := h.resolver.FindByName(ctx, hierarchy.KindSpace, "sEng", hierarchy.KindView, "Sprint Board")
	if err != nil {
		t.Fatalf("new view name should resolve: %v", err)
	}
	if node.ID != "v1" {
		t.Errorf("id = %s, want v1", node.ID)
	}
}

func TestDeleteView_ByIDWithoutContainerClearsCache(t *testing.T) {
	h := newHarness()
	h.api.views["space/sEng"] = []clickup.View{
		{ID: "v1", Name: "Board", Type: "board", Parent: clickup.ViewParent{ID: "sEng", Type: 4}},
	}
	tool := NewDeleteViewTool(h.api, h.resolver, h.cache)

	ctx := context.Background()
	if _, err := h.resolver.FindByName(ctx, hierarchy.KindSpace, "sEng", hierarchy.KindView, "Board"); err != nil {
		t.Fatalf("warm FindByName: %v", err)
	}

	// Delete by id alone. The response body is empty, so the tool cannot
	// name the container — it must clear the cache wholesale.
	req := newRequest(map[string]any{"viewId": "v1"})
	if result, err := tool.Handle(ctx, req); err != nil || isErrorResult(result) {
		t.Fatalf("delete failed: %v / %s", err, getResultText(result))
	}

	if _, err := h.resolver.FindByName(ctx, hierarchy.KindSpace, "sEng", hierarchy.KindView, "Board"); err == nil {
		t.Error("deleted view still resolves from a stale views scope")
	}
	scope, _ := hierarchy.ViewsOf(hierarchy.KindSpace, "sEng")
	if got := h.api.fetchCount(scope); got != 2 {
		t.Errorf("views scope fetched %d times, want 2 (warm + post-delete)", got)
	}
}

func TestGetViews_InvalidParentType(t *testing.T) {
	h := newHarness()
	tool := NewGetViewsTool(h.api, h.resolver)

	req := newRequest(map[string]any{"parentType": "view"})
	result, err := tool.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("expected a tool error for an invalid parentType")
	}
}

// --- Tasks ---

func TestCreateTask_ByListName(t *testing.T) {
	h := newHarness()
	tool := NewCreateTaskTool(h.api, h.resolver)

	req := newRequest(map[string]any{
		"name":     "Ship v2",
		"listName": "Backlog",
		"priority": float64(2),
	})
	result, err := tool.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("create failed: %s", getResultText(result))
	}

	h.api.mu.Lock()
	defer h.api.mu.Unlock()
	if len(h.api.tasks["lBacklog"]) != 1 || h.api.tasks["lBacklog"][0].Name != "Ship v2" {
		t.Errorf("tasks = %+v", h.api.tasks["lBacklog"])
	}
}

func TestUpdateTask_RequiresID(t *testing.T) {
	h := newHarness()
	tool := NewUpdateTaskTool(h.api)

	result, err := tool.Handle(context.Background(), newRequest(map[string]any{"name": "x"}))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("expected a tool error when taskId is missing")
	}
}
