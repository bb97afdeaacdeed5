package clickup

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"resty.dev/v3"
)

// DefaultBaseURL is the ClickUp API v2 endpoint.
const DefaultBaseURL = "https://api.clickup.com/api/v2"

const requestTimeout = 30 * time.Second

// Client talks to the ClickUp API. One instance is shared by all tool
// invocations; it is safe for concurrent use.
type Client struct {
	http *resty.Client
	log  *zap.Logger
}

// New creates a Client authenticating with the given personal API token.
// baseURL is overridable for tests; pass "" for the production API.
func New(baseURL, token string, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	httpc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Authorization", token).
		SetHeader("Content-Type", "application/json").
		SetTimeout(requestTimeout)
	return &Client{http: httpc, log: log}
}

// Close releases the underlying transport.
func (c *Client) Close() error { return c.http.Close() }

// do executes one API call, decoding a 2xx body into out (if non-nil) and a
// non-2xx body into an *APIError. Transport errors are wrapped as-is.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var apiErr apiErrorBody
	req := c.http.R().
		SetContext(ctx).
		SetError(&apiErr)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	c.log.Debug("clickup request", zap.String("method", method), zap.String("path", path))

	res, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if res.IsError() {
		e := &APIError{StatusCode: res.StatusCode(), Code: apiErr.ECode, Message: apiErr.Err}
		if e.Message == "" {
			e.Message = res.Status()
		}
		c.log.Warn("clickup api error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", res.StatusCode()),
			zap.String("ecode", apiErr.ECode))
		return e
	}
	return nil
}

// --- Workspaces ---

// GetWorkspaces lists the teams the token is authorized for.
func (c *Client) GetWorkspaces(ctx context.Context) ([]Workspace, error) {
	var out struct {
		Teams []Workspace `json:"teams"`
	}
	if err := c.do(ctx, http.MethodGet, "/team", nil, &out); err != nil {
		return nil, err
	}
	return out.Teams, nil
}

// --- Spaces ---

// GetSpaces lists the spaces of a workspace.
func (c *Client) GetSpaces(ctx context.Context, teamID string) ([]Space, error) {
	var out struct {
		Spaces []Space `json:"spaces"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/team/%s/space", teamID), nil, &out); err != nil {
		return nil, err
	}
	return out.Spaces, nil
}

// CreateSpace creates a space in a workspace.
func (c *Client) CreateSpace(ctx context.Context, teamID string, req CreateSpaceRequest) (Space, error) {
	var out Space
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/team/%s/space", teamID), req, &out)
	return out, err
}

// UpdateSpace updates a space.
func (c *Client) UpdateSpace(ctx context.Context, spaceID string, req UpdateSpaceRequest) (Space, error) {
	var out Space
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/space/%s", spaceID), req, &out)
	return out, err
}

// DeleteSpace deletes a space and everything nested in it.
func (c *Client) DeleteSpace(ctx context.Context, spaceID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/space/%s", spaceID), nil, nil)
}

// GetSpaceTags lists the tags configured on a space.
func (c *Client) GetSpaceTags(ctx context.Context, spaceID string) ([]Tag, error) {
	var out struct {
		Tags []Tag `json:"tags"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/space/%s/tag", spaceID), nil, &out); err != nil {
		return nil, err
	}
	return out.Tags, nil
}

// --- Folders ---

// GetFolders lists the folders of a space.
func (c *Client) GetFolders(ctx context.Context, spaceID string) ([]Folder, error) {
	var out struct {
		Folders []Folder `json:"folders"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/space/%s/folder", spaceID), nil, &out); err != nil {
		return nil, err
	}
	return out.Folders, nil
}

// CreateFolder creates a folder in a space.
func (c *Client) CreateFolder(ctx context.Context, spaceID, name string) (Folder, error) {
	var out Folder
	body := map[string]string{"name": name}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/space/%s/folder", spaceID), body, &out)
	return out, err
}

// UpdateFolder renames a folder.
func (c *Client) UpdateFolder(ctx context.Context, folderID, name string) (Folder, error) {
	var out Folder
	body := map[string]string{"name": name}
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/folder/%s", folderID), body, &out)
	return out, err
}

// DeleteFolder deletes a folder and its lists.
func (c *Client) DeleteFolder(ctx context.Context, folderID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/folder/%s", folderID), nil, nil)
}

// --- Lists ---

// GetFolderLists lists the lists nested in a folder.
func (c *Client) GetFolderLists(ctx context.Context, folderID string) ([]List, error) {
	var out struct {
		Lists []List `json:"lists"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/folder/%s/list", folderID), nil, &out); err != nil {
		return nil, err
	}
	return out.Lists, nil
}

// GetFolderlessLists lists the lists attached directly to a space.
func (c *Client) GetFolderlessLists(ctx context.Context, spaceID string) ([]List, error) {
	var out struct {
		Lists []List `json:"lists"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/space/%s/list", spaceID), nil, &out); err != nil {
		return nil, err
	}
	return out.Lists, nil
}

// CreateListInSpace creates a folderless list.
func (c *Client) CreateListInSpace(ctx context.Context, spaceID string, req CreateListRequest) (List, error) {
	var out List
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/space/%s/list", spaceID), req, &out)
	return out, err
}

// CreateListInFolder creates a list nested in a folder.
func (c *Client) CreateListInFolder(ctx context.Context, folderID string, req CreateListRequest) (List, error) {
	var out List
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/folder/%s/list", folderID), req, &out)
	return out, err
}

// UpdateList updates a list.
func (c *Client) UpdateList(ctx context.Context, listID string, req UpdateListRequest) (List, error) {
	var out List
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/list/%s", listID), req, &out)
	return out, err
}

// DeleteList deletes a list.
func (c *Client) DeleteList(ctx context.Context, listID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/list/%s", listID), nil, nil)
}

// --- Views ---

// viewBasePath maps a container kind ("workspace", "space", "folder",
// "list") to the view endpoint prefix for that container.
func viewBasePath(parentKind, parentID string) (string, error) {
	switch parentKind {
	case "workspace":
		return fmt.Sprintf("/team/%s/view", parentID), nil
	case "space":
		return fmt.Sprintf("/space/%s/view", parentID), nil
	case "folder":
		return fmt.Sprintf("/folder/%s/view", parentID), nil
	case "list":
		return fmt.Sprintf("/list/%s/view", parentID), nil
	}
	return "", fmt.Errorf("views: unsupported container kind %q", parentKind)
}

// GetViews lists the views of a container at any level. The API splits the
// result into custom views and the container's required default views; both
// are returned.
func (c *Client) GetViews(ctx context.Context, parentKind, parentID string) ([]View, error) {
	path, err := viewBasePath(parentKind, parentID)
	if err != nil {
		return nil, err
	}
	var out struct {
		Views         []View          `json:"views"`
		RequiredViews map[string]View `json:"required_views,omitempty"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	views := out.Views
	for _, v := range out.RequiredViews {
		if v.ID != "" {
			views = append(views, v)
		}
	}
	return views, nil
}

// CreateView creates a view under a container at any level.
func (c *Client) CreateView(ctx context.Context, parentKind, parentID string, req CreateViewRequest) (View, error) {
	path, err := viewBasePath(parentKind, parentID)
	if err != nil {
		return View{}, err
	}
	var out struct {
		View View `json:"view"`
	}
	if err := c.do(ctx, http.MethodPost, path, req, &out); err != nil {
		return View{}, err
	}
	return out.View, nil
}

// UpdateView updates a view.
func (c *Client) UpdateView(ctx context.Context, viewID string, req UpdateViewRequest) (View, error) {
	var out struct {
		View View `json:"view"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/view/%s", viewID), req, &out); err != nil {
		return View{}, err
	}
	return out.View, nil
}

// DeleteView deletes a view.
func (c *Client) DeleteView(ctx context.Context, viewID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/view/%s", viewID), nil, nil)
}

// --- Tasks ---

// GetTasks lists the tasks of a list.
func (c *Client) GetTasks(ctx context.Context, listID string, opts GetTasksOptions) ([]Task, error) {
	var out struct {
		Tasks []Task `json:"tasks"`
	}
	req := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetQueryParam("archived", fmt.Sprintf("%t", opts.Archived)).
		SetQueryParam("include_closed", fmt.Sprintf("%t", opts.IncludeClosed))
	if opts.Page > 0 {
		req.SetQueryParam("page", fmt.Sprintf("%d", opts.Page))
	}
	var apiErr apiErrorBody
	req.SetError(&apiErr)

	res, err := req.Get(fmt.Sprintf("/list/%s/task", listID))
	if err != nil {
		return nil, fmt.Errorf("GET /list/%s/task: %w", listID, err)
	}
	if res.IsError() {
		return nil, &APIError{StatusCode: res.StatusCode(), Code: apiErr.ECode, Message: apiErr.Err}
	}
	return out.Tasks, nil
}

// GetTask fetches one task by id.
func (c *Client) GetTask(ctx context.Context, taskID string) (Task, error) {
	var out Task
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/task/%s", taskID), nil, &out)
	return out, err
}

// CreateTask creates a task in a list.
func (c *Client) CreateTask(ctx context.Context, listID string, req CreateTaskRequest) (Task, error) {
	var out Task
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/list/%s/task", listID), req, &out)
	return out, err
}

// UpdateTask updates a task.
func (c *Client) UpdateTask(ctx context.Context, taskID string, req UpdateTaskRequest) (Task, error) {
	var out Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/task/%s", taskID), req, &out)
	return out, err
}
