package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/flick/internal/domain/project"
	"github.com/rpggio/flick/internal/domain/task"
)

type tools struct {
	projects ProjectService
	tasks    TaskService
}

func registerTools(server *sdkmcp.Server, services Services) {
	t := &tools{projects: services.Projects, tasks: services.Tasks}

	// Projects
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List all projects in the order they were added",
	}, t.listProjects)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get a project by id",
	}, t.getProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a project; it is appended to the end of the list",
	}, t.createProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Replace every field of an existing project, keeping its position",
	}, t.updateProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project by id. Succeeds for unknown ids. The project's tasks are kept",
	}, t.deleteProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project_progress",
		Description: "Count completed and total tasks of a project",
	}, t.projectProgress)

	// Tasks
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_tasks",
		Description: "List the tasks of a project in the order they were added",
	}, t.listTasks)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_task",
		Description: "Create a task in a project",
	}, t.createTask)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_task",
		Description: "Replace every field of an existing task, keeping its position",
	}, t.updateTask)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "toggle_task",
		Description: "Flip a task between pending and completed",
	}, t.toggleTask)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task by id. Succeeds for unknown ids",
	}, t.deleteTask)
}

func (t *tools) listProjects(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListProjectsParams) (*sdkmcp.CallToolResult, ListProjectsResult, error) {
	projects, err := t.projects.List(ctx)
	if err != nil {
		return nil, ListProjectsResult{}, toolError(err)
	}
	out := ListProjectsResult{Projects: make([]ProjectView, 0, len(projects))}
	for _, p := range projects {
		out.Projects = append(out.Projects, projectView(p))
	}
	return nil, out, nil
}

func (t *tools) getProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetProjectParams) (*sdkmcp.CallToolResult, ProjectView, error) {
	if err := requireID("id", in.ID); err != nil {
		return nil, ProjectView{}, err
	}
	proj, err := t.projects.Get(ctx, in.ID)
	if err != nil {
		return nil, ProjectView{}, toolError(err)
	}
	return nil, projectView(*proj), nil
}

func (t *tools) createProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in CreateProjectParams) (*sdkmcp.CallToolResult, ProjectView, error) {
	start, err := parseDate("start_date", in.StartDate)
	if err != nil {
		return nil, ProjectView{}, err
	}
	proj, err := t.projects.Create(ctx, project.CreateRequest{
		Name:      in.Name,
		StartDate: start,
		Director:  in.Director,
		Creator:   in.Creator,
		Producer:  in.Producer,
		Color:     project.Color(in.Color),
	})
	if err != nil {
		return nil, ProjectView{}, toolError(err)
	}
	return nil, projectView(*proj), nil
}

func (t *tools) updateProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateProjectParams) (*sdkmcp.CallToolResult, ProjectView, error) {
	if err := requireID("id", in.ID); err != nil {
		return nil, ProjectView{}, err
	}
	start, err := parseDate("start_date", in.StartDate)
	if err != nil {
		return nil, ProjectView{}, err
	}
	current, err := t.projects.Get(ctx, in.ID)
	if err != nil {
		return nil, ProjectView{}, toolError(err)
	}

	next := project.Project{
		ID:             in.ID,
		Name:           in.Name,
		StartDate:      start,
		Director:       in.Director,
		Creator:        in.Creator,
		Producer:       in.Producer,
		Color:          project.Color(in.Color),
		CompletedTasks: in.CompletedTasks,
		TotalTasks:     in.TotalTasks,
	}
	if next.StartDate.IsZero() {
		next.StartDate = current.StartDate
	}
	if next.Color == "" {
		next.Color = current.Color
	}

	updated, err := t.projects.Update(ctx, next)
	if err != nil {
		return nil, ProjectView{}, toolError(err)
	}
	return nil, projectView(*updated), nil
}

func (t *tools) deleteProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteProjectParams) (*sdkmcp.CallToolResult, DeleteResult, error) {
	if err := requireID("id", in.ID); err != nil {
		return nil, DeleteResult{}, err
	}
	if err := t.projects.Delete(ctx, in.ID); err != nil {
		return nil, DeleteResult{}, toolError(err)
	}
	return nil, DeleteResult{ID: in.ID, Deleted: true}, nil
}

func (t *tools) projectProgress(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectProgressParams) (*sdkmcp.CallToolResult, project.Progress, error) {
	if err := requireID("id", in.ID); err != nil {
		return nil, project.Progress{}, err
	}
	progress, err := t.projects.Progress(ctx, in.ID)
	if err != nil {
		return nil, project.Progress{}, toolError(err)
	}
	return nil, progress, nil
}

func (t *tools) listTasks(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListTasksParams) (*sdkmcp.CallToolResult, ListTasksResult, error) {
	if err := requireID("project_id", in.ProjectID); err != nil {
		return nil, ListTasksResult{}, err
	}
	tasks, err := t.tasks.ListForProject(ctx, in.ProjectID)
	if err != nil {
		return nil, ListTasksResult{}, toolError(err)
	}
	out := ListTasksResult{ProjectID: in.ProjectID, Tasks: make([]TaskView, 0, len(tasks))}
	for _, tk := range tasks {
		out.Tasks = append(out.Tasks, taskView(tk))
	}
	return nil, out, nil
}

func (t *tools) createTask(ctx context.Context, _ *sdkmcp.CallToolRequest, in CreateTaskParams) (*sdkmcp.CallToolResult, TaskView, error) {
	date, err := parseDate("date", in.Date)
	if err != nil {
		return nil, TaskView{}, err
	}
	created, err := t.tasks.Create(ctx, task.CreateRequest{
		ProjectID: in.ProjectID,
		Title:     in.Title,
		Date:      date,
		Assignee:  in.Assignee,
		Status:    task.Status(in.Status),
	})
	if err != nil {
		return nil, TaskView{}, toolError(err)
	}
	return nil, taskView(*created), nil
}

func (t *tools) updateTask(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateTaskParams) (*sdkmcp.CallToolResult, TaskView, error) {
	if err := requireID("id", in.ID); err != nil {
		return nil, TaskView{}, err
	}
	date, err := parseDate("date", in.Date)
	if err != nil {
		return nil, TaskView{}, err
	}
	current, err := t.tasks.Get(ctx, in.ID)
	if err != nil {
		return nil, TaskView{}, toolError(err)
	}

	next := task.Task{
		ID:        in.ID,
		Title:     in.Title,
		Date:      date,
		Assignee:  in.Assignee,
		Status:    task.Status(in.Status),
		ProjectID: in.ProjectID,
	}
	if next.Date.IsZero() {
		next.Date = current.Date
	}
	if next.Status == "" {
		next.Status = current.Status
	}
	if next.ProjectID == "" {
		next.ProjectID = current.ProjectID
	}

	updated, err := t.tasks.Update(ctx, next)
	if err != nil {
		return nil, TaskView{}, toolError(err)
	}
	return nil, taskView(*updated), nil
}

func (t *tools) toggleTask(ctx context.Context, _ *sdkmcp.CallToolRequest, in ToggleTaskParams) (*sdkmcp.CallToolResult, TaskView, error) {
	if err := requireID("id", in.ID); err != nil {
		return nil, TaskView{}, err
	}
	toggled, err := t.tasks.Toggle(ctx, in.ID)
	if err != nil {
		return nil, TaskView{}, toolError(err)
	}
	return nil, taskView(*toggled), nil
}

func (t *tools) deleteTask(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteTaskParams) (*sdkmcp.CallToolResult, DeleteResult, error) {
	if err := requireID("id", in.ID); err != nil {
		return nil, DeleteResult{}, err
	}
	if err := t.tasks.Delete(ctx, in.ID); err != nil {
		return nil, DeleteResult{}, toolError(err)
	}
	return nil, DeleteResult{ID: in.ID, Deleted: true}, nil
}
