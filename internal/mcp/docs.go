package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `flick tracks film and video productions as Projects, each with a list of Tasks.

- Project: name, start date, director, creator, producer and a color tag.
- Task: title, due date, assignee, status (pending or completed) and the id of its project.

Both lists keep insertion order. Updates replace the whole record in place.
Deleting a project does not delete its tasks.

Start with list_projects, then list_tasks for a project id.
Use get_project_progress instead of the stored completed_tasks/total_tasks counters.

Docs:
- flick://docs/model (data model and behavior of every operation)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "flick://docs/model",
		Name:        "docs_model",
		Title:       "Flick data model",
		Description: "Projects, tasks and how create, update and delete behave.",
		Content: `# Flick data model

## Project

| field | notes |
|---|---|
| id | generated on create |
| name | required |
| start_date | YYYY-MM-DD, defaults to the day of creation |
| director, creator, producer | free text |
| color | display tag; blue, red, green, yellow, purple or orange are offered, any value is kept |
| completed_tasks, total_tasks | deprecated, stored as given; use ` + "`get_project_progress`" + ` |

## Task

| field | notes |
|---|---|
| id | generated on create |
| title | required |
| date | due date, YYYY-MM-DD, defaults to the day of creation |
| assignee | free text |
| status | ` + "`pending`" + ` (default) or ` + "`completed`" + ` |
| project_id | required, not checked against existing projects |

## Behavior

- Lists are returned in insertion order. ` + "`list_tasks`" + ` keeps that order within a project.
- ` + "`update_project`" + ` and ` + "`update_task`" + ` replace the whole record at its current position.
  An unknown id changes nothing and returns PROJECT_NOT_FOUND or TASK_NOT_FOUND.
- Delete always succeeds, including for unknown ids.
- Deleting a project leaves its tasks in place. Delete them with ` + "`delete_task`" + ` first if they should go.
- ` + "`toggle_task`" + ` flips pending and completed.
- Progress percent is completed*100/total, truncated; a project without tasks is at 0.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
