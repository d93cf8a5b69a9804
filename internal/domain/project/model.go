package project

import "time"

// Color is an opaque display tag used to group projects visually.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
)

// DefaultColor is applied when a project is created without a color.
const DefaultColor = ColorBlue

// Palette lists the colors offered when creating a project. Any other value is kept as-is.
var Palette = []Color{ColorBlue, ColorRed, ColorGreen, ColorYellow, ColorPurple, ColorOrange}

// Project is a film or video production being tracked.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	Director  string    `json:"director"`
	Creator   string    `json:"creator"`
	Producer  string    `json:"producer"`
	Color     Color     `json:"color"`

	// Deprecated: stored as given and never kept in sync with tasks. Use Service.Progress.
	CompletedTasks int `json:"completed_tasks"`
	// Deprecated: stored as given and never kept in sync with tasks. Use Service.Progress.
	TotalTasks int `json:"total_tasks"`
}

// Progress is the completion state of a project derived from its tasks.
type Progress struct {
	ProjectID string `json:"project_id"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
}

// NewProgress computes the completion percentage, truncated, treating an empty project as 0%.
func NewProgress(projectID string, completed, total int) Progress {
	return Progress{
		ProjectID: projectID,
		Completed: completed,
		Total:     total,
		Percent:   completed * 100 / max(total, 1),
	}
}
