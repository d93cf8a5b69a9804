package task

// Repository is the canonical ordered collection of tasks across all projects.
type Repository interface {
	List() []Task
	ListForProject(projectID string) []Task
	Get(id string) (Task, bool)
	Add(t Task)
	Update(t Task) bool
	// Toggle flips the status of the first task with id and returns the result.
	Toggle(id string) (Task, bool)
	Delete(id string)
}
