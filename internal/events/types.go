package events

import "time"

// Kind identifies which store mutation produced an event.
type Kind string

const (
	ProjectAdded   Kind = "project.added"
	ProjectUpdated Kind = "project.updated"
	ProjectDeleted Kind = "project.deleted"
	TaskAdded      Kind = "task.added"
	TaskUpdated    Kind = "task.updated"
	TaskDeleted    Kind = "task.deleted"
)

// Event is a change notification emitted after a store mutation is visible to readers.
type Event struct {
	Kind      Kind      `json:"kind"`
	EntityID  string    `json:"entity_id"`
	ProjectID string    `json:"project_id,omitempty"` // owning project; equals EntityID for project events
	Sequence  uint64    `json:"sequence"`             // assigned by the publishing broker, strictly increasing in delivery order
	Timestamp time.Time `json:"timestamp"`
}

// Listener receives events synchronously on the publishing goroutine.
type Listener func(Event)
