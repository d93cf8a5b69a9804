package task

import "errors"

var (
	// ErrTaskNotFound indicates the task doesn't exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrInvalidInput indicates a missing title, project or ID.
	ErrInvalidInput = errors.New("invalid task input")
	// ErrInvalidStatus indicates a status other than pending or completed.
	ErrInvalidStatus = errors.New("invalid task status")
)
