package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rpggio/flick/internal/domain/project"
	"github.com/rpggio/flick/internal/domain/task"
)

// API error codes.
const (
	CodeProjectNotFound = "PROJECT_NOT_FOUND"
	CodeTaskNotFound    = "TASK_NOT_FOUND"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInternal        = "INTERNAL"
)

// Error is the JSON body of every failed request.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func decodeBody(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// WriteJSON writes payload with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError maps a domain error onto a status and error code.
func WriteError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	WriteJSON(w, status, Error{Code: code, Message: msg})
}

func writeInvalid(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusBadRequest, Error{Code: CodeInvalidInput, Message: msg})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return http.StatusNotFound, CodeProjectNotFound
	case errors.Is(err, task.ErrTaskNotFound):
		return http.StatusNotFound, CodeTaskNotFound
	case errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, task.ErrInvalidInput),
		errors.Is(err, task.ErrInvalidStatus):
		return http.StatusBadRequest, CodeInvalidInput
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}
