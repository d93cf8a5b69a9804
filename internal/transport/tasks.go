package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// listTasks does not require the project to exist; an unknown project has no tasks.
func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.ListForProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, tasks)
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var body TaskBody
	if err := decodeBody(r.Body, &body); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	req, err := body.createRequest(chi.URLParam(r, "id"))
	if err != nil {
		writeInvalid(w, err.Error())
		return
	}

	t, err := s.tasks.Create(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, t)
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body TaskBody
	if err := decodeBody(r.Body, &body); err != nil {
		writeInvalid(w, err.Error())
		return
	}

	current, err := s.tasks.Get(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	next, err := body.record(id, *current)
	if err != nil {
		writeInvalid(w, err.Error())
		return
	}

	updated, err := s.tasks.Update(r.Context(), next)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, updated)
}

func (s *Server) toggleTask(w http.ResponseWriter, r *http.Request) {
	t, err := s.tasks.Toggle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, t)
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.tasks.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
