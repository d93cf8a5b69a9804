package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.projects.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, projects)
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var body ProjectBody
	if err := decodeBody(r.Body, &body); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	req, err := body.createRequest()
	if err != nil {
		writeInvalid(w, err.Error())
		return
	}

	proj, err := s.projects.Create(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, proj)
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	proj, err := s.projects.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, proj)
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body ProjectBody
	if err := decodeBody(r.Body, &body); err != nil {
		writeInvalid(w, err.Error())
		return
	}

	current, err := s.projects.Get(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	next, err := body.record(id, *current)
	if err != nil {
		writeInvalid(w, err.Error())
		return
	}

	updated, err := s.projects.Update(r.Context(), next)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.projects.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) projectProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := s.projects.Progress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, progress)
}
