package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"sections": s.store.List(),
		"count":    s.store.Len(),
	}
	if active, ok := s.store.Active(); ok {
		resp["active_id"] = active.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetSection(w http.ResponseWriter, r *http.Request) {
	sec, ok := s.store.Get(chi.URLParam(r, "sectionID"))
	if !ok {
		jsonError(w, "section not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

func (s *Server) handleAddSection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	// An empty body adds a canned default section, mirroring the Add
	// Section button of the viewer.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	sec := s.store.Add(req.Title, req.Content)
	s.log.Info("section added", "section_id", sec.ID, "title", sec.Title)
	writeJSON(w, http.StatusCreated, sec)
}

func (s *Server) handleRemoveSection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sectionID")
	if !s.store.Remove(id) {
		jsonError(w, "section not found", http.StatusNotFound)
		return
	}
	// Conversation history does not outlive its section.
	s.conversations.Drop(id)
	s.log.Info("section removed", "section_id", id)
	writeJSON(w, http.StatusOK, map[string]any{"removed": true, "count": s.store.Len()})
}

func (s *Server) handleSectionAnalysis(w http.ResponseWriter, r *http.Request) {
	sec, ok := s.store.Get(chi.URLParam(r, "sectionID"))
	if !ok {
		jsonError(w, "section not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, s.analyzer.Analyze(sec))
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.analyzer.AggregateAll(s.store.List()))
}

func (s *Server) handleGetActive(w http.ResponseWriter, r *http.Request) {
	active, ok := s.store.Active()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"active": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"active": active})
}

func (s *Server) handleSetActive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sectionID")
	if !s.store.SetActive(id) {
		jsonError(w, "section not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"active_id": id})
}

func (s *Server) handleClearActive(w http.ResponseWriter, r *http.Request) {
	s.store.ClearActive()
	writeJSON(w, http.StatusOK, map[string]any{"active": nil})
}
