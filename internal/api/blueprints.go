package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arsw-lab/blueprints-core/internal/blueprint"
)

// handleListBlueprints returns all blueprints. Order is unspecified.
func (s *Server) handleListBlueprints(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.List())
}

// handleListByAuthor returns all blueprints by one author.
// An author with zero records is a 404, not an empty list.
func (s *Server) handleListByAuthor(w http.ResponseWriter, r *http.Request) {
	author := chi.URLParam(r, "author")

	blueprints, err := s.store.ListByAuthor(author)
	if err != nil {
		writeNotFound(w, "no blueprints found for author")
		return
	}

	writeJSON(w, http.StatusOK, blueprints)
}

// handleGetBlueprint returns a single blueprint by author and name.
func (s *Server) handleGetBlueprint(w http.ResponseWriter, r *http.Request) {
	author := chi.URLParam(r, "author")
	name := chi.URLParam(r, "name")

	bp, err := s.store.Get(author, name)
	if err != nil {
		writeNotFound(w, "blueprint not found")
		return
	}

	writeJSON(w, http.StatusOK, bp)
}

// createRequest is the request body for POST /api/blueprints.
type createRequest struct {
	Name   string `json:"name"`
	Author string `json:"author"`
	Points string `json:"points"`
}

// handleCreateBlueprint creates a blueprint at the computed key.
//
// Missing fields take the compatibility defaults (name "nuevo", author
// "unknown", points "[]"). An existing record at the same key is silently
// overwritten; the caller gets no conflict signal.
func (s *Server) handleCreateBlueprint(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.Name == "" {
		req.Name = "nuevo"
	}
	if req.Author == "" {
		req.Author = "unknown"
	}
	if req.Points == "" {
		req.Points = "[]"
	}

	bp := blueprint.Blueprint{
		ID:     blueprint.NewID(),
		Name:   req.Name,
		Author: req.Author,
		Points: req.Points,
	}
	s.store.Put(bp)

	s.logger.Info("blueprint created", "author", bp.Author, "name", bp.Name, "id", bp.ID)
	writeJSON(w, http.StatusCreated, bp)
}

// addPointRequest is the request body for PUT /api/blueprints/{author}/{name}/points.
// Coordinates are kept as json.Number so their literal text survives into
// the formatted point (10 stays "10", not "10.000000").
type addPointRequest struct {
	X json.Number `json:"x"`
	Y json.Number `json:"y"`
}

// handleAddPoint appends a point to an existing blueprint's points string.
func (s *Server) handleAddPoint(w http.ResponseWriter, r *http.Request) {
	author := chi.URLParam(r, "author")
	name := chi.URLParam(r, "name")

	var req addPointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	point, err := s.store.AppendPoint(author, name, req.X.String(), req.Y.String())
	if err != nil {
		if errors.Is(err, blueprint.ErrNotFound) {
			writeNotFound(w, "blueprint not found")
			return
		}
		writeInternalError(w, "failed to add point")
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{
		"message": "Point added successfully",
		"point":   point,
	})
}

// handleDeleteBlueprint removes a blueprint by author and name.
func (s *Server) handleDeleteBlueprint(w http.ResponseWriter, r *http.Request) {
	author := chi.URLParam(r, "author")
	name := chi.URLParam(r, "name")

	if _, err := s.store.Delete(author, name); err != nil {
		writeNotFound(w, "blueprint not found")
		return
	}

	s.logger.Info("blueprint deleted", "author", author, "name", name)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Blueprint deleted successfully",
	})
}
