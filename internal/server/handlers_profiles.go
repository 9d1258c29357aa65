package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/camilogonzalez/resumeia/internal/server/middleware"
	"github.com/camilogonzalez/resumeia/internal/types"
)

// requestUserID returns the authenticated user ID or writes a 401.
func (s *Server) requestUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}

// pathUUID parses the named path segment as a UUID or writes a 400.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// decodeProfileRequest decodes and validates a profile create/update body.
func (s *Server) decodeProfileRequest(w http.ResponseWriter, r *http.Request) (*types.CreateProfileRequest, bool) {
	var req types.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return nil, false
	}
	return &req, true
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUserID(w, r)
	if !ok {
		return
	}

	profiles, err := s.db.ListProfiles(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUserID(w, r)
	if !ok {
		return
	}
	req, ok := s.decodeProfileRequest(w, r)
	if !ok {
		return
	}

	profile, err := s.db.CreateProfile(r.Context(), userID, req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to create profile")
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	profile, err := s.db.GetProfile(r.Context(), id, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get profile")
		return
	}
	if profile == nil {
		notFound := &ErrNotFound{Resource: "profile", ID: id.String()}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	req, ok := s.decodeProfileRequest(w, r)
	if !ok {
		return
	}

	profile, err := s.db.UpdateProfile(r.Context(), id, userID, req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to update profile")
		return
	}
	if profile == nil {
		notFound := &ErrNotFound{Resource: "profile", ID: id.String()}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := s.db.DeleteProfile(r.Context(), id, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete profile")
		return
	}
	if !deleted {
		notFound := &ErrNotFound{Resource: "profile", ID: id.String()}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
