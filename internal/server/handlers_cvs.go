package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/camilogonzalez/resumeia/internal/pdf"
	"github.com/camilogonzalez/resumeia/internal/types"
)

// handleGenerateCV generates a tailored CV for a profile. The profile load
// and the job posting fetch run concurrently; the posting text is appended
// to whatever details the request already carries.
func (s *Server) handleGenerateCV(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUserID(w, r)
	if !ok {
		return
	}
	profileID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req types.GenerateCVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	var profile *types.Profile
	var jobText string

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		profile, err = s.db.GetProfile(ctx, profileID, userID)
		return err
	})
	if req.JobURL != "" {
		g.Go(func() error {
			text, err := s.fetchJob(ctx, req.JobURL)
			if err != nil {
				return &ErrUpstream{Operation: "job posting fetch", Cause: err}
			}
			jobText = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if profile == nil {
		notFound := &ErrNotFound{Resource: "profile", ID: profileID.String()}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	positionDetails := req.PositionDetails
	if jobText != "" {
		if positionDetails != "" {
			positionDetails += "\n\n"
		}
		positionDetails += jobText
	}

	content, err := s.generator.GenerateCV(r.Context(), profile, req.PositionTitle, req.OrganizationName, positionDetails)
	if err != nil {
		upstream := &ErrUpstream{Operation: "CV generation", Cause: err}
		s.errorResponse(w, HTTPStatus(upstream), upstream.Error())
		return
	}

	displayLinkedin := profile.DisplayLinkedin
	if req.DisplayLinkedin != nil {
		displayLinkedin = *req.DisplayLinkedin
	}
	if !displayLinkedin {
		content.HeaderInfo.LinkedinURL = ""
	}

	saved, err := s.db.SaveGeneratedCV(r.Context(), &types.GeneratedCV{
		ProfileID:        profileID,
		PositionTitle:    req.PositionTitle,
		OrganizationName: req.OrganizationName,
		JobURL:           req.JobURL,
		PositionDetails:  positionDetails,
		Content:          *content,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save generated CV")
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

// handleListCVs returns the generation history for a profile.
func (s *Server) handleListCVs(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUserID(w, r)
	if !ok {
		return
	}
	profileID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	cvs, err := s.db.ListGeneratedCVs(r.Context(), profileID, userID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list CVs")
		return
	}
	writeJSON(w, http.StatusOK, cvs)
}

// handleHistory returns the generation history across all of the user's
// profiles.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUserID(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	cvs, err := s.db.ListUserGeneratedCVs(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list CVs")
		return
	}
	writeJSON(w, http.StatusOK, cvs)
}

func (s *Server) handleGetCV(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUserID(w, r)
	if !ok {
		return
	}
	cvID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	cv, err := s.db.GetGeneratedCV(r.Context(), cvID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get CV")
		return
	}
	if cv == nil {
		notFound := &ErrNotFound{Resource: "cv", ID: cvID.String()}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, cv)
}

// handleCVPDF renders a generated CV as PDF. The template comes from the
// owning profile; a template query parameter overrides it.
func (s *Server) handleCVPDF(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUserID(w, r)
	if !ok {
		return
	}
	cvID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	cv, err := s.db.GetGeneratedCV(r.Context(), cvID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get CV")
		return
	}
	if cv == nil {
		notFound := &ErrNotFound{Resource: "cv", ID: cvID.String()}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	templateName := r.URL.Query().Get("template")
	if templateName == "" {
		if profile, err := s.db.GetProfile(r.Context(), cv.ProfileID, userID); err == nil && profile != nil {
			templateName = profile.Template
		}
	}
	if templateName != "" && !pdf.ValidTemplate(templateName) {
		s.errorResponse(w, http.StatusBadRequest, "unknown template")
		return
	}

	s.servePDF(w, r, &cv.Content, templateName, cv.OrganizationName)
}

// handleCreateShare assigns (or returns the existing) public share token for
// a CV.
func (s *Server) handleCreateShare(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUserID(w, r)
	if !ok {
		return
	}
	cvID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	token, err := s.db.EnsureShareToken(r.Context(), cvID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to create share link")
		return
	}
	if token == uuid.Nil {
		notFound := &ErrNotFound{Resource: "cv", ID: cvID.String()}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"share_token": token.String(),
		"share_path":  "/share/" + token.String(),
	})
}

func (s *Server) handleRevokeShare(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUserID(w, r)
	if !ok {
		return
	}
	cvID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	revoked, err := s.db.RevokeShareToken(r.Context(), cvID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to revoke share link")
		return
	}
	if !revoked {
		notFound := &ErrNotFound{Resource: "cv", ID: cvID.String()}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSharedCV serves a shared CV to anyone holding the token.
func (s *Server) handleSharedCV(w http.ResponseWriter, r *http.Request) {
	token, ok := s.pathUUID(w, r, "token")
	if !ok {
		return
	}

	cv, err := s.db.GetCVByShareToken(r.Context(), token)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get shared CV")
		return
	}
	if cv == nil {
		s.errorResponse(w, http.StatusNotFound, "shared CV not found")
		return
	}
	writeJSON(w, http.StatusOK, cv)
}

func (s *Server) handleSharedCVPDF(w http.ResponseWriter, r *http.Request) {
	token, ok := s.pathUUID(w, r, "token")
	if !ok {
		return
	}

	cv, err := s.db.GetCVByShareToken(r.Context(), token)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get shared CV")
		return
	}
	if cv == nil {
		s.errorResponse(w, http.StatusNotFound, "shared CV not found")
		return
	}

	s.servePDF(w, r, &cv.Content, "", cv.OrganizationName)
}

// servePDF renders content and writes it as a PDF attachment.
func (s *Server) servePDF(w http.ResponseWriter, r *http.Request, content *types.CVContent, templateName, label string) {
	rendered, err := pdf.Render(r.Context(), content, templateName)
	if err != nil {
		upstream := &ErrUpstream{Operation: "PDF rendering", Cause: err}
		s.errorResponse(w, HTTPStatus(upstream), upstream.Error())
		return
	}

	filename := "cv.pdf"
	if label != "" {
		filename = fmt.Sprintf("cv-%s.pdf", label)
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(rendered)
}
