package server

import (
	"encoding/json"
	"net/http"

	"github.com/camilogonzalez/resumeia/internal/linkedin"
	"github.com/camilogonzalez/resumeia/internal/types"
)

// handleLinkedinImport parses pasted LinkedIn profile text into profile
// fields the client can prefill a profile form with.
func (s *Server) handleLinkedinImport(w http.ResponseWriter, r *http.Request) {
	var req types.LinkedinImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	parsed := linkedin.ParseProfileText(req.ProfileText)
	if parsed.LinkedinURL != "" && !linkedin.IsValidProfileURL(parsed.LinkedinURL) {
		parsed.LinkedinURL = ""
	}

	writeJSON(w, http.StatusOK, parsed)
}
