package server

import (
	"encoding/json"
	"net/http"

	"github.com/camilogonzalez/resumeia/internal/ats"
	"github.com/camilogonzalez/resumeia/internal/types"
)

// handleATSAnalyze scores CV content against optional job requirements. The
// analysis is deterministic and runs entirely locally.
func (s *Server) handleATSAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CVContent == nil {
		s.errorResponse(w, http.StatusBadRequest, "cvContent is required")
		return
	}

	result := ats.Analyze(req.CVContent, req.JobRequirements)
	writeJSON(w, http.StatusOK, result)
}

// improveResponse pairs regenerated content with its fresh analysis so the
// caller can see the score movement.
type improveResponse struct {
	CVContent *types.CVContent         `json:"cvContent"`
	Analysis  *types.ATSAnalysisResult `json:"analysis"`
}

// handleATSImprove regenerates CV content to address analysis
// recommendations, then re-scores it.
func (s *Server) handleATSImprove(w http.ResponseWriter, r *http.Request) {
	var req types.ImproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CVContent == nil {
		s.errorResponse(w, http.StatusBadRequest, "cvContent is required")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	improved, err := s.generator.ImproveCV(r.Context(), req.CVContent, req.Recommendations, req.JobRequirements)
	if err != nil {
		upstream := &ErrUpstream{Operation: "CV improvement", Cause: err}
		s.errorResponse(w, HTTPStatus(upstream), upstream.Error())
		return
	}

	writeJSON(w, http.StatusOK, improveResponse{
		CVContent: improved,
		Analysis:  ats.Analyze(improved, req.JobRequirements),
	})
}
