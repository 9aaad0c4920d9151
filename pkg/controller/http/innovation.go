package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/inno-lab/innovaid/pkg/usecase"
)

type suggestionRequest struct {
	OrganisationIDs []string `json:"organisationIds"`
	UnitIDs         []string `json:"organisationUnitIds,omitempty"`
}

type suggestionResponse struct {
	AssessmentID             string    `json:"assessmentId"`
	InnovationID             string    `json:"innovationId"`
	SuggestedOrganisationIDs []string  `json:"suggestedOrganisationIds"`
	UpdatedAt                time.Time `json:"updatedAt"`
}

func (s *Server) suggestOrganisations(w http.ResponseWriter, r *http.Request) {
	innovationID := chi.URLParam(r, "innovationID")

	var req suggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, goerr.Wrap(usecase.ErrInvalidParams, "malformed request body"))
		return
	}

	assessment, err := s.uc.Support.SuggestOrganisations(r.Context(), actorFromContext(r.Context()),
		innovationID, req.OrganisationIDs, req.UnitIDs)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, suggestionResponse{
		AssessmentID:             assessment.ID,
		InnovationID:             assessment.InnovationID,
		SuggestedOrganisationIDs: assessment.SuggestedOrganisationIDs,
		UpdatedAt:                assessment.UpdatedAt,
	})
}

type activityResponse struct {
	ID           string         `json:"id"`
	InnovationID string         `json:"innovationId"`
	Activity     string         `json:"activity"`
	Domain       string         `json:"domain"`
	Params       map[string]any `json:"params"`
	CreatedBy    string         `json:"createdBy"`
	CreatedAt    time.Time      `json:"createdAt"`
}

func (s *Server) listActivities(w http.ResponseWriter, r *http.Request) {
	innovationID := chi.URLParam(r, "innovationID")

	var category types.ActivityCategory
	if raw := r.URL.Query().Get("category"); raw != "" {
		parsed, err := types.ParseActivityCategory(raw)
		if err != nil {
			handleError(w, r, goerr.Wrap(usecase.ErrInvalidParams, "invalid activity category", goerr.V("category", raw)))
			return
		}
		category = parsed
	}

	views, err := s.uc.Activity.List(r.Context(), innovationID, category)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := make([]activityResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, activityResponse{
			ID:           v.ID,
			InnovationID: v.InnovationID,
			Activity:     v.Type.String(),
			Domain:       v.Category.String(),
			Params:       v.Params,
			CreatedBy:    v.CreatedBy,
			CreatedAt:    v.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"activities": resp})
}

type supportLogResponse struct {
	ID                 string    `json:"id"`
	InnovationID       string    `json:"innovationId"`
	OrganisationUnitID string    `json:"organisationUnitId,omitempty"`
	Type               string    `json:"type"`
	Description        string    `json:"description"`
	SupportStatus      string    `json:"innovationSupportStatus,omitempty"`
	SuggestedUnitIDs   []string  `json:"suggestedOrganisationUnitIds,omitempty"`
	CreatedBy          string    `json:"createdBy"`
	CreatedAt          time.Time `json:"createdAt"`
}

func (s *Server) listSupportLogs(w http.ResponseWriter, r *http.Request) {
	innovationID := chi.URLParam(r, "innovationID")

	entries, err := s.uc.SupportLog.List(r.Context(), innovationID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := make([]supportLogResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, supportLogResponse{
			ID:                 e.ID,
			InnovationID:       e.InnovationID,
			OrganisationUnitID: e.OrganisationUnitID,
			Type:               e.Type.String(),
			Description:        e.Description,
			SupportStatus:      e.SupportStatus.String(),
			SuggestedUnitIDs:   e.SuggestedUnitIDs,
			CreatedBy:          e.CreatedBy,
			CreatedAt:          e.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"supportLogs": resp})
}

type commentResponse struct {
	ID           string    `json:"id"`
	InnovationID string    `json:"innovationId"`
	SupportID    string    `json:"supportId,omitempty"`
	Message      string    `json:"message"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
	innovationID := chi.URLParam(r, "innovationID")

	comments, err := s.uc.Comment.List(r.Context(), innovationID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, commentResponse{
			ID:           c.ID,
			InnovationID: c.InnovationID,
			SupportID:    c.SupportID,
			Message:      c.Message,
			CreatedBy:    c.CreatedBy,
			CreatedAt:    c.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"comments": resp})
}
