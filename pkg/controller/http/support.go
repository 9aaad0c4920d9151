package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/inno-lab/innovaid/pkg/usecase"
)

type supportRequest struct {
	Status      string   `json:"status"`
	Message     string   `json:"message,omitempty"`
	AccessorIDs []string `json:"accessorIds,omitempty"`
}

type supportResponse struct {
	ID                 string    `json:"id"`
	InnovationID       string    `json:"innovationId"`
	OrganisationID     string    `json:"organisationId"`
	OrganisationUnitID string    `json:"organisationUnitId"`
	Status             string    `json:"status"`
	AccessorIDs        []string  `json:"accessorIds"`
	Version            int64     `json:"version"`
	CreatedBy          string    `json:"createdBy"`
	UpdatedBy          string    `json:"updatedBy"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func toSupportResponse(s *model.SupportRecord) supportResponse {
	accessors := s.AccessorIDs
	if accessors == nil {
		accessors = []string{}
	}

	return supportResponse{
		ID:                 s.ID,
		InnovationID:       s.InnovationID,
		OrganisationID:     s.OrganisationID,
		OrganisationUnitID: s.OrganisationUnitID,
		Status:             s.Status.String(),
		AccessorIDs:        accessors,
		Version:            s.Version,
		CreatedBy:          s.CreatedBy,
		UpdatedBy:          s.UpdatedBy,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func decodeSupportPayload(r *http.Request) (*model.SupportPayload, error) {
	var req supportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, goerr.Wrap(usecase.ErrInvalidParams, "malformed request body")
	}

	return &model.SupportPayload{
		Status:      types.SupportStatus(req.Status),
		Message:     req.Message,
		AccessorIDs: req.AccessorIDs,
	}, nil
}

func (s *Server) createSupport(w http.ResponseWriter, r *http.Request) {
	innovationID := chi.URLParam(r, "innovationID")

	payload, err := decodeSupportPayload(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	record, err := s.uc.Support.CreateSupport(r.Context(), actorFromContext(r.Context()), innovationID, payload)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSupportResponse(record))
}

func (s *Server) updateSupport(w http.ResponseWriter, r *http.Request) {
	innovationID := chi.URLParam(r, "innovationID")
	supportID := chi.URLParam(r, "supportID")

	payload, err := decodeSupportPayload(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	record, err := s.uc.Support.UpdateSupport(r.Context(), actorFromContext(r.Context()), supportID, innovationID, payload)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSupportResponse(record))
}

func (s *Server) listSupports(w http.ResponseWriter, r *http.Request) {
	innovationID := chi.URLParam(r, "innovationID")

	var statuses []types.SupportStatus
	for _, raw := range r.URL.Query()["status"] {
		statuses = append(statuses, types.SupportStatus(raw))
	}

	records, err := s.uc.Support.List(r.Context(), innovationID, statuses...)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := make([]supportResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toSupportResponse(rec))
	}

	writeJSON(w, http.StatusOK, map[string]any{"supports": resp})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck // header already committed
}
