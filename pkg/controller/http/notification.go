package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
)

type notificationResponse struct {
	ID           string    `json:"id"`
	InnovationID string    `json:"innovationId"`
	ContextType  string    `json:"contextType"`
	ContextID    string    `json:"contextId"`
	Message      string    `json:"message"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (s *Server) listUnreadNotifications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.NotificationFilter{
		InnovationID: q.Get("innovationId"),
		ContextType:  types.NotificationContextType(q.Get("contextType")),
		ContextID:    q.Get("contextId"),
	}

	notifications, err := s.uc.Notification.GetUnread(r.Context(), actorFromContext(r.Context()), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, notificationResponse{
			ID:           n.ID,
			InnovationID: n.InnovationID,
			ContextType:  n.ContextType.String(),
			ContextID:    n.ContextID,
			Message:      n.Message,
			CreatedBy:    n.CreatedBy,
			CreatedAt:    n.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"notifications": resp})
}

func (s *Server) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	notificationID := chi.URLParam(r, "notificationID")

	if err := s.uc.Notification.MarkRead(r.Context(), actorFromContext(r.Context()), notificationID); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
