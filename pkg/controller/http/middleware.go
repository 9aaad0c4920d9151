package http

import (
	"context"
	"net/http"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
)

type actorCtxKey struct{}

// Acting-user headers populated by the API gateway after authentication.
// The engine trusts them; token validation happens upstream.
const (
	headerUserID     = "X-Innovaid-User-Id"
	headerExternalID = "X-Innovaid-External-Id"
	headerUserType   = "X-Innovaid-User-Type"
	headerOrgID      = "X-Innovaid-Organisation-Id"
	headerOrgUnitID  = "X-Innovaid-Organisation-Unit-Id"
	headerOrgRole    = "X-Innovaid-Organisation-Role"
)

// actorMiddleware builds the acting-user context from the gateway headers.
// Requests without a user ID are rejected before reaching any handler.
func actorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(headerUserID)
		if userID == "" {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		actor := &model.Actor{
			ID:                 userID,
			ExternalID:         r.Header.Get(headerExternalID),
			Type:               types.UserType(r.Header.Get(headerUserType)),
			OrganisationID:     r.Header.Get(headerOrgID),
			OrganisationUnitID: r.Header.Get(headerOrgUnitID),
			OrganisationRole:   types.OrgRole(r.Header.Get(headerOrgRole)),
		}

		ctx := context.WithValue(r.Context(), actorCtxKey{}, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// actorFromContext returns the acting user set by actorMiddleware, or nil
// outside of it.
func actorFromContext(ctx context.Context) *model.Actor {
	actor, _ := ctx.Value(actorCtxKey{}).(*model.Actor)
	return actor
}
