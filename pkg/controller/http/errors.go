package http

import (
	"errors"
	"net/http"

	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
	"github.com/inno-lab/innovaid/pkg/usecase"
	"github.com/inno-lab/innovaid/pkg/utils/errutil"
)

// statusOf maps workflow errors to HTTP status codes. Anything unmapped is
// an internal error.
func statusOf(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidParams),
		errors.Is(err, usecase.ErrInvalidStatusTransition):
		return http.StatusBadRequest

	case errors.Is(err, usecase.ErrMissingUserOrganisation),
		errors.Is(err, usecase.ErrMissingUserOrganisationUnit),
		errors.Is(err, usecase.ErrInvalidUserRole):
		return http.StatusForbidden

	case errors.Is(err, usecase.ErrNotFound),
		errors.Is(err, usecase.ErrResourceNotFound),
		errors.Is(err, interfaces.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, usecase.ErrSupportAlreadyExists),
		errors.Is(err, usecase.ErrConflict),
		errors.Is(err, interfaces.ErrConflict):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	errutil.HandleHTTP(r.Context(), w, err, statusOf(err))
}
