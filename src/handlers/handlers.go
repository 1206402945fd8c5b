package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"fintrack-server/src/service"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
)

func userIDFromContext(r *http.Request) int64 {
	return r.Context().Value("user_id").(int64)
}

func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// handleServiceError maps the service error taxonomy onto status codes.
// Everything unrecognized is an internal fault and is logged but not leaked.
func handleServiceError(w http.ResponseWriter, err error, notFoundMessage, logContext string) {
	switch {
	case service.IsValidationError(err):
		log.Printf("ERROR: %s: %v", logContext, err)
		util.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		log.Printf("ERROR: %s: %v", logContext, err)
		util.RespondError(w, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, service.ErrEmailTaken):
		log.Printf("ERROR: %s: %v", logContext, err)
		util.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		log.Printf("ERROR: %s: %v", logContext, err)
		util.RespondError(w, http.StatusUnauthorized, err.Error())
	default:
		log.Printf("ERROR: %s: %v", logContext, err)
		util.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}
