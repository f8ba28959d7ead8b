package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/vocino/vocino/internal/api/respond"
	"github.com/vocino/vocino/internal/model"
)

// writeServiceError maps the model's sentinel errors to HTTP responses.
// Anything unrecognized is a store/codec failure and reports 500 so clients
// can retry; it is never disguised as a 404.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, "not found")
	case errors.Is(err, model.ErrConflict):
		respond.WriteError(w, http.StatusConflict, "already exists")
	case errors.Is(err, model.ErrValidation):
		respond.WriteBadRequest(w, err.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		respond.WriteError(w, http.StatusUnauthorized, "invalid credentials")
	default:
		log.Error().Stack().Err(err).Msg("request failed")
		respond.WriteInternalError(w, "internal error")
	}
}
