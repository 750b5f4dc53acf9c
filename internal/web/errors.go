package web

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"gitfolio/internal/httputil"
	"gitfolio/internal/remote"
	"gitfolio/internal/service"
)

// writeServiceError maps the service and remote error taxonomy onto HTTP
// statuses. Upstream failures keep their detail; everything unexpected is
// logged and flattened to a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var upstream *remote.UpstreamError

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotConfigured):
		httputil.RespondError(w, http.StatusBadRequest, "repository not configured")
	case errors.Is(err, service.ErrDisabled):
		httputil.RespondError(w, http.StatusServiceUnavailable, "feature not configured")
	case errors.Is(err, remote.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, remote.ErrUnauthorized):
		log.Error().Err(err).Msg("remote rejected the access token")
		httputil.RespondError(w, http.StatusBadGateway, "remote authorization failed")
	case errors.As(err, &upstream):
		log.Error().Err(err).Msg("remote request failed")
		httputil.RespondError(w, http.StatusBadGateway, upstream.Message)
	default:
		log.Error().Err(err).Msg("request failed")
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
