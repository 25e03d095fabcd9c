// Package http provides http transport for recent search logs
package http

import (
	stdhttp "net/http"

	"pillbox/internal/core/apierr"
	"pillbox/internal/modkit/httpkit"
	perr "pillbox/internal/platform/errors"
	"pillbox/internal/services/api/searchlogs/domain"
	svc "pillbox/internal/services/api/searchlogs/service"
)

// Register mounts search log endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.DeleteJSON[domain.SearchLog](r, "/", h.removeOne)
	httpkit.Delete(r, "/all", h.clear)
}

type handlers struct{ svc svc.Service }

// @Summary Recent searches of the caller
// @Tags SearchLogs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.SearchLog "newest first"
// @Router /search-logs [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	memberID, err := httpkit.MemberID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), memberID)
}

// @Summary Delete one recent search
// @Tags SearchLogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.SearchLog true "entry exactly as listed"
// @Success 200 {object} apierr.Ack "DELETE_SEARCH_LOG_SUCCESS"
// @Failure 404 {object} apierr.Ack "SEARCH_LOG_NOT_EXIST"
// @Router /search-logs [delete]
func (h *handlers) removeOne(r *stdhttp.Request, in domain.SearchLog) (any, error) {
	memberID, err := httpkit.MemberID(r)
	if err != nil {
		return nil, err
	}
	if in.Name == "" || in.CreatedAt == "" {
		// an empty DELETE body binds to the zero value without validation
		return nil, perr.WithField(perr.Validationf("name and createdAt are required"), "name")
	}
	if err := h.svc.RemoveOne(r.Context(), memberID, in); err != nil {
		return nil, err
	}
	return apierr.NewAck("DELETE_SEARCH_LOG_SUCCESS", stdhttp.StatusOK, "search log deleted"), nil
}

// @Summary Delete every recent search of the caller
// @Tags SearchLogs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} apierr.Ack "DELETE_ALL_SEARCH_LOG_SUCCESS"
// @Failure 404 {object} apierr.Ack "SEARCH_LOG_NOT_EXIST"
// @Router /search-logs/all [delete]
func (h *handlers) clear(r *stdhttp.Request) (any, error) {
	memberID, err := httpkit.MemberID(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Clear(r.Context(), memberID); err != nil {
		return nil, err
	}
	return apierr.NewAck("DELETE_ALL_SEARCH_LOG_SUCCESS", stdhttp.StatusOK, "search logs deleted"), nil
}
