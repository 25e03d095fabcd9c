// Package http provides http transport for medicines
package http

import (
	stdhttp "net/http"

	"pillbox/internal/modkit/httpkit"
	"pillbox/internal/services/api/medicines/domain"
	svc "pillbox/internal/services/api/medicines/service"
)

// Register mounts medicine endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/id/{id}", h.byID)
	httpkit.Get(r, "/code/{code}", h.byCode)
	httpkit.Get(r, "/search", h.search)
	httpkit.Get(r, "/search/related", h.related)
}

type handlers struct{ svc svc.Service }

// @Summary Medicine detail by id
// @Tags Medicines
// @Produce json
// @Security BearerAuth
// @Param id path int true "medicine id"
// @Success 200 {object} domain.MedicineRes "ok"
// @Failure 404 {object} apierr.Ack "MEDICINE_NOT_EXIST"
// @Router /medicines/id/{id} [get]
func (h *handlers) byID(r *stdhttp.Request) (any, error) {
	memberID, err := httpkit.MemberID(r)
	if err != nil {
		return nil, err
	}
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.GetByID(r.Context(), memberID, id)
}

// @Summary Medicine detail by product code
// @Tags Medicines
// @Produce json
// @Security BearerAuth
// @Param code path string true "product code"
// @Success 200 {object} domain.MedicineRes "ok"
// @Failure 404 {object} apierr.Ack "MEDICINE_NOT_EXIST"
// @Router /medicines/code/{code} [get]
func (h *handlers) byCode(r *stdhttp.Request) (any, error) {
	memberID, err := httpkit.MemberID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.GetByCode(r.Context(), memberID, httpkit.Param(r, "code"))
}

// @Summary Search medicines by name
// @Description page 1 is also recorded in the caller's recent searches
// @Tags Medicines
// @Produce json
// @Security BearerAuth
// @Param keyword query string true "search term"
// @Param page query int false "1-based page" default(1)
// @Success 200 {object} domain.SearchPageRes "ok"
// @Failure 400 {object} apierr.Ack "KEYWORD_NOT_EXIST or PAGE_OUT_OF_RANGE"
// @Failure 404 {object} apierr.Ack "SEARCH_RESULT_NOT_EXIST"
// @Router /medicines/search [get]
func (h *handlers) search(r *stdhttp.Request) (any, error) {
	memberID, err := httpkit.MemberID(r)
	if err != nil {
		return nil, err
	}
	q, err := httpkit.Query[domain.SearchQuery](r)
	if err != nil {
		return nil, err
	}
	if q.Page == 1 {
		return h.svc.SearchFirstPageAndLog(r.Context(), memberID, q.Keyword)
	}
	return h.svc.SearchPage(r.Context(), memberID, q.Keyword, q.Page)
}

// @Summary Name suggestions for a partial term
// @Tags Medicines
// @Produce json
// @Security BearerAuth
// @Param name query string true "partial name"
// @Success 200 {array} string "up to ten names"
// @Failure 400 {object} apierr.Ack "KEYWORD_NOT_EXIST"
// @Router /medicines/search/related [get]
func (h *handlers) related(r *stdhttp.Request) (any, error) {
	q, err := httpkit.Query[domain.RelatedQuery](r)
	if err != nil {
		return nil, err
	}
	return h.svc.Suggest(r.Context(), q.Name)
}
