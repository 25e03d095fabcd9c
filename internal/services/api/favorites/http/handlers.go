// Package http provides http transport for favorites
package http

import (
	stdhttp "net/http"

	"pillbox/internal/core/apierr"
	"pillbox/internal/modkit/httpkit"
	"pillbox/internal/services/api/favorites/domain"
	svc "pillbox/internal/services/api/favorites/service"
)

// Register mounts favorites endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Delete(r, "/{id}", h.delete)
	httpkit.Delete(r, "/", h.deleteAll)
}

type handlers struct{ svc svc.Service }

// @Summary List favorites
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page" default(1)
// @Param sort query string false "asc or desc by creation time" default(desc)
// @Success 200 {object} domain.FavoritePageRes "ok"
// @Failure 400 {object} apierr.Ack "PAGE_OUT_OF_RANGE"
// @Failure 404 {object} apierr.Ack "FAVORITE_NOT_EXIST"
// @Router /favorites [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	memberID, err := httpkit.MemberID(r)
	if err != nil {
		return nil, err
	}
	q, err := httpkit.Query[domain.ListQuery](r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), memberID, q)
}

// @Summary Get one favorite
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "favorite id"
// @Success 200 {object} domain.FavoriteRes "ok"
// @Failure 403 {object} apierr.Ack "FAVORITE_NO_PERMISSION"
// @Failure 404 {object} apierr.Ack "FAVORITE_NOT_EXIST"
// @Router /favorites/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	memberID, err := httpkit.MemberID(r)
	if err != nil {
		return nil, err
	}
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id, memberID)
}

// @Summary Save a favorite
// @Tags Favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.CreateInput true "medicine to save"
// @Success 201 {object} apierr.Ack "SAVE_FAVORITE_SUCCESS"
// @Failure 404 {object} apierr.Ack "MEDICINE_NOT_EXIST"
// @Failure 409 {object} apierr.Ack "FAVORITE_ALREADY_EXIST"
// @Router /favorites [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	memberID, err := httpkit.MemberID(r)
	if err != nil {
		return nil, err
	}
	if _, err := h.svc.Create(r.Context(), memberID, in.MedicineID); err != nil {
		return nil, err
	}
	return httpkit.Created(apierr.NewAck("SAVE_FAVORITE_SUCCESS", stdhttp.StatusCreated, "favorite saved")), nil
}

// @Summary Delete one favorite
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "favorite id"
// @Success 200 {object} apierr.Ack "DELETE_FAVORITE_SUCCESS"
// @Failure 403 {object} apierr.Ack "FAVORITE_NO_PERMISSION"
// @Failure 404 {object} apierr.Ack "FAVORITE_NOT_EXIST"
// @Router /favorites/{id} [delete]
func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	memberID, err := httpkit.MemberID(r)
	if err != nil {
		return nil, err
	}
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), id, memberID); err != nil {
		return nil, err
	}
	return apierr.NewAck("DELETE_FAVORITE_SUCCESS", stdhttp.StatusOK, "favorite deleted"), nil
}

// @Summary Delete every favorite of the caller
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} apierr.Ack "DELETE_ALL_FAVORITE_SUCCESS"
// @Failure 404 {object} apierr.Ack "FAVORITE_NOT_EXIST"
// @Router /favorites [delete]
func (h *handlers) deleteAll(r *stdhttp.Request) (any, error) {
	memberID, err := httpkit.MemberID(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.DeleteAll(r.Context(), memberID); err != nil {
		return nil, err
	}
	return apierr.NewAck("DELETE_ALL_FAVORITE_SUCCESS", stdhttp.StatusOK, "favorites deleted"), nil
}
