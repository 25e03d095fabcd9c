// Package http provides http transport for detection logs
package http

import (
	stdhttp "net/http"

	"pillbox/internal/core/apierr"
	"pillbox/internal/modkit/httpkit"
	"pillbox/internal/services/api/detectionlogs/domain"
	svc "pillbox/internal/services/api/detectionlogs/service"
)

// Register mounts detection log endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Delete(r, "/{id}", h.delete)
	httpkit.Delete(r, "/", h.deleteAll)
}

type handlers struct{ svc svc.Service }

// @Summary List detection history
// @Tags DetectionLogs
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page" default(1)
// @Param sort query string false "asc or desc by creation time" default(desc)
// @Success 200 {object} domain.DetectionLogPageRes "ok"
// @Failure 400 {object} apierr.Ack "PAGE_OUT_OF_RANGE"
// @Failure 404 {object} apierr.Ack "DETECTION_LOG_NOT_EXIST"
// @Router /detection-logs [get]
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

// @Summary Record a detection
// @Tags DetectionLogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.CreateInput true "detected medicine"
// @Success 201 {object} apierr.Ack "SAVE_DETECTION_LOG_SUCCESS"
// @Failure 404 {object} apierr.Ack "MEDICINE_NOT_EXIST"
// @Router /detection-logs [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	memberID, err := httpkit.MemberID(r)
	if err != nil {
		return nil, err
	}
	if _, err := h.svc.Create(r.Context(), memberID, in.MedicineID); err != nil {
		return nil, err
	}
	return httpkit.Created(apierr.NewAck("SAVE_DETECTION_LOG_SUCCESS", stdhttp.StatusCreated, "detection log saved")), nil
}

// @Summary Delete one detection log
// @Tags DetectionLogs
// @Produce json
// @Security BearerAuth
// @Param id path int true "detection log id"
// @Success 200 {object} apierr.Ack "DELETE_DETECTION_LOG_SUCCESS"
// @Failure 403 {object} apierr.Ack "DETECTION_LOG_NO_PERMISSION"
// @Failure 404 {object} apierr.Ack "DETECTION_LOG_NOT_EXIST"
// @Router /detection-logs/{id} [delete]
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
	return apierr.NewAck("DELETE_DETECTION_LOG_SUCCESS", stdhttp.StatusOK, "detection log deleted"), nil
}

// @Summary Clear the caller's detection history
// @Tags DetectionLogs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} apierr.Ack "DELETE_ALL_DETECTION_LOG_SUCCESS"
// @Failure 404 {object} apierr.Ack "DETECTION_LOG_NOT_EXIST"
// @Router /detection-logs [delete]
func (h *handlers) deleteAll(r *stdhttp.Request) (any, error) {
	memberID, err := httpkit.MemberID(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.DeleteAll(r.Context(), memberID); err != nil {
		return nil, err
	}
	return apierr.NewAck("DELETE_ALL_DETECTION_LOG_SUCCESS", stdhttp.StatusOK, "detection logs deleted"), nil
}
