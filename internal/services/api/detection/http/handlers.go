// Package http provides http transport for detection
package http

import (
	"errors"
	"io"
	stdhttp "net/http"

	"pillbox/internal/adapters/detector"
	"pillbox/internal/modkit/httpkit"
	perr "pillbox/internal/platform/errors"
	svc "pillbox/internal/services/api/detection/service"
)

// DefaultMaxUpload caps the multipart body when no limit is configured
const DefaultMaxUpload int64 = 10 << 20

// Register mounts the detection endpoint; maxUpload bounds the request body in bytes
func Register(r httpkit.Router, s svc.Service, maxUpload int64) {
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUpload
	}
	h := &handlers{svc: s, max: maxUpload}
	httpkit.Post(r, "/", h.detect)
}

type handlers struct {
	svc svc.Service
	max int64
}

// @Summary Identify a medicine from a photo
// @Description the hit is appended to the caller's detection log
// @Tags Detection
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "medicine photo"
// @Success 200 {object} meddom.MedicineRes "ok"
// @Failure 400 {object} apierr.Ack "MEDICINE_NOT_DETECT"
// @Failure 503 {object} apierr.Ack "DETECTOR_UNAVAILABLE"
// @Router /detection [post]
func (h *handlers) detect(r *stdhttp.Request) (any, error) {
	memberID, err := httpkit.MemberID(r)
	if err != nil {
		return nil, err
	}
	img, err := h.readImage(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Detect(r.Context(), memberID, img)
}

func (h *handlers) readImage(r *stdhttp.Request) (detector.Image, error) {
	r.Body = stdhttp.MaxBytesReader(nil, r.Body, h.max)
	if err := r.ParseMultipartForm(h.max); err != nil {
		var tooBig *stdhttp.MaxBytesError
		if errors.As(err, &tooBig) {
			return detector.Image{}, perr.WithField(perr.Validationf("image must be at most %d bytes", h.max), "image")
		}
		return detector.Image{}, perr.WithField(perr.Validationf("multipart form with an image field is required"), "image")
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	f, hdr, err := r.FormFile("image")
	if err != nil {
		return detector.Image{}, perr.WithField(perr.Validationf("image is required"), "image")
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return detector.Image{}, perr.Wrap(err, perr.ErrorCodeValidation, "read image")
	}
	return detector.Image{
		Filename:    hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
