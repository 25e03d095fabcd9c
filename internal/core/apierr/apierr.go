// Package apierr holds the named client errors shared by the API modules
//
// Each value is a *perr.Error carrying a stable wire name; compare with
// errors.Is, which matches on name and code so copies made by perr.WithField
// or perr.WithCause still match
package apierr

import (
	"errors"

	"pillbox/internal/core/paging"
	perr "pillbox/internal/platform/errors"
)

// 400
var (
	ErrPageOutOfRange    = perr.Named(perr.ErrorCodeValidation, "PAGE_OUT_OF_RANGE", "page is out of range")
	ErrKeywordNotExist   = perr.Named(perr.ErrorCodeValidation, "KEYWORD_NOT_EXIST", "search keyword is empty")
	ErrMedicineNotDetect = perr.Named(perr.ErrorCodeValidation, "MEDICINE_NOT_DETECT", "medicine could not be detected")
)

// 404
var (
	ErrMedicineNotExist     = perr.Named(perr.ErrorCodeNotFound, "MEDICINE_NOT_EXIST", "medicine does not exist")
	ErrMemberNotExist       = perr.Named(perr.ErrorCodeNotFound, "MEMBER_NOT_EXIST", "member does not exist")
	ErrFavoriteNotExist     = perr.Named(perr.ErrorCodeNotFound, "FAVORITE_NOT_EXIST", "favorite does not exist")
	ErrDetectionLogNotExist = perr.Named(perr.ErrorCodeNotFound, "DETECTION_LOG_NOT_EXIST", "detection log does not exist")
	ErrSearchResultNotExist = perr.Named(perr.ErrorCodeNotFound, "SEARCH_RESULT_NOT_EXIST", "no medicine matches the keyword")
	ErrSearchLogNotExist    = perr.Named(perr.ErrorCodeNotFound, "SEARCH_LOG_NOT_EXIST", "search log does not exist")
)

// 403
var (
	ErrFavoriteNoPermission     = perr.Named(perr.ErrorCodeForbidden, "FAVORITE_NO_PERMISSION", "favorite belongs to another member")
	ErrDetectionLogNoPermission = perr.Named(perr.ErrorCodeForbidden, "DETECTION_LOG_NO_PERMISSION", "detection log belongs to another member")
)

// 409
var ErrFavoriteAlreadyExist = perr.Named(perr.ErrorCodeDuplicateKey, "FAVORITE_ALREADY_EXIST", "medicine is already a favorite")

// 503
var ErrDetectorUnavailable = perr.Named(perr.ErrorCodeUnavailable, "DETECTOR_UNAVAILABLE", "detection service is unavailable")

// Ack is the body mutations answer with
type Ack struct {
	Name       string `json:"name" example:"SAVE_FAVORITE_SUCCESS"`
	HTTPStatus int    `json:"httpStatus" example:"201"`
	Message    string `json:"message" example:"favorite saved"`
}

// NewAck builds an Ack
func NewAck(name string, status int, msg string) Ack {
	return Ack{Name: name, HTTPStatus: status, Message: msg}
}

// FromPaging maps a paging range error onto client errors
// an empty collection reports notExist so each caller keeps its own name
func FromPaging(err, notExist error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, paging.ErrEmptyCollection):
		return notExist
	case errors.Is(err, paging.ErrPageOutOfRange):
		return ErrPageOutOfRange
	default:
		return perr.Wrap(err, perr.ErrorCodeUnknown, "paging failed")
	}
}
