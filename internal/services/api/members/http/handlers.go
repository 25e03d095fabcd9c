// Package http provides http transport for members
package http

import (
	stdhttp "net/http"

	"pillbox/internal/modkit/httpkit"
	svc "pillbox/internal/services/api/members/service"
)

// Register mounts member endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/me", h.me)
	httpkit.Get(r, "/mypage", h.mypage)
}

type handlers struct{ svc svc.Service }

// @Summary Current member profile
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.MemberRes "ok"
// @Failure 404 {object} apierr.Ack "MEMBER_NOT_EXIST"
// @Router /members/me [get]
func (h *handlers) me(r *stdhttp.Request) (any, error) {
	id, err := httpkit.MemberID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Me(r.Context(), id)
}

// @Summary My page summary
// @Description profile with favorite and detection log counts
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.MyPageRes "ok"
// @Failure 404 {object} apierr.Ack "MEMBER_NOT_EXIST"
// @Router /members/mypage [get]
func (h *handlers) mypage(r *stdhttp.Request) (any, error) {
	id, err := httpkit.MemberID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.MyPage(r.Context(), id)
}
