// Package service contains recent search log workflows
package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"pillbox/internal/core/apierr"
	perr "pillbox/internal/platform/errors"
	"pillbox/internal/platform/logger"
	"pillbox/internal/services/api/searchlogs/domain"
	"pillbox/internal/services/api/searchlogs/repo"
)

// timeLayout renders a local timestamp without zone, to the microsecond
const timeLayout = "2006-01-02T15:04:05.000000"

// Service defines the service contract for recent search logs
type Service interface {
	domain.ServicePort
	domain.AppendPort
}

// Svc implements the Service interface
type Svc struct {
	Repo repo.Repo
	now  func() time.Time
}

// New creates a new search log service
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("searchlogs.Service requires a non nil Repo")
	}
	return &Svc{Repo: r, now: time.Now}
}

// Append records term as typed, trimmed, at the head of the member's list
func (s *Svc) Append(ctx context.Context, memberID int64, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return apierr.ErrKeywordNotExist
	}
	raw, err := encode(domain.SearchLog{Name: term, CreatedAt: s.now().Format(timeLayout)})
	if err != nil {
		return err
	}
	return perr.FromRedis(s.Repo.Push(ctx, memberID, raw), "append search log")
}

// List returns up to ten entries, newest first
func (s *Svc) List(ctx context.Context, memberID int64) ([]domain.SearchLog, error) {
	raws, err := s.Repo.Range(ctx, memberID)
	if err != nil {
		return nil, perr.FromRedis(err, "list search logs")
	}
	out := make([]domain.SearchLog, 0, len(raws))
	for _, raw := range raws {
		var e domain.SearchLog
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			logger.C(ctx).Warn().Err(err).Int64("member_id", memberID).Msg("skipping undecodable search log")
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// RemoveOne deletes the entry equal to the given one
func (s *Svc) RemoveOne(ctx context.Context, memberID int64, entry domain.SearchLog) error {
	raw, err := encode(entry)
	if err != nil {
		return err
	}
	n, err := s.Repo.Remove(ctx, memberID, raw)
	if err != nil {
		return perr.FromRedis(err, "remove search log")
	}
	if n == 0 {
		return apierr.ErrSearchLogNotExist
	}
	return nil
}

// Clear removes the member's whole list
func (s *Svc) Clear(ctx context.Context, memberID int64) error {
	n, err := s.Repo.Clear(ctx, memberID)
	if err != nil {
		return perr.FromRedis(err, "clear search logs")
	}
	if n == 0 {
		return apierr.ErrSearchLogNotExist
	}
	return nil
}

// encode is the stored form; invalid UTF-8 becomes U+FFFD up front so a listed
// entry encodes back to the same bytes
func encode(e domain.SearchLog) (string, error) {
	e.Name = strings.ToValidUTF8(e.Name, "\uFFFD")
	e.CreatedAt = strings.ToValidUTF8(e.CreatedAt, "\uFFFD")
	b, err := json.Marshal(e)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeJSON, "encode search log")
	}
	return string(b), nil
}
