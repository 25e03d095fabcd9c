// Package service contains medicine detail and search workflows
package service

import (
	"context"
	"errors"
	"strings"

	"pillbox/internal/core/apierr"
	"pillbox/internal/core/keyword"
	"pillbox/internal/core/paging"
	"pillbox/internal/modkit/repokit"
	perr "pillbox/internal/platform/errors"
	"pillbox/internal/platform/logger"
	"pillbox/internal/services/api/medicines/domain"
	"pillbox/internal/services/api/medicines/repo"
)

// Service defines the service contract for medicines
type Service interface{ domain.ServicePort }

// Options carries the cross module ports; nil ports degrade gracefully
type Options struct {
	Favorites  domain.FavoritePort
	SearchLogs domain.SearchLogPort
	Labels     domain.LabelPort

	PageSize    int
	SuggestSize int
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	favs   domain.FavoritePort
	logs   domain.SearchLogPort
	labels domain.LabelPort

	pageSize    int
	suggestSize int
}

// New creates a new medicines service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opt Options) *Svc {
	if db == nil {
		panic("medicines.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("medicines.Service requires a non nil Repo binder")
	}
	if opt.PageSize <= 0 {
		opt.PageSize = paging.PageSize
	}
	if opt.SuggestSize <= 0 {
		opt.SuggestSize = paging.SuggestSize
	}
	return &Svc{
		Repo:        binder.Bind(db),
		binder:      binder,
		db:          db,
		favs:        opt.Favorites,
		logs:        opt.SearchLogs,
		labels:      opt.Labels,
		pageSize:    opt.PageSize,
		suggestSize: opt.SuggestSize,
	}
}

// GetByID returns the detail view of medicine id for memberID
func (s *Svc) GetByID(ctx context.Context, memberID, id int64) (domain.MedicineRes, error) {
	it, err := s.Repo.ByID(ctx, id)
	if err != nil {
		return domain.MedicineRes{}, notExist(err)
	}
	return s.detail(ctx, memberID, it)
}

// GetByCode returns the detail view of the medicine with the given code
func (s *Svc) GetByCode(ctx context.Context, memberID int64, code string) (domain.MedicineRes, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.MedicineRes{}, apierr.ErrMedicineNotExist
	}
	it, err := s.Repo.ByCode(ctx, code)
	if err != nil {
		return domain.MedicineRes{}, notExist(err)
	}
	return s.detail(ctx, memberID, it)
}

func (s *Svc) detail(ctx context.Context, memberID int64, it domain.CatalogItem) (domain.MedicineRes, error) {
	fav, err := s.favorites(ctx, memberID, []int64{it.ID})
	if err != nil {
		return domain.MedicineRes{}, err
	}
	var l domain.Labels
	if s.labels != nil {
		l = s.labels.Labels(ctx, it.Code)
	}
	return domain.MedicineRes{
		ID:          it.ID,
		Code:        it.Code,
		Name:        it.Name,
		Company:     it.Company,
		Ingredients: ParseIngredients(it.Ingredient),
		Image:       it.Image,
		Effect:      l.Effect,
		Usages:      l.Usages,
		Precautions: l.Precautions,
		IsFavorite:  fav[it.ID],
	}, nil
}

// SearchPage returns one page of medicines whose name contains term
// it never records the search
func (s *Svc) SearchPage(ctx context.Context, memberID int64, term string, page int) (domain.SearchPageRes, error) {
	q := keyword.Normalize(term)
	if q == "" {
		return domain.SearchPageRes{}, apierr.ErrKeywordNotExist
	}

	total, err := s.Repo.CountMatches(ctx, q)
	if err != nil {
		return domain.SearchPageRes{}, searchErr(err, "count search results")
	}
	w, err := paging.Compute(total, s.pageSize, page)
	if err != nil {
		return domain.SearchPageRes{}, apierr.FromPaging(err, apierr.ErrSearchResultNotExist)
	}
	docs, err := s.Repo.FindMatches(ctx, q, w.Limit, w.RowOffset())
	if err != nil {
		return domain.SearchPageRes{}, searchErr(err, "find search results")
	}

	ids := make([]int64, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	fav, err := s.favorites(ctx, memberID, ids)
	if err != nil {
		return domain.SearchPageRes{}, err
	}

	items := make([]domain.MedicineSearchRes, 0, len(docs))
	for _, d := range docs {
		items = append(items, domain.MedicineSearchRes{
			ID:         d.ID,
			Name:       d.Name,
			Company:    d.Company,
			Image:      d.Image,
			IsFavorite: fav[d.ID],
		})
	}
	return domain.SearchPageRes{
		Total:     total,
		TotalPage: w.TotalPages,
		Page:      page,
		LastPage:  w.IsLastPage,
		Items:     items,
	}, nil
}

// SearchFirstPageAndLog returns page one and then records term in the member's recent searches
// a failed log write is reported in the logs only
func (s *Svc) SearchFirstPageAndLog(ctx context.Context, memberID int64, term string) (domain.SearchPageRes, error) {
	res, err := s.SearchPage(ctx, memberID, term, 1)
	if err != nil {
		return domain.SearchPageRes{}, err
	}
	if s.logs != nil {
		if lerr := s.logs.Append(ctx, memberID, strings.TrimSpace(term)); lerr != nil {
			logger.C(ctx).Warn().Err(lerr).Int64("member_id", memberID).Msg("recording search term failed")
		}
	}
	return res, nil
}

// Suggest returns up to ten medicine names for term in relevance order
func (s *Svc) Suggest(ctx context.Context, term string) ([]string, error) {
	q := keyword.Normalize(term)
	if q == "" {
		return nil, apierr.ErrKeywordNotExist
	}
	docs, err := s.Repo.FindMatches(ctx, q, s.suggestSize, 0)
	if err != nil {
		return nil, searchErr(err, "suggest names")
	}
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Name)
	}
	return out, nil
}

// ParseIngredients splits a pipe delimited ingredient list, trimming and dropping empties
func ParseIngredients(s string) []string {
	out := []string{}
	for part := range strings.SplitSeq(s, "|") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (s *Svc) favorites(ctx context.Context, memberID int64, ids []int64) (map[int64]bool, error) {
	if s.favs == nil || len(ids) == 0 {
		return map[int64]bool{}, nil
	}
	return s.favs.ExistsMany(ctx, memberID, ids)
}

func notExist(err error) error {
	if errors.Is(err, perr.ErrNotFound) {
		return apierr.ErrMedicineNotExist
	}
	return perr.FromPostgres(err, "load medicine")
}

func searchErr(err error, msg string) error {
	if errors.Is(err, repo.ErrSearchDisabled) {
		return err
	}
	return perr.Wrap(err, perr.ErrorCodeUnavailable, msg)
}
