// Package paging computes page windows over counted collections
//
// A window is derived from a total row count, a fixed page size and a 1-based
// requested page. Callers translate the two range errors into their own
// collection specific error names, so empty and out of range stay distinct
package paging

import (
	"errors"
	"strings"
)

const (
	// PageSize is the fixed page size for owned collections and search results
	PageSize = 6

	// SuggestSize caps keyword suggestions
	SuggestSize = 10
)

var (
	// ErrEmptyCollection is returned when there is nothing to page over
	ErrEmptyCollection = errors.New("paging: empty collection")

	// ErrPageOutOfRange is returned when the requested page is outside [1, totalPages]
	ErrPageOutOfRange = errors.New("paging: page out of range")

	// ErrInvalidPageSize is a programmer error (pageSize <= 0)
	ErrInvalidPageSize = errors.New("paging: page size must be positive")
)

// Window is the offset/limit view of one page
// Offset is the zero-based page index, not a row offset; see RowOffset
type Window struct {
	Offset     int
	Limit      int
	TotalPages int
	IsLastPage bool
}

// RowOffset returns the number of rows to skip for this window
func (w Window) RowOffset() int { return w.Offset * w.Limit }

// Compute derives the window for requestedPage over totalCount rows
func Compute(totalCount, pageSize, requestedPage int) (Window, error) {
	if pageSize <= 0 {
		return Window{}, ErrInvalidPageSize
	}
	if totalCount <= 0 {
		return Window{}, ErrEmptyCollection
	}
	totalPages := TotalPages(totalCount, pageSize)
	if requestedPage < 1 || requestedPage > totalPages {
		return Window{}, ErrPageOutOfRange
	}
	return Window{
		Offset:     requestedPage - 1,
		Limit:      pageSize,
		TotalPages: totalPages,
		IsLastPage: requestedPage == totalPages,
	}, nil
}

// TotalPages is ceil(totalCount / pageSize), 0 for an empty collection
func TotalPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// Direction orders a listing by creation time
type Direction string

const (
	// Asc lists oldest first
	Asc Direction = "asc"
	// Desc lists newest first
	Desc Direction = "desc"
)

// ParseDirection accepts asc/ascending and desc/descending in any case
// anything else, including empty, falls back to Desc
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Asc
	default:
		return Desc
	}
}

// SQL returns the ORDER BY keyword for the direction
func (d Direction) SQL() string {
	if d == Asc {
		return "ASC"
	}
	return "DESC"
}
