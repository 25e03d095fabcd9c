package store

import (
	perr "pillbox/internal/platform/errors"
)

// Collect drains rows through scan and closes them; an empty result is an empty slice
func Collect[T any](rows Rows, scan func(Row) (T, error)) ([]T, error) {
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// First scans the first row and closes rows; no row is perr.ErrNotFound
func First[T any](rows Rows, scan func(Row) (T, error)) (T, error) {
	defer rows.Close()

	var zero T
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return zero, err
		}
		return zero, perr.ErrNotFound
	}
	v, err := scan(rows)
	if err != nil {
		return zero, err
	}
	return v, rows.Err()
}

// Scalar reads the first column of the first row into T, zero when there is no row
// the driver decides which T fits: clickhouse count() wants uint64, postgres count(*) int64
func Scalar[T any](rows Rows) (T, error) {
	v, err := First(rows, func(r Row) (T, error) {
		var v T
		return v, r.Scan(&v)
	})
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return v, nil
	}
	return v, err
}
