// Package pagination windows ordered result sets into fixed-size pages.
package pagination

import "errors"

// PageSize is the number of items served per page.
const PageSize = 10

// ErrInvalidPage is returned for page numbers below 1.
var ErrInvalidPage = errors.New("page number must be 1 or greater")

// Window computes the half-open bounds [lo, hi) of a 1-based page over a
// sequence of length n. A page past the end yields an empty window, not an
// error; whether emptiness is a failure is the caller's call.
func Window(page, n int) (int, int, error) {
	if page < 1 {
		return 0, 0, ErrInvalidPage
	}

	lo := (page - 1) * PageSize
	hi := lo + PageSize
	if lo > n {
		lo = n
	}
	if hi > n {
		hi = n
	}
	return lo, hi, nil
}

// Page returns the requested page of items, preserving input order. The
// result is always a fresh, non-nil slice.
func Page[T any](page int, items []T) ([]T, error) {
	lo, hi, err := Window(page, len(items))
	if err != nil {
		return nil, err
	}

	out := make([]T, hi-lo)
	copy(out, items[lo:hi])
	return out, nil
}
