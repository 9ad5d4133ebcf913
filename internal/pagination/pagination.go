package pagination

import (
	"fmt"
	"net/url"
	"strconv"
)

// Limit bounds for a single page.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Params is a validated limit/offset window over a result set.
type Params struct {
	Limit  int
	Offset int
}

// Default returns the window used when the caller supplies no parameters.
func Default() Params {
	return Params{Limit: DefaultLimit, Offset: 0}
}

// FromQuery parses limit/offset query parameters. Absent parameters fall back
// to defaults; out-of-range or non-numeric values are rejected.
func FromQuery(q url.Values) (Params, error) {
	p := Default()

	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > MaxLimit {
			return Params{}, fmt.Errorf("invalid limit: %q", s)
		}
		p.Limit = v
	}
	if s := q.Get("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return Params{}, fmt.Errorf("invalid offset: %q", s)
		}
		p.Offset = v
	}
	return p, nil
}

// Page is one bounded slice of a result set plus its metadata.
type Page[T any] struct {
	Items  []T
	Total  int64
	Limit  int
	Offset int
}

// NewPage builds a Page from items and the total count of the unsliced result
// set. A nil items slice is normalized to an empty one.
func NewPage[T any](items []T, total int64, p Params) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:  items,
		Total:  total,
		Limit:  p.Limit,
		Offset: p.Offset,
	}
}
