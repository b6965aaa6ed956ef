// Package pagination implements page-number pagination with the
// {count, next, previous, results} envelope.
package pagination

import (
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"
)

const (
	PageParam     = "page"
	PageSizeParam = "page_size"

	// maxOffset bounds (page-1)*size so offsets fit a SQL integer
	maxOffset = math.MaxInt32
)

// ErrInvalidPage is returned for a page number that is malformed or past
// the last page
var ErrInvalidPage = errors.New("invalid page")

// Paginator parses page parameters against configured size limits
type Paginator struct {
	DefaultSize int
	MaxSize     int
}

// Params is a validated page request
type Params struct {
	Page int
	Size int
}

// Limit is the row count for the page
func (p Params) Limit() int32 { return int32(p.Size) }

// Offset is the number of rows before the page. Parse guarantees it fits.
func (p Params) Offset() int32 { return int32((p.Page - 1) * p.Size) }

// Check reports ErrInvalidPage when the page starts past count. Page 1 is
// always valid so an empty list still renders.
func (p Params) Check(count int64) error {
	if p.Page == 1 {
		return nil
	}
	if int64(p.Offset()) >= count {
		return ErrInvalidPage
	}
	return nil
}

// Parse reads page and page_size from the query string. A bad page_size
// falls back to the default; a bad page is an error.
func (p Paginator) Parse(r *http.Request) (Params, error) {
	q := r.URL.Query()

	size := p.DefaultSize
	if raw := q.Get(PageSizeParam); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			size = n
		}
	}
	if p.MaxSize > 0 && size > p.MaxSize {
		size = p.MaxSize
	}
	size = min(size, maxOffset)

	page := 1
	if raw := q.Get(PageParam); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n-1 > maxOffset/size {
			return Params{}, ErrInvalidPage
		}
		page = n
	}

	return Params{Page: page, Size: size}, nil
}

// Page is the paginated response envelope
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewPage builds the envelope for results, linking neighbours relative to r
func NewPage[T any](r *http.Request, params Params, count int64, results []T) Page[T] {
	if results == nil {
		results = []T{}
	}
	page := Page[T]{
		Count:   count,
		Results: results,
	}
	if int64(params.Page)*int64(params.Size) < count {
		next := pageURL(r, params.Page+1)
		page.Next = &next
	}
	if params.Page > 1 {
		prev := pageURL(r, params.Page-1)
		page.Previous = &prev
	}
	return page
}

// pageURL rewrites the request URL to point at page n. The first page is
// linked without a page parameter.
func pageURL(r *http.Request, n int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}

	q := r.URL.Query()
	if n == 1 {
		q.Del(PageParam)
	} else {
		q.Set(PageParam, strconv.Itoa(n))
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: q.Encode(),
	}
	return u.String()
}
