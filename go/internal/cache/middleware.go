package cache

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	// HeaderCache reports HIT or MISS on cached routes
	HeaderCache = "X-Cache"

	// DefaultTTL is how long a rendered response is served from the cache
	DefaultTTL = 120 * time.Second
)

// Middleware serves repeated GET requests from a Store
type Middleware struct {
	store  Store
	ttl    time.Duration
	prefix string
}

// NewMiddleware creates a Middleware. prefix namespaces the keys so several
// deployments can share one Redis.
func NewMiddleware(store Store, ttl time.Duration, prefix string) *Middleware {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Middleware{store: store, ttl: ttl, prefix: prefix}
}

// Key identifies a request: path plus the query string with its parameters
// sorted, so ?b=2&a=1 and ?a=1&b=2 share an entry.
func Key(prefix string, r *http.Request) string {
	return prefix + ":" + r.URL.Path + "?" + r.URL.Query().Encode()
}

// Handler wraps next. Only successful GET responses are stored.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		logger := zerolog.Ctx(r.Context())
		key := Key(m.prefix, r)

		body, ok, err := m.store.Get(r.Context(), key)
		if err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		if ok {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set(HeaderCache, "HIT")
			w.Header().Set("Cache-Control", m.cacheControl())
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write(body); err != nil {
				logger.Error().Err(err).Msg("failed to write cached response")
			}
			return
		}

		rec := &recorder{ResponseWriter: w, cacheControl: m.cacheControl()}
		w.Header().Set(HeaderCache, "MISS")
		next.ServeHTTP(rec, r)

		if rec.status() != http.StatusOK {
			return
		}
		if err := m.store.Set(r.Context(), key, rec.body.Bytes(), m.ttl); err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	})
}

func (m *Middleware) cacheControl() string {
	return fmt.Sprintf("max-age=%d", int(m.ttl.Seconds()))
}

// recorder passes the response through while keeping a copy of the body
type recorder struct {
	http.ResponseWriter
	code         int
	body         bytes.Buffer
	cacheControl string
}

func (r *recorder) WriteHeader(code int) {
	if r.code != 0 {
		return
	}
	r.code = code
	if code == http.StatusOK {
		r.Header().Set("Cache-Control", r.cacheControl)
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	if r.code == 0 {
		r.WriteHeader(http.StatusOK)
	}
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *recorder) status() int {
	if r.code == 0 {
		return http.StatusOK
	}
	return r.code
}
