// Package api holds the JSON plumbing shared by every HTTP service.
package api

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrorResponse is the body of every 404 and 500 the API returns
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON encodes v as the response body with the given status
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

// WriteError writes {"error": msg}
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	WriteJSON(w, r, status, ErrorResponse{Error: msg})
}

// NotFound writes a 404 with msg
func NotFound(w http.ResponseWriter, r *http.Request, msg string) {
	WriteError(w, r, http.StatusNotFound, msg)
}

// InternalError logs err and writes a generic 500. The cause never reaches
// the client.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	WriteError(w, r, http.StatusInternalServerError, "internal server error")
}

// NotFoundHandler answers unknown routes with the JSON not-found shape
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		NotFound(w, r, "Not found.")
	})
}

// PathUUID parses the named path wildcard as a UUID
func PathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// PathSlug returns the named path wildcard if it is a valid slug
func PathSlug(r *http.Request, name string) (string, bool) {
	slug := r.PathValue(name)
	if !slugPattern.MatchString(slug) {
		return "", false
	}
	return slug, true
}
