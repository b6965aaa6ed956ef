package search

import (
	"context"
	"errors"
	"net/http"

	"github.com/mcdev12/clubsite/go/internal/api"
	"github.com/mcdev12/clubsite/go/internal/club"
	"github.com/mcdev12/clubsite/go/internal/coaches"
	"github.com/mcdev12/clubsite/go/internal/news"
	"github.com/mcdev12/clubsite/go/internal/players"
)

// maxBodyBytes bounds the request body read by the search handler
const maxBodyBytes = 1 << 16

// SearchApp defines what the service layer needs from the search application
type SearchApp interface {
	Search(ctx context.Context, query string) (*Results, error)
}

// Response is the combined search result
type Response struct {
	News    []news.ListItem       `json:"news"`
	Players []players.ListItem    `json:"players"`
	Coaches []coaches.ListItem    `json:"coaches"`
	Leaders []club.LeaderResponse `json:"leaders"`
}

// Service serves POST /search/
type Service struct {
	app SearchApp
	f   api.Formatter
}

// NewService creates a new search HTTP service
func NewService(app SearchApp, f api.Formatter) *Service {
	return &Service{
		app: app,
		f:   f,
	}
}

// RegisterRoutes registers the search route. Search is never cached.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /search/{$}", s.Search)
}

// Search handles POST /search/
func (s *Service) Search(w http.ResponseWriter, r *http.Request) {
	query, err := ParseRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	var verr ValidationError
	switch {
	case errors.As(err, &verr):
		api.WriteJSON(w, r, http.StatusBadRequest, verr)
		return
	case err != nil:
		api.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.app.Search(r.Context(), query)
	if err != nil {
		api.InternalError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, Response{
		News:    news.NewListItems(s.f, res.News),
		Players: players.NewListItems(s.f, res.Players),
		Coaches: coaches.NewListItems(s.f, res.Coaches),
		Leaders: club.NewLeaders(s.f, res.Leaders),
	})
}
