package players

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/api"
	"github.com/mcdev12/clubsite/go/internal/models"
)

// PlayerApp defines what the service layer needs from the player application
type PlayerApp interface {
	ListSquad(ctx context.Context, gender models.Gender) ([]models.PlayerPosition, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
}

// squadRoutes maps each squad page to its bucket
var squadRoutes = []struct {
	path   string
	gender models.Gender
}{
	{"/players/man/", models.GenderMan},
	{"/players/women/", models.GenderWoman},
	{"/players/u19/", models.GenderU19},
	{"/players/u21/", models.GenderU21},
}

// Service serves the player routes
type Service struct {
	app PlayerApp
	f   api.Formatter
}

// NewService creates a new player HTTP service
func NewService(app PlayerApp, f api.Formatter) *Service {
	return &Service{
		app: app,
		f:   f,
	}
}

// RegisterRoutes registers the player routes, each wrapped by cached
func (s *Service) RegisterRoutes(mux *http.ServeMux, cached func(http.Handler) http.Handler) {
	for _, route := range squadRoutes {
		mux.Handle("GET "+route.path+"{$}", cached(s.SquadHandler(route.gender)))
	}
	mux.Handle("GET /players/{id}/{$}", cached(http.HandlerFunc(s.GetPlayer)))
}

// SquadHandler serves the positions of one bucket with nested players
func (s *Service) SquadHandler(gender models.Gender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		positions, err := s.app.ListSquad(r.Context(), gender)
		if err != nil {
			api.InternalError(w, r, err)
			return
		}
		api.WriteJSON(w, r, http.StatusOK, NewSquad(s.f, positions))
	})
}

// GetPlayer handles GET /players/{id}/
func (s *Service) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := api.PathUUID(r, "id")
	if !ok {
		api.NotFound(w, r, "Player not found")
		return
	}

	player, err := s.app.GetPlayer(r.Context(), id)
	if errors.Is(err, ErrPlayerNotFound) {
		api.NotFound(w, r, "Player not found")
		return
	}
	if err != nil {
		api.InternalError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, NewDetailResponse(s.f, *player))
}
