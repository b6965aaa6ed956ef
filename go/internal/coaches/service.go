package coaches

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/api"
	"github.com/mcdev12/clubsite/go/internal/models"
)

// CoachApp defines what the service layer needs from the coach application
type CoachApp interface {
	ListTeamCoaches(ctx context.Context, gender models.Gender) ([]models.Coach, error)
	ListStaffTable(ctx context.Context, gender models.Gender) ([]models.Coach, error)
	ListAcademyCoaches(ctx context.Context) ([]models.Coach, error)
	GetCoach(ctx context.Context, id uuid.UUID) (*models.Coach, error)
}

// Service serves the coach routes
type Service struct {
	app CoachApp
	f   api.Formatter
}

// NewService creates a new coach HTTP service
func NewService(app CoachApp, f api.Formatter) *Service {
	return &Service{
		app: app,
		f:   f,
	}
}

// RegisterRoutes registers the coach routes, each wrapped by cached
func (s *Service) RegisterRoutes(mux *http.ServeMux, cached func(http.Handler) http.Handler) {
	mux.Handle("GET /coach/list/man/{$}", cached(s.TeamCoachesHandler(models.GenderMan)))
	mux.Handle("GET /coach/list/women/{$}", cached(s.TeamCoachesHandler(models.GenderWoman)))
	mux.Handle("GET /coach/list/academy/{$}", cached(http.HandlerFunc(s.ListAcademyCoaches)))
	mux.Handle("GET /coach/table/list/man/{$}", cached(s.StaffTableHandler(models.GenderMan)))
	mux.Handle("GET /coach/table/list/women/{$}", cached(s.StaffTableHandler(models.GenderWoman)))
	mux.Handle("GET /coach/{id}/{$}", cached(http.HandlerFunc(s.GetCoach)))
}

// TeamCoachesHandler serves the first-team staff of one gender
func (s *Service) TeamCoachesHandler(gender models.Gender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		coaches, err := s.app.ListTeamCoaches(r.Context(), gender)
		if err != nil {
			api.InternalError(w, r, err)
			return
		}
		api.WriteJSON(w, r, http.StatusOK, NewListItems(s.f, coaches))
	})
}

// StaffTableHandler serves the staff table of one gender
func (s *Service) StaffTableHandler(gender models.Gender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		coaches, err := s.app.ListStaffTable(r.Context(), gender)
		if err != nil {
			api.InternalError(w, r, err)
			return
		}
		api.WriteJSON(w, r, http.StatusOK, NewTable(coaches))
	})
}

// ListAcademyCoaches handles GET /coach/list/academy/
func (s *Service) ListAcademyCoaches(w http.ResponseWriter, r *http.Request) {
	coaches, err := s.app.ListAcademyCoaches(r.Context())
	if err != nil {
		api.InternalError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, NewListItems(s.f, coaches))
}

// GetCoach handles GET /coach/{id}/
func (s *Service) GetCoach(w http.ResponseWriter, r *http.Request) {
	id, ok := api.PathUUID(r, "id")
	if !ok {
		api.NotFound(w, r, "Coach not found")
		return
	}

	coach, err := s.app.GetCoach(r.Context(), id)
	if errors.Is(err, ErrCoachNotFound) {
		api.NotFound(w, r, "Coach not found")
		return
	}
	if err != nil {
		api.InternalError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, NewDetailResponse(s.f, *coach))
}
