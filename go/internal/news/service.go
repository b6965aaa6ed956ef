package news

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/api"
	"github.com/mcdev12/clubsite/go/internal/models"
	"github.com/mcdev12/clubsite/go/internal/pagination"
)

// NewsApp defines what the service layer needs from the news application
type NewsApp interface {
	ListCategories(ctx context.Context) ([]models.NewsCategory, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID, params pagination.Params) ([]models.News, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.News, error)
}

// Service serves the news routes
type Service struct {
	app   NewsApp
	pager pagination.Paginator
	f     api.Formatter
}

// NewService creates a new news HTTP service
func NewService(app NewsApp, pager pagination.Paginator, f api.Formatter) *Service {
	return &Service{
		app:   app,
		pager: pager,
		f:     f,
	}
}

// RegisterRoutes registers the news routes, each wrapped by cached
func (s *Service) RegisterRoutes(mux *http.ServeMux, cached func(http.Handler) http.Handler) {
	mux.Handle("GET /news/category/list/{$}", cached(http.HandlerFunc(s.ListCategories)))
	mux.Handle("GET /news/category/{id}/{$}", cached(http.HandlerFunc(s.ListByCategory)))
	mux.Handle("GET /news/{slug}/{$}", cached(http.HandlerFunc(s.GetNews)))
}

// ListCategories handles GET /news/category/list/
func (s *Service) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.app.ListCategories(r.Context())
	if err != nil {
		api.InternalError(w, r, err)
		return
	}

	resp := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = NewCategoryResponse(c)
	}
	api.WriteJSON(w, r, http.StatusOK, resp)
}

// ListByCategory handles GET /news/category/{id}/
func (s *Service) ListByCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := api.PathUUID(r, "id")
	if !ok {
		api.NotFound(w, r, "Category not found")
		return
	}

	params, err := s.pager.Parse(r)
	if err != nil {
		api.NotFound(w, r, "Invalid page.")
		return
	}

	items, count, err := s.app.ListByCategory(r.Context(), id, params)
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		api.NotFound(w, r, "Category not found")
		return
	case errors.Is(err, pagination.ErrInvalidPage):
		api.NotFound(w, r, "Invalid page.")
		return
	case err != nil:
		api.InternalError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, pagination.NewPage(r, params, count, NewListItems(s.f, items)))
}

// GetNews handles GET /news/{slug}/
func (s *Service) GetNews(w http.ResponseWriter, r *http.Request) {
	slug, ok := api.PathSlug(r, "slug")
	if !ok {
		api.NotFound(w, r, "News not found")
		return
	}

	n, err := s.app.GetBySlug(r.Context(), slug)
	if errors.Is(err, ErrNewsNotFound) {
		api.NotFound(w, r, "News not found")
		return
	}
	if err != nil {
		api.InternalError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, NewDetailResponse(s.f, *n))
}
