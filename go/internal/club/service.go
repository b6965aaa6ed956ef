package club

import (
	"context"
	"net/http"

	"github.com/mcdev12/clubsite/go/internal/api"
	"github.com/mcdev12/clubsite/go/internal/models"
)

// ContentApp defines what the service needs from the app layer
type ContentApp interface {
	ListPartners(ctx context.Context) ([]models.Partner, error)
	ListAboutCompany(ctx context.Context) ([]models.AboutCompany, error)
	ListStadiums(ctx context.Context) ([]models.Stadium, error)
	ListBanners(ctx context.Context) ([]models.Banner, error)
	ListAboutAcademy(ctx context.Context) ([]models.AboutAcademy, error)
	ListLeaders(ctx context.Context) ([]models.Leader, error)
}

// Service serves the club content pages
type Service struct {
	app ContentApp
	f   api.Formatter
}

// NewService creates a new club content HTTP service
func NewService(app ContentApp, f api.Formatter) *Service {
	return &Service{
		app: app,
		f:   f,
	}
}

// RegisterRoutes registers the content routes, each wrapped by cached
func (s *Service) RegisterRoutes(mux *http.ServeMux, cached func(http.Handler) http.Handler) {
	mux.Handle("GET /partners/{$}", cached(listHandler(s.app.ListPartners, s.f, NewPartners)))
	mux.Handle("GET /about-club/{$}", cached(listHandler(s.app.ListAboutCompany, s.f, NewAboutCompany)))
	mux.Handle("GET /stadiums/{$}", cached(listHandler(s.app.ListStadiums, s.f, NewStadiums)))
	mux.Handle("GET /banners/{$}", cached(listHandler(s.app.ListBanners, s.f, NewBanners)))
	mux.Handle("GET /about-academy/list/{$}", cached(listHandler(s.app.ListAboutAcademy, s.f, NewAboutAcademy)))
	mux.Handle("GET /leaders/list/{$}", cached(listHandler(s.app.ListLeaders, s.f, NewLeaders)))
}

// listHandler serves a full list read through list and projected by project
func listHandler[M, R any](
	list func(context.Context) ([]M, error),
	f api.Formatter,
	project func(api.Formatter, []M) []R,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r.Context())
		if err != nil {
			api.InternalError(w, r, err)
			return
		}
		api.WriteJSON(w, r, http.StatusOK, project(f, items))
	})
}
