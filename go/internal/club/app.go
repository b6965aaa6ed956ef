package club

import (
	"context"

	"github.com/mcdev12/clubsite/go/internal/models"
)

// ContentRepository defines what the app layer needs from the repository
type ContentRepository interface {
	ListPartners(ctx context.Context) ([]models.Partner, error)
	ListAboutCompany(ctx context.Context) ([]models.AboutCompany, error)
	ListStadiums(ctx context.Context) ([]models.Stadium, error)
	ListBanners(ctx context.Context) ([]models.Banner, error)
	ListAboutAcademy(ctx context.Context) ([]models.AboutAcademy, error)
	ListLeaders(ctx context.Context) ([]models.Leader, error)
}

// App handles reads of the club content pages. Each page is a full,
// unpaginated list.
type App struct {
	repo ContentRepository
}

// NewApp creates a new club content App
func NewApp(repo ContentRepository) *App {
	return &App{
		repo: repo,
	}
}

func (a *App) ListPartners(ctx context.Context) ([]models.Partner, error) {
	return a.repo.ListPartners(ctx)
}

func (a *App) ListAboutCompany(ctx context.Context) ([]models.AboutCompany, error) {
	return a.repo.ListAboutCompany(ctx)
}

func (a *App) ListStadiums(ctx context.Context) ([]models.Stadium, error) {
	return a.repo.ListStadiums(ctx)
}

func (a *App) ListBanners(ctx context.Context) ([]models.Banner, error) {
	return a.repo.ListBanners(ctx)
}

func (a *App) ListAboutAcademy(ctx context.Context) ([]models.AboutAcademy, error) {
	return a.repo.ListAboutAcademy(ctx)
}

func (a *App) ListLeaders(ctx context.Context) ([]models.Leader, error) {
	return a.repo.ListLeaders(ctx)
}
