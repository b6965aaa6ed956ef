package news

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/models"
	"github.com/mcdev12/clubsite/go/internal/pagination"
)

// NewsRepository defines what the app layer needs from the repository
type NewsRepository interface {
	ListCategories(ctx context.Context) ([]models.NewsCategory, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.NewsCategory, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int32) ([]models.News, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.News, error)
}

// App handles news read logic
type App struct {
	repo NewsRepository
}

// NewApp creates a new news App
func NewApp(repo NewsRepository) *App {
	return &App{
		repo: repo,
	}
}

// ListCategories returns all news categories
func (a *App) ListCategories(ctx context.Context) ([]models.NewsCategory, error) {
	return a.repo.ListCategories(ctx)
}

// ListByCategory returns one page of a category's news. ErrCategoryNotFound
// is returned for an unknown category and pagination.ErrInvalidPage for a
// page past the end.
func (a *App) ListByCategory(ctx context.Context, categoryID uuid.UUID, params pagination.Params) ([]models.News, int64, error) {
	if _, err := a.repo.GetCategory(ctx, categoryID); err != nil {
		return nil, 0, err
	}

	items, count, err := a.repo.ListByCategory(ctx, categoryID, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, err
	}
	if err := params.Check(count); err != nil {
		return nil, 0, fmt.Errorf("page %d of %d items: %w", params.Page, count, err)
	}
	return items, count, nil
}

// GetBySlug retrieves one article
func (a *App) GetBySlug(ctx context.Context, slug string) (*models.News, error) {
	return a.repo.GetBySlug(ctx, slug)
}
