package db

import (
	"context"

	"github.com/google/uuid"
)

type Querier interface {
	CountNewsByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	GetNewsBySlug(ctx context.Context, slug string) (News, error)
	GetNewsCategory(ctx context.Context, id uuid.UUID) (NewsCategory, error)
	ListNewsByCategory(ctx context.Context, arg ListNewsByCategoryParams) ([]ListNewsByCategoryRow, error)
	ListNewsCategories(ctx context.Context) ([]NewsCategory, error)
	SearchNews(ctx context.Context, arg SearchNewsParams) ([]SearchNewsRow, error)
}

var _ Querier = (*Queries)(nil)
