package news

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/i18n"
	"github.com/mcdev12/clubsite/go/internal/models"
	"github.com/mcdev12/clubsite/go/internal/news/db"
	"github.com/mcdev12/clubsite/go/internal/sqlutil"
)

// Repository handles all news-related database reads
type Repository struct {
	db      *sql.DB
	queries *db.Queries
}

// NewRepository creates a new news repository
func NewRepository(queries *db.Queries, database *sql.DB) *Repository {
	return &Repository{
		queries: queries,
		db:      database,
	}
}

// ListCategories returns every category, oldest first
func (r *Repository) ListCategories(ctx context.Context) ([]models.NewsCategory, error) {
	rows, err := r.queries.ListNewsCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list news categories: %w", err)
	}

	categories := make([]models.NewsCategory, len(rows))
	for i, row := range rows {
		categories[i] = dbCategoryToDomain(row)
	}
	return categories, nil
}

// GetCategory retrieves a category by ID
func (r *Repository) GetCategory(ctx context.Context, id uuid.UUID) (*models.NewsCategory, error) {
	row, err := r.queries.GetNewsCategory(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get news category: %w", err)
	}
	category := dbCategoryToDomain(row)
	return &category, nil
}

// ListByCategory returns one page of a category's news, newest first, and
// the category's total news count. Both reads share a transaction.
func (r *Repository) ListByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int32) ([]models.News, int64, error) {
	type page struct {
		rows  []db.ListNewsByCategoryRow
		count int64
	}

	res, err := sqlutil.Read(ctx, r.db, r.queries.WithTx, func(q *db.Queries) (page, error) {
		count, err := q.CountNewsByCategory(ctx, categoryID)
		if err != nil {
			return page{}, err
		}
		rows, err := q.ListNewsByCategory(ctx, db.ListNewsByCategoryParams{
			CategoryID: categoryID,
			Limit:      limit,
			Offset:     offset,
		})
		if err != nil {
			return page{}, err
		}
		return page{rows: rows, count: count}, nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list news by category: %w", err)
	}

	return dbNewsListToDomain(res.rows), res.count, nil
}

// GetBySlug retrieves one article
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*models.News, error) {
	row, err := r.queries.GetNewsBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to get news: %w", err)
	}

	return &models.News{
		ID:          row.ID,
		Slug:        row.Slug,
		Title:       sqlutil.ToText(row.TitleUz, row.TitleRu, row.TitleEn),
		Description: sqlutil.ToText(row.DescriptionUz, row.DescriptionRu, row.DescriptionEn),
		Image:       row.Image,
		CategoryID:  row.CategoryID,
		CreatedAt:   row.CreatedAt,
	}, nil
}

// SearchNews returns up to limit articles whose title contains query in any
// locale, ignoring case
func (r *Repository) SearchNews(ctx context.Context, query string, limit int) ([]models.News, error) {
	rows, err := r.queries.SearchNews(ctx, db.SearchNewsParams{
		Pattern: sqlutil.ContainsPattern(query),
		Limit:   int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search news: %w", err)
	}
	items := make([]db.ListNewsByCategoryRow, len(rows))
	for i, row := range rows {
		items[i] = db.ListNewsByCategoryRow(row)
	}
	return dbNewsListToDomain(items), nil
}

func dbCategoryToDomain(row db.NewsCategory) models.NewsCategory {
	return models.NewsCategory{
		ID:        row.ID,
		Name:      sqlutil.ToText(row.NameUz, row.NameRu, row.NameEn),
		CreatedAt: row.CreatedAt,
	}
}

// Helper function to convert joined list rows to domain news with the
// category attached
func dbNewsListToDomain(rows []db.ListNewsByCategoryRow) []models.News {
	items := make([]models.News, len(rows))
	for i, row := range rows {
		items[i] = models.News{
			ID:         row.ID,
			Slug:       row.Slug,
			Title:      sqlutil.ToText(row.TitleUz, row.TitleRu, row.TitleEn),
			Image:      row.Image,
			CategoryID: row.CategoryID,
			CreatedAt:  row.CreatedAt,
			Category: &models.NewsCategory{
				ID:   row.CategoryID,
				Name: i18n.Text{UZ: sqlutil.FromSqlNullablePtr(row.CategoryNameUz)},
			},
		}
	}
	return items
}
