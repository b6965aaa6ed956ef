package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const countNewsByCategory = `-- name: CountNewsByCategory :one
SELECT COUNT(*) FROM news
WHERE category_id = $1
`

func (q *Queries) CountNewsByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	row := q.db.QueryRowContext(ctx, countNewsByCategory, categoryID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const getNewsBySlug = `-- name: GetNewsBySlug :one
SELECT id, slug, title_uz, title_ru, title_en, description_uz, description_ru, description_en, image, category_id, created_at
FROM news
WHERE slug = $1
LIMIT 1
`

func (q *Queries) GetNewsBySlug(ctx context.Context, slug string) (News, error) {
	row := q.db.QueryRowContext(ctx, getNewsBySlug, slug)
	var i News
	err := row.Scan(
		&i.ID,
		&i.Slug,
		&i.TitleUz,
		&i.TitleRu,
		&i.TitleEn,
		&i.DescriptionUz,
		&i.DescriptionRu,
		&i.DescriptionEn,
		&i.Image,
		&i.CategoryID,
		&i.CreatedAt,
	)
	return i, err
}

const getNewsCategory = `-- name: GetNewsCategory :one
SELECT id, name_uz, name_ru, name_en, created_at
FROM news_categories
WHERE id = $1
`

func (q *Queries) GetNewsCategory(ctx context.Context, id uuid.UUID) (NewsCategory, error) {
	row := q.db.QueryRowContext(ctx, getNewsCategory, id)
	var i NewsCategory
	err := row.Scan(
		&i.ID,
		&i.NameUz,
		&i.NameRu,
		&i.NameEn,
		&i.CreatedAt,
	)
	return i, err
}

const listNewsByCategory = `-- name: ListNewsByCategory :many
SELECT n.id, n.slug, n.title_uz, n.title_ru, n.title_en, n.image, n.category_id, n.created_at,
       c.name_uz AS category_name_uz
FROM news n
JOIN news_categories c ON c.id = n.category_id
WHERE n.category_id = $1
ORDER BY n.created_at DESC, n.id
LIMIT $2 OFFSET $3
`

type ListNewsByCategoryParams struct {
	CategoryID uuid.UUID
	Limit      int32
	Offset     int32
}

type ListNewsByCategoryRow struct {
	ID             uuid.UUID
	Slug           string
	TitleUz        sql.NullString
	TitleRu        sql.NullString
	TitleEn        sql.NullString
	Image          string
	CategoryID     uuid.UUID
	CreatedAt      time.Time
	CategoryNameUz sql.NullString
}

func (q *Queries) ListNewsByCategory(ctx context.Context, arg ListNewsByCategoryParams) ([]ListNewsByCategoryRow, error) {
	rows, err := q.db.QueryContext(ctx, listNewsByCategory, arg.CategoryID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListNewsByCategoryRow{}
	for rows.Next() {
		var i ListNewsByCategoryRow
		if err := rows.Scan(
			&i.ID,
			&i.Slug,
			&i.TitleUz,
			&i.TitleRu,
			&i.TitleEn,
			&i.Image,
			&i.CategoryID,
			&i.CreatedAt,
			&i.CategoryNameUz,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listNewsCategories = `-- name: ListNewsCategories :many
SELECT id, name_uz, name_ru, name_en, created_at
FROM news_categories
ORDER BY created_at, id
`

func (q *Queries) ListNewsCategories(ctx context.Context) ([]NewsCategory, error) {
	rows, err := q.db.QueryContext(ctx, listNewsCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []NewsCategory{}
	for rows.Next() {
		var i NewsCategory
		if err := rows.Scan(
			&i.ID,
			&i.NameUz,
			&i.NameRu,
			&i.NameEn,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const searchNews = `-- name: SearchNews :many
SELECT n.id, n.slug, n.title_uz, n.title_ru, n.title_en, n.image, n.category_id, n.created_at,
       c.name_uz AS category_name_uz
FROM news n
JOIN news_categories c ON c.id = n.category_id
WHERE LOWER(n.title_uz) LIKE LOWER($1) ESCAPE '\'
   OR LOWER(n.title_ru) LIKE LOWER($1) ESCAPE '\'
   OR LOWER(n.title_en) LIKE LOWER($1) ESCAPE '\'
ORDER BY n.created_at DESC, n.id
LIMIT $2
`

type SearchNewsParams struct {
	Pattern string
	Limit   int32
}

type SearchNewsRow struct {
	ID             uuid.UUID
	Slug           string
	TitleUz        sql.NullString
	TitleRu        sql.NullString
	TitleEn        sql.NullString
	Image          string
	CategoryID     uuid.UUID
	CreatedAt      time.Time
	CategoryNameUz sql.NullString
}

func (q *Queries) SearchNews(ctx context.Context, arg SearchNewsParams) ([]SearchNewsRow, error) {
	rows, err := q.db.QueryContext(ctx, searchNews, arg.Pattern, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []SearchNewsRow{}
	for rows.Next() {
		var i SearchNewsRow
		if err := rows.Scan(
			&i.ID,
			&i.Slug,
			&i.TitleUz,
			&i.TitleRu,
			&i.TitleEn,
			&i.Image,
			&i.CategoryID,
			&i.CreatedAt,
			&i.CategoryNameUz,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
