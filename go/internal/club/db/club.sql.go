package db

import (
	"context"
)

const listAboutAcademy = `-- name: ListAboutAcademy :many
SELECT id, image, description_uz, description_ru, description_en, created_at
FROM about_academy
ORDER BY created_at, id
`

func (q *Queries) ListAboutAcademy(ctx context.Context) ([]AboutAcademy, error) {
	rows, err := q.db.QueryContext(ctx, listAboutAcademy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []AboutAcademy{}
	for rows.Next() {
		var i AboutAcademy
		if err := rows.Scan(
			&i.ID,
			&i.Image,
			&i.DescriptionUz,
			&i.DescriptionRu,
			&i.DescriptionEn,
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

const listAboutCompany = `-- name: ListAboutCompany :many
SELECT id, image, description_uz, description_ru, description_en, created_at
FROM about_company
ORDER BY created_at, id
`

func (q *Queries) ListAboutCompany(ctx context.Context) ([]AboutCompany, error) {
	rows, err := q.db.QueryContext(ctx, listAboutCompany)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []AboutCompany{}
	for rows.Next() {
		var i AboutCompany
		if err := rows.Scan(
			&i.ID,
			&i.Image,
			&i.DescriptionUz,
			&i.DescriptionRu,
			&i.DescriptionEn,
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

const listStadiums = `-- name: ListStadiums :many
SELECT id, image, description_uz, description_ru, description_en, created_at
FROM stadiums
ORDER BY created_at, id
`

func (q *Queries) ListStadiums(ctx context.Context) ([]Stadium, error) {
	rows, err := q.db.QueryContext(ctx, listStadiums)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Stadium{}
	for rows.Next() {
		var i Stadium
		if err := rows.Scan(
			&i.ID,
			&i.Image,
			&i.DescriptionUz,
			&i.DescriptionRu,
			&i.DescriptionEn,
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

const listBanners = `-- name: ListBanners :many
SELECT id, banner, title_uz, title_ru, title_en, link, created_at
FROM banners
ORDER BY created_at, id
`

func (q *Queries) ListBanners(ctx context.Context) ([]Banner, error) {
	rows, err := q.db.QueryContext(ctx, listBanners)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Banner{}
	for rows.Next() {
		var i Banner
		if err := rows.Scan(
			&i.ID,
			&i.Banner,
			&i.TitleUz,
			&i.TitleRu,
			&i.TitleEn,
			&i.Link,
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

const listLeaders = `-- name: ListLeaders :many
SELECT id, full_name, position, country, image, birth_date, created_at
FROM leaders
ORDER BY created_at, id
`

func (q *Queries) ListLeaders(ctx context.Context) ([]Leader, error) {
	rows, err := q.db.QueryContext(ctx, listLeaders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Leader{}
	for rows.Next() {
		var i Leader
		if err := rows.Scan(
			&i.ID,
			&i.FullName,
			&i.Position,
			&i.Country,
			&i.Image,
			&i.BirthDate,
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

const listPartners = `-- name: ListPartners :many
SELECT id, image, link, created_at
FROM partners
ORDER BY created_at, id
`

func (q *Queries) ListPartners(ctx context.Context) ([]Partner, error) {
	rows, err := q.db.QueryContext(ctx, listPartners)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Partner{}
	for rows.Next() {
		var i Partner
		if err := rows.Scan(
			&i.ID,
			&i.Image,
			&i.Link,
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

const searchLeaders = `-- name: SearchLeaders :many
SELECT id, full_name, position, country, image, birth_date, created_at
FROM leaders
WHERE LOWER(full_name) LIKE LOWER($1) ESCAPE '\'
ORDER BY created_at DESC, id
LIMIT $2
`

type SearchLeadersParams struct {
	Pattern string
	Limit   int32
}

func (q *Queries) SearchLeaders(ctx context.Context, arg SearchLeadersParams) ([]Leader, error) {
	rows, err := q.db.QueryContext(ctx, searchLeaders, arg.Pattern, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Leader{}
	for rows.Next() {
		var i Leader
		if err := rows.Scan(
			&i.ID,
			&i.FullName,
			&i.Position,
			&i.Country,
			&i.Image,
			&i.BirthDate,
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
