package db

import (
	"context"

	"github.com/google/uuid"
)

const getCoachWithPosition = `-- name: GetCoachWithPosition :one
SELECT c.id, c.full_name, c.image, c.banner, c.position_id, c.gender, c.coach_type, c.created_at,
       p.id, p.name_uz, p.name_ru, p.name_en, p.created_at
FROM coaches c
JOIN coach_positions p ON p.id = c.position_id
WHERE c.id = $1
`

type GetCoachWithPositionRow struct {
	Coach         Coach
	CoachPosition CoachPosition
}

func (q *Queries) GetCoachWithPosition(ctx context.Context, id uuid.UUID) (GetCoachWithPositionRow, error) {
	row := q.db.QueryRowContext(ctx, getCoachWithPosition, id)
	var i GetCoachWithPositionRow
	err := row.Scan(
		&i.Coach.ID,
		&i.Coach.FullName,
		&i.Coach.Image,
		&i.Coach.Banner,
		&i.Coach.PositionID,
		&i.Coach.Gender,
		&i.Coach.CoachType,
		&i.Coach.CreatedAt,
		&i.CoachPosition.ID,
		&i.CoachPosition.NameUz,
		&i.CoachPosition.NameRu,
		&i.CoachPosition.NameEn,
		&i.CoachPosition.CreatedAt,
	)
	return i, err
}

const listCoachInformation = `-- name: ListCoachInformation :many
SELECT id, coach_id, name_uz, name_ru, name_en, value_uz, value_ru, value_en, created_at
FROM coach_information
WHERE coach_id = $1
ORDER BY created_at, id
`

func (q *Queries) ListCoachInformation(ctx context.Context, coachID uuid.UUID) ([]CoachInformation, error) {
	rows, err := q.db.QueryContext(ctx, listCoachInformation, coachID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []CoachInformation{}
	for rows.Next() {
		var i CoachInformation
		if err := rows.Scan(
			&i.ID,
			&i.CoachID,
			&i.NameUz,
			&i.NameRu,
			&i.NameEn,
			&i.ValueUz,
			&i.ValueRu,
			&i.ValueEn,
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

const listCoachesByGender = `-- name: ListCoachesByGender :many
SELECT c.id, c.full_name, c.image, c.banner, c.position_id, c.gender, c.coach_type, c.created_at,
       p.id, p.name_uz, p.name_ru, p.name_en, p.created_at
FROM coaches c
JOIN coach_positions p ON p.id = c.position_id
WHERE c.gender = $1
ORDER BY c.created_at, c.id
`

type ListCoachesByGenderRow struct {
	Coach         Coach
	CoachPosition CoachPosition
}

func (q *Queries) ListCoachesByGender(ctx context.Context, gender string) ([]ListCoachesByGenderRow, error) {
	rows, err := q.db.QueryContext(ctx, listCoachesByGender, gender)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListCoachesByGenderRow{}
	for rows.Next() {
		var i ListCoachesByGenderRow
		if err := rows.Scan(
			&i.Coach.ID,
			&i.Coach.FullName,
			&i.Coach.Image,
			&i.Coach.Banner,
			&i.Coach.PositionID,
			&i.Coach.Gender,
			&i.Coach.CoachType,
			&i.Coach.CreatedAt,
			&i.CoachPosition.ID,
			&i.CoachPosition.NameUz,
			&i.CoachPosition.NameRu,
			&i.CoachPosition.NameEn,
			&i.CoachPosition.CreatedAt,
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

const listCoachesByGenderAndType = `-- name: ListCoachesByGenderAndType :many
SELECT c.id, c.full_name, c.image, c.banner, c.position_id, c.gender, c.coach_type, c.created_at,
       p.id, p.name_uz, p.name_ru, p.name_en, p.created_at
FROM coaches c
JOIN coach_positions p ON p.id = c.position_id
WHERE c.gender = $1 AND c.coach_type = $2
ORDER BY c.created_at, c.id
`

type ListCoachesByGenderAndTypeParams struct {
	Gender    string
	CoachType string
}

type ListCoachesByGenderAndTypeRow struct {
	Coach         Coach
	CoachPosition CoachPosition
}

func (q *Queries) ListCoachesByGenderAndType(ctx context.Context, arg ListCoachesByGenderAndTypeParams) ([]ListCoachesByGenderAndTypeRow, error) {
	rows, err := q.db.QueryContext(ctx, listCoachesByGenderAndType, arg.Gender, arg.CoachType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListCoachesByGenderAndTypeRow{}
	for rows.Next() {
		var i ListCoachesByGenderAndTypeRow
		if err := rows.Scan(
			&i.Coach.ID,
			&i.Coach.FullName,
			&i.Coach.Image,
			&i.Coach.Banner,
			&i.Coach.PositionID,
			&i.Coach.Gender,
			&i.Coach.CoachType,
			&i.Coach.CreatedAt,
			&i.CoachPosition.ID,
			&i.CoachPosition.NameUz,
			&i.CoachPosition.NameRu,
			&i.CoachPosition.NameEn,
			&i.CoachPosition.CreatedAt,
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

const listCoachesByType = `-- name: ListCoachesByType :many
SELECT c.id, c.full_name, c.image, c.banner, c.position_id, c.gender, c.coach_type, c.created_at,
       p.id, p.name_uz, p.name_ru, p.name_en, p.created_at
FROM coaches c
JOIN coach_positions p ON p.id = c.position_id
WHERE c.coach_type = $1
ORDER BY c.created_at, c.id
`

type ListCoachesByTypeRow struct {
	Coach         Coach
	CoachPosition CoachPosition
}

func (q *Queries) ListCoachesByType(ctx context.Context, coachType string) ([]ListCoachesByTypeRow, error) {
	rows, err := q.db.QueryContext(ctx, listCoachesByType, coachType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListCoachesByTypeRow{}
	for rows.Next() {
		var i ListCoachesByTypeRow
		if err := rows.Scan(
			&i.Coach.ID,
			&i.Coach.FullName,
			&i.Coach.Image,
			&i.Coach.Banner,
			&i.Coach.PositionID,
			&i.Coach.Gender,
			&i.Coach.CoachType,
			&i.Coach.CreatedAt,
			&i.CoachPosition.ID,
			&i.CoachPosition.NameUz,
			&i.CoachPosition.NameRu,
			&i.CoachPosition.NameEn,
			&i.CoachPosition.CreatedAt,
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

const searchCoaches = `-- name: SearchCoaches :many
SELECT c.id, c.full_name, c.image, c.banner, c.position_id, c.gender, c.coach_type, c.created_at,
       p.id, p.name_uz, p.name_ru, p.name_en, p.created_at
FROM coaches c
JOIN coach_positions p ON p.id = c.position_id
WHERE LOWER(c.full_name) LIKE LOWER($1) ESCAPE '\'
ORDER BY c.created_at DESC, c.id
LIMIT $2
`

type SearchCoachesParams struct {
	Pattern string
	Limit   int32
}

type SearchCoachesRow struct {
	Coach         Coach
	CoachPosition CoachPosition
}

func (q *Queries) SearchCoaches(ctx context.Context, arg SearchCoachesParams) ([]SearchCoachesRow, error) {
	rows, err := q.db.QueryContext(ctx, searchCoaches, arg.Pattern, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []SearchCoachesRow{}
	for rows.Next() {
		var i SearchCoachesRow
		if err := rows.Scan(
			&i.Coach.ID,
			&i.Coach.FullName,
			&i.Coach.Image,
			&i.Coach.Banner,
			&i.Coach.PositionID,
			&i.Coach.Gender,
			&i.Coach.CoachType,
			&i.Coach.CreatedAt,
			&i.CoachPosition.ID,
			&i.CoachPosition.NameUz,
			&i.CoachPosition.NameRu,
			&i.CoachPosition.NameEn,
			&i.CoachPosition.CreatedAt,
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
