package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const getPlayerWithRelations = `-- name: GetPlayerWithRelations :one
SELECT p.id, p.full_name, p.image, p.number, p.goal, p."match", p.assist, p.birth_date, p.height,
       p.description_uz, p.description_ru, p.description_en, p.gender, p.country_id, p.position_id, p.created_at,
       c.name AS country_name, c.flag AS country_flag, c.created_at AS country_created_at,
       pos.name_uz AS position_name_uz, pos.name_ru AS position_name_ru, pos.name_en AS position_name_en,
       pos.created_at AS position_created_at
FROM players p
JOIN player_countries c ON c.id = p.country_id
JOIN player_positions pos ON pos.id = p.position_id
WHERE p.id = $1
`

type GetPlayerWithRelationsRow struct {
	Player            Player
	CountryName       string
	CountryFlag       string
	CountryCreatedAt  time.Time
	PositionNameUz    sql.NullString
	PositionNameRu    sql.NullString
	PositionNameEn    sql.NullString
	PositionCreatedAt time.Time
}

func (q *Queries) GetPlayerWithRelations(ctx context.Context, id uuid.UUID) (GetPlayerWithRelationsRow, error) {
	row := q.db.QueryRowContext(ctx, getPlayerWithRelations, id)
	var i GetPlayerWithRelationsRow
	err := row.Scan(
		&i.Player.ID,
		&i.Player.FullName,
		&i.Player.Image,
		&i.Player.Number,
		&i.Player.Goal,
		&i.Player.Match,
		&i.Player.Assist,
		&i.Player.BirthDate,
		&i.Player.Height,
		&i.Player.DescriptionUz,
		&i.Player.DescriptionRu,
		&i.Player.DescriptionEn,
		&i.Player.Gender,
		&i.Player.CountryID,
		&i.Player.PositionID,
		&i.Player.CreatedAt,
		&i.CountryName,
		&i.CountryFlag,
		&i.CountryCreatedAt,
		&i.PositionNameUz,
		&i.PositionNameRu,
		&i.PositionNameEn,
		&i.PositionCreatedAt,
	)
	return i, err
}

const listPlayerPositions = `-- name: ListPlayerPositions :many
SELECT id, name_uz, name_ru, name_en, created_at
FROM player_positions
ORDER BY created_at, id
`

func (q *Queries) ListPlayerPositions(ctx context.Context) ([]PlayerPosition, error) {
	rows, err := q.db.QueryContext(ctx, listPlayerPositions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []PlayerPosition{}
	for rows.Next() {
		var i PlayerPosition
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

const listPlayersByGender = `-- name: ListPlayersByGender :many
SELECT id, full_name, image, number, goal, "match", assist, birth_date, height,
       description_uz, description_ru, description_en, gender, country_id, position_id, created_at
FROM players
WHERE gender = $1
ORDER BY created_at DESC, id
`

func (q *Queries) ListPlayersByGender(ctx context.Context, gender string) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, listPlayersByGender, gender)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Player{}
	for rows.Next() {
		var i Player
		if err := rows.Scan(
			&i.ID,
			&i.FullName,
			&i.Image,
			&i.Number,
			&i.Goal,
			&i.Match,
			&i.Assist,
			&i.BirthDate,
			&i.Height,
			&i.DescriptionUz,
			&i.DescriptionRu,
			&i.DescriptionEn,
			&i.Gender,
			&i.CountryID,
			&i.PositionID,
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

const searchPlayers = `-- name: SearchPlayers :many
SELECT id, full_name, image, number, goal, "match", assist, birth_date, height,
       description_uz, description_ru, description_en, gender, country_id, position_id, created_at
FROM players
WHERE LOWER(full_name) LIKE LOWER($1) ESCAPE '\'
ORDER BY created_at DESC, id
LIMIT $2
`

type SearchPlayersParams struct {
	Pattern string
	Limit   int32
}

func (q *Queries) SearchPlayers(ctx context.Context, arg SearchPlayersParams) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, searchPlayers, arg.Pattern, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Player{}
	for rows.Next() {
		var i Player
		if err := rows.Scan(
			&i.ID,
			&i.FullName,
			&i.Image,
			&i.Number,
			&i.Goal,
			&i.Match,
			&i.Assist,
			&i.BirthDate,
			&i.Height,
			&i.DescriptionUz,
			&i.DescriptionRu,
			&i.DescriptionEn,
			&i.Gender,
			&i.CountryID,
			&i.PositionID,
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
