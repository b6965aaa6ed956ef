package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Coach struct {
	ID         uuid.UUID
	FullName   string
	Image      string
	Banner     sql.NullString
	PositionID uuid.UUID
	Gender     string
	CoachType  string
	CreatedAt  time.Time
}

type CoachPosition struct {
	ID        uuid.UUID
	NameUz    sql.NullString
	NameRu    sql.NullString
	NameEn    sql.NullString
	CreatedAt time.Time
}

type CoachInformation struct {
	ID        uuid.UUID
	CoachID   uuid.UUID
	NameUz    sql.NullString
	NameRu    sql.NullString
	NameEn    sql.NullString
	ValueUz   sql.NullString
	ValueRu   sql.NullString
	ValueEn   sql.NullString
	CreatedAt time.Time
}
