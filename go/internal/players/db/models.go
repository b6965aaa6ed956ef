package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type PlayerPosition struct {
	ID        uuid.UUID
	NameUz    sql.NullString
	NameRu    sql.NullString
	NameEn    sql.NullString
	CreatedAt time.Time
}

type Player struct {
	ID            uuid.UUID
	FullName      string
	Image         string
	Number        int32
	Goal          int32
	Match         int32
	Assist        int32
	BirthDate     time.Time
	Height        string
	DescriptionUz sql.NullString
	DescriptionRu sql.NullString
	DescriptionEn sql.NullString
	Gender        string
	CountryID     uuid.UUID
	PositionID    uuid.UUID
	CreatedAt     time.Time
}
