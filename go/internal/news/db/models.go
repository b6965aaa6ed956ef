package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type NewsCategory struct {
	ID        uuid.UUID
	NameUz    sql.NullString
	NameRu    sql.NullString
	NameEn    sql.NullString
	CreatedAt time.Time
}

type News struct {
	ID            uuid.UUID
	Slug          string
	TitleUz       sql.NullString
	TitleRu       sql.NullString
	TitleEn       sql.NullString
	DescriptionUz sql.NullString
	DescriptionRu sql.NullString
	DescriptionEn sql.NullString
	Image         string
	CategoryID    uuid.UUID
	CreatedAt     time.Time
}
