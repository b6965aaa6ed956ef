package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Partner struct {
	ID        uuid.UUID
	Image     string
	Link      string
	CreatedAt time.Time
}

type AboutCompany struct {
	ID            uuid.UUID
	Image         sql.NullString
	DescriptionUz sql.NullString
	DescriptionRu sql.NullString
	DescriptionEn sql.NullString
	CreatedAt     time.Time
}

type Stadium struct {
	ID            uuid.UUID
	Image         sql.NullString
	DescriptionUz sql.NullString
	DescriptionRu sql.NullString
	DescriptionEn sql.NullString
	CreatedAt     time.Time
}

type AboutAcademy struct {
	ID            uuid.UUID
	Image         sql.NullString
	DescriptionUz sql.NullString
	DescriptionRu sql.NullString
	DescriptionEn sql.NullString
	CreatedAt     time.Time
}

type Banner struct {
	ID        uuid.UUID
	Banner    string
	TitleUz   sql.NullString
	TitleRu   sql.NullString
	TitleEn   sql.NullString
	Link      string
	CreatedAt time.Time
}

type Leader struct {
	ID        uuid.UUID
	FullName  string
	Position  string
	Country   string
	Image     string
	BirthDate time.Time
	CreatedAt time.Time
}
