package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/i18n"
)

// Partner is a sponsor logo linking to the sponsor's site
type Partner struct {
	ID        uuid.UUID `json:"id"`
	Image     string    `json:"image"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
}

// AboutCompany is one block of the "About the club" page
type AboutCompany struct {
	ID          uuid.UUID `json:"id"`
	Image       *string   `json:"image,omitempty"`
	Description i18n.Text `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Stadium is one block of the stadium page
type Stadium struct {
	ID          uuid.UUID `json:"id"`
	Image       *string   `json:"image,omitempty"`
	Description i18n.Text `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Banner is a home page slide
type Banner struct {
	ID        uuid.UUID `json:"id"`
	Image     string    `json:"banner"`
	Title     i18n.Text `json:"title"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
}

// AboutAcademy is one block of the academy page
type AboutAcademy struct {
	ID          uuid.UUID `json:"id"`
	Description i18n.Text `json:"description"`
	Image       *string   `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Leader represents a member of the club leadership
type Leader struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Position  string    `json:"position"`
	Country   string    `json:"country"`
	Image     string    `json:"image"`
	BirthDate time.Time `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
}
