package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/i18n"
)

// Gender is the squad bucket a player or coach belongs to. The values are
// the ones the admin console has always stored.
type Gender string

const (
	GenderMan   Gender = "Erkak"
	GenderWoman Gender = "Ayol"
	GenderU19   Gender = "U19"
	GenderU21   Gender = "U21"
)

// PlayerCountry is the country a player represents
type PlayerCountry struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Flag      string    `json:"flag"`
	CreatedAt time.Time `json:"created_at"`
}

// PlayerPosition groups the roster on the squad pages
type PlayerPosition struct {
	ID        uuid.UUID `json:"id"`
	Name      i18n.Text `json:"name"`
	CreatedAt time.Time `json:"created_at"`

	// Players is only populated by the squad listing
	Players []Player `json:"players,omitempty"`
}

// Player represents a club player
type Player struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	Image       string    `json:"image"`
	Number      int       `json:"number"`
	Goals       int       `json:"goal"`
	Matches     int       `json:"match"`
	Assists     int       `json:"assist"`
	BirthDate   time.Time `json:"birth_date"`
	Height      string    `json:"height"`
	Description i18n.Text `json:"description"`
	Gender      Gender    `json:"gender"`
	CountryID   uuid.UUID `json:"country_id"`
	PositionID  uuid.UUID `json:"position_id"`
	CreatedAt   time.Time `json:"created_at"`

	Country  *PlayerCountry  `json:"country,omitempty"`
	Position *PlayerPosition `json:"position,omitempty"`
}
