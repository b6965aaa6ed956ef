package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/i18n"
)

// CoachType separates the first-team staff from the academy staff
type CoachType string

const (
	CoachTypeAcademy CoachType = "akademik murabbiy"
	CoachTypeTeam    CoachType = "jamoa murabbiy"
)

// CoachPosition is a staff role, e.g. "Head coach"
type CoachPosition struct {
	ID        uuid.UUID `json:"id"`
	Name      i18n.Text `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Coach represents a member of the coaching staff
type Coach struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"full_name"`
	Image      string    `json:"image"`
	Banner     *string   `json:"banner,omitempty"`
	PositionID uuid.UUID `json:"position_id"`
	Gender     Gender    `json:"gender"`
	Type       CoachType `json:"coach_type"`
	CreatedAt  time.Time `json:"created_at"`

	Position *CoachPosition     `json:"position,omitempty"`
	Infos    []CoachInformation `json:"infos,omitempty"`
}

// CoachInformation is one labelled fact on a coach's profile page
type CoachInformation struct {
	ID        uuid.UUID `json:"id"`
	CoachID   uuid.UUID `json:"coach_id"`
	Name      i18n.Text `json:"name"`
	Value     i18n.Text `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}
