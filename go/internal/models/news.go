package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/i18n"
)

// NewsCategory represents a news section such as "Match reports"
type NewsCategory struct {
	ID        uuid.UUID `json:"id"`
	Name      i18n.Text `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// News represents a published article
type News struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       i18n.Text `json:"title"`
	Description i18n.Text `json:"description"`
	Image       string    `json:"image"`
	CategoryID  uuid.UUID `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`

	Category *NewsCategory `json:"category,omitempty"`
}
