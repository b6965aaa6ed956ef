package news

import (
	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/api"
	"github.com/mcdev12/clubsite/go/internal/i18n"
	"github.com/mcdev12/clubsite/go/internal/models"
)

// CategoryResponse is one entry of the category list
type CategoryResponse struct {
	ID uuid.UUID `json:"id"`
	i18n.Name
}

// ListItem is an article in a list or in search results
type ListItem struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
	i18n.Title
	Image        string `json:"image"`
	Date         string `json:"date"`
	CategoryName string `json:"category_name"`
}

// DetailResponse is a full article
type DetailResponse struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
	i18n.Title
	i18n.Description
	Image string `json:"image"`
	Date  string `json:"date"`
}

func NewCategoryResponse(c models.NewsCategory) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: i18n.NameOf(c.Name)}
}

// NewListItem projects an article loaded with its category
func NewListItem(f api.Formatter, n models.News) ListItem {
	item := ListItem{
		ID:    n.ID,
		Slug:  n.Slug,
		Title: i18n.TitleOf(n.Title),
		Image: f.Media(n.Image),
		Date:  f.Date(n.CreatedAt),
	}
	if n.Category != nil {
		item.CategoryName = n.Category.Name.String()
	}
	return item
}

func NewListItems(f api.Formatter, items []models.News) []ListItem {
	out := make([]ListItem, len(items))
	for i, n := range items {
		out[i] = NewListItem(f, n)
	}
	return out
}

func NewDetailResponse(f api.Formatter, n models.News) DetailResponse {
	return DetailResponse{
		ID:          n.ID,
		Slug:        n.Slug,
		Title:       i18n.TitleOf(n.Title),
		Description: i18n.DescriptionOf(n.Description),
		Image:       f.Media(n.Image),
		Date:        f.Date(n.CreatedAt),
	}
}
