package coaches

import (
	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/api"
	"github.com/mcdev12/clubsite/go/internal/i18n"
	"github.com/mcdev12/clubsite/go/internal/models"
)

type PositionResponse struct {
	ID uuid.UUID `json:"id"`
	i18n.Name
}

// ListItem is a coach card or a search hit
type ListItem struct {
	ID       uuid.UUID        `json:"id"`
	FullName string           `json:"full_name"`
	Position PositionResponse `json:"position"`
	Image    string           `json:"image"`
}

// TableRow is one line of the staff table
type TableRow struct {
	ID       uuid.UUID        `json:"id"`
	FullName string           `json:"full_name"`
	Position PositionResponse `json:"position"`
}

type InformationResponse struct {
	ID uuid.UUID `json:"id"`
	i18n.Name
	i18n.Value
}

// DetailResponse is the coach profile page
type DetailResponse struct {
	ID       uuid.UUID             `json:"id"`
	FullName string                `json:"full_name"`
	Image    string                `json:"image"`
	Banner   *string               `json:"banner"`
	Position PositionResponse      `json:"position"`
	Infos    []InformationResponse `json:"infos"`
}

func newPosition(p *models.CoachPosition) PositionResponse {
	if p == nil {
		return PositionResponse{}
	}
	return PositionResponse{ID: p.ID, Name: i18n.NameOf(p.Name)}
}

func NewListItems(f api.Formatter, coaches []models.Coach) []ListItem {
	out := make([]ListItem, len(coaches))
	for i, c := range coaches {
		out[i] = ListItem{
			ID:       c.ID,
			FullName: c.FullName,
			Position: newPosition(c.Position),
			Image:    f.Media(c.Image),
		}
	}
	return out
}

func NewTable(coaches []models.Coach) []TableRow {
	out := make([]TableRow, len(coaches))
	for i, c := range coaches {
		out[i] = TableRow{
			ID:       c.ID,
			FullName: c.FullName,
			Position: newPosition(c.Position),
		}
	}
	return out
}

func NewDetailResponse(f api.Formatter, c models.Coach) DetailResponse {
	infos := make([]InformationResponse, len(c.Infos))
	for i, info := range c.Infos {
		infos[i] = InformationResponse{
			ID:    info.ID,
			Name:  i18n.NameOf(info.Name),
			Value: i18n.ValueOf(info.Value),
		}
	}
	return DetailResponse{
		ID:       c.ID,
		FullName: c.FullName,
		Image:    f.Media(c.Image),
		Banner:   f.OptionalMedia(c.Banner),
		Position: newPosition(c.Position),
		Infos:    infos,
	}
}
