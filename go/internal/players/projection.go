package players

import (
	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/api"
	"github.com/mcdev12/clubsite/go/internal/i18n"
	"github.com/mcdev12/clubsite/go/internal/models"
)

// ListItem is a player on the squad page or in search results
type ListItem struct {
	ID       uuid.UUID     `json:"id"`
	FullName string        `json:"full_name"`
	Number   int           `json:"number"`
	Image    string        `json:"image"`
	Gender   models.Gender `json:"gender"`
}

// PositionResponse is a position without players
type PositionResponse struct {
	ID uuid.UUID `json:"id"`
	i18n.Name
}

// SquadPosition is a position with its players
type SquadPosition struct {
	ID uuid.UUID `json:"id"`
	i18n.Name
	Players []ListItem `json:"players"`
}

type CountryResponse struct {
	ID   uuid.UUID `json:"id"`
	Flag string    `json:"flag"`
	Name string    `json:"name"`
}

// DetailResponse is the player profile page
type DetailResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Number    int       `json:"number"`
	Image     string    `json:"image"`
	Goal      int       `json:"goal"`
	Match     int       `json:"match"`
	Assist    int       `json:"assist"`
	BirthDate string    `json:"birth_date"`
	Height    string    `json:"height"`
	i18n.Description
	Country  CountryResponse  `json:"country"`
	Gender   models.Gender    `json:"gender"`
	Position PositionResponse `json:"position"`
}

func NewListItem(f api.Formatter, p models.Player) ListItem {
	return ListItem{
		ID:       p.ID,
		FullName: p.FullName,
		Number:   p.Number,
		Image:    f.Media(p.Image),
		Gender:   p.Gender,
	}
}

func NewListItems(f api.Formatter, players []models.Player) []ListItem {
	out := make([]ListItem, len(players))
	for i, p := range players {
		out[i] = NewListItem(f, p)
	}
	return out
}

func NewSquad(f api.Formatter, positions []models.PlayerPosition) []SquadPosition {
	out := make([]SquadPosition, len(positions))
	for i, pos := range positions {
		out[i] = SquadPosition{
			ID:      pos.ID,
			Name:    i18n.NameOf(pos.Name),
			Players: NewListItems(f, pos.Players),
		}
	}
	return out
}

// NewDetailResponse projects a player loaded with country and position
func NewDetailResponse(f api.Formatter, p models.Player) DetailResponse {
	resp := DetailResponse{
		ID:          p.ID,
		FullName:    p.FullName,
		Number:      p.Number,
		Image:       f.Media(p.Image),
		Goal:        p.Goals,
		Match:       p.Matches,
		Assist:      p.Assists,
		BirthDate:   f.BirthDate(p.BirthDate),
		Height:      p.Height,
		Description: i18n.DescriptionOf(p.Description),
		Gender:      p.Gender,
	}
	if p.Country != nil {
		resp.Country = CountryResponse{
			ID:   p.Country.ID,
			Flag: f.Media(p.Country.Flag),
			Name: p.Country.Name,
		}
	}
	if p.Position != nil {
		resp.Position = PositionResponse{
			ID:   p.Position.ID,
			Name: i18n.NameOf(p.Position.Name),
		}
	}
	return resp
}
