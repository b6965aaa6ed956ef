package club

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/api"
	"github.com/mcdev12/clubsite/go/internal/i18n"
	"github.com/mcdev12/clubsite/go/internal/models"
)

type PartnerResponse struct {
	ID    uuid.UUID `json:"id"`
	Image string    `json:"image"`
	Link  string    `json:"link"`
}

type AboutCompanyResponse struct {
	ID uuid.UUID `json:"id"`
	i18n.Description
	Image *string `json:"image"`
}

type StadiumResponse struct {
	ID    uuid.UUID `json:"id"`
	Image *string   `json:"image"`
	i18n.Description
}

type BannerResponse struct {
	ID uuid.UUID `json:"id"`
	i18n.Title
	Banner string `json:"banner"`
	Link   string `json:"link"`
}

type AboutAcademyResponse struct {
	ID uuid.UUID `json:"id"`
	i18n.Description
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

// LeaderResponse is a leadership card or a search hit
type LeaderResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Image     string    `json:"image"`
	Position  string    `json:"position"`
	Country   string    `json:"country"`
	BirthDate string    `json:"birth_date"`
}

func NewPartners(f api.Formatter, partners []models.Partner) []PartnerResponse {
	out := make([]PartnerResponse, len(partners))
	for i, p := range partners {
		out[i] = PartnerResponse{ID: p.ID, Image: f.Media(p.Image), Link: p.Link}
	}
	return out
}

func NewAboutCompany(f api.Formatter, blocks []models.AboutCompany) []AboutCompanyResponse {
	out := make([]AboutCompanyResponse, len(blocks))
	for i, b := range blocks {
		out[i] = AboutCompanyResponse{
			ID:          b.ID,
			Description: i18n.DescriptionOf(b.Description),
			Image:       f.OptionalMedia(b.Image),
		}
	}
	return out
}

func NewStadiums(f api.Formatter, stadiums []models.Stadium) []StadiumResponse {
	out := make([]StadiumResponse, len(stadiums))
	for i, s := range stadiums {
		out[i] = StadiumResponse{
			ID:          s.ID,
			Image:       f.OptionalMedia(s.Image),
			Description: i18n.DescriptionOf(s.Description),
		}
	}
	return out
}

func NewBanners(f api.Formatter, banners []models.Banner) []BannerResponse {
	out := make([]BannerResponse, len(banners))
	for i, b := range banners {
		out[i] = BannerResponse{
			ID:     b.ID,
			Title:  i18n.TitleOf(b.Title),
			Banner: f.Media(b.Image),
			Link:   b.Link,
		}
	}
	return out
}

func NewAboutAcademy(f api.Formatter, blocks []models.AboutAcademy) []AboutAcademyResponse {
	out := make([]AboutAcademyResponse, len(blocks))
	for i, b := range blocks {
		out[i] = AboutAcademyResponse{
			ID:          b.ID,
			Description: i18n.DescriptionOf(b.Description),
			Image:       f.OptionalMedia(b.Image),
			CreatedAt:   f.Time(b.CreatedAt),
		}
	}
	return out
}

func NewLeaders(f api.Formatter, leaders []models.Leader) []LeaderResponse {
	out := make([]LeaderResponse, len(leaders))
	for i, l := range leaders {
		out[i] = LeaderResponse{
			ID:        l.ID,
			FullName:  l.FullName,
			Image:     f.Media(l.Image),
			Position:  l.Position,
			Country:   l.Country,
			BirthDate: f.BirthDate(l.BirthDate),
		}
	}
	return out
}
