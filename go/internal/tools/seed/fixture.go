package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/i18n"
	"github.com/mcdev12/clubsite/go/internal/models"
	"gopkg.in/yaml.v3"
)

// Localized is a translatable value in the fixture file
type Localized struct {
	UZ *string `yaml:"uz"`
	RU *string `yaml:"ru"`
	EN *string `yaml:"en"`
}

func (l Localized) text() i18n.Text {
	return i18n.Text{UZ: l.UZ, RU: l.RU, EN: l.EN}
}

// Fixture mirrors the YAML seed file. Rows without created_at are stamped
// in file order so list endpoints return them as written.
type Fixture struct {
	NewsCategories []struct {
		ID        string     `yaml:"id"`
		Name      Localized  `yaml:"name"`
		CreatedAt *time.Time `yaml:"created_at"`
	} `yaml:"news_categories"`

	News []struct {
		ID          string     `yaml:"id"`
		Slug        string     `yaml:"slug"`
		Title       Localized  `yaml:"title"`
		Description Localized  `yaml:"description"`
		Image       string     `yaml:"image"`
		CategoryID  string     `yaml:"category_id"`
		CreatedAt   *time.Time `yaml:"created_at"`
	} `yaml:"news"`

	PlayerCountries []struct {
		ID        string     `yaml:"id"`
		Name      string     `yaml:"name"`
		Flag      string     `yaml:"flag"`
		CreatedAt *time.Time `yaml:"created_at"`
	} `yaml:"player_countries"`

	PlayerPositions []struct {
		ID        string     `yaml:"id"`
		Name      Localized  `yaml:"name"`
		CreatedAt *time.Time `yaml:"created_at"`
	} `yaml:"player_positions"`

	Players []struct {
		ID          string     `yaml:"id"`
		FullName    string     `yaml:"full_name"`
		Image       string     `yaml:"image"`
		Number      int        `yaml:"number"`
		Goal        int        `yaml:"goal"`
		Match       int        `yaml:"match"`
		Assist      int        `yaml:"assist"`
		BirthDate   string     `yaml:"birth_date"`
		Height      string     `yaml:"height"`
		Description Localized  `yaml:"description"`
		Gender      string     `yaml:"gender"`
		CountryID   string     `yaml:"country_id"`
		PositionID  string     `yaml:"position_id"`
		CreatedAt   *time.Time `yaml:"created_at"`
	} `yaml:"players"`

	Partners []struct {
		ID        string     `yaml:"id"`
		Image     string     `yaml:"image"`
		Link      string     `yaml:"link"`
		CreatedAt *time.Time `yaml:"created_at"`
	} `yaml:"partners"`

	AboutCompany []DescribedBlock `yaml:"about_company"`
	Stadiums     []DescribedBlock `yaml:"stadiums"`
	AboutAcademy []DescribedBlock `yaml:"about_academy"`

	Banners []struct {
		ID        string     `yaml:"id"`
		Banner    string     `yaml:"banner"`
		Title     Localized  `yaml:"title"`
		Link      string     `yaml:"link"`
		CreatedAt *time.Time `yaml:"created_at"`
	} `yaml:"banners"`

	CoachPositions []struct {
		ID        string     `yaml:"id"`
		Name      Localized  `yaml:"name"`
		CreatedAt *time.Time `yaml:"created_at"`
	} `yaml:"coach_positions"`

	Coaches []struct {
		ID         string     `yaml:"id"`
		FullName   string     `yaml:"full_name"`
		Image      string     `yaml:"image"`
		Banner     *string    `yaml:"banner"`
		PositionID string     `yaml:"position_id"`
		Gender     string     `yaml:"gender"`
		CoachType  string     `yaml:"coach_type"`
		CreatedAt  *time.Time `yaml:"created_at"`
		Infos      []struct {
			ID    string    `yaml:"id"`
			Name  Localized `yaml:"name"`
			Value Localized `yaml:"value"`
		} `yaml:"infos"`
	} `yaml:"coaches"`

	Leaders []struct {
		ID        string     `yaml:"id"`
		FullName  string     `yaml:"full_name"`
		Position  string     `yaml:"position"`
		Country   string     `yaml:"country"`
		Image     string     `yaml:"image"`
		BirthDate string     `yaml:"birth_date"`
		CreatedAt *time.Time `yaml:"created_at"`
	} `yaml:"leaders"`
}

// DescribedBlock is an about-club, stadium or about-academy block
type DescribedBlock struct {
	ID          string     `yaml:"id"`
	Image       *string    `yaml:"image"`
	Description Localized  `yaml:"description"`
	CreatedAt   *time.Time `yaml:"created_at"`
}

func loadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return parseFixture(data)
}

func parseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// validate rejects values the API could never serve back
func (f *Fixture) validate() error {
	var errs []error
	checkID := func(kind, id string) {
		if _, err := uuid.Parse(id); err != nil {
			errs = append(errs, fmt.Errorf("%s %q: invalid id: %w", kind, id, err))
		}
	}
	checkDate := func(kind, id, date string) {
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			errs = append(errs, fmt.Errorf("%s %q: invalid birth_date %q", kind, id, date))
		}
	}

	for _, c := range f.NewsCategories {
		checkID("news category", c.ID)
	}
	for _, n := range f.News {
		checkID("news", n.ID)
		checkID("news category", n.CategoryID)
		if n.Slug == "" {
			errs = append(errs, fmt.Errorf("news %q: slug is required", n.ID))
		}
	}
	for _, p := range f.Players {
		checkID("player", p.ID)
		checkDate("player", p.ID, p.BirthDate)
		switch models.Gender(p.Gender) {
		case models.GenderMan, models.GenderWoman, models.GenderU19, models.GenderU21:
		default:
			errs = append(errs, fmt.Errorf("player %q: unknown gender %q", p.ID, p.Gender))
		}
	}
	for _, c := range f.Coaches {
		checkID("coach", c.ID)
		switch models.Gender(c.Gender) {
		case models.GenderMan, models.GenderWoman:
		default:
			errs = append(errs, fmt.Errorf("coach %q: unknown gender %q", c.ID, c.Gender))
		}
		switch models.CoachType(c.CoachType) {
		case "", models.CoachTypeTeam, models.CoachTypeAcademy:
		default:
			errs = append(errs, fmt.Errorf("coach %q: unknown coach_type %q", c.ID, c.CoachType))
		}
		for _, info := range c.Infos {
			checkID("coach information", info.ID)
		}
	}
	for _, l := range f.Leaders {
		checkID("leader", l.ID)
		checkDate("leader", l.ID, l.BirthDate)
	}
	return errors.Join(errs...)
}
