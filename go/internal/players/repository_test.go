package players

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/models"
	"github.com/mcdev12/clubsite/go/internal/players/db"
	"github.com/mcdev12/clubsite/go/internal/storetest"
)

type squadFixture struct {
	country    models.PlayerCountry
	goalkeeper models.PlayerPosition
	defender   models.PlayerPosition
	forward    models.PlayerPosition
}

func seedSquad(t *testing.T, database *sql.DB) squadFixture {
	t.Helper()
	var f squadFixture
	f.country = storetest.InsertPlayerCountry(t, database, models.PlayerCountry{
		Name: "O'zbekiston", Flag: "flags/uz.png", CreatedAt: storetest.Base,
	})
	f.goalkeeper = storetest.InsertPlayerPosition(t, database, models.PlayerPosition{
		Name: storetest.Text("Darvozabon", "Вратарь", "Goalkeeper"), CreatedAt: storetest.At(0),
	})
	f.defender = storetest.InsertPlayerPosition(t, database, models.PlayerPosition{
		Name: storetest.Text("Himoyachi", "Защитник", "Defender"), CreatedAt: storetest.At(1),
	})
	f.forward = storetest.InsertPlayerPosition(t, database, models.PlayerPosition{
		Name: storetest.Text("Hujumchi", "Нападающий", "Forward"), CreatedAt: storetest.At(2),
	})
	return f
}

func (f squadFixture) player(t *testing.T, database *sql.DB, name string, gender models.Gender, pos models.PlayerPosition, minute int) models.Player {
	t.Helper()
	return storetest.InsertPlayer(t, database, models.Player{
		FullName:    name,
		Image:       "players/" + name + ".jpg",
		Number:      minute + 1,
		Goals:       3,
		Matches:     10,
		Assists:     2,
		BirthDate:   time.Date(2000, time.January, 15, 0, 0, 0, 0, time.UTC),
		Height:      "180 sm",
		Description: storetest.Text("tavsif", "описание", "bio"),
		Gender:      gender,
		CountryID:   f.country.ID,
		PositionID:  pos.ID,
		CreatedAt:   storetest.At(minute),
	})
}

func newTestRepository(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()
	database := storetest.Open(t)
	return NewRepository(db.New(database)), database
}

func TestListPositionsOldestFirst(t *testing.T) {
	repo, database := newTestRepository(t)
	seedSquad(t, database)

	positions, err := repo.ListPositions(context.Background())
	if err != nil {
		t.Fatalf("ListPositions: %v", err)
	}
	if len(positions) != 3 || positions[0].Name.String() != "Darvozabon" || positions[2].Name.String() != "Hujumchi" {
		t.Fatalf("positions = %+v", positions)
	}
}

func TestListByGenderNewestFirst(t *testing.T) {
	repo, database := newTestRepository(t)
	f := seedSquad(t, database)
	f.player(t, database, "Aziz", models.GenderMan, f.goalkeeper, 0)
	f.player(t, database, "Bobur", models.GenderMan, f.forward, 1)
	f.player(t, database, "Dilnoza", models.GenderWoman, f.forward, 2)

	players, err := repo.ListByGender(context.Background(), models.GenderMan)
	if err != nil {
		t.Fatalf("ListByGender: %v", err)
	}
	if len(players) != 2 || players[0].FullName != "Bobur" || players[1].FullName != "Aziz" {
		t.Fatalf("players = %+v", players)
	}
}

func TestGetPlayerWithRelations(t *testing.T) {
	repo, database := newTestRepository(t)
	f := seedSquad(t, database)
	want := f.player(t, database, "Aziz", models.GenderU19, f.defender, 0)
	ctx := context.Background()

	got, err := repo.GetPlayer(ctx, want.ID)
	if err != nil {
		t.Fatalf("GetPlayer: %v", err)
	}
	if got.Country == nil || got.Country.ID != want.CountryID || got.Country.Name != "O'zbekiston" {
		t.Fatalf("country = %+v", got.Country)
	}
	if got.Position == nil || got.Position.ID != want.PositionID || got.Position.Name.String() != "Himoyachi" {
		t.Fatalf("position = %+v", got.Position)
	}
	if got.ID != want.ID || got.FullName != want.FullName {
		t.Fatalf("player = %+v, want %s", got, want.ID)
	}
	if got.Matches != 10 || got.Gender != models.GenderU19 || got.Height != "180 sm" {
		t.Fatalf("player = %+v", got)
	}

	if _, err := repo.GetPlayer(ctx, uuid.New()); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("err = %v, want ErrPlayerNotFound", err)
	}
}

func TestSearchPlayers(t *testing.T) {
	repo, database := newTestRepository(t)
	f := seedSquad(t, database)
	f.player(t, database, "Aziz Karimov", models.GenderMan, f.goalkeeper, 0)
	f.player(t, database, "Bobur Karimov", models.GenderU21, f.forward, 1)
	f.player(t, database, "Dilnoza Rahimova", models.GenderWoman, f.forward, 2)

	players, err := repo.SearchPlayers(context.Background(), "karimov", 5)
	if err != nil {
		t.Fatalf("SearchPlayers: %v", err)
	}
	if len(players) != 2 || players[0].FullName != "Bobur Karimov" {
		t.Fatalf("players = %+v", players)
	}
}
