package coaches

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/coaches/db"
	"github.com/mcdev12/clubsite/go/internal/models"
	"github.com/mcdev12/clubsite/go/internal/storetest"
)

type staffFixture struct {
	headCoach models.CoachPosition
	assistant models.CoachPosition
}

func seedStaff(t *testing.T, database *sql.DB) staffFixture {
	t.Helper()
	return staffFixture{
		headCoach: storetest.InsertCoachPosition(t, database, models.CoachPosition{
			Name: storetest.Text("Bosh murabbiy", "Главный тренер", "Head coach"), CreatedAt: storetest.At(0),
		}),
		assistant: storetest.InsertCoachPosition(t, database, models.CoachPosition{
			Name: storetest.Text("Yordamchi", "Ассистент", "Assistant"), CreatedAt: storetest.At(1),
		}),
	}
}

func (f staffFixture) coach(t *testing.T, database *sql.DB, name string, gender models.Gender, coachType models.CoachType, minute int) models.Coach {
	t.Helper()
	return storetest.InsertCoach(t, database, models.Coach{
		FullName:   name,
		Image:      "coaches/" + name + ".jpg",
		PositionID: f.headCoach.ID,
		Gender:     gender,
		Type:       coachType,
		CreatedAt:  storetest.At(minute),
	})
}

func newTestRepository(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()
	database := storetest.Open(t)
	return NewRepository(db.New(database)), database
}

func names(coaches []models.Coach) []string {
	out := make([]string, len(coaches))
	for i, c := range coaches {
		out[i] = c.FullName
	}
	return out
}

func TestCoachListsFilterAndOrder(t *testing.T) {
	repo, database := newTestRepository(t)
	f := seedStaff(t, database)
	f.coach(t, database, "Rustam", models.GenderMan, models.CoachTypeTeam, 0)
	f.coach(t, database, "Sardor", models.GenderMan, models.CoachTypeAcademy, 1)
	f.coach(t, database, "Timur", models.GenderMan, models.CoachTypeTeam, 2)
	f.coach(t, database, "Nilufar", models.GenderWoman, models.CoachTypeTeam, 3)
	f.coach(t, database, "Malika", models.GenderWoman, models.CoachTypeAcademy, 4)
	ctx := context.Background()

	team, err := repo.ListByGenderAndType(ctx, models.GenderMan, models.CoachTypeTeam)
	if err != nil {
		t.Fatalf("ListByGenderAndType: %v", err)
	}
	if got := names(team); len(got) != 2 || got[0] != "Rustam" || got[1] != "Timur" {
		t.Fatalf("men's team staff = %v", got)
	}
	if team[0].Position == nil || team[0].Position.Name.String() != "Bosh murabbiy" {
		t.Fatalf("position not attached: %+v", team[0].Position)
	}

	all, err := repo.ListByGender(ctx, models.GenderWoman)
	if err != nil {
		t.Fatalf("ListByGender: %v", err)
	}
	if got := names(all); len(got) != 2 || got[0] != "Nilufar" || got[1] != "Malika" {
		t.Fatalf("women's staff = %v", got)
	}

	academy, err := repo.ListByType(ctx, models.CoachTypeAcademy)
	if err != nil {
		t.Fatalf("ListByType: %v", err)
	}
	if got := names(academy); len(got) != 2 || got[0] != "Sardor" || got[1] != "Malika" {
		t.Fatalf("academy staff = %v", got)
	}
}

func TestGetCoachAndInformation(t *testing.T) {
	repo, database := newTestRepository(t)
	f := seedStaff(t, database)
	c := f.coach(t, database, "Rustam", models.GenderMan, models.CoachTypeTeam, 0)
	storetest.InsertCoachInformation(t, database, models.CoachInformation{
		CoachID: c.ID, Name: storetest.Text("Tajriba", "Опыт", "Experience"),
		Value: storetest.Text("15 yil", "15 лет", "15 years"), CreatedAt: storetest.At(2),
	})
	storetest.InsertCoachInformation(t, database, models.CoachInformation{
		CoachID: c.ID, Name: storetest.Text("Tug'ilgan", "Родился", "Born"),
		Value: storetest.Text("1975", "1975", "1975"), CreatedAt: storetest.At(1),
	})
	ctx := context.Background()

	got, err := repo.GetCoach(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetCoach: %v", err)
	}
	if got.Banner != nil || got.Position == nil {
		t.Fatalf("coach = %+v", got)
	}
	if got.ID != c.ID || got.Position.ID != c.PositionID || got.Position.CreatedAt.IsZero() {
		t.Fatalf("coach = %+v, position = %+v", got, got.Position)
	}

	infos, err := repo.ListInformation(ctx, c.ID)
	if err != nil {
		t.Fatalf("ListInformation: %v", err)
	}
	if len(infos) != 2 || infos[0].Name.String() != "Tug'ilgan" {
		t.Fatalf("infos = %+v, want oldest first", infos)
	}

	if _, err := repo.GetCoach(ctx, uuid.New()); !errors.Is(err, ErrCoachNotFound) {
		t.Fatalf("err = %v, want ErrCoachNotFound", err)
	}
}

func TestSearchCoaches(t *testing.T) {
	repo, database := newTestRepository(t)
	f := seedStaff(t, database)
	f.coach(t, database, "Rustam Aliyev", models.GenderMan, models.CoachTypeTeam, 0)
	f.coach(t, database, "Sardor Tursunov", models.GenderMan, models.CoachTypeAcademy, 1)

	coaches, err := repo.SearchCoaches(context.Background(), "ALIYEV", 5)
	if err != nil {
		t.Fatalf("SearchCoaches: %v", err)
	}
	if got := names(coaches); len(got) != 1 || got[0] != "Rustam Aliyev" {
		t.Fatalf("coaches = %v", got)
	}
}
