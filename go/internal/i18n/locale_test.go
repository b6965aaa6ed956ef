package i18n

import (
	"encoding/json"
	"slices"
	"testing"

	"golang.org/x/text/language"
)

func str(s string) *string { return &s }

func TestColumnsFollowSupportedOrder(t *testing.T) {
	got := Columns("title")
	want := []string{"title_uz", "title_ru", "title_en"}
	if !slices.Equal(got, want) {
		t.Fatalf("Columns(title) = %v, want %v", got, want)
	}
}

func TestTextGet(t *testing.T) {
	text := Text{UZ: str("Salom"), RU: str("Привет")}

	if got := text.Get(language.Uzbek); got == nil || *got != "Salom" {
		t.Fatalf("Get(uz) = %v, want Salom", got)
	}
	if got := text.Get(language.MustParse("ru-RU")); got == nil || *got != "Привет" {
		t.Fatalf("Get(ru-RU) = %v, want Привет", got)
	}
	if got := text.Get(language.English); got != nil {
		t.Fatalf("Get(en) = %q, want nil", *got)
	}
	if got := text.Get(language.German); got != nil {
		t.Fatalf("Get(de) = %q, want nil", *got)
	}
}

func TestTextStringUsesDefaultLocale(t *testing.T) {
	if got := (Text{UZ: str("Yangiliklar"), EN: str("News")}).String(); got != "Yangiliklar" {
		t.Fatalf("String() = %q, want %q", got, "Yangiliklar")
	}
	if got := (Text{EN: str("News")}).String(); got != "" {
		t.Fatalf("String() without uz = %q, want empty", got)
	}
}

func TestProjectionKeepsAllKeys(t *testing.T) {
	resp := struct {
		ID int `json:"id"`
		Name
	}{ID: 1, Name: NameOf(Text{UZ: str("Himoyachi")})}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":1,"name_uz":"Himoyachi","name_ru":null,"name_en":null}`
	if string(data) != want {
		t.Fatalf("json = %s, want %s", data, want)
	}
}
