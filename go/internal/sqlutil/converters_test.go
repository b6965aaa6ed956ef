package sqlutil

import (
	"database/sql"
	"testing"
)

func TestContainsPatternEscapesWildcards(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ali", "%ali%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`c:\x`, `%c:\\x%`},
	}
	for _, tt := range tests {
		if got := ContainsPattern(tt.in); got != tt.want {
			t.Errorf("ContainsPattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFromSqlStringPtrTreatsBlankAsUnset(t *testing.T) {
	if got := FromSqlStringPtr(sql.NullString{String: "", Valid: true}); got != nil {
		t.Fatalf("blank = %q, want nil", *got)
	}
	if got := FromSqlStringPtr(sql.NullString{}); got != nil {
		t.Fatalf("null = %q, want nil", *got)
	}
	if got := FromSqlStringPtr(sql.NullString{String: "a.jpg", Valid: true}); got == nil || *got != "a.jpg" {
		t.Fatalf("value = %v, want a.jpg", got)
	}
}

func TestToTextKeepsEmptyTranslations(t *testing.T) {
	text := ToText(
		sql.NullString{String: "", Valid: true},
		sql.NullString{},
		sql.NullString{String: "News", Valid: true},
	)
	if text.UZ == nil || *text.UZ != "" {
		t.Fatalf("UZ = %v, want empty string", text.UZ)
	}
	if text.RU != nil {
		t.Fatalf("RU = %q, want nil", *text.RU)
	}
	if text.EN == nil || *text.EN != "News" {
		t.Fatalf("EN = %v, want News", text.EN)
	}

	uz, ru, en := FromText(text)
	if !uz.Valid || ru.Valid || en.String != "News" {
		t.Fatalf("FromText = %v %v %v", uz, ru, en)
	}
}
