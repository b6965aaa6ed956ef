package sqlutil

import (
	"database/sql"
	"strings"

	"github.com/mcdev12/clubsite/go/internal/i18n"
)

// Helper functions for converting between Go types and sql.Null* types

// ToSqlString converts a Go string pointer to sql.NullString
func ToSqlString(val *string) sql.NullString {
	if val == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *val, Valid: true}
}

// FromText splits a translatable value into its per-locale columns
func FromText(t i18n.Text) (uz, ru, en sql.NullString) {
	return ToSqlString(t.UZ), ToSqlString(t.RU), ToSqlString(t.EN)
}

// FromSqlStringPtr converts sql.NullString to Go string pointer.
// Empty strings are treated as unset, the admin console saves blank
// optional fields as "".
func FromSqlStringPtr(val sql.NullString) *string {
	if !val.Valid || val.String == "" {
		return nil
	}
	s := val.String
	return &s
}

// ToText converts the three per-locale columns of a translatable field
func ToText(uz, ru, en sql.NullString) i18n.Text {
	return i18n.Text{
		UZ: FromSqlNullablePtr(uz),
		RU: FromSqlNullablePtr(ru),
		EN: FromSqlNullablePtr(en),
	}
}

// FromSqlNullablePtr converts sql.NullString to Go string pointer, keeping
// empty strings
func FromSqlNullablePtr(val sql.NullString) *string {
	if !val.Valid {
		return nil
	}
	s := val.String
	return &s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds a LIKE pattern matching any value containing s.
// Queries using it must declare ESCAPE '\'.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
