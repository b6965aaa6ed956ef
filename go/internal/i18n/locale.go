// Package i18n declares the content locales and the per-locale value set
// stored for every translatable field.
package i18n

import (
	"golang.org/x/text/language"
)

// Supported lists the content locales in column order.
var Supported = []language.Tag{language.Uzbek, language.Russian, language.English}

// Default is the locale the admin console treats as the primary language.
var Default = language.Uzbek

// Suffix returns the column suffix for a locale, e.g. "uz".
func Suffix(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// Columns returns the per-locale column names for a translatable field,
// in Supported order: Columns("name") is [name_uz name_ru name_en].
func Columns(field string) []string {
	cols := make([]string, 0, len(Supported))
	for _, tag := range Supported {
		cols = append(cols, field+"_"+Suffix(tag))
	}
	return cols
}

// Text holds one optional value per supported locale. A nil variant has not
// been translated yet.
type Text struct {
	UZ *string
	RU *string
	EN *string
}

// Get returns the variant for tag, or nil for an unsupported locale.
func (t Text) Get(tag language.Tag) *string {
	switch Suffix(tag) {
	case "uz":
		return t.UZ
	case "ru":
		return t.RU
	case "en":
		return t.EN
	}
	return nil
}

// Values returns the variants in Supported order.
func (t Text) Values() []*string {
	return []*string{t.UZ, t.RU, t.EN}
}

// String returns the default-locale value or "".
func (t Text) String() string {
	if v := t.Get(Default); v != nil {
		return *v
	}
	return ""
}
