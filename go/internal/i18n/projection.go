package i18n

// The types below are embedded in response structs so encoding/json flattens
// them into <field>_uz, <field>_ru and <field>_en keys. Untranslated variants
// encode as null; keys are never omitted.

type Name struct {
	NameUZ *string `json:"name_uz"`
	NameRU *string `json:"name_ru"`
	NameEN *string `json:"name_en"`
}

type Title struct {
	TitleUZ *string `json:"title_uz"`
	TitleRU *string `json:"title_ru"`
	TitleEN *string `json:"title_en"`
}

type Description struct {
	DescriptionUZ *string `json:"description_uz"`
	DescriptionRU *string `json:"description_ru"`
	DescriptionEN *string `json:"description_en"`
}

type Value struct {
	ValueUZ *string `json:"value_uz"`
	ValueRU *string `json:"value_ru"`
	ValueEN *string `json:"value_en"`
}

func NameOf(t Text) Name { return Name{NameUZ: t.UZ, NameRU: t.RU, NameEN: t.EN} }

func TitleOf(t Text) Title { return Title{TitleUZ: t.UZ, TitleRU: t.RU, TitleEN: t.EN} }

func DescriptionOf(t Text) Description {
	return Description{DescriptionUZ: t.UZ, DescriptionRU: t.RU, DescriptionEN: t.EN}
}

func ValueOf(t Text) Value { return Value{ValueUZ: t.UZ, ValueRU: t.RU, ValueEN: t.EN} }
