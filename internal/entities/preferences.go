package entities

import "strings"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeLight, ThemeDark:
		return t, nil
	default:
		return "", ErrUnknownTheme
	}
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type Language string

const (
	LangEnglish    Language = "en"
	LangHindi      Language = "hi"
	LangFrench     Language = "fr"
	LangSpanish    Language = "es"
	LangGerman     Language = "de"
	LangItalian    Language = "it"
	LangPortuguese Language = "pt"
	LangRussian    Language = "ru"
	LangChinese    Language = "zh"
	LangArabic     Language = "ar"
)

var Languages = []Language{
	LangEnglish, LangHindi, LangFrench, LangSpanish, LangGerman,
	LangItalian, LangPortuguese, LangRussian, LangChinese, LangArabic,
}

func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Languages {
		if l == known {
			return l, nil
		}
	}
	return "", ErrUnknownLanguage
}

// Keys under which preferences are kept in the durable store.
const (
	PrefKeyTheme    = "theme"
	PrefKeyLanguage = "language"
)

type Preferences struct {
	Theme    Theme    `json:"theme"`
	Language Language `json:"language"`
}

func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeLight, Language: LangEnglish}
}

// PreferenceUpdate is the message instances exchange when a preference
// changes. Origin identifies the publishing instance.
type PreferenceUpdate struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Origin string `json:"origin"`
}
