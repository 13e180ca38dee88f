// Package i18n holds the UI translations.
package i18n

import "strings"

// Locale is a supported UI language code.
type Locale string

const (
	EN Locale = "en"
	RU Locale = "ru"
	UZ Locale = "uz"
	KZ Locale = "kz"
)

// Default is used when no valid locale is stored.
const Default = EN

// Option is a locale with its display label.
type Option struct {
	Value Locale
	Label string
}

// Options lists the supported locales in switcher order.
var Options = []Option{
	{Value: EN, Label: "EN"},
	{Value: RU, Label: "RU"},
	{Value: UZ, Label: "UZ"},
	{Value: KZ, Label: "KZ"},
}

// Parse validates a locale code.
func Parse(value string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(value)))
	for _, opt := range Options {
		if opt.Value == l {
			return l, true
		}
	}
	return Default, false
}

// Next returns the locale after l in switcher order, wrapping around.
func Next(l Locale) Locale {
	for i, opt := range Options {
		if opt.Value == l {
			return Options[(i+1)%len(Options)].Value
		}
	}
	return Default
}

// T looks key up in the locale, then in English, then returns the key.
func T(l Locale, key string) string {
	if v, ok := translations[l][key]; ok {
		return v
	}
	if v, ok := translations[EN][key]; ok {
		return v
	}
	return key
}

// Translator binds a locale for repeated lookups.
type Translator struct {
	Locale Locale
}

// T translates key in the bound locale.
func (t Translator) T(key string) string {
	return T(t.Locale, key)
}
