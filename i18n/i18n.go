package i18n

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Default is the language used when nothing better can be negotiated.
const Default = "es"

var (
	supported = []language.Tag{language.Spanish, language.English}
	matcher   = language.NewMatcher(supported)
)

// Supported reports whether lang has a catalogue.
func Supported(lang string) bool {
	_, ok := catalog[lang]
	return ok
}

// DetectLanguage negotiates an Accept-Language header against the
// available catalogues.
func DetectLanguage(header string) string {
	if strings.TrimSpace(header) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default
	}
	tag, _, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	base, _ := tag.Base()
	if !Supported(base.String()) {
		return Default
	}
	return base.String()
}

// T translates code into lang, falling back to the default language and
// then to the code itself.
func T(lang, code string) string {
	if m, ok := catalog[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := catalog[Default][code]; ok {
		return s
	}
	return code
}

var monthAbbrev = map[string][12]string{
	"es": {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// MonthLabel returns the short "month year" label used by charts,
// e.g. "ene 2025".
func MonthLabel(lang string, year int, month time.Month) string {
	names, ok := monthAbbrev[lang]
	if !ok {
		names = monthAbbrev[Default]
	}
	if month < time.January || month > time.December {
		return ""
	}
	return names[month-1] + " " + strconv.Itoa(year)
}

// Money formats an amount in soles with locale digit grouping.
func Money(lang string, amount float64) string {
	tag := language.Spanish
	if lang == "en" {
		tag = language.English
	}
	return message.NewPrinter(tag).Sprintf("S/ %.2f", amount)
}
