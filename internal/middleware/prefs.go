package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/YamileOchoa/Hospital-System/i18n"
)

type ctxKey string

const ctxLang ctxKey = "pref_lang"

// PrefsWithDefault extracts the language preference (query > cookie >
// header) and falls back to the given language. A query-provided language
// is persisted in a cookie for ~30 days.
func PrefsWithDefault(fallback string) func(http.Handler) http.Handler {
	if !i18n.Supported(fallback) {
		fallback = i18n.Default
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if c, err := r.Cookie("lang"); err == nil && c.Value != "" {
				lang = c.Value
			}
			if ql := r.URL.Query().Get("lang"); ql != "" && i18n.Supported(ql) {
				lang = ql
				http.SetCookie(w, &http.Cookie{Name: "lang", Value: lang, Path: "/", MaxAge: 86400 * 30})
			}
			if !i18n.Supported(lang) {
				if h := r.Header.Get("Accept-Language"); h != "" {
					lang = i18n.DetectLanguage(h)
				} else {
					lang = fallback
				}
			}
			ctx := context.WithValue(r.Context(), ctxLang, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LangFrom returns language preference from context or fallback.
func LangFrom(r *http.Request) string {
	if v, ok := r.Context().Value(ctxLang).(string); ok && v != "" {
		return v
	}
	return i18n.Default
}

// Flash kinds map onto bootstrap alert colours.
const (
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashError   = "danger"
)

// Flash sets a translated flash message cookie using translation code (or literal if missing).
func Flash(w http.ResponseWriter, r *http.Request, kind, code string) {
	msg := i18n.T(LangFrom(r), code)
	http.SetCookie(w, &http.Cookie{Name: "flash", Value: url.QueryEscape(kind + "|" + msg), Path: "/"})
}

// FlashMessage is a message carried across one redirect.
type FlashMessage struct {
	Kind string
	Text string
}

// PopFlash reads and clears the flash cookie.
func PopFlash(w http.ResponseWriter, r *http.Request) *FlashMessage {
	c, err := r.Cookie("flash")
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: "flash", Value: "", Path: "/", MaxAge: -1})
	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return nil
	}
	kind, text, ok := strings.Cut(raw, "|")
	if !ok {
		return &FlashMessage{Kind: FlashSuccess, Text: raw}
	}
	return &FlashMessage{Kind: kind, Text: text}
}
