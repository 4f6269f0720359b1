package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/YamileOchoa/Hospital-System/i18n"
)

func langOf(t *testing.T, req *http.Request) string {
	t.Helper()
	var got string
	h := PrefsWithDefault(i18n.Default)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { got = LangFrom(r) }))
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestPrefsResolution(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*http.Request)
		target string
		want   string
	}{
		{"default", func(*http.Request) {}, "/", "es"},
		{"header", func(r *http.Request) { r.Header.Set("Accept-Language", "en-US,en;q=0.9") }, "/", "en"},
		{"cookie beats header", func(r *http.Request) {
			r.Header.Set("Accept-Language", "en")
			r.AddCookie(&http.Cookie{Name: "lang", Value: "es"})
		}, "/", "es"},
		{"query beats cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "lang", Value: "es"}) }, "/?lang=en", "en"},
		{"unsupported query ignored", func(*http.Request) {}, "/?lang=de", "es"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			tt.setup(req)
			if got := langOf(t, req); got != tt.want {
				t.Fatalf("lang = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrefsWithDefault(t *testing.T) {
	var got string
	h := PrefsWithDefault("en")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { got = LangFrom(r) }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if got != "en" {
		t.Fatalf("expected en got %s", got)
	}
}

func TestFlashRoundTrip(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/pacientes/eliminar/1", nil)
	Flash(w, r, FlashError, "patients.delete_error")
	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected flash cookie")
	}

	r2 := httptest.NewRequest(http.MethodGet, "/pacientes", nil)
	r2.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()
	msg := PopFlash(w2, r2)
	if msg == nil || msg.Kind != FlashError || msg.Text != "Error al eliminar paciente" {
		t.Fatalf("unexpected flash %+v", msg)
	}
	cleared := w2.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Fatalf("expected flash to be cleared")
	}
	if PopFlash(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)) != nil {
		t.Fatalf("expected no flash")
	}
}

func TestRequestIDLoggerRecover(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") })
	h := RequestID(logger)(Logger(Recover(panicky)))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", w.Code)
	}
	rid := w.Header().Get(RequestIDHeader)
	if rid == "" {
		t.Fatalf("expected request id header")
	}
	out := buf.String()
	if !strings.Contains(out, "panic recovered") || !strings.Contains(out, `"status":500`) {
		t.Fatalf("unexpected log %s", out)
	}
	if strings.Count(out, rid) < 2 {
		t.Fatalf("expected request id on every line: %s", out)
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	RequestID(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) != "abc" {
		t.Fatalf("expected incoming id to be reused")
	}
}
