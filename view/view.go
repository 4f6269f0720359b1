package view

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/YamileOchoa/Hospital-System/i18n"
	"github.com/YamileOchoa/Hospital-System/internal/models"
	"github.com/YamileOchoa/Hospital-System/validation"
)

var (
	fsys     fs.FS
	dev      bool
	once     sync.Once
	tplCache = struct {
		sync.RWMutex
		m map[string]*template.Template
	}{m: map[string]*template.Template{}}

	langResolver  = func(_ *http.Request) string { return i18n.Default }
	flashResolver func(http.ResponseWriter, *http.Request) any
)

// SetFS sets the filesystem holding layout.html, partials/ and pages.
func SetFS(f fs.FS) {
	if f == nil {
		return
	}
	fsys = f
	clearCache()
}

// SetDev disables the template cache so edits show up on reload.
func SetDev(on bool) { dev = on }

// SetLangResolver allows the host app to provide a custom language resolver (e.g., reading from context).
func SetLangResolver(f func(*http.Request) string) {
	if f != nil {
		langResolver = f
	}
}

// SetFlashResolver lets the host app hand a one-shot flash message to
// every rendered page.
func SetFlashResolver(f func(http.ResponseWriter, *http.Request) any) {
	flashResolver = f
}

func detectBase() {
	candidates := []string{"web/templates", "../web/templates", "../../web/templates", "templates"}
	for _, c := range candidates {
		if fi, err := os.Stat(filepath.Clean(c)); err == nil && fi.IsDir() {
			fsys = os.DirFS(filepath.Clean(c))
			return
		}
	}
	fsys = os.DirFS("web/templates")
}

// Funcs returns the standard func map including i18n and simple helpers.
func Funcs(lang string) template.FuncMap {
	return template.FuncMap{
		"t":    func(code string) string { return i18n.T(lang, code) },
		"lang": func() string { return lang },
		"year": func() int { return time.Now().Year() },
		"money": func(v float64) string { return i18n.Money(lang, v) },
		// same compares loosely so an int64 id matches a form string.
		"same":      func(a, b any) bool { return fmt.Sprint(a) == fmt.Sprint(b) },
		"hasPrefix": strings.HasPrefix,
		"badge":     models.BadgeClass,
		"fieldErr": func(v validation.Violations, field string) string {
			return v[field]
		},
		// json embeds a value as a JS literal (chart data).
		"json": func(v any) (template.JS, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return template.JS(b), nil
		},
		// dict builds the argument map of a partial:
		// {{template "field-text" (dict "Name" "dni" "Value" .DNI)}}
		"dict": func(values ...any) map[string]any {
			if len(values)%2 != 0 {
				return nil
			}
			m := make(map[string]any, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					continue
				}
				m[key] = values[i+1]
			}
			return m
		},
	}
}

// ResetForTests clears caches and forces filesystem detection to rerun.
func ResetForTests() {
	clearCache()
	fsys = nil
	once = sync.Once{}
}

func clearCache() {
	tplCache.Lock()
	tplCache.m = map[string]*template.Template{}
	tplCache.Unlock()
}

// Render executes a page with http.StatusOK.
// name is the page path inside the template fs (e.g., "pacientes/index.html").
func Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) error {
	return RenderStatus(w, r, http.StatusOK, name, data)
}

// RenderStatus parses (or reuses) a page wrapped in layout.html and writes
// it with status. The page is fully executed before anything is written.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) error {
	if fsys == nil {
		once.Do(detectBase)
	}
	// Ensure data map exists and inject common defaults to avoid template errors.
	if data == nil {
		data = map[string]any{}
	}
	lang := langResolver(r)
	data["Lang"] = lang
	data["Path"] = r.URL.Path
	if _, exists := data["Flash"]; !exists && flashResolver != nil {
		data["Flash"] = flashResolver(w, r)
	}

	t, err := lookup(name, lang)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}

func lookup(name, lang string) (*template.Template, error) {
	key := lang + ":" + name
	if !dev {
		tplCache.RLock()
		t, ok := tplCache.m[key]
		tplCache.RUnlock()
		if ok && t != nil {
			return t, nil
		}
	}
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	var t *template.Template
	if bytes.Contains(bytes.ToLower(content), []byte("<!doctype")) {
		// Full document provided; skip layout wrapping.
		t, err = template.New(filepath.Base(name)).Funcs(Funcs(lang)).Parse(string(content))
		if err != nil {
			return nil, err
		}
	} else {
		t, err = template.New("layout.html").Funcs(Funcs(lang)).ParseFS(fsys, "layout.html", "partials/*.html")
		if err != nil {
			return nil, err
		}
		if _, err := t.New(name).Parse(string(content)); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	if !dev {
		tplCache.Lock()
		tplCache.m[key] = t
		tplCache.Unlock()
	}
	return t, nil
}
