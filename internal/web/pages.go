package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gyulist/gyulist/internal/timex"
)

//go:embed templates/*.html
var templateFS embed.FS

// page is the value every template receives.
type page struct {
	Title string
	Nav   bool
	Theme string
	Flash string
	Data  any
}

type pages struct {
	sets map[string]*template.Template
}

var pageFiles = []string{
	"login", "pre_register", "cattle_list", "cattle_detail",
	"schedule", "kpi", "shipments", "settings", "error",
}

// newPages parses one template set per page, each sharing the layout.
// Dates are displayed in loc.
func newPages(loc *time.Location) (*pages, error) {
	funcs := templateFuncs(loc)

	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	p := &pages{sets: make(map[string]*template.Template, len(pageFiles))}
	for _, name := range pageFiles {
		set, err := template.Must(base.Clone()).ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		p.sets[name] = set
	}
	return p, nil
}

// render executes the named page into a buffer first so a template error
// never leaves a half-written response.
func (p *pages) render(w http.ResponseWriter, status int, name string, data page) error {
	set, ok := p.sets[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func templateFuncs(loc *time.Location) template.FuncMap {
	return template.FuncMap{
		"formatDate": func(s string) string {
			t, err := timex.ParseTimestamp(s)
			if err != nil {
				return s
			}
			if len(s) > len(timex.DateLayout) {
				t = t.In(loc)
			}
			return timex.FormatDate(t)
		},
		"formatDateTime": func(s string) string {
			t, err := timex.ParseTimestamp(s)
			if err != nil {
				return s
			}
			return timex.FormatDateTime(t, loc)
		},
		"formatMonth": timex.FormatMonth,
		"text":        text,
	}
}

// text renders an optional API field, "-" when it is unset.
func text(v any) string {
	switch v := v.(type) {
	case nil:
		return "-"
	case string:
		return v
	case *string:
		if v == nil {
			return "-"
		}
		return *v
	case *int64:
		if v == nil {
			return "-"
		}
		return strconv.FormatInt(*v, 10)
	case *int:
		if v == nil {
			return "-"
		}
		return strconv.Itoa(*v)
	case *float64:
		if v == nil {
			return "-"
		}
		return strconv.FormatFloat(*v, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
