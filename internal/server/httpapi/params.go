package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gyulist/gyulist/internal/timex"
)

// queryParser collects per-parameter errors so a handler can report them
// all at once.
type queryParser struct {
	r      *http.Request
	errors map[string]string
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{r: r, errors: map[string]string{}}
}

func (p *queryParser) fail(name, msg string) {
	if _, ok := p.errors[name]; !ok {
		p.errors[name] = msg
	}
}

func (p *queryParser) String(name string) string {
	return p.r.URL.Query().Get(name)
}

func (p *queryParser) Int(name string) int {
	v := p.String(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(name, "must be a number")
		return 0
	}
	return n
}

func (p *queryParser) Int64(name string) int64 {
	v := p.String(name)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		p.fail(name, "must be a number")
		return 0
	}
	return n
}

// Date parses YYYY-MM-DD. An empty value is the zero time.
func (p *queryParser) Date(name string) time.Time {
	v := p.String(name)
	if v == "" {
		return time.Time{}
	}
	t, err := timex.ParseDate(v)
	if err != nil {
		p.fail(name, "must be YYYY-MM-DD")
		return time.Time{}
	}
	return t
}

// Instant parses an RFC 3339 timestamp or a date. A bare date used as an
// upper bound is moved to the start of the next day, so the day is included.
func (p *queryParser) Instant(name string, upper bool) time.Time {
	v := p.String(name)
	if v == "" {
		return time.Time{}
	}
	t, err := timex.ParseTimestamp(v)
	if err != nil {
		p.fail(name, "must be YYYY-MM-DD or RFC 3339")
		return time.Time{}
	}
	if upper && len(v) == len(timex.DateLayout) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

func (p *queryParser) Err() map[string]string {
	if len(p.errors) == 0 {
		return nil
	}
	return p.errors
}

// pathID reads a positive integer path parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
