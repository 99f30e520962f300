package dbx

import (
	"fmt"
	"time"

	"github.com/gyulist/gyulist/internal/timex"
)

// Timestamp scans text timestamp columns written with timex.FormatTimestamp.
// NULL scans to the zero time.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	}
	return fmt.Errorf("cannot scan %T into Timestamp", src)
}

func (t *Timestamp) parse(s string) error {
	parsed, err := timex.ParseTimestamp(s)
	if err != nil {
		return fmt.Errorf("bad timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}
