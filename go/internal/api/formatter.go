package api

import (
	"strings"
	"time"
)

// Formatter renders stored values the way the public site expects them:
// media paths become URLs and dates are cut to the club's calendar day.
type Formatter struct {
	mediaURL string
	loc      *time.Location
}

// NewFormatter creates a Formatter. A nil location means UTC.
func NewFormatter(mediaURL string, loc *time.Location) Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return Formatter{
		mediaURL: strings.TrimRight(mediaURL, "/"),
		loc:      loc,
	}
}

// Media returns the public URL for a stored media path
func (f Formatter) Media(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return f.mediaURL + "/" + strings.TrimLeft(path, "/")
}

// OptionalMedia is Media for nullable images
func (f Formatter) OptionalMedia(path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	u := f.Media(*path)
	return &u
}

// Date formats t as YYYY-MM-DD in the club's time zone
func (f Formatter) Date(t time.Time) string {
	return t.In(f.loc).Format(time.DateOnly)
}

// BirthDate formats a calendar date column. Dates carry no zone so they are
// never shifted.
func (f Formatter) BirthDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Time returns t in the club's time zone
func (f Formatter) Time(t time.Time) time.Time {
	return t.In(f.loc)
}
