package render

import "time"

// DateLayout is how dates are shown to the user.
const DateLayout = "2 January 2006, 15:04"

// inputLayouts are tried in order. The local forms are what a datetime
// form field produces; the zoned ones are what the client stamps itself.
var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDateTime parses s with the accepted input layouts. Values without a
// zone are interpreted in loc.
func ParseDateTime(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// FormatDateTime renders s with DateLayout in loc. Unparsable input is
// returned unchanged.
func FormatDateTime(s string, loc *time.Location) string {
	t, ok := ParseDateTime(s, loc)
	if !ok {
		return s
	}
	return t.Format(DateLayout)
}
