package serviceImp

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // Asia/Kolkata without a system zoneinfo
)

var gujaratiMonths = [...]string{
	"જાન્યુઆરી", "ફેબ્રુઆરી", "માર્ચ", "એપ્રિલ", "મે", "જૂન",
	"જુલાઈ", "ઑગસ્ટ", "સપ્ટેમ્બર", "ઑક્ટોબર", "નવેમ્બર", "ડિસેમ્બર",
}

const (
	emptyCell     = "-"
	invalidPrefix = "અમાન્ય તારીખ: "
)

// zoned layouts carry an offset; naive ones are read as UTC.
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05.999999999 -0700 MST",
	}
	naiveLayouts = []string{
		"2006-01-02 15:04:05",
		"2006-01-02 15:04:05.999999",
		"2006-01-02T15:04:05",
	}
)

// ParseStoredTime accepts the layouts the users table has held over time.
func ParseStoredTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, l := range zonedLayouts {
		if t, err := time.Parse(l, raw); err == nil {
			return t, nil
		}
	}
	for _, l := range naiveLayouts {
		if t, err := time.ParseInLocation(l, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", raw)
}

// FormatGujarati renders t in loc as "27 ડિસેમ્બર, 2025 એ 11:10 AM વાગ્યે".
func FormatGujarati(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	period := "AM"
	if t.Hour() >= 12 {
		period = "PM"
	}
	return fmt.Sprintf("%d %s, %d એ %d:%02d %s વાગ્યે",
		t.Day(), gujaratiMonths[t.Month()-1], t.Year(), h, t.Minute(), period)
}

// registrationCell never fails: empty values become "-" and unparseable
// ones are flagged in the cell itself so the row is still exported.
func registrationCell(raw string, valid bool, loc *time.Location) string {
	if !valid || strings.TrimSpace(raw) == "" {
		return emptyCell
	}
	t, err := ParseStoredTime(raw)
	if err != nil {
		return invalidPrefix + raw
	}
	return FormatGujarati(t, loc)
}

// LoadZone resolves name, falling back to a fixed +05:30 zone.
func LoadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60), fmt.Errorf("load zone %q: %w", name, err)
	}
	return loc, nil
}
