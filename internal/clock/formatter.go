package clock

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"

	"github.com/ytget/clock-face/internal/model"
)

// Display formats
const (
	DateFormat = "%d   %s,   %d."
	TimeFormat = "-   %d:%02d %s   -"
	AM         = "AM"
	PM         = "PM"
)

// Fields is a broken-down local date-time. Weekday runs 1=Monday..7=Sunday.
type Fields struct {
	Year    int
	Month   int
	Day     int
	Weekday int
	Hour    int
	Minute  int
}

// FieldsOf breaks t down in its own location
func FieldsOf(t time.Time) Fields {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return Fields{
		Year:    t.Year(),
		Month:   int(t.Month()),
		Day:     t.Day(),
		Weekday: weekday,
		Hour:    t.Hour(),
		Minute:  t.Minute(),
	}
}

// Formatter produces clock strings in one language
type Formatter struct {
	language string
	days     [7]string
	months   [12]string
}

// NewFormatter creates a formatter for lang, falling back to English for
// languages without name tables
func NewFormatter(lang string) *Formatter {
	table, ok := nameTables[lang]
	if !ok {
		lang = DefaultLanguage
		table = nameTables[DefaultLanguage]
	}

	upper := cases.Upper(table.tag)
	f := &Formatter{language: lang}
	for i, name := range table.days {
		f.days[i] = upper.String(name)
	}
	for i, name := range table.months {
		f.months[i] = upper.String(name)
	}
	return f
}

// Language returns the language code actually in use
func (f *Formatter) Language() string {
	return f.language
}

// Now formats the given instant
func (f *Formatter) Now(t time.Time) model.ClockStrings {
	return f.Format(FieldsOf(t))
}

// Format builds the day, date and time lines from fields
func (f *Formatter) Format(fields Fields) model.ClockStrings {
	return model.ClockStrings{
		Day:  f.DayName(fields.Weekday),
		Date: fmt.Sprintf(DateFormat, fields.Day, f.months[fields.Month-1], fields.Year),
		Time: FormatTime(fields.Hour, fields.Minute),
	}
}

// DayName returns the upper-case name for an ISO weekday (1=Monday..7=Sunday)
func (f *Formatter) DayName(weekday int) string {
	index := weekday
	if weekday == 7 {
		index = 0
	}
	return f.days[index]
}

// FormatTime renders a 24-hour time on a 12-hour clock
func FormatTime(hour, minute int) string {
	ampm := AM
	if hour >= 12 {
		ampm = PM
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf(TimeFormat, hour12, minute, ampm)
}
