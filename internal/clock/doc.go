package clock

// Package clock turns a local date-time into the day, date and time lines
// shown on the clock face.
