// Package tempus implements bidirectional text patterns for temporal
// values: calendar dates, times of day, date-times, UTC offsets,
// durations, ISO-8601 periods, instants and zone-anchored timestamps.
//
// A pattern is compiled once from its text into two parallel action
// sequences, one for formatting and one for parsing, and is then immutable
// and safe for concurrent use. Compilation failures (broken pattern text)
// are returned eagerly as *PatternError; parse failures (value text that
// does not match) travel inside a Result rather than panicking, so trying
// several patterns in sequence stays cheap.
//
// Formatting and parsing are culture sensitive: a Culture carries the
// separators, month, day, era and AM/PM names, and the standard pattern
// texts that single-letter patterns expand to. The invariant culture is
// the default.
package tempus
