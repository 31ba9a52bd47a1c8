// Package logging builds the slog loggers used by the rangeregex CLI.
//
// Two formats are supported: "console" writes logfmt-style text lines without
// timestamps, and "json" writes one object per record with ts, level and msg
// keys. Levels are parsed leniently; unknown values fall back to info.
package logging
