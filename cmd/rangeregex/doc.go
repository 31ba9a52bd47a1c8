// Package main hosts the rangeregex CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes the compiler from the terminal:
// compile prints the alternation for one range, explain breaks it down arm by
// arm, batch compiles every range listed in a TOML file, and verify runs the
// differential check against package regexp.
//
// Negative bounds must follow a "--" separator so that they are not parsed as
// flags:
//
//	rangeregex compile -- -128 127
package main
