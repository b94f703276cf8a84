// Package roster reads Secret Santa participants and exclusions from command line
// values and YAML files, normalizes names and validates the result before it is
// handed to the assignment engine.
//
// Command line values:
//
//	p, err := roster.ParseParticipant("Alice <alice@example.com>") // or "Alice:alice@example.com"
//	x, err := roster.ParsePair("Alice,Bob")
//
// Names are trimmed and NFC-normalized; duplicates are detected case-insensitively.
package roster
