// Package domain defines the core business entities for the anagram CLI.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Group: A class of words that are letter-permutations of each other
//   - Result: The ordered set of groups found in one text
//   - FindOptions: Tunables for one pipeline invocation
//   - LogLevel: Logger verbosity labels
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
package domain
