// Package hash derives stable 64-bit identifiers for catalog entries.
package hash

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of data.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// FunctionID returns the identifier of a function name. Function names are
// case-insensitive, so the name is lower-cased before hashing.
func FunctionID(name string) uint64 {
	return ID(strings.ToLower(name))
}
