// File: tokenize.go
// Title: Delimiter Tokenizer
// Description: Splits a string on a literal delimiter, keeping empty fields
//              but never producing an empty trailing element.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringx

import (
	"strings"

	mdwerrors "github.com/msto63/stringops/foundation/core/errors"
)

// Tokenize splits s on every occurrence of delim. Empty fields between
// adjacent delimiters are kept; a trailing delimiter adds no empty element.
// An empty s yields an empty, non-nil slice.
//
//	Tokenize("a,,b,", ",") // ["a" "" "b"]
//	Tokenize("abc", ",")   // ["abc"]
//
// Tokenize panics if delim is empty.
func Tokenize(s, delim string) []string {
	if delim == "" {
		panic(mdwerrors.PreconditionViolation(mdwerrors.ModuleStringx, "Tokenize", ErrEmptyDelimiter, "non-empty delimiter"))
	}

	tokens := make([]string, 0, strings.Count(s, delim)+1)
	for s != "" {
		i := strings.Index(s, delim)
		if i < 0 {
			tokens = append(tokens, s)
			break
		}
		tokens = append(tokens, s[:i])
		s = s[i+len(delim):]
	}
	return tokens
}
