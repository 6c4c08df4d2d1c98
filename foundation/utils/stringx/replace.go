// File: replace.go
// Title: Substring Replacement and Line Endings
// Description: Implements left-to-right replacement that resumes scanning after
//              the inserted text, and CR+LF to LF normalisation built on it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringx

import (
	"errors"
	"strings"

	mdwerrors "github.com/msto63/stringops/foundation/core/errors"
)

var (
	// ErrEmptyNeedle is the cause of the panic raised by Replace for an empty needle
	ErrEmptyNeedle = errors.New("needle must not be empty")

	// ErrEmptyDelimiter is the cause of the panic raised by Tokenize for an empty delimiter
	ErrEmptyDelimiter = errors.New("delimiter must not be empty")
)

// Replace replaces every non-overlapping occurrence of needle in s, scanning
// left to right. After a replacement the scan resumes past the inserted text,
// so a replacement containing needle is never replaced again.
//
// Replace panics if needle is empty.
func Replace(s, needle, replacement string) string {
	if needle == "" {
		panic(mdwerrors.PreconditionViolation(mdwerrors.ModuleStringx, "Replace", ErrEmptyNeedle, "non-empty needle"))
	}

	i := strings.Index(s, needle)
	if i < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i >= 0 {
		b.WriteString(s[:i])
		b.WriteString(replacement)
		s = s[i+len(needle):]
		i = strings.Index(s, needle)
	}
	b.WriteString(s)
	return b.String()
}

// ReplaceInPlace applies Replace to *s
func ReplaceInPlace(s *string, needle, replacement string) {
	*s = Replace(*s, needle, replacement)
}

// Dos2Unix converts CR+LF pairs to LF. A lone CR is kept.
func Dos2Unix(s string) string {
	return Replace(s, "\r\n", "\n")
}

// Dos2UnixInPlace applies Dos2Unix to *s
func Dos2UnixInPlace(s *string) {
	*s = Dos2Unix(*s)
}
