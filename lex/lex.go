// An allocation-free, predicate-driven string lexer.
//
// The Lexer is a view over a borrowed string plus a single saved-position
// marker. It owns no data: everything it returns is a substring of the
// original input, so the input must stay alive and unmodified for as long
// as any extracted value is in use. Iteration is by rune so multi-byte
// UTF-8 characters are never split.
package lex

import (
	"fmt"
	"unicode/utf8"
)

// ErrEOF is returned when an operation needs input but the cursor is
// already exhausted.
var ErrEOF = fmt.Errorf("lex: end of input")

// ErrUnexpected is returned when the next character does not satisfy the
// predicate an operation requires.
var ErrUnexpected = fmt.Errorf("lex: unexpected character")

// Lexer is a cursor over a borrowed string. It is a value type: copying
// a Lexer yields an independent cursor over the same input, which makes
// lookahead probes cheap (copy, probe the copy, keep the original).
type Lexer struct {
	// The not-yet-consumed suffix of the input.
	cursor string

	// The suffix as of the last Mark. Invariant: cursor is always a
	// suffix of marked; the characters consumed since the mark are
	// exactly those in marked but not in cursor.
	marked string
}

func New(input string) Lexer {
	return Lexer{
		cursor: input,
		marked: input,
	}
}

// Extract consumes the maximal run of leading characters satisfying
// pred and returns it. A zero-length run is a valid result; ErrEOF is
// returned only if the cursor was already exhausted before the call,
// which distinguishes "nothing left" from "nothing matched".
func (l *Lexer) Extract(pred func(rune) bool) (string, error) {
	if len(l.cursor) == 0 {
		return "", ErrEOF
	}

	end := len(l.cursor)
	for i, c := range l.cursor {
		if !pred(c) {
			end = i
			break
		}
	}

	extracted := l.cursor[:end]
	l.cursor = l.cursor[end:]
	return extracted, nil
}

// ExtractOne consumes exactly one character if it satisfies pred and
// returns it as a one-character view. On mismatch it returns
// ErrUnexpected and leaves the cursor untouched, so the character is
// still there for the next call.
func (l *Lexer) ExtractOne(pred func(rune) bool) (string, error) {
	if len(l.cursor) == 0 {
		return "", ErrEOF
	}

	c, size := utf8.DecodeRuneInString(l.cursor)
	if !pred(c) {
		return "", ErrUnexpected
	}

	extracted := l.cursor[:size]
	l.cursor = l.cursor[size:]
	return extracted, nil
}

// ExtractOneGreedy is ExtractOne, except that on ErrUnexpected it
// force-skips the mismatched character before returning the error. A
// caller that ignores the error still makes forward progress, which is
// what lets a scanning loop resynchronize over malformed input instead
// of spinning on the same byte.
func (l *Lexer) ExtractOneGreedy(pred func(rune) bool) (string, error) {
	extracted, err := l.ExtractOne(pred)
	if err == ErrUnexpected {
		if serr := l.Skip(1); serr != nil {
			return "", serr
		}
	}
	return extracted, err
}

// Mark records the current position as the checkpoint, replacing any
// previous one.
func (l *Lexer) Mark() {
	l.marked = l.cursor
}

// Rewind resets the cursor back to the checkpoint, undoing everything
// extracted since the last Mark (or since construction).
func (l *Lexer) Rewind() {
	l.cursor = l.marked
}

// Consumed returns the view spanning from the checkpoint to the current
// position. The span is recomputed from the two suffix lengths, so it is
// always a well-formed substring of the original input.
func (l *Lexer) Consumed() string {
	return l.marked[:len(l.marked)-len(l.cursor)]
}

// Remaining returns the characters that have not been extracted yet.
func (l *Lexer) Remaining() string {
	return l.cursor
}

// IsEmpty reports whether there is nothing left to extract.
func (l *Lexer) IsEmpty() bool {
	return len(l.cursor) == 0
}

// Skip advances past exactly n characters. If fewer than n remain it
// returns ErrEOF and the cursor does not move at all.
func (l *Lexer) Skip(n int) error {
	rest := l.cursor
	for ; n > 0; n-- {
		if len(rest) == 0 {
			return ErrEOF
		}
		_, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]
	}
	l.cursor = rest
	return nil
}
