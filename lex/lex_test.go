package lex

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestLexerExtract(t *testing.T) {
	lx := New("hello123 world")
	assert.False(t, lx.IsEmpty())

	// Extract "hello", and ensure the lexer has "123 world" remaining.
	got, err := lx.Extract(unicode.IsLetter)
	assert.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "123 world", lx.Remaining())
	assert.False(t, lx.IsEmpty())

	// Extract one character, but it doesn't match. No state change.
	_, err = lx.ExtractOne(unicode.IsLetter)
	assert.ErrorIs(t, err, ErrUnexpected)
	assert.Equal(t, "123 world", lx.Remaining())

	// Extract one character greedily, but it doesn't match. The
	// mismatched character is discarded.
	_, err = lx.ExtractOneGreedy(unicode.IsLetter)
	assert.ErrorIs(t, err, ErrUnexpected)
	assert.Equal(t, "23 world", lx.Remaining())

	// Extract one character.
	got, err = lx.ExtractOne(unicode.IsDigit)
	assert.NoError(t, err)
	assert.Equal(t, "2", got)
	assert.Equal(t, "3 world", lx.Remaining())

	// Extract anything not alphabetic.
	got, err = lx.Extract(func(c rune) bool { return !unicode.IsLetter(c) })
	assert.NoError(t, err)
	assert.Equal(t, "3 ", got)
	assert.Equal(t, "world", lx.Remaining())

	// Extract with nothing matching is a zero-length success.
	got, err = lx.Extract(func(rune) bool { return false })
	assert.NoError(t, err)
	assert.Equal(t, "", got)
	assert.Equal(t, "world", lx.Remaining())

	// Extract the rest of it.
	got, err = lx.Extract(func(rune) bool { return true })
	assert.NoError(t, err)
	assert.Equal(t, "world", got)
	assert.True(t, lx.IsEmpty())

	// Ensure it still fails cleanly with empty contents.
	_, err = lx.Extract(func(rune) bool { return true })
	assert.ErrorIs(t, err, ErrEOF)
	_, err = lx.ExtractOne(func(rune) bool { return true })
	assert.ErrorIs(t, err, ErrEOF)
	assert.True(t, lx.IsEmpty())
}

func TestLexerExtractUnicode(t *testing.T) {
	lx := New("héllo→123")

	got, err := lx.Extract(func(c rune) bool { return !unicode.IsDigit(c) })
	assert.NoError(t, err)
	assert.Equal(t, "héllo→", got)
	assert.Equal(t, "123", lx.Remaining())

	// One rune at a time, never a partial code point.
	lx = New("→x")
	got, err = lx.ExtractOne(func(c rune) bool { return c == '→' })
	assert.NoError(t, err)
	assert.Equal(t, "→", got)
	assert.Equal(t, "x", lx.Remaining())
}

func TestLexerMark(t *testing.T) {
	lx := New("hello123 world")

	// Extract "hello", and ensure the consumed characters are also
	// "hello" (the mark defaults to the start).
	got, err := lx.Extract(unicode.IsLetter)
	assert.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "hello", lx.Consumed())

	// Extract "123", and ensure the consumed span grows.
	got, err = lx.Extract(unicode.IsDigit)
	assert.NoError(t, err)
	assert.Equal(t, "123", got)
	assert.Equal(t, "hello123", lx.Consumed())

	// Rewind to the last-marked position (implicitly, the beginning).
	lx.Rewind()
	assert.Equal(t, "hello123 world", lx.Remaining())

	// Extract "hello" and mark.
	_, err = lx.Extract(unicode.IsLetter)
	assert.NoError(t, err)
	lx.Mark()
	assert.Equal(t, "", lx.Consumed())
	assert.Equal(t, "123 world", lx.Remaining())
}

// Consumed plus Remaining always reconstructs the input from the mark,
// with no characters lost or duplicated.
func TestLexerConsumedPartition(t *testing.T) {
	const input = "ab→cd\x1befg"
	lx := New(input)

	for !lx.IsEmpty() {
		assert.Equal(t, input, lx.Consumed()+lx.Remaining())
		assert.NoError(t, lx.Skip(1))
	}
	assert.Equal(t, input, lx.Consumed())
}

// Alternating complementary predicates partitions the input into runs
// whose concatenation is the original text.
func TestLexerExtractPartition(t *testing.T) {
	const input = "aa11bb22→→cc"
	lx := New(input)

	rebuilt := ""
	pred := unicode.IsDigit
	for !lx.IsEmpty() {
		run, err := lx.Extract(pred)
		assert.NoError(t, err)
		rebuilt += run
		pred = complement(pred)
	}
	assert.Equal(t, input, rebuilt)
}

func complement(pred func(rune) bool) func(rune) bool {
	return func(c rune) bool { return !pred(c) }
}

func TestLexerSkip(t *testing.T) {
	lx := New("12345")
	assert.Equal(t, "12345", lx.Remaining())

	// Skip 0.
	assert.NoError(t, lx.Skip(0))
	assert.Equal(t, "12345", lx.Remaining())

	// Skip 1.
	assert.NoError(t, lx.Skip(1))
	assert.Equal(t, "2345", lx.Remaining())

	// Skip 2.
	assert.NoError(t, lx.Skip(2))
	assert.Equal(t, "45", lx.Remaining())

	// Skip past the end: all-or-nothing, the cursor must not move.
	assert.ErrorIs(t, lx.Skip(10), ErrEOF)
	assert.Equal(t, "45", lx.Remaining())

	// Skip while nothing remaining.
	lx = New("")
	assert.ErrorIs(t, lx.Skip(1), ErrEOF)
	assert.Equal(t, "", lx.Remaining())
}

// Copying a Lexer yields an independent probe cursor.
func TestLexerCopyIsIndependent(t *testing.T) {
	lx := New("abc")
	probe := lx

	_, err := probe.Extract(func(rune) bool { return true })
	assert.NoError(t, err)
	assert.True(t, probe.IsEmpty())
	assert.Equal(t, "abc", lx.Remaining())
}
