// Package ansilex tokenizes text containing ANSI/VT100 escape sequences.
//
// The heavy lifting happens in the lex and ansi subpackages: an
// allocation-free cursor and the sequence grammar built on it. This
// package is the convenience surface over them: a Scanner that walks a
// whole stream, interleaving plain text with parsed sequences and
// resynchronizing past malformed input, plus helpers to strip sequences
// and measure the printable width of what remains.
package ansilex

import (
	"io"

	"golang.org/x/text/encoding/unicode"

	"github.com/hnimtadd/ansilex/ansi"
	"github.com/hnimtadd/ansilex/lex"
	"github.com/hnimtadd/ansilex/logger"
)

type TokenType int

const (
	// TokenText is a run of plain text between sequences.
	TokenText TokenType = iota

	// TokenSequence is one parsed escape sequence.
	TokenSequence

	// TokenInvalid is a run of bytes skipped while resynchronizing
	// past input that looked like a sequence but was not one.
	TokenInvalid
)

// Token is one item of a scanned stream. Text carries the payload for
// TokenText and the discarded bytes for TokenInvalid; Sequence is set
// only for TokenSequence. Both borrow from the scanned input.
type Token struct {
	Type     TokenType
	Text     string
	Sequence ansi.Sequence
}

type Options struct {
	Logger logger.Logger

	// CollectStats keeps per-sequence occurrence counts, keyed by the
	// sequence hash. Useful when inspecting escape-heavy streams.
	CollectStats bool
}

// SequenceStat is the occurrence count for one distinct sequence.
type SequenceStat struct {
	Sequence ansi.Sequence
	Count    int
}

// Scanner walks an input string left to right, producing tokens. It is
// stateful and single-use: create a new Scanner per input.
type Scanner struct {
	lx     lex.Lexer
	logger logger.Logger
	stats  map[uint64]*SequenceStat
}

func NewScanner(input string, opts Options) *Scanner {
	if opts.Logger == nil {
		opts.Logger = logger.NopLogger
	}
	s := &Scanner{
		lx:     lex.New(input),
		logger: opts.Logger,
	}
	if opts.CollectStats {
		s.stats = make(map[uint64]*SequenceStat)
	}
	return s
}

// NewScannerBytes is NewScanner for raw bytes, for example straight off
// a pty. The bytes are decoded to well-formed UTF-8 first (ill-formed
// sequences become replacement characters) since the lexer consumes
// Unicode scalar values. Note that the decode may copy: tokens from
// this scanner borrow from the decoded buffer, not from input.
func NewScannerBytes(input []byte, opts Options) *Scanner {
	dec := unicode.UTF8.NewDecoder()
	decoded, err := dec.Bytes(input)
	if err != nil {
		// The UTF-8 decoder replaces rather than fails; treat an error
		// as a bug but keep scanning the raw input.
		if opts.Logger != nil {
			opts.Logger.Error("failed to decode input", "err", err)
		}
		decoded = input
	}
	return NewScanner(string(decoded), opts)
}

// Next returns the next token, or io.EOF once the input is exhausted.
//
// Malformed sequences never stop the scan: the grammar's greedy
// extractor already discards the offending character, and Next tops
// that up with a one-rune skip when a parse failed before consuming
// anything, so every call makes forward progress.
func (s *Scanner) Next() (Token, error) {
	if s.lx.IsEmpty() {
		return Token{}, io.EOF
	}

	text, err := s.lx.Extract(func(c rune) bool { return c != rune(ansi.C0.ESC) })
	if err != nil {
		return Token{}, err
	}
	if text != "" {
		return Token{Type: TokenText, Text: text}, nil
	}

	// The cursor sits on an ESC.
	before := s.lx.Remaining()
	seq, err := ansi.ParseSequence(&s.lx)
	if err != nil {
		if len(s.lx.Remaining()) == len(before) {
			// The lookahead probe failed without touching the real
			// cursor; skip the opener ourselves.
			_ = s.lx.Skip(1)
		}
		skipped := before[:len(before)-len(s.lx.Remaining())]
		s.logger.Debug(
			"resynchronized past malformed sequence",
			"skipped", skipped,
			"next", ansi.Name(firstRune(s.lx.Remaining())),
		)
		return Token{Type: TokenInvalid, Text: skipped}, nil
	}

	if s.stats != nil {
		key := seq.Hash()
		stat, ok := s.stats[key]
		if !ok {
			stat = &SequenceStat{Sequence: seq}
			s.stats[key] = stat
		}
		stat.Count++
	}
	return Token{Type: TokenSequence, Sequence: seq}, nil
}

// Remaining returns the not-yet-scanned suffix of the input.
func (s *Scanner) Remaining() string {
	return s.lx.Remaining()
}

// Stats returns the sequence occurrence counts collected so far. It
// returns nil unless the scanner was created with CollectStats.
func (s *Scanner) Stats() map[uint64]SequenceStat {
	if s.stats == nil {
		return nil
	}
	out := make(map[uint64]SequenceStat, len(s.stats))
	for k, v := range s.stats {
		out[k] = *v
	}
	return out
}

func firstRune(s string) rune {
	for _, c := range s {
		return c
	}
	return 0
}
