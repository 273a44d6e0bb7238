package ansi

import (
	"fmt"

	"github.com/hnimtadd/ansilex/lex"
)

// ErrInvalidSequence is the single error every production fails with. It
// covers both truncated input and input that does not match the grammar;
// callers that care how much input survived a failed parse can inspect
// the lexer's Remaining.
var ErrInvalidSequence = fmt.Errorf("ansi: invalid sequence")

// ParseRegular parses `ESC I* F` from the front of the lexer.
func ParseRegular(lx *lex.Lexer) (Regular, error) {
	if _, err := lx.ExtractOne(isSequenceOpener); err != nil {
		return Regular{}, ErrInvalidSequence
	}

	intermediates, err := lx.Extract(isSequenceIntermediate)
	if err != nil {
		return Regular{}, ErrInvalidSequence
	}

	// Greedy: on a mismatched finalizer the bad character is discarded,
	// so a scanning loop that retries keeps moving forward.
	final, err := lx.ExtractOneGreedy(isSequenceFinalizer)
	if err != nil {
		return Regular{}, ErrInvalidSequence
	}

	return Regular{
		Intermediates: intermediates,
		Final:         final,
	}, nil
}

// ParseControl parses `ESC '[' P* I* F` from the front of the lexer.
func ParseControl(lx *lex.Lexer) (Control, error) {
	if _, err := lx.ExtractOne(isSequenceOpener); err != nil {
		return Control{}, ErrInvalidSequence
	}

	// The CSI finalizer class doubles as a one-byte probe of what
	// follows ESC; only the literal '[' introduces a control sequence.
	opener, err := lx.ExtractOneGreedy(isCSIFinalizer)
	if err != nil || opener != "[" {
		return Control{}, ErrInvalidSequence
	}

	params, err := lx.Extract(isCSIParameter)
	if err != nil {
		return Control{}, ErrInvalidSequence
	}

	intermediates, err := lx.Extract(isCSIIntermediate)
	if err != nil {
		return Control{}, ErrInvalidSequence
	}

	final, err := lx.ExtractOneGreedy(isCSIFinalizer)
	if err != nil {
		return Control{}, ErrInvalidSequence
	}

	return Control{
		Params:        params,
		Intermediates: intermediates,
		Final:         final,
	}, nil
}

// ParseString parses a string payload and its terminator from the front
// of the lexer. The payload runs up to the first BEL or ESC and may be
// empty; the terminator must then be BEL or `ESC '\'`.
func ParseString(lx *lex.Lexer) (StringRun, error) {
	text, err := lx.Extract(func(c rune) bool { return !isStringTerminatorOpener(c) })
	if err != nil {
		return StringRun{}, ErrInvalidSequence
	}

	// Both terminator forms are ASCII, so the two-character view can be
	// sliced off the remaining input before consuming it.
	rest := lx.Remaining()

	opener, err := lx.ExtractOneGreedy(isStringTerminatorOpener)
	if err != nil {
		return StringRun{}, ErrInvalidSequence
	}
	if opener == "\a" {
		return StringRun{Text: text, Terminator: opener}, nil
	}

	// ESC form: a literal backslash must follow.
	if _, err := lx.ExtractOneGreedy(func(c rune) bool { return c == '\\' }); err != nil {
		return StringRun{}, ErrInvalidSequence
	}
	return StringRun{Text: text, Terminator: rest[:2]}, nil
}

// ParseSequence parses the next sequence of any shape from the front of
// the lexer.
//
// It first parses a Regular against a copy of the lexer as a lookahead
// probe. A probe with intermediates is unambiguously Regular. Otherwise
// the probe's finalizer decides: '[' introduces a control sequence, ']'
// an OSC header followed by its string payload, anything else a Regular.
// The winning production is then parsed again from the real lexer, so
// the returned views never alias the probe.
func ParseSequence(lx *lex.Lexer) (Sequence, error) {
	probe := *lx
	header, err := ParseRegular(&probe)
	if err != nil {
		return nil, err
	}

	if header.Intermediates != "" {
		return ParseRegular(lx)
	}

	switch header.Final {
	case "[":
		return ParseControl(lx)
	case "]":
		oscHeader, err := ParseRegular(lx)
		if err != nil {
			return nil, err
		}
		payload, err := ParseString(lx)
		if err != nil {
			return nil, err
		}
		return OSC{Header: oscHeader, Payload: payload}, nil
	default:
		return ParseRegular(lx)
	}
}

// Checks if a character is a sequence opener: the ESC control character
// that begins every escape sequence.
func isSequenceOpener(c rune) bool {
	return c == rune(C0.ESC)
}

// Checks if a character is a sequence intermediate byte, 0x20 through
// 0x2F inclusive. Zero or more sit between the opener and the finalizer.
func isSequenceIntermediate(c rune) bool {
	return c >= 0x20 && c <= 0x2F
}

// Checks if a character is a sequence finalizer byte, 0x30 through 0x7E
// inclusive. The finalizer ends the sequence and names its command.
func isSequenceFinalizer(c rune) bool {
	return c >= 0x30 && c <= 0x7E
}

// Checks if a character is a CSI parameter byte, 0x30 through 0x3F
// inclusive.
func isCSIParameter(c rune) bool {
	return c >= 0x30 && c <= 0x3F
}

// Checks if a character is a CSI intermediate byte, 0x20 through 0x2F
// inclusive.
func isCSIIntermediate(c rune) bool {
	return c >= 0x20 && c <= 0x2F
}

// Checks if a character is a CSI finalizer byte, 0x40 through 0x7E
// inclusive.
func isCSIFinalizer(c rune) bool {
	return c >= 0x40 && c <= 0x7E
}

// Checks if a character opens a string terminator: BEL terminates on its
// own, ESC must be followed by a backslash.
func isStringTerminatorOpener(c rune) bool {
	return c == rune(C0.BEL) || c == rune(C0.ESC)
}
