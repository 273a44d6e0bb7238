package ansi

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/hnimtadd/ansilex/utils"
)

// Sequence is one recognized control sequence. It is a closed union:
// exactly Regular, Control and OSC implement it, so a type switch over
// those three is exhaustive.
//
// Every string field on every variant is a view into the input the
// sequence was parsed from.
type Sequence interface {
	fmt.Stringer

	// Hash returns a stable identity for the sequence, usable as a
	// dedup or index key. Two sequences with equal fields hash equal.
	Hash() uint64

	sequence()
}

// Regular is an escape sequence that is neither CSI nor OSC:
//
//	ESC I* F
type Regular struct {
	Intermediates string
	Final         string
}

func (s Regular) sequence() {}

func (s Regular) String() string {
	return fmt.Sprintf("ESC %q %q", s.Intermediates, s.Final)
}

func (s Regular) Hash() uint64 { return hash(s) }

// Control is a CSI sequence:
//
//	ESC '[' P* I* F
type Control struct {
	Params        string
	Intermediates string
	Final         string
}

func (s Control) sequence() {}

func (s Control) String() string {
	return fmt.Sprintf("CSI %q %q %q", s.Params, s.Intermediates, s.Final)
}

func (s Control) Hash() uint64 { return hash(s) }

// StringRun is the free-form payload implicitly opened by a preceding
// sequence and closed by a string terminator: either BEL, in which case
// Terminator is the one-character BEL view, or `ESC '\'`, in which case
// it is the two-character view.
type StringRun struct {
	Text       string
	Terminator string
}

func (s StringRun) String() string {
	return fmt.Sprintf("STR %q %q", s.Text, s.Terminator)
}

// OSC is an operating system command: a Regular header whose finalizer
// is ']', followed by a string payload.
type OSC struct {
	Header  Regular
	Payload StringRun
}

func (s OSC) sequence() {}

func (s OSC) String() string {
	return fmt.Sprintf("OSC %q %q", s.Payload.Text, s.Payload.Terminator)
}

func (s OSC) Hash() uint64 { return hash(s) }

func hash(s any) uint64 {
	hashed, err := hashstructure.Hash(s, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, "failed to hash sequence: %v", err)
	return hashed
}
