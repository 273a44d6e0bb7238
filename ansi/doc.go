/*
Package ansi recognizes the shapes of ANSI/VT100 control sequences without
copying any input.

Programs talking to a terminal encode commands as escape sequences: runs of
bytes beginning with the escape character (0x1B). This package understands
the three shapes those sequences come in:

Escape Sequences: `ESC I* F` — zero or more intermediate bytes followed by
a finalizer byte.

CSI Sequences ("Control Sequence Introducer"): `ESC '[' P* I* F` —
parameter bytes, then intermediate bytes, then a finalizer byte.

OSC Sequences ("Operating System Command"): `ESC ']'` followed by a
free-form string payload closed by a string terminator, either BEL (0x07)
or `ESC '\'`.

Everything a parse returns is a view into the caller's input string: the
package allocates nothing per character, and the input must outlive the
values parsed from it. Recognition is purely syntactic; no attempt is made
to interpret parameter values or finalizer commands.
*/
package ansi
