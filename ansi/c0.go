package ansi

import "fmt"

// C0 (7-bit) control characters the grammar cares about.
//
// This is not the full C0 set, only the characters that open or close
// sequences. See https://vt100.net/docs/vt100-ug/chapter3.html#S3.2
type c0 struct {
	BEL uint8 // BEL is the bell character (Caret: ^G, Char: \a).
	ESC uint8 // ESC is the Escape character (Caret: ^[).
}

var C0 = c0{
	BEL: 0x07,
	ESC: 0x1B,
}

// names maps the C0 range to mnemonic names for debug output.
var names = map[uint8]string{
	0x00: "NUL", 0x01: "SOH", 0x02: "STX", 0x03: "ETX",
	0x04: "EOT", 0x05: "ENQ", 0x06: "ACK", 0x07: "BEL",
	0x08: "BS", 0x09: "HT", 0x0A: "LF", 0x0B: "VT",
	0x0C: "FF", 0x0D: "CR", 0x0E: "SO", 0x0F: "SI",
	0x10: "DLE", 0x11: "DC1", 0x12: "DC2", 0x13: "DC3",
	0x14: "DC4", 0x15: "NAK", 0x16: "SYN", 0x17: "ETB",
	0x18: "CAN", 0x19: "EM", 0x1A: "SUB", 0x1B: "ESC",
	0x1C: "FS", 0x1D: "GS", 0x1E: "RS", 0x1F: "US",
	0x7F: "DEL",
}

// Name formats a character for debug logging, with its C0 mnemonic when
// it has one.
func Name(c rune) string {
	if c >= 0 && c <= 0x7F {
		if name, ok := names[uint8(c)]; ok {
			return fmt.Sprintf("%s (0x%02X)", name, uint8(c))
		}
	}
	return fmt.Sprintf("%q", c)
}
