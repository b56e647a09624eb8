// Package fractal encodes and decodes the SysEx dialects spoken by Fractal
// Audio processors (Axe-Fx II family and Axe-Fx III).
//
// Every function in this package is pure: builders return a fresh frame,
// Parse returns a fresh Message, and the lookup tables are never mutated
// after init. Callers may use the package from any number of goroutines.
package fractal

import "bytes"

const (
	sysExStart = 0xF0
	sysExEnd   = 0xF7
)

// Header is the fixed manufacturer prefix of every Fractal SysEx frame.
var Header = []byte{sysExStart, 0x00, 0x01, 0x74}

// Checksum XORs every byte of frame except the last one and masks the result
// to 7 bits. The last byte is expected to be the terminator.
//
// Checksum panics when frame is shorter than two bytes.
func Checksum(frame []byte) byte {
	if len(frame) < 2 {
		panic("fractal: checksum of a frame shorter than 2 bytes")
	}

	var chk byte
	for _, b := range frame[:len(frame)-1] {
		chk ^= b
	}
	return chk & 0x7F
}

// WithChecksum returns a copy of frame with the checksum inserted in front of
// its terminator.
func WithChecksum(frame []byte) []byte {
	chk := Checksum(frame)
	term := frame[len(frame)-1]

	out := make([]byte, 0, len(frame)+1)
	out = append(out, frame[:len(frame)-1]...)
	return append(out, chk, term)
}

// Wrap frames payload (model byte, opcode and arguments) as a complete SysEx
// message: header, payload, checksum, terminator.
func Wrap(payload ...byte) []byte {
	frame := make([]byte, 0, len(Header)+len(payload)+1)
	frame = append(frame, Header...)
	frame = append(frame, payload...)
	frame = append(frame, sysExEnd)
	return WithChecksum(frame)
}

// IsFractalSysEx reports whether frame carries the Fractal header and a
// terminator.
func IsFractalSysEx(frame []byte) bool {
	if len(frame) < len(Header)+1 {
		return false
	}
	return bytes.HasPrefix(frame, Header) && frame[len(frame)-1] == sysExEnd
}

// ValidChecksum reports whether the byte in front of the terminator matches
// the checksum of the rest of the frame.
func ValidChecksum(frame []byte) bool {
	if len(frame) < 3 {
		return false
	}
	stored := frame[len(frame)-2]
	unsigned := append([]byte{}, frame[:len(frame)-2]...)
	unsigned = append(unsigned, frame[len(frame)-1])
	return Checksum(unsigned) == stored
}
