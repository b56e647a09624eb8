package fractal

import (
	"bytes"
	"strings"
)

const presetNameLen = 32

// asciiOnly drops every rune outside the 7-bit ASCII range.
func asciiOnly(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r < 0x80 {
			out = append(out, byte(r))
		}
	}
	return out
}

// padPresetName returns exactly 32 bytes: the ASCII characters of name,
// truncated or padded with spaces.
func padPresetName(name string) []byte {
	chars := asciiOnly(name)
	if len(chars) > presetNameLen {
		chars = chars[:presetNameLen]
	}
	return append(chars, bytes.Repeat([]byte{' '}, presetNameLen-len(chars))...)
}

// decodePresetName reads the fixed 32-byte name window.
func decodePresetName(window []byte) string {
	if len(window) > presetNameLen {
		window = window[:presetNameLen]
	}
	var sb strings.Builder
	for _, b := range window {
		if b > 0 {
			sb.WriteByte(b)
		}
	}
	return strings.TrimRight(sb.String(), " \t\r\n\v\f")
}

// packGroup is the number of characters after which the III name bit stream
// returns to its starting phase.
const packGroup = 7

// EncodePresetNameIII packs name the way the Axe-Fx III transmits preset
// names: every character is written as 8 bits, most significant first, into
// a stream of 7-bit data bytes. Each group of 7 characters starts on a fresh
// byte and occupies 8 bytes. Non-ASCII characters are dropped.
//
// The stream has no terminator; see DecodePresetNameIII.
func EncodePresetNameIII(name string) []byte {
	chars := asciiOnly(name)
	out := []byte{0x00}
	for i, c := range chars {
		phase := i % packGroup
		if phase == 0 && i > 0 {
			out = append(out, 0x00)
		}
		shift := uint(phase + 1)
		out[len(out)-1] |= c >> shift
		out = append(out, (c<<(7-shift))&0x7F)
	}
	return out
}

// PackedNameLen returns the number of bytes EncodePresetNameIII produces for
// n characters.
func PackedNameLen(n int) int {
	if n <= 0 {
		return 1
	}
	return n + (n+packGroup-1)/packGroup
}

// DecodePresetNameIII unpacks n characters written by EncodePresetNameIII.
// The character count is not carried by the stream itself; callers derive it
// from the enclosing frame. Missing trailing bytes decode as zero bits.
func DecodePresetNameIII(data []byte, n int) string {
	at := func(i int) byte {
		if i < len(data) {
			return data[i] & 0x7F
		}
		return 0
	}

	out := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		group, phase := i/packGroup, i%packGroup
		base := group*(packGroup+1) + phase
		shift := uint(phase + 1)
		high := at(base) & (0x7F >> shift)
		low := at(base+1) >> (7 - shift)
		out = append(out, high<<shift|low)
	}
	return string(out)
}
