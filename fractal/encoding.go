package fractal

// Encode7x2 splits the low 14 bits of v into two MIDI data bytes, least
// significant 7 bits first.
func Encode7x2(v uint32) (lo, hi byte) {
	return byte(v & 0x7F), byte((v >> 7) & 0x7F)
}

// Decode7x2 joins two data bytes written by Encode7x2.
func Decode7x2(lo, hi byte) uint32 {
	return uint32(lo&0x7F) | uint32(hi&0x7F)<<7
}

// EncodePresetNumber splits a preset number the way the II dialect expects
// it: most significant 7 bits first.
func EncodePresetNumber(n uint32) (hi, lo byte) {
	return byte((n >> 7) & 0x7F), byte(n & 0x7F)
}

// DecodePresetNumber joins two bytes written by EncodePresetNumber.
func DecodePresetNumber(hi, lo byte) uint32 {
	return uint32(hi&0x7F)<<7 | uint32(lo&0x7F)
}

// decode7x3 joins three data bytes, least significant first, into a 21-bit
// value.
func decode7x3(lo, mid, hi byte) uint32 {
	return uint32(lo&0x7F) | uint32(mid&0x7F)<<7 | uint32(hi&0x7F)<<14
}

const max14 = 1<<14 - 1
