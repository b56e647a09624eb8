package fractal

import (
	"bytes"
	"testing"
)

func TestChecksum(t *testing.T) {
	got := Checksum([]byte{0xF0, 0x00, 0x01, 0x74, 0x03, 0x0F, 0xF7})
	if got != 0x09 {
		t.Fatalf("checksum: expected 0x09, got 0x%02X", got)
	}
}

func TestChecksumPanicsOnShortFrame(t *testing.T) {
	for _, frame := range [][]byte{nil, {0xF7}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for frame % X", frame)
				}
			}()
			Checksum(frame)
		}()
	}
}

func TestWithChecksum(t *testing.T) {
	cases := []struct {
		in, want []byte
	}{
		{
			in:   []byte{0xF0, 0x00, 0x01, 0x74, 0x03, 0x0F, 0xF7},
			want: []byte{0xF0, 0x00, 0x01, 0x74, 0x03, 0x0F, 0x09, 0xF7},
		},
		{
			in:   []byte{0xF0, 0x00, 0x01, 0x74, 0x03, 0x14, 0xF7},
			want: []byte{0xF0, 0x00, 0x01, 0x74, 0x03, 0x14, 18, 0xF7},
		},
	}
	for _, c := range cases {
		in := append([]byte(nil), c.in...)
		if got := WithChecksum(in); !bytes.Equal(got, c.want) {
			t.Errorf("WithChecksum(% X): expected % X, got % X", c.in, c.want, got)
		}
		if !bytes.Equal(in, c.in) {
			t.Errorf("WithChecksum modified its input: % X", in)
		}
	}
}

func TestWrappedFramesCarryValidChecksum(t *testing.T) {
	frames := [][]byte{
		GetPresetNumber(ModelII),
		GetCurrentPresetName(ModelIII),
		SetCurrentPresetName(ModelAX8, "Rhythm Crunch"),
		GetGridLayoutAndRouting(ModelFX8),
		TapTempo(ModelIII),
	}
	for _, frame := range frames {
		if !IsFractalSysEx(frame) {
			t.Errorf("% X: missing header or terminator", frame)
			continue
		}
		stored := frame[len(frame)-2]
		zeroed := append([]byte(nil), frame...)
		zeroed[len(zeroed)-2] = 0
		if got := Checksum(zeroed); got != stored {
			t.Errorf("% X: recomputed checksum 0x%02X, stored 0x%02X", frame, got, stored)
		}
		if !ValidChecksum(frame) {
			t.Errorf("% X: ValidChecksum reported false", frame)
		}
	}
}

func TestIsFractalSysEx(t *testing.T) {
	if IsFractalSysEx([]byte{0xF0, 0x3E, 0x13, 0x00, 0xF7}) {
		t.Error("Waldorf frame accepted as Fractal")
	}
	if IsFractalSysEx([]byte{0xB0, 15, 127}) {
		t.Error("control change accepted as Fractal")
	}
}
