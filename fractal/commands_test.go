package fractal

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func frameOK(t *testing.T) func([]byte, error) []byte {
	return func(frame []byte, err error) []byte {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return frame
	}
}

func TestCommandFrames(t *testing.T) {
	must := frameOK(t)

	cases := []struct {
		name string
		got  []byte
		want []byte
	}{
		{"get preset number", GetPresetNumber(ModelII),
			[]byte{0xF0, 0x00, 0x01, 0x74, 0x03, 0x14, 18, 0xF7}},
		{"set preset 127", must(SetPresetNumber(ModelII, 127)),
			[]byte{0xF0, 0x00, 0x01, 0x74, 0x03, 0x3C, 0, 127, 69, 0xF7}},
		{"set preset 128", must(SetPresetNumber(ModelII, 128)),
			[]byte{0xF0, 0x00, 0x01, 0x74, 0x03, 0x3C, 1, 0, 59, 0xF7}},
		{"get current preset name II", GetCurrentPresetName(ModelII),
			[]byte{0xF0, 0x00, 0x01, 0x74, 0x03, 0x0F, 9, 0xF7}},
		{"get current preset name III", GetCurrentPresetName(ModelIII),
			[]byte{0xF0, 0x00, 0x01, 0x74, 0x10, 0x0D, 0x7F, 0x7F, 24, 0xF7}},
		{"get preset name III", must(GetPresetName(ModelIII, 399)),
			[]byte{0xF0, 0x00, 0x01, 0x74, 0x10, 0x0D, 0x0F, 0x03, 20, 0xF7}},
		{"firmware", GetFirmwareVersion(ModelII),
			[]byte{0xF0, 0x00, 0x01, 0x74, 0x03, 0x08, 14, 0xF7}},
		{"disconnect", DisconnectFromController(ModelII),
			[]byte{0xF0, 0x00, 0x01, 0x74, 0x03, 0x42, 68, 0xF7}},
		{"midi channel", GetMIDIChannel(ModelII),
			[]byte{240, 0, 1, 116, 3, 0x17, 17, 0xF7}},
		{"blocks flags", GetPresetBlocksFlags(ModelII),
			[]byte{240, 0, 1, 116, 3, 0x0E, 8, 0xF7}},
		{"grid", GetGridLayoutAndRouting(ModelII),
			[]byte{240, 0, 1, 116, 3, 0x20, 38, 0xF7}},
		{"scene 1 II", must(SetSceneNumber(ModelII, 1)),
			[]byte{0xF0, 0x00, 0x01, 0x74, 0x03, 0x29, 0x00, 0x2F, 0xF7}},
		{"scene 1 III", must(SetSceneNumber(ModelIII, 1)),
			[]byte{0xF0, 0x00, 0x01, 0x74, 0x10, 0x0C, 0x01, 0x18, 0xF7}},
		{"get scene II", GetSceneNumber(ModelII),
			[]byte{240, 0, 1, 116, 3, 41, 127, 80, 247}},
		{"get scene III", GetSceneNumber(ModelIII),
			[]byte{240, 0, 1, 116, 16, 12, 127, 102, 247}},
		{"params TremoloPanner1", must(GetBlockParameters(ModelII, EffectTremoloPanner1)),
			[]byte{240, 0, 1, 116, 3, 0x01, 0, 1, 6, 0xF7}},
		{"params VolumePan1", must(GetBlockParameters(ModelII, EffectVolumePan1)),
			[]byte{240, 0, 1, 116, 3, 0x01, 127, 0, 120, 0xF7}},
		{"params TremoloPanner2", must(GetBlockParameters(ModelII, EffectTremoloPanner2)),
			[]byte{240, 0, 1, 116, 3, 0x01, 1, 1, 7, 0xF7}},
		{"store II", must(StoreInPreset(ModelII, 217)),
			[]byte{0xF0, 0x00, 0x01, 0x74, 0x03, 0x1D, 0x01, 0x59, 0x43, 0xF7}},
		{"store III", must(StoreInPreset(ModelIII, 399)),
			[]byte{0xF0, 0x00, 0x01, 0x74, 0x10, 0x01, 0x26, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0F, 0x03,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3E, 0xF7}},
		{"tempo 70", must(SetTempo(ModelIII, 70)),
			[]byte{0xF0, 0x00, 0x01, 0x74, 0x10, 0x14, 0x46, 0x00, 0x47, 0xF7}},
		{"tempo 140", must(SetTempo(ModelIII, 140)),
			[]byte{0xF0, 0x00, 0x01, 0x74, 0x10, 0x14, 0x0C, 0x01, 0x0C, 0xF7}},
		{"get tempo", must(GetTempo(ModelIII)),
			[]byte{240, 0, 1, 116, 16, 20, 127, 127, 1, 247}},
		{"tap tempo", TapTempo(ModelII),
			[]byte{240, 0, 1, 116, 3, 16, 22, 247}},
		{"tuner sysex on", ToggleTunerSysEx(ModelIII, true),
			[]byte{240, 0, 1, 116, 16, 17, 1, 5, 247}},
		{"tuner sysex off", ToggleTunerSysEx(ModelII, false),
			[]byte{240, 0, 1, 116, 3, 17, 0, 23, 247}},
		{"status dump", must(GetStatusDump(ModelIII)),
			[]byte{240, 0, 1, 116, 16, 19, 6, 247}},
		{"looper", must(GetLooperStatus(ModelIII)),
			[]byte{240, 0, 1, 116, 16, 15, 26, 247}},
		{"current scene name", must(GetSceneName(ModelIII, 0)),
			[]byte{240, 0, 1, 116, 16, 14, 127, 100, 247}},
		{"scene 3 name", must(GetSceneName(ModelIII, 3)),
			[]byte{240, 0, 1, 116, 16, 14, 2, 25, 247}},
		{"bypass Amp1", must(SetBlockBypass(ModelIII, EffectAmp1, true)),
			[]byte{240, 0, 1, 116, 16, 10, 58, 0, 1, 36, 247}},
		{"channel Amp1 C", must(SetBlockChannel(ModelIII, EffectAmp1, 2)),
			[]byte{240, 0, 1, 116, 16, 11, 58, 0, 2, 38, 247}},
		{"get bypass Amp1", must(GetBlockBypass(ModelIII, EffectAmp1)),
			[]byte{240, 0, 1, 116, 16, 10, 58, 0, 127, 90, 247}},
		{"get channel Cab1", must(GetBlockChannel(ModelIII, EffectCab1)),
			[]byte{240, 0, 1, 116, 16, 11, 62, 0, 127, 95, 247}},
	}
	for _, c := range cases {
		if !bytes.Equal(c.got, c.want) {
			t.Errorf("%s: expected % X, got % X", c.name, c.want, c.got)
		}
	}
}

func TestControlChangeToggles(t *testing.T) {
	must := frameOK(t)

	cases := []struct {
		name string
		got  []byte
		want []byte
	}{
		{"tuner off ch1", must(ToggleTuner(1, false)), []byte{176, 15, 0}},
		{"tuner off ch2", must(ToggleTuner(2, false)), []byte{177, 15, 0}},
		{"tuner on ch1", must(ToggleTuner(1, true)), []byte{176, 15, 127}},
		{"metronome off ch1", must(ToggleMetronome(1, false)), []byte{176, 122, 0}},
		{"metronome off ch2", must(ToggleMetronome(2, false)), []byte{177, 122, 0}},
		{"metronome on ch1", must(ToggleMetronome(1, true)), []byte{176, 122, 127}},
		{"metronome on ch16", must(ToggleMetronome(16, true)), []byte{191, 122, 127}},
	}
	for _, c := range cases {
		if !bytes.Equal(c.got, c.want) {
			t.Errorf("%s: expected % X, got % X", c.name, c.want, c.got)
		}
	}

	for _, ch := range []uint8{0, 17} {
		if _, err := ToggleTuner(ch, true); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("channel %d: expected ErrOutOfRange, got %v", ch, err)
		}
	}
}

func TestSetCurrentPresetName(t *testing.T) {
	want := []byte{0xF0, 0x00, 0x01, 0x74, 0x03, 0x09,
		0x43, 0x68, 0x61, 0x6E, 0x67, 0x65, 0x64, 0x21}
	want = append(want, bytes.Repeat([]byte{0x20}, 24)...)
	want = append(want, 0x6C, 0xF7)

	if got := SetCurrentPresetName(ModelII, "Changed!"); !bytes.Equal(got, want) {
		t.Fatalf("expected % X, got % X", want, got)
	}

	plain := SetCurrentPresetName(ModelII, "O Praise The Name (Anstasis)")
	accented := SetCurrentPresetName(ModelII, "O Praise The Name (Anástasis)")
	if !bytes.Equal(plain, accented) {
		t.Errorf("non-ASCII characters were not dropped:\n% X\n% X", plain, accented)
	}

	for _, name := range []string{"", "x", "exactly thirty-two characters!!!", "a name that is far longer than the thirty-two byte window"} {
		frame := SetCurrentPresetName(ModelII, name)
		if n := len(frame) - len(Header) - 4; n != presetNameLen {
			t.Errorf("%q: name payload is %d bytes, want %d", name, n, presetNameLen)
		}
	}
}

func TestSetPresetNameTemplate(t *testing.T) {
	must := frameOK(t)

	prefix := []byte{0xF0, 0x00, 0x01, 0x74, 0x10, 0x01, 0x28, 0x00, 0x00, 0x00, 0x00, 0x00}
	tail := []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x20, 0x00, 0x30, 0x48, 0x04, 0x02, 0x01, 0x00, 0x40,
		0x20, 0x10, 0x08, 0x04, 0x02, 0x01, 0x00, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01,
		0x00, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01, 0x00, 0x40, 0x20, 0x10, 0x08, 0x04,
		0x02, 0x00,
	}
	cases := []struct {
		preset uint32
		lo, hi byte
		chk    byte
	}{
		{389, 0x05, 0x03, 0x64},
		{390, 0x06, 0x03, 0x67},
	}
	for _, c := range cases {
		want := append(append([]byte(nil), prefix...), c.lo, c.hi)
		want = append(want, tail...)
		want = append(want, c.chk, 0xF7)

		got := must(SetPresetName(ModelIII, c.preset, "a"))
		if !bytes.Equal(got, want) {
			t.Errorf("preset %d: expected % X, got % X", c.preset, want, got)
		}
	}

	got := must(SetPresetName(ModelII, 12, "Lead"))
	if !bytes.Equal(got, SetCurrentPresetName(ModelII, "Lead")) {
		t.Errorf("II rename should fall back to renaming the current preset, got % X", got)
	}
}

func TestSetPresetNameCarriesName(t *testing.T) {
	must := frameOK(t)

	// header, model, opcode, 0x28 and five zeros, the preset number, then
	// the fixed rename header
	const nameAt = 6 + 6 + 2 + 7

	lead := must(SetPresetName(ModelIII, 12, "Lead"))
	clean := must(SetPresetName(ModelIII, 12, "Clean"))
	if bytes.Equal(lead, clean) {
		t.Fatalf("different names produced the same frame % X", lead)
	}

	for name, frame := range map[string][]byte{"Lead": lead, "Clean": clean} {
		if len(frame) != nameAt+PackedNameLen(presetNameLen)+2 {
			t.Fatalf("%s: unexpected frame length %d", name, len(frame))
		}
		packed := frame[nameAt : nameAt+PackedNameLen(presetNameLen)]
		if got := strings.TrimRight(DecodePresetNameIII(packed, presetNameLen), " "); got != name {
			t.Errorf("expected name %q in frame, decoded %q", name, got)
		}
	}
}

func TestCommandArgumentErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"scene 0", second(SetSceneNumber(ModelII, 0)), ErrOutOfRange},
		{"scene 9", second(SetSceneNumber(ModelIII, 9)), ErrOutOfRange},
		{"preset too large", second(SetPresetNumber(ModelII, 1<<14)), ErrOutOfRange},
		{"tempo too large", second(SetTempo(ModelIII, 1<<14)), ErrOutOfRange},
		{"block channel E", second(SetBlockChannel(ModelIII, EffectAmp1, 4)), ErrOutOfRange},
		{"shunt on III", second(GetBlockParameters(ModelIII, EffectShunt)), ErrNoWireID},
		{"tuner block on II", second(GetBlockParameters(ModelII, EffectTuner)), ErrNoWireID},
		{"status dump on II", second(GetStatusDump(ModelII)), ErrUnsupported},
		{"looper on AX8", second(GetLooperStatus(ModelAX8)), ErrUnsupported},
		{"bypass on II", second(SetBlockBypass(ModelII, EffectAmp1, true)), ErrUnsupported},
		{"tempo query on II", second(GetTempo(ModelII)), ErrUnsupported},
	}
	for _, c := range cases {
		if !errors.Is(c.err, c.want) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, c.err)
		}
	}
}

func second(_ []byte, err error) error { return err }
