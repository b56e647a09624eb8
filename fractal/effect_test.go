package fractal

import (
	"encoding/json"
	"testing"
)

func TestEffectTableDuality(t *testing.T) {
	for _, d := range []Dialect{DialectII, DialectIII} {
		ids := EffectIDs(d)
		if len(ids) == 0 {
			t.Fatalf("dialect %s: empty table", d)
		}
		for _, id := range ids {
			e := EffectForID(d, id)
			if e == EffectUnknown {
				t.Errorf("dialect %s: id %d resolves to Unknown", d, id)
				continue
			}
			back, ok := IDForEffect(d, e)
			if !ok || back != id {
				t.Errorf("dialect %s: IDForEffect(EffectForID(%d)) = %d, %v", d, id, back, ok)
			}
		}
		for e := EffectUnknown; e < numEffects; e++ {
			id, ok := IDForEffect(d, e)
			if !ok {
				continue
			}
			if got := EffectForID(d, id); got != e {
				t.Errorf("dialect %s: EffectForID(IDForEffect(%s)) = %s", d, e, got)
			}
		}
	}
}

func TestEffectIDsII(t *testing.T) {
	cases := map[uint32]Effect{
		2:   EffectControl,
		100: EffectCompressor1,
		106: EffectAmp1,
		127: EffectVolumePan1,
		128: EffectTremoloPanner1,
		153: EffectPitch2,
		169: EffectLooper1,
		207: EffectShunt,
	}
	for id, want := range cases {
		if got := EffectForID(DialectII, id); got != want {
			t.Errorf("II id %d: expected %s, got %s", id, want, got)
		}
	}
	if got := EffectForID(DialectII, 152); got != EffectUnknown {
		t.Errorf("II id 152: expected Unknown, got %s", got)
	}
}

func TestEffectIDsIII(t *testing.T) {
	cases := map[uint32]Effect{
		35:  EffectTuner,
		36:  EffectIRCapture,
		37:  EffectInput1,
		46:  EffectCompressor1,
		58:  EffectAmp1,
		61:  EffectAmp4,
		66:  EffectReverb1,
		199: EffectFootController,
	}
	for id, want := range cases {
		if got := EffectForID(DialectIII, id); got != want {
			t.Errorf("III id %d: expected %s, got %s", id, want, got)
		}
	}
	if got := EffectForID(DialectIII, 106); got != EffectTremoloPanner1 {
		t.Errorf("III id 106: expected TremoloPanner1, got %s", got)
	}
}

func TestIDForEffectMissing(t *testing.T) {
	if id, ok := IDForEffect(DialectIII, EffectShunt); ok {
		t.Errorf("Shunt has no III id, got %d", id)
	}
	if id, ok := IDForEffect(DialectII, EffectUnknown); ok {
		t.Errorf("Unknown has no id, got %d", id)
	}
}

func TestParseEffect(t *testing.T) {
	e, err := ParseEffect("  amp1 ")
	if err != nil || e != EffectAmp1 {
		t.Fatalf("ParseEffect(amp1): %v, %v", e, err)
	}
	if _, err := ParseEffect("theremin"); err == nil {
		t.Fatal("expected error for unknown effect")
	}

	asJSON, err := json.Marshal(struct {
		E Effect `json:"e"`
	}{EffectMultiDelay2})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(asJSON) != `{"e":"MultiDelay2"}` {
		t.Errorf("unexpected JSON %s", asJSON)
	}

	var back struct {
		E Effect `json:"e"`
	}
	if err := json.Unmarshal(asJSON, &back); err != nil || back.E != EffectMultiDelay2 {
		t.Errorf("unmarshal: %v, %v", back.E, err)
	}
}

func TestParameterForID(t *testing.T) {
	want := []Parameter{
		ParameterEffectType, ParameterInputDrive, ParameterBass, ParameterMiddle,
		ParameterTreble, ParameterMasterVolume, ParameterPreampLowCut, ParameterHighCutFrequency,
	}
	for id, p := range want {
		if got := ParameterForID(uint32(id)); got != p {
			t.Errorf("id %d: expected %s, got %s", id, p, got)
		}
	}
	if got := ParameterForID(8); got != ParameterUnknown {
		t.Errorf("id 8: expected Unknown, got %s", got)
	}
}
