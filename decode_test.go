package main

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestParseFrameText(t *testing.T) {
	want := []byte{0xF0, 0x00, 0x01, 0x74, 0x03, 0x14, 0x12, 0xF7}
	inputs := []string{
		"F0 00 01 74 03 14 12 F7",
		"f0,00,01,74,03,14,12,f7",
		"0xF0 0x00 0x01 0x74 0x03 0x14 0x12 0xF7",
		"F0:0:1:74:3:14:12:F7",
		"F0000174031412F7",
		"[F0 00 01 74] 03 14 12 F7",
	}
	for _, in := range inputs {
		got, err := parseFrameText(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if !bytes.Equal(got, want) {
			t.Errorf("%q: expected % X, got % X", in, want, got)
		}
	}

	for _, in := range []string{"", "  ", "F0 GG F7", "F0 123 F7"} {
		if _, err := parseFrameText(in); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}

func TestDescribe(t *testing.T) {
	out, err := describeText("F0 00 01 74 03 14 01 6C 79 F7")
	if err != nil {
		t.Fatal(err)
	}

	var got struct {
		Kind     string `json:"kind"`
		Checksum string `json:"checksum"`
		Message  struct {
			Number uint32 `json:"number"`
		} `json:"message"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.Kind != "current_preset_number" || got.Message.Number != 236 {
		t.Errorf("unexpected decode %+v", got)
	}
	if got.Checksum != "mismatch" {
		t.Errorf("expected a checksum mismatch, got %q", got.Checksum)
	}

	out, err = describeText("F0 00 01 74 03 14 12 F7")
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if got.Checksum != "ok" {
		t.Errorf("expected a valid checksum, got %q", got.Checksum)
	}

	out, err = describeText("B0 0F 7F")
	if err != nil {
		t.Fatal(err)
	}
	got.Checksum = ""
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if got.Kind != "unknown" || got.Checksum != "" {
		t.Errorf("expected an unknown frame without checksum, got %+v", got)
	}
}

func TestTunerReading(t *testing.T) {
	cases := []struct {
		note, str, data uint8
		want            string
	}{
		{0, 5, 63, "A string 5, in tune"},
		{7, 6, 66, "E string 6, +3"},
		{1, 2, 60, "Bb string 2, -3"},
		{11, 1, 63, "Ab string 1, in tune"},
		{12, 1, 63, "note 12 string 1, in tune"},
	}
	for _, c := range cases {
		if got := tunerReading(c.note, c.str, c.data); got != c.want {
			t.Errorf("expected %q, got %q", c.want, got)
		}
	}
}
