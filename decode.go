package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"fractalmcp/fractal"
)

// parseFrameText reads a frame written as hex bytes. Tokens may be separated
// by spaces, commas or colons and may carry a 0x prefix; a single token of
// even length is read as packed hex.
func parseFrameText(text string) ([]byte, error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ':' || r == '[' || r == ']'
	})
	if len(tokens) == 0 {
		return nil, errors.New("no bytes provided")
	}

	var frame []byte
	for _, tok := range tokens {
		t := strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "0X")

		if len(t) == 1 {
			t = "0" + t
		}
		b, err := hex.DecodeString(t)
		if err != nil {
			return nil, fmt.Errorf("invalid byte %q: %w", tok, err)
		}
		frame = append(frame, b...)
	}
	return frame, nil
}

type decoded struct {
	Kind    string          `json:"kind"`
	Message fractal.Message `json:"message"`
	// Checksum is only reported for Fractal frames.
	Checksum string `json:"checksum,omitempty"`
}

// describe renders a parsed frame as indented JSON.
func describe(frame []byte) (string, error) {
	msg := fractal.Parse(frame)
	d := decoded{Kind: msg.Kind(), Message: msg}
	if fractal.IsFractalSysEx(frame) && len(frame) > 2 {
		if fractal.ValidChecksum(frame) {
			d.Checksum = "ok"
		} else {
			d.Checksum = "mismatch"
		}
	}

	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", msg.Kind(), err)
	}
	return string(out), nil
}
