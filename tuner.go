package main

import "fmt"

// Tuner notes start at A.
var tunerNotes = [12]string{"A", "Bb", "B", "C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab"}

// inTune is the tuner data value for a note that is exactly in tune.
const inTune = 63

func noteName(note uint8) string {
	if int(note) >= len(tunerNotes) {
		return fmt.Sprintf("note %d", note)
	}
	return tunerNotes[note]
}

// tunerReading renders one tuner frame as e.g. "E string 6, +3".
func tunerReading(note, stringNumber, data uint8) string {
	offset := int(data) - inTune
	switch {
	case offset == 0:
		return fmt.Sprintf("%s string %d, in tune", noteName(note), stringNumber)
	case offset > 0:
		return fmt.Sprintf("%s string %d, +%d", noteName(note), stringNumber, offset)
	default:
		return fmt.Sprintf("%s string %d, %d", noteName(note), stringNumber, offset)
	}
}
