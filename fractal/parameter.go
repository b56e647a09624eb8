package fractal

import "fmt"

// Parameter is a per-block tunable addressed by small integer id.
type Parameter int

const (
	ParameterEffectType Parameter = iota
	ParameterInputDrive
	ParameterBass
	ParameterMiddle
	ParameterTreble
	ParameterMasterVolume
	ParameterPreampLowCut
	ParameterHighCutFrequency
	ParameterUnknown
)

var parameterNames = [...]string{
	ParameterEffectType:       "EffectType",
	ParameterInputDrive:       "InputDrive",
	ParameterBass:             "Bass",
	ParameterMiddle:           "Middle",
	ParameterTreble:           "Treble",
	ParameterMasterVolume:     "MasterVolume",
	ParameterPreampLowCut:     "PreampLowCut",
	ParameterHighCutFrequency: "HighCutFrequency",
	ParameterUnknown:          "Unknown",
}

// ParameterForID maps a wire parameter id. Ids past HighCutFrequency resolve
// to ParameterUnknown.
func ParameterForID(id uint32) Parameter {
	if id < uint32(ParameterUnknown) {
		return Parameter(id)
	}
	return ParameterUnknown
}

func (p Parameter) String() string {
	if p < 0 || int(p) >= len(parameterNames) {
		return fmt.Sprintf("Parameter(%d)", int(p))
	}
	return parameterNames[p]
}

func (p Parameter) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
