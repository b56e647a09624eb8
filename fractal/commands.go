package fractal

import (
	"errors"
	"fmt"

	"gitlab.com/gomidi/midi/v2"
)

var (
	// ErrOutOfRange is returned when an argument cannot be represented on
	// the wire.
	ErrOutOfRange = errors.New("value out of range")
	// ErrNoWireID is returned when an effect has no id in the model's
	// dialect.
	ErrNoWireID = errors.New("effect has no id in this dialect")
	// ErrUnsupported is returned for commands the model's dialect lacks.
	ErrUnsupported = errors.New("command not supported by model")
)

func onOff(on bool, yes, no byte) byte {
	if on {
		return yes
	}
	return no
}

func checkChannel(channel uint8) error {
	if channel < 1 || channel > 16 {
		return fmt.Errorf("MIDI channel %d: %w (want 1-16)", channel, ErrOutOfRange)
	}
	return nil
}

func check14(what string, v uint32) error {
	if v > max14 {
		return fmt.Errorf("%s %d: %w (max %d)", what, v, ErrOutOfRange, max14)
	}
	return nil
}

func requireIII(m Model, what string) error {
	if m.Dialect() != DialectIII {
		return fmt.Errorf("%s on %s: %w", what, m, ErrUnsupported)
	}
	return nil
}

func wireID(m Model, e Effect) (lo, hi byte, err error) {
	id, ok := IDForEffect(m.Dialect(), e)
	if !ok {
		return 0, 0, fmt.Errorf("%s on %s: %w", e, m, ErrNoWireID)
	}
	lo, hi = Encode7x2(id)
	return lo, hi, nil
}

// GetPresetNumber queries the active preset number.
func GetPresetNumber(m Model) []byte {
	return Wrap(m.Code(), opPresetNumber)
}

// SetPresetNumber selects preset n.
func SetPresetNumber(m Model, n uint32) ([]byte, error) {
	if err := check14("preset", n); err != nil {
		return nil, err
	}
	hi, lo := EncodePresetNumber(n)
	return Wrap(m.Code(), opSetPresetNumber, hi, lo), nil
}

// GetCurrentPresetName queries the name of the active preset.
func GetCurrentPresetName(m Model) []byte {
	if m.Dialect() == DialectIII {
		return Wrap(m.Code(), opTunerInfo, query, query)
	}
	return Wrap(m.Code(), opPresetName)
}

// GetPresetName queries the name of preset n. III only.
func GetPresetName(m Model, n uint32) ([]byte, error) {
	if err := requireIII(m, "preset name query"); err != nil {
		return nil, err
	}
	if err := check14("preset", n); err != nil {
		return nil, err
	}
	lo, hi := Encode7x2(n)
	return Wrap(m.Code(), opTunerInfo, lo, hi), nil
}

// SetCurrentPresetName renames the active preset. Non-ASCII characters are
// dropped before padding, names longer than 32 characters are truncated.
func SetCurrentPresetName(m Model, name string) []byte {
	payload := append([]byte{m.Code(), opSetPresetName}, padPresetName(name)...)
	return Wrap(payload...)
}

func GetFirmwareVersion(m Model) []byte {
	return Wrap(m.Code(), opFirmwareVersion)
}

func DisconnectFromController(m Model) []byte {
	return Wrap(m.Code(), opDisconnect)
}

func GetMIDIChannel(m Model) []byte {
	return Wrap(m.Code(), opMIDIChannel)
}

// ToggleTuner switches the tuner through a Control Change on the given
// 1-based MIDI channel. The result is not SysEx.
func ToggleTuner(channel uint8, on bool) ([]byte, error) {
	if err := checkChannel(channel); err != nil {
		return nil, err
	}
	return midi.ControlChange(channel-1, ccTuner, onOff(on, 127, 0)).Bytes(), nil
}

// ToggleTunerSysEx switches the tuner with a SysEx command.
func ToggleTunerSysEx(m Model, on bool) []byte {
	return Wrap(m.Code(), opTunerToggle, onOff(on, 1, 0))
}

// ToggleMetronome switches the metronome through a Control Change on the
// given 1-based MIDI channel.
func ToggleMetronome(channel uint8, on bool) ([]byte, error) {
	if err := checkChannel(channel); err != nil {
		return nil, err
	}
	return midi.ControlChange(channel-1, ccMetronome, onOff(on, 127, 0)).Bytes(), nil
}

func GetPresetBlocksFlags(m Model) []byte {
	return Wrap(m.Code(), opBlocksFlags)
}

// SetSceneNumber selects scene 1..8.
func SetSceneNumber(m Model, scene uint8) ([]byte, error) {
	if scene < 1 || scene > 8 {
		return nil, fmt.Errorf("scene %d: %w (want 1-8)", scene, ErrOutOfRange)
	}
	if m.Dialect() == DialectIII {
		return Wrap(m.Code(), opSceneIII, scene), nil
	}
	return Wrap(m.Code(), opScene, scene-1), nil
}

// GetSceneNumber queries the active scene.
func GetSceneNumber(m Model) []byte {
	if m.Dialect() == DialectIII {
		return Wrap(m.Code(), opSceneIII, query)
	}
	return Wrap(m.Code(), opScene, query)
}

func GetGridLayoutAndRouting(m Model) []byte {
	return Wrap(m.Code(), opGridLayout)
}

// GetBlockParameters queries the parameters of effect in the active preset.
func GetBlockParameters(m Model, effect Effect) ([]byte, error) {
	lo, hi, err := wireID(m, effect)
	if err != nil {
		return nil, err
	}
	return Wrap(m.Code(), opBlockParameters, lo, hi), nil
}

// StoreInPreset saves the edit buffer into preset n.
func StoreInPreset(m Model, n uint32) ([]byte, error) {
	if err := check14("preset", n); err != nil {
		return nil, err
	}
	if m.Dialect() == DialectIII {
		lo, hi := Encode7x2(n)
		return Wrap(m.Code(), opBlockParameters, 0x26,
			0x00, 0x00, 0x00, 0x00, 0x00,
			lo, hi,
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		), nil
	}
	hi, lo := EncodePresetNumber(n)
	return Wrap(m.Code(), opStorePreset, hi, lo), nil
}

// SetTempo sets the tempo in BPM. The value goes out least significant byte
// first, the reverse of preset numbers.
func SetTempo(m Model, bpm uint32) ([]byte, error) {
	if err := check14("tempo", bpm); err != nil {
		return nil, err
	}
	lo, hi := Encode7x2(bpm)
	return Wrap(m.Code(), opPresetNumber, lo, hi), nil
}

// GetTempo queries the tempo. III only.
func GetTempo(m Model) ([]byte, error) {
	if err := requireIII(m, "tempo query"); err != nil {
		return nil, err
	}
	return Wrap(m.Code(), opPresetNumber, query, query), nil
}

// TapTempo sends one tempo tap.
func TapTempo(m Model) []byte {
	return Wrap(m.Code(), opTempoBeat)
}

// renameHeader precedes the packed name in the III rename command, as
// captured from the editor. It is sent verbatim.
var renameHeader = []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x20, 0x00}

// SetPresetName renames preset n. On the III the name is padded to 32
// characters and bit-packed with EncodePresetNameIII. The II dialect can only
// rename the active preset, so n is ignored there.
func SetPresetName(m Model, n uint32, name string) ([]byte, error) {
	if m.Dialect() != DialectIII {
		return SetCurrentPresetName(m, name), nil
	}
	if err := check14("preset", n); err != nil {
		return nil, err
	}
	lo, hi := Encode7x2(n)
	payload := []byte{m.Code(), opBlockParameters, 0x28, 0x00, 0x00, 0x00, 0x00, 0x00, lo, hi}
	payload = append(payload, renameHeader...)
	payload = append(payload, EncodePresetNameIII(string(padPresetName(name)))...)
	return Wrap(payload...), nil
}

// GetSceneName queries the name of scene 1..8, or of the active scene when
// scene is 0. III only.
func GetSceneName(m Model, scene uint8) ([]byte, error) {
	if err := requireIII(m, "scene name query"); err != nil {
		return nil, err
	}
	if scene > 8 {
		return nil, fmt.Errorf("scene %d: %w (want 0-8)", scene, ErrOutOfRange)
	}
	arg := byte(query)
	if scene > 0 {
		arg = scene - 1
	}
	return Wrap(m.Code(), opBlocksFlags, arg), nil
}

// GetLooperStatus queries the looper. III only.
func GetLooperStatus(m Model) ([]byte, error) {
	if err := requireIII(m, "looper status"); err != nil {
		return nil, err
	}
	return Wrap(m.Code(), opPresetName), nil
}

// GetStatusDump queries bypass and channel state of every block. III only.
func GetStatusDump(m Model) ([]byte, error) {
	if err := requireIII(m, "status dump"); err != nil {
		return nil, err
	}
	return Wrap(m.Code(), opStatusDump), nil
}

// SetBlockBypass engages or bypasses effect. III only.
func SetBlockBypass(m Model, effect Effect, bypassed bool) ([]byte, error) {
	return blockCommand(m, opBlockBypass, "block bypass", effect, onOff(bypassed, 1, 0))
}

func GetBlockBypass(m Model, effect Effect) ([]byte, error) {
	return blockCommand(m, opBlockBypass, "block bypass", effect, query)
}

// SetBlockChannel switches effect to channel 0..3 (A..D). III only.
func SetBlockChannel(m Model, effect Effect, channel uint8) ([]byte, error) {
	if channel > 3 {
		return nil, fmt.Errorf("channel %d: %w (want 0-3)", channel, ErrOutOfRange)
	}
	return blockCommand(m, opBlockChannel, "block channel", effect, channel)
}

func GetBlockChannel(m Model, effect Effect) ([]byte, error) {
	return blockCommand(m, opBlockChannel, "block channel", effect, query)
}

func blockCommand(m Model, op byte, what string, effect Effect, arg byte) ([]byte, error) {
	if err := requireIII(m, what); err != nil {
		return nil, err
	}
	lo, hi, err := wireID(m, effect)
	if err != nil {
		return nil, err
	}
	return Wrap(m.Code(), op, lo, hi, arg), nil
}
