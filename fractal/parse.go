package fractal

const (
	modelOffset  = 4
	opcodeOffset = 5
	dataOffset   = 6
)

type decoder func(d Dialect, frame []byte) (Message, bool)

// rule matches an opcode, optionally restricted to a dialect.
type rule struct {
	dialect *Dialect
	opcode  byte
	decode  decoder
}

var dialectIII = DialectIII

func onIII(opcode byte, dec decoder) rule { return rule{&dialectIII, opcode, dec} }
func onAny(opcode byte, dec decoder) rule { return rule{nil, opcode, dec} }

// rules is evaluated top to bottom. A dialect-specific rule for a reused
// opcode must stay above the generic rule for the same opcode.
var rules = []rule{
	onIII(opPresetNumber, decodeTempo),
	onAny(opPresetNumber, decodePresetNumber),
	onAny(opFrontPanelChange, decodeMarker(FrontPanelChangeDetected{})),
	onAny(opBlockParameters, decodeBlockParameters),
	onAny(opFirmwareVersion, decodeFirmwareVersion),
	onIII(opTunerInfo, decodeIndexedPresetName),
	onIII(opBlocksFlags, decodeSceneName),
	onIII(opPresetName, decodeLooperState),
	onAny(opPresetName, decodeCurrentPresetName),
	onAny(opTempoBeat, decodeMarker(MIDITempoBeat{})),
	onAny(opTunerToggle, decodeTunerStatus),
	onAny(opMIDIChannel, decodeMIDIChannel),
	onAny(opTunerInfo, decodeTunerInfo),
	onIII(opStatusDump, decodeStatusDump),
	onIII(opBlockBypass, decodeBlockBypass),
	onIII(opBlockChannel, decodeBlockChannel),
	onAny(opBlocksFlags, decodeBlocksFlags),
	onAny(opGridLayout, decodeBlockGrid),
	onAny(opScene, decodeScene),
	onIII(opSceneIII, decodeSceneIII),
	onAny(opMultipurpose, decodeMultipurpose),
}

// Parse decodes one complete frame. It never fails: frames that are not
// Fractal SysEx, carry an unknown model or opcode, or are too short for
// their opcode decode to Unknown.
//
// Decoders read fields from the bytes past the opcode, and the checksum is
// the last of those. A frame cut short by one byte therefore decodes its
// checksum as the final field.
func Parse(frame []byte) Message {
	if !IsFractalSysEx(frame) || len(frame) <= opcodeOffset+1 {
		return unknown(frame)
	}
	model, ok := ModelForCode(frame[modelOffset])
	if !ok {
		return unknown(frame)
	}
	d := model.Dialect()
	op := frame[opcodeOffset]

	for _, r := range rules {
		if r.opcode != op || (r.dialect != nil && *r.dialect != d) {
			continue
		}
		if msg, ok := r.decode(d, frame); ok {
			return msg
		}
		break
	}
	return unknown(frame)
}

func unknown(frame []byte) Message {
	return Unknown{Raw: append([]byte(nil), frame...)}
}

// body is the frame past the opcode with the terminator removed. The
// checksum, when present, is its last byte.
func body(frame []byte) []byte {
	return frame[dataOffset : len(frame)-1]
}

// data returns n bytes starting at the first data byte, or false when the
// frame is too short. The checksum counts toward n.
func data(frame []byte, n int) ([]byte, bool) {
	b := body(frame)
	if len(b) < n {
		return nil, false
	}
	return b[:n], true
}

// windows splits b into consecutive size-byte records. A trailing partial
// record is dropped.
func windows(b []byte, size int) [][]byte {
	out := make([][]byte, 0, len(b)/size)
	for i := 0; i+size <= len(b); i += size {
		out = append(out, b[i:i+size])
	}
	return out
}

func decodeMarker(m Message) decoder {
	return func(Dialect, []byte) (Message, bool) { return m, true }
}

func decodeTempo(_ Dialect, frame []byte) (Message, bool) {
	b, ok := data(frame, 2)
	if !ok {
		return nil, false
	}
	return CurrentTempo{BPM: Decode7x2(b[0], b[1])}, true
}

func decodePresetNumber(_ Dialect, frame []byte) (Message, bool) {
	b, ok := data(frame, 2)
	if !ok {
		return nil, false
	}
	return CurrentPresetNumber{Number: DecodePresetNumber(b[0], b[1])}, true
}

func decodeFirmwareVersion(_ Dialect, frame []byte) (Message, bool) {
	b, ok := data(frame, 2)
	if !ok {
		return nil, false
	}
	return FirmwareVersion{Major: b[0], Minor: b[1]}, true
}

func decodeIndexedPresetName(_ Dialect, frame []byte) (Message, bool) {
	b := body(frame)
	if len(b) < 2 {
		return nil, false
	}
	return PresetName{
		Number: Decode7x2(b[0], b[1]),
		Name:   decodePresetName(b[2:]),
	}, true
}

func decodeCurrentPresetName(_ Dialect, frame []byte) (Message, bool) {
	return CurrentPresetName{Name: decodePresetName(body(frame))}, true
}

func decodeSceneName(_ Dialect, frame []byte) (Message, bool) {
	b := body(frame)
	if len(b) < 1 {
		return nil, false
	}
	return SceneName{Scene: b[0] + 1, Name: decodePresetName(b[1:])}, true
}

func decodeLooperState(_ Dialect, frame []byte) (Message, bool) {
	b, ok := data(frame, 1)
	if !ok {
		return nil, false
	}
	bits := b[0]
	return LooperState{
		Record:    bits&0x01 != 0,
		Play:      bits&0x02 != 0,
		Overdub:   bits&0x04 != 0,
		Once:      bits&0x08 != 0,
		Reverse:   bits&0x10 != 0,
		HalfSpeed: bits&0x20 != 0,
	}, true
}

func decodeTunerStatus(_ Dialect, frame []byte) (Message, bool) {
	b, ok := data(frame, 1)
	if !ok {
		return nil, false
	}
	return TunerStatus{On: b[0] != 0}, true
}

func decodeMIDIChannel(_ Dialect, frame []byte) (Message, bool) {
	b, ok := data(frame, 1)
	if !ok {
		return nil, false
	}
	return MIDIChannel{Channel: b[0] + 1}, true
}

func decodeTunerInfo(_ Dialect, frame []byte) (Message, bool) {
	b, ok := data(frame, 3)
	if !ok {
		return nil, false
	}
	return TunerInfo{Note: b[0], StringNumber: b[1], TunerData: b[2]}, true
}

func decodeScene(_ Dialect, frame []byte) (Message, bool) {
	b, ok := data(frame, 1)
	if !ok {
		return nil, false
	}
	return CurrentSceneNumber{Scene: b[0] + 1}, true
}

func decodeSceneIII(_ Dialect, frame []byte) (Message, bool) {
	b, ok := data(frame, 1)
	if !ok {
		return nil, false
	}
	return CurrentSceneNumber{Scene: b[0]}, true
}

func decodeMultipurpose(_ Dialect, frame []byte) (Message, bool) {
	b, ok := data(frame, 2)
	if !ok {
		return nil, false
	}
	return MultipurposeResponse{FunctionID: b[0], ResponseCode: b[1]}, true
}

func decodeBlockParameters(d Dialect, frame []byte) (Message, bool) {
	b, ok := data(frame, 7)
	if !ok {
		return nil, false
	}
	effectID := Decode7x2(b[0], b[1])
	parameterID := Decode7x2(b[2], b[3])
	return BlockParameters{
		EffectID:    effectID,
		Effect:      EffectForID(d, effectID),
		ParameterID: parameterID,
		Parameter:   ParameterForID(parameterID),
		ValueRaw:    decode7x3(b[4], b[5], b[6]),
	}, true
}

func decodeBlockBypass(d Dialect, frame []byte) (Message, bool) {
	b, ok := data(frame, 3)
	if !ok {
		return nil, false
	}
	id := Decode7x2(b[0], b[1])
	return BlockBypass{EffectID: id, Effect: EffectForID(d, id), Bypassed: b[2] == 1}, true
}

func decodeBlockChannel(d Dialect, frame []byte) (Message, bool) {
	b, ok := data(frame, 3)
	if !ok {
		return nil, false
	}
	id := Decode7x2(b[0], b[1])
	return BlockChannel{EffectID: id, Effect: EffectForID(d, id), Channel: b[2]}, true
}

// flagsEffectID reads the block id from the last two bytes of a block flags
// record. The layout differs from Decode7x2.
func flagsEffectID(a, b byte) uint32 {
	return uint32(a&0x78)>>3 + uint32(b&0x0F)<<4
}

func decodeBlocksFlags(d Dialect, frame []byte) (Message, bool) {
	records := windows(body(frame), 5)
	blocks := make([]BlockFlags, 0, len(records))
	for _, r := range records {
		id := flagsEffectID(r[3], r[4])
		xy := XYStateY
		if r[0] == 2 || r[0] == 3 {
			xy = XYStateX
		}
		blocks = append(blocks, BlockFlags{
			Bypassed: !(r[0] == 1 || r[0] == 3),
			XY:       xy,
			CC:       (r[1]&0x7E)>>1 + (r[2]&0x03)<<6,
			EffectID: id,
			Effect:   EffectForID(d, id),
		})
	}
	return PresetBlocksFlags{Blocks: blocks}, true
}

func decodeBlockGrid(d Dialect, frame []byte) (Message, bool) {
	cells := windows(body(frame), 4)
	if len(cells) < populatedRows*GridCols {
		return nil, false
	}

	var g Grid
	for i, c := range cells[:populatedRows*GridCols] {
		id := Decode7x2(c[0], c[1])
		if id == 0 {
			continue
		}
		cell := GridBlock{EffectID: id, Effect: EffectForID(d, id)}
		for k := range cell.ConnectRow {
			cell.ConnectRow[k] = c[2]&(1<<k) != 0
		}
		g[i/GridCols][i%GridCols] = cell
	}
	return BlockGrid{Grid: g}, true
}

func decodeStatusDump(d Dialect, frame []byte) (Message, bool) {
	records := windows(body(frame), 3)
	blocks := make([]BlockStatus, 0, len(records))
	for _, r := range records {
		id := Decode7x2(r[0], r[1])
		blocks = append(blocks, BlockStatus{
			EffectID: id,
			Effect:   EffectForID(d, id),
			Bypassed: r[2]&0x01 != 0,
			Channel:  (r[2] >> 1) & 0x07,
			Channels: (r[2] >> 4) & 0x07,
		})
	}
	return StatusDump{Blocks: blocks}, true
}
