package fractal

// Message is one decoded inbound frame. The concrete type identifies the
// event; Kind returns a stable name for logs and JSON envelopes.
type Message interface {
	Kind() string
	isMessage()
}

// XYState is the X/Y setting of a block.
type XYState int

const (
	XYStateX XYState = iota
	XYStateY
)

func (s XYState) String() string {
	if s == XYStateY {
		return "Y"
	}
	return "X"
}

func (s XYState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// BlockFlags is one record of a block flags response.
type BlockFlags struct {
	Bypassed bool    `json:"bypassed"`
	XY       XYState `json:"xy"`
	CC       uint8   `json:"cc"`
	EffectID uint32  `json:"effect_id"`
	Effect   Effect  `json:"effect"`
}

// GridBlock is one cell of the routing grid. The zero value is an empty
// cell.
type GridBlock struct {
	EffectID   uint32  `json:"effect_id,omitempty"`
	Effect     Effect  `json:"effect,omitempty"`
	ConnectRow [4]bool `json:"connect_row"`
}

// Empty reports whether the cell holds no block.
func (b GridBlock) Empty() bool { return b.EffectID == 0 }

const (
	GridRows = 16
	GridCols = 4

	// populatedRows is the number of grid rows the hardware reports; the
	// remaining rows are always empty.
	populatedRows = 12
)

// Grid is the routing grid, indexed [row][column].
type Grid [GridRows][GridCols]GridBlock

// BlockStatus is one record of a III status dump.
type BlockStatus struct {
	EffectID uint32 `json:"effect_id"`
	Effect   Effect `json:"effect"`
	Bypassed bool   `json:"bypassed"`
	// Channel is 0..3 for A..D.
	Channel  uint8 `json:"channel"`
	Channels uint8 `json:"channels"`
}

// ChannelName returns "A" to "D".
func (s BlockStatus) ChannelName() string { return channelName(s.Channel) }

func channelName(ch uint8) string {
	if ch > 'Z'-'A' {
		return "?"
	}
	return string(rune('A' + ch))
}

type (
	// Unknown carries any frame the parser does not recognize.
	Unknown struct {
		Raw []byte `json:"raw"`
	}

	CurrentPresetNumber struct {
		Number uint32 `json:"number"`
	}

	// PresetName is the III reply to a preset name query, carrying the
	// preset index.
	PresetName struct {
		Number uint32 `json:"number"`
		Name   string `json:"name"`
	}

	CurrentPresetName struct {
		Name string `json:"name"`
	}

	// CurrentSceneNumber is 1-based.
	CurrentSceneNumber struct {
		Scene uint8 `json:"scene"`
	}

	// SceneName is 1-based.
	SceneName struct {
		Scene uint8  `json:"scene"`
		Name  string `json:"name"`
	}

	CurrentTempo struct {
		BPM uint32 `json:"bpm"`
	}

	FirmwareVersion struct {
		Major uint8 `json:"major"`
		Minor uint8 `json:"minor"`
	}

	FrontPanelChangeDetected struct{}

	MIDITempoBeat struct{}

	// MIDIChannel is 1-based.
	MIDIChannel struct {
		Channel uint8 `json:"channel"`
	}

	TunerInfo struct {
		Note         uint8 `json:"note"`
		StringNumber uint8 `json:"string_number"`
		TunerData    uint8 `json:"tuner_data"`
	}

	TunerStatus struct {
		On bool `json:"on"`
	}

	PresetBlocksFlags struct {
		Blocks []BlockFlags `json:"blocks"`
	}

	BlockGrid struct {
		Grid Grid `json:"grid"`
	}

	BlockParameters struct {
		EffectID    uint32    `json:"effect_id"`
		Effect      Effect    `json:"effect"`
		ParameterID uint32    `json:"parameter_id"`
		Parameter   Parameter `json:"parameter"`
		ValueRaw    uint32    `json:"value_raw"`
	}

	StatusDump struct {
		Blocks []BlockStatus `json:"blocks"`
	}

	LooperState struct {
		Record    bool `json:"record"`
		Play      bool `json:"play"`
		Overdub   bool `json:"overdub"`
		Once      bool `json:"once"`
		Reverse   bool `json:"reverse"`
		HalfSpeed bool `json:"half_speed"`
	}

	BlockBypass struct {
		EffectID uint32 `json:"effect_id"`
		Effect   Effect `json:"effect"`
		Bypassed bool   `json:"bypassed"`
	}

	BlockChannel struct {
		EffectID uint32 `json:"effect_id"`
		Effect   Effect `json:"effect"`
		Channel  uint8  `json:"channel"`
	}

	MultipurposeResponse struct {
		FunctionID   uint8 `json:"function_id"`
		ResponseCode uint8 `json:"response_code"`
	}
)

func (Unknown) Kind() string                  { return "unknown" }
func (CurrentPresetNumber) Kind() string      { return "current_preset_number" }
func (PresetName) Kind() string               { return "preset_name" }
func (CurrentPresetName) Kind() string        { return "current_preset_name" }
func (CurrentSceneNumber) Kind() string       { return "current_scene_number" }
func (SceneName) Kind() string                { return "scene_name" }
func (CurrentTempo) Kind() string             { return "current_tempo" }
func (FirmwareVersion) Kind() string          { return "firmware_version" }
func (FrontPanelChangeDetected) Kind() string { return "front_panel_change_detected" }
func (MIDITempoBeat) Kind() string            { return "midi_tempo_beat" }
func (MIDIChannel) Kind() string              { return "midi_channel" }
func (TunerInfo) Kind() string                { return "tuner_info" }
func (TunerStatus) Kind() string              { return "tuner_status" }
func (PresetBlocksFlags) Kind() string        { return "preset_blocks_flags" }
func (BlockGrid) Kind() string                { return "block_grid" }
func (BlockParameters) Kind() string          { return "block_parameters" }
func (StatusDump) Kind() string               { return "status_dump" }
func (LooperState) Kind() string              { return "looper_state" }
func (BlockBypass) Kind() string              { return "block_bypass" }
func (BlockChannel) Kind() string             { return "block_channel" }
func (MultipurposeResponse) Kind() string     { return "multipurpose_response" }

func (Unknown) isMessage()                  {}
func (CurrentPresetNumber) isMessage()      {}
func (PresetName) isMessage()               {}
func (CurrentPresetName) isMessage()        {}
func (CurrentSceneNumber) isMessage()       {}
func (SceneName) isMessage()                {}
func (CurrentTempo) isMessage()             {}
func (FirmwareVersion) isMessage()          {}
func (FrontPanelChangeDetected) isMessage() {}
func (MIDITempoBeat) isMessage()            {}
func (MIDIChannel) isMessage()              {}
func (TunerInfo) isMessage()                {}
func (TunerStatus) isMessage()              {}
func (PresetBlocksFlags) isMessage()        {}
func (BlockGrid) isMessage()                {}
func (BlockParameters) isMessage()          {}
func (StatusDump) isMessage()               {}
func (LooperState) isMessage()              {}
func (BlockBypass) isMessage()              {}
func (BlockChannel) isMessage()             {}
func (MultipurposeResponse) isMessage()     {}
