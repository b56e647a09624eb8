package fractal

// Opcodes (function ids) at offset 5 of a frame. Several are reused with a
// different meaning by the III dialect.
const (
	opBlockParameters  = 0x01 // III: multipurpose set/get, see StoreInPreset
	opFirmwareVersion  = 0x08
	opSetPresetName    = 0x09
	opBlockBypass      = 0x0A // III only
	opBlockChannel     = 0x0B // III only
	opSceneIII         = 0x0C // III only
	opTunerInfo        = 0x0D // III: preset name
	opBlocksFlags      = 0x0E // III: scene name
	opPresetName       = 0x0F // III: looper status
	opTempoBeat        = 0x10 // III: tap tempo when sent
	opTunerToggle      = 0x11
	opStatusDump       = 0x13 // III only
	opPresetNumber     = 0x14 // III: tempo
	opMIDIChannel      = 0x17
	opStorePreset      = 0x1D
	opGridLayout       = 0x20
	opFrontPanelChange = 0x21
	opScene            = 0x29
	opSetPresetNumber  = 0x3C
	opDisconnect       = 0x42
	opMultipurpose     = 0x64
)

// query is the data byte that turns a set command into a get.
const query = 0x7F

// Control Change numbers used by the channel-lane toggles.
const (
	ccTuner     = 15
	ccMetronome = 122
)
