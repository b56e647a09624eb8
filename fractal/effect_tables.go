package fractal

// Effect constants. The zero value is EffectUnknown.
const (
	EffectUnknown Effect = iota
	EffectControl
	EffectTuner
	EffectIRCapture
	EffectInput1
	EffectInput2
	EffectInput3
	EffectInput4
	EffectInput5
	EffectOutput1
	EffectOutput2
	EffectOutput3
	EffectOutput4
	EffectCompressor1
	EffectCompressor2
	EffectCompressor3
	EffectCompressor4
	EffectGraphicEQ1
	EffectGraphicEQ2
	EffectGraphicEQ3
	EffectGraphicEQ4
	EffectParametricEQ1
	EffectParametricEQ2
	EffectParametricEQ3
	EffectParametricEQ4
	EffectAmp1
	EffectAmp2
	EffectAmp3
	EffectAmp4
	EffectCab1
	EffectCab2
	EffectCab3
	EffectCab4
	EffectReverb1
	EffectReverb2
	EffectReverb3
	EffectReverb4
	EffectDelay1
	EffectDelay2
	EffectDelay3
	EffectDelay4
	EffectMultiDelay1
	EffectMultiDelay2
	EffectMultiDelay3
	EffectMultiDelay4
	EffectChorus1
	EffectChorus2
	EffectChorus3
	EffectChorus4
	EffectQuadChorus1
	EffectQuadChorus2
	EffectFlanger1
	EffectFlanger2
	EffectFlanger3
	EffectFlanger4
	EffectRotarySpeaker1
	EffectRotarySpeaker2
	EffectRotarySpeaker3
	EffectRotarySpeaker4
	EffectPhaser1
	EffectPhaser2
	EffectPhaser3
	EffectPhaser4
	EffectWah1
	EffectWah2
	EffectWah3
	EffectWah4
	EffectFormant1
	EffectFormant2
	EffectFormant3
	EffectFormant4
	EffectVolumePan1
	EffectVolumePan2
	EffectVolumePan3
	EffectVolumePan4
	EffectTremoloPanner1
	EffectTremoloPanner2
	EffectTremoloPanner3
	EffectTremoloPanner4
	EffectPitch1
	EffectPitch2
	EffectPitch3
	EffectPitch4
	EffectFilter1
	EffectFilter2
	EffectFilter3
	EffectFilter4
	EffectDrive1
	EffectDrive2
	EffectDrive3
	EffectDrive4
	EffectEnhancer1
	EffectEnhancer2
	EffectEnhancer3
	EffectEnhancer4
	EffectMixer1
	EffectMixer2
	EffectMixer3
	EffectMixer4
	EffectSynth1
	EffectSynth2
	EffectSynth3
	EffectSynth4
	EffectVocoder1
	EffectVocoder2
	EffectVocoder3
	EffectVocoder4
	EffectMegatapDelay1
	EffectMegatapDelay2
	EffectMegatapDelay3
	EffectMegatapDelay4
	EffectCrossover1
	EffectCrossover2
	EffectCrossover3
	EffectCrossover4
	EffectGateExpander1
	EffectGateExpander2
	EffectGateExpander3
	EffectGateExpander4
	EffectRingModulator1
	EffectRingModulator2
	EffectRingModulator3
	EffectRingModulator4
	EffectMultibandCompressor1
	EffectMultibandCompressor2
	EffectMultibandCompressor3
	EffectMultibandCompressor4
	EffectTenTapDelay1
	EffectTenTapDelay2
	EffectTenTapDelay3
	EffectTenTapDelay4
	EffectResonator1
	EffectResonator2
	EffectResonator3
	EffectResonator4
	EffectLooper1
	EffectLooper2
	EffectLooper3
	EffectLooper4
	EffectToneMatch1
	EffectToneMatch2
	EffectToneMatch3
	EffectToneMatch4
	EffectRTA1
	EffectRTA2
	EffectRTA3
	EffectRTA4
	EffectPlex1
	EffectPlex2
	EffectPlex3
	EffectPlex4
	EffectFeedbackSend1
	EffectFeedbackSend2
	EffectFeedbackSend3
	EffectFeedbackSend4
	EffectFeedbackReturn1
	EffectFeedbackReturn2
	EffectFeedbackReturn3
	EffectFeedbackReturn4
	EffectMultiplexer1
	EffectMultiplexer2
	EffectMultiplexer3
	EffectMultiplexer4
	EffectIRPlayer1
	EffectIRPlayer2
	EffectIRPlayer3
	EffectIRPlayer4
	EffectMIDIBlock
	EffectFootController
	EffectPresetFC
	EffectFXLoop
	EffectInputNoiseGate
	EffectControllers
	EffectShunt

	numEffects
)

var effectNames = [numEffects]string{
	EffectUnknown:              "Unknown",
	EffectControl:              "Control",
	EffectTuner:                "Tuner",
	EffectIRCapture:            "IRCapture",
	EffectInput1:               "Input1",
	EffectInput2:               "Input2",
	EffectInput3:               "Input3",
	EffectInput4:               "Input4",
	EffectInput5:               "Input5",
	EffectOutput1:              "Output1",
	EffectOutput2:              "Output2",
	EffectOutput3:              "Output3",
	EffectOutput4:              "Output4",
	EffectCompressor1:          "Compressor1",
	EffectCompressor2:          "Compressor2",
	EffectCompressor3:          "Compressor3",
	EffectCompressor4:          "Compressor4",
	EffectGraphicEQ1:           "GraphicEQ1",
	EffectGraphicEQ2:           "GraphicEQ2",
	EffectGraphicEQ3:           "GraphicEQ3",
	EffectGraphicEQ4:           "GraphicEQ4",
	EffectParametricEQ1:        "ParametricEQ1",
	EffectParametricEQ2:        "ParametricEQ2",
	EffectParametricEQ3:        "ParametricEQ3",
	EffectParametricEQ4:        "ParametricEQ4",
	EffectAmp1:                 "Amp1",
	EffectAmp2:                 "Amp2",
	EffectAmp3:                 "Amp3",
	EffectAmp4:                 "Amp4",
	EffectCab1:                 "Cab1",
	EffectCab2:                 "Cab2",
	EffectCab3:                 "Cab3",
	EffectCab4:                 "Cab4",
	EffectReverb1:              "Reverb1",
	EffectReverb2:              "Reverb2",
	EffectReverb3:              "Reverb3",
	EffectReverb4:              "Reverb4",
	EffectDelay1:               "Delay1",
	EffectDelay2:               "Delay2",
	EffectDelay3:               "Delay3",
	EffectDelay4:               "Delay4",
	EffectMultiDelay1:          "MultiDelay1",
	EffectMultiDelay2:          "MultiDelay2",
	EffectMultiDelay3:          "MultiDelay3",
	EffectMultiDelay4:          "MultiDelay4",
	EffectChorus1:              "Chorus1",
	EffectChorus2:              "Chorus2",
	EffectChorus3:              "Chorus3",
	EffectChorus4:              "Chorus4",
	EffectQuadChorus1:          "QuadChorus1",
	EffectQuadChorus2:          "QuadChorus2",
	EffectFlanger1:             "Flanger1",
	EffectFlanger2:             "Flanger2",
	EffectFlanger3:             "Flanger3",
	EffectFlanger4:             "Flanger4",
	EffectRotarySpeaker1:       "RotarySpeaker1",
	EffectRotarySpeaker2:       "RotarySpeaker2",
	EffectRotarySpeaker3:       "RotarySpeaker3",
	EffectRotarySpeaker4:       "RotarySpeaker4",
	EffectPhaser1:              "Phaser1",
	EffectPhaser2:              "Phaser2",
	EffectPhaser3:              "Phaser3",
	EffectPhaser4:              "Phaser4",
	EffectWah1:                 "Wah1",
	EffectWah2:                 "Wah2",
	EffectWah3:                 "Wah3",
	EffectWah4:                 "Wah4",
	EffectFormant1:             "Formant1",
	EffectFormant2:             "Formant2",
	EffectFormant3:             "Formant3",
	EffectFormant4:             "Formant4",
	EffectVolumePan1:           "VolumePan1",
	EffectVolumePan2:           "VolumePan2",
	EffectVolumePan3:           "VolumePan3",
	EffectVolumePan4:           "VolumePan4",
	EffectTremoloPanner1:       "TremoloPanner1",
	EffectTremoloPanner2:       "TremoloPanner2",
	EffectTremoloPanner3:       "TremoloPanner3",
	EffectTremoloPanner4:       "TremoloPanner4",
	EffectPitch1:               "Pitch1",
	EffectPitch2:               "Pitch2",
	EffectPitch3:               "Pitch3",
	EffectPitch4:               "Pitch4",
	EffectFilter1:              "Filter1",
	EffectFilter2:              "Filter2",
	EffectFilter3:              "Filter3",
	EffectFilter4:              "Filter4",
	EffectDrive1:               "Drive1",
	EffectDrive2:               "Drive2",
	EffectDrive3:               "Drive3",
	EffectDrive4:               "Drive4",
	EffectEnhancer1:            "Enhancer1",
	EffectEnhancer2:            "Enhancer2",
	EffectEnhancer3:            "Enhancer3",
	EffectEnhancer4:            "Enhancer4",
	EffectMixer1:               "Mixer1",
	EffectMixer2:               "Mixer2",
	EffectMixer3:               "Mixer3",
	EffectMixer4:               "Mixer4",
	EffectSynth1:               "Synth1",
	EffectSynth2:               "Synth2",
	EffectSynth3:               "Synth3",
	EffectSynth4:               "Synth4",
	EffectVocoder1:             "Vocoder1",
	EffectVocoder2:             "Vocoder2",
	EffectVocoder3:             "Vocoder3",
	EffectVocoder4:             "Vocoder4",
	EffectMegatapDelay1:        "MegatapDelay1",
	EffectMegatapDelay2:        "MegatapDelay2",
	EffectMegatapDelay3:        "MegatapDelay3",
	EffectMegatapDelay4:        "MegatapDelay4",
	EffectCrossover1:           "Crossover1",
	EffectCrossover2:           "Crossover2",
	EffectCrossover3:           "Crossover3",
	EffectCrossover4:           "Crossover4",
	EffectGateExpander1:        "GateExpander1",
	EffectGateExpander2:        "GateExpander2",
	EffectGateExpander3:        "GateExpander3",
	EffectGateExpander4:        "GateExpander4",
	EffectRingModulator1:       "RingModulator1",
	EffectRingModulator2:       "RingModulator2",
	EffectRingModulator3:       "RingModulator3",
	EffectRingModulator4:       "RingModulator4",
	EffectMultibandCompressor1: "MultibandCompressor1",
	EffectMultibandCompressor2: "MultibandCompressor2",
	EffectMultibandCompressor3: "MultibandCompressor3",
	EffectMultibandCompressor4: "MultibandCompressor4",
	EffectTenTapDelay1:         "TenTapDelay1",
	EffectTenTapDelay2:         "TenTapDelay2",
	EffectTenTapDelay3:         "TenTapDelay3",
	EffectTenTapDelay4:         "TenTapDelay4",
	EffectResonator1:           "Resonator1",
	EffectResonator2:           "Resonator2",
	EffectResonator3:           "Resonator3",
	EffectResonator4:           "Resonator4",
	EffectLooper1:              "Looper1",
	EffectLooper2:              "Looper2",
	EffectLooper3:              "Looper3",
	EffectLooper4:              "Looper4",
	EffectToneMatch1:           "ToneMatch1",
	EffectToneMatch2:           "ToneMatch2",
	EffectToneMatch3:           "ToneMatch3",
	EffectToneMatch4:           "ToneMatch4",
	EffectRTA1:                 "RTA1",
	EffectRTA2:                 "RTA2",
	EffectRTA3:                 "RTA3",
	EffectRTA4:                 "RTA4",
	EffectPlex1:                "Plex1",
	EffectPlex2:                "Plex2",
	EffectPlex3:                "Plex3",
	EffectPlex4:                "Plex4",
	EffectFeedbackSend1:        "FeedbackSend1",
	EffectFeedbackSend2:        "FeedbackSend2",
	EffectFeedbackSend3:        "FeedbackSend3",
	EffectFeedbackSend4:        "FeedbackSend4",
	EffectFeedbackReturn1:      "FeedbackReturn1",
	EffectFeedbackReturn2:      "FeedbackReturn2",
	EffectFeedbackReturn3:      "FeedbackReturn3",
	EffectFeedbackReturn4:      "FeedbackReturn4",
	EffectMultiplexer1:         "Multiplexer1",
	EffectMultiplexer2:         "Multiplexer2",
	EffectMultiplexer3:         "Multiplexer3",
	EffectMultiplexer4:         "Multiplexer4",
	EffectIRPlayer1:            "IRPlayer1",
	EffectIRPlayer2:            "IRPlayer2",
	EffectIRPlayer3:            "IRPlayer3",
	EffectIRPlayer4:            "IRPlayer4",
	EffectMIDIBlock:            "MIDIBlock",
	EffectFootController:       "FootController",
	EffectPresetFC:             "PresetFC",
	EffectFXLoop:               "FXLoop",
	EffectInputNoiseGate:       "InputNoiseGate",
	EffectControllers:          "Controllers",
	EffectShunt:                "Shunt",
}

// effectIDsII is the flat block id space of the II dialect.
var effectIDsII = []effectID{
	{2, EffectControl},
	{100, EffectCompressor1},
	{101, EffectCompressor2},
	{102, EffectGraphicEQ1},
	{103, EffectGraphicEQ2},
	{104, EffectParametricEQ1},
	{105, EffectParametricEQ2},
	{106, EffectAmp1},
	{107, EffectAmp2},
	{108, EffectCab1},
	{109, EffectCab2},
	{110, EffectReverb1},
	{111, EffectReverb2},
	{112, EffectDelay1},
	{113, EffectDelay2},
	{114, EffectMultiDelay1},
	{115, EffectMultiDelay2},
	{116, EffectChorus1},
	{117, EffectChorus2},
	{118, EffectFlanger1},
	{119, EffectFlanger2},
	{120, EffectRotarySpeaker1},
	{121, EffectRotarySpeaker2},
	{122, EffectPhaser1},
	{123, EffectPhaser2},
	{124, EffectWah1},
	{125, EffectWah2},
	{126, EffectFormant1},
	{127, EffectVolumePan1},
	{128, EffectTremoloPanner1},
	{129, EffectTremoloPanner2},
	{130, EffectPitch1},
	{131, EffectFilter1},
	{132, EffectFilter2},
	{133, EffectDrive1},
	{134, EffectDrive2},
	{135, EffectEnhancer1},
	{136, EffectFXLoop},
	{137, EffectMixer1},
	{138, EffectMixer2},
	{139, EffectInputNoiseGate},
	{140, EffectOutput1},
	{141, EffectControllers},
	{142, EffectFeedbackSend1},
	{143, EffectFeedbackReturn1},
	{144, EffectSynth1},
	{145, EffectSynth2},
	{146, EffectVocoder1},
	{147, EffectMegatapDelay1},
	{148, EffectCrossover1},
	{149, EffectCrossover2},
	{150, EffectGateExpander1},
	{151, EffectGateExpander2},
	{153, EffectPitch2},
	{154, EffectMultibandCompressor1},
	{155, EffectMultibandCompressor2},
	{156, EffectQuadChorus1},
	{157, EffectQuadChorus2},
	{158, EffectResonator1},
	{159, EffectResonator2},
	{160, EffectGraphicEQ3},
	{161, EffectGraphicEQ4},
	{162, EffectParametricEQ3},
	{163, EffectParametricEQ4},
	{164, EffectFilter3},
	{165, EffectFilter4},
	{166, EffectVolumePan2},
	{167, EffectVolumePan3},
	{168, EffectVolumePan4},
	{169, EffectLooper1},
	{207, EffectShunt},
}

// effectIDsIII is the raw block id space of the III dialect.
var effectIDsIII = []effectID{
	{2, EffectControl},
	{35, EffectTuner},
	{36, EffectIRCapture},
	{37, EffectInput1},
	{38, EffectInput2},
	{39, EffectInput3},
	{40, EffectInput4},
	{41, EffectInput5},
	{42, EffectOutput1},
	{43, EffectOutput2},
	{44, EffectOutput3},
	{45, EffectOutput4},
	{46, EffectCompressor1},
	{47, EffectCompressor2},
	{48, EffectCompressor3},
	{49, EffectCompressor4},
	{50, EffectGraphicEQ1},
	{51, EffectGraphicEQ2},
	{52, EffectGraphicEQ3},
	{53, EffectGraphicEQ4},
	{54, EffectParametricEQ1},
	{55, EffectParametricEQ2},
	{56, EffectParametricEQ3},
	{57, EffectParametricEQ4},
	{58, EffectAmp1},
	{59, EffectAmp2},
	{60, EffectAmp3},
	{61, EffectAmp4},
	{62, EffectCab1},
	{63, EffectCab2},
	{64, EffectCab3},
	{65, EffectCab4},
	{66, EffectReverb1},
	{67, EffectReverb2},
	{68, EffectReverb3},
	{69, EffectReverb4},
	{70, EffectDelay1},
	{71, EffectDelay2},
	{72, EffectDelay3},
	{73, EffectDelay4},
	{74, EffectMultiDelay1},
	{75, EffectMultiDelay2},
	{76, EffectMultiDelay3},
	{77, EffectMultiDelay4},
	{78, EffectChorus1},
	{79, EffectChorus2},
	{80, EffectChorus3},
	{81, EffectChorus4},
	{82, EffectFlanger1},
	{83, EffectFlanger2},
	{84, EffectFlanger3},
	{85, EffectFlanger4},
	{86, EffectRotarySpeaker1},
	{87, EffectRotarySpeaker2},
	{88, EffectRotarySpeaker3},
	{89, EffectRotarySpeaker4},
	{90, EffectPhaser1},
	{91, EffectPhaser2},
	{92, EffectPhaser3},
	{93, EffectPhaser4},
	{94, EffectWah1},
	{95, EffectWah2},
	{96, EffectWah3},
	{97, EffectWah4},
	{98, EffectFormant1},
	{99, EffectFormant2},
	{100, EffectFormant3},
	{101, EffectFormant4},
	{102, EffectVolumePan1},
	{103, EffectVolumePan2},
	{104, EffectVolumePan3},
	{105, EffectVolumePan4},
	{106, EffectTremoloPanner1},
	{107, EffectTremoloPanner2},
	{108, EffectTremoloPanner3},
	{109, EffectTremoloPanner4},
	{110, EffectPitch1},
	{111, EffectPitch2},
	{112, EffectPitch3},
	{113, EffectPitch4},
	{114, EffectFilter1},
	{115, EffectFilter2},
	{116, EffectFilter3},
	{117, EffectFilter4},
	{118, EffectDrive1},
	{119, EffectDrive2},
	{120, EffectDrive3},
	{121, EffectDrive4},
	{122, EffectEnhancer1},
	{123, EffectEnhancer2},
	{124, EffectEnhancer3},
	{125, EffectEnhancer4},
	{126, EffectMixer1},
	{127, EffectMixer2},
	{128, EffectMixer3},
	{129, EffectMixer4},
	{130, EffectSynth1},
	{131, EffectSynth2},
	{132, EffectSynth3},
	{133, EffectSynth4},
	{134, EffectVocoder1},
	{135, EffectVocoder2},
	{136, EffectVocoder3},
	{137, EffectVocoder4},
	{138, EffectMegatapDelay1},
	{139, EffectMegatapDelay2},
	{140, EffectMegatapDelay3},
	{141, EffectMegatapDelay4},
	{142, EffectCrossover1},
	{143, EffectCrossover2},
	{144, EffectCrossover3},
	{145, EffectCrossover4},
	{146, EffectGateExpander1},
	{147, EffectGateExpander2},
	{148, EffectGateExpander3},
	{149, EffectGateExpander4},
	{150, EffectRingModulator1},
	{151, EffectRingModulator2},
	{152, EffectRingModulator3},
	{153, EffectRingModulator4},
	{154, EffectMultibandCompressor1},
	{155, EffectMultibandCompressor2},
	{156, EffectMultibandCompressor3},
	{157, EffectMultibandCompressor4},
	{158, EffectTenTapDelay1},
	{159, EffectTenTapDelay2},
	{160, EffectTenTapDelay3},
	{161, EffectTenTapDelay4},
	{162, EffectResonator1},
	{163, EffectResonator2},
	{164, EffectResonator3},
	{165, EffectResonator4},
	{166, EffectLooper1},
	{167, EffectLooper2},
	{168, EffectLooper3},
	{169, EffectLooper4},
	{170, EffectToneMatch1},
	{171, EffectToneMatch2},
	{172, EffectToneMatch3},
	{173, EffectToneMatch4},
	{174, EffectRTA1},
	{175, EffectRTA2},
	{176, EffectRTA3},
	{177, EffectRTA4},
	{178, EffectPlex1},
	{179, EffectPlex2},
	{180, EffectPlex3},
	{181, EffectPlex4},
	{182, EffectFeedbackSend1},
	{183, EffectFeedbackSend2},
	{184, EffectFeedbackSend3},
	{185, EffectFeedbackSend4},
	{186, EffectFeedbackReturn1},
	{187, EffectFeedbackReturn2},
	{188, EffectFeedbackReturn3},
	{189, EffectFeedbackReturn4},
	{190, EffectMIDIBlock},
	{191, EffectMultiplexer1},
	{192, EffectMultiplexer2},
	{193, EffectMultiplexer3},
	{194, EffectMultiplexer4},
	{195, EffectIRPlayer1},
	{196, EffectIRPlayer2},
	{197, EffectIRPlayer3},
	{198, EffectIRPlayer4},
	{199, EffectFootController},
	{200, EffectPresetFC},
}
