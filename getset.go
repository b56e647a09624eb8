package main

import (
	"context"
	"fmt"

	"fractalmcp/fractal"
)

type presetInfo struct {
	Number uint32 `json:"number"`
	Name   string `json:"name"`
}

// Preset queries the active preset number and name. The III answers both
// with one indexed name frame.
func (a *Axe) Preset(ctx context.Context) (presetInfo, error) {
	if a.model.Dialect() == fractal.DialectIII {
		msg, err := a.Request(ctx, fractal.GetCurrentPresetName(a.model), is[fractal.PresetName])
		if err != nil {
			return presetInfo{}, fmt.Errorf("preset name: %w", err)
		}
		p := msg.(fractal.PresetName)
		return presetInfo{Number: p.Number, Name: p.Name}, nil
	}

	msg, err := a.Request(ctx, fractal.GetPresetNumber(a.model), is[fractal.CurrentPresetNumber])
	if err != nil {
		return presetInfo{}, fmt.Errorf("preset number: %w", err)
	}
	info := presetInfo{Number: msg.(fractal.CurrentPresetNumber).Number}

	msg, err = a.Request(ctx, fractal.GetCurrentPresetName(a.model), is[fractal.CurrentPresetName])
	if err != nil {
		return presetInfo{}, fmt.Errorf("preset name: %w", err)
	}
	info.Name = msg.(fractal.CurrentPresetName).Name
	return info, nil
}

// SetPreset selects preset n and reads back what the device switched to.
func (a *Axe) SetPreset(ctx context.Context, n uint32) (presetInfo, error) {
	frame, err := fractal.SetPresetNumber(a.model, n)
	if err != nil {
		return presetInfo{}, err
	}
	if err := a.Send(frame); err != nil {
		return presetInfo{}, err
	}
	return a.Preset(ctx)
}

func (a *Axe) Scene(ctx context.Context) (uint8, error) {
	msg, err := a.Request(ctx, fractal.GetSceneNumber(a.model), is[fractal.CurrentSceneNumber])
	if err != nil {
		return 0, err
	}
	return msg.(fractal.CurrentSceneNumber).Scene, nil
}

// SetScene selects scene 1-8. The device echoes the new scene.
func (a *Axe) SetScene(ctx context.Context, scene uint8) (uint8, error) {
	frame, err := fractal.SetSceneNumber(a.model, scene)
	if err != nil {
		return 0, err
	}
	msg, err := a.Request(ctx, frame, is[fractal.CurrentSceneNumber])
	if err != nil {
		return 0, err
	}
	return msg.(fractal.CurrentSceneNumber).Scene, nil
}

func (a *Axe) SetTempo(bpm uint32) error {
	frame, err := fractal.SetTempo(a.model, bpm)
	if err != nil {
		return err
	}
	return a.Send(frame)
}

// Tempo queries the tempo. III only.
func (a *Axe) Tempo(ctx context.Context) (uint32, error) {
	frame, err := fractal.GetTempo(a.model)
	if err != nil {
		return 0, err
	}
	msg, err := a.Request(ctx, frame, is[fractal.CurrentTempo])
	if err != nil {
		return 0, err
	}
	return msg.(fractal.CurrentTempo).BPM, nil
}

func (a *Axe) Tuner(on bool) error {
	msg, err := fractal.ToggleTuner(a.channel, on)
	if err != nil {
		return err
	}
	return a.Send(msg)
}

func (a *Axe) Metronome(on bool) error {
	msg, err := fractal.ToggleMetronome(a.channel, on)
	if err != nil {
		return err
	}
	return a.Send(msg)
}

// Blocks reports the blocks of the active preset: a PresetBlocksFlags on
// the II family, a StatusDump on the III.
func (a *Axe) Blocks(ctx context.Context) (fractal.Message, error) {
	if a.model.Dialect() == fractal.DialectIII {
		frame, err := fractal.GetStatusDump(a.model)
		if err != nil {
			return nil, err
		}
		return a.Request(ctx, frame, is[fractal.StatusDump])
	}
	return a.Request(ctx, fractal.GetPresetBlocksFlags(a.model), is[fractal.PresetBlocksFlags])
}

func (a *Axe) Grid(ctx context.Context) (fractal.Grid, error) {
	msg, err := a.Request(ctx, fractal.GetGridLayoutAndRouting(a.model), is[fractal.BlockGrid])
	if err != nil {
		return fractal.Grid{}, err
	}
	return msg.(fractal.BlockGrid).Grid, nil
}

// BlockParameters reads every parameter the device reports for effect. The
// device answers with one frame per parameter.
func (a *Axe) BlockParameters(ctx context.Context, effect fractal.Effect) ([]fractal.BlockParameters, error) {
	frame, err := fractal.GetBlockParameters(a.model, effect)
	if err != nil {
		return nil, err
	}
	msgs, err := a.Collect(ctx, frame, func(m fractal.Message) bool {
		p, ok := m.(fractal.BlockParameters)
		return ok && p.Effect == effect
	})
	if err != nil {
		return nil, err
	}

	params := make([]fractal.BlockParameters, 0, len(msgs))
	for _, m := range msgs {
		params = append(params, m.(fractal.BlockParameters))
	}
	return params, nil
}

// Rename renames the active preset.
func (a *Axe) Rename(ctx context.Context, name string) error {
	var n uint32
	if a.model.Dialect() == fractal.DialectIII {
		p, err := a.Preset(ctx)
		if err != nil {
			return err
		}
		n = p.Number
	}
	frame, err := fractal.SetPresetName(a.model, n, name)
	if err != nil {
		return err
	}
	return a.Send(frame)
}

func (a *Axe) Store(n uint32) error {
	frame, err := fractal.StoreInPreset(a.model, n)
	if err != nil {
		return err
	}
	return a.Send(frame)
}

func (a *Axe) Firmware(ctx context.Context) (fractal.FirmwareVersion, error) {
	msg, err := a.Request(ctx, fractal.GetFirmwareVersion(a.model), is[fractal.FirmwareVersion])
	if err != nil {
		return fractal.FirmwareVersion{}, err
	}
	return msg.(fractal.FirmwareVersion), nil
}

func (a *Axe) Looper(ctx context.Context) (fractal.LooperState, error) {
	frame, err := fractal.GetLooperStatus(a.model)
	if err != nil {
		return fractal.LooperState{}, err
	}
	msg, err := a.Request(ctx, frame, is[fractal.LooperState])
	if err != nil {
		return fractal.LooperState{}, err
	}
	return msg.(fractal.LooperState), nil
}

// SetBlockBypass engages or bypasses effect and returns the state the device
// confirms. III only.
func (a *Axe) SetBlockBypass(ctx context.Context, effect fractal.Effect, bypassed bool) (fractal.BlockBypass, error) {
	frame, err := fractal.SetBlockBypass(a.model, effect, bypassed)
	if err != nil {
		return fractal.BlockBypass{}, err
	}
	msg, err := a.Request(ctx, frame, func(m fractal.Message) bool {
		b, ok := m.(fractal.BlockBypass)
		return ok && b.Effect == effect
	})
	if err != nil {
		return fractal.BlockBypass{}, err
	}
	return msg.(fractal.BlockBypass), nil
}
