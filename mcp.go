package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	_ "embed"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"fractalmcp/fractal"
)

func runMCP(a *Axe) {
	s := newMCPServer(a)

	log.Println("Starting Fractal MCP server...")

	if err := server.ServeStdio(s); err != nil {
		fmt.Printf("Server error: %v\n", err)
	}
}

func newMCPServer(a *Axe) *server.MCPServer {
	s := server.NewMCPServer(
		"Fractal MCP",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	h := &mcpHandlers{axe: a}

	s.AddTool(mcp.NewTool("fractal_describe-sysex",
		mcp.WithDescription("Returns notes on the Fractal Audio SysEx protocol spoken by the connected processor."),
	), docToolHandler)

	s.AddTool(mcp.NewTool("fractal_list-effects",
		mcp.WithDescription("Lists the effect blocks the connected model knows, with their wire ids."),
	), h.listEffects)

	s.AddTool(mcp.NewTool("fractal_decode-frame",
		mcp.WithDescription("Decodes a SysEx frame given as hex bytes without sending anything."),
		mcp.WithString("frame", mcp.Required(), mcp.Description("The frame as hex, e.g. \"F0 00 01 74 03 14 12 F7\".")),
	), h.decodeFrame)

	s.AddTool(mcp.NewTool("fractal_get-preset",
		mcp.WithDescription("Returns the number and name of the active preset."),
	), h.getPreset)

	s.AddTool(mcp.NewTool("fractal_set-preset",
		mcp.WithDescription("Selects a preset."),
		mcp.WithNumber("number", mcp.Required(), mcp.Description("The preset number (0-16383).")),
	), h.setPreset)

	s.AddTool(mcp.NewTool("fractal_set-scene",
		mcp.WithDescription("Selects a scene of the active preset."),
		mcp.WithNumber("scene", mcp.Required(), mcp.Description("The scene number (1-8).")),
	), h.setScene)

	s.AddTool(mcp.NewTool("fractal_set-tempo",
		mcp.WithDescription("Sets the tempo."),
		mcp.WithNumber("bpm", mcp.Required(), mcp.Description("The tempo in beats per minute.")),
	), h.setTempo)

	s.AddTool(mcp.NewTool("fractal_tuner",
		mcp.WithDescription("Switches the tuner on or off."),
		mcp.WithBoolean("on", mcp.Required(), mcp.Description("True to show the tuner.")),
	), h.tuner)

	s.AddTool(mcp.NewTool("fractal_metronome",
		mcp.WithDescription("Switches the metronome on or off."),
		mcp.WithBoolean("on", mcp.Required(), mcp.Description("True to start the metronome.")),
	), h.metronome)

	s.AddTool(mcp.NewTool("fractal_get-blocks",
		mcp.WithDescription("Returns the blocks of the active preset with their bypass state."),
	), h.getBlocks)

	s.AddTool(mcp.NewTool("fractal_get-grid",
		mcp.WithDescription("Returns the routing grid of the active preset."),
	), h.getGrid)

	s.AddTool(mcp.NewTool("fractal_get-block-parameters",
		mcp.WithDescription("Returns the parameters of one block of the active preset."),
		mcp.WithString("effect", mcp.Required(), mcp.Description("The block, e.g. Amp1 or Delay2. See fractal_list-effects.")),
	), h.getBlockParameters)

	s.AddTool(mcp.NewTool("fractal_set-block-bypass",
		mcp.WithDescription("Bypasses or engages one block of the active preset (Axe-Fx III)."),
		mcp.WithString("effect", mcp.Required(), mcp.Description("The block, e.g. Amp1 or Delay2.")),
		mcp.WithBoolean("bypassed", mcp.Required(), mcp.Description("True to bypass the block.")),
	), h.setBlockBypass)

	s.AddTool(mcp.NewTool("fractal_rename-preset",
		mcp.WithDescription("Renames the active preset. Names are ASCII, at most 32 characters."),
		mcp.WithString("name", mcp.Required(), mcp.Description("The new preset name.")),
	), h.renamePreset)

	s.AddTool(mcp.NewTool("fractal_store-preset",
		mcp.WithDescription("Stores the edit buffer into a preset slot."),
		mcp.WithNumber("number", mcp.Required(), mcp.Description("The preset number (0-16383).")),
	), h.storePreset)

	s.AddTool(mcp.NewTool("fractal_firmware",
		mcp.WithDescription("Returns the firmware version of the processor."),
	), h.firmware)

	s.AddTool(mcp.NewTool("fractal_looper-status",
		mcp.WithDescription("Returns the looper state (Axe-Fx III)."),
	), h.looperStatus)

	return s
}

type mcpHandlers struct {
	axe *Axe
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	asJson, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result to JSON: %v", err)
	}
	return mcp.NewToolResultText(string(asJson)), nil
}

type effectEntry struct {
	Effect fractal.Effect `json:"effect"`
	ID     uint32         `json:"id"`
}

func (h *mcpHandlers) listEffects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Println("[mcp] Handling list effects request.")

	d := h.axe.Model().Dialect()
	ids := fractal.EffectIDs(d)
	entries := make([]effectEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, effectEntry{Effect: fractal.EffectForID(d, id), ID: id})
	}
	return jsonResult(entries)
}

func (h *mcpHandlers) decodeFrame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("frame")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Println("[mcp] Decoding frame:", text)

	out, err := describeText(text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (h *mcpHandlers) getPreset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Println("[mcp] Handling get preset request.")

	p, err := h.axe.Preset(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset: %v", err)
	}
	return jsonResult(p)
}

func (h *mcpHandlers) setPreset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := request.RequireInt("number")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res := outOfRange("preset number", n); res != nil {
		return res, nil
	}

	log.Println("[mcp] Selecting preset", n)

	p, err := h.axe.SetPreset(ctx, uint32(n))
	if err != nil {
		return nil, fmt.Errorf("failed to select preset: %v", err)
	}
	return jsonResult(p)
}

func (h *mcpHandlers) setScene(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := request.RequireInt("scene")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if n < 1 || n > 8 {
		return mcp.NewToolResultError(fmt.Sprintf("scene must be in range 1-8, got %d", n)), nil
	}

	scene, err := h.axe.SetScene(ctx, uint8(n))
	if err != nil {
		return nil, fmt.Errorf("failed to select scene: %v", err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Scene %d selected.", scene)), nil
}

func (h *mcpHandlers) setTempo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bpm, err := request.RequireInt("bpm")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res := outOfRange("tempo", bpm); res != nil {
		return res, nil
	}

	if err := h.axe.SetTempo(uint32(bpm)); err != nil {
		return nil, fmt.Errorf("failed to set tempo: %v", err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Tempo set to %d BPM.", bpm)), nil
}

func (h *mcpHandlers) tuner(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	on, err := request.RequireBool("on")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := h.axe.Tuner(on); err != nil {
		return nil, fmt.Errorf("failed to toggle tuner: %v", err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Tuner %s.", onOffText(on))), nil
}

func (h *mcpHandlers) metronome(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	on, err := request.RequireBool("on")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := h.axe.Metronome(on); err != nil {
		return nil, fmt.Errorf("failed to toggle metronome: %v", err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Metronome %s.", onOffText(on))), nil
}

func (h *mcpHandlers) getBlocks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Println("[mcp] Handling get blocks request.")

	msg, err := h.axe.Blocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read blocks: %v", err)
	}
	return jsonResult(msg)
}

func (h *mcpHandlers) getGrid(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Println("[mcp] Handling get grid request.")

	g, err := h.axe.Grid(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid: %v", err)
	}
	return jsonResult(g)
}

func (h *mcpHandlers) getBlockParameters(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("effect")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	effect, err := fractal.ParseEffect(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Println("[mcp] Reading parameters of", effect)

	params, err := h.axe.BlockParameters(ctx, effect)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameters: %v", err)
	}
	return jsonResult(params)
}

func (h *mcpHandlers) setBlockBypass(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("effect")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	effect, err := fractal.ParseEffect(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	bypassed, err := request.RequireBool("bypassed")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	state, err := h.axe.SetBlockBypass(ctx, effect, bypassed)
	if err != nil {
		return nil, fmt.Errorf("failed to set bypass: %v", err)
	}
	return jsonResult(state)
}

func (h *mcpHandlers) renamePreset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Println("[mcp] Renaming preset to", name)

	if err := h.axe.Rename(ctx, name); err != nil {
		return nil, fmt.Errorf("failed to rename preset: %v", err)
	}
	return mcp.NewToolResultText("Preset renamed."), nil
}

func (h *mcpHandlers) storePreset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := request.RequireInt("number")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res := outOfRange("preset number", n); res != nil {
		return res, nil
	}

	if err := h.axe.Store(uint32(n)); err != nil {
		return nil, fmt.Errorf("failed to store preset: %v", err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Stored in preset %d.", n)), nil
}

func (h *mcpHandlers) firmware(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	v, err := h.axe.Firmware(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read firmware version: %v", err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s firmware %d.%02d", h.axe.Model(), v.Major, v.Minor)), nil
}

func (h *mcpHandlers) looperStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := h.axe.Looper(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read looper: %v", err)
	}
	return jsonResult(state)
}

func onOffText(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

//go:embed fractal_sysex.txt
var sysexDoc string

func docToolHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Println("[mcp] Handling SysEx documentation request.")

	return mcp.NewToolResultText(sysexDoc), nil
}

// maxValue is the largest number two 7-bit data bytes carry.
const maxValue = 1<<14 - 1

// outOfRange returns a tool error when n does not fit in two data bytes.
func outOfRange(what string, n int) *mcp.CallToolResult {
	if n < 0 || n > maxValue {
		return mcp.NewToolResultError(fmt.Sprintf("%s must be between 0 and %d, got %d", what, maxValue, n))
	}
	return nil
}
