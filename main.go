package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"fractalmcp/fractal"
)

const usage = `usage: fractalmcp [flags] command [args]

commands:
  ports                 list MIDI ports
  decode HEX...         decode a frame without a device
  preset                show the active preset
  set-preset N          select preset N
  scene [N]             show or select the scene (1-8)
  tempo [BPM]           show (III) or set the tempo
  tuner on|off          toggle the tuner
  metronome on|off      toggle the metronome
  blocks                show the blocks of the active preset
  grid                  show the routing grid
  params EFFECT         show the parameters of a block
  bypass EFFECT on|off  bypass or engage a block (III)
  rename NAME           rename the active preset
  store N               store the edit buffer in preset N
  firmware              show the firmware version
  looper                show the looper state (III)
  monitor               print every frame the device sends
  mcp                   serve the device over MCP on stdio
`

func main() {
	cfg, args, err := loadConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(os.Stderr, usage)
		return
	}
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		log.Println("exiting: no command specified")
		return
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "ports":
		listPorts()
		return
	case "decode":
		out, err := describeText(strings.Join(rest, " "))
		if err != nil {
			log.Fatalf("decode: %v", err)
		}
		fmt.Println(out)
		return
	}

	axe, closer, err := OpenAxe(cfg)
	if err != nil {
		log.Fatalf("could not open Axe-Fx MIDI ports: %v", err)
	}
	defer closer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, axe, cmd, rest); err != nil {
		closer()
		log.Fatalf("%s: %v", cmd, err)
	}
}

func listPorts() {
	log.Println("Available MIDI outputs:")
	fmt.Print(midi.GetOutPorts().String())
	log.Println("Available MIDI inputs:")
	fmt.Print(midi.GetInPorts().String())
}

func describeText(text string) (string, error) {
	frame, err := parseFrameText(text)
	if err != nil {
		return "", err
	}
	return describe(frame)
}

func run(ctx context.Context, a *Axe, cmd string, args []string) error {
	switch cmd {
	case "preset":
		return printResult(a.Preset(ctx))

	case "set-preset":
		n, err := argUint(args, 0, "preset", 1<<14-1)
		if err != nil {
			return err
		}
		return printResult(a.SetPreset(ctx, uint32(n)))

	case "scene":
		if len(args) == 0 {
			return printResult(a.Scene(ctx))
		}
		n, err := argUint(args, 0, "scene", 8)
		if err != nil {
			return err
		}
		return printResult(a.SetScene(ctx, uint8(n)))

	case "tempo":
		if len(args) == 0 {
			return printResult(a.Tempo(ctx))
		}
		n, err := argUint(args, 0, "tempo", 1<<14-1)
		if err != nil {
			return err
		}
		return a.SetTempo(uint32(n))

	case "tuner":
		on, err := argOnOff(args, 0)
		if err != nil {
			return err
		}
		return a.Tuner(on)

	case "metronome":
		on, err := argOnOff(args, 0)
		if err != nil {
			return err
		}
		return a.Metronome(on)

	case "blocks":
		return printResult(a.Blocks(ctx))

	case "grid":
		return printResult(a.Grid(ctx))

	case "params":
		effect, err := argEffect(args, 0)
		if err != nil {
			return err
		}
		return printResult(a.BlockParameters(ctx, effect))

	case "bypass":
		effect, err := argEffect(args, 0)
		if err != nil {
			return err
		}
		on, err := argOnOff(args, 1)
		if err != nil {
			return err
		}
		return printResult(a.SetBlockBypass(ctx, effect, on))

	case "rename":
		if len(args) == 0 {
			return errors.New("missing preset name")
		}
		return a.Rename(ctx, strings.Join(args, " "))

	case "store":
		n, err := argUint(args, 0, "preset", 1<<14-1)
		if err != nil {
			return err
		}
		return a.Store(uint32(n))

	case "firmware":
		return printResult(a.Firmware(ctx))

	case "looper":
		return printResult(a.Looper(ctx))

	case "monitor":
		log.Println("Monitoring, press Ctrl-C to stop.")
		return a.Monitor(ctx, printMessage)

	case "mcp":
		runMCP(a)
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func printResult[T any](v T, err error) error {
	if err != nil {
		return err
	}
	asJson, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result to JSON: %w", err)
	}
	fmt.Println(string(asJson))
	return nil
}

func printMessage(msg fractal.Message) {
	if t, ok := msg.(fractal.TunerInfo); ok {
		fmt.Println(tunerReading(t.Note, t.StringNumber, t.TunerData))
		return
	}
	asJson, err := json.Marshal(msg)
	if err != nil {
		log.Printf("failed to marshal %s: %v", msg.Kind(), err)
		return
	}
	fmt.Printf("%s %s\n", msg.Kind(), asJson)
}

func argUint(args []string, i int, what string, limit uint64) (uint64, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("missing %s", what)
	}
	n, err := strconv.ParseUint(args[i], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, args[i], err)
	}
	if n > limit {
		return 0, fmt.Errorf("%s %d out of range 0-%d", what, n, limit)
	}
	return n, nil
}

func argOnOff(args []string, i int) (bool, error) {
	if len(args) <= i {
		return false, errors.New("missing on|off")
	}
	switch strings.ToLower(args[i]) {
	case "on", "1", "true":
		return true, nil
	case "off", "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", args[i])
}

func argEffect(args []string, i int) (fractal.Effect, error) {
	if len(args) <= i {
		return 0, errors.New("missing effect name")
	}
	return fractal.ParseEffect(args[i])
}
