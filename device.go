package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"fractalmcp/fractal"
)

// ErrTimeout is returned when the device does not answer a request in time.
var ErrTimeout = errors.New("timed out waiting for device")

// settle is how long Collect waits for another matching frame after the
// previous one before it considers the reply complete.
const settle = 250 * time.Millisecond

type listenFunc func(recv func(msg midi.Message)) (stop func(), err error)

// Axe is a connection to one Fractal processor: an output port for commands
// and an input port for replies.
type Axe struct {
	model   fractal.Model
	channel uint8
	timeout time.Duration
	debug   bool

	mu     sync.Mutex
	send   func(msg midi.Message) error
	listen listenFunc

	// listening is held while a listener is installed on the input port.
	// The driver accepts one callback per port, so exchanges run one at a
	// time.
	listening sync.Mutex
}

// OpenAxe opens the output and input ports whose names contain cfg.Port.
func OpenAxe(cfg Config) (*Axe, func(), error) {
	outs, err := drivers.Outs()
	if err != nil {
		return nil, nil, err
	}
	out, err := findPort(outs, cfg.Port)
	if err != nil {
		return nil, nil, fmt.Errorf("output: %w", err)
	}

	ins, err := drivers.Ins()
	if err != nil {
		return nil, nil, err
	}
	in, err := findPort(ins, cfg.Port)
	if err != nil {
		return nil, nil, fmt.Errorf("input: %w", err)
	}

	model, err := cfg.resolveModel(out.String())
	if err != nil {
		return nil, nil, err
	}

	if err := out.Open(); err != nil {
		return nil, nil, err
	}

	closer := func() {
		_ = out.Close()
		drivers.Close()
	}
	log.Printf("[axe] opened %q / %q as %s", out.String(), in.String(), model)

	a := &Axe{
		model:   model,
		channel: cfg.Channel,
		timeout: cfg.Timeout.Duration,
		debug:   cfg.Debug,
		send: func(msg midi.Message) error {
			if !out.IsOpen() {
				if err := out.Open(); err != nil {
					return err
				}
			}
			return out.Send(msg.Bytes())
		},
		listen: func(recv func(msg midi.Message)) (func(), error) {
			return midi.ListenTo(in, func(msg midi.Message, _ int32) {
				recv(msg)
			}, midi.UseSysEx(), midi.SysExBufferSize(4096))
		},
	}
	return a, closer, nil
}

func findPort[P drivers.Port](ports []P, nameFragment string) (P, error) {
	var zero P
	if len(ports) == 0 {
		return zero, errors.New("no MIDI ports available")
	}

	lower := strings.ToLower(nameFragment)
	for _, p := range ports {
		if strings.Contains(strings.ToLower(p.String()), lower) {
			return p, nil
		}
	}
	return zero, fmt.Errorf("no MIDI port contains %q", nameFragment)
}

// Model returns the model the connection speaks to.
func (a *Axe) Model() fractal.Model { return a.model }

// Send transmits one frame or channel message.
func (a *Axe) Send(msg midi.Message) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.debug {
		dumpBytes(msg, "sent")
	}
	return a.send(msg)
}

// Request sends frame and returns the first reply accepted by match.
func (a *Axe) Request(ctx context.Context, frame []byte, match func(fractal.Message) bool) (fractal.Message, error) {
	replies, err := a.exchange(ctx, frame, match, false)
	if err != nil {
		return nil, err
	}
	return replies[0], nil
}

// Collect sends frame and gathers every reply accepted by match until the
// device goes quiet.
func (a *Axe) Collect(ctx context.Context, frame []byte, match func(fractal.Message) bool) ([]fractal.Message, error) {
	return a.exchange(ctx, frame, match, true)
}

func (a *Axe) exchange(ctx context.Context, frame []byte, match func(fractal.Message) bool, all bool) ([]fractal.Message, error) {
	id := uuid.New().String()
	matched := make(chan fractal.Message, 64)

	a.listening.Lock()
	defer a.listening.Unlock()

	stop, err := a.listen(func(msg midi.Message) {
		if len(msg) == 0 || msg[0] != 0xF0 {
			return
		}
		if a.debug {
			dumpBytes(msg, "received "+id)
		}
		parsed := fractal.Parse(msg)
		if !match(parsed) {
			return
		}
		select {
		case matched <- parsed:
		default:
			log.Printf("[axe] %s dropped %s, reply buffer full", id, parsed.Kind())
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to listen for reply: %w", err)
	}
	defer stop()

	log.Printf("[axe] %s request % X", id, frame)
	if err := a.Send(frame); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	timer := time.NewTimer(a.timeout)
	defer timer.Stop()

	var replies []fractal.Message
	for {
		select {
		case msg := <-matched:
			log.Printf("[axe] %s reply %s", id, msg.Kind())
			replies = append(replies, msg)
			if !all {
				return replies, nil
			}
			timer.Reset(settle)
		case <-timer.C:
			if len(replies) > 0 {
				return replies, nil
			}
			log.Printf("[axe] %s timed out after %s", id, a.timeout)
			return nil, fmt.Errorf("%s: %w", id, ErrTimeout)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Monitor calls fn with every frame the device sends until ctx is done.
// Channel messages are logged but not passed to fn. Requests block while a
// monitor is running.
func (a *Axe) Monitor(ctx context.Context, fn func(fractal.Message)) error {
	a.listening.Lock()
	defer a.listening.Unlock()

	stop, err := a.listen(func(msg midi.Message) {
		var ch, ctl, val uint8
		if msg.GetControlChange(&ch, &ctl, &val) {
			log.Printf("[axe] control change ch=%d cc=%d value=%d", ch+1, ctl, val)
			return
		}
		if len(msg) == 0 || msg[0] != 0xF0 {
			return
		}
		if a.debug {
			dumpBytes(msg, "monitor")
		}
		fn(fractal.Parse(msg))
	})
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	defer stop()

	<-ctx.Done()
	return nil
}

func is[T fractal.Message](m fractal.Message) bool {
	_, ok := m.(T)
	return ok
}

func dumpBytes(data []byte, label string) {
	f := os.Stderr

	fmt.Fprintf(f, "Dumping %d bytes (%s):\n", len(data), label)
	for i, b := range data {
		fmt.Fprintf(f, "%d 0x%02X\n", i, b)
	}
}
