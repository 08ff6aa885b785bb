//go:build linux

package evdev

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/holoplot/go-evdev"
	"github.com/pawndev/vkbd/pkg/vkbd"
	"go.uber.org/atomic"
)

const inputDir = "/dev/input"

// Key event values reported by the kernel.
const (
	valueRelease int32 = 0
	valuePress   int32 = 1
	valueRepeat  int32 = 2
)

// ErrNoKeyboard is returned when no readable keyboard device was found.
var ErrNoKeyboard = errors.New("no keyboard input device found")

type modifiers struct {
	shiftLeft, shiftRight bool
	ctrlLeft, ctrlRight   bool
	altLeft, altRight     bool
	metaLeft, metaRight   bool
}

func (m *modifiers) update(code evdev.EvCode, down bool) {
	switch code {
	case evdev.KEY_LEFTSHIFT:
		m.shiftLeft = down
	case evdev.KEY_RIGHTSHIFT:
		m.shiftRight = down
	case evdev.KEY_LEFTCTRL:
		m.ctrlLeft = down
	case evdev.KEY_RIGHTCTRL:
		m.ctrlRight = down
	case evdev.KEY_LEFTALT:
		m.altLeft = down
	case evdev.KEY_RIGHTALT:
		m.altRight = down
	case evdev.KEY_LEFTMETA:
		m.metaLeft = down
	case evdev.KEY_RIGHTMETA:
		m.metaRight = down
	}
}

// Transition is one translated key event with its direction.
type Transition struct {
	Event vkbd.KeyEvent
	Down  bool
}

// translate folds a raw event into the modifier state and converts it.
// Non-key events and unnamed codes are dropped.
func translate(ev *evdev.InputEvent, mods *modifiers) (Transition, bool) {
	if ev.Type != evdev.EV_KEY {
		return Transition{}, false
	}

	down := ev.Value != valueRelease
	if ev.Value == valuePress || ev.Value == valueRelease {
		mods.update(ev.Code, down)
	}

	name, ok := CodeName(ev.Code)
	if !ok {
		return Transition{}, false
	}

	return Transition{
		Down: down,
		Event: vkbd.KeyEvent{
			Code:   name,
			Shift:  mods.shiftLeft || mods.shiftRight,
			Ctrl:   mods.ctrlLeft || mods.ctrlRight,
			Alt:    mods.altLeft || mods.altRight,
			Meta:   mods.metaLeft || mods.metaRight,
			Repeat: ev.Value == valueRepeat,
		},
	}, true
}

// Source reads one or more keyboards. Each device is read on its own
// goroutine; transitions are merged into a single channel so the consumer
// can drive the keyboard from one loop.
type Source struct {
	devices []*evdev.InputDevice
	logger  *slog.Logger

	running *atomic.Bool
	wg      sync.WaitGroup
	once    sync.Once
}

// Open opens the given device paths, or every keyboard under /dev/input when
// none are given.
func Open(logger *slog.Logger, paths ...string) (*Source, error) {
	if logger == nil {
		logger = vkbd.GetLogger()
	}

	if len(paths) == 0 {
		found, err := FindKeyboards()
		if err != nil {
			return nil, err
		}
		paths = found
	}

	s := &Source{logger: logger, running: atomic.NewBool(false)}
	for _, p := range paths {
		dev, err := evdev.OpenWithFlags(p, os.O_RDONLY)
		if err != nil {
			s.closeDevices()
			return nil, fmt.Errorf("failed to open input device %s: %w", p, err)
		}
		s.devices = append(s.devices, dev)
	}
	if len(s.devices) == 0 {
		return nil, ErrNoKeyboard
	}
	return s, nil
}

// FindKeyboards lists the input devices that report letter keys.
func FindKeyboards() ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", inputDir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		full := filepath.Join(inputDir, entry.Name())
		dev, err := evdev.OpenWithFlags(full, os.O_RDONLY)
		if err != nil {
			continue
		}
		if isKeyboard(dev) {
			paths = append(paths, full)
		}
		_ = dev.Close()
	}

	if len(paths) == 0 {
		return nil, ErrNoKeyboard
	}
	return paths, nil
}

func isKeyboard(dev *evdev.InputDevice) bool {
	for _, code := range dev.CapableEvents(evdev.EV_KEY) {
		if code == evdev.KEY_A {
			return true
		}
	}
	return false
}

// Run starts reading and returns the merged transitions. The channel is
// closed once ctx is done or every device has failed.
func (s *Source) Run(ctx context.Context) <-chan Transition {
	out := make(chan Transition, 64)
	s.running.Store(true)

	for _, dev := range s.devices {
		s.wg.Add(1)
		go s.read(ctx, dev, out)
	}

	go func() {
		<-ctx.Done()
		s.Close()
	}()
	go func() {
		s.wg.Wait()
		close(out)
	}()
	return out
}

func (s *Source) read(ctx context.Context, dev *evdev.InputDevice, out chan<- Transition) {
	defer s.wg.Done()

	name, _ := dev.Name()
	s.logger.Debug("Reading input device", "path", dev.Path(), "name", name)

	var mods modifiers
	for s.running.Load() {
		ev, err := dev.ReadOne()
		if err != nil {
			if s.running.Load() {
				s.logger.Error("Input device read failed", "path", dev.Path(), "error", err)
			}
			return
		}

		t, ok := translate(ev, &mods)
		if !ok {
			continue
		}
		select {
		case out <- t:
		case <-ctx.Done():
			return
		}
	}
}

// Running reports whether Run was called and Close has not been.
func (s *Source) Running() bool {
	return s.running.Load()
}

// Close stops reading and closes every device. It is safe to call twice.
func (s *Source) Close() {
	s.once.Do(func() {
		s.running.Store(false)
		s.closeDevices()
	})
}

func (s *Source) closeDevices() {
	for _, dev := range s.devices {
		if err := dev.Close(); err != nil {
			s.logger.Debug("Failed to close input device", "path", dev.Path(), "error", err)
		}
	}
}
