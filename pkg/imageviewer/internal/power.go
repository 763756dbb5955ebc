package internal

import (
	"sync"
	"time"

	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// PowerButtonConfig describes the evdev device carrying the power key.
type PowerButtonConfig struct {
	DevicePath    string        // e.g. /dev/input/event1
	ButtonCode    evdev.EvCode  // KEY_POWER (116) on most devices
	ShortPressMax time.Duration // Longer presses are left to the system
}

var (
	powerPressed  = atomic.NewBool(false)
	powerStopping = atomic.NewBool(false)
	powerWG       sync.WaitGroup
	powerDevice   *evdev.InputDevice
)

// StartPowerButtonHandler reads the power key in the background. A short
// press raises a flag the viewer polls to dismiss itself.
func StartPowerButtonHandler(cfg PowerButtonConfig) {
	if cfg.ButtonCode == 0 {
		cfg.ButtonCode = evdev.KEY_POWER
	}
	if cfg.ShortPressMax == 0 {
		cfg.ShortPressMax = 2 * time.Second
	}

	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		GetInternalLogger().Error("Failed to open power button device", "path", cfg.DevicePath, "error", err)
		return
	}
	powerDevice = dev
	powerStopping.Store(false)

	powerWG.Add(1)
	go func() {
		defer powerWG.Done()
		readPowerButton(dev, cfg)
	}()
}

func readPowerButton(dev *evdev.InputDevice, cfg PowerButtonConfig) {
	var pressedAt time.Time

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if !powerStopping.Load() {
				GetInternalLogger().Error("Power button reader stopped", "error", err)
			}
			return
		}
		if ev.Type != evdev.EV_KEY || ev.Code != cfg.ButtonCode {
			continue
		}

		switch ev.Value {
		case 1:
			pressedAt = time.Now()
		case 0:
			if !pressedAt.IsZero() && time.Since(pressedAt) <= cfg.ShortPressMax {
				powerPressed.Store(true)
			}
			pressedAt = time.Time{}
		}
	}
}

// ConsumePowerPress reports whether the power key was pressed since the last
// call, clearing the flag.
func ConsumePowerPress() bool {
	return powerPressed.Swap(false)
}

// StopPowerButtonHandler closes the device and waits for the reader to exit.
func StopPowerButtonHandler() {
	if powerDevice == nil {
		return
	}
	powerStopping.Store(true)
	powerDevice.Close()
	powerWG.Wait()
	powerDevice = nil
}
