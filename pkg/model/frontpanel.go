package model

import (
	"fmt"

	"github.com/openhlx/hlxproxyd/internal/protoerr"
)

// FrontPanel mirrors the device's front panel state (spec.md §3
// FrontPanelModel).
type FrontPanel struct {
	brightness Field[int]
	locked     Field[bool]
}

// NewFrontPanel constructs a front panel with default values.
func NewFrontPanel() *FrontPanel { return &FrontPanel{} }

// Brightness returns the current brightness level.
func (f *FrontPanel) Brightness() int { return f.brightness.Value() }

// BrightnessInitialized reports whether brightness has ever been set.
func (f *FrontPanel) BrightnessInitialized() bool { return f.brightness.Initialized() }

// SetBrightness sets the brightness level.
func (f *FrontPanel) SetBrightness(level int) (bool, error) {
	if level < FrontPanelBrightnessMin || level > FrontPanelBrightnessMax {
		return false, fmt.Errorf("%w: brightness %d", protoerr.ErrOutOfRange, level)
	}
	return f.brightness.Set(level), nil
}

// Locked returns the current lock state.
func (f *FrontPanel) Locked() bool { return f.locked.Value() }

// LockedInitialized reports whether the lock state has ever been set.
func (f *FrontPanel) LockedInitialized() bool { return f.locked.Initialized() }

// SetLocked sets the lock state.
func (f *FrontPanel) SetLocked(locked bool) bool { return f.locked.Set(locked) }

// Infrared mirrors the device's infrared receiver state (spec.md §3
// InfraredModel).
type Infrared struct {
	disabled Field[bool]
}

// NewInfrared constructs an infrared model with default values.
func NewInfrared() *Infrared { return &Infrared{} }

// Disabled returns the current disabled state.
func (ir *Infrared) Disabled() bool { return ir.disabled.Value() }

// DisabledInitialized reports whether the disabled state has ever been set.
func (ir *Infrared) DisabledInitialized() bool { return ir.disabled.Initialized() }

// SetDisabled sets the disabled state.
func (ir *Infrared) SetDisabled(disabled bool) bool { return ir.disabled.Set(disabled) }
