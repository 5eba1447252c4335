package tui

import "github.com/vovakirdan/skyfaller/internal/core"

// DefaultHoldTicks is how many ticks a key press keeps counting as held.
// At 60 ticks per second this bridges the gap before terminal auto-repeat
// kicks in.
const DefaultHoldTicks = 8

// HeldKeys turns terminal key presses into held-key state.
// Terminals report presses (and auto-repeats) but never releases, so a key
// counts as held for a fixed number of ticks after its last press.
type HeldKeys struct {
	window    int
	remaining map[core.Action]int
}

// NewHeldKeys creates a tracker holding each press for window ticks.
func NewHeldKeys(window int) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldTicks
	}
	return &HeldKeys{
		window:    window,
		remaining: make(map[core.Action]int),
	}
}

// Press marks an action as held. Pressing one direction releases the other.
func (h *HeldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	}
	h.remaining[a] = h.window
}

// Apply sets every held action on the frame and counts down one tick.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Held reports whether an action is currently held.
func (h *HeldKeys) Held(a core.Action) bool {
	return h.remaining[a] > 0
}

// Reset releases every key.
func (h *HeldKeys) Reset() {
	clear(h.remaining)
}
