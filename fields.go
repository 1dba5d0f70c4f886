package prism

import "github.com/zoobzio/capitan"

// Field keys for Picker and PaletteWatcher events.
var (
	// KeyValue is the canonical color value being written or emitted.
	KeyValue = capitan.NewStringKey("value")

	// KeyFormat is the active output format.
	KeyFormat = capitan.NewStringKey("format")

	// KeyOldFormat is the previous format before an explicit change.
	KeyOldFormat = capitan.NewStringKey("old_format")

	// KeyState is the interaction or palette state.
	KeyState = capitan.NewStringKey("state")

	// KeyOldState is the previous state before a transition.
	KeyOldState = capitan.NewStringKey("old_state")

	// KeyNewState is the new state after a transition.
	KeyNewState = capitan.NewStringKey("new_state")

	// KeyChannel is the channel space being edited.
	KeyChannel = capitan.NewStringKey("channel")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeySettleDelay is the configured settle window duration.
	KeySettleDelay = capitan.NewDurationKey("settle_delay")

	// KeyDebounce is the configured palette debounce duration.
	KeyDebounce = capitan.NewDurationKey("debounce")

	// KeySwatchCount is the number of swatches in an applied palette.
	KeySwatchCount = capitan.NewIntKey("swatch_count")
)
