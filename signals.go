package prism

import "github.com/zoobzio/capitan"

// Picker value signals.
var (
	// PickerValueChanged is emitted on every live canonical value write.
	PickerValueChanged = capitan.NewSignal(
		"prism.picker.value.changed",
		"Canonical value written",
	)

	// PickerValueCommitted is emitted when a value is committed
	// (channel edit, eye-dropper pick, swatch click, format change).
	PickerValueCommitted = capitan.NewSignal(
		"prism.picker.value.committed",
		"Canonical value committed",
	)

	// PickerParseFailed is emitted when a color string cannot be parsed.
	// The prior canonical value is retained.
	PickerParseFailed = capitan.NewSignal(
		"prism.picker.parse.failed",
		"Color string parse failed",
	)
)

// Interaction lifecycle signals.
var (
	// PickerDragStarted is emitted when an interaction begins.
	PickerDragStarted = capitan.NewSignal(
		"prism.picker.drag.started",
		"Interaction started",
	)

	// PickerDragEnded is emitted when an interaction ends and its settle
	// window is armed.
	PickerDragEnded = capitan.NewSignal(
		"prism.picker.drag.ended",
		"Interaction ended, settle window armed",
	)

	// PickerSyncSuppressed is emitted when an external value write is
	// ignored because an interaction is in progress.
	PickerSyncSuppressed = capitan.NewSignal(
		"prism.picker.sync.suppressed",
		"External write suppressed during interaction",
	)

	// PickerFormatChanged is emitted when the sticky output format changes.
	PickerFormatChanged = capitan.NewSignal(
		"prism.picker.format.changed",
		"Output format changed",
	)

	// PickerEyeDropperFailed is emitted when the eye-dropper capability
	// fails or is cancelled. The failure is not surfaced to the caller.
	PickerEyeDropperFailed = capitan.NewSignal(
		"prism.picker.eyedropper.failed",
		"Eye-dropper pick failed or cancelled",
	)

	// PickerSwatchSelected is emitted when a swatch is clicked.
	PickerSwatchSelected = capitan.NewSignal(
		"prism.picker.swatch.selected",
		"Swatch selected",
	)
)

// Palette watcher signals.
var (
	// PaletteWatchStarted is emitted when a PaletteWatcher begins watching.
	PaletteWatchStarted = capitan.NewSignal(
		"prism.palette.watch.started",
		"Palette watching started",
	)

	// PaletteWatchStopped is emitted when a PaletteWatcher stops watching.
	PaletteWatchStopped = capitan.NewSignal(
		"prism.palette.watch.stopped",
		"Palette watching stopped",
	)

	// PaletteChangeReceived is emitted when raw palette data is received.
	PaletteChangeReceived = capitan.NewSignal(
		"prism.palette.change.received",
		"Raw palette change received from watcher",
	)

	// PaletteDecodeFailed is emitted when palette data cannot be decoded.
	PaletteDecodeFailed = capitan.NewSignal(
		"prism.palette.decode.failed",
		"Palette decode failed",
	)

	// PaletteValidationFailed is emitted when a decoded palette fails
	// validation.
	PaletteValidationFailed = capitan.NewSignal(
		"prism.palette.validation.failed",
		"Palette validation failed",
	)

	// PaletteApplyFailed is emitted when the apply callback fails.
	PaletteApplyFailed = capitan.NewSignal(
		"prism.palette.apply.failed",
		"Palette apply callback failed",
	)

	// PaletteApplied is emitted when a palette is successfully applied.
	PaletteApplied = capitan.NewSignal(
		"prism.palette.applied",
		"Palette applied successfully",
	)

	// PaletteStateChanged is emitted when a PaletteWatcher transitions
	// between states.
	PaletteStateChanged = capitan.NewSignal(
		"prism.palette.state.changed",
		"Palette watcher state transition",
	)
)
