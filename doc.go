// Package prism provides the state controller behind an interactive color
// picker.
//
// The core type is Picker, which holds a color in multiple textual
// representations (hex, rgb, hsl, each with an optional alpha variant),
// derives bounded numeric channel editors from it, and wires the
// interaction verbs of sub-controls — hue slider, saturation/value
// surface, alpha slider, numeric channel inputs, eye-dropper, swatches —
// into a single canonical value with controlled/uncontrolled semantics.
//
// # Canonical value and working representation
//
// The canonical value is a color string, always normalized to the active
// output Format. Live interactions update an internal HSVA working
// representation; every merge derives a fresh canonical string:
//
//	Interaction → HSVA merge → stringify(Format) → canonical value → OnChange
//
// The reverse path — an external write overwriting the working
// representation — runs only while no interaction is in progress. Between
// ChangeStart and the end of the settle window after ChangeEnd, external
// writes are ignored so synchronization never fights the pointer.
//
// # Controlled and uncontrolled
//
// A Picker constructed with WithValue is controlled: the caller owns the
// canonical value, internal writes only notify the change callback, and
// accepted values are pushed back via SyncValue. Without WithValue the
// Picker owns its value, seeded by WithDefaultValue or the fallback color.
// The mode is decided once and fixed for the Picker's lifetime.
//
// # Failure policy
//
// No operation panics or surfaces an error. Malformed color strings leave
// the prior value unchanged, eye-dropper failures and cancellations are
// swallowed, and non-numeric channel input coerces to zero. Failures are
// observable through capitan signals.
//
// # Swatch palettes
//
// PaletteWatcher loads swatch palettes from external sources through the
// Watcher interface, decoding YAML and validating each swatch color. The
// core package provides ChannelWatcher for testing and FileWatcher
// (fsnotify) for palette files; failed updates retain the previous valid
// palette.
//
// # Example
//
//	picker := prism.New(
//	    func(value string) { render(value) },
//	    prism.WithDefaultValue("#336699"),
//	    prism.WithOnChangeEnd(func(value string) { save(value) }),
//	)
//
//	hue := picker.HueSlider()
//	hue.OnChangeStart(ctx, 210)
//	hue.OnChange(ctx, 215)
//	hue.OnChangeEnd(ctx, 215)
package prism
