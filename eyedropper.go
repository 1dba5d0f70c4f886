package prism

import "context"

// EyeDropper abstracts a platform screen-sampling capability. Open blocks
// until the user picks a color or cancels, returning the picked color as a
// hex string ("#rrggbb"). Implementations may return an error on failure
// or cancellation; the Picker swallows both.
type EyeDropper interface {
	Open(ctx context.Context) (string, error)
}

// EyeDropperFunc adapts a function to the EyeDropper interface.
type EyeDropperFunc func(ctx context.Context) (string, error)

// Open calls f.
func (f EyeDropperFunc) Open(ctx context.Context) (string, error) {
	return f(ctx)
}
