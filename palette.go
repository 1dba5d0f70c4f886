package prism

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
	"gopkg.in/yaml.v3"
)

// DefaultPaletteDebounce is the default debounce duration for palette
// change processing.
const DefaultPaletteDebounce = 100 * time.Millisecond

// validate is the shared validator instance. The "color" rule accepts any
// string the picker's own parser accepts.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
		_, _, ok := parseColor(fl.Field().String())
		return ok
	})
	return v
}

// Swatch is one preset color offered by the picker.
type Swatch struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color" validate:"required,color"`
}

// Palette is a named collection of swatches, typically loaded from a
// palette file.
type Palette struct {
	Name     string   `yaml:"name"`
	Swatches []Swatch `yaml:"swatches" validate:"required,dive"`
}

// PaletteWatcher watches a palette source for changes, decodes and
// validates the data, and delivers it to application code. Failed updates
// retain the previous valid palette.
type PaletteWatcher struct {
	watcher  Watcher
	callback func(Palette) error
	debounce time.Duration
	syncMode bool
	clock    clockz.Clock

	state     atomic.Int32
	current   atomic.Pointer[Palette]
	lastError atomic.Pointer[error]

	mu      sync.Mutex
	started bool

	// For sync mode: channel to receive changes
	changes <-chan []byte
}

// NewPaletteWatcher creates a PaletteWatcher for a single palette source.
//
// The watcher emits raw bytes when the source changes. Bytes are decoded
// as YAML and validated; on success the callback receives the
// ready-to-use palette.
//
// Example:
//
//	watcher := prism.NewPaletteWatcher(
//	    prism.NewFileWatcher("swatches.yaml"),
//	    func(p prism.Palette) error {
//	        view.SetSwatches(p.Swatches)
//	        return nil
//	    },
//	).Debounce(200 * time.Millisecond)
func NewPaletteWatcher(watcher Watcher, callback func(Palette) error) *PaletteWatcher {
	w := &PaletteWatcher{
		watcher:  watcher,
		callback: callback,
		debounce: DefaultPaletteDebounce,
		clock:    clockz.RealClock,
	}
	w.state.Store(int32(PaletteLoading))
	return w
}

// Debounce sets the debounce duration for change processing. Changes
// arriving within this duration are coalesced into a single update.
// Default: 100ms. Must be called before Start().
func (w *PaletteWatcher) Debounce(d time.Duration) *PaletteWatcher {
	w.debounce = d
	return w
}

// Clock sets a custom clock for time operations.
// Use this with clockz.FakeClock for deterministic debounce testing.
// Must be called before Start().
func (w *PaletteWatcher) Clock(clock clockz.Clock) *PaletteWatcher {
	w.clock = clock
	return w
}

// SyncMode enables synchronous processing for testing. In sync mode,
// changes are processed via Process() without debouncing or async
// goroutines, making tests deterministic. Must be called before Start().
func (w *PaletteWatcher) SyncMode() *PaletteWatcher {
	w.syncMode = true
	return w
}

// State returns the current state of the watcher.
func (w *PaletteWatcher) State() PaletteState {
	return PaletteState(w.state.Load())
}

// Current returns the current valid palette and true, or the zero value
// and false if no valid palette has been applied.
func (w *PaletteWatcher) Current() (Palette, bool) {
	ptr := w.current.Load()
	if ptr == nil {
		return Palette{}, false
	}
	return *ptr, true
}

// LastError returns the last error encountered, or nil.
func (w *PaletteWatcher) LastError() error {
	ptr := w.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// Start begins watching for changes. It blocks until the first palette is
// processed (success or failure), then continues watching asynchronously.
//
// If the initial palette fails, Start returns the error but continues
// watching in the background for valid updates.
//
// In sync mode, Start only processes the initial value. Use Process() to
// manually trigger processing of subsequent values.
//
// Start can only be called once. Subsequent calls return an error.
func (w *PaletteWatcher) Start(ctx context.Context) error {
	if err := w.begin(); err != nil {
		return err
	}

	capitan.Emit(ctx, PaletteWatchStarted,
		KeyDebounce.Field(w.debounce),
	)

	changes, err := w.watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start palette watcher: %w", err)
	}

	// The first palette loads synchronously so callers can render swatches
	// as soon as Start returns.
	raw, err := w.first(ctx, changes)
	if err != nil {
		return err
	}
	capitan.Emit(ctx, PaletteChangeReceived)
	initialErr := w.process(ctx, raw)

	if w.syncMode {
		w.changes = changes
		return initialErr
	}

	go w.run(ctx, changes)
	return initialErr
}

// begin marks the watcher started, rejecting a second Start.
func (w *PaletteWatcher) begin() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return fmt.Errorf("palette watcher already started")
	}
	w.started = true
	return nil
}

// first blocks for the initial palette bytes.
func (w *PaletteWatcher) first(ctx context.Context, changes <-chan []byte) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case raw, ok := <-changes:
		if !ok {
			return nil, fmt.Errorf("palette source closed before the initial palette")
		}
		return raw, nil
	}
}

// Process reads and applies the next pending palette, if any. Only
// available in sync mode, for deterministic testing. Returns false when
// nothing is queued or the source has closed.
func (w *PaletteWatcher) Process(ctx context.Context) bool {
	if !w.syncMode {
		return false
	}

	select {
	case raw, ok := <-w.changes:
		if !ok {
			return false
		}
		capitan.Emit(ctx, PaletteChangeReceived)
		_ = w.process(ctx, raw) //nolint:errcheck // Errors stored via setError
		return true
	default:
		return false
	}
}

// process decodes, validates, and delivers a single palette update.
func (w *PaletteWatcher) process(ctx context.Context, raw []byte) error {
	oldState := w.State()

	var palette Palette
	if err := yaml.Unmarshal(raw, &palette); err != nil {
		w.setError(err)
		w.transitionState(ctx, oldState, w.failureState())
		capitan.Emit(ctx, PaletteDecodeFailed,
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("palette decode failed: %w", err)
	}

	if err := validate.Struct(palette); err != nil {
		w.setError(err)
		w.transitionState(ctx, oldState, w.failureState())
		capitan.Emit(ctx, PaletteValidationFailed,
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("palette validation failed: %w", err)
	}

	if err := w.callback(palette); err != nil {
		w.setError(err)
		w.transitionState(ctx, oldState, w.failureState())
		capitan.Emit(ctx, PaletteApplyFailed,
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("palette apply failed: %w", err)
	}

	// Success
	w.current.Store(&palette)
	w.lastError.Store(nil)
	w.transitionState(ctx, oldState, PaletteHealthy)
	capitan.Emit(ctx, PaletteApplied,
		KeySwatchCount.Field(len(palette.Swatches)),
	)

	return nil
}

// failureState returns the appropriate failure state based on whether a
// valid palette has ever been applied.
func (w *PaletteWatcher) failureState() PaletteState {
	if w.current.Load() == nil {
		return PaletteEmpty
	}
	return PaletteDegraded
}

// transitionState updates the state and emits a state change event if
// changed.
func (w *PaletteWatcher) transitionState(ctx context.Context, oldState, newState PaletteState) {
	if oldState == newState {
		return
	}
	w.state.Store(int32(newState))
	capitan.Emit(ctx, PaletteStateChanged,
		KeyOldState.Field(oldState.String()),
		KeyNewState.Field(newState.String()),
	)
}

// setError stores an error atomically.
func (w *PaletteWatcher) setError(err error) {
	e := err
	w.lastError.Store(&e)
}

// run drains palette changes, coalescing bursts within the debounce window
// so a rapid series of saves applies only the final contents.
func (w *PaletteWatcher) run(ctx context.Context, changes <-chan []byte) {
	defer func() {
		capitan.Emit(ctx, PaletteWatchStopped,
			KeyState.Field(w.State().String()),
		)
	}()

	var (
		timer   clockz.Timer
		pending []byte
	)

	arm := func() {
		if timer == nil {
			timer = w.clock.NewTimer(w.debounce)
			return
		}
		if !timer.Stop() {
			select {
			case <-timer.C():
			default:
			}
		}
		timer.Reset(w.debounce)
	}

	for {
		// The quiet-period channel exists only while a change is pending;
		// a fired timer with nothing behind it is ignored.
		var quiet <-chan time.Time
		if pending != nil {
			quiet = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case raw, ok := <-changes:
			if !ok {
				if pending != nil {
					_ = w.process(ctx, pending) //nolint:errcheck // Errors stored via setError
				}
				return
			}
			capitan.Emit(ctx, PaletteChangeReceived)
			pending = raw
			arm()

		case <-quiet:
			_ = w.process(ctx, pending) //nolint:errcheck // Errors stored via setError
			pending = nil
		}
	}
}
