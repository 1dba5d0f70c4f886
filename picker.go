package prism

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// DefaultSettleDelay is the quiet period after an interaction ends before
// external value synchronization resumes.
const DefaultSettleDelay = 200 * time.Millisecond

// defaultFallback seeds the picker when no value, default or fallback is
// supplied and backstops failed conversions.
const defaultFallback = "#ffffff"

// ChangeFunc receives a canonical color value.
type ChangeFunc func(value string)

// SwatchFunc receives the color of a clicked swatch.
type SwatchFunc func(color string)

// Patch is a partial update to the working HSVA representation. Nil fields
// keep their previous value.
type Patch struct {
	H, S, V, A *float64
}

// Float returns a pointer to v, for building patches.
func Float(v float64) *float64 {
	return &v
}

// apply merges the patch over a previous HSVA value.
func (p Patch) apply(c HSVA) HSVA {
	if p.H != nil {
		c.H = *p.H
	}
	if p.S != nil {
		c.S = *p.S
	}
	if p.V != nil {
		c.V = *p.V
	}
	if p.A != nil {
		c.A = *p.A
	}
	return c
}

// config holds construction options for a Picker.
type config struct {
	value         string
	hasValue      bool
	defaultValue  string
	fallback      string
	format        Format
	hasFormat     bool
	withAlpha     bool
	settleDelay   time.Duration
	clock         clockz.Clock
	dropper       EyeDropper
	form          FormControl
	name          string
	onChangeStart ChangeFunc
	onChangeEnd   ChangeFunc
	onSwatchClick SwatchFunc
}

// Option configures a Picker.
type Option func(*config)

// WithValue puts the Picker in controlled mode with the given external
// value. The mode is fixed for the Picker's lifetime: internal writes only
// notify the change callback and the caller pushes accepted values back via
// SyncValue.
func WithValue(value string) Option {
	return func(c *config) {
		c.value = value
		c.hasValue = true
	}
}

// WithDefaultValue seeds an uncontrolled Picker's initial value.
// Ignored in controlled mode.
func WithDefaultValue(value string) Option {
	return func(c *config) {
		c.defaultValue = value
	}
}

// WithFallback sets the value used when a color string fails to parse.
// Default: "#ffffff".
func WithFallback(value string) Option {
	return func(c *config) {
		c.fallback = value
	}
}

// WithFormat fixes the output format explicitly instead of inferring it
// from the initial value.
func WithFormat(f Format) Option {
	return func(c *config) {
		c.format = f
		c.hasFormat = true
	}
}

// WithAlpha forces the alpha channel into the channel projection even when
// the output format does not carry one. When the format is inferred rather
// than set explicitly, it is promoted to its alpha-carrying variant.
func WithAlpha() Option {
	return func(c *config) {
		c.withAlpha = true
	}
}

// WithSettleDelay overrides the settle window duration. Default: 200ms.
func WithSettleDelay(d time.Duration) Option {
	return func(c *config) {
		c.settleDelay = d
	}
}

// WithClock sets a custom clock for time operations.
// Use this with clockz.FakeClock for deterministic settle-window testing.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithEyeDropper supplies the screen-sampling capability used by PickColor.
func WithEyeDropper(d EyeDropper) Option {
	return func(c *config) {
		c.dropper = d
	}
}

// WithFormControl supplies form-control flags, propagated opaquely to the
// control descriptors.
func WithFormControl(f FormControl) Option {
	return func(c *config) {
		c.form = f
	}
}

// WithName sets the form name mirrored on the hidden input control.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithOnChangeStart sets the callback fired when an interaction starts.
func WithOnChangeStart(fn ChangeFunc) Option {
	return func(c *config) {
		c.onChangeStart = fn
	}
}

// WithOnChangeEnd sets the callback fired when a value is committed.
func WithOnChangeEnd(fn ChangeFunc) Option {
	return func(c *config) {
		c.onChangeEnd = fn
	}
}

// WithOnSwatchClick sets an additional callback fired before a swatch
// click is applied.
func WithOnSwatchClick(fn SwatchFunc) Option {
	return func(c *config) {
		c.onSwatchClick = fn
	}
}

// Picker is the state controller behind an interactive color picker. It
// holds one canonical value string, a live HSVA working representation for
// high-frequency slider updates, and a sticky output format, and wires the
// interaction verbs of its sub-controls into a single write path.
//
// All mutations are synchronous; the only asynchronous operation is the
// eye-dropper pick, which suspends its caller until the capability
// resolves. A Picker is safe for concurrent use.
type Picker struct {
	mu sync.Mutex

	controlled  bool
	value       string
	format      Format // sticky, not a recompute trigger
	alphaForced bool
	fallback    string

	hsva     HSVA
	state    InteractionState
	settleAt time.Time

	settleDelay time.Duration
	clock       clockz.Clock
	dropper     EyeDropper
	form        FormControl
	name        string

	onChange      ChangeFunc
	onChangeStart ChangeFunc
	onChangeEnd   ChangeFunc
	onSwatchClick SwatchFunc
}

// New creates a Picker. The presence of WithValue decides controlled mode
// once, for the Picker's lifetime. The initial format is inferred from the
// initial value unless WithFormat is given; the working representation is
// seeded by converting the initial value, falling back to the fallback
// color when it does not parse.
//
// Example:
//
//	picker := prism.New(
//	    func(value string) { view.SetColor(value) },
//	    prism.WithDefaultValue("hsla(0, 0%, 100%, 0.5)"),
//	    prism.WithAlpha(),
//	)
func New(onChange ChangeFunc, opts ...Option) *Picker {
	cfg := &config{
		fallback:    defaultFallback,
		settleDelay: DefaultSettleDelay,
		clock:       clockz.RealClock,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.fallback == "" {
		cfg.fallback = defaultFallback
	}

	initial := cfg.value
	if !cfg.hasValue {
		initial = cfg.defaultValue
		if initial == "" {
			initial = cfg.fallback
		}
	}

	format := cfg.format
	if !cfg.hasFormat {
		format = DetectFormat(initial)
		if cfg.withAlpha {
			format = format.WithAlpha()
		}
	}

	hsva, ok := ParseHSVA(initial)
	if !ok {
		if hsva, ok = ParseHSVA(cfg.fallback); !ok {
			hsva = HSVA{V: 1, A: 1} // opaque white
		}
	}

	return &Picker{
		controlled:    cfg.hasValue,
		value:         initial,
		format:        format,
		alphaForced:   cfg.withAlpha,
		fallback:      cfg.fallback,
		hsva:          hsva,
		state:         StateIdle,
		settleDelay:   cfg.settleDelay,
		clock:         cfg.clock,
		dropper:       cfg.dropper,
		form:          cfg.form,
		name:          cfg.name,
		onChange:      onChange,
		onChangeStart: cfg.onChangeStart,
		onChangeEnd:   cfg.onChangeEnd,
		onSwatchClick: cfg.onSwatchClick,
	}
}

// Value returns the canonical color value: the last synced external value
// in controlled mode, the internally owned value otherwise.
func (p *Picker) Value() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// Format returns the active output format.
func (p *Picker) Format() Format {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.format
}

// HSVA returns the current working representation.
func (p *Picker) HSVA() HSVA {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hsva
}

// State returns the current interaction state, decaying Settling to Idle
// once the settle window has elapsed.
func (p *Picker) State() InteractionState {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.refreshStateLocked()
	return p.state
}

// Dragging reports whether external synchronization is currently
// suppressed, i.e. the interval between ChangeStart and the end of the
// settle window after the matching ChangeEnd.
func (p *Picker) Dragging() bool {
	return p.State() != StateIdle
}

// Channels derives the channel descriptors for the current canonical
// value. Alpha is projected when the active format carries it or WithAlpha
// forced it, so a format change adds or drops the channel. The result is
// recomputed fresh on every call and never mutates the working
// representation.
func (p *Picker) Channels() []Channel {
	p.mu.Lock()
	value, fallback := p.value, p.fallback
	withAlpha := p.alphaForced || p.format.HasAlpha()
	p.mu.Unlock()
	return Channels(value, withAlpha, fallback)
}

// Change merges a partial HSVA patch into the working representation and
// derives a new canonical value in the active format. This is the live,
// high-frequency slider path; it does not imply a commit.
func (p *Picker) Change(ctx context.Context, patch Patch) {
	p.mu.Lock()
	p.hsva = patch.apply(p.hsva)
	next := p.hsva.Format(p.format)
	fire := p.writeLocked(next)
	p.mu.Unlock()

	if next != "" {
		capitan.Emit(ctx, PickerValueChanged, KeyValue.Field(next))
	}
	if fire != nil {
		fire(next)
	}
}

// ChangeStart marks the beginning of an interaction. It cancels any
// pending settle window, computes the canonical value the interaction
// starts from (the patch merged over the current working representation)
// and emits it through the start callback. The canonical store is not
// touched.
func (p *Picker) ChangeStart(ctx context.Context, patch Patch) {
	p.mu.Lock()
	p.state = StateDragging
	p.settleAt = time.Time{}
	next := patch.apply(p.hsva).Format(p.format)
	fire := p.onChangeStart
	p.mu.Unlock()

	capitan.Emit(ctx, PickerDragStarted,
		KeyValue.Field(next),
		KeySettleDelay.Field(p.settleDelay),
	)
	if fire != nil && next != "" {
		fire(next)
	}
}

// ChangeEnd marks the end of an interaction. It computes the final
// canonical value from the patch merged over the current working
// representation, arms the settle window and emits the value through the
// end callback. Rapid start/end sequences keep the window open; it closes
// only after a quiet period following the last end.
func (p *Picker) ChangeEnd(ctx context.Context, patch Patch) {
	p.mu.Lock()
	next := patch.apply(p.hsva).Format(p.format)
	p.armSettleLocked()
	fire := p.onChangeEnd
	p.mu.Unlock()

	capitan.Emit(ctx, PickerDragEnded,
		KeyValue.Field(next),
		KeySettleDelay.Field(p.settleDelay),
	)
	if fire != nil && next != "" {
		fire(next)
	}
}

// ChangeEndValue is ChangeEnd for sub-controls that produce a color string
// instead of an HSVA patch. The string is normalized into the active
// format; if it does not parse the end callback is skipped but the settle
// window is still armed, since the interaction did end.
func (p *Picker) ChangeEndValue(ctx context.Context, value string) {
	p.mu.Lock()
	var next string
	if c, ok := ParseHSVA(value); ok {
		next = c.Format(p.format)
	}
	p.armSettleLocked()
	fire := p.onChangeEnd
	p.mu.Unlock()

	if next == "" {
		capitan.Emit(ctx, PickerParseFailed, KeyValue.Field(value))
		return
	}
	capitan.Emit(ctx, PickerDragEnded,
		KeyValue.Field(next),
		KeySettleDelay.Field(p.settleDelay),
	)
	if fire != nil {
		fire(next)
	}
}

// SyncValue pushes an externally controlled value into the Picker. The
// working representation is overwritten only when no interaction is in
// progress; mid-drag writes are ignored entirely to avoid feedback jitter.
// No change callback fires: the value already belongs to the caller.
func (p *Picker) SyncValue(ctx context.Context, next string) {
	if next == "" {
		return
	}

	p.mu.Lock()
	p.refreshStateLocked()
	if p.state != StateIdle {
		state := p.state
		p.mu.Unlock()
		capitan.Emit(ctx, PickerSyncSuppressed,
			KeyValue.Field(next),
			KeyState.Field(state.String()),
		)
		return
	}

	p.value = next
	c, ok := ParseHSVA(next)
	if ok {
		p.hsva = c
	}
	p.mu.Unlock()

	if !ok {
		capitan.Emit(ctx, PickerParseFailed, KeyValue.Field(next))
	}
}

// SetFormat updates the sticky output format and re-stringifies the
// current canonical value into it, committing the result through the
// normal value-changed path. Format changes are exempt from start/end
// interaction semantics.
func (p *Picker) SetFormat(ctx context.Context, f Format) {
	p.mu.Lock()
	old := p.format
	p.format = f

	var next string
	if c, ok := ParseHSVA(p.value); ok {
		p.hsva = c
		next = c.Format(f)
	}
	fire := p.writeLocked(next)
	p.mu.Unlock()

	capitan.Emit(ctx, PickerFormatChanged,
		KeyOldFormat.Field(old.String()),
		KeyFormat.Field(f.String()),
	)
	if next != "" {
		capitan.Emit(ctx, PickerValueChanged, KeyValue.Field(next))
		capitan.Emit(ctx, PickerValueCommitted, KeyValue.Field(next))
	}
	if fire != nil {
		fire(next)
	}
}

// ChannelChange applies a free-text numeric edit to one channel. The text
// is parsed (NaN coerces to 0) and floored; percent channels (s, l, a) are
// rescaled by /100. The edit merges into the family the current canonical
// value belongs to and is re-stringified in the active format. Numeric
// inputs have no continuous drag phase, so the live update and the commit
// both happen synchronously. RGB components are deliberately passed
// through unclamped; the stringifier clamps at render time.
func (p *Picker) ChannelChange(ctx context.Context, space Space, text string) {
	n, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(n) {
		n = 0
	}
	n = math.Floor(n)
	switch space {
	case SpaceSaturation, SpaceLightness, SpaceAlpha:
		n /= 100
	}

	p.mu.Lock()
	var next string
	if hslFamily(p.value) {
		c, ok := ParseHSLA(p.value)
		if !ok {
			c, _ = ParseHSLA(p.fallback)
		}
		switch space {
		case SpaceHue:
			c.H = n
		case SpaceSaturation:
			c.S = n
		case SpaceLightness:
			c.L = n
		case SpaceAlpha:
			c.A = n
		}
		next = c.Format(p.format)
	} else {
		c, ok := ParseRGBA(p.value)
		if !ok {
			c, _ = ParseRGBA(p.fallback)
		}
		switch space {
		case SpaceRed:
			c.R = n
		case SpaceGreen:
			c.G = n
		case SpaceBlue:
			c.B = n
		case SpaceAlpha:
			c.A = n
		}
		next = c.Format(p.format)
	}

	fire := p.writeLocked(next)
	if c, ok := ParseHSVA(next); ok {
		p.hsva = c
	}
	fireEnd := p.onChangeEnd
	p.mu.Unlock()

	if next == "" {
		return
	}
	capitan.Emit(ctx, PickerValueChanged,
		KeyValue.Field(next),
		KeyChannel.Field(string(space)),
	)
	capitan.Emit(ctx, PickerValueCommitted, KeyValue.Field(next))
	if fire != nil {
		fire(next)
	}
	if fireEnd != nil {
		fireEnd(next)
	}
}

// PickColor opens the eye-dropper capability and commits the picked color.
// Failure, cancellation and empty results are swallowed: no state changes
// and no error reaches the caller.
func (p *Picker) PickColor(ctx context.Context) {
	p.mu.Lock()
	dropper := p.dropper
	p.mu.Unlock()
	if dropper == nil {
		return
	}

	hex, err := dropper.Open(ctx)
	if err != nil {
		capitan.Emit(ctx, PickerEyeDropperFailed, KeyError.Field(err.Error()))
		return
	}
	if hex == "" {
		capitan.Emit(ctx, PickerEyeDropperFailed, KeyError.Field("empty result"))
		return
	}
	p.commit(ctx, hex)
}

// SelectSwatch applies a swatch click: the optional swatch callback fires
// first, then the color is committed. Empty colors are ignored.
func (p *Picker) SelectSwatch(ctx context.Context, color string) {
	if color == "" {
		return
	}

	p.mu.Lock()
	fire := p.onSwatchClick
	p.mu.Unlock()

	capitan.Emit(ctx, PickerSwatchSelected, KeyValue.Field(color))
	if fire != nil {
		fire(color)
	}
	p.commit(ctx, color)
}

// commit normalizes a raw color string into the active format and performs
// both the live update and the commit: the canonical store is written, the
// working representation resynced, and both the change and end callbacks
// fire once each. Parse failures keep the prior value.
func (p *Picker) commit(ctx context.Context, raw string) {
	p.mu.Lock()
	var next string
	c, ok := ParseHSVA(raw)
	if ok {
		next = c.Format(p.format)
		p.hsva = c
	}
	fire := p.writeLocked(next)
	fireEnd := p.onChangeEnd
	p.mu.Unlock()

	if !ok || next == "" {
		capitan.Emit(ctx, PickerParseFailed, KeyValue.Field(raw))
		return
	}
	capitan.Emit(ctx, PickerValueChanged, KeyValue.Field(next))
	capitan.Emit(ctx, PickerValueCommitted, KeyValue.Field(next))
	if fire != nil {
		fire(next)
	}
	if fireEnd != nil {
		fireEnd(next)
	}
}

// writeLocked stores a derived canonical value and returns the change
// callback to fire, or nil. Empty values no-op: failed conversions never
// propagate. In controlled mode the store is not touched; only the caller
// is notified.
func (p *Picker) writeLocked(next string) ChangeFunc {
	if next == "" {
		return nil
	}
	if !p.controlled {
		p.value = next
	}
	return p.onChange
}

// armSettleLocked opens (or extends) the settle window. The window is a
// deadline rather than a timer goroutine: each end pushes it out, and the
// state decays lazily once a read observes the deadline passed.
func (p *Picker) armSettleLocked() {
	p.state = StateSettling
	p.settleAt = p.clock.Now().Add(p.settleDelay)
}

// refreshStateLocked decays Settling to Idle once the deadline has passed.
func (p *Picker) refreshStateLocked() {
	if p.state == StateSettling && !p.clock.Now().Before(p.settleAt) {
		p.state = StateIdle
		p.settleAt = time.Time{}
	}
}
