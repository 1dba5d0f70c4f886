package prism

import "context"

// FormControl carries form-level flags supplied by an enclosing form
// context. The Picker does not reinterpret them; they are propagated
// opaquely onto the control descriptors.
type FormControl struct {
	Disabled bool
	ReadOnly bool
	Required bool
	Invalid  bool
}

// SliderHandler receives a one-dimensional slider position.
type SliderHandler func(ctx context.Context, v float64)

// AreaHandler receives a saturation/value surface position.
type AreaHandler func(ctx context.Context, s, v float64)

// ClickHandler receives a click.
type ClickHandler func(ctx context.Context)

// TextHandler receives free-form text input.
type TextHandler func(ctx context.Context, text string)

// ContainerControl describes the picker container.
type ContainerControl struct {
	Value string
	FormControl
}

// InputControl describes the hidden form input mirroring the canonical
// value for form submission.
type InputControl struct {
	Name     string
	Value    string
	Disabled bool
	Required bool
}

// SliderControl describes a one-dimensional slider (hue or alpha).
// Handlers drive the interaction lifecycle of the owning Picker.
type SliderControl struct {
	Min, Max, Step float64
	Value          float64
	Disabled       bool
	OnChange       SliderHandler
	OnChangeStart  SliderHandler
	OnChangeEnd    SliderHandler
}

// Compose merges caller overrides into the control. Non-zero caller fields
// win; handlers are chained so both the internal handler and the caller's
// run, internal first.
func (c SliderControl) Compose(o SliderControl) SliderControl {
	if o.Min != 0 {
		c.Min = o.Min
	}
	if o.Max != 0 {
		c.Max = o.Max
	}
	if o.Step != 0 {
		c.Step = o.Step
	}
	if o.Value != 0 {
		c.Value = o.Value
	}
	if o.Disabled {
		c.Disabled = true
	}
	c.OnChange = chainSlider(c.OnChange, o.OnChange)
	c.OnChangeStart = chainSlider(c.OnChangeStart, o.OnChangeStart)
	c.OnChangeEnd = chainSlider(c.OnChangeEnd, o.OnChangeEnd)
	return c
}

// AreaControl describes the two-dimensional saturation/value surface.
// Hue is included so the surface can render its gradient.
type AreaControl struct {
	Hue           float64
	Saturation    float64
	Value         float64
	Disabled      bool
	OnChange      AreaHandler
	OnChangeStart AreaHandler
	OnChangeEnd   AreaHandler
}

// Compose merges caller overrides into the control; handlers are chained.
func (c AreaControl) Compose(o AreaControl) AreaControl {
	if o.Disabled {
		c.Disabled = true
	}
	c.OnChange = chainArea(c.OnChange, o.OnChange)
	c.OnChangeStart = chainArea(c.OnChangeStart, o.OnChangeStart)
	c.OnChangeEnd = chainArea(c.OnChangeEnd, o.OnChangeEnd)
	return c
}

// ChannelInputControl describes one numeric channel editor.
type ChannelInputControl struct {
	Label    string
	Value    float64
	Min, Max float64
	Disabled bool
	ReadOnly bool
	OnChange TextHandler
}

// Compose merges caller overrides into the control; the change handler is
// chained.
func (c ChannelInputControl) Compose(o ChannelInputControl) ChannelInputControl {
	if o.Label != "" {
		c.Label = o.Label
	}
	if o.Disabled {
		c.Disabled = true
	}
	if o.ReadOnly {
		c.ReadOnly = true
	}
	c.OnChange = chainText(c.OnChange, o.OnChange)
	return c
}

// ButtonControl describes a click-only control (eye-dropper trigger).
type ButtonControl struct {
	Disabled bool
	OnClick  ClickHandler
}

// Compose merges caller overrides into the control; the click handler is
// chained.
func (c ButtonControl) Compose(o ButtonControl) ButtonControl {
	if o.Disabled {
		c.Disabled = true
	}
	c.OnClick = chainClick(c.OnClick, o.OnClick)
	return c
}

// SwatchControl describes one swatch button.
type SwatchControl struct {
	Color    string
	Selected bool
	Disabled bool
	OnClick  ClickHandler
}

// Compose merges caller overrides into the control; the click handler is
// chained.
func (c SwatchControl) Compose(o SwatchControl) SwatchControl {
	if o.Disabled {
		c.Disabled = true
	}
	c.OnClick = chainClick(c.OnClick, o.OnClick)
	return c
}

// Container returns the container descriptor.
func (p *Picker) Container() ContainerControl {
	return ContainerControl{
		Value:       p.Value(),
		FormControl: p.form,
	}
}

// HiddenInput returns the hidden form input mirroring the canonical value.
func (p *Picker) HiddenInput() InputControl {
	return InputControl{
		Name:     p.name,
		Value:    p.Value(),
		Disabled: p.form.Disabled,
		Required: p.form.Required,
	}
}

// HueSlider returns the hue slider wired into the interaction lifecycle.
func (p *Picker) HueSlider() SliderControl {
	return SliderControl{
		Min:      0,
		Max:      360,
		Step:     1,
		Value:    p.HSVA().H,
		Disabled: p.interactionDisabled(),
		OnChange: func(ctx context.Context, v float64) {
			p.Change(ctx, Patch{H: Float(v)})
		},
		OnChangeStart: func(ctx context.Context, v float64) {
			p.ChangeStart(ctx, Patch{H: Float(v)})
		},
		OnChangeEnd: func(ctx context.Context, v float64) {
			p.ChangeEnd(ctx, Patch{H: Float(v)})
		},
	}
}

// AlphaSlider returns the alpha slider wired into the interaction
// lifecycle.
func (p *Picker) AlphaSlider() SliderControl {
	return SliderControl{
		Min:      0,
		Max:      1,
		Step:     0.01,
		Value:    p.HSVA().A,
		Disabled: p.interactionDisabled(),
		OnChange: func(ctx context.Context, v float64) {
			p.Change(ctx, Patch{A: Float(v)})
		},
		OnChangeStart: func(ctx context.Context, v float64) {
			p.ChangeStart(ctx, Patch{A: Float(v)})
		},
		OnChangeEnd: func(ctx context.Context, v float64) {
			p.ChangeEnd(ctx, Patch{A: Float(v)})
		},
	}
}

// Area returns the saturation/value surface wired into the interaction
// lifecycle.
func (p *Picker) Area() AreaControl {
	hsva := p.HSVA()
	return AreaControl{
		Hue:        hsva.H,
		Saturation: hsva.S,
		Value:      hsva.V,
		Disabled:   p.interactionDisabled(),
		OnChange: func(ctx context.Context, s, v float64) {
			p.Change(ctx, Patch{S: Float(s), V: Float(v)})
		},
		OnChangeStart: func(ctx context.Context, s, v float64) {
			p.ChangeStart(ctx, Patch{S: Float(s), V: Float(v)})
		},
		OnChangeEnd: func(ctx context.Context, s, v float64) {
			p.ChangeEnd(ctx, Patch{S: Float(s), V: Float(v)})
		},
	}
}

// ChannelInput returns the numeric editor for one channel descriptor.
func (p *Picker) ChannelInput(ch Channel) ChannelInputControl {
	space := ch.Space
	return ChannelInputControl{
		Label:    ch.Label,
		Value:    ch.Value,
		Min:      ch.Min,
		Max:      ch.Max,
		Disabled: p.form.Disabled,
		ReadOnly: p.form.ReadOnly,
		OnChange: func(ctx context.Context, text string) {
			p.ChannelChange(ctx, space, text)
		},
	}
}

// EyeDropperButton returns the eye-dropper trigger. The button is disabled
// when no capability was supplied.
func (p *Picker) EyeDropperButton() ButtonControl {
	return ButtonControl{
		Disabled: p.interactionDisabled() || p.dropper == nil,
		OnClick: func(ctx context.Context) {
			p.PickColor(ctx)
		},
	}
}

// SwatchButton returns the control for one swatch color.
func (p *Picker) SwatchButton(color string) SwatchControl {
	return SwatchControl{
		Color:    color,
		Selected: color != "" && color == p.Value(),
		Disabled: p.interactionDisabled(),
		OnClick: func(ctx context.Context) {
			p.SelectSwatch(ctx, color)
		},
	}
}

func (p *Picker) interactionDisabled() bool {
	return p.form.Disabled || p.form.ReadOnly
}

func chainSlider(a, b SliderHandler) SliderHandler {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, v float64) {
		a(ctx, v)
		b(ctx, v)
	}
}

func chainArea(a, b AreaHandler) AreaHandler {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, s, v float64) {
		a(ctx, s, v)
		b(ctx, s, v)
	}
}

func chainClick(a, b ClickHandler) ClickHandler {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context) {
		a(ctx)
		b(ctx)
	}
}

func chainText(a, b TextHandler) TextHandler {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, text string) {
		a(ctx, text)
		b(ctx, text)
	}
}
