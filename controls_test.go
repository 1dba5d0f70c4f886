package prism

import (
	"context"
	"testing"
)

func TestHueSlider_DrivesPicker(t *testing.T) {
	ctx := context.Background()

	picker := New(nil, WithDefaultValue("#ff0000"))
	slider := picker.HueSlider()

	if slider.Min != 0 || slider.Max != 360 {
		t.Errorf("unexpected hue bounds: %+v", slider)
	}
	if slider.Value != 0 {
		t.Errorf("expected hue 0 for red, got %v", slider.Value)
	}

	slider.OnChangeStart(ctx, 120)
	if picker.State() != StateDragging {
		t.Errorf("expected dragging, got %s", picker.State())
	}

	slider.OnChange(ctx, 120)
	if picker.Value() != "#00ff00" {
		t.Errorf("expected #00ff00, got %q", picker.Value())
	}

	slider.OnChangeEnd(ctx, 120)
	if picker.State() != StateSettling {
		t.Errorf("expected settling, got %s", picker.State())
	}
}

func TestAlphaSlider_DrivesPicker(t *testing.T) {
	ctx := context.Background()

	picker := New(nil, WithDefaultValue("rgba(255, 0, 0, 1)"))
	slider := picker.AlphaSlider()

	if slider.Max != 1 || slider.Step != 0.01 {
		t.Errorf("unexpected alpha slider shape: %+v", slider)
	}

	slider.OnChange(ctx, 0.5)
	if picker.Value() != "rgba(255, 0, 0, 0.5)" {
		t.Errorf("expected rgba with alpha 0.5, got %q", picker.Value())
	}
}

func TestArea_DrivesPicker(t *testing.T) {
	ctx := context.Background()

	picker := New(nil, WithDefaultValue("#ff0000"))
	area := picker.Area()

	if area.Hue != 0 || area.Saturation != 1 || area.Value != 1 {
		t.Errorf("unexpected area position: %+v", area)
	}

	area.OnChange(ctx, 0, 1)
	if picker.Value() != "#ffffff" {
		t.Errorf("expected white at zero saturation, got %q", picker.Value())
	}
}

func TestChannelInput_DrivesPicker(t *testing.T) {
	ctx := context.Background()

	picker := New(nil, WithDefaultValue("rgb(255, 0, 0)"))

	channels := picker.Channels()
	input := picker.ChannelInput(channels[1])
	if input.Label != "G" || input.Max != 255 {
		t.Errorf("unexpected channel input: %+v", input)
	}

	input.OnChange(ctx, "128")
	if picker.Value() != "rgb(255, 128, 0)" {
		t.Errorf("expected green edited, got %q", picker.Value())
	}
}

func TestHiddenInput_MirrorsValue(t *testing.T) {
	picker := New(nil,
		WithDefaultValue("#336699"),
		WithName("accent"),
		WithFormControl(FormControl{Required: true}),
	)

	input := picker.HiddenInput()
	if input.Name != "accent" || input.Value != "#336699" {
		t.Errorf("unexpected hidden input: %+v", input)
	}
	if !input.Required || input.Disabled {
		t.Errorf("expected form flags propagated: %+v", input)
	}
}

func TestFormControl_DisablesInteraction(t *testing.T) {
	picker := New(nil,
		WithDefaultValue("#ff0000"),
		WithFormControl(FormControl{ReadOnly: true}),
	)

	if !picker.HueSlider().Disabled {
		t.Error("expected read-only form to disable the hue slider")
	}
	if !picker.Area().Disabled {
		t.Error("expected read-only form to disable the area")
	}
	if !picker.SwatchButton("#00ff00").Disabled {
		t.Error("expected read-only form to disable swatches")
	}
}

func TestEyeDropperButton_DisabledWithoutCapability(t *testing.T) {
	picker := New(nil, WithDefaultValue("#ff0000"))
	if !picker.EyeDropperButton().Disabled {
		t.Error("expected button disabled without a capability")
	}

	picker = New(nil,
		WithDefaultValue("#ff0000"),
		WithEyeDropper(EyeDropperFunc(func(_ context.Context) (string, error) {
			return "#000000", nil
		})),
	)
	button := picker.EyeDropperButton()
	if button.Disabled {
		t.Error("expected button enabled with a capability")
	}

	button.OnClick(context.Background())
	if picker.Value() != "#000000" {
		t.Errorf("expected click to pick, got %q", picker.Value())
	}
}

func TestSwatchButton_Selected(t *testing.T) {
	ctx := context.Background()

	picker := New(nil, WithDefaultValue("#ff0000"))

	if picker.SwatchButton("#00ff00").Selected {
		t.Error("expected non-matching swatch unselected")
	}
	if !picker.SwatchButton("#ff0000").Selected {
		t.Error("expected matching swatch selected")
	}

	picker.SwatchButton("#00ff00").OnClick(ctx)
	if !picker.SwatchButton("#00ff00").Selected {
		t.Error("expected swatch selected after click")
	}
}

func TestSliderControl_ComposeChainsHandlers(t *testing.T) {
	ctx := context.Background()

	var order []string
	base := SliderControl{
		Min: 0, Max: 360, Step: 1,
		OnChange: func(_ context.Context, v float64) {
			order = append(order, "internal")
		},
	}

	composed := base.Compose(SliderControl{
		Disabled: true,
		OnChange: func(_ context.Context, v float64) {
			order = append(order, "caller")
		},
	})

	if !composed.Disabled {
		t.Error("expected caller disabled flag to win")
	}
	if composed.Max != 360 {
		t.Errorf("expected zero caller fields ignored, got %v", composed.Max)
	}

	composed.OnChange(ctx, 10)
	if len(order) != 2 || order[0] != "internal" || order[1] != "caller" {
		t.Errorf("expected internal handler first, got %v", order)
	}
}

func TestSliderControl_ComposeNilHandlers(t *testing.T) {
	base := SliderControl{}
	composed := base.Compose(SliderControl{})
	if composed.OnChange != nil || composed.OnChangeEnd != nil {
		t.Error("expected nil handlers to stay nil")
	}
}

func TestButtonControl_ComposeChainsClick(t *testing.T) {
	var order []string
	base := ButtonControl{OnClick: func(_ context.Context) {
		order = append(order, "internal")
	}}

	composed := base.Compose(ButtonControl{OnClick: func(_ context.Context) {
		order = append(order, "caller")
	}})

	composed.OnClick(context.Background())
	if len(order) != 2 || order[0] != "internal" {
		t.Errorf("expected chained click, got %v", order)
	}
}

func TestChannelInputControl_ComposeOverrides(t *testing.T) {
	base := ChannelInputControl{Label: "R", Min: 0, Max: 255}
	composed := base.Compose(ChannelInputControl{Label: "Red", ReadOnly: true})

	if composed.Label != "Red" {
		t.Errorf("expected label override, got %q", composed.Label)
	}
	if !composed.ReadOnly {
		t.Error("expected read-only flag to win")
	}
	if composed.Max != 255 {
		t.Errorf("expected bounds retained, got %v", composed.Max)
	}
}

func TestContainer_CarriesFormControl(t *testing.T) {
	picker := New(nil,
		WithDefaultValue("#ff0000"),
		WithFormControl(FormControl{Invalid: true}),
	)

	container := picker.Container()
	if container.Value != "#ff0000" || !container.Invalid {
		t.Errorf("unexpected container: %+v", container)
	}
}
