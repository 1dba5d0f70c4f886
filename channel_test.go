package prism

import "testing"

func TestChannels_RGBFamilyWhite(t *testing.T) {
	channels := Channels("#ffffff", false, defaultFallback)
	if len(channels) != 3 {
		t.Fatalf("expected 3 channels, got %d", len(channels))
	}

	want := []struct {
		label string
		space Space
		value float64
		max   float64
	}{
		{"R", SpaceRed, 255, 255},
		{"G", SpaceGreen, 255, 255},
		{"B", SpaceBlue, 255, 255},
	}
	for i, w := range want {
		ch := channels[i]
		if ch.Label != w.label || ch.Space != w.space || ch.Value != w.value || ch.Min != 0 || ch.Max != w.max {
			t.Errorf("channel %d = %+v, want %+v", i, ch, w)
		}
	}
}

func TestChannels_HSLFamilyWithAlpha(t *testing.T) {
	channels := Channels("hsla(0, 0%, 100%, 0.5)", true, defaultFallback)
	if len(channels) != 4 {
		t.Fatalf("expected 4 channels, got %d", len(channels))
	}

	want := []struct {
		label string
		value float64
		max   float64
	}{
		{"H", 0, 360},
		{"S", 0, 100},
		{"L", 100, 100},
		{"A", 50, 100},
	}
	for i, w := range want {
		ch := channels[i]
		if ch.Label != w.label || ch.Value != w.value || ch.Max != w.max {
			t.Errorf("channel %d = %+v, want %+v", i, ch, w)
		}
	}
}

func TestChannels_RGBWithAlpha(t *testing.T) {
	channels := Channels("rgba(17, 34, 51, 0.25)", true, defaultFallback)
	if len(channels) != 4 {
		t.Fatalf("expected 4 channels, got %d", len(channels))
	}
	if channels[0].Value != 17 || channels[1].Value != 34 || channels[2].Value != 51 {
		t.Errorf("unexpected rgb values: %+v", channels)
	}
	if channels[3].Space != SpaceAlpha || channels[3].Value != 25 {
		t.Errorf("unexpected alpha channel: %+v", channels[3])
	}
}

func TestChannels_MalformedFallsBack(t *testing.T) {
	channels := Channels("garbage", false, "#000000")
	if len(channels) != 3 {
		t.Fatalf("expected 3 channels, got %d", len(channels))
	}
	for _, ch := range channels {
		if ch.Value != 0 {
			t.Errorf("expected fallback black, got %+v", ch)
		}
	}
}

func TestChannels_MalformedFallbackToo(t *testing.T) {
	// Both value and fallback malformed: opaque white is projected.
	channels := Channels("garbage", true, "also garbage")
	if len(channels) != 4 {
		t.Fatalf("expected 4 channels, got %d", len(channels))
	}
	if channels[0].Value != 255 || channels[3].Value != 100 {
		t.Errorf("expected opaque white, got %+v", channels)
	}
}

func TestChannels_ValuesRounded(t *testing.T) {
	channels := Channels("hsla(120, 50%, 25%, 0.333)", true, defaultFallback)
	if channels[3].Value != 33 {
		t.Errorf("expected alpha rounded to 33, got %v", channels[3].Value)
	}
}
