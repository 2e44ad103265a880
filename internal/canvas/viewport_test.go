package canvas

import (
	"math"
	"testing"
)

func TestViewportDefaults(t *testing.T) {
	v := NewViewport(800, 600)
	if v.Scale != 1 || v.OffsetX != 0 || v.OffsetY != 0 {
		t.Errorf("NewViewport = %+v, want identity", v)
	}
	if v.ZoomPercent() != 100 {
		t.Errorf("ZoomPercent = %d, want 100", v.ZoomPercent())
	}
}

func TestToScreen(t *testing.T) {
	v := Viewport{OffsetX: 10, OffsetY: -5, Scale: 2, Width: 100, Height: 100}
	sx, sy := v.ToScreen(3, 7)
	assertNear(t, "sx", sx, 26)
	assertNear(t, "sy", sy, 4)
}

func TestScreenWorldRoundtrip(t *testing.T) {
	viewports := []Viewport{
		NewViewport(800, 600),
		{OffsetX: 123.5, OffsetY: -77.25, Scale: 0.37, Width: 800, Height: 600},
		{OffsetX: -1e6, OffsetY: 4e5, Scale: 1e-3, Width: 800, Height: 600},
		{OffsetX: 0.001, OffsetY: 0.002, Scale: 4096, Width: 800, Height: 600},
	}
	points := [][2]float64{{0, 0}, {1, -1}, {-350.5, 912.25}, {1e7, -3e6}, {0.0001, 0.0003}}
	for _, v := range viewports {
		for _, p := range points {
			sx, sy := v.ToScreen(p[0], p[1])
			wx, wy := v.ToWorld(sx, sy)
			if !approxEqual(wx, p[0], 1e-9) || !approxEqual(wy, p[1], 1e-9) {
				t.Errorf("scale %v: ToWorld(ToScreen(%v)) = (%v,%v)", v.Scale, p, wx, wy)
			}
		}
	}
}

func TestVisibleWorldExtent(t *testing.T) {
	v := Viewport{OffsetX: -50, OffsetY: 20, Scale: 4, Width: 800, Height: 600}
	assertNear(t, "width", v.VisibleWorldWidth(), 200)
	assertNear(t, "height", v.VisibleWorldHeight(), 150)

	b := v.VisibleWorldBounds()
	assertNear(t, "bounds.X", b.X, 50)
	assertNear(t, "bounds.Y", b.Y, -20)
	if !b.Contains(150, 100) {
		t.Errorf("bounds %+v should contain (150,100)", b)
	}
	if b.Contains(251, 0) {
		t.Errorf("bounds %+v should not contain (251,0)", b)
	}
}

func TestPanRoundtrip(t *testing.T) {
	v := Viewport{OffsetX: 12.5, OffsetY: -3, Scale: 1.5, Width: 640, Height: 480}
	v.Pan(37, -14)
	v.Pan(-37, 14)
	if v.OffsetX != 12.5 || v.OffsetY != -3 {
		t.Errorf("offset after pan roundtrip = (%v,%v), want (12.5,-3)", v.OffsetX, v.OffsetY)
	}
}

func TestPanDividesByScale(t *testing.T) {
	v := Viewport{Scale: 2, Width: 100, Height: 100}
	v.Pan(10, -4)
	assertNear(t, "OffsetX", v.OffsetX, 5)
	assertNear(t, "OffsetY", v.OffsetY, -2)
}

func TestResizeKeepsTransform(t *testing.T) {
	v := Viewport{OffsetX: 7, OffsetY: 9, Scale: 2, Width: 100, Height: 100}
	sx, sy := v.ToScreen(1, 1)
	v.Resize(400, 200)
	if v.OffsetX != 7 || v.OffsetY != 9 || v.Scale != 2 {
		t.Errorf("Resize changed transform: %+v", v)
	}
	sx2, sy2 := v.ToScreen(1, 1)
	if sx != sx2 || sy != sy2 {
		t.Errorf("ToScreen changed after resize: (%v,%v) -> (%v,%v)", sx, sy, sx2, sy2)
	}
	assertNear(t, "VisibleWorldWidth", v.VisibleWorldWidth(), 200)
	assertNear(t, "VisibleWorldHeight", v.VisibleWorldHeight(), 100)
}

func TestZoomExactAnchorsCursor(t *testing.T) {
	tests := []struct {
		name   string
		v      Viewport
		deltaY float64
		px, py float64
	}{
		{"center in", NewViewport(1000, 1000), -100, 500, 500},
		{"corner out", NewViewport(1000, 1000), 100, 0, 1000},
		{"panned zoomed", Viewport{OffsetX: -300, OffsetY: 42, Scale: 3.7, Width: 800, Height: 600}, -40, 123, 456},
		{"big step", NewViewport(800, 600), -2000, 10, 590},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.v
			wx, wy := v.ToWorld(tt.px, tt.py)
			if !v.Zoom(tt.deltaY, tt.px, tt.py, DefaultSensitivity, AnchorExact) {
				t.Fatal("Zoom reported no change")
			}
			sx, sy := v.ToScreen(wx, wy)
			assertNear(t, "anchored x", sx, tt.px)
			assertNear(t, "anchored y", sy, tt.py)
		})
	}
}

func TestZoomCenterStep(t *testing.T) {
	v := NewViewport(1000, 1000)
	v.Zoom(-100, 500, 500, DefaultSensitivity, AnchorExact)
	assertNear(t, "Scale", v.Scale, 1.2)
	// World point 500 stays under the cursor: (500 + off) * 1.2 == 500.
	assertNear(t, "OffsetX", v.OffsetX, 500/1.2-500)
	assertNear(t, "OffsetY", v.OffsetY, 500/1.2-500)
	if v.ZoomPercent() != 120 {
		t.Errorf("ZoomPercent = %d, want 120", v.ZoomPercent())
	}
}

func TestZoomAtOriginKeepsOffset(t *testing.T) {
	for _, anchor := range []Anchor{AnchorExact, AnchorIncremental} {
		v := NewViewport(1000, 1000)
		v.Zoom(-100, 0, 0, DefaultSensitivity, anchor)
		assertNear(t, "Scale", v.Scale, 1.2)
		if v.OffsetX != 0 || v.OffsetY != 0 {
			t.Errorf("anchor %d: offset = (%v,%v), want (0,0)", anchor, v.OffsetX, v.OffsetY)
		}
	}
}

func TestZoomIncremental(t *testing.T) {
	v := NewViewport(1000, 1000)
	v.Zoom(-100, 500, 500, DefaultSensitivity, AnchorIncremental)
	assertNear(t, "Scale", v.Scale, 1.2)
	// unitsZoomed = 1000/1 * 0.2 = 200, half of it at the centre.
	assertNear(t, "OffsetX", v.OffsetX, -100)
	assertNear(t, "OffsetY", v.OffsetY, -100)
}

func TestZoomIncrementalSmallStepDrift(t *testing.T) {
	v := Viewport{OffsetX: 20, OffsetY: -10, Scale: 1.3, Width: 1000, Height: 800}
	px, py := 250.0, 600.0
	wx, wy := v.ToWorld(px, py)
	v.Zoom(-1, px, py, DefaultSensitivity, AnchorIncremental)
	sx, sy := v.ToScreen(wx, wy)
	if math.Abs(sx-px) > 0.01 || math.Abs(sy-py) > 0.01 {
		t.Errorf("drift too large: (%v,%v) vs (%v,%v)", sx, sy, px, py)
	}
}

func TestZoomNeverReachesZero(t *testing.T) {
	v := NewViewport(800, 600)
	for i := 0; i < 50; i++ {
		v.Zoom(1e6, 400, 300, DefaultSensitivity, AnchorExact)
		if !(v.Scale > 0) {
			t.Fatalf("step %d: scale = %v", i, v.Scale)
		}
	}
	v = NewViewport(800, 600)
	v.Zoom(500, 400, 300, DefaultSensitivity, AnchorIncremental)
	assertNear(t, "clamped scale", v.Scale, minZoomFactor)
}

func TestZoomIgnoresDegenerateInput(t *testing.T) {
	v := NewViewport(800, 600)
	before := v
	if v.Zoom(0, 10, 10, DefaultSensitivity, AnchorExact) {
		t.Error("zero delta reported a change")
	}
	if v.Zoom(-100, 10, 10, 0, AnchorExact) {
		t.Error("zero sensitivity reported a change")
	}
	v.Scale = math.MaxFloat64
	before.Scale = v.Scale
	if v.Zoom(-500, 10, 10, DefaultSensitivity, AnchorExact) {
		t.Error("overflowing zoom reported a change")
	}
	if v != before {
		t.Errorf("viewport changed: %+v, want %+v", v, before)
	}
}
