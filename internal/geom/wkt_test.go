package geom

import (
	"errors"
	"reflect"
	"testing"

	"infcanvas/internal/canvas"
)

func TestParseLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Polyline
	}{
		{
			name: "linestring",
			in:   "LINESTRING (0 0, 10 0, 10 5)",
			want: []Polyline{{{0, 0}, {10, 0}, {10, 5}}},
		},
		{
			name: "lowercase and negatives",
			in:   "  linestring(-1.5 2, 3 -4.25)  ",
			want: []Polyline{{{-1.5, 2}, {3, -4.25}}},
		},
		{
			name: "multilinestring",
			in:   "MULTILINESTRING ((0 0, 1 1), (2 2, 3 3, 4 2))",
			want: []Polyline{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}, {4, 2}}},
		},
		{
			name: "skips bad tuples and short parts",
			in:   "MULTILINESTRING ((0 0, x y, 1 1) , (5 5))",
			want: []Polyline{{{0, 0}, {1, 1}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLines(tt.in)
			if err != nil {
				t.Fatalf("ParseLines: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLinesErrors(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{"   ", ErrEmpty},
		{"POINT (1 2)", ErrUnsupported},
		{"POLYGON ((0 0, 1 0, 1 1, 0 0))", ErrUnsupported},
		{"LINESTRING (1 2)", ErrNoCoords},
	}
	for _, tt := range tests {
		_, err := ParseLines(tt.in)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ParseLines(%q) error = %v, want %v", tt.in, err, tt.wantErr)
		}
	}
	if _, err := ParseLines("LINESTRING 1 2, 3 4"); err == nil {
		t.Error("missing parentheses: want error")
	}
	if _, err := ParseLines("MULTILINESTRING (1 2, 3 4)"); err == nil {
		t.Error("multilinestring without inner parentheses: want error")
	}
}

func TestSegments(t *testing.T) {
	segs := Segments([]Polyline{{{0, 0}, {1, 0}, {1, 1}}, {{5, 5}, {6, 6}}})
	want := []canvas.Segment{
		{X0: 0, Y0: 0, X1: 1, Y1: 0},
		{X0: 1, Y0: 0, X1: 1, Y1: 1},
		{X0: 5, Y0: 5, X1: 6, Y1: 6},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Errorf("Segments = %v, want %v", segs, want)
	}
}

func TestFormatMultiLineString(t *testing.T) {
	if got := FormatMultiLineString(nil); got != "MULTILINESTRING EMPTY" {
		t.Errorf("empty = %q", got)
	}
	segs := []canvas.Segment{{X0: 0, Y0: 0.5, X1: -2, Y1: 3}, {X0: 1e-3, Y0: 1, X1: 2, Y1: 1}}
	want := "MULTILINESTRING ((0 0.5, -2 3), (0.001 1, 2 1))"
	if got := FormatMultiLineString(segs); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	lines, err := ParseLines(want)
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if got := Segments(lines); !reflect.DeepEqual(got, segs) {
		t.Errorf("reparsed = %v, want %v", got, segs)
	}
}

func TestBounds(t *testing.T) {
	if _, ok := Bounds(nil); ok {
		t.Error("Bounds(nil) ok = true")
	}
	bb, ok := Bounds([]Polyline{{{3, -1}, {5, 2}}, {{-4, 7}}})
	if !ok || bb != (BBox{MinX: -4, MinY: -1, MaxX: 5, MaxY: 7}) {
		t.Errorf("Bounds = %+v, %v", bb, ok)
	}
}
