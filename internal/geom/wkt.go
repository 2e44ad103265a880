package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"infcanvas/internal/canvas"
)

var (
	ErrEmpty       = errors.New("empty wkt")
	ErrUnsupported = errors.New("unsupported wkt type")
	ErrNoCoords    = errors.New("wkt: no coordinates parsed")
)

// ParseLines parses LINESTRING or MULTILINESTRING text into polylines.
// Tuples that do not hold two numbers are skipped, as are lines left with
// fewer than two vertices.
func ParseLines(wkt string) ([]Polyline, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, ErrEmpty
	}
	up := strings.ToUpper(s)
	var lines []Polyline
	switch {
	case strings.HasPrefix(up, "MULTILINESTRING"):
		i := strings.Index(s, "((")
		j := strings.LastIndex(s, "))")
		if i < 0 || j <= i {
			return nil, errors.New("wkt multilinestring: invalid")
		}
		// normalize spaces around part separators
		body := strings.ReplaceAll(s[i+2:j], "), (", "),(")
		body = strings.ReplaceAll(body, ") , (", "),(")
		for _, part := range strings.Split(body, "),(") {
			if l := parseTuples(part); len(l) >= 2 {
				lines = append(lines, l)
			}
		}
	case strings.HasPrefix(up, "LINESTRING"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return nil, errors.New("wkt linestring: invalid")
		}
		if l := parseTuples(s[i+1 : j]); len(l) >= 2 {
			lines = append(lines, l)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, firstWord(up))
	}
	if len(lines) == 0 {
		return nil, ErrNoCoords
	}
	return lines, nil
}

func parseTuples(block string) Polyline {
	var out Polyline
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		out = append(out, [2]float64{x, y})
	}
	return out
}

func firstWord(s string) string {
	if i := strings.IndexAny(s, " ("); i > 0 {
		return s[:i]
	}
	return s
}

// Segments splits each polyline into segments between consecutive vertices.
func Segments(lines []Polyline) []canvas.Segment {
	var out []canvas.Segment
	for _, l := range lines {
		for i := 1; i < len(l); i++ {
			out = append(out, canvas.Segment{X0: l[i-1][0], Y0: l[i-1][1], X1: l[i][0], Y1: l[i][1]})
		}
	}
	return out
}

// FormatMultiLineString writes one two-vertex part per segment. An empty
// input yields "MULTILINESTRING EMPTY".
func FormatMultiLineString(segs []canvas.Segment) string {
	if len(segs) == 0 {
		return "MULTILINESTRING EMPTY"
	}
	var b strings.Builder
	b.WriteString("MULTILINESTRING (")
	for i, s := range segs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%s %s, %s %s)", num(s.X0), num(s.Y0), num(s.X1), num(s.Y1))
	}
	b.WriteString(")")
	return b.String()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
