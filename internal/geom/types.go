package geom

// Polyline is an ordered list of x/y vertices.
type Polyline [][2]float64

// BBox is the axis-aligned extent of a set of vertices.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Extend grows b to include (x, y). The zero BBox is treated as empty only
// by Bounds, which seeds it from the first vertex.
func (b *BBox) Extend(x, y float64) {
	b.MinX = min(b.MinX, x)
	b.MinY = min(b.MinY, y)
	b.MaxX = max(b.MaxX, x)
	b.MaxY = max(b.MaxY, y)
}

// Bounds returns the extent of every vertex in lines. ok is false when there
// are no vertices.
func Bounds(lines []Polyline) (bb BBox, ok bool) {
	for _, l := range lines {
		for _, p := range l {
			if !ok {
				bb = BBox{MinX: p[0], MinY: p[1], MaxX: p[0], MaxY: p[1]}
				ok = true
				continue
			}
			bb.Extend(p[0], p[1])
		}
	}
	return bb, ok
}
