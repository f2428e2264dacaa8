package text

// OutlineOp is a path operation of a glyph outline segment.
type OutlineOp uint8

const (
	// OutlineOpMoveTo starts a new contour.
	OutlineOpMoveTo OutlineOp = iota
	// OutlineOpLineTo draws a straight line.
	OutlineOpLineTo
	// OutlineOpQuadTo draws a quadratic Bézier curve.
	OutlineOpQuadTo
	// OutlineOpCubicTo draws a cubic Bézier curve.
	OutlineOpCubicTo
)

// points returns the number of points the operation consumes.
func (op OutlineOp) points() int {
	switch op {
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 1
	}
}

// OutlinePoint is a point in font units. The Y axis increases up.
type OutlinePoint struct {
	X, Y float32
}

// OutlineSegment is a single path command. Control points come first,
// the end point is last.
type OutlineSegment struct {
	Op     OutlineOp
	Points [3]OutlinePoint
}

// Outline is the vector shape of one glyph in font units.
type Outline struct {
	Segments []OutlineSegment
}

// Empty reports whether the outline has no contours (e.g. space).
func (o Outline) Empty() bool {
	return len(o.Segments) == 0
}

// Bounds returns the extents of all on- and off-curve points.
// ok is false for an empty outline.
func (o Outline) Bounds() (minX, minY, maxX, maxY float32, ok bool) {
	for _, seg := range o.Segments {
		for _, p := range seg.Points[:seg.Op.points()] {
			if !ok {
				minX, minY, maxX, maxY = p.X, p.Y, p.X, p.Y
				ok = true
				continue
			}
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
	}
	return minX, minY, maxX, maxY, ok
}
