package text

// RowPacker places rectangles left to right in rows, leaving a one pixel
// gutter around every rectangle.
//
// A row ends when the next rectangle would touch the right edge; the next
// row starts below the tallest rectangle seen so far. A rectangle wider
// than an empty row is refused. Placement never
// backtracks, so the result depends only on the order of requests.
type RowPacker struct {
	width  int
	height int

	x, y   int // next free slot
	bottom int // lowest edge (plus gutter) placed so far

	usedArea int
}

// NewRowPacker creates a packer for a width x height bitmap.
func NewRowPacker(width, height int) *RowPacker {
	p := &RowPacker{width: width, height: height}
	p.Reset()
	return p
}

// Allocate finds space for a w x h rectangle.
// Returns x, y position and true if space was found, or -1, -1, false if not.
func (p *RowPacker) Allocate(w, h int) (x, y int, ok bool) {
	if p.x+w+1 >= p.width {
		p.y = p.bottom
		p.x = 1
	}
	if p.y+h+1 >= p.height || p.x+w+1 > p.width {
		return -1, -1, false
	}

	x, y = p.x, p.y
	p.x += w + 1
	if p.y+h+1 > p.bottom {
		p.bottom = p.y + h + 1
	}
	p.usedArea += w * h
	return x, y, true
}

// Reset clears all allocations.
func (p *RowPacker) Reset() {
	p.x, p.y, p.bottom = 1, 1, 1
	p.usedArea = 0
}

// Bottom returns the first row below every placed rectangle.
func (p *RowPacker) Bottom() int {
	return p.bottom
}

// Utilization returns the fraction of the bitmap covered by rectangles.
func (p *RowPacker) Utilization() float64 {
	if p.width <= 0 || p.height <= 0 {
		return 0
	}
	return float64(p.usedArea) / float64(p.width*p.height)
}
