package layout

import "math"

// StripMetrics describes the scrollable numeral row. Offsets are measured
// in content coordinates, where 0 shows the leading gutter.
type StripMetrics struct {
	Side     float64 // numeral button edge
	Gutter   float64 // spacing between and around buttons
	Viewport float64 // visible width of the strip
}

// StripMetrics returns the numeral row geometry for this layout.
func (l Layout) StripMetrics() StripMetrics {
	return StripMetrics{Side: l.NumeralSide, Gutter: l.Params.Gutter, Viewport: l.Strip.W}
}

// Pitch is the distance between the leading edges of neighbouring numerals.
func (m StripMetrics) Pitch() float64 {
	return m.Side + m.Gutter
}

// ItemX is the leading edge of numeral n in content coordinates.
func (m StripMetrics) ItemX(n int) float64 {
	return m.Gutter + float64(n-1)*m.Pitch()
}

// ContentWidth is the scrollable width of count numerals plus padding.
func (m StripMetrics) ContentWidth(count int) float64 {
	if count <= 0 {
		return 0
	}
	return 2*m.Gutter + float64(count)*m.Side + float64(count-1)*m.Gutter
}

// MaxOffset is the furthest the strip can scroll.
func (m StripMetrics) MaxOffset(count int) float64 {
	return max(m.ContentWidth(count)-m.Viewport, 0)
}

// OffsetFor returns the scroll offset that puts numeral n at the leading
// edge, just past the gutter, clamped to the scrollable extent.
func (m StripMetrics) OffsetFor(n, count int) float64 {
	return m.Clamp(float64(n-1)*m.Pitch(), count)
}

// Clamp pins offset into [0, MaxOffset(count)].
func (m StripMetrics) Clamp(offset float64, count int) float64 {
	return min(max(offset, 0), m.MaxOffset(count))
}

// Visible returns the first and last numeral that intersect the viewport
// at offset. ok is false when nothing is visible.
func (m StripMetrics) Visible(offset float64, count int) (first, last int, ok bool) {
	pitch := m.Pitch()
	if count <= 0 || pitch <= 0 || m.Viewport <= 0 {
		return 0, 0, false
	}

	first = int(math.Floor((offset-m.Gutter-m.Side)/pitch)) + 2
	last = int(math.Ceil((offset + m.Viewport - m.Gutter) / pitch))

	first = max(first, 1)
	last = min(last, count)
	if last < first {
		return 0, 0, false
	}
	return first, last, true
}

// FullyVisible reports how many whole numerals fit in the viewport.
func (m StripMetrics) FullyVisible() int {
	pitch := m.Pitch()
	if pitch <= 0 {
		return 0
	}
	return max(int(m.Viewport/pitch), 0)
}
