// seehuhn.de/go/typeset - a widget layout engine producing PDF documents
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package typeset

// Point is a position in authoring space (origin top-left, y axis
// pointing down).  Units are PDF points (1/72 inch).
type Point struct {
	X, Y float64
}

// Size is the extent of a widget or page.
type Size struct {
	Width, Height float64
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Rect is a rectangle in authoring space, given by its top-left corner
// and its extent.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Inset shrinks the rectangle by the given insets on each side.
func (r Rect) Inset(in EdgeInsets) Rect {
	return Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  r.Width - in.Left - in.Right,
		Height: r.Height - in.Top - in.Bottom,
	}
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Size {
	return Size{r.Width, r.Height}
}

// EdgeInsets describes offsets from the four sides of a rectangle.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// EvenInsets returns insets with the same offset on all four sides.
func EvenInsets(v float64) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// Horizontal returns the sum of the left and right insets.
func (in EdgeInsets) Horizontal() float64 {
	return in.Left + in.Right
}

// Vertical returns the sum of the top and bottom insets.
func (in EdgeInsets) Vertical() float64 {
	return in.Top + in.Bottom
}

// Alignment describes where a child is placed inside a larger container.
// Both coordinates run from -1 (left/top edge) over 0 (center) to +1
// (right/bottom edge).
type Alignment struct {
	X, Y float64
}

// The common alignments.
var (
	TopLeft      = Alignment{-1, -1}
	TopCenter    = Alignment{0, -1}
	TopRight     = Alignment{1, -1}
	CenterLeft   = Alignment{-1, 0}
	Center       = Alignment{0, 0}
	CenterRight  = Alignment{1, 0}
	BottomLeft   = Alignment{-1, 1}
	BottomCenter = Alignment{0, 1}
	BottomRight  = Alignment{1, 1}
)

// Resolve returns the offset of the child's top-left corner inside the
// container.
func (a Alignment) Resolve(container, child Size) Point {
	return Point{
		X: (container.Width - child.Width) * (a.X + 1) / 2,
		Y: (container.Height - child.Height) * (a.Y + 1) / 2,
	}
}

// FlipVertical converts a point between authoring space (origin top-left,
// y down) and PDF user space (origin bottom-left, y up) on a page of the
// given height.  The function is its own inverse.
func FlipVertical(p Point, pageHeight float64) Point {
	return Point{X: p.X, Y: pageHeight - p.Y}
}
