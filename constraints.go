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

import "math"

// sizeTolerance absorbs rounding noise when sizes are compared against
// constraint bounds.
const sizeTolerance = 1e-9

// BoxConstraints is a min/max bound pair on width and height which a
// parent imposes on a child before layout.  Minimum values are always
// finite; a maximum of +Inf means "as much as available".  Constraints
// are immutable values, created fresh for each layout call.
type BoxConstraints struct {
	MinWidth, MaxWidth   float64
	MinHeight, MaxHeight float64
}

// Unbounded is the maximum value of a constraint axis with no upper
// limit.
var Unbounded = math.Inf(1)

// Tight returns constraints which admit exactly one size.
func Tight(s Size) BoxConstraints {
	return BoxConstraints{
		MinWidth:  s.Width,
		MaxWidth:  s.Width,
		MinHeight: s.Height,
		MaxHeight: s.Height,
	}
}

// Loose returns constraints which admit any size up to s.
func Loose(s Size) BoxConstraints {
	return BoxConstraints{
		MaxWidth:  s.Width,
		MaxHeight: s.Height,
	}
}

// Expand returns constraints which force the given width and height.
// NaN leaves the corresponding axis unbounded.
func Expand(width, height float64) BoxConstraints {
	c := BoxConstraints{
		MaxWidth:  math.Inf(1),
		MaxHeight: math.Inf(1),
	}
	if !math.IsNaN(width) {
		c.MinWidth = width
		c.MaxWidth = width
	}
	if !math.IsNaN(height) {
		c.MinHeight = height
		c.MaxHeight = height
	}
	return c
}

// IsValid reports whether the constraints satisfy the invariants: all
// bounds non-negative, max not below min, minima finite, and no NaN.
func (c BoxConstraints) IsValid() bool {
	for _, v := range [...]float64{c.MinWidth, c.MaxWidth, c.MinHeight, c.MaxHeight} {
		if math.IsNaN(v) || v < 0 {
			return false
		}
	}
	if math.IsInf(c.MinWidth, +1) || math.IsInf(c.MinHeight, +1) {
		return false
	}
	return c.MaxWidth >= c.MinWidth && c.MaxHeight >= c.MinHeight
}

// IsTight reports whether the constraints admit exactly one size.
func (c BoxConstraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// HasBoundedWidth reports whether the width is bounded from above.
func (c BoxConstraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, +1)
}

// HasBoundedHeight reports whether the height is bounded from above.
func (c BoxConstraints) HasBoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, +1)
}

// Constrain clamps a size into the constraint bounds on both axes.
func (c BoxConstraints) Constrain(s Size) Size {
	return Size{
		Width:  clamp(s.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(s.Height, c.MinHeight, c.MaxHeight),
	}
}

// Satisfies reports whether the size lies within the constraint bounds.
func (c BoxConstraints) Satisfies(s Size) bool {
	return s.Width >= c.MinWidth-sizeTolerance &&
		s.Width <= c.MaxWidth+sizeTolerance &&
		s.Height >= c.MinHeight-sizeTolerance &&
		s.Height <= c.MaxHeight+sizeTolerance
}

// Smallest returns the smallest size which satisfies the constraints.
func (c BoxConstraints) Smallest() Size {
	return Size{c.MinWidth, c.MinHeight}
}

// Biggest returns the largest size which satisfies the constraints.
// Unbounded axes fall back to the minimum.
func (c BoxConstraints) Biggest() Size {
	s := Size{c.MaxWidth, c.MaxHeight}
	if math.IsInf(s.Width, +1) {
		s.Width = c.MinWidth
	}
	if math.IsInf(s.Height, +1) {
		s.Height = c.MinHeight
	}
	return s
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
