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

import (
	"seehuhn.de/go/typeset/font"
	"seehuhn.de/go/typeset/graphics"
)

// TextDirection is the writing direction used for resolving
// direction-sensitive layout.
type TextDirection int

// The supported writing directions.
const (
	LeftToRight TextDirection = iota
	RightToLeft
)

// TextStyle bundles the properties needed to measure and paint a run of
// text.
type TextStyle struct {
	Face  font.Face
	Size  float64
	Color graphics.Color

	// LineSpacing scales the face's default line height.
	// Zero means 1.
	LineSpacing float64
}

// LineHeight returns the baseline-to-baseline distance for this style.
func (s TextStyle) LineHeight() float64 {
	spacing := s.LineSpacing
	if spacing == 0 {
		spacing = 1
	}
	return s.Face.LineHeight(s.Size) * spacing
}

// Theme is the style snapshot passed down the tree during layout and
// paint.  Widgets read from it; they never modify it.
type Theme struct {
	DefaultStyle TextStyle
}

// LayoutContext carries everything a widget may read during layout.  It
// is passed by value; a child never outlives the layout call that
// received it.
type LayoutContext struct {
	Constraints BoxConstraints
	Direction   TextDirection
	Theme       *Theme
}

// WithConstraints returns a copy of the context with new constraints.
func (ctx LayoutContext) WithConstraints(c BoxConstraints) LayoutContext {
	ctx.Constraints = c
	return ctx
}

// LayoutResult is what a widget reports back from Layout.
type LayoutResult struct {
	// Size is the size the widget committed to.  It must satisfy the
	// constraints of the layout call that produced it.
	Size Size

	// Baseline is the distance from the widget's top edge to its text
	// baseline, valid only if HasBaseline is set.
	Baseline    float64
	HasBaseline bool

	// NeedsRepaint signals that a previously painted rendition of this
	// widget cannot be reused.
	NeedsRepaint bool
}

// PaintContext carries everything a widget may read during paint.  The
// canvas is owned by the page being painted; a widget must not retain it
// past its Paint call.
type PaintContext struct {
	Canvas *Canvas

	// Size is the widget's own committed size from layout.
	Size Size

	Theme     *Theme
	Resources *graphics.Resources

	// PageSize and ContentArea describe the page being painted, in
	// authoring space.
	PageSize    Size
	ContentArea Rect
}
