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

package widget

import (
	"math"

	"seehuhn.de/go/typeset"
)

// Positioned places a child at explicit offsets from the edges of the
// enclosing Stack.  Unset (NaN) sides leave the corresponding axis to the
// stack's alignment; setting both sides of an axis fixes the child's
// extent on that axis.
//
// In a composite literal, sides left at zero are pinned to the edge at
// distance 0, not unset.  Use NewPositioned or At to start with all sides
// unset.
type Positioned struct {
	Left, Top, Right, Bottom float64
	Child                    typeset.Widget
}

// NewPositioned returns a Positioned child with all four sides unset.
func NewPositioned(child typeset.Widget) *Positioned {
	return &Positioned{
		Left:   math.NaN(),
		Top:    math.NaN(),
		Right:  math.NaN(),
		Bottom: math.NaN(),
		Child:  child,
	}
}

// At returns a Positioned child pinned at the given distance from the
// stack's left and top edges.
func At(left, top float64, child typeset.Widget) *Positioned {
	p := NewPositioned(child)
	p.Left = left
	p.Top = top
	return p
}

// Layout implements the [typeset.Widget] interface.  A Positioned widget
// is only meaningful inside a Stack; on its own it delegates to its
// child.
func (p *Positioned) Layout(ctx typeset.LayoutContext) (typeset.LayoutResult, error) {
	return p.Child.Layout(ctx)
}

// Paint implements the [typeset.Widget] interface.
func (p *Positioned) Paint(ctx *typeset.PaintContext) {
	p.Child.Paint(ctx)
}

// Stack overlays its children on top of each other, first child at the
// bottom.  Non-positioned children are placed by Alignment; Positioned
// children are placed by their edge offsets.
type Stack struct {
	Alignment typeset.Alignment
	Children  []typeset.Widget

	size    typeset.Size
	offsets []typeset.Point
	sizes   []typeset.Size
}

// Layout implements the [typeset.Widget] interface.
func (s *Stack) Layout(ctx typeset.LayoutContext) (typeset.LayoutResult, error) {
	c := ctx.Constraints
	s.offsets = make([]typeset.Point, len(s.Children))
	s.sizes = make([]typeset.Size, len(s.Children))

	// The stack sizes itself to the non-positioned children.
	loose := typeset.BoxConstraints{
		MaxWidth:  c.MaxWidth,
		MaxHeight: c.MaxHeight,
	}
	var plain []typeset.Size
	for i, child := range s.Children {
		if _, ok := child.(*Positioned); ok {
			continue
		}
		res, err := child.Layout(ctx.WithConstraints(loose))
		if err != nil {
			return typeset.LayoutResult{}, err
		}
		s.sizes[i] = res.Size
		plain = append(plain, res.Size)
	}
	s.size = typeset.NegotiateSize(plain, c, typeset.SizeFit, typeset.Horizontal)

	for i, child := range s.Children {
		p, ok := child.(*Positioned)
		if !ok {
			s.offsets[i] = s.Alignment.Resolve(s.size, s.sizes[i])
			continue
		}

		childConstraints := positionedConstraints(p, s.size)
		res, err := p.Layout(ctx.WithConstraints(childConstraints))
		if err != nil {
			return typeset.LayoutResult{}, err
		}
		s.sizes[i] = res.Size
		s.offsets[i] = positionedOffset(p, s.size, res.Size, s.Alignment)
	}
	return typeset.LayoutResult{Size: s.size}, nil
}

// positionedConstraints derives the constraints for a Positioned child.
// An axis with both edges set becomes tight.
func positionedConstraints(p *Positioned, size typeset.Size) typeset.BoxConstraints {
	c := typeset.BoxConstraints{
		MaxWidth:  size.Width,
		MaxHeight: size.Height,
	}
	if !math.IsNaN(p.Left) && !math.IsNaN(p.Right) {
		w := math.Max(0, size.Width-p.Left-p.Right)
		c.MinWidth, c.MaxWidth = w, w
	}
	if !math.IsNaN(p.Top) && !math.IsNaN(p.Bottom) {
		h := math.Max(0, size.Height-p.Top-p.Bottom)
		c.MinHeight, c.MaxHeight = h, h
	}
	return c
}

// positionedOffset resolves the child's top-left corner from the set
// edges, falling back to the stack alignment on axes with no edge set.
func positionedOffset(p *Positioned, size, child typeset.Size, align typeset.Alignment) typeset.Point {
	off := align.Resolve(size, child)
	switch {
	case !math.IsNaN(p.Left):
		off.X = p.Left
	case !math.IsNaN(p.Right):
		off.X = size.Width - p.Right - child.Width
	}
	switch {
	case !math.IsNaN(p.Top):
		off.Y = p.Top
	case !math.IsNaN(p.Bottom):
		off.Y = size.Height - p.Bottom - child.Height
	}
	return off
}

// Paint implements the [typeset.Widget] interface.
func (s *Stack) Paint(ctx *typeset.PaintContext) {
	for i, child := range s.Children {
		paintChild(ctx, child, s.offsets[i], s.sizes[i])
	}
}
