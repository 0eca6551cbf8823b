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
	"seehuhn.de/go/typeset"
)

// Expanded makes a flex child fill a share of the remaining space along
// the main axis of the enclosing Row or Column.  The share is
// proportional to Flex (minimum 1).  A nil child is an empty gap.
type Expanded struct {
	Child typeset.Widget
	Flex  int
}

// Spacer returns empty flexible space.
func Spacer(flex int) *Expanded {
	return &Expanded{Flex: flex}
}

func (e *Expanded) flexFactor() int {
	if e.Flex < 1 {
		return 1
	}
	return e.Flex
}

// Layout implements the [typeset.Widget] interface.  An Expanded outside
// a Row or Column simply takes the constraints it is given.
func (e *Expanded) Layout(ctx typeset.LayoutContext) (typeset.LayoutResult, error) {
	if e.Child == nil {
		return typeset.LayoutResult{Size: ctx.Constraints.Smallest()}, nil
	}
	return e.Child.Layout(ctx)
}

// Paint implements the [typeset.Widget] interface.
func (e *Expanded) Paint(ctx *typeset.PaintContext) {
	if e.Child == nil {
		return
	}
	e.Child.Paint(ctx)
}

// Row lays out its children along the writing direction, left to right
// by default.  Expanded children share the space left over after the
// rigid children have taken theirs.
type Row struct {
	Children []typeset.Widget

	geom flexGeometry
}

// Layout implements the [typeset.Widget] interface.
func (r *Row) Layout(ctx typeset.LayoutContext) (typeset.LayoutResult, error) {
	return r.geom.layout(typeset.Horizontal, r.Children, ctx)
}

// Paint implements the [typeset.Widget] interface.
func (r *Row) Paint(ctx *typeset.PaintContext) {
	r.geom.paint(r.Children, ctx)
}

// Column lays out its children top to bottom.  Expanded children share
// the space left over after the rigid children have taken theirs.
type Column struct {
	Children []typeset.Widget

	geom flexGeometry
}

// Layout implements the [typeset.Widget] interface.
func (c *Column) Layout(ctx typeset.LayoutContext) (typeset.LayoutResult, error) {
	return c.geom.layout(typeset.Vertical, c.Children, ctx)
}

// Paint implements the [typeset.Widget] interface.
func (c *Column) Paint(ctx *typeset.PaintContext) {
	c.geom.paint(c.Children, ctx)
}

// flexGeometry holds the per-child placement computed during layout.
type flexGeometry struct {
	offsets []typeset.Point
	sizes   []typeset.Size
}

func mainAxis(axis typeset.Axis, s typeset.Size) float64 {
	if axis == typeset.Horizontal {
		return s.Width
	}
	return s.Height
}

func (g *flexGeometry) layout(axis typeset.Axis, children []typeset.Widget, ctx typeset.LayoutContext) (typeset.LayoutResult, error) {
	c := ctx.Constraints
	g.sizes = make([]typeset.Size, len(children))
	g.offsets = make([]typeset.Point, len(children))

	// First pass: rigid children get loose constraints; count the flex
	// factors of the expanded children.
	loose := typeset.BoxConstraints{
		MaxWidth:  c.MaxWidth,
		MaxHeight: c.MaxHeight,
	}
	totalFlex := 0
	var rigidMain float64
	for i, child := range children {
		if e, ok := child.(*Expanded); ok {
			totalFlex += e.flexFactor()
			continue
		}
		res, err := child.Layout(ctx.WithConstraints(loose))
		if err != nil {
			return typeset.LayoutResult{}, err
		}
		g.sizes[i] = res.Size
		rigidMain += mainAxis(axis, res.Size)
	}

	// Second pass: the expanded children split the remaining main-axis
	// space.  With an unbounded main axis there is nothing to split.
	if totalFlex > 0 {
		var limit float64
		if axis == typeset.Horizontal {
			if c.HasBoundedWidth() {
				limit = c.MaxWidth
			}
		} else {
			if c.HasBoundedHeight() {
				limit = c.MaxHeight
			}
		}
		remaining := limit - rigidMain
		if remaining < 0 {
			remaining = 0
		}
		perFlex := remaining / float64(totalFlex)
		for i, child := range children {
			e, ok := child.(*Expanded)
			if !ok {
				continue
			}
			main := perFlex * float64(e.flexFactor())
			var reqs []typeset.Requirement
			if axis == typeset.Horizontal {
				reqs = append(reqs, typeset.MinWidth(main), typeset.FixedWidth(main))
			} else {
				reqs = append(reqs, typeset.MinHeight(main), typeset.FixedHeight(main))
			}
			res, err := child.Layout(ctx.WithConstraints(
				typeset.PropagateConstraints(loose, reqs...)))
			if err != nil {
				return typeset.LayoutResult{}, err
			}
			g.sizes[i] = res.Size
		}
	}

	// Children stack along the main axis.
	var pos float64
	for i := range children {
		if axis == typeset.Horizontal {
			g.offsets[i] = typeset.Point{X: pos}
		} else {
			g.offsets[i] = typeset.Point{Y: pos}
		}
		pos += mainAxis(axis, g.sizes[i])
	}

	size := typeset.NegotiateSize(g.sizes, c, typeset.SizeWrap, axis)

	// Rows follow the writing direction.
	if axis == typeset.Horizontal && ctx.Direction == typeset.RightToLeft {
		for i := range children {
			g.offsets[i].X = size.Width - g.offsets[i].X - g.sizes[i].Width
		}
	}

	return typeset.LayoutResult{Size: size}, nil
}

func (g *flexGeometry) paint(children []typeset.Widget, ctx *typeset.PaintContext) {
	for i, child := range children {
		paintChild(ctx, child, g.offsets[i], g.sizes[i])
	}
}
