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
	"seehuhn.de/go/typeset/graphics"
)

// Container combines a fixed size, padding, a background fill, and child
// alignment in one widget.  Width and Height set to NaN mean "size to
// content"; use NewContainer to get both unset.
type Container struct {
	// Width and Height fix the container's size.  NaN means unset.
	Width, Height float64

	Padding    typeset.EdgeInsets
	Background *graphics.Color
	Alignment  typeset.Alignment
	Child      typeset.Widget

	size      typeset.Size
	childSize typeset.Size
	offset    typeset.Point
}

// NewContainer returns an empty container with unset width and height.
func NewContainer() *Container {
	return &Container{Width: math.NaN(), Height: math.NaN()}
}

// Layout implements the [typeset.Widget] interface.
func (c *Container) Layout(ctx typeset.LayoutContext) (typeset.LayoutResult, error) {
	var reqs []typeset.Requirement
	if !math.IsNaN(c.Width) {
		reqs = append(reqs, typeset.FixedWidth(c.Width))
	}
	if !math.IsNaN(c.Height) {
		reqs = append(reqs, typeset.FixedHeight(c.Height))
	}
	outer := typeset.PropagateConstraints(ctx.Constraints, reqs...)

	var childSize typeset.Size
	if c.Child != nil {
		inner := deflate(outer, c.Padding)
		inner.MinWidth = 0
		inner.MinHeight = 0
		res, err := c.Child.Layout(ctx.WithConstraints(inner))
		if err != nil {
			return typeset.LayoutResult{}, err
		}
		childSize = res.Size
	}
	c.childSize = childSize

	c.size = outer.Constrain(typeset.Size{
		Width:  childSize.Width + c.Padding.Horizontal(),
		Height: childSize.Height + c.Padding.Vertical(),
	})

	content := typeset.Size{
		Width:  c.size.Width - c.Padding.Horizontal(),
		Height: c.size.Height - c.Padding.Vertical(),
	}
	off := c.Alignment.Resolve(content, childSize)
	c.offset = typeset.Point{
		X: c.Padding.Left + off.X,
		Y: c.Padding.Top + off.Y,
	}
	return typeset.LayoutResult{Size: c.size}, nil
}

// Paint implements the [typeset.Widget] interface.
func (c *Container) Paint(ctx *typeset.PaintContext) {
	if c.Background != nil {
		ctx.Canvas.SetFillColor(*c.Background)
		ctx.Canvas.Rect(typeset.Rect{
			Width:  c.size.Width,
			Height: c.size.Height,
		})
		ctx.Canvas.Fill()
	}
	if c.Child != nil {
		paintChild(ctx, c.Child, c.offset, c.childSize)
	}
}
