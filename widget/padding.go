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

// Padding insets its child on all four sides.
type Padding struct {
	Insets typeset.EdgeInsets
	Child  typeset.Widget

	childSize typeset.Size
}

// deflate shrinks constraints by the space the insets occupy.
func deflate(c typeset.BoxConstraints, in typeset.EdgeInsets) typeset.BoxConstraints {
	h := in.Horizontal()
	v := in.Vertical()
	res := typeset.BoxConstraints{
		MinWidth:  math.Max(0, c.MinWidth-h),
		MaxWidth:  math.Max(0, c.MaxWidth-h),
		MinHeight: math.Max(0, c.MinHeight-v),
		MaxHeight: math.Max(0, c.MaxHeight-v),
	}
	if math.IsInf(c.MaxWidth, +1) {
		res.MaxWidth = c.MaxWidth
	}
	if math.IsInf(c.MaxHeight, +1) {
		res.MaxHeight = c.MaxHeight
	}
	return res
}

// Layout implements the [typeset.Widget] interface.
func (p *Padding) Layout(ctx typeset.LayoutContext) (typeset.LayoutResult, error) {
	if p.Child == nil {
		size := ctx.Constraints.Constrain(typeset.Size{
			Width:  p.Insets.Horizontal(),
			Height: p.Insets.Vertical(),
		})
		return typeset.LayoutResult{Size: size}, nil
	}

	res, err := p.Child.Layout(ctx.WithConstraints(deflate(ctx.Constraints, p.Insets)))
	if err != nil {
		return typeset.LayoutResult{}, err
	}
	p.childSize = res.Size

	out := typeset.LayoutResult{
		Size: ctx.Constraints.Constrain(typeset.Size{
			Width:  res.Size.Width + p.Insets.Horizontal(),
			Height: res.Size.Height + p.Insets.Vertical(),
		}),
		NeedsRepaint: res.NeedsRepaint,
	}
	if res.HasBaseline {
		out.Baseline = res.Baseline + p.Insets.Top
		out.HasBaseline = true
	}
	return out, nil
}

// Paint implements the [typeset.Widget] interface.
func (p *Padding) Paint(ctx *typeset.PaintContext) {
	if p.Child == nil {
		return
	}
	offset := typeset.Point{X: p.Insets.Left, Y: p.Insets.Top}
	paintChild(ctx, p.Child, offset, p.childSize)
}
