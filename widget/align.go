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

// Align positions its child within itself.  On bounded axes the widget
// fills the available space; on unbounded axes it matches the child.
type Align struct {
	Alignment typeset.Alignment
	Child     typeset.Widget

	childSize typeset.Size
	offset    typeset.Point
}

// Center aligns its child in the middle of the available space.
func Center(child typeset.Widget) *Align {
	return &Align{Alignment: typeset.Center, Child: child}
}

// Layout implements the [typeset.Widget] interface.
func (a *Align) Layout(ctx typeset.LayoutContext) (typeset.LayoutResult, error) {
	c := ctx.Constraints

	var childSize typeset.Size
	if a.Child != nil {
		loose := typeset.BoxConstraints{
			MaxWidth:  c.MaxWidth,
			MaxHeight: c.MaxHeight,
		}
		res, err := a.Child.Layout(ctx.WithConstraints(loose))
		if err != nil {
			return typeset.LayoutResult{}, err
		}
		childSize = res.Size
	}
	a.childSize = childSize

	size := typeset.Size{Width: childSize.Width, Height: childSize.Height}
	if c.HasBoundedWidth() {
		size.Width = c.MaxWidth
	}
	if c.HasBoundedHeight() {
		size.Height = c.MaxHeight
	}
	size = c.Constrain(size)

	a.offset = a.Alignment.Resolve(size, childSize)
	return typeset.LayoutResult{Size: size}, nil
}

// Paint implements the [typeset.Widget] interface.
func (a *Align) Paint(ctx *typeset.PaintContext) {
	if a.Child == nil {
		return
	}
	paintChild(ctx, a.Child, a.offset, a.childSize)
}
