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

// SizedBox is a box of fixed size.  If the box has a child, the child is
// forced to the same size.
type SizedBox struct {
	Width, Height float64
	Child         typeset.Widget

	size typeset.Size
}

// Layout implements the [typeset.Widget] interface.
func (b *SizedBox) Layout(ctx typeset.LayoutContext) (typeset.LayoutResult, error) {
	child := typeset.PropagateConstraints(ctx.Constraints,
		typeset.FixedWidth(b.Width), typeset.FixedHeight(b.Height))
	b.size = child.Smallest()

	if b.Child != nil {
		if _, err := b.Child.Layout(ctx.WithConstraints(child)); err != nil {
			return typeset.LayoutResult{}, err
		}
	}
	return typeset.LayoutResult{Size: b.size}, nil
}

// Paint implements the [typeset.Widget] interface.
func (b *SizedBox) Paint(ctx *typeset.PaintContext) {
	if b.Child == nil {
		return
	}
	paintChild(ctx, b.Child, typeset.Point{}, b.size)
}
