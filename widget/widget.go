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

// Package widget provides the concrete widget catalog: text, containers,
// padding, alignment, flex rows and columns, and overlay stacks.
//
// All widgets implement the typeset.Widget contract.  Composites record
// their children's sizes and offsets during Layout and reuse them during
// Paint; paint never triggers new layout.
package widget

import (
	"seehuhn.de/go/typeset"
)

// paintChild paints a child inside a local coordinate frame at the given
// offset.  The child's paint is bracketed by a save/restore pair, so
// siblings never see each other's transforms.
func paintChild(ctx *typeset.PaintContext, child typeset.Widget, offset typeset.Point, size typeset.Size) {
	ctx.Canvas.SaveState()
	ctx.Canvas.Translate(offset.X, offset.Y)
	childCtx := *ctx
	childCtx.Size = size
	child.Paint(&childCtx)
	ctx.Canvas.RestoreState()
}
