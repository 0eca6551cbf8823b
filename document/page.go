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

package document

import (
	"bytes"

	"seehuhn.de/go/typeset"
	"seehuhn.de/go/typeset/graphics"
)

// Page is one page of a document.  Size and margins are fixed at
// creation.  The page keeps the painted content stream and the font
// resources used on it; it holds no widget tree after paint completes.
type Page struct {
	size    typeset.Size
	margins typeset.EdgeInsets

	content   *bytes.Buffer
	resources *graphics.Resources
}

// Size returns the page dimensions in PDF points.
func (p *Page) Size() typeset.Size {
	return p.size
}

// Margins returns the page margins.
func (p *Page) Margins() typeset.EdgeInsets {
	return p.margins
}

// ContentArea returns the page rectangle minus the margins, in authoring
// space.  This is the only rectangle the layout tree is laid out into;
// the page size itself is never a layout constraint.
func (p *Page) ContentArea() typeset.Rect {
	return typeset.Rect{
		X:      p.margins.Left,
		Y:      p.margins.Top,
		Width:  p.size.Width - p.margins.Horizontal(),
		Height: p.size.Height - p.margins.Vertical(),
	}
}

// Canvas returns a canvas for painting directly onto the page, for
// content outside the widget tree.
func (p *Page) Canvas() *typeset.Canvas {
	w := graphics.NewWriter(p.content, p.resources)
	return typeset.NewCanvas(w, p.size.Height)
}
