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

package graphics

import (
	"fmt"

	"seehuhn.de/go/typeset/internal/float"
	"seehuhn.de/go/typeset/pdf"
)

// This file implements the text object and text showing operators.

// TextBegin starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) TextBegin() {
	if w.Err != nil {
		return
	}
	if w.inText {
		w.Err = fmt.Errorf("TextBegin: text object already open")
		return
	}
	w.inText = true
	_, w.Err = fmt.Fprintln(w.Content, "BT")
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (w *Writer) TextEnd() {
	if w.Err != nil {
		return
	}
	if !w.inText {
		w.Err = fmt.Errorf("TextEnd: no open text object")
		return
	}
	w.inText = false
	_, w.Err = fmt.Fprintln(w.Content, "ET")
}

// TextSetFont sets the font and font size.  The font is registered with the
// writer's resource set, so that the document writer can embed it later.
//
// This implements the PDF graphics operator "Tf".
func (w *Writer) TextSetFont(f Font, size float64) {
	if w.Err != nil {
		return
	}
	if f == nil {
		w.Err = fmt.Errorf("TextSetFont: no font given")
		return
	}
	name := w.Resources.fontName(f)
	w.Err = name.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "", float.Format(size, 3), "Tf")
}

// TextFirstLine moves to the start of the next line of text, offset by
// (dx, dy) from the start of the current line.
//
// This implements the PDF graphics operator "Td".
func (w *Writer) TextFirstLine(dx, dy float64) {
	if w.Err != nil {
		return
	}
	if !w.inText {
		w.Err = fmt.Errorf("TextFirstLine: no open text object")
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, w.coord(dx), w.coord(dy), "Td")
}

// TextShow shows a string, encoded with the current font's encoding.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShow(s pdf.String) {
	if w.Err != nil {
		return
	}
	if !w.inText {
		w.Err = fmt.Errorf("TextShow: no open text object")
		return
	}
	w.Err = s.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " Tj")
}
