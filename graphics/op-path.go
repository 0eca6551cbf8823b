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

import "fmt"

// This file implements the path construction and path painting operators.

// MoveTo starts a new path at the given coordinates.
//
// This implements the PDF graphics operator "m".
func (w *Writer) MoveTo(x, y float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), "m")
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PDF graphics operator "l".
func (w *Writer) LineTo(x, y float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), "l")
}

// CurveTo appends a cubic Bezier curve to the current path.
//
// This implements the PDF graphics operator "c".
func (w *Writer) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(x1), w.coord(y1),
		w.coord(x2), w.coord(y2),
		w.coord(x3), w.coord(y3), "c")
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (w *Writer) ClosePath() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "h")
}

// Rectangle appends a rectangle to the current path as a closed subpath.
//
// This implements the PDF graphics operator "re".
func (w *Writer) Rectangle(x, y, width, height float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(x), w.coord(y), w.coord(width), w.coord(height), "re")
}

// Fill fills the current path using the nonzero winding number rule.
//
// This implements the PDF graphics operator "f".
func (w *Writer) Fill() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "f")
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (w *Writer) Stroke() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "S")
}

// FillAndStroke fills and then strokes the current path.
//
// This implements the PDF graphics operator "B".
func (w *Writer) FillAndStroke() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "B")
}

// ClipNonZero intersects the current clipping path with the current path,
// using the nonzero winding number rule.
//
// This implements the PDF graphics operator "W".
func (w *Writer) ClipNonZero() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "W")
}

// EndPath ends the path without filling or stroking it.  This is most often
// used after ClipNonZero.
//
// This implements the PDF graphics operator "n".
func (w *Writer) EndPath() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "n")
}
