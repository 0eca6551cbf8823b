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

// Package graphics emits PDF content stream operators.
//
// A Writer accumulates the drawing operators for a single content stream.
// All coordinates are in PDF default user space (origin in the lower left
// corner, y increasing upwards, units of 1/72 inch).  Errors are sticky:
// once an operation has failed, all further operations are ignored and the
// first error is kept in the Err field.
package graphics

import (
	"fmt"
	"io"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/typeset/internal/float"
)

// Writer writes PDF content stream operators to an io.Writer.
type Writer struct {
	Content   io.Writer
	Resources *Resources

	// Err is the first error that occurred while writing the content
	// stream, or nil.
	Err error

	// CTM is the current transformation matrix.
	CTM matrix.Matrix

	nesting int
	inText  bool
}

// NewWriter allocates a new content stream writer.  If res is nil, a fresh
// resource set is created.
func NewWriter(content io.Writer, res *Resources) *Writer {
	if res == nil {
		res = &Resources{}
	}
	return &Writer{
		Content:   content,
		Resources: res,
		CTM:       matrix.Identity,
	}
}

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (w *Writer) PushGraphicsState() {
	if w.Err != nil {
		return
	}
	w.nesting++
	_, w.Err = fmt.Fprintln(w.Content, "q")
}

// PopGraphicsState restores the previously saved graphics state.
//
// This implements the PDF graphics operator "Q".
func (w *Writer) PopGraphicsState() {
	if w.Err != nil {
		return
	}
	if w.nesting == 0 {
		w.Err = fmt.Errorf("PopGraphicsState: no matching PushGraphicsState")
		return
	}
	w.nesting--
	_, w.Err = fmt.Fprintln(w.Content, "Q")
}

// StackDepth returns the number of graphics states currently saved by
// PushGraphicsState and not yet restored.
func (w *Writer) StackDepth() int {
	return w.nesting
}

// Transform applies a transformation matrix to the coordinate system.
// The new transformation is applied to user coordinates first, followed
// by the existing transformation.
//
// This implements the PDF graphics operator "cm".
func (w *Writer) Transform(m matrix.Matrix) {
	if w.Err != nil {
		return
	}
	w.CTM = m.Mul(w.CTM)
	_, w.Err = fmt.Fprintln(w.Content,
		float.Format(m[0], 3), float.Format(m[1], 3),
		float.Format(m[2], 3), float.Format(m[3], 3),
		float.Format(m[4], 3), float.Format(m[5], 3), "cm")
}

// SetLineWidth sets the line width.
//
// This implements the PDF graphics operator "w".
func (w *Writer) SetLineWidth(width float64) {
	if w.Err != nil {
		return
	}
	if width < 0 {
		w.Err = fmt.Errorf("SetLineWidth: negative width %f", width)
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, w.coord(width), "w")
}

func (w *Writer) coord(x float64) string {
	return float.Format(x, 2)
}
