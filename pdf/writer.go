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

package pdf

import (
	"errors"
	"fmt"
	"io"
)

// Writer writes a PDF file to an io.Writer, one indirect object at a time.
// The file is finished by a classic cross-reference table and trailer.
type Writer struct {
	w       *posWriter
	xref    map[int]*xrefEntry
	nextRef int
	closed  bool
}

type xrefEntry struct {
	Pos        int64
	Generation uint16
}

// NewWriter prepares a PDF file for writing.
func NewWriter(w io.Writer) (*Writer, error) {
	pdf := &Writer{
		w:       &posWriter{w: w},
		xref:    make(map[int]*xrefEntry),
		nextRef: 1,
	}
	pdf.xref[0] = &xrefEntry{
		Pos:        -1,
		Generation: 65535,
	}

	_, err := fmt.Fprintf(pdf.w, "%%PDF-1.7\n%%\x80\x80\x80\x80\n")
	if err != nil {
		return nil, err
	}

	return pdf, nil
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	res := Reference{Number: pdf.nextRef}
	pdf.nextRef++
	return res
}

// Put writes an object to the PDF file as an indirect object.  The reference
// must have been obtained from Alloc and must not have been used before.
func (pdf *Writer) Put(ref Reference, obj Object) error {
	if pdf.closed {
		return errors.New("writer is closed")
	}
	if ref.Number <= 0 || ref.Number >= pdf.nextRef {
		return fmt.Errorf("invalid object number %d", ref.Number)
	}
	if _, seen := pdf.xref[ref.Number]; seen {
		return fmt.Errorf("object %s already written", ref)
	}

	pos := pdf.w.pos
	if obj == nil {
		// missing objects are treated as null
		pos = -1
	} else {
		_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", ref.Number, ref.Generation)
		if err != nil {
			return err
		}
		err = obj.PDF(pdf.w)
		if err != nil {
			return err
		}
		_, err = pdf.w.Write([]byte("\nendobj\n"))
		if err != nil {
			return err
		}
	}

	pdf.xref[ref.Number] = &xrefEntry{Pos: pos, Generation: ref.Generation}
	return nil
}

// Close writes the cross-reference table and trailer, flushing any unwritten
// data to the underlying io.Writer.  The catalog reference is required; the
// info reference may be the zero Reference if no document information
// dictionary is present.
func (pdf *Writer) Close(catalog, info Reference) error {
	if pdf.closed {
		return errors.New("writer is closed")
	}
	if catalog.IsZero() {
		return errors.New("missing /Catalog")
	}

	trailer := Dict{
		"Size": Integer(pdf.nextRef),
		"Root": catalog,
	}
	if !info.IsZero() {
		trailer["Info"] = info
	}

	xrefPos := pdf.w.pos
	err := pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xrefPos)
	if err != nil {
		return err
	}

	pdf.closed = true
	return nil
}

func (pdf *Writer) writeXRefTable(trailer Dict) error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	for i := 0; i < pdf.nextRef; i++ {
		entry := pdf.xref[i]
		if entry != nil && entry.Pos >= 0 {
			_, err = fmt.Fprintf(pdf.w, "%010d %05d n\r\n",
				entry.Pos, entry.Generation)
		} else {
			// free object
			_, err = pdf.w.Write([]byte("0000000000 65535 f\r\n"))
		}
		if err != nil {
			return err
		}
	}

	_, err = pdf.w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	return trailer.PDF(pdf.w)
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
