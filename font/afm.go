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

package font

import (
	"io"

	"seehuhn.de/go/postscript/afm"

	"seehuhn.de/go/typeset/pdf"
)

// AFMFace is a font face backed by Adobe Font Metrics.  The font program
// itself is not embedded; the viewer must have access to the font.
type AFMFace struct {
	metrics *afm.Metrics
}

// LoadAFM reads font metrics in AFM format.
func LoadAFM(r io.Reader) (*AFMFace, error) {
	metrics, err := afm.Read(r)
	if err != nil {
		return nil, err
	}
	return &AFMFace{metrics: metrics}, nil
}

// PostScriptName implements the [Face] interface.
func (f *AFMFace) PostScriptName() string {
	return f.metrics.FontName
}

// GlyphAdvance implements the [Face] interface.
func (f *AFMFace) GlyphAdvance(r rune, size float64) float64 {
	name, ok := asciiGlyphName(r)
	if !ok {
		name = "question"
	}
	if _, exists := f.metrics.Glyphs[name]; !exists {
		name = "question"
	}
	return f.metrics.GlyphWidthPDF(name) * size / 1000
}

// TextWidth implements the [Face] interface.
func (f *AFMFace) TextWidth(s string, size float64) float64 {
	return textWidth(f, s, size)
}

// Ascent implements the [Face] interface.
func (f *AFMFace) Ascent(size float64) float64 {
	return f.metrics.Ascent * size / 1000
}

// Descent implements the [Face] interface.
func (f *AFMFace) Descent(size float64) float64 {
	return f.metrics.Descent * size / 1000
}

// LineHeight implements the [Face] interface.
func (f *AFMFace) LineHeight(size float64) float64 {
	return 1.2 * size
}

// CapHeight implements the [Face] interface.
func (f *AFMFace) CapHeight(size float64) float64 {
	return f.metrics.CapHeight * size / 1000
}

// Encode implements the [Face] interface.
func (f *AFMFace) Encode(s string) pdf.String {
	return encodeWinAnsi(s)
}

// Embed implements the [Face] interface.
//
// Since only the metrics are available, the font is written as a simple
// Type 1 font without an embedded font program.
func (f *AFMFace) Embed(w *pdf.Writer) (pdf.Reference, error) {
	ref := w.Alloc()
	dict := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name(f.metrics.FontName),
		"Encoding": pdf.Name("WinAnsiEncoding"),
	}
	err := w.Put(ref, dict)
	if err != nil {
		return pdf.Reference{}, err
	}
	return ref, nil
}
