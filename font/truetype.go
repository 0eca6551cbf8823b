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
	"bytes"
	"errors"
	"math"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/typeset/pdf"
)

// TrueTypeFace is a TrueType font which is embedded into the PDF file as a
// simple font.
type TrueTypeFace struct {
	font *sfnt.Font
	cmap cmap.Subtable
}

// LoadTrueType parses a TrueType font.
// The font must have glyf outlines and a usable cmap table.
func LoadTrueType(data []byte) (*TrueTypeFace, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if !info.IsGlyf() {
		return nil, errors.New("no glyf outlines in font")
	}
	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, err
	}
	return &TrueTypeFace{font: info, cmap: subtable}, nil
}

// PostScriptName implements the [Face] interface.
func (f *TrueTypeFace) PostScriptName() string {
	return f.font.PostScriptName()
}

// gid returns the glyph used for a rune, or glyph 0 (.notdef) if the rune
// is not covered by the font's cmap.
func (f *TrueTypeFace) gid(r rune) glyph.ID {
	return f.cmap.Lookup(r)
}

// GlyphAdvance implements the [Face] interface.
func (f *TrueTypeFace) GlyphAdvance(r rune, size float64) float64 {
	return f.font.GlyphWidthPDF(f.gid(r)) * size / 1000
}

// TextWidth implements the [Face] interface.
func (f *TrueTypeFace) TextWidth(s string, size float64) float64 {
	return textWidth(f, s, size)
}

// Ascent implements the [Face] interface.
func (f *TrueTypeFace) Ascent(size float64) float64 {
	return float64(f.font.Ascent) / float64(f.font.UnitsPerEm) * size
}

// Descent implements the [Face] interface.
func (f *TrueTypeFace) Descent(size float64) float64 {
	return float64(f.font.Descent) / float64(f.font.UnitsPerEm) * size
}

// LineHeight implements the [Face] interface.
func (f *TrueTypeFace) LineHeight(size float64) float64 {
	asc := f.font.Ascent
	desc := f.font.Descent
	gap := f.font.LineGap
	return float64(asc-desc+gap) / float64(f.font.UnitsPerEm) * size
}

// CapHeight implements the [Face] interface.
func (f *TrueTypeFace) CapHeight(size float64) float64 {
	return float64(f.font.CapHeight) / float64(f.font.UnitsPerEm) * size
}

// Encode implements the [Face] interface.
func (f *TrueTypeFace) Encode(s string) pdf.String {
	return encodeWinAnsi(s)
}

// Flag bits for the font descriptor, from table 123 of PDF 32000-1:2008.
const (
	flagFixedPitch  = 1 << 0
	flagSerif       = 1 << 1
	flagNonsymbolic = 1 << 5
	flagItalic      = 1 << 6
)

// Embed implements the [Face] interface.
//
// The font program is included in the file as a FontFile2 stream, and the
// font is written as a simple TrueType font with WinAnsiEncoding.
func (f *TrueTypeFace) Embed(w *pdf.Writer) (pdf.Reference, error) {
	fontRef := w.Alloc()
	descriptorRef := w.Alloc()
	fontFileRef := w.Alloc()

	q := 1000 / float64(f.font.UnitsPerEm)
	ascent := math.Round(float64(f.font.Ascent) * q)
	descent := math.Round(float64(f.font.Descent) * q)
	capHeight := math.Round(float64(f.font.CapHeight) * q)

	widths := make(pdf.Array, 0, 95)
	for c := rune(32); c <= 126; c++ {
		wd := math.Round(f.font.GlyphWidthPDF(f.gid(c)))
		widths = append(widths, pdf.Integer(wd))
	}

	fontDict := pdf.Dict{
		"Type":           pdf.Name("Font"),
		"Subtype":        pdf.Name("TrueType"),
		"BaseFont":       pdf.Name(f.font.PostScriptName()),
		"FirstChar":      pdf.Integer(32),
		"LastChar":       pdf.Integer(126),
		"Widths":         widths,
		"Encoding":       pdf.Name("WinAnsiEncoding"),
		"FontDescriptor": descriptorRef,
	}
	err := w.Put(fontRef, fontDict)
	if err != nil {
		return pdf.Reference{}, err
	}

	flags := flagNonsymbolic
	if f.font.IsFixedPitch() {
		flags |= flagFixedPitch
	}
	if f.font.IsSerif {
		flags |= flagSerif
	}
	if f.font.IsItalic {
		flags |= flagItalic
	}

	descriptor := pdf.Dict{
		"Type":        pdf.Name("FontDescriptor"),
		"FontName":    pdf.Name(f.font.PostScriptName()),
		"Flags":       pdf.Integer(flags),
		"FontBBox":    &pdf.Rectangle{LLx: 0, LLy: descent, URx: 1000, URy: ascent},
		"ItalicAngle": pdf.Real(f.font.ItalicAngle),
		"Ascent":      pdf.Real(ascent),
		"Descent":     pdf.Real(descent),
		"CapHeight":   pdf.Real(capHeight),
		"StemV":       pdf.Integer(80),
		"FontFile2":   fontFileRef,
	}
	err = w.Put(descriptorRef, descriptor)
	if err != nil {
		return pdf.Reference{}, err
	}

	// See section 9.9 of PDF 32000-1:2008 for details.
	buf := &bytes.Buffer{}
	n, err := f.font.WriteTrueTypePDF(buf)
	if err != nil {
		return pdf.Reference{}, err
	}
	fontFile := &pdf.Stream{
		Dict: pdf.Dict{
			"Length":  pdf.Integer(buf.Len()),
			"Length1": pdf.Integer(n),
		},
		R: buf,
	}
	err = w.Put(fontFileRef, fontFile)
	if err != nil {
		return pdf.Reference{}, err
	}

	return fontRef, nil
}
