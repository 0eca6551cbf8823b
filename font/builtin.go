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
	"seehuhn.de/go/typeset/pdf"
)

// Builtin is one of the standard PDF text fonts.  These fonts are available
// in every conforming PDF viewer and need no embedded font program.
type Builtin struct {
	name    string
	metrics *builtinMetrics
}

// The 12 standard text fonts.  Symbol and ZapfDingbats are not included,
// since they cannot be used with WinAnsiEncoding.
var (
	Helvetica            = &Builtin{"Helvetica", helveticaMetrics}
	HelveticaBold        = &Builtin{"Helvetica-Bold", helveticaBoldMetrics}
	HelveticaOblique     = &Builtin{"Helvetica-Oblique", helveticaMetrics}
	HelveticaBoldOblique = &Builtin{"Helvetica-BoldOblique", helveticaBoldMetrics}
	TimesRoman           = &Builtin{"Times-Roman", timesRomanMetrics}
	TimesBold            = &Builtin{"Times-Bold", timesBoldMetrics}
	TimesItalic          = &Builtin{"Times-Italic", timesItalicMetrics}
	TimesBoldItalic      = &Builtin{"Times-BoldItalic", timesBoldItalicMetrics}
	Courier              = &Builtin{"Courier", courierMetrics}
	CourierBold          = &Builtin{"Courier-Bold", courierMetrics}
	CourierOblique       = &Builtin{"Courier-Oblique", courierMetrics}
	CourierBoldOblique   = &Builtin{"Courier-BoldOblique", courierMetrics}
)

// All lists the standard text fonts by PostScript name.
var All = map[string]*Builtin{
	"Helvetica":             Helvetica,
	"Helvetica-Bold":        HelveticaBold,
	"Helvetica-Oblique":     HelveticaOblique,
	"Helvetica-BoldOblique": HelveticaBoldOblique,
	"Times-Roman":           TimesRoman,
	"Times-Bold":            TimesBold,
	"Times-Italic":          TimesItalic,
	"Times-BoldItalic":      TimesBoldItalic,
	"Courier":               Courier,
	"Courier-Bold":          CourierBold,
	"Courier-Oblique":       CourierOblique,
	"Courier-BoldOblique":   CourierBoldOblique,
}

// PostScriptName implements the [Face] interface.
func (f *Builtin) PostScriptName() string {
	return f.name
}

// GlyphAdvance implements the [Face] interface.
//
// The compiled-in width tables cover the printable ASCII range.  For other
// encodable runes the average table width is used as an approximation.
func (f *Builtin) GlyphAdvance(r rune, size float64) float64 {
	if r >= 0x20 && r <= 0x7e {
		return f.metrics.widths[r-0x20] * size / 1000
	}
	if _, ok := winAnsiEncode(r); ok {
		return f.metrics.avgWidth() * size / 1000
	}
	return f.metrics.widths['?'-0x20] * size / 1000
}

// TextWidth implements the [Face] interface.
func (f *Builtin) TextWidth(s string, size float64) float64 {
	return textWidth(f, s, size)
}

// Ascent implements the [Face] interface.
func (f *Builtin) Ascent(size float64) float64 {
	return f.metrics.ascent * size / 1000
}

// Descent implements the [Face] interface.
func (f *Builtin) Descent(size float64) float64 {
	return f.metrics.descent * size / 1000
}

// LineHeight implements the [Face] interface.
func (f *Builtin) LineHeight(size float64) float64 {
	return 1.2 * size
}

// CapHeight implements the [Face] interface.
func (f *Builtin) CapHeight(size float64) float64 {
	return f.metrics.capHeight * size / 1000
}

// Encode implements the [Face] interface.
func (f *Builtin) Encode(s string) pdf.String {
	return encodeWinAnsi(s)
}

// Embed implements the [Face] interface.
func (f *Builtin) Embed(w *pdf.Writer) (pdf.Reference, error) {
	ref := w.Alloc()
	dict := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name(f.name),
		"Encoding": pdf.Name("WinAnsiEncoding"),
	}
	err := w.Put(ref, dict)
	if err != nil {
		return pdf.Reference{}, err
	}
	return ref, nil
}
