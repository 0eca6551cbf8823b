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

// Package font provides font metrics and font embedding for PDF files.
//
// A Face answers the measurement queries the layout engine needs (glyph
// advance widths, ascent, descent, line height) and knows how to embed
// itself into a PDF file.  All methods must be deterministic: for identical
// inputs they must return identical results, since layout results are
// cached.
package font

import (
	"seehuhn.de/go/typeset/pdf"
)

// Face represents a font at the interface between layout and output.
//
// Sizes passed to the metric methods are in PDF points; all returned
// lengths are in PDF points, too.
type Face interface {
	// PostScriptName returns the PostScript name of the font.
	PostScriptName() string

	// GlyphAdvance returns the advance width of the glyph used for the
	// given rune, at the given font size.
	GlyphAdvance(r rune, size float64) float64

	// TextWidth returns the width of a string, at the given font size.
	TextWidth(s string, size float64) float64

	// Ascent returns the height of the font above the baseline,
	// at the given font size.
	Ascent(size float64) float64

	// Descent returns the depth of the font below the baseline, at the
	// given font size.  The returned value is negative or zero.
	Descent(size float64) float64

	// LineHeight returns the default baseline-to-baseline distance, at the
	// given font size.
	LineHeight(size float64) float64

	// CapHeight returns the height of capital letters above the baseline,
	// at the given font size.
	CapHeight(size float64) float64

	// Encode converts a string to the byte encoding used by this font.
	// Runes outside the font's encoding are replaced.
	Encode(s string) pdf.String

	// Embed writes the font dictionary (and, where applicable, the font
	// program) to the PDF file and returns a reference to the font
	// dictionary.
	Embed(w *pdf.Writer) (pdf.Reference, error)
}

func textWidth(f Face, s string, size float64) float64 {
	var total float64
	for _, r := range s {
		total += f.GlyphAdvance(r, size)
	}
	return total
}
