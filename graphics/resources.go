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
	"strconv"

	"seehuhn.de/go/typeset/pdf"
)

// Font is the subset of font behaviour the content stream writer needs:
// a stable identity for the resource dictionary, and a way to encode text
// strings for the font's built-in encoding.  Embedding the font program
// into the PDF file is the document writer's concern.
type Font interface {
	// PostScriptName returns the PostScript name of the font.
	PostScriptName() string

	// Encode converts a string to the byte encoding used by this font.
	// Runes that cannot be represented are replaced.
	Encode(s string) pdf.String
}

// Resources records the resources referenced by a content stream.
// Fonts are assigned names /F0, /F1, ... in order of first use.
type Resources struct {
	fonts     map[Font]pdf.Name
	fontOrder []Font
}

// fontName returns the resource name for f, registering the font on first
// use.
func (r *Resources) fontName(f Font) pdf.Name {
	if name, ok := r.fonts[f]; ok {
		return name
	}
	if r.fonts == nil {
		r.fonts = make(map[Font]pdf.Name)
	}
	name := pdf.Name("F" + strconv.Itoa(len(r.fontOrder)))
	r.fonts[f] = name
	r.fontOrder = append(r.fontOrder, f)
	return name
}

// Fonts returns the fonts used by the content stream, in order of first
// use.
func (r *Resources) Fonts() []Font {
	return r.fontOrder
}

// NameOf returns the resource name assigned to f, or "" if the font has not
// been used.
func (r *Resources) NameOf(f Font) pdf.Name {
	return r.fonts[f]
}
