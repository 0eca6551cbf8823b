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

import "seehuhn.de/go/typeset"

// Format names a paper size preset.
type Format string

// The named paper formats.
const (
	A3     Format = "A3"
	A4     Format = "A4"
	A5     Format = "A5"
	Letter Format = "Letter"
	Legal  Format = "Legal"
)

// Paper sizes in PDF points.  The same named format must map to the same
// output dimensions everywhere, so these are fixed integer values.
var formatSizes = map[Format]typeset.Size{
	A3:     {Width: 842, Height: 1191},
	A4:     {Width: 595, Height: 842},
	A5:     {Width: 420, Height: 595},
	Letter: {Width: 612, Height: 792},
	Legal:  {Width: 612, Height: 1008},
}

// Size returns the page dimensions of the format in PDF points.
func (f Format) Size() (typeset.Size, bool) {
	s, ok := formatSizes[f]
	return s, ok
}
