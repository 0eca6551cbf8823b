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
	"strconv"

	"seehuhn.de/go/typeset/internal/float"
)

// Color is an RGB color in the DeviceRGB color space.  All channel values
// are in the range from 0 to 1.  Two colors are equal if and only if all
// three channels compare equal.
type Color struct {
	R, G, B float64
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// RGB returns the color with the given channel values.  Values outside the
// range [0, 1] are clamped.
func RGB(r, g, b float64) Color {
	return Color{clamp01(r), clamp01(g), clamp01(b)}
}

// RGB255 returns the color with the given 8-bit channel values.
// Values outside the range [0, 255] are clamped.
func RGB255(r, g, b int) Color {
	return Color{clamp01(float64(r) / 255), clamp01(float64(g) / 255), clamp01(float64(b) / 255)}
}

// ParseHex parses a color in the form "#RRGGBB" or "RRGGBB".
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	return RGB255(int(v>>16), int(v>>8&0xff), int(v&0xff)), nil
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// SetFillColor sets the fill color in the graphics state.
//
// This implements the PDF graphics operator "rg".
func (w *Writer) SetFillColor(col Color) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content,
		float.Format(col.R, 4), float.Format(col.G, 4), float.Format(col.B, 4), "rg")
}

// SetStrokeColor sets the stroke color in the graphics state.
//
// This implements the PDF graphics operator "RG".
func (w *Writer) SetStrokeColor(col Color) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content,
		float.Format(col.R, 4), float.Format(col.G, 4), float.Format(col.B, 4), "RG")
}
