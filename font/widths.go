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

// Glyph metrics for the standard 14 text fonts, from the Adobe Core 35 AFM
// files.  Widths are in PDF glyph space units (1/1000 of the font size),
// for character codes 32 to 126.  The oblique variants of Helvetica and
// Courier share the widths of the corresponding upright fonts.

// builtinMetrics holds the metrics of one standard font.
type builtinMetrics struct {
	ascent    float64 // typographic ascent, glyph space units
	descent   float64 // typographic descent, glyph space units (negative)
	capHeight float64
	widths    *[95]float64 // codes 32 to 126
}

// avgWidth returns the average glyph width, used as a fallback advance for
// runes outside the table.
func (m *builtinMetrics) avgWidth() float64 {
	var sum float64
	for _, w := range m.widths {
		sum += w
	}
	return sum / float64(len(m.widths))
}

var helveticaWidths = [95]float64{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333,
	278, 278, 556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 278, 278,
	584, 584, 584, 556, 1015, 667, 667, 722, 722, 667, 611, 778, 722, 278,
	500, 667, 556, 833, 722, 778, 667, 778, 722, 667, 611, 722, 667, 944,
	667, 667, 611, 278, 278, 278, 469, 556, 333, 556, 556, 500, 556, 556,
	278, 556, 556, 222, 222, 500, 222, 833, 556, 556, 556, 556, 333, 500,
	278, 556, 500, 722, 500, 500, 500, 334, 260, 334, 584,
}

var helveticaBoldWidths = [95]float64{
	278, 333, 474, 556, 556, 889, 722, 238, 333, 333, 389, 584, 278, 333,
	278, 278, 556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 333, 333,
	584, 584, 584, 611, 975, 722, 722, 722, 722, 667, 611, 778, 722, 278,
	556, 722, 611, 833, 722, 778, 667, 778, 722, 667, 611, 722, 667, 944,
	667, 667, 611, 333, 278, 333, 584, 556, 333, 556, 611, 556, 611, 556,
	333, 611, 611, 278, 278, 556, 278, 889, 611, 611, 611, 611, 389, 556,
	333, 611, 556, 778, 556, 556, 500, 389, 280, 389, 584,
}

var timesRomanWidths = [95]float64{
	250, 333, 408, 500, 500, 833, 778, 180, 333, 333, 500, 564, 250, 333,
	250, 278, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 278, 278,
	564, 564, 564, 444, 921, 722, 667, 667, 722, 611, 556, 722, 722, 333,
	389, 722, 611, 889, 722, 722, 556, 722, 667, 556, 611, 722, 722, 944,
	722, 722, 611, 333, 278, 333, 469, 500, 333, 444, 500, 444, 500, 444,
	333, 500, 500, 278, 278, 500, 278, 778, 500, 500, 500, 500, 333, 389,
	278, 500, 500, 722, 500, 500, 444, 480, 200, 480, 541,
}

var timesBoldWidths = [95]float64{
	250, 333, 555, 500, 500, 1000, 833, 278, 333, 333, 500, 570, 250, 333,
	250, 278, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 333, 333,
	570, 570, 570, 500, 930, 722, 667, 722, 722, 667, 611, 778, 778, 389,
	500, 778, 667, 944, 722, 778, 611, 778, 722, 556, 667, 722, 722, 1000,
	722, 722, 667, 333, 278, 333, 581, 500, 333, 500, 556, 444, 556, 444,
	333, 500, 556, 278, 333, 556, 278, 833, 556, 500, 556, 556, 444, 389,
	333, 556, 500, 722, 500, 500, 444, 394, 220, 394, 520,
}

var timesItalicWidths = [95]float64{
	250, 333, 420, 500, 500, 833, 778, 214, 333, 333, 500, 675, 250, 333,
	250, 278, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 333, 333,
	675, 675, 675, 500, 920, 611, 611, 667, 722, 611, 611, 722, 722, 333,
	444, 667, 556, 833, 667, 722, 611, 722, 611, 500, 556, 722, 611, 833,
	611, 556, 556, 389, 278, 389, 422, 500, 333, 500, 500, 444, 500, 444,
	278, 500, 500, 278, 278, 444, 278, 722, 500, 500, 500, 500, 389, 389,
	278, 500, 444, 667, 444, 444, 389, 400, 275, 400, 541,
}

var timesBoldItalicWidths = [95]float64{
	250, 389, 555, 500, 500, 833, 778, 278, 333, 333, 500, 570, 250, 333,
	250, 278, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 333, 333,
	570, 570, 570, 500, 832, 667, 667, 667, 722, 667, 667, 722, 778, 389,
	500, 667, 611, 889, 722, 722, 611, 722, 667, 556, 611, 722, 667, 889,
	667, 611, 611, 333, 278, 333, 570, 500, 333, 500, 500, 444, 500, 444,
	333, 500, 556, 278, 278, 500, 278, 778, 556, 500, 500, 500, 389, 389,
	278, 556, 444, 667, 500, 444, 389, 348, 220, 348, 570,
}

var courierWidths = func() *[95]float64 {
	var w [95]float64
	for i := range w {
		w[i] = 600
	}
	return &w
}()

var (
	helveticaMetrics = &builtinMetrics{
		ascent: 718, descent: -207, capHeight: 718,
		widths: &helveticaWidths,
	}
	helveticaBoldMetrics = &builtinMetrics{
		ascent: 718, descent: -207, capHeight: 718,
		widths: &helveticaBoldWidths,
	}
	timesRomanMetrics = &builtinMetrics{
		ascent: 683, descent: -217, capHeight: 662,
		widths: &timesRomanWidths,
	}
	timesBoldMetrics = &builtinMetrics{
		ascent: 683, descent: -217, capHeight: 676,
		widths: &timesBoldWidths,
	}
	timesItalicMetrics = &builtinMetrics{
		ascent: 683, descent: -217, capHeight: 653,
		widths: &timesItalicWidths,
	}
	timesBoldItalicMetrics = &builtinMetrics{
		ascent: 683, descent: -217, capHeight: 669,
		widths: &timesBoldItalicWidths,
	}
	courierMetrics = &builtinMetrics{
		ascent: 629, descent: -157, capHeight: 562,
		widths: courierWidths,
	}
)
