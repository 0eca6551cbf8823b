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

package widget

import (
	"math"
	"strings"

	"github.com/clipperhouse/uax29/v2/words"

	"seehuhn.de/go/typeset"
)

// Text is a paragraph of wrapped text.
//
// Line breaks are chosen greedily at Unicode word boundaries.  Explicit
// newlines in the content always break.  If Style.Face is unset, the
// theme's default style is used.
type Text struct {
	Content string
	Style   typeset.TextStyle

	style typeset.TextStyle
	lines []string
}

// Layout implements the [typeset.Widget] interface.
func (t *Text) Layout(ctx typeset.LayoutContext) (typeset.LayoutResult, error) {
	t.style = t.Style
	if t.style.Face == nil {
		t.style = ctx.Theme.DefaultStyle
	}
	face, size := t.style.Face, t.style.Size

	maxWidth := ctx.Constraints.MaxWidth
	t.lines = t.lines[:0]
	var width float64
	for _, para := range strings.Split(t.Content, "\n") {
		for _, line := range wrapLine(para, maxWidth, t.style) {
			t.lines = append(t.lines, line)
			width = math.Max(width, face.TextWidth(line, size))
		}
	}

	height := float64(len(t.lines)) * t.style.LineHeight()
	res := typeset.LayoutResult{
		Size: ctx.Constraints.Constrain(typeset.Size{
			Width:  width,
			Height: height,
		}),
	}
	if len(t.lines) > 0 {
		res.Baseline = face.Ascent(size)
		res.HasBaseline = true
	}
	return res, nil
}

// Paint implements the [typeset.Widget] interface.
func (t *Text) Paint(ctx *typeset.PaintContext) {
	face, size := t.style.Face, t.style.Size
	lineHeight := t.style.LineHeight()

	ctx.Canvas.SetFillColor(t.style.Color)
	y := face.Ascent(size)
	for _, line := range t.lines {
		if line != "" {
			ctx.Canvas.FillText(face, size, 0, y, line)
		}
		y += lineHeight
	}
}

// wrapLine breaks one paragraph into lines no wider than maxWidth.  A
// single word wider than maxWidth gets a line of its own rather than
// being split.
func wrapLine(para string, maxWidth float64, style typeset.TextStyle) []string {
	face, size := style.Face, style.Size
	if math.IsInf(maxWidth, +1) || face.TextWidth(para, size) <= maxWidth {
		return []string{para}
	}

	var lines []string
	var line strings.Builder
	var lineWidth float64

	tokens := words.FromString(para)
	for tokens.Next() {
		tok := tokens.Value()
		w := face.TextWidth(tok, size)
		isSpace := strings.TrimSpace(tok) == ""

		if line.Len() > 0 && !isSpace && lineWidth+w > maxWidth {
			lines = append(lines, strings.TrimRight(line.String(), " \t"))
			line.Reset()
			lineWidth = 0
		}
		if line.Len() == 0 && isSpace {
			continue
		}
		line.WriteString(tok)
		lineWidth += w
	}
	if line.Len() > 0 {
		lines = append(lines, strings.TrimRight(line.String(), " \t"))
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
