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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/typeset"
	"seehuhn.de/go/typeset/pdf"
)

// monoFace is a font.Face where every glyph is half the font size wide.
type monoFace struct{}

func (monoFace) PostScriptName() string { return "Mono" }
func (monoFace) GlyphAdvance(r rune, size float64) float64 {
	return size / 2
}
func (monoFace) TextWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size / 2
}
func (monoFace) Ascent(size float64) float64     { return 0.7 * size }
func (monoFace) Descent(size float64) float64    { return -0.2 * size }
func (monoFace) LineHeight(size float64) float64 { return 1.2 * size }
func (monoFace) CapHeight(size float64) float64  { return 0.7 * size }
func (monoFace) Encode(s string) pdf.String      { return pdf.String(s) }
func (monoFace) Embed(w *pdf.Writer) (pdf.Reference, error) {
	return pdf.Reference{}, nil
}

func monoStyle() typeset.TextStyle {
	return typeset.TextStyle{Face: monoFace{}, Size: 10}
}

func TestTextWrap(t *testing.T) {
	// at size 10 every glyph is 5pt wide
	txt := &Text{Content: "aaa bbb ccc", Style: monoStyle()}
	ctx := typeset.LayoutContext{
		Constraints: typeset.Loose(typeset.Size{Width: 40, Height: 1000}),
	}
	res, err := txt.Layout(ctx)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"aaa bbb", "ccc"}
	if d := cmp.Diff(txt.lines, want); d != "" {
		t.Error(d)
	}
	if res.Size != (typeset.Size{Width: 35, Height: 24}) {
		t.Errorf("got size %v, want {35 24}", res.Size)
	}
	if !res.HasBaseline || res.Baseline != 7 {
		t.Errorf("got baseline %g (set: %t), want 7", res.Baseline, res.HasBaseline)
	}
}

func TestTextNoWrapNeeded(t *testing.T) {
	txt := &Text{Content: "hello", Style: monoStyle()}
	ctx := typeset.LayoutContext{
		Constraints: typeset.BoxConstraints{
			MaxWidth:  math.Inf(1),
			MaxHeight: math.Inf(1),
		},
	}
	res, err := txt.Layout(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Size != (typeset.Size{Width: 25, Height: 12}) {
		t.Errorf("got %v, want {25 12}", res.Size)
	}
}

func TestTextExplicitNewline(t *testing.T) {
	txt := &Text{Content: "a\nbb", Style: monoStyle()}
	ctx := typeset.LayoutContext{
		Constraints: typeset.Loose(typeset.Size{Width: 1000, Height: 1000}),
	}
	res, err := txt.Layout(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(txt.lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(txt.lines))
	}
	if res.Size != (typeset.Size{Width: 10, Height: 24}) {
		t.Errorf("got %v, want {10 24}", res.Size)
	}
}

func TestTextLongWord(t *testing.T) {
	// a single word wider than the line is not split
	txt := &Text{Content: "abcdefghij xy", Style: monoStyle()}
	ctx := typeset.LayoutContext{
		Constraints: typeset.Loose(typeset.Size{Width: 30, Height: 1000}),
	}
	_, err := txt.Layout(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"abcdefghij", "xy"}
	if d := cmp.Diff(txt.lines, want); d != "" {
		t.Error(d)
	}
}

func TestTextPaint(t *testing.T) {
	txt := &Text{Content: "aaa bbb ccc", Style: monoStyle()}
	ctx := typeset.LayoutContext{
		Constraints: typeset.Loose(typeset.Size{Width: 40, Height: 1000}),
	}
	res, err := txt.Layout(ctx)
	if err != nil {
		t.Fatal(err)
	}

	out := paintOn(t, txt, res.Size, 100)
	// first baseline at y=7, second at y=19, flipped onto the page
	if !strings.Contains(out, "0 93 Td\n(aaa bbb) Tj") {
		t.Errorf("first line misplaced:\n%s", out)
	}
	if !strings.Contains(out, "0 81 Td\n(ccc) Tj") {
		t.Errorf("second line misplaced:\n%s", out)
	}
}

func TestTextThemeFallback(t *testing.T) {
	theme := &typeset.Theme{DefaultStyle: monoStyle()}
	txt := &Text{Content: "x"}
	ctx := typeset.LayoutContext{
		Constraints: typeset.Loose(typeset.Size{Width: 100, Height: 100}),
		Theme:       theme,
	}
	res, err := txt.Layout(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Size != (typeset.Size{Width: 5, Height: 12}) {
		t.Errorf("got %v, want {5 12}", res.Size)
	}
}
