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
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/typeset/pdf"
)

func TestGlyphAdvance(t *testing.T) {
	type testCase struct {
		face Face
		r    rune
		size float64
		want float64
	}
	cases := []testCase{
		{Courier, 'A', 10, 6},
		{Courier, ' ', 12, 7.2},
		{CourierBoldOblique, 'm', 10, 6},
		{Helvetica, ' ', 1000, 278},
		{Helvetica, 'A', 1000, 667},
		{Helvetica, '@', 1000, 1015},
		{HelveticaBold, '@', 1000, 975},
		{HelveticaOblique, 'A', 1000, 667},
		{TimesRoman, '@', 1000, 921},
		{TimesRoman, ' ', 1000, 250},
		{TimesBold, '%', 1000, 1000},
		{TimesItalic, 'A', 1000, 611},
		{TimesBoldItalic, '@', 1000, 832},
	}
	for _, c := range cases {
		got := c.face.GlyphAdvance(c.r, c.size)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("%s %q at %g: got %g, want %g",
				c.face.PostScriptName(), c.r, c.size, got, c.want)
		}
	}
}

func TestTextWidth(t *testing.T) {
	got := Courier.TextWidth("abc", 10)
	if math.Abs(got-18) > 1e-9 {
		t.Errorf("got %g, want 18", got)
	}

	// the sum of the individual advance widths
	s := "Hello, World!"
	var want float64
	for _, r := range s {
		want += TimesRoman.GlyphAdvance(r, 12)
	}
	got = TimesRoman.TextWidth(s, 12)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("got %g, want %g", got, want)
	}
}

func TestVerticalMetrics(t *testing.T) {
	for name, f := range All {
		t.Run(name, func(t *testing.T) {
			if f.PostScriptName() != name {
				t.Errorf("wrong name: %q != %q", f.PostScriptName(), name)
			}
			if a := f.Ascent(10); a <= 0 {
				t.Errorf("ascent %g must be positive", a)
			}
			if d := f.Descent(10); d >= 0 {
				t.Errorf("descent %g must be negative", d)
			}
			if c := f.CapHeight(10); c <= 0 || c > f.Ascent(10) {
				t.Errorf("odd cap height %g", c)
			}
			if lh := f.LineHeight(10); lh < f.Ascent(10)-f.Descent(10) {
				t.Errorf("line height %g too small", lh)
			}
		})
	}
}

func TestEncodeWinAnsi(t *testing.T) {
	type testCase struct {
		in   string
		want pdf.String
	}
	cases := []testCase{
		{"Hello", pdf.String("Hello")},
		{"café", pdf.String{'c', 'a', 'f', 0xe9}},
		{"€", pdf.String{0x80}},    // Euro sign
		{"–", pdf.String{0x96}},    // en dash
		{"™", pdf.String{0x99}},    // trade mark
		{"a→b", pdf.String("a?b")},  // arrow has no WinAnsi code
		{"\x00", pdf.String{'?'}},  // control characters
	}
	for _, c := range cases {
		got := Helvetica.Encode(c.in)
		if d := cmp.Diff(got, c.want); d != "" {
			t.Errorf("Encode(%q): %s", c.in, d)
		}
	}
}

func TestGlyphNames(t *testing.T) {
	type testCase struct {
		r    rune
		want string
	}
	cases := []testCase{
		{' ', "space"},
		{'0', "zero"},
		{'9', "nine"},
		{'A', "A"},
		{'z', "z"},
		{'@', "at"},
		{'~', "asciitilde"},
	}
	for _, c := range cases {
		got, ok := asciiGlyphName(c.r)
		if !ok || got != c.want {
			t.Errorf("asciiGlyphName(%q) = %q, %t; want %q",
				c.r, got, ok, c.want)
		}
	}
	if _, ok := asciiGlyphName('é'); ok {
		t.Error("asciiGlyphName must only cover ASCII")
	}
}

func TestBuiltinEmbed(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf)
	if err != nil {
		t.Fatal(err)
	}

	ref, err := TimesItalic.Embed(w)
	if err != nil {
		t.Fatal(err)
	}
	if ref.IsZero() {
		t.Error("embed returned the null reference")
	}

	catalog := w.Alloc()
	err = w.Put(catalog, pdf.Dict{"Type": pdf.Name("Catalog")})
	if err != nil {
		t.Fatal(err)
	}
	err = w.Close(catalog, pdf.Reference{})
	if err != nil {
		t.Fatal(err)
	}

	body := buf.String()
	for _, frag := range []string{
		"/Type /Font",
		"/Subtype /Type1",
		"/BaseFont /Times-Italic",
		"/Encoding /WinAnsiEncoding",
	} {
		if !strings.Contains(body, frag) {
			t.Errorf("missing %q in output", frag)
		}
	}
}

func TestLoadAFM(t *testing.T) {
	const sample = `StartFontMetrics 4.1
FontName Test-Regular
FullName Test Regular
Ascender 700
Descender -230
CapHeight 690
StartCharMetrics 3
C 32 ; WX 300 ; N space ;
C 65 ; WX 640 ; N A ;
C 97 ; WX 480 ; N a ;
EndCharMetrics
EndFontMetrics
`
	face, err := LoadAFM(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}

	if got := face.PostScriptName(); got != "Test-Regular" {
		t.Errorf("wrong font name %q", got)
	}
	if got := face.GlyphAdvance('A', 1000); math.Abs(got-640) > 1e-9 {
		t.Errorf("advance of A: got %g, want 640", got)
	}
	if got := face.Ascent(1000); math.Abs(got-700) > 1e-9 {
		t.Errorf("ascent: got %g, want 700", got)
	}
	if got := face.Descent(1000); math.Abs(got-(-230)) > 1e-9 {
		t.Errorf("descent: got %g, want -230", got)
	}
}
