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

package pdf

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func format(obj Object) string {
	buf := &bytes.Buffer{}
	if obj == nil {
		buf.WriteString("null")
	} else if err := obj.PDF(buf); err != nil {
		panic(err)
	}
	return buf.String()
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(42), "42"},
		{Integer(-1), "-1"},
		{Real(1.5), "1.5"},
		{Real(2), "2."},
		{String("a"), "(a)"},
		{String("a (test version)"), "(a (test version))"},
		{String("a (test version"), "(a \\(test version)"},
		{String(""), "()"},
		{String("\000"), "<00>"},
		{Name("Type"), "/Type"},
		{Name("A B"), "/A#20B"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Reference{Number: 3}, "3 0 R"},
		{&Rectangle{0, 0, 595.276, 841.89}, "[0 0 595.28 841.89]"},
	}
	for _, test := range cases {
		out := format(test.in)
		if out != test.out {
			t.Errorf("object wrongly formatted, expected %q but got %q",
				test.out, out)
		}
	}
}

func TestDictSorted(t *testing.T) {
	d := Dict{
		"Type":  Name("Page"),
		"Count": Integer(1),
		"Kids":  Array{},
	}
	out := format(d)
	exp := "<<\n/Count 1\n/Kids []\n/Type /Page\n>>"
	if out != exp {
		t.Errorf("expected %q but got %q", exp, out)
	}
}

func TestTextString(t *testing.T) {
	if s := format(TextString("hello")); s != "(hello)" {
		t.Errorf("ascii text string: got %q", s)
	}

	s := TextString("Grüße")
	if len(s) < 2 || s[0] != 0xFE || s[1] != 0xFF {
		t.Errorf("missing UTF-16 byte order mark in %q", []byte(s))
	}
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)
	when := time.Date(2026, 8, 26, 12, 0, 5, 0, loc)
	out := format(Date(when))
	if !strings.HasPrefix(out, "(D:20260826120005+02'00)") {
		t.Errorf("unexpected date string %q", out)
	}
}

func TestStream(t *testing.T) {
	content := "0 0 100 100 re f"
	s := &Stream{
		Dict: Dict{"Length": Integer(len(content))},
		R:    strings.NewReader(content),
	}
	out := format(s)
	exp := "<<\n/Length 16\n>>\nstream\n" + content + "\nendstream"
	if out != exp {
		t.Errorf("expected %q but got %q", exp, out)
	}
}
