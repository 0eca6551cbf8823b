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

import "seehuhn.de/go/typeset/pdf"

// This file implements the WinAnsiEncoding (Windows code page 1252) used by
// the simple fonts in this package.  See Appendix D.2 of PDF 32000-1:2008.

// winAnsiReplacement is used for runes which have no code in
// WinAnsiEncoding.
const winAnsiReplacement = byte('?')

// winAnsiEncode returns the WinAnsiEncoding code for the given rune.
func winAnsiEncode(r rune) (byte, bool) {
	switch {
	case r >= 0x20 && r <= 0x7e:
		return byte(r), true
	case r >= 0xa0 && r <= 0xff:
		return byte(r), true
	}
	c, ok := winAnsiExtra[r]
	return c, ok
}

// encodeWinAnsi converts a string to WinAnsiEncoding bytes, replacing
// unrepresentable runes.
func encodeWinAnsi(s string) pdf.String {
	res := make(pdf.String, 0, len(s))
	for _, r := range s {
		c, ok := winAnsiEncode(r)
		if !ok {
			c = winAnsiReplacement
		}
		res = append(res, c)
	}
	return res
}

// winAnsiExtra maps the runes whose WinAnsiEncoding code differs from their
// Unicode code point, i.e. the 0x80-0x9f range of Windows code page 1252.
var winAnsiExtra = map[rune]byte{
	'€': 0x80, // Euro
	'‚': 0x82, // quotesinglbase
	'ƒ': 0x83, // florin
	'„': 0x84, // quotedblbase
	'…': 0x85, // ellipsis
	'†': 0x86, // dagger
	'‡': 0x87, // daggerdbl
	'ˆ': 0x88, // circumflex
	'‰': 0x89, // perthousand
	'Š': 0x8a, // Scaron
	'‹': 0x8b, // guilsinglleft
	'Œ': 0x8c, // OE
	'Ž': 0x8e, // Zcaron
	'‘': 0x91, // quoteleft
	'’': 0x92, // quoteright
	'“': 0x93, // quotedblleft
	'”': 0x94, // quotedblright
	'•': 0x95, // bullet
	'–': 0x96, // endash
	'—': 0x97, // emdash
	'˜': 0x98, // tilde
	'™': 0x99, // trademark
	'š': 0x9a, // scaron
	'›': 0x9b, // guilsinglright
	'œ': 0x9c, // oe
	'ž': 0x9e, // zcaron
	'Ÿ': 0x9f, // Ydieresis
}

// asciiGlyphName returns the Adobe glyph name for a printable ASCII rune.
// This is used to look up glyph metrics in AFM files.
func asciiGlyphName(r rune) (string, bool) {
	if r >= '0' && r <= '9' {
		return digitNames[r-'0'], true
	}
	if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' {
		return string(r), true
	}
	name, ok := asciiSpecialNames[r]
	return name, ok
}

var digitNames = [10]string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
}

var asciiSpecialNames = map[rune]string{
	' ':  "space",
	'!':  "exclam",
	'"':  "quotedbl",
	'#':  "numbersign",
	'$':  "dollar",
	'%':  "percent",
	'&':  "ampersand",
	'\'': "quotesingle",
	'(':  "parenleft",
	')':  "parenright",
	'*':  "asterisk",
	'+':  "plus",
	',':  "comma",
	'-':  "hyphen",
	'.':  "period",
	'/':  "slash",
	':':  "colon",
	';':  "semicolon",
	'<':  "less",
	'=':  "equal",
	'>':  "greater",
	'?':  "question",
	'@':  "at",
	'[':  "bracketleft",
	'\\': "backslash",
	']':  "bracketright",
	'^':  "asciicircum",
	'_':  "underscore",
	'`':  "grave",
	'{':  "braceleft",
	'|':  "bar",
	'}':  "braceright",
	'~':  "asciitilde",
}
