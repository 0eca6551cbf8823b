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

// Package typeset lays out trees of widgets onto PDF pages.
//
// Widgets author their geometry in a top-left-origin coordinate system
// with the y axis pointing down.  A parent widget imposes BoxConstraints
// on each child; the child reports back the size it chose, and the parent
// positions it.  The Solver mediates every layout call: it validates
// constraints before they reach a widget, validates the reported size
// afterwards, and caches results for repeated calls.
//
// Painting goes through a Canvas, which converts authoring-space
// coordinates to the bottom-left-origin coordinate system of PDF content
// streams and keeps track of the graphics state stack.
//
// The subpackages turn the painted pages into a PDF file: package document
// assembles pages and fonts, package graphics emits content stream
// operators, package font provides glyph metrics, and package pdf writes
// the file structure.
package typeset
