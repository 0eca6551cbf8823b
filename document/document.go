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

// Package document assembles laid-out pages into a PDF file.
//
// A Document owns an ordered sequence of pages and a shared font
// registry.  AddPage lays out and paints a page's widget tree
// immediately; Save serializes all pages into the final file.
package document

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"time"

	"seehuhn.de/go/typeset"
	"seehuhn.de/go/typeset/font"
	"seehuhn.de/go/typeset/graphics"
	"seehuhn.de/go/typeset/pdf"
)

// Metadata is the information stored in the PDF Info dictionary.
type Metadata struct {
	Title, Author, Subject string
	Keywords, Creator      string
	CreationDate           time.Time
}

// Document collects pages and produces the serialized PDF file.
//
// A Document must not be used from multiple goroutines concurrently.
type Document struct {
	// Info is written to the PDF Info dictionary on Save.
	Info Metadata

	// Compress enables Flate compression of the page content streams.
	Compress bool

	theme  *typeset.Theme
	solver *typeset.Solver
	pages  []*Page
}

// New creates an empty document.  Text widgets with no explicit style use
// 12pt Helvetica.
func New() *Document {
	return &Document{
		theme: &typeset.Theme{
			DefaultStyle: typeset.TextStyle{
				Face:  font.Helvetica,
				Size:  12,
				Color: graphics.Black,
			},
		},
		solver: typeset.NewSolver(),
	}
}

// Theme returns the document's theme.  Changes apply to pages added
// afterwards.
func (d *Document) Theme() *typeset.Theme {
	return d.theme
}

// Solver returns the constraint solver used for the document's pages.
func (d *Document) Solver() *typeset.Solver {
	return d.solver
}

// NumPages returns the number of pages added so far.
func (d *Document) NumPages() int {
	return len(d.pages)
}

// PageOptions describe one page to be added.  The zero value gives an
// empty A4 page with 20pt margins.
type PageOptions struct {
	// Format selects a named paper size.  It is ignored if Width and
	// Height are set.
	Format Format

	// Width and Height give an explicit page size in PDF points.
	Width, Height float64

	// Margins on all four sides.  Nil selects the default of 20pt.
	Margins *typeset.EdgeInsets

	// Build returns the root widget of the page.  Nil leaves the page
	// empty.
	Build func() typeset.Widget
}

const defaultMargin = 20.0

// AddPage appends a page to the document.  If opts.Build is set, the
// returned widget is laid out into the page's content area and painted
// immediately; layout and paint failures abort the page.
func (d *Document) AddPage(opts *PageOptions) (*Page, error) {
	if opts == nil {
		opts = &PageOptions{}
	}

	size := typeset.Size{Width: opts.Width, Height: opts.Height}
	if size.IsZero() {
		format := opts.Format
		if format == "" {
			format = A4
		}
		var ok bool
		size, ok = format.Size()
		if !ok {
			return nil, fmt.Errorf("unknown paper format %q", format)
		}
	}

	margins := typeset.EvenInsets(defaultMargin)
	if opts.Margins != nil {
		margins = *opts.Margins
	}

	page := &Page{
		size:      size,
		margins:   margins,
		content:   &bytes.Buffer{},
		resources: &graphics.Resources{},
	}

	if opts.Build != nil {
		err := d.paintPage(page, opts.Build())
		if err != nil {
			return nil, err
		}
	}

	d.pages = append(d.pages, page)
	return page, nil
}

// paintPage runs the two passes over the page's widget tree: layout under
// the content area's constraints, then paint through a fresh canvas.
func (d *Document) paintPage(page *Page, root typeset.Widget) error {
	area := page.ContentArea()
	ctx := typeset.LayoutContext{
		Constraints: typeset.Loose(area.Size()),
		Direction:   typeset.LeftToRight,
		Theme:       d.theme,
	}
	// Page roots are usually keyless, so two pages rooted in the same
	// widget kind would collide in the cache and the second root's
	// Layout would never run.  Page layout happens once per page, so
	// nothing is lost by bypassing the cache here.
	res, err := d.solver.Solve(root, ctx, &typeset.SolveOptions{
		UseCache:            false,
		ValidateConstraints: true,
	})
	if err != nil {
		return err
	}

	canvas := typeset.NewCanvas(graphics.NewWriter(page.content, page.resources), page.size.Height)
	before := canvas.Depth()

	canvas.SaveState()
	canvas.Translate(area.X, area.Y)
	root.Paint(&typeset.PaintContext{
		Canvas:      canvas,
		Size:        res.Size,
		Theme:       d.theme,
		Resources:   page.resources,
		PageSize:    page.size,
		ContentArea: area,
	})
	canvas.RestoreState()

	if err := canvas.Err(); err != nil {
		return err
	}
	if depth := canvas.Depth() - before; depth != 0 {
		return &typeset.UnbalancedStateError{Depth: depth}
	}
	return nil
}

// Save serializes the document to w.  Save walks all pages and resources
// once; adding pages after Save is not a supported use.
func (d *Document) Save(out io.Writer) error {
	w, err := pdf.NewWriter(out)
	if err != nil {
		return &SerializationError{Err: err}
	}

	pagesRef := w.Alloc()
	embedded := make(map[graphics.Font]pdf.Reference)

	var kids pdf.Array
	for i, page := range d.pages {
		ref, err := d.writePage(w, page, pagesRef, embedded)
		if err != nil {
			return &SerializationError{Page: i + 1, Err: err}
		}
		kids = append(kids, ref)
	}

	pagesDict := pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(d.pages)),
	}
	if err := w.Put(pagesRef, pagesDict); err != nil {
		return &SerializationError{Err: err}
	}

	catalogRef := w.Alloc()
	catalog := pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": pagesRef,
	}
	if err := w.Put(catalogRef, catalog); err != nil {
		return &SerializationError{Err: err}
	}

	infoRef, err := d.writeInfo(w)
	if err != nil {
		return &SerializationError{Err: err}
	}

	if err := w.Close(catalogRef, infoRef); err != nil {
		return &SerializationError{Err: err}
	}
	return nil
}

// Bytes returns the serialized document.
func (d *Document) Bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := d.Save(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writePage emits one page's content stream, font dictionaries, and page
// dictionary.
func (d *Document) writePage(w *pdf.Writer, page *Page, parent pdf.Reference, embedded map[graphics.Font]pdf.Reference) (pdf.Reference, error) {
	contentRef := w.Alloc()
	contents, err := contentStream(page.content.Bytes(), d.Compress)
	if err != nil {
		return pdf.Reference{}, err
	}
	if err := w.Put(contentRef, contents); err != nil {
		return pdf.Reference{}, err
	}

	fontDict := pdf.Dict{}
	for _, f := range page.resources.Fonts() {
		ref, ok := embedded[f]
		if !ok {
			face, canEmbed := f.(font.Face)
			if !canEmbed {
				return pdf.Reference{}, fmt.Errorf("font %q cannot be embedded",
					f.PostScriptName())
			}
			ref, err = face.Embed(w)
			if err != nil {
				return pdf.Reference{}, err
			}
			embedded[f] = ref
		}
		fontDict[page.resources.NameOf(f)] = ref
	}
	resources := pdf.Dict{}
	if len(fontDict) > 0 {
		resources["Font"] = fontDict
	}

	pageRef := w.Alloc()
	pageDict := pdf.Dict{
		"Type":   pdf.Name("Page"),
		"Parent": parent,
		"MediaBox": &pdf.Rectangle{
			URx: page.size.Width,
			URy: page.size.Height,
		},
		"Contents":  contentRef,
		"Resources": resources,
	}
	err = w.Put(pageRef, pageDict)
	if err != nil {
		return pdf.Reference{}, err
	}
	return pageRef, nil
}

// contentStream wraps painted operators into a stream object, compressed
// if requested.
func contentStream(body []byte, compress bool) (*pdf.Stream, error) {
	dict := pdf.Dict{}
	if compress {
		buf := &bytes.Buffer{}
		zw := zlib.NewWriter(buf)
		if _, err := zw.Write(body); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		body = buf.Bytes()
		dict["Filter"] = pdf.Name("FlateDecode")
	}
	dict["Length"] = pdf.Integer(len(body))
	return &pdf.Stream{Dict: dict, R: bytes.NewReader(body)}, nil
}

// writeInfo emits the Info dictionary.  The zero Reference is returned if
// no metadata is set.
func (d *Document) writeInfo(w *pdf.Writer) (pdf.Reference, error) {
	info := pdf.Dict{}
	add := func(key pdf.Name, val string) {
		if val != "" {
			info[key] = pdf.TextString(val)
		}
	}
	add("Title", d.Info.Title)
	add("Author", d.Info.Author)
	add("Subject", d.Info.Subject)
	add("Keywords", d.Info.Keywords)
	add("Creator", d.Info.Creator)
	if !d.Info.CreationDate.IsZero() {
		info["CreationDate"] = pdf.Date(d.Info.CreationDate)
	}
	if len(info) == 0 {
		return pdf.Reference{}, nil
	}

	ref := w.Alloc()
	if err := w.Put(ref, info); err != nil {
		return pdf.Reference{}, err
	}
	return ref, nil
}

// SerializationError indicates that the document could not be written as
// a consistent PDF file.
type SerializationError struct {
	Page int // 1-based page number, 0 if not page-specific
	Err  error
}

func (err *SerializationError) Error() string {
	if err.Page > 0 {
		return fmt.Sprintf("cannot serialize page %d: %v", err.Page, err.Err)
	}
	return fmt.Sprintf("cannot serialize document: %v", err.Err)
}

func (err *SerializationError) Unwrap() error {
	return err.Err
}
