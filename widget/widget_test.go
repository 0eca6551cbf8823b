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
	"bytes"
	"strings"
	"testing"

	"seehuhn.de/go/typeset"
	"seehuhn.de/go/typeset/graphics"
)

// fixedBox is a leaf widget with a natural size, for testing composites.
type fixedBox struct {
	w, h float64
}

func (b *fixedBox) Layout(ctx typeset.LayoutContext) (typeset.LayoutResult, error) {
	size := ctx.Constraints.Constrain(typeset.Size{Width: b.w, Height: b.h})
	return typeset.LayoutResult{Size: size}, nil
}

func (b *fixedBox) Paint(*typeset.PaintContext) {}

// paintOn runs a widget's paint pass on a fresh canvas and returns the
// emitted content stream.
func paintOn(t *testing.T, w typeset.Widget, size typeset.Size, pageHeight float64) string {
	t.Helper()
	buf := &bytes.Buffer{}
	canvas := typeset.NewCanvas(graphics.NewWriter(buf, nil), pageHeight)
	before := canvas.Depth()
	w.Paint(&typeset.PaintContext{
		Canvas:   canvas,
		Size:     size,
		PageSize: typeset.Size{Width: 595, Height: pageHeight},
	})
	if err := canvas.Err(); err != nil {
		t.Fatal(err)
	}
	if canvas.Depth() != before {
		t.Errorf("unbalanced paint: residual depth %d", canvas.Depth()-before)
	}
	return buf.String()
}

func TestPadding(t *testing.T) {
	p := &Padding{
		Insets: typeset.EvenInsets(10),
		Child:  &fixedBox{w: 50, h: 30},
	}
	ctx := typeset.LayoutContext{Constraints: typeset.Loose(typeset.Size{Width: 200, Height: 100})}
	res, err := p.Layout(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Size != (typeset.Size{Width: 70, Height: 50}) {
		t.Errorf("got %v, want {70 50}", res.Size)
	}

	out := paintOn(t, p, res.Size, 100)
	if !strings.Contains(out, "1 0 0 1 10 -10 cm") {
		t.Errorf("child not translated by the insets:\n%s", out)
	}
}

func TestAlignCenter(t *testing.T) {
	a := Center(&fixedBox{w: 50, h: 30})
	ctx := typeset.LayoutContext{Constraints: typeset.Tight(typeset.Size{Width: 200, Height: 100})}
	res, err := a.Layout(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Size != (typeset.Size{Width: 200, Height: 100}) {
		t.Errorf("got %v, want {200 100}", res.Size)
	}

	out := paintOn(t, a, res.Size, 100)
	if !strings.Contains(out, "1 0 0 1 75 -35 cm") {
		t.Errorf("child not centered:\n%s", out)
	}
}

func TestAlignUnbounded(t *testing.T) {
	a := &Align{Alignment: typeset.TopLeft, Child: &fixedBox{w: 50, h: 30}}
	ctx := typeset.LayoutContext{
		Constraints: typeset.BoxConstraints{
			MaxWidth:  typeset.Unbounded,
			MaxHeight: typeset.Unbounded,
		},
	}
	res, err := a.Layout(ctx)
	if err != nil {
		t.Fatal(err)
	}
	// on unbounded axes the widget matches the child
	if res.Size != (typeset.Size{Width: 50, Height: 30}) {
		t.Errorf("got %v, want {50 30}", res.Size)
	}
}

func TestSizedBox(t *testing.T) {
	b := &SizedBox{Width: 120, Height: 40, Child: &fixedBox{w: 5, h: 5}}
	ctx := typeset.LayoutContext{Constraints: typeset.Loose(typeset.Size{Width: 200, Height: 100})}
	res, err := b.Layout(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Size != (typeset.Size{Width: 120, Height: 40}) {
		t.Errorf("got %v, want {120 40}", res.Size)
	}

	// the box cannot escape its parent's constraints
	res, err = b.Layout(typeset.LayoutContext{
		Constraints: typeset.Loose(typeset.Size{Width: 100, Height: 100}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Size != (typeset.Size{Width: 100, Height: 40}) {
		t.Errorf("got %v, want {100 40}", res.Size)
	}
}

func TestContainer(t *testing.T) {
	bg := graphics.RGB(1, 0, 0)
	c := NewContainer()
	c.Padding = typeset.EvenInsets(5)
	c.Background = &bg
	c.Child = &fixedBox{w: 40, h: 20}

	ctx := typeset.LayoutContext{Constraints: typeset.Loose(typeset.Size{Width: 200, Height: 100})}
	res, err := c.Layout(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Size != (typeset.Size{Width: 50, Height: 30}) {
		t.Errorf("got %v, want {50 30}", res.Size)
	}

	out := paintOn(t, c, res.Size, 100)
	if !strings.Contains(out, "1 0 0 rg") {
		t.Error("background color not set")
	}
	if !strings.Contains(out, "0 70 50 30 re") {
		t.Errorf("background rectangle wrong:\n%s", out)
	}
}

func TestRowExpanded(t *testing.T) {
	row := &Row{Children: []typeset.Widget{
		&fixedBox{w: 100, h: 20},
		Spacer(1),
		&fixedBox{w: 50, h: 20},
	}}
	ctx := typeset.LayoutContext{Constraints: typeset.Loose(typeset.Size{Width: 300, Height: 50})}
	res, err := row.Layout(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Size != (typeset.Size{Width: 300, Height: 20}) {
		t.Errorf("got %v, want {300 20}", res.Size)
	}

	// the spacer takes 150pt, so the last child starts at x=250
	out := paintOn(t, row, res.Size, 50)
	if !strings.Contains(out, "1 0 0 1 250 0 cm") {
		t.Errorf("last child not placed after the spacer:\n%s", out)
	}
}

func TestRowRightToLeft(t *testing.T) {
	row := &Row{Children: []typeset.Widget{
		&fixedBox{w: 100, h: 20},
		&fixedBox{w: 50, h: 20},
	}}
	ctx := typeset.LayoutContext{
		Constraints: typeset.Loose(typeset.Size{Width: 300, Height: 50}),
		Direction:   typeset.RightToLeft,
	}
	res, err := row.Layout(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Size != (typeset.Size{Width: 150, Height: 20}) {
		t.Errorf("got %v, want {150 20}", res.Size)
	}

	// the first child is placed at the right edge
	out := paintOn(t, row, res.Size, 50)
	if !strings.Contains(out, "1 0 0 1 50 0 cm") {
		t.Errorf("first child not at the right edge:\n%s", out)
	}
}

func TestRowWrapSize(t *testing.T) {
	row := &Row{Children: []typeset.Widget{
		&fixedBox{w: 100, h: 20},
		&fixedBox{w: 150, h: 20},
	}}
	ctx := typeset.LayoutContext{Constraints: typeset.Loose(typeset.Size{Width: 300, Height: 50})}
	res, err := row.Layout(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Size != (typeset.Size{Width: 250, Height: 20}) {
		t.Errorf("got %v, want {250 20}", res.Size)
	}
}

func TestColumn(t *testing.T) {
	col := &Column{Children: []typeset.Widget{
		&fixedBox{w: 100, h: 20},
		&fixedBox{w: 80, h: 30},
	}}
	ctx := typeset.LayoutContext{Constraints: typeset.Loose(typeset.Size{Width: 300, Height: 100})}
	res, err := col.Layout(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Size != (typeset.Size{Width: 100, Height: 50}) {
		t.Errorf("got %v, want {100 50}", res.Size)
	}

	out := paintOn(t, col, res.Size, 100)
	if !strings.Contains(out, "1 0 0 1 0 -20 cm") {
		t.Errorf("second child not below the first:\n%s", out)
	}
}

func TestStack(t *testing.T) {
	st := &Stack{Children: []typeset.Widget{
		&fixedBox{w: 100, h: 50},
		At(10, 5, &fixedBox{w: 20, h: 10}),
	}}
	ctx := typeset.LayoutContext{Constraints: typeset.Loose(typeset.Size{Width: 200, Height: 100})}
	res, err := st.Layout(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Size != (typeset.Size{Width: 100, Height: 50}) {
		t.Errorf("got %v, want {100 50}", res.Size)
	}

	out := paintOn(t, st, res.Size, 100)
	if !strings.Contains(out, "1 0 0 1 10 -5 cm") {
		t.Errorf("positioned child misplaced:\n%s", out)
	}
}

func TestPositionedSingleEdge(t *testing.T) {
	pinned := NewPositioned(&fixedBox{w: 20, h: 10})
	pinned.Right = 5
	st := &Stack{
		Alignment: typeset.TopLeft,
		Children: []typeset.Widget{
			&fixedBox{w: 100, h: 50},
			pinned,
		},
	}
	ctx := typeset.LayoutContext{Constraints: typeset.Loose(typeset.Size{Width: 200, Height: 100})}
	res, err := st.Layout(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Size != (typeset.Size{Width: 100, Height: 50}) {
		t.Errorf("got %v, want {100 50}", res.Size)
	}

	// x from the right edge, y from the stack alignment
	out := paintOn(t, st, res.Size, 100)
	if !strings.Contains(out, "1 0 0 1 75 0 cm") {
		t.Errorf("pinned child misplaced:\n%s", out)
	}
}

// All composites must report sizes satisfying their constraints.
func TestConstraintSatisfaction(t *testing.T) {
	widgets := map[string]typeset.Widget{
		"padding":  &Padding{Insets: typeset.EvenInsets(30), Child: &fixedBox{w: 50, h: 50}},
		"align":    Center(&fixedBox{w: 500, h: 500}),
		"sizedbox": &SizedBox{Width: 500, Height: 500},
		"row":      &Row{Children: []typeset.Widget{&fixedBox{w: 90, h: 90}, &fixedBox{w: 90, h: 90}}},
		"column":   &Column{Children: []typeset.Widget{&fixedBox{w: 90, h: 90}, &fixedBox{w: 90, h: 90}}},
		"stack":    &Stack{Children: []typeset.Widget{&fixedBox{w: 500, h: 500}}},
	}
	solver := typeset.NewSolver()
	constraints := []typeset.BoxConstraints{
		typeset.Loose(typeset.Size{Width: 100, Height: 100}),
		typeset.Tight(typeset.Size{Width: 100, Height: 100}),
		{MinWidth: 10, MaxWidth: 100, MinHeight: 10, MaxHeight: 100},
	}
	for name, w := range widgets {
		t.Run(name, func(t *testing.T) {
			for _, c := range constraints {
				ctx := typeset.LayoutContext{Constraints: c}
				res, err := solver.Solve(w, ctx, &typeset.SolveOptions{ValidateConstraints: true})
				if err != nil {
					t.Fatalf("constraints %+v: %v", c, err)
				}
				if !c.Satisfies(res.Size) {
					t.Errorf("size %v violates %+v", res.Size, c)
				}
			}
		})
	}
}
