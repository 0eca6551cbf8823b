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

package typeset

import (
	"math"
	"testing"
)

func TestConstraintsValid(t *testing.T) {
	inf := math.Inf(1)
	cases := []struct {
		name string
		c    BoxConstraints
		want bool
	}{
		{"zero", BoxConstraints{}, true},
		{"loose", Loose(Size{100, 50}), true},
		{"tight", Tight(Size{100, 50}), true},
		{"unbounded max", BoxConstraints{0, inf, 0, inf}, true},
		{"negative min", BoxConstraints{-1, 10, 0, 10}, false},
		{"max below min", BoxConstraints{20, 10, 0, 10}, false},
		{"infinite min", BoxConstraints{inf, inf, 0, 10}, false},
		{"nan", BoxConstraints{math.NaN(), 10, 0, 10}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.c.IsValid(); got != c.want {
				t.Errorf("IsValid() = %t, want %t", got, c.want)
			}
		})
	}
}

func TestConstrain(t *testing.T) {
	c := BoxConstraints{
		MinWidth: 10, MaxWidth: 100,
		MinHeight: 20, MaxHeight: 50,
	}
	cases := []struct {
		in, want Size
	}{
		{Size{50, 30}, Size{50, 30}},
		{Size{5, 30}, Size{10, 30}},
		{Size{200, 30}, Size{100, 30}},
		{Size{50, 5}, Size{50, 20}},
		{Size{50, 500}, Size{50, 50}},
		{Size{0, 0}, Size{10, 20}},
	}
	for _, x := range cases {
		got := c.Constrain(x.in)
		if got != x.want {
			t.Errorf("Constrain(%v) = %v, want %v", x.in, got, x.want)
		}
		if !c.Satisfies(got) {
			t.Errorf("Constrain(%v) does not satisfy the constraints", x.in)
		}
	}
}

func TestSatisfies(t *testing.T) {
	c := Loose(Size{300, 50})
	if !c.Satisfies(Size{250, 20}) {
		t.Error("size inside bounds rejected")
	}
	if c.Satisfies(Size{301, 20}) {
		t.Error("oversized width accepted")
	}
	if c.Satisfies(Size{250, 51}) {
		t.Error("oversized height accepted")
	}

	// rounding noise within tolerance is accepted
	tight := Tight(Size{100, 100})
	if !tight.Satisfies(Size{100 + 1e-12, 100}) {
		t.Error("tolerance not applied")
	}
}

func TestConstructors(t *testing.T) {
	tight := Tight(Size{100, 50})
	if !tight.IsTight() || !tight.IsValid() {
		t.Error("Tight() not tight or invalid")
	}

	loose := Loose(Size{100, 50})
	if loose.IsTight() || loose.MinWidth != 0 || loose.MaxHeight != 50 {
		t.Error("wrong loose constraints")
	}

	exp := Expand(100, math.NaN())
	if exp.MinWidth != 100 || exp.MaxWidth != 100 {
		t.Error("Expand did not fix the width")
	}
	if exp.MinHeight != 0 || !math.IsInf(exp.MaxHeight, +1) {
		t.Error("Expand did not leave the height unbounded")
	}

	if !exp.HasBoundedWidth() || exp.HasBoundedHeight() {
		t.Error("wrong boundedness")
	}
}

func TestBiggestSmallest(t *testing.T) {
	c := BoxConstraints{
		MinWidth: 10, MaxWidth: math.Inf(1),
		MinHeight: 20, MaxHeight: 50,
	}
	if got := c.Smallest(); got != (Size{10, 20}) {
		t.Errorf("Smallest() = %v", got)
	}
	// unbounded width falls back to the minimum
	if got := c.Biggest(); got != (Size{10, 50}) {
		t.Errorf("Biggest() = %v", got)
	}
}
