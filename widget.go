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

import "fmt"

// Widget is the contract every layout node implements.  The layout core
// never inspects concrete widget types, only these two operations.
type Widget interface {
	// Layout computes the widget's size under the given constraints.
	// The returned size must satisfy ctx.Constraints.  Layout may call
	// Layout on child widgets any number of times, but must not mutate
	// state observable outside the widget.
	Layout(ctx LayoutContext) (LayoutResult, error)

	// Paint emits drawing operations for exactly the size last returned
	// by Layout.  Paint must not trigger new layout; layout and paint
	// are two separate passes over the tree.  Failures accumulate on
	// the canvas's sticky error.
	Paint(ctx *PaintContext)
}

// Keyed is implemented by widgets carrying an explicit identity key.
// Keys must be unique within a sibling scope; they address entries in the
// solver's layout cache.
type Keyed interface {
	Key() string
}

// Labeled is implemented by widgets which can describe themselves for
// diagnostics.
type Labeled interface {
	DebugLabel() string
}

// identityOf returns the cache identity of a widget: the explicit key if
// there is one, a debug label otherwise, and the dynamic type as a last
// resort.
func identityOf(w Widget) string {
	if k, ok := w.(Keyed); ok {
		return k.Key()
	}
	if l, ok := w.(Labeled); ok {
		return l.DebugLabel()
	}
	return fmt.Sprintf("%T", w)
}
