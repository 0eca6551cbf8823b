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

// InvalidConstraintsError indicates that a constraints value violates the
// BoxConstraints invariants.  This is a defect in the caller, not a
// recoverable condition; the solver never repairs constraints silently.
type InvalidConstraintsError struct {
	Constraints BoxConstraints
}

func (err *InvalidConstraintsError) Error() string {
	c := err.Constraints
	return fmt.Sprintf("invalid constraints: w=[%g,%g] h=[%g,%g]",
		c.MinWidth, c.MaxWidth, c.MinHeight, c.MaxHeight)
}

// ConstraintViolationError indicates that a widget reported a size which
// does not satisfy the constraints it was given.  This always points at a
// bug in the widget; the solver reports it up without retrying.
type ConstraintViolationError struct {
	Widget      string // the widget's identity
	Constraints BoxConstraints
	Size        Size
}

func (err *ConstraintViolationError) Error() string {
	c := err.Constraints
	return fmt.Sprintf("widget %s returned size %gx%g outside constraints w=[%g,%g] h=[%g,%g]",
		err.Widget, err.Size.Width, err.Size.Height,
		c.MinWidth, c.MaxWidth, c.MinHeight, c.MaxHeight)
}

// UnbalancedStateError indicates that a paint pass left the graphics
// state stack at a different depth than it found it.  An imbalance would
// leak one widget's transforms and clipping into its siblings.
type UnbalancedStateError struct {
	Depth int // residual stack depth after the paint pass
}

func (err *UnbalancedStateError) Error() string {
	return fmt.Sprintf("unbalanced graphics state: %+d save/restore pairs after paint",
		err.Depth)
}
