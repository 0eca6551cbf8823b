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
	"strings"
	"time"
)

// Solver mediates every layout call in a document: it validates
// constraints before they are handed to a widget, validates the widget's
// reported size afterwards, and serves repeated calls with identical
// (identity, constraints) pairs from a cache.
//
// A Solver must not be used from multiple goroutines concurrently.
type Solver struct {
	cache map[cacheKey]LayoutResult

	// Instrument, if non-nil, receives a report for each Solve call.
	Instrument Instrumentation
}

// Instrumentation receives timing reports from a Solver.
type Instrumentation interface {
	RecordSolve(identity string, d time.Duration, cacheHit bool)
}

// cacheKey addresses one layout result.  The cache is exact-match:
// differing constraints always miss.
type cacheKey struct {
	identity             string
	minWidth, maxWidth   float64
	minHeight, maxHeight float64
}

// NewSolver returns a Solver with an empty cache.
func NewSolver() *Solver {
	return &Solver{
		cache: make(map[cacheKey]LayoutResult),
	}
}

// SolveOptions control a single Solve call.  Passing nil selects the
// defaults (caching and validation both enabled).
type SolveOptions struct {
	UseCache            bool
	ValidateConstraints bool
}

var defaultSolveOptions = &SolveOptions{
	UseCache:            true,
	ValidateConstraints: true,
}

// Solve lays out a widget under the constraints in ctx.
//
// Constraints are checked before the widget sees them
// (InvalidConstraintsError) and the reported size is checked against them
// afterwards (ConstraintViolationError).  Both failures are authoring
// defects; the solver never repairs or retries.
func (s *Solver) Solve(w Widget, ctx LayoutContext, opt *SolveOptions) (LayoutResult, error) {
	if opt == nil {
		opt = defaultSolveOptions
	}

	start := time.Now()
	key := makeKey(identityOf(w), ctx.Constraints)

	// Validation comes before the cache lookup, so that an entry
	// stored by an unvalidated call cannot mask the error later.
	if opt.ValidateConstraints && !ctx.Constraints.IsValid() {
		return LayoutResult{}, &InvalidConstraintsError{Constraints: ctx.Constraints}
	}

	if opt.UseCache {
		if res, ok := s.cache[key]; ok {
			s.record(key.identity, start, true)
			return res, nil
		}
	}

	res, err := w.Layout(ctx)
	if err != nil {
		return LayoutResult{}, err
	}

	if opt.ValidateConstraints && !ctx.Constraints.Satisfies(res.Size) {
		return LayoutResult{}, &ConstraintViolationError{
			Widget:      key.identity,
			Constraints: ctx.Constraints,
			Size:        res.Size,
		}
	}

	if opt.UseCache {
		s.cache[key] = res
	}
	s.record(key.identity, start, false)
	return res, nil
}

func (s *Solver) record(identity string, start time.Time, hit bool) {
	if s.Instrument == nil {
		return
	}
	s.Instrument.RecordSolve(identity, time.Since(start), hit)
}

// ClearCache drops all cached layout results.
func (s *Solver) ClearCache() {
	s.cache = make(map[cacheKey]LayoutResult)
}

// ClearCacheFor removes all cached results whose identity starts with the
// given widget's identity.  The solver performs no automatic invalidation
// on tree changes; callers must invalidate before re-laying out a changed
// subtree.
func (s *Solver) ClearCacheFor(w Widget) {
	prefix := identityOf(w)
	for key := range s.cache {
		if strings.HasPrefix(key.identity, prefix) {
			delete(s.cache, key)
		}
	}
}

func makeKey(identity string, c BoxConstraints) cacheKey {
	return cacheKey{
		identity:  identity,
		minWidth:  c.MinWidth,
		maxWidth:  c.MaxWidth,
		minHeight: c.MinHeight,
		maxHeight: c.MaxHeight,
	}
}

// A Requirement modifies the constraints derived for a child widget.
type Requirement func(*requirements)

// requirements collects the overrides of one PropagateConstraints call.
// NaN marks an axis as unset.
type requirements struct {
	fixedWidth, fixedHeight float64
	minWidth, maxWidth      float64
	minHeight, maxHeight    float64
}

// FixedWidth requests an exact child width.
func FixedWidth(w float64) Requirement {
	return func(r *requirements) { r.fixedWidth = w }
}

// FixedHeight requests an exact child height.
func FixedHeight(h float64) Requirement {
	return func(r *requirements) { r.fixedHeight = h }
}

// MinWidth raises the lower width bound.
func MinWidth(w float64) Requirement {
	return func(r *requirements) { r.minWidth = w }
}

// MaxWidth lowers the upper width bound.
func MaxWidth(w float64) Requirement {
	return func(r *requirements) { r.maxWidth = w }
}

// MinHeight raises the lower height bound.
func MinHeight(h float64) Requirement {
	return func(r *requirements) { r.minHeight = h }
}

// MaxHeight lowers the upper height bound.
func MaxHeight(h float64) Requirement {
	return func(r *requirements) { r.maxHeight = h }
}

// PropagateConstraints derives child constraints from a parent's
// constraints and the given requirements.  If both width and height are
// fixed the result is tight.  The result never exceeds the parent's
// constraints on either axis.
func PropagateConstraints(parent BoxConstraints, reqs ...Requirement) BoxConstraints {
	r := requirements{
		fixedWidth:  math.NaN(),
		fixedHeight: math.NaN(),
		minWidth:    math.NaN(),
		maxWidth:    math.NaN(),
		minHeight:   math.NaN(),
		maxHeight:   math.NaN(),
	}
	for _, req := range reqs {
		req(&r)
	}

	if !math.IsNaN(r.fixedWidth) && !math.IsNaN(r.fixedHeight) {
		return Tight(Size{
			Width:  clamp(r.fixedWidth, parent.MinWidth, parent.MaxWidth),
			Height: clamp(r.fixedHeight, parent.MinHeight, parent.MaxHeight),
		})
	}

	minW, maxW := propagateAxis(parent.MinWidth, parent.MaxWidth,
		r.fixedWidth, r.minWidth, r.maxWidth)
	minH, maxH := propagateAxis(parent.MinHeight, parent.MaxHeight,
		r.fixedHeight, r.minHeight, r.maxHeight)
	return BoxConstraints{
		MinWidth:  minW,
		MaxWidth:  maxW,
		MinHeight: minH,
		MaxHeight: maxH,
	}
}

// propagateAxis combines the parent's bounds with the requested overrides
// on one axis.  NaN marks an override as absent.  Overrides are clamped
// into the parent's range, so the result never leaves [parentMin,
// parentMax] on either bound.
func propagateAxis(parentMin, parentMax, fixed, reqMin, reqMax float64) (min, max float64) {
	min = parentMin
	if !math.IsNaN(reqMin) {
		min = clamp(reqMin, parentMin, parentMax)
	}
	max = parentMax
	if !math.IsNaN(fixed) {
		max = clamp(fixed, parentMin, parentMax)
	} else if !math.IsNaN(reqMax) {
		max = clamp(reqMax, parentMin, parentMax)
	}
	if min > max {
		max = min
	}
	return min, max
}

// Axis names the main axis of a flow-style composite.
type Axis int

// The two layout axes.
const (
	Horizontal Axis = iota
	Vertical
)

// SizeStrategy selects how a composite combines its children's sizes.
type SizeStrategy int

const (
	// SizeFit uses the bounding box of the children's sizes.
	SizeFit SizeStrategy = iota

	// SizeExpand fills the parent's maximum, falling back to the
	// minimum on unbounded axes.
	SizeExpand

	// SizeWrap sums the children along the composite's main axis and
	// takes the maximum across it.
	SizeWrap
)

// NegotiateSize combines child sizes into a composite size according to
// the given strategy.  The composite decides which axis accumulates and
// which reduces (via the axis argument for SizeWrap); NegotiateSize only
// implements the clamp-and-combine arithmetic.
func NegotiateSize(children []Size, parent BoxConstraints, strategy SizeStrategy, axis Axis) Size {
	switch strategy {
	case SizeExpand:
		return parent.Biggest()
	case SizeWrap:
		var main, cross float64
		for _, s := range children {
			if axis == Horizontal {
				main += s.Width
				cross = math.Max(cross, s.Height)
			} else {
				main += s.Height
				cross = math.Max(cross, s.Width)
			}
		}
		var size Size
		if axis == Horizontal {
			size = Size{Width: main, Height: cross}
		} else {
			size = Size{Width: cross, Height: main}
		}
		return parent.Constrain(size)
	default: // SizeFit
		var size Size
		for _, s := range children {
			size.Width = math.Max(size.Width, s.Width)
			size.Height = math.Max(size.Height, s.Height)
		}
		return parent.Constrain(size)
	}
}

// IntrinsicSize measures a widget's natural size along one axis, by
// re-running layout with that axis relaxed to [0, inf) while holding the
// other axis.  The probe bypasses the cache; it is strictly more
// expensive than a normal layout call.
func (s *Solver) IntrinsicSize(w Widget, ctx LayoutContext, axis Axis) (Size, error) {
	c := ctx.Constraints
	if axis == Horizontal {
		c.MinWidth = 0
		c.MaxWidth = math.Inf(1)
	} else {
		c.MinHeight = 0
		c.MaxHeight = math.Inf(1)
	}
	res, err := w.Layout(ctx.WithConstraints(c))
	if err != nil {
		return Size{}, err
	}
	return res.Size, nil
}
