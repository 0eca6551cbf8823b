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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/typeset/font"
	"seehuhn.de/go/typeset/graphics"
)

// Canvas adapts the authoring coordinate system (origin top-left, y down)
// to the PDF content stream coordinate system (origin bottom-left, y up).
// All coordinate-accepting operations convert their arguments at the
// moment they are emitted; the Canvas performs no layout computation.
//
// Errors accumulate on the underlying writer: after the first failure all
// operations become no-ops, and Err returns the failure.
type Canvas struct {
	w          *graphics.Writer
	pageHeight float64
}

// NewCanvas wraps a content stream writer for a page of the given height.
func NewCanvas(w *graphics.Writer, pageHeight float64) *Canvas {
	return &Canvas{w: w, pageHeight: pageHeight}
}

// Err returns the first error encountered by any canvas operation.
func (c *Canvas) Err() error {
	return c.w.Err
}

// PageHeight returns the height of the page being painted.
func (c *Canvas) PageHeight() float64 {
	return c.pageHeight
}

// SaveState saves the graphics state (transform, clip, colors, line
// width).  Every SaveState must be paired with a RestoreState within the
// same paint pass.
func (c *Canvas) SaveState() {
	c.w.PushGraphicsState()
}

// RestoreState restores the most recently saved graphics state.
func (c *Canvas) RestoreState() {
	c.w.PopGraphicsState()
}

// Depth returns the current graphics state stack depth.  A paint pass
// must leave the depth as it found it; callers use Depth before and after
// a subtree's paint to detect imbalance.
func (c *Canvas) Depth() int {
	return c.w.StackDepth()
}

// flip converts an authoring-space point to PDF user space.
func (c *Canvas) flip(x, y float64) (float64, float64) {
	return x, c.pageHeight - y
}

// Transform applies an authoring-space transformation matrix.
//
// The matrix is conjugated with the vertical flip, so a widget can
// compose translate/scale/rotate matrices in its own top-left frame and
// nested local frames stay consistent: a pure translation by (dx, dy)
// moves content right and down on the page.
func (c *Canvas) Transform(m matrix.Matrix) {
	flip := matrix.Matrix{1, 0, 0, -1, 0, c.pageHeight}
	c.w.Transform(flip.Mul(m).Mul(flip))
}

// Translate shifts the coordinate system by (dx, dy) in authoring space.
func (c *Canvas) Translate(dx, dy float64) {
	c.Transform(matrix.Translate(dx, dy))
}

// MoveTo starts a new path segment.
func (c *Canvas) MoveTo(x, y float64) {
	c.w.MoveTo(c.flip(x, y))
}

// LineTo appends a straight line to the current path.
func (c *Canvas) LineTo(x, y float64) {
	c.w.LineTo(c.flip(x, y))
}

// CurveTo appends a cubic Bezier segment to the current path.
func (c *Canvas) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	px1, py1 := c.flip(x1, y1)
	px2, py2 := c.flip(x2, y2)
	px3, py3 := c.flip(x3, y3)
	c.w.CurveTo(px1, py1, px2, py2, px3, py3)
}

// ClosePath closes the current path segment.
func (c *Canvas) ClosePath() {
	c.w.ClosePath()
}

// Rect appends a rectangle to the current path.  The rectangle keeps its
// width and height; only the origin corner changes between the two
// coordinate systems.
func (c *Canvas) Rect(r Rect) {
	x, y := c.flip(r.X, r.Y+r.Height)
	c.w.Rectangle(x, y, r.Width, r.Height)
}

// Fill fills the current path.
func (c *Canvas) Fill() {
	c.w.Fill()
}

// Stroke strokes the current path.
func (c *Canvas) Stroke() {
	c.w.Stroke()
}

// FillAndStroke fills and then strokes the current path.
func (c *Canvas) FillAndStroke() {
	c.w.FillAndStroke()
}

// ClipRect intersects the clipping region with a rectangle.  The new clip
// applies until the enclosing graphics state is restored.
func (c *Canvas) ClipRect(r Rect) {
	c.Rect(r)
	c.w.ClipNonZero()
	c.w.EndPath()
}

// SetFillColor sets the color for fill operations.
func (c *Canvas) SetFillColor(col graphics.Color) {
	c.w.SetFillColor(col)
}

// SetStrokeColor sets the color for stroke operations.
func (c *Canvas) SetStrokeColor(col graphics.Color) {
	c.w.SetStrokeColor(col)
}

// SetLineWidth sets the stroke line width.
func (c *Canvas) SetLineWidth(width float64) {
	c.w.SetLineWidth(width)
}

// FillText paints a string with the baseline starting at the given
// authoring-space position.
func (c *Canvas) FillText(f font.Face, size float64, x, y float64, s string) {
	px, py := c.flip(x, y)
	c.w.TextBegin()
	c.w.TextSetFont(f, size)
	c.w.TextFirstLine(px, py)
	c.w.TextShow(f.Encode(s))
	c.w.TextEnd()
}
