// Copyright (c) 2025, The Vispy Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import "github.com/go-gl/mathgl/mgl32"

// Rect is an axis-aligned rectangle defined by an origin point and a size
// vector. Size components may be negative or zero: a negative size denotes a
// flipped axis, and rect-to-rect mapping ([STTransform.SetMapping]) resolves
// the orientation rather than Rect normalizing itself.
type Rect struct {
	Pos  mgl32.Vec2
	Size mgl32.Vec2
}

// NewRect returns a new [Rect] from the given origin and size components.
func NewRect(x, y, w, h float32) Rect {
	return Rect{Pos: mgl32.Vec2{x, y}, Size: mgl32.Vec2{w, h}}
}

// End returns the corner opposite the origin (Pos + Size).
func (r Rect) End() mgl32.Vec2 {
	return r.Pos.Add(r.Size)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() mgl32.Vec2 {
	return r.Pos.Add(r.Size.Mul(0.5))
}

// Translated returns the rect moved by the given offset.
func (r Rect) Translated(offset mgl32.Vec2) Rect {
	return Rect{Pos: r.Pos.Add(offset), Size: r.Size}
}

// Flipped returns the rect with the given axes inverted: the origin moves to
// the opposite side and the size component changes sign. Mapping onto a
// flipped rect inverts that axis.
func (r Rect) Flipped(x, y bool) Rect {
	if x {
		r.Pos[0] += r.Size[0]
		r.Size[0] = -r.Size[0]
	}
	if y {
		r.Pos[1] += r.Size[1]
		r.Size[1] = -r.Size[1]
	}
	return r
}

// Corners returns the four corners in origin, +x, +y, +x+y order.
func (r Rect) Corners() [4]mgl32.Vec2 {
	return [4]mgl32.Vec2{
		r.Pos,
		{r.Pos[0] + r.Size[0], r.Pos[1]},
		{r.Pos[0], r.Pos[1] + r.Size[1]},
		r.End(),
	}
}
