// Copyright (c) 2025, The Vispy Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rowhit/vispy/events"
	"github.com/rowhit/vispy/transform"
)

// zoomBase is the per-pixel zoom factor of a zoom drag.
const zoomBase = 1.03

// PanZoom is a 2D camera showing a rectangular window of the scene.
// The visible rect maps onto the viewbox pixel rect with Y pointing up;
// dragging with the primary button pans the rect and dragging with the
// secondary button zooms it about the point under the press position.
type PanZoom struct {
	Base

	rect transform.Rect
	st   *transform.STTransform
}

// NewPanZoom returns a new [PanZoom] camera showing the unit rect.
func NewPanZoom() *PanZoom {
	pz := &PanZoom{}
	pz.Init(pz)
	return pz
}

// Init initializes the camera with this as the outermost value.
func (pz *PanZoom) Init(this Camera) {
	pz.Base.Init(this)
	pz.rect = transform.NewRect(0, 0, 1, 1)
	pz.st = transform.NewST()
	pz.tr = pz.st
}

// Rect returns the scene rect currently shown.
func (pz *PanZoom) Rect() transform.Rect {
	return pz.rect
}

// SetRect sets the scene rect to show and recomputes the transform.
// A flipped (negative-size) rect inverts the corresponding axis.
func (pz *PanZoom) SetRect(r transform.Rect) {
	pz.rect = r
	pz.this.Update()
}

// MouseEvent pans on primary-button moves and zooms on secondary-button
// moves, marking the event handled whenever the view changed.
func (pz *PanZoom) MouseEvent(e *events.Event) {
	if e.Typ != events.MouseMove {
		return
	}
	switch {
	case e.Held.Has(events.Left):
		// pan by the scene-space motion of the pointer
		p1 := pz.st.InverseMap2(e.Prev)
		p2 := pz.st.InverseMap2(e.Where)
		pz.rect = pz.rect.Translated(p1.Sub(p2))
	case e.Held.Has(events.Right):
		d := e.Prev.Sub(e.Where)
		s := mgl32.Vec2{
			math32.Pow(zoomBase, d.X()),
			math32.Pow(zoomBase, -d.Y()),
		}
		// zoom about the scene point under the press position; the
		// remapped rect keeps that point fixed, so inverse-mapping the
		// press position again next move finds the same point.
		c := pz.st.InverseMap2(e.Start)
		zoom := transform.Translate2D(c.X(), c.Y()).
			Mul(transform.Scale2D(s.X(), s.Y())).
			Mul(transform.Translate2D(-c.X(), -c.Y()))
		pz.rect = zoom.MapRect(pz.rect)
	default:
		return
	}
	e.SetHandled()
	pz.this.Update()
}

// ResizeEvent recomputes the transform for the new pixel rect.
func (pz *PanZoom) ResizeEvent(e *events.Event) {
	pz.this.Update()
}

// Update maps the visible rect onto the viewbox pixel rect, flipped on Y
// so that scene Y points up, and publishes the result.
func (pz *PanZoom) Update() {
	if pz.vb == nil {
		return
	}
	pz.st.SetMapping(pz.rect, pz.vb.PixelRect().Flipped(false, true))
	pz.Publish()
}
