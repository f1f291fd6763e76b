// Copyright (c) 2025, The Vispy Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewbox provides the rectangular viewport that owns a sub-scene
// and routes input events to whatever camera is bound to it.
package viewbox

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/rowhit/vispy/events"
	"github.com/rowhit/vispy/transform"
)

// Geom is the pixel geometry of a viewbox within its canvas.
type Geom struct {
	// Pos is the position of the viewbox origin within the canvas.
	Pos image.Point

	// Size is the size of the viewbox in pixels.
	Size image.Point
}

// SubScene is the root of the content rendered inside a [ViewBox]. The
// camera bound to the viewbox owns its transform: the full mapping from
// scene coordinates to normalized device coordinates.
type SubScene struct {
	tr transform.Transform
}

// Transform returns the current scene transform, or nil if no camera has
// set one yet.
func (sc *SubScene) Transform() transform.Transform {
	return sc.tr
}

// SetTransform sets the scene transform.
func (sc *SubScene) SetTransform(tr transform.Transform) {
	sc.tr = tr
}

// ViewBox is a rectangular region of the canvas with its own sub-scene and
// event listeners. Input events for the region are dispatched through
// [ViewBox.Dispatch]; the bound camera subscribes to the ones it consumes.
type ViewBox struct {
	// Geom is the pixel geometry of this viewbox.
	Geom Geom

	// SubScene is the content scene this viewbox displays.
	SubScene SubScene

	// Trace, when non-nil, logs every dispatched event at debug level.
	Trace *zap.Logger

	listeners events.Listeners
}

// New returns a new [ViewBox] with the given pixel size at origin (0, 0).
func New(width, height int) *ViewBox {
	return &ViewBox{Geom: Geom{Size: image.Pt(width, height)}}
}

// On registers a listener for the given event type and returns its
// subscription handle.
func (vb *ViewBox) On(typ events.Types, fn func(e *events.Event)) events.Subscription {
	return vb.listeners.Add(typ, fn)
}

// Off removes a previously registered listener.
func (vb *ViewBox) Off(sub events.Subscription) {
	vb.listeners.Remove(sub)
}

// Dispatch sends the event to this viewbox's listeners, most recently
// registered first, stopping once the event is handled.
func (vb *ViewBox) Dispatch(ev *events.Event) {
	if vb.Trace != nil {
		vb.Trace.Debug("dispatch", zap.Stringer("event", ev))
	}
	vb.listeners.Call(ev)
}

// SetSize updates the pixel size of the viewbox and dispatches a Resize
// event so the bound camera can recompute its transform.
func (vb *ViewBox) SetSize(width, height int) {
	vb.Geom.Size = image.Pt(width, height)
	vb.Dispatch(events.NewResize(vb.Geom.Size))
}

// PixelSize returns the viewbox size as a float vector.
func (vb *ViewBox) PixelSize() mgl32.Vec2 {
	return mgl32.Vec2{float32(vb.Geom.Size.X), float32(vb.Geom.Size.Y)}
}

// PixelRect returns the viewbox rect in canvas pixel coordinates, including
// the viewbox position within the canvas.
func (vb *ViewBox) PixelRect() transform.Rect {
	return transform.Rect{
		Pos:  mgl32.Vec2{float32(vb.Geom.Pos.X), float32(vb.Geom.Pos.Y)},
		Size: vb.PixelSize(),
	}
}
