// Copyright (c) 2025, The Vispy Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the interactive cameras that control what a
// viewbox shows: an inert base camera, a 2D pan/zoom camera, and a 3D
// turntable camera, plus a name-keyed factory.
//
// A camera is bound to one viewbox at a time. While bound it owns the
// viewbox sub-scene transform: it subscribes to the viewbox's input events,
// reacts to pointer gestures, and republishes the full scene-to-pixel
// transform whenever its view state changes.
package camera

import (
	"fmt"

	"github.com/rowhit/vispy/events"
	"github.com/rowhit/vispy/transform"
	"github.com/rowhit/vispy/viewbox"
)

// Camera is an interactive controller of a viewbox's scene transform.
type Camera interface {
	// Bind attaches the camera to the given viewbox, subscribing to its
	// input events and publishing the camera transform to its sub-scene.
	// A camera bound elsewhere is unbound first.
	Bind(vb *viewbox.ViewBox)

	// Unbind detaches the camera from its viewbox, removing all event
	// subscriptions. The last published transform is left in place.
	Unbind()

	// Transform returns the camera's current output transform, mapping
	// scene coordinates to viewbox pixels. It is never nil.
	Transform() transform.Transform

	// MouseEvent reacts to a pointer or wheel event.
	MouseEvent(e *events.Event)

	// ResizeEvent reacts to a viewbox resize.
	ResizeEvent(e *events.Event)

	// Update recomputes the output transform from the current view state
	// and publishes it. It is a no-op while unbound.
	Update()
}

// Base is the inert camera all variants embed. It handles binding,
// event subscription, and transform publication; its own transform stays
// identity and it reacts to no input.
//
// Embedders must call [Base.Init] with the outermost value so that Base
// dispatches events and updates to the overriding methods.
type Base struct {
	// MouseEnabled gates all pointer and wheel handling; resize handling
	// is unaffected. Defaults to on.
	MouseEnabled bool

	this Camera
	vb   *viewbox.ViewBox
	subs []events.Subscription
	tr   transform.Transform
}

// NewBase returns a new inert [Base] camera.
func NewBase() *Base {
	b := &Base{}
	b.Init(b)
	return b
}

// Init initializes the camera with this as the outermost value, enabling
// mouse handling and setting the identity transform.
func (b *Base) Init(this Camera) {
	b.this = this
	b.MouseEnabled = true
	b.tr = transform.Identity()
}

// Bind implements [Camera].
func (b *Base) Bind(vb *viewbox.ViewBox) {
	b.Unbind()
	b.vb = vb
	for _, typ := range []events.Types{events.MouseDown, events.MouseUp, events.MouseMove, events.Scroll} {
		b.subs = append(b.subs, vb.On(typ, b.mouseEvent))
	}
	b.subs = append(b.subs, vb.On(events.Resize, b.resizeEvent))
	b.this.Update()
}

// Unbind implements [Camera].
func (b *Base) Unbind() {
	if b.vb == nil {
		return
	}
	for _, sub := range b.subs {
		b.vb.Off(sub)
	}
	b.subs = nil
	b.vb = nil
}

// Viewport returns the viewbox this camera is bound to, or nil.
func (b *Base) Viewport() *viewbox.ViewBox {
	return b.vb
}

// Transform implements [Camera].
func (b *Base) Transform() transform.Transform {
	return b.tr
}

// MouseEvent implements [Camera] as a no-op.
func (b *Base) MouseEvent(e *events.Event) {}

// ResizeEvent implements [Camera] as a no-op.
func (b *Base) ResizeEvent(e *events.Event) {}

// Update implements [Camera] by republishing the current transform.
func (b *Base) Update() {
	b.Publish()
}

// Publish writes the output transform to the bound viewbox's sub-scene.
// It is a no-op while unbound.
func (b *Base) Publish() {
	if b.vb != nil {
		b.vb.SubScene.SetTransform(b.tr)
	}
}

func (b *Base) mouseEvent(e *events.Event) {
	if e.IsHandled() || !b.MouseEnabled {
		return
	}
	b.this.MouseEvent(e)
}

func (b *Base) resizeEvent(e *events.Event) {
	if e.IsHandled() {
		return
	}
	b.this.ResizeEvent(e)
}

// UnknownTypeError is returned by [New] for a camera type name it does
// not know.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("camera: unknown camera type %q; options are: %q, %q, %q", e.Type, "", "panzoom", "turntable")
}

// New returns a new camera for the given type name: "" for the inert base
// camera, "panzoom" for 2D pan and zoom, "turntable" for 3D orbiting.
// An unknown name returns an [*UnknownTypeError].
func New(name string) (Camera, error) {
	switch name {
	case "":
		return NewBase(), nil
	case "panzoom":
		return NewPanZoom(), nil
	case "turntable":
		return NewTurntable(), nil
	}
	return nil, &UnknownTypeError{Type: name}
}
