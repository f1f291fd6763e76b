// Copyright (c) 2025, The Vispy Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer, wheel, and resize events a viewport
// dispatches to its camera, along with the listener registry and a
// pointer-state tracker that synthesizes events from raw input.
package events

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Types is the type of viewport event, which also selects which events a
// listener receives.
type Types int32

const (
	// UnknownType is the zero value, an unknown event type.
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// MouseMove is sent when the pointer moves, with or without buttons
	// held; held buttons are reported in [Event.Held].
	MouseMove

	// Scroll is sent for wheel or other scrolling input, with the amount
	// in [Event.Delta].
	Scroll

	// Resize is sent when the viewport pixel size changes, with the new
	// size in [Event.Size].
	Resize
)

func (t Types) String() string {
	switch t {
	case MouseDown:
		return "MouseDown"
	case MouseUp:
		return "MouseUp"
	case MouseMove:
		return "MouseMove"
	case Scroll:
		return "Scroll"
	case Resize:
		return "Resize"
	default:
		return "UnknownType"
	}
}

// Buttons is a set of mouse buttons, as bit flags.
type Buttons int32

const (
	NoButton Buttons = 0
	Left     Buttons = 1 << (iota - 1)
	Middle
	Right
)

// Has reports whether all given buttons are in the set.
func (b Buttons) Has(btn Buttons) bool {
	return b&btn == btn
}

// Event is a viewport event. Positions are in canvas pixel coordinates.
type Event struct {
	// Typ is the type of this event.
	Typ Types

	// Where is the current pointer position.
	Where mgl32.Vec2

	// Prev is the pointer position of the previous event.
	Prev mgl32.Vec2

	// Start is the position where the currently held button was first
	// pressed; it anchors gestures such as zoom-about-press-point.
	Start mgl32.Vec2

	// Button is the button that triggered a MouseDown or MouseUp.
	Button Buttons

	// Held is the set of buttons held while this event happened.
	Held Buttons

	// Delta is the scroll amount for Scroll events.
	Delta mgl32.Vec2

	// Size is the new viewport pixel size for Resize events.
	Size image.Point

	handled bool
}

// Type returns the type of this event.
func (ev *Event) Type() Types {
	return ev.Typ
}

// IsHandled reports whether a listener has already serviced this event.
func (ev *Event) IsHandled() bool {
	return ev.handled
}

// SetHandled marks this event as serviced, stopping further dispatch.
func (ev *Event) SetHandled() {
	ev.handled = true
}

func (ev *Event) String() string {
	return fmt.Sprintf("%v{Pos: %v, Held: %v, Delta: %v}", ev.Typ, ev.Where, ev.Held, ev.Delta)
}

// NewResize returns a new Resize event for the given pixel size.
func NewResize(size image.Point) *Event {
	return &Event{Typ: Resize, Size: size}
}
