// Copyright (c) 2025, The Vispy Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "github.com/go-gl/mathgl/mgl32"

// State tracks pointer state across raw input callbacks and synthesizes the
// [Event]s a viewport dispatches: it carries the previous position, the
// press position of the current gesture, and the set of held buttons from
// one callback to the next.
type State struct {
	pos   mgl32.Vec2
	prev  mgl32.Vec2
	start mgl32.Vec2
	held  Buttons
}

// Pos returns the last known pointer position.
func (st *State) Pos() mgl32.Vec2 {
	return st.pos
}

// Held returns the set of currently held buttons.
func (st *State) Held() Buttons {
	return st.held
}

func (st *State) event(typ Types) *Event {
	return &Event{
		Typ:   typ,
		Where: st.pos,
		Prev:  st.prev,
		Start: st.start,
		Held:  st.held,
	}
}

// MouseDown records a button press at the current position and returns the
// MouseDown event. The press position anchors the gesture until release.
func (st *State) MouseDown(btn Buttons) *Event {
	if st.held == NoButton {
		st.start = st.pos
	}
	st.held |= btn
	ev := st.event(MouseDown)
	ev.Button = btn
	return ev
}

// MouseUp records a button release and returns the MouseUp event.
func (st *State) MouseUp(btn Buttons) *Event {
	ev := st.event(MouseUp)
	ev.Button = btn
	st.held &^= btn
	return ev
}

// MouseMove records a pointer move to the given position and returns the
// MouseMove event, with Prev set to the position before the move.
func (st *State) MouseMove(x, y float32) *Event {
	st.prev = st.pos
	st.pos = mgl32.Vec2{x, y}
	return st.event(MouseMove)
}

// Scroll returns a Scroll event with the given wheel delta at the current
// position.
func (st *State) Scroll(dx, dy float32) *Event {
	ev := st.event(Scroll)
	ev.Delta = mgl32.Vec2{dx, dy}
	return ev
}
