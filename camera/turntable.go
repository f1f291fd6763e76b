// Copyright (c) 2025, The Vispy Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rowhit/vispy/events"
)

// wheelFOVBase is the per-notch field-of-view factor of a wheel zoom.
const wheelFOVBase = 1.1

// Turntable is a 3D camera orbiting a center point at a fixed distance.
// Azimuth rotates about the world +Y axis and is unbounded; elevation tilts
// about the view X axis and is clamped to [-90, 90]. Dragging with the
// primary button orbits and the wheel zooms by narrowing the field of view.
type Turntable struct {
	Perspective

	azimuth   float32
	elevation float32
	distance  float32
	center    mgl32.Vec3
}

// NewTurntable returns a new [Turntable] camera looking at the origin.
func NewTurntable() *Turntable {
	tc := &Turntable{}
	tc.Init(tc)
	return tc
}

// Init initializes the camera with this as the outermost value.
func (tc *Turntable) Init(this Camera) {
	tc.Perspective.Init(this)
	tc.azimuth = 30
	tc.elevation = 30
	tc.distance = 10
}

// Azimuth returns the orbit angle about +Y in degrees.
func (tc *Turntable) Azimuth() float32 {
	return tc.azimuth
}

// SetAzimuth sets the orbit angle about +Y in degrees. Any value is
// accepted; angles a full turn apart yield the same view.
func (tc *Turntable) SetAzimuth(az float32) {
	tc.azimuth = az
	tc.this.Update()
}

// Elevation returns the tilt angle in degrees.
func (tc *Turntable) Elevation() float32 {
	return tc.elevation
}

// SetElevation sets the tilt angle in degrees, clamped to [-90, 90].
func (tc *Turntable) SetElevation(el float32) {
	tc.elevation = mgl32.Clamp(el, -90, 90)
	tc.this.Update()
}

// Distance returns the distance from the center point.
func (tc *Turntable) Distance() float32 {
	return tc.distance
}

// SetDistance sets the distance from the center point.
func (tc *Turntable) SetDistance(d float32) {
	tc.distance = d
	tc.this.Update()
}

// Center returns the point the camera orbits.
func (tc *Turntable) Center() mgl32.Vec3 {
	return tc.center
}

// SetCenter sets the point the camera orbits.
func (tc *Turntable) SetCenter(c mgl32.Vec3) {
	tc.center = c
	tc.this.Update()
}

// Orbit rotates the view by the given azimuth and elevation deltas in
// degrees, clamping the resulting elevation.
func (tc *Turntable) Orbit(dAz, dEl float32) {
	tc.azimuth += dAz
	tc.elevation = mgl32.Clamp(tc.elevation+dEl, -90, 90)
	tc.this.Update()
}

// MouseEvent orbits on primary-button moves and scales the field of view
// on wheel events.
func (tc *Turntable) MouseEvent(e *events.Event) {
	switch e.Typ {
	case events.Scroll:
		tc.Persp.FOV *= math32.Pow(wheelFOVBase, -e.Delta.Y())
		tc.this.Update()
	case events.MouseMove:
		if !e.Held.Has(events.Left) {
			return
		}
		d := e.Where.Sub(e.Prev)
		tc.Orbit(-d.X(), d.Y())
	}
}

// updateEntityTransform derives the pose from the orbit state. Operations
// right-multiply, so points are recentered first, then rotated, then pushed
// back along the view axis.
func (tc *Turntable) updateEntityTransform() {
	tc.pose.Reset()
	tc.pose.Translate(mgl32.Vec3{0, 0, -tc.distance})
	tc.pose.Rotate(tc.azimuth, mgl32.Vec3{0, 1, 0})
	tc.pose.Rotate(tc.elevation, mgl32.Vec3{-1, 0, 0})
	tc.pose.Translate(tc.center.Mul(-1))
}

// Arcball is reserved for trackball-style rotation. It projects like
// [Perspective] and derives no pose of its own yet.
type Arcball struct {
	Perspective
}

// NewArcball returns a new [Arcball] camera.
func NewArcball() *Arcball {
	ac := &Arcball{}
	ac.Init(ac)
	return ac
}

// FirstPerson is reserved for free-flight navigation. It projects like
// [Perspective] and derives no pose of its own yet.
type FirstPerson struct {
	Perspective
}

// NewFirstPerson returns a new [FirstPerson] camera.
func NewFirstPerson() *FirstPerson {
	fc := &FirstPerson{}
	fc.Init(fc)
	return fc
}
