// Copyright (c) 2025, The Vispy Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/rowhit/vispy/events"
	"github.com/rowhit/vispy/viewbox"
)

func newBoundTurntable(w, h int) (*Turntable, *viewbox.ViewBox, *events.State) {
	vb := viewbox.New(w, h)
	tc := NewTurntable()
	tc.Bind(vb)
	return tc, vb, &events.State{}
}

func TestTurntableDefaults(t *testing.T) {
	tc := NewTurntable()
	assert.Equal(t, float32(30), tc.Azimuth())
	assert.Equal(t, float32(30), tc.Elevation())
	assert.Equal(t, float32(10), tc.Distance())
	assert.Equal(t, mgl32.Vec3{}, tc.Center())
	assert.Equal(t, Orthographic, tc.Mode())
}

func TestElevationClamp(t *testing.T) {
	tc, _, _ := newBoundTurntable(400, 300)

	tc.Orbit(0, 100)
	assert.Equal(t, float32(90), tc.Elevation())

	tc.Orbit(0, -300)
	assert.Equal(t, float32(-90), tc.Elevation())

	tc.SetElevation(45)
	assert.Equal(t, float32(45), tc.Elevation())
	tc.SetElevation(-200)
	assert.Equal(t, float32(-90), tc.Elevation())
}

func TestAzimuthUnbounded(t *testing.T) {
	tc, _, _ := newBoundTurntable(400, 300)
	tc.Orbit(500, 0)
	assert.Equal(t, float32(530), tc.Azimuth())
	tc.SetAzimuth(-1000)
	assert.Equal(t, float32(-1000), tc.Azimuth())
}

func TestAzimuthPeriodicity(t *testing.T) {
	a, vba, _ := newBoundTurntable(400, 300)
	b, vbb, _ := newBoundTurntable(400, 300)
	a.SetAzimuth(42)
	b.SetAzimuth(42 + 360)

	pts := []mgl32.Vec3{{0, 0, 0}, {1, 2, 3}, {-4, 0.5, 1}}
	for _, p := range pts {
		pa := vba.SubScene.Transform().Map(p)
		pb := vbb.SubScene.Transform().Map(p)
		assert.InDelta(t, pa.X(), pb.X(), 1e-3)
		assert.InDelta(t, pa.Y(), pb.Y(), 1e-3)
		assert.InDelta(t, pa.Z(), pb.Z(), 1e-3)
	}
}

func TestCenterMapsToViewCenter(t *testing.T) {
	tests := []struct {
		az, el float32
		center mgl32.Vec3
	}{
		{30, 30, mgl32.Vec3{}},
		{-75, 12, mgl32.Vec3{1, -2, 3}},
		{200, -90, mgl32.Vec3{0.5, 0.5, 0.5}},
	}
	for _, tt := range tests {
		tc, vb, _ := newBoundTurntable(400, 300)
		tc.SetAzimuth(tt.az)
		tc.SetElevation(tt.el)
		tc.SetCenter(tt.center)

		p := vb.SubScene.Transform().Map(tt.center)
		assert.InDelta(t, 200, p.X(), 1e-3)
		assert.InDelta(t, 150, p.Y(), 1e-3)
	}
}

func TestDragOrbits(t *testing.T) {
	tc, vb, st := newBoundTurntable(400, 300)

	st.MouseMove(100, 100)
	vb.Dispatch(st.MouseDown(events.Left))
	ev := st.MouseMove(110, 105)
	vb.Dispatch(ev)

	// dragging right orbits left; dragging down raises the elevation
	assert.InDelta(t, 20, tc.Azimuth(), standardTol)
	assert.InDelta(t, 35, tc.Elevation(), standardTol)
	assert.False(t, ev.IsHandled())
}

func TestWheelScalesFOV(t *testing.T) {
	tc, vb, st := newBoundTurntable(400, 300)
	tc.SetMode(PerspectiveProjection)

	vb.Dispatch(st.Scroll(0, 1))
	assert.InDelta(t, 60/1.1, tc.Persp.FOV, 1e-4)

	vb.Dispatch(st.Scroll(0, -1))
	assert.InDelta(t, 60, tc.Persp.FOV, 1e-4)
}

func TestReservedVariantsProjectLikePerspective(t *testing.T) {
	for _, cam := range []Camera{NewArcball(), NewFirstPerson()} {
		vb := viewbox.New(400, 300)
		cam.Bind(vb)

		pc := NewPerspective()
		vbp := viewbox.New(400, 300)
		pc.Bind(vbp)

		p := mgl32.Vec3{1, 2, -3}
		assertVec3Equal(t, vbp.SubScene.Transform().Map(p), vb.SubScene.Transform().Map(p))
	}
}
