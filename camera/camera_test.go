// Copyright (c) 2025, The Vispy Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowhit/vispy/events"
	"github.com/rowhit/vispy/viewbox"
)

const standardTol = 1.0e-5

func assertVec2Equal(t *testing.T, want, got mgl32.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), standardTol)
	assert.InDelta(t, want.Y(), got.Y(), standardTol)
}

func assertVec3Equal(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), standardTol)
	assert.InDelta(t, want.Y(), got.Y(), standardTol)
	assert.InDelta(t, want.Z(), got.Z(), standardTol)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		want Camera
	}{
		{"", &Base{}},
		{"panzoom", &PanZoom{}},
		{"turntable", &Turntable{}},
	}
	for _, tt := range tests {
		cam, err := New(tt.name)
		require.NoError(t, err)
		assert.IsType(t, tt.want, cam)
		assert.NotNil(t, cam.Transform())
	}
}

func TestNewUnknownType(t *testing.T) {
	cam, err := New("arcball-spinner")
	assert.Nil(t, cam)

	var ute *UnknownTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "arcball-spinner", ute.Type)
	assert.Contains(t, err.Error(), `"arcball-spinner"`)
	assert.Contains(t, err.Error(), `"panzoom"`)
	assert.Contains(t, err.Error(), `"turntable"`)
}

func TestBaseBindPublishesIdentity(t *testing.T) {
	vb := viewbox.New(400, 300)
	b := NewBase()
	b.Bind(vb)

	tr := vb.SubScene.Transform()
	require.NotNil(t, tr)
	p := mgl32.Vec3{3, -4, 5}
	assertVec3Equal(t, p, tr.Map(p))
}

func TestUnbindStopsListening(t *testing.T) {
	vb := viewbox.New(400, 300)
	pz := NewPanZoom()
	pz.Bind(vb)

	st := &events.State{}
	st.MouseMove(100, 100)
	vb.Dispatch(st.MouseDown(events.Left))

	pz.Unbind()
	before := pz.Rect()
	vb.Dispatch(st.MouseMove(150, 100))
	assert.Equal(t, before, pz.Rect())

	// the last published transform stays on the sub-scene
	assert.NotNil(t, vb.SubScene.Transform())
}

func TestRebindMovesSubscriptions(t *testing.T) {
	vb1 := viewbox.New(400, 300)
	vb2 := viewbox.New(400, 300)
	pz := NewPanZoom()
	pz.Bind(vb1)
	pz.Bind(vb2)

	st := &events.State{}
	st.MouseMove(100, 100)
	vb1.Dispatch(st.MouseDown(events.Left))
	before := pz.Rect()
	vb1.Dispatch(st.MouseMove(150, 100))
	assert.Equal(t, before, pz.Rect(), "events on the old viewbox are ignored")

	st2 := &events.State{}
	st2.MouseMove(100, 100)
	vb2.Dispatch(st2.MouseDown(events.Left))
	vb2.Dispatch(st2.MouseMove(150, 100))
	assert.NotEqual(t, before, pz.Rect(), "events on the new viewbox act")
}

func TestMouseEnabledGate(t *testing.T) {
	vb := viewbox.New(400, 300)
	pz := NewPanZoom()
	pz.Bind(vb)
	pz.MouseEnabled = false

	st := &events.State{}
	st.MouseMove(100, 100)
	vb.Dispatch(st.MouseDown(events.Left))
	ev := st.MouseMove(150, 100)
	vb.Dispatch(ev)

	assert.Equal(t, NewPanZoom().Rect(), pz.Rect())
	assert.False(t, ev.IsHandled())
}

func TestOffsetViewboxMapsToCanvasCoordinates(t *testing.T) {
	vb := viewbox.New(400, 300)
	vb.Geom.Pos = image.Pt(50, 40)

	pz := NewPanZoom()
	pz.Bind(vb)
	tr := vb.SubScene.Transform()
	assertVec3Equal(t, mgl32.Vec3{50, 340, 0}, tr.Map(mgl32.Vec3{0, 0, 0}))
	assertVec3Equal(t, mgl32.Vec3{450, 40, 0}, tr.Map(mgl32.Vec3{1, 1, 0}))

	tc := NewTurntable()
	tc.Bind(vb)
	p := vb.SubScene.Transform().Map(tc.Center())
	assert.InDelta(t, 250, p.X(), 1e-3)
	assert.InDelta(t, 190, p.Y(), 1e-3)
}

func TestHandledEventsAreSkipped(t *testing.T) {
	vb := viewbox.New(400, 300)
	pz := NewPanZoom()
	pz.Bind(vb)

	st := &events.State{}
	st.MouseMove(100, 100)
	vb.Dispatch(st.MouseDown(events.Left))
	ev := st.MouseMove(150, 100)
	ev.SetHandled()
	vb.Dispatch(ev)

	assert.Equal(t, NewPanZoom().Rect(), pz.Rect())
}
