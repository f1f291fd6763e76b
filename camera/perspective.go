// Copyright (c) 2025, The Vispy Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/rowhit/vispy/events"
	"github.com/rowhit/vispy/transform"
)

// Mode selects how a [Perspective] camera projects the scene.
type Mode int32

const (
	// Orthographic projects with no foreshortening; the visible width is
	// set by [OrthoParams.Width].
	Orthographic Mode = iota

	// PerspectiveProjection projects with foreshortening; the visible
	// extent is set by [PerspParams.FOV].
	PerspectiveProjection
)

func (m Mode) String() string {
	switch m {
	case Orthographic:
		return "Orthographic"
	case PerspectiveProjection:
		return "PerspectiveProjection"
	default:
		return fmt.Sprintf("Mode(%d)", int32(m))
	}
}

// OrthoParams are the orthographic projection parameters. The visible
// height is always Width scaled by the viewbox pixel aspect.
type OrthoParams struct {
	Near  float32
	Far   float32
	Width float32
}

// PerspParams are the perspective projection parameters. FOV is the field
// of view in degrees.
type PerspParams struct {
	Near float32
	Far  float32
	FOV  float32
}

// entityPoser is implemented by camera variants that derive the pose
// transform from their own view state, such as [Turntable].
type entityPoser interface {
	updateEntityTransform()
}

// updateGuard suppresses pose change-notifications while the camera is
// rewriting the pose itself, so a recompute cannot retrigger itself.
type updateGuard struct {
	depth int
}

func (g *updateGuard) held() bool {
	return g.depth > 0
}

// do runs f with the guard held, releasing on every exit path.
func (g *updateGuard) do(f func()) {
	g.depth++
	defer func() { g.depth-- }()
	f()
}

// Perspective is a 3D camera. It composes a world-to-view pose transform
// with an orthographic or perspective projection and the viewbox pixel
// mapping. The pose is either set directly through [Perspective.Pose] or
// derived by a variant such as [Turntable].
type Perspective struct {
	Base

	// Ortho parameterizes the Orthographic mode. After editing fields
	// directly, call Update; the setters do so automatically.
	Ortho OrthoParams

	// Persp parameterizes the PerspectiveProjection mode.
	Persp PerspParams

	mode  Mode
	pose  *transform.Affine
	proj  *transform.Projection
	guard updateGuard
}

// NewPerspective returns a new [Perspective] camera with orthographic
// projection.
func NewPerspective() *Perspective {
	pc := &Perspective{}
	pc.Init(pc)
	return pc
}

// Init initializes the camera with this as the outermost value.
func (pc *Perspective) Init(this Camera) {
	pc.Base.Init(this)
	pc.Ortho = OrthoParams{Near: -1e6, Far: 1e6, Width: 10}
	pc.Persp = PerspParams{Near: 1e-6, Far: 1e6, FOV: 60}
	pc.pose = transform.NewAffine()
	pc.proj = transform.NewProjection()
	pc.pose.OnChange(func() {
		if pc.guard.held() {
			return
		}
		pc.this.Update()
	})
}

// Pose returns the world-to-view pose transform. Mutating it recomputes
// the output transform.
func (pc *Perspective) Pose() *transform.Affine {
	return pc.pose
}

// Mode returns the current projection mode.
func (pc *Perspective) Mode() Mode {
	return pc.mode
}

// SetMode sets the projection mode and recomputes immediately.
func (pc *Perspective) SetMode(m Mode) {
	pc.mode = m
	pc.this.Update()
}

// SetFOV sets the perspective field of view in degrees.
func (pc *Perspective) SetFOV(fov float32) {
	pc.Persp.FOV = fov
	pc.this.Update()
}

// SetOrthoWidth sets the visible width of the orthographic projection.
func (pc *Perspective) SetOrthoWidth(w float32) {
	pc.Ortho.Width = w
	pc.this.Update()
}

// ResizeEvent recomputes the transform for the new pixel size.
func (pc *Perspective) ResizeEvent(e *events.Event) {
	pc.this.Update()
}

// Update implements [Camera] by recomputing the full output transform.
func (pc *Perspective) Update() {
	pc.UpdateTransform()
}

// UpdateTransform rebuilds the output transform as
// unitMapping * projection * pose: first the pose hook of the variant runs
// with change-notifications suppressed, then the projection is derived
// from the mode and the viewbox aspect, then the composite is published.
// A no-op while unbound. An unknown mode panics.
func (pc *Perspective) UpdateTransform() {
	if pc.vb == nil {
		return
	}
	if ep, ok := pc.this.(entityPoser); ok {
		pc.guard.do(ep.updateEntityTransform)
	}

	size := pc.vb.PixelSize()
	aspect := size.Y() / size.X()
	switch pc.mode {
	case Orthographic:
		w := pc.Ortho.Width / 2
		h := w * aspect
		pc.proj.SetOrthographic(-w, w, -h, h, pc.Ortho.Near, pc.Ortho.Far)
	case PerspectiveProjection:
		pc.proj.SetPerspective(pc.Persp.FOV, aspect, pc.Persp.Near, pc.Persp.Far)
	default:
		panic(fmt.Sprintf("camera: unknown projection mode %v", pc.mode))
	}

	// clip coordinates onto canvas pixels, Y down
	unit := transform.FromMapping(
		transform.Rect{Pos: mgl32.Vec2{-1, 1}, Size: mgl32.Vec2{2, -2}},
		pc.vb.PixelRect(),
	)
	pc.tr = transform.Compose(unit, pc.proj, pc.pose)
	pc.Publish()
}
