// Copyright (c) 2025, The Vispy Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import "github.com/go-gl/mathgl/mgl32"

// Affine is a general affine [Transform] built up from translation and
// rotation operations. Each operation right-multiplies the current matrix,
// so the most recently applied operation acts on points first; deriving a
// camera pose therefore reads in view order: push back, rotate, recenter.
type Affine struct {
	MatrixTransform
}

// NewAffine returns a new identity [Affine].
func NewAffine() *Affine {
	return &Affine{MatrixTransform{mat: mgl32.Ident4()}}
}

// Reset sets the transform back to identity.
func (a *Affine) Reset() {
	a.set(mgl32.Ident4())
}

// Translate applies a translation by the given vector.
func (a *Affine) Translate(v mgl32.Vec3) {
	a.set(a.mat.Mul4(mgl32.Translate3D(v.X(), v.Y(), v.Z())))
}

// Rotate applies a rotation of angle degrees about the given axis.
func (a *Affine) Rotate(angle float32, axis mgl32.Vec3) {
	a.set(a.mat.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(angle), axis.Normalize())))
}

// Scale applies a per-axis scale.
func (a *Affine) Scale(v mgl32.Vec3) {
	a.set(a.mat.Mul4(mgl32.Scale3D(v.X(), v.Y(), v.Z())))
}

// Projection is a perspective or orthographic projection [Transform],
// mapping a view volume onto the canonical clip region.
type Projection struct {
	MatrixTransform
}

// NewProjection returns a new identity [Projection].
func NewProjection() *Projection {
	return &Projection{MatrixTransform{mat: mgl32.Ident4()}}
}

// SetPerspective configures a perspective projection from a vertical field
// of view in degrees, an aspect ratio, and near/far plane distances.
func (pr *Projection) SetPerspective(fovy, aspect, near, far float32) {
	pr.set(mgl32.Perspective(mgl32.DegToRad(fovy), aspect, near, far))
}

// SetOrthographic configures an orthographic projection from the clip
// volume bounds.
func (pr *Projection) SetOrthographic(left, right, bottom, top, near, far float32) {
	pr.set(mgl32.Ortho(left, right, bottom, top, near, far))
}
