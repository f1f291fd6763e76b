// Copyright (c) 2025, The Vispy Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform provides the composable geometric mappings that connect
// scene coordinates to viewport pixels: similarity (scale + translate),
// general affine, and perspective / orthographic projection transforms,
// all mappable forward and inverse and composable left to right.
package transform

import "github.com/go-gl/mathgl/mgl32"

// Transform is a mapping between two coordinate systems.
// All transforms in this package map points forward with Map and
// backward with InverseMap, and expose their 4x4 matrix form so that
// heterogeneous transforms can be composed with [Compose].
type Transform interface {
	// Map maps a point from the source to the destination system.
	Map(p mgl32.Vec3) mgl32.Vec3

	// InverseMap maps a point from the destination back to the source.
	InverseMap(p mgl32.Vec3) mgl32.Vec3

	// Matrix returns the 4x4 matrix form of this transform.
	Matrix() mgl32.Mat4
}

var (
	_ Transform = (*MatrixTransform)(nil)
	_ Transform = (*Affine)(nil)
	_ Transform = (*Projection)(nil)
	_ Transform = (*STTransform)(nil)
)

// MatrixTransform is a [Transform] backed directly by a 4x4 matrix. It is
// the general composition result and the base for [Affine] and
// [Projection]. Mutations notify registered observers and invalidate the
// cached inverse.
type MatrixTransform struct {
	mat mgl32.Mat4
	inv *mgl32.Mat4

	changed []func()
}

// Identity returns a new identity [MatrixTransform].
func Identity() *MatrixTransform {
	return &MatrixTransform{mat: mgl32.Ident4()}
}

// NewMatrixTransform returns a new [MatrixTransform] wrapping the given
// matrix.
func NewMatrixTransform(m mgl32.Mat4) *MatrixTransform {
	return &MatrixTransform{mat: m}
}

// Compose returns the left-to-right composition of the given transforms as
// a fresh [MatrixTransform]: the rightmost transform applies to points
// first, as in matrix multiplication. Compose of nothing is the identity.
func Compose(trs ...Transform) *MatrixTransform {
	m := mgl32.Ident4()
	for _, tr := range trs {
		m = m.Mul4(tr.Matrix())
	}
	return &MatrixTransform{mat: m}
}

// Matrix returns the 4x4 matrix form.
func (m *MatrixTransform) Matrix() mgl32.Mat4 {
	return m.mat
}

// Map maps a point through the matrix, applying the perspective divide when
// the matrix has a projective component.
func (m *MatrixTransform) Map(p mgl32.Vec3) mgl32.Vec3 {
	return mapPoint(m.mat, p)
}

// InverseMap maps a point through the matrix inverse. The inverse is
// computed on first use and cached until the next mutation.
func (m *MatrixTransform) InverseMap(p mgl32.Vec3) mgl32.Vec3 {
	if m.inv == nil {
		inv := m.mat.Inv()
		m.inv = &inv
	}
	return mapPoint(*m.inv, p)
}

// OnChange registers an observer invoked after every mutation of this
// transform. Observers are called in registration order.
func (m *MatrixTransform) OnChange(fn func()) {
	m.changed = append(m.changed, fn)
}

// set replaces the matrix, drops the cached inverse, and notifies observers.
func (m *MatrixTransform) set(mat mgl32.Mat4) {
	m.mat = mat
	m.inv = nil
	for _, fn := range m.changed {
		fn()
	}
}

// mapPoint applies m to p as a homogeneous point, dividing by w so that
// projective transforms map correctly.
func mapPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	w := v.W()
	if w != 0 && w != 1 {
		return mgl32.Vec3{v.X() / w, v.Y() / w, v.Z() / w}
	}
	return v.Vec3()
}
