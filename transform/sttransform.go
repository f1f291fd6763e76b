// Copyright (c) 2025, The Vispy Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import "github.com/go-gl/mathgl/mgl32"

// STTransform is a similarity [Transform]: a per-axis scale followed by a
// translation, with no rotation or shear. It maps p to Scale*p + Translate
// componentwise, stays trivially invertible while scale components are
// non-zero, and is the transform a 2D camera derives from its visible rect.
type STTransform struct {
	Scale     mgl32.Vec3
	Translate mgl32.Vec3

	changed []func()
}

// NewST returns a new identity [STTransform].
func NewST() *STTransform {
	return &STTransform{Scale: mgl32.Vec3{1, 1, 1}}
}

// Translate2D returns an [STTransform] translating by (x, y).
func Translate2D(x, y float32) *STTransform {
	return &STTransform{Scale: mgl32.Vec3{1, 1, 1}, Translate: mgl32.Vec3{x, y, 0}}
}

// Scale2D returns an [STTransform] scaling by (x, y).
func Scale2D(x, y float32) *STTransform {
	return &STTransform{Scale: mgl32.Vec3{x, y, 1}}
}

// FromMapping returns the [STTransform] that maps the src rect onto the dst
// rect, origin to origin and end to end. Either rect may be flipped
// (negative size) to invert an axis.
func FromMapping(src, dst Rect) *STTransform {
	st := NewST()
	st.SetMapping(src, dst)
	return st
}

// Map maps a point forward: Scale*p + Translate.
func (st *STTransform) Map(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		st.Scale.X()*p.X() + st.Translate.X(),
		st.Scale.Y()*p.Y() + st.Translate.Y(),
		st.Scale.Z()*p.Z() + st.Translate.Z(),
	}
}

// InverseMap maps a point backward: (p - Translate) / Scale.
func (st *STTransform) InverseMap(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		(p.X() - st.Translate.X()) / st.Scale.X(),
		(p.Y() - st.Translate.Y()) / st.Scale.Y(),
		(p.Z() - st.Translate.Z()) / st.Scale.Z(),
	}
}

// Map2 is the 2D form of [STTransform.Map].
func (st *STTransform) Map2(p mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		st.Scale.X()*p.X() + st.Translate.X(),
		st.Scale.Y()*p.Y() + st.Translate.Y(),
	}
}

// InverseMap2 is the 2D form of [STTransform.InverseMap].
func (st *STTransform) InverseMap2(p mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		(p.X() - st.Translate.X()) / st.Scale.X(),
		(p.Y() - st.Translate.Y()) / st.Scale.Y(),
	}
}

// Matrix returns the 4x4 matrix form: translation times scale.
func (st *STTransform) Matrix() mgl32.Mat4 {
	t := st.Translate
	s := st.Scale
	return mgl32.Translate3D(t.X(), t.Y(), t.Z()).Mul4(mgl32.Scale3D(s.X(), s.Y(), s.Z()))
}

// Mul returns the similarity composition st * other: other applies to
// points first.
func (st *STTransform) Mul(other *STTransform) *STTransform {
	return &STTransform{
		Scale: mgl32.Vec3{
			st.Scale.X() * other.Scale.X(),
			st.Scale.Y() * other.Scale.Y(),
			st.Scale.Z() * other.Scale.Z(),
		},
		Translate: st.Map(other.Translate),
	}
}

// MapRect maps a rect through the transform, preserving the origin/size
// orientation of the input (a flipped input stays flipped).
func (st *STTransform) MapRect(r Rect) Rect {
	p0 := st.Map2(r.Pos)
	p1 := st.Map2(r.End())
	return Rect{Pos: p0, Size: p1.Sub(p0)}
}

// SetMapping solves the scale and translation that map the src rect onto
// the dst rect, origin to origin and end to end. The Z axis is left
// untouched. A zero-size src is a caller error and yields a degenerate,
// non-invertible transform.
func (st *STTransform) SetMapping(src, dst Rect) {
	sx := dst.Size.X() / src.Size.X()
	sy := dst.Size.Y() / src.Size.Y()
	st.Scale = mgl32.Vec3{sx, sy, st.Scale.Z()}
	st.Translate = mgl32.Vec3{
		dst.Pos.X() - sx*src.Pos.X(),
		dst.Pos.Y() - sy*src.Pos.Y(),
		st.Translate.Z(),
	}
	for _, fn := range st.changed {
		fn()
	}
}

// OnChange registers an observer invoked after [STTransform.SetMapping].
func (st *STTransform) OnChange(fn func()) {
	st.changed = append(st.changed, fn)
}
