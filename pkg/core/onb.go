package core

import "math"

// ONB is an orthonormal basis with W aligned to a surface normal
type ONB struct {
	U, V, W Vec3
}

// BuildFromW creates a basis whose W axis points along n.
// The helper axis is world X unless W is nearly parallel to it.
func BuildFromW(n Vec3) ONB {
	w := n.Normalize()

	helper := NewVec3(1, 0, 0)
	if math.Abs(w.X) > 0.9 {
		helper = NewVec3(0, 1, 0)
	}

	v := w.Cross(helper).Normalize()
	u := w.Cross(v)

	return ONB{U: u, V: v, W: w}
}

// Local maps basis coordinates (a.X along U, a.Y along V, a.Z along W) to world space
func (o ONB) Local(a Vec3) Vec3 {
	return o.U.Multiply(a.X).Add(o.V.Multiply(a.Y)).Add(o.W.Multiply(a.Z))
}
