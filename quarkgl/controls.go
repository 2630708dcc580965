package quarkgl

// OrbitController provides orbit/zoom interactions for a camera.
//
// It does not depend on any input system; callers feed it deltas.
type OrbitController struct {
	Target Vec3
	Yaw    Scalar
	Pitch  Scalar
	Radius Scalar

	MinRadius Scalar
	MaxRadius Scalar
	// MaxPitch limits |Pitch| so the camera never flips over the pole.
	MaxPitch Scalar
}

// Apply positions cam on the orbit sphere looking at Target.
func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.clampRadius(c.Radius)
	if r == 0 {
		r = 3
	}
	m := Mat4Mul(Mat4RotateY(c.Yaw), Mat4RotateX(c.Pitch))
	p := Mat4MulV4(m, Vec4{Z: r, W: 1})

	cam.Position = c.Target.Add(V3(p.X, p.Y, p.Z))
	cam.Target = c.Target
	if cam.Up == (Vec3{}) {
		cam.Up = V3(0, 1, 0)
	}
}

func (c *OrbitController) Rotate(deltaYaw, deltaPitch Scalar) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	if c.MaxPitch > 0 {
		if c.Pitch > c.MaxPitch {
			c.Pitch = c.MaxPitch
		}
		if c.Pitch < -c.MaxPitch {
			c.Pitch = -c.MaxPitch
		}
	}
}

func (c *OrbitController) Zoom(delta Scalar) {
	c.Radius = c.clampRadius(c.Radius + delta)
}

func (c *OrbitController) clampRadius(r Scalar) Scalar {
	if c.MinRadius != 0 && r < c.MinRadius {
		return c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		return c.MaxRadius
	}
	return r
}
