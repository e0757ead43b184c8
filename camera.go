package lume

import "math"

// Camera is a fly camera driven by yaw/pitch angles. It produces the view
// matrix consumed by the shading pipeline; the pipeline itself never moves
// the camera.
type Camera struct {
	Position      Vector
	Yaw           float64 // rotation about Y, radians
	Pitch         float64 // rotation about X, radians
	Speed         float64 // horizontal movement, units per second
	VerticalSpeed float64 // vertical movement, units per second
	Sensitivity   float64 // mouse-look radians per pixel
}

func NewCamera(position Vector) *Camera {
	return &Camera{
		Position:      position,
		Speed:         10,
		VerticalSpeed: 10,
		Sensitivity:   0.001,
	}
}

// Forward returns the unit look direction for the current yaw and pitch.
// Zero yaw and pitch looks down -Z.
func (c *Camera) Forward() Vector {
	cosPitch := math.Cos(c.Pitch)
	return Vector{
		-math.Sin(c.Yaw) * cosPitch,
		-math.Sin(c.Pitch),
		-math.Cos(c.Yaw) * cosPitch,
	}
}

// Right returns the unit vector to the camera's right, level with the ground.
func (c *Camera) Right() Vector {
	return c.Forward().Cross(Vector{0, 1, 0}).Normalize()
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() Matrix {
	return LookAt(c.Position, c.Position.Add(c.Forward()), Vector{0, 1, 0})
}

// Move displaces the camera along its forward/right/up axes. The three
// arguments are signed key states (-1, 0, 1) scaled by dt seconds.
func (c *Camera) Move(forward, strafe, vertical, dt float64) {
	velocity := c.Speed * dt
	c.Position = c.Position.Add(c.Forward().MulScalar(forward * velocity))
	c.Position = c.Position.Add(c.Right().MulScalar(strafe * velocity))
	c.Position = c.Position.Add(Vector{0, c.VerticalSpeed * dt * vertical, 0})
}

// Look applies a mouse delta to yaw and pitch. Pitch is clamped short of the
// poles so the view never flips.
func (c *Camera) Look(dx, dy float64) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch -= dy * c.Sensitivity
	c.Pitch = Clamp(c.Pitch, -1.5, 1.5)
}
