package brain

import "math"

// Project rotates p around the vertical axis and applies a perspective divide with the
// given focal distance. The sphere radius pushes the cloud away from the camera so the
// denominator stays positive for every point on the sphere.
func Project(p Vec3, rotation, width, height, radius, focal float64) Projected {
	sin, cos := math.Sincos(rotation)
	rotatedX := p.X*cos - p.Z*sin
	rotatedZ := p.X*sin + p.Z*cos
	scale := focal / (focal + rotatedZ + radius)

	return Projected{
		X: width/2 + rotatedX*scale,
		Y: height/2 + p.Y*scale,
		Z: rotatedZ,
	}
}

// DepthOf maps a rotated z in [-radius, radius] to [0, 1]. Points are drawn in
// descending depth order. A degenerate radius yields 0.
func DepthOf(z, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return (z + radius) / (2 * radius)
}
