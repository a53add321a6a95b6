package brain

import (
	"math"
	"math/rand"

	"github.com/tardionchain/tardi/config"
)

// Category thresholds on the normalized point position
const (
	sensoryHeight  = 0.3
	motorHeight    = -0.3
	muscleRadius   = 0.7
	muscleMaxAngle = 0.5
)

// SpherePosition returns the position of point i of n on a golden-angle spiral,
// which spreads points with roughly equal area per point.
func SpherePosition(i, n int, radius float64) Vec3 {
	if n <= 0 {
		return Vec3{}
	}
	phi := math.Acos(1 - 2*(float64(i)+0.5)/float64(n))
	theta := math.Pi * (1 + math.Sqrt(5)) * float64(i)

	return Vec3{
		X: radius * math.Sin(phi) * math.Cos(theta),
		Y: radius * math.Sin(phi) * math.Sin(theta),
		Z: radius * math.Cos(phi),
	}
}

// Classify assigns a neuron kind from the position relative to the sphere center.
// The top cap is sensory, the bottom cap motor, and the outer band on one side muscle.
func Classify(pos Vec3, radius float64) config.NeuronKind {
	if radius <= 0 {
		return config.NeuronInterneuron
	}

	heightRatio := pos.Y / radius
	radiusRatio := math.Sqrt(pos.X*pos.X+pos.Z*pos.Z) / radius
	angleRatio := (math.Atan2(pos.Z, pos.X) + math.Pi) / (2 * math.Pi)

	switch {
	case heightRatio > sensoryHeight:
		return config.NeuronSensory
	case heightRatio < motorHeight:
		return config.NeuronMotor
	case radiusRatio > muscleRadius && angleRatio < muscleMaxAngle:
		return config.NeuronMuscle
	default:
		return config.NeuronInterneuron
	}
}

// GeneratePoints builds the full point set. Positions and kinds depend only on the
// index, count and radius; rng only seeds the starting pulse phase.
func GeneratePoints(n int, radius float64, rng *rand.Rand) []Point {
	if n < 0 {
		n = 0
	}
	points := make([]Point, n)
	for i := range points {
		pos := SpherePosition(i, n, radius)
		points[i] = Point{
			Pos:            pos,
			Kind:           Classify(pos, radius),
			Pulse:          rng.Float64() * math.Pi * 2,
			LastConnection: math.Inf(-1),
		}
	}
	return points
}
