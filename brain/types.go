// Package brain simulates the matrix brain: a rotating point cloud on a sphere with
// short-lived connections and signals traveling along them. It has no dependency on
// ebiten; drawing goes through the Canvas interface.
package brain

import (
	"math"

	"github.com/tardionchain/tardi/config"
)

// Vec3 is a position in model space
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - o
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Len returns the euclidean length of v
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Lerp interpolates between v and o by t
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
	}
}

// Point is a neuron. Pos and Kind never change after generation.
type Point struct {
	Pos  Vec3
	Kind config.NeuronKind

	Pulse   float64 // Oscillation phase, advanced every frame
	ScreenX float64 // Last projected position
	ScreenY float64
	Depth   float64 // Rotated z of the last projection

	LastConnection float64 // Clock time (ms) of the last edge created from this point
}

// Signal is a particle traveling along an edge from start (0) to end (1)
type Signal struct {
	Progress  float64
	Speed     float64
	Intensity float64
}

// Edge is a transient connection. Start and End are copies of the endpoint positions
// taken at creation; From and To index the endpoints for degree bookkeeping.
type Edge struct {
	Start, End Vec3
	From, To   int

	Life      float64
	Strength  float64
	StartKind config.NeuronKind
	EndKind   config.NeuronKind

	Signals []Signal
}

// Projected is a screen-space position with the rotated depth retained
type Projected struct {
	X, Y, Z float64
}
