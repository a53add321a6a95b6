package brain

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tardionchain/tardi/config"
)

func TestSpherePositionOnSurface(t *testing.T) {
	const radius = 250.0
	for i := 0; i < 180; i++ {
		p := SpherePosition(i, 180, radius)
		if got := p.Len(); math.Abs(got-radius) > 1e-9 {
			t.Fatalf("point %d: expected length %v, got %v", i, radius, got)
		}
	}
}

func TestGeneratePointsDeterministicKinds(t *testing.T) {
	a := GeneratePoints(180, 300, rand.New(rand.NewSource(1)))
	b := GeneratePoints(180, 300, rand.New(rand.NewSource(99)))

	if len(a) != 180 || len(b) != 180 {
		t.Fatalf("Expected 180 points, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Pos != b[i].Pos {
			t.Errorf("point %d: position differs between runs: %v vs %v", i, a[i].Pos, b[i].Pos)
		}
		if a[i].Kind != b[i].Kind {
			t.Errorf("point %d: kind differs between runs: %v vs %v", i, a[i].Kind, b[i].Kind)
		}
		if a[i].Kind != Classify(a[i].Pos, 300) {
			t.Errorf("point %d: kind %v does not match Classify", i, a[i].Kind)
		}
	}
}

func TestGeneratePointsCoversAllKinds(t *testing.T) {
	points := GeneratePoints(180, 300, rand.New(rand.NewSource(1)))
	seen := map[config.NeuronKind]int{}
	for _, p := range points {
		seen[p.Kind]++
	}
	for k := config.NeuronKind(0); k < config.NeuronKindCount; k++ {
		if seen[k] == 0 {
			t.Errorf("Expected at least one %v point", k)
		}
	}
}

func TestClassify(t *testing.T) {
	const r = 100.0
	tests := []struct {
		name string
		pos  Vec3
		want config.NeuronKind
	}{
		{"Top cap", Vec3{X: 0, Y: 50, Z: 0}, config.NeuronSensory},
		{"Bottom cap", Vec3{X: 0, Y: -50, Z: 0}, config.NeuronMotor},
		{"Outer band negative x", Vec3{X: -90, Y: 0, Z: -10}, config.NeuronMuscle},
		{"Outer band positive z", Vec3{X: 10, Y: 0, Z: 90}, config.NeuronInterneuron},
		{"Inner band", Vec3{X: -20, Y: 0, Z: -20}, config.NeuronInterneuron},
		{"Sensory boundary is exclusive", Vec3{X: 0, Y: 30, Z: 0}, config.NeuronInterneuron},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.pos, r); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGeneratePointsZeroRadius(t *testing.T) {
	points := GeneratePoints(10, 0, rand.New(rand.NewSource(1)))
	for i, p := range points {
		if p.Pos != (Vec3{}) {
			t.Errorf("point %d: expected origin, got %v", i, p.Pos)
		}
		if p.Kind != config.NeuronInterneuron {
			t.Errorf("point %d: expected interneuron, got %v", i, p.Kind)
		}
	}
}

func TestGeneratePointsPulseRange(t *testing.T) {
	for _, p := range GeneratePoints(50, 100, rand.New(rand.NewSource(7))) {
		if p.Pulse < 0 || p.Pulse >= 2*math.Pi {
			t.Errorf("Expected pulse in [0, 2pi), got %v", p.Pulse)
		}
		if !math.IsInf(p.LastConnection, -1) {
			t.Errorf("Expected no prior connection, got %v", p.LastConnection)
		}
	}
}
