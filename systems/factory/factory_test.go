package factory

import (
	"testing"

	"github.com/tardionchain/tardi/tags"
)

func TestDeviceSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		scale        float64
		wantW, wantH int
	}{
		{"unit", 800, 600, 1, 800, 600},
		{"retina", 800, 600, 2, 1600, 1200},
		{"fractional", 101, 51, 1.5, 152, 77},
		{"invalid scale", 800, 600, 0, 800, 600},
		{"negative size", -10, 5, 1, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := DeviceSize(tt.w, tt.h, tt.scale)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Expected %dx%d, got %dx%d", tt.wantW, tt.wantH, w, h)
			}
		})
	}
}

func TestNewTrailEmpty(t *testing.T) {
	if NewTrail(0, 10) != nil || NewTrail(10, -1) != nil {
		t.Error("Expected no trail image for an empty canvas")
	}
}

func TestNewInspectorSpace(t *testing.T) {
	ins := NewInspectorSpace(5, 640, 480)

	if len(ins.Objects) != 5 {
		t.Fatalf("Expected 5 neuron objects, got %d", len(ins.Objects))
	}
	for i, obj := range ins.Objects {
		if obj.Data != i {
			t.Errorf("object %d carries index %v", i, obj.Data)
		}
		if !obj.HasTags(tags.ResolvNeuron) {
			t.Errorf("object %d is missing the neuron tag", i)
		}
	}
	if !ins.Cursor.HasTags(tags.ResolvCursor) {
		t.Error("Expected a tagged cursor object")
	}
	if ins.Hovered != -1 || ins.Width != 640 || ins.Height != 480 {
		t.Errorf("Unexpected initial state %+v", ins)
	}
}

func TestInspectorHit(t *testing.T) {
	ins := NewInspectorSpace(2, 200, 200)
	ins.Objects[0].X, ins.Objects[0].Y = 50, 50
	ins.Objects[0].Update()
	ins.Objects[1].X, ins.Objects[1].Y = 150, 150
	ins.Objects[1].Update()

	ins.Cursor.X, ins.Cursor.Y = 55, 55
	ins.Cursor.Update()
	check := ins.Cursor.Check(0, 0, tags.ResolvNeuron)
	if check == nil {
		t.Fatal("Expected the cursor to hit neuron 0")
	}
	hits := check.ObjectsByTags(tags.ResolvNeuron)
	if len(hits) != 1 || hits[0].Data != 0 {
		t.Errorf("Expected only neuron 0, got %d hits", len(hits))
	}

	ins.Cursor.X, ins.Cursor.Y = 100, 10
	ins.Cursor.Update()
	if ins.Cursor.Check(0, 0, tags.ResolvNeuron) != nil {
		t.Error("Expected no hit in empty space")
	}
}

func TestNewReveal(t *testing.T) {
	r := NewReveal(6)
	if len(r.Steps) != 6 || len(r.Opacity) != 6 || r.Done {
		t.Fatalf("Unexpected reveal %+v", r)
	}
	// Only the first card starts without a hold
	v0, _, _ := r.Steps[0].Update(0.1)
	v1, _, _ := r.Steps[1].Update(0.1)
	if v0 <= 0 || v1 != 0 {
		t.Errorf("Expected card 0 fading and card 1 held, got %v and %v", v0, v1)
	}
}
