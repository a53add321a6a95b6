package systems

import (
	"image/color"
	"math"
	"testing"
)

func TestLineVertices(t *testing.T) {
	from := color.NRGBA{R: 255, A: 255}
	mid := color.NRGBA{G: 255, A: 128}
	to := color.NRGBA{B: 255, A: 0}

	vs, is := lineVertices(0, 0, 10, 0, 2, from, mid, to)
	if len(vs) != 6 || len(is) != 12 {
		t.Fatalf("Expected 6 vertices and 12 indices, got %d and %d", len(vs), len(is))
	}

	wantX := []float32{0, 0, 5, 5, 10, 10}
	for i, v := range vs {
		if v.DstX != wantX[i] {
			t.Errorf("vertex %d: expected x %v, got %v", i, wantX[i], v.DstX)
		}
		if math.Abs(float64(v.DstY)) != 1 {
			t.Errorf("vertex %d: expected half width offset, got y %v", i, v.DstY)
		}
		if v.SrcX != 1.5 || v.SrcY != 1.5 {
			t.Errorf("vertex %d: expected to sample the white pixel", i)
		}
	}
	if vs[0].ColorR != 1 || vs[2].ColorG != 1 || vs[4].ColorB != 1 {
		t.Error("Expected the three colour stops at start, middle and end")
	}
	if vs[4].ColorA != 0 {
		t.Errorf("Expected a transparent end, got %v", vs[4].ColorA)
	}
	for _, idx := range is {
		if int(idx) >= len(vs) {
			t.Errorf("index %d out of range", idx)
		}
	}
}

func TestLineVerticesZeroLength(t *testing.T) {
	vs, is := lineVertices(3, 3, 3, 3, 1, color.NRGBA{}, color.NRGBA{}, color.NRGBA{})
	if vs != nil || is != nil {
		t.Error("Expected no geometry for a zero length line")
	}
}

func TestPremultiplied(t *testing.T) {
	tests := []struct {
		name string
		in   color.NRGBA
		want []float32
	}{
		{"opaque", color.NRGBA{R: 255, G: 0, B: 255, A: 255}, []float32{1, 0, 1, 1}},
		{"transparent", color.NRGBA{R: 255, G: 255, B: 255, A: 0}, []float32{0, 0, 0, 0}},
		{"half", color.NRGBA{R: 255, A: 51}, []float32{0.2, 0, 0, 0.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := premultiplied(tt.in)
			for i := range got {
				if math.Abs(float64(got[i]-tt.want[i])) > 1e-6 {
					t.Errorf("Expected %v, got %v", tt.want, got)
					break
				}
			}
		})
	}
}
