package opengl

import "testing"

func TestScissorRect(t *testing.T) {
	tests := []struct {
		name       string
		clip       [4]float32
		x, y, w, h int32
		ok         bool
	}{
		{"inside", [4]float32{10, 20, 110, 70}, 10, 410, 100, 50, true},
		{"left overhang", [4]float32{-10, 0, 40, 480}, 0, 0, 40, 480, true},
		{"unbounded", [4]float32{-1e9, -1e9, 1e9, 1e9}, 0, 0, 640, 480, true},
		{"offscreen", [4]float32{700, 0, 800, 100}, 0, 0, 0, 0, false},
		{"empty", [4]float32{10, 10, 10, 50}, 0, 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h, ok := scissorRect(tt.clip, 640, 480)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("got (%d, %d, %d, %d), want (%d, %d, %d, %d)", x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestOrthoMatrixCorners(t *testing.T) {
	m := orthoMatrix(640, 480)
	project := func(x, y float32) (float32, float32) {
		return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
	}
	if x, y := project(0, 0); x != -1 || y != 1 {
		t.Errorf("top-left maps to (%v, %v)", x, y)
	}
	if x, y := project(640, 480); x != 1 || y != -1 {
		t.Errorf("bottom-right maps to (%v, %v)", x, y)
	}
}
