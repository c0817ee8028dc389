package gui

import "testing"

func TestVisibleRows(t *testing.T) {
	tests := []struct {
		name                string
		n                   int
		rowH, viewH, offset float32
		wantFirst, wantLast int
	}{
		{"top", 10, 10, 30, 0, 0, 3},
		{"partial rows", 10, 10, 30, 15, 1, 5},
		{"end", 10, 10, 30, 70, 7, 10},
		{"fewer rows than view", 2, 10, 30, 0, 0, 2},
		{"empty", 0, 10, 30, 0, 0, 0},
		{"zero height view", 5, 10, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := visibleRows(tt.n, tt.rowH, tt.viewH, tt.offset)
			if first != tt.wantFirst || last != tt.wantLast {
				t.Errorf("visibleRows = [%d, %d), want [%d, %d)", first, last, tt.wantFirst, tt.wantLast)
			}
		})
	}
}
