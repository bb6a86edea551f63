package vision

import "testing"

func TestSelectLargest(t *testing.T) {
	tests := []struct {
		name  string
		cands []Circle
		want  Circle
		ok    bool
	}{
		{"empty", nil, Circle{}, false},
		{"single", []Circle{{X: 1, Y: 2, Radius: 3}}, Circle{X: 1, Y: 2, Radius: 3}, true},
		{"max radius wins", []Circle{{5, 5, 12}, {8, 8, 30}, {1, 1, 9}}, Circle{8, 8, 30}, true},
		{"tie keeps first", []Circle{{1, 1, 20}, {2, 2, 20}, {3, 3, 10}}, Circle{1, 1, 20}, true},
		{"last is largest", []Circle{{1, 1, 10}, {2, 2, 11}, {3, 3, 49.5}}, Circle{3, 3, 49.5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectLargest(tt.cands)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("SelectLargest() = %+v,%v want %+v,%v", got, ok, tt.want, tt.ok)
			}
		})
	}
}
