package system

import "testing"

func TestSegmentAABBHit(t *testing.T) {
	tests := []struct {
		name   string
		x0, y0 float64
		dx, dy float64
		wantOK bool
		wantT  float64
	}{
		{name: "straight through", x0: -2, y0: 0.5, dx: 4, dy: 0, wantOK: true, wantT: 0.5},
		{name: "diagonal", x0: -1, y0: -1, dx: 2, dy: 2, wantOK: true, wantT: 0.5},
		{name: "starts inside", x0: 0.5, y0: 0.5, dx: 3, dy: 0, wantOK: true, wantT: 0},
		{name: "stops short", x0: -3, y0: 0.5, dx: 2, dy: 0},
		{name: "pointing away", x0: -2, y0: 0.5, dx: -4, dy: 0},
		{name: "parallel outside", x0: -2, y0: 2, dx: 4, dy: 0},
		{name: "vertical through", x0: 0.5, y0: -1, dx: 0, dy: 4, wantOK: true, wantT: 0.25},
		{name: "grazes corner", x0: -1, y0: 1, dx: 1, dy: -1, wantOK: true, wantT: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, got := segmentAABBHit(tt.x0, tt.y0, tt.dx, tt.dy, 0, 0, 1, 1)
			if ok != tt.wantOK {
				t.Fatalf("hit = %v, want %v", ok, tt.wantOK)
			}
			if ok && !approx(got, tt.wantT) {
				t.Fatalf("t = %v, want %v", got, tt.wantT)
			}
		})
	}
}
