package spotlight

import (
	"math"
	"testing"
)

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"inside", 60, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitPathFillRules(t *testing.T) {
	// Two squares wound the same way: even-odd leaves a hole, non-zero does not.
	d, err := ParsePath("M0,0H100V100H0ZM25,25H75V75H25Z")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		rule FillRule
		x, y float64
		want bool
	}{
		{"evenodd ring", FillRuleEvenOdd, 10, 10, true},
		{"evenodd hole", FillRuleEvenOdd, 50, 50, false},
		{"nonzero ring", FillRuleNonZero, 10, 10, true},
		{"nonzero hole", FillRuleNonZero, 50, 50, true},
		{"outside", FillRuleEvenOdd, 150, 50, false},
		{"nan", FillRuleEvenOdd, math.NaN(), 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HitPath{Data: d, Rule: tt.rule}
			if got := h.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitPath(%v).Contains(%v, %v) = %v, want %v", tt.rule, tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitPathCurvedCorner(t *testing.T) {
	p := RoundedRectPath{Radius: 20, Padding: 0}.Generate(MaskPathRequest{
		Size:     Vec2{X: 60, Y: 60},
		Position: Vec2{X: 20, Y: 20},
		Canvas:   Vec2{X: 100, Y: 100},
	})
	d, err := ParsePath(p)
	if err != nil {
		t.Fatal(err)
	}
	h := HitPath{Data: d, Rule: FillRuleEvenOdd}
	// Just inside the square hole's corner, but outside the rounded hole.
	if !h.Contains(21.5, 21.5) {
		t.Error("rounded-off corner should belong to the backdrop")
	}
	if h.Contains(50, 50) {
		t.Error("hole centre should not belong to the backdrop")
	}
}

func TestHitPathEmpty(t *testing.T) {
	if (HitPath{}).Contains(0, 0) {
		t.Error("nil data should never hit")
	}
	d, _ := ParsePath("")
	if (HitPath{Data: d}).Contains(0, 0) {
		t.Error("empty data should never hit")
	}
}
