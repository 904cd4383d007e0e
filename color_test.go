package iconkit

import "testing"

func TestRGBLerp(t *testing.T) {
	a := RGB{R: 165, G: 90, B: 220}
	b := RGB{R: 91, G: 136, B: 241}

	tests := []struct {
		name string
		t    float64
		want RGB
	}{
		{"start", 0, a},
		{"end", 1, b},
		{"below range", -0.5, a},
		{"above range", 1.5, b},
		// 165 - 74*0.5 = 128, 90 + 46*0.5 = 113, 220 + 21*0.5 = 230.5 -> 230
		{"middle", 0.5, RGB{R: 128, G: 113, B: 230}},
		// 165 - 74*0.25 = 146.5 -> 146
		{"quarter", 0.25, RGB{R: 146, G: 101, B: 225}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Lerp(b, tt.t)
			if got != tt.want {
				t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	if got := GradientTopLeft.String(); got != "#a55adc" {
		t.Errorf("String() = %q, want %q", got, "#a55adc")
	}
}

func TestRGBNRGBA(t *testing.T) {
	c := RGB{R: 1, G: 2, B: 3}.NRGBA()
	if c.R != 1 || c.G != 2 || c.B != 3 || c.A != 255 {
		t.Errorf("NRGBA() = %v, want {1 2 3 255}", c)
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{-3, 0, 9, 0},
		{0, 0, 9, 0},
		{5, 0, 9, 5},
		{9, 0, 9, 9},
		{12, 0, 9, 9},
	}
	for _, tt := range tests {
		if got := clampInt(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clampInt(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
