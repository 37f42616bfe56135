package color

import "testing"

// TestLuminancePrimaries tests gray values for the pure primaries.
func TestLuminancePrimaries(t *testing.T) {
	tests := []struct {
		name  string
		input ColorU8
		want  uint8
	}{
		{"black", ColorU8{0, 0, 0, 255}, 0},
		{"red", ColorU8{255, 0, 0, 255}, 76},
		{"green", ColorU8{0, 255, 0, 255}, 149},
		{"blue", ColorU8{0, 0, 255, 255}, 29},
		{"alpha ignored", ColorU8{255, 0, 0, 0}, 76},
		{"dark mix", ColorU8{10, 20, 30, 255}, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance(tt.input)
			if got != tt.want {
				t.Errorf("Luminance(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// TestLuminanceNearWhite tests that near-white stays in range.
func TestLuminanceNearWhite(t *testing.T) {
	got := Luminance(ColorU8{255, 255, 255, 255})
	if got < 254 {
		t.Errorf("Luminance(white) = %d, want >= 254", got)
	}
}

func TestClampFloor(t *testing.T) {
	tests := []struct {
		input float32
		want  uint8
	}{
		{-1, 0},
		{0, 0},
		{0.99, 0},
		{76.245, 76},
		{254.9, 254},
		{255, 255},
		{300, 255},
	}

	for _, tt := range tests {
		if got := clampFloor(tt.input); got != tt.want {
			t.Errorf("clampFloor(%v) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestSum4Div(t *testing.T) {
	var s Sum4
	for range 9 {
		s.Add(ColorU8{10, 20, 30, 255})
	}
	s.Add(ColorU8{8, 0, 0, 0})

	got := s.Div(10)
	want := ColorU8{R: 9, G: 18, B: 27, A: 229}
	if got != want {
		t.Errorf("Div(10) = %v, want %v", got, want)
	}
}

func TestSum4LargeCount(t *testing.T) {
	// One past the uint32 limit for full-scale samples.
	const n = 1<<32/255 + 1
	s := Sum4{R: 255 * n, G: 255 * n, B: 128 * n, A: 0}

	got := s.Div(n)
	want := ColorU8{R: 255, G: 255, B: 128, A: 0}
	if got != want {
		t.Errorf("Div(%d) = %v, want %v", n, got, want)
	}

	var acc Sum4
	for range 3 {
		acc.Add(ColorU8{255, 255, 255, 255})
	}
	if acc.R != 765 {
		t.Errorf("Add R = %d, want 765", acc.R)
	}
}
