package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		c1   RGBColor
		c2   RGBColor
		want float64
	}{
		{"identical", RGBColor{R: 10, G: 20, B: 30}, RGBColor{R: 10, G: 20, B: 30}, 0},
		{"black to white", RGBColor{}, RGBColor{R: 255, G: 255, B: 255}, 441.6729559300637},
		{"red to green", RGBColor{R: 255}, RGBColor{G: 255}, 360.62445840513925},
		{"single channel", RGBColor{}, RGBColor{R: 30}, 30},
		{"two channels", RGBColor{R: 10, G: 10, B: 10}, RGBColor{R: 40, G: 50, B: 10}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.c1, tt.c2)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	c1 := RGBColor{R: 12, G: 200, B: 99}
	c2 := RGBColor{R: 250, G: 3, B: 140}

	d1 := Distance(c1, c2)
	d2 := Distance(c2, c1)
	if d1 != d2 {
		t.Errorf("Distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGBColor
	}{
		{"white", "#FFFFFF", RGBColor{R: 255, G: 255, B: 255}},
		{"light gray", "#C8C8C8", RGBColor{R: 200, G: 200, B: 200}},
		{"dark gray", "#373735", RGBColor{R: 55, G: 55, B: 53}},
		{"lowercase", "#ff8040", RGBColor{R: 255, G: 128, B: 64}},
		{"short form", "#fff", RGBColor{R: 255, G: 255, B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if err != nil {
				t.Fatalf("ParseHexColor failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got (%d,%d,%d), want (%d,%d,%d)",
					got.R, got.G, got.B, tt.want.R, tt.want.G, tt.want.B)
			}
		})
	}
}

func TestParseHexColor_Invalid(t *testing.T) {
	for _, s := range []string{"", "FFFFFF", "#GGHHII", "not-a-color"} {
		if _, err := ParseHexColor(s); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", s)
		}
	}
}

func TestRGBColorHex(t *testing.T) {
	tests := []struct {
		c    RGBColor
		want string
	}{
		{RGBColor{R: 255, G: 255, B: 255}, "#FFFFFF"},
		{RGBColor{R: 200, G: 200, B: 200}, "#C8C8C8"},
		{RGBColor{R: 55, G: 55, B: 53}, "#373735"},
		{RGBColor{}, "#000000"},
	}

	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex: got %s, want %s", got, tt.want)
		}
	}
}

func TestParseHexColor_RoundTrip(t *testing.T) {
	for _, s := range []string{"#FFFFFF", "#C8C8C8", "#373735", "#000000"} {
		c, err := ParseHexColor(s)
		if err != nil {
			t.Fatalf("ParseHexColor(%q) failed: %v", s, err)
		}
		if got := c.Hex(); got != s {
			t.Errorf("round trip: got %s, want %s", got, s)
		}
	}
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	// Check hex
	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}

	// Check RGB
	if result.RGB.R != 255 || result.RGB.G != 128 || result.RGB.B != 64 {
		t.Errorf("RGB: got (%d,%d,%d), want (255,128,64)", result.RGB.R, result.RGB.G, result.RGB.B)
	}

	// Check RGBA
	if result.RGBA.R != 255 || result.RGBA.G != 128 || result.RGBA.B != 64 || result.RGBA.A != 255 {
		t.Errorf("RGBA: got (%d,%d,%d,%d), want (255,128,64,255)",
			result.RGBA.R, result.RGBA.G, result.RGBA.B, result.RGBA.A)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   color.RGBA
		wantHex string
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, "#FF0000"},
		{"pure green", color.RGBA{0, 255, 0, 255}, "#00FF00"},
		{"pure blue", color.RGBA{0, 0, 255, 255}, "#0000FF"},
		{"white", color.RGBA{255, 255, 255, 255}, "#FFFFFF"},
		{"black", color.RGBA{0, 0, 0, 255}, "#000000"},
		{"gray", color.RGBA{128, 128, 128, 255}, "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			result, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}

			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
		{"both too large", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(img, tt.x, tt.y)
			if err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestSampleColor_EdgeCoordinates(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	// Test edge coordinates (should succeed)
	tests := []struct {
		name string
		x, y int
	}{
		{"top-left", 0, 0},
		{"top-right", 99, 0},
		{"bottom-left", 0, 99},
		{"bottom-right", 99, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(img, tt.x, tt.y)
			if err != nil {
				t.Errorf("SampleColor failed for valid edge coordinate (%d,%d): %v", tt.x, tt.y, err)
			}
		})
	}
}

func TestSampleColorsMulti(t *testing.T) {
	img := createPatternImage(100, 100)

	points := []LabeledPoint{
		{X: 25, Y: 25, Label: "red"},
		{X: 75, Y: 25, Label: "green"},
		{X: 25, Y: 75, Label: "blue"},
		{X: 75, Y: 75, Label: "white"},
	}

	result, err := SampleColorsMulti(img, points)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}

	if len(result.Samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(result.Samples))
	}

	// Check labels preserved
	for i, sample := range result.Samples {
		if sample.Label != points[i].Label {
			t.Errorf("sample %d label: got %s, want %s", i, sample.Label, points[i].Label)
		}
	}

	// Check colors
	expectedHex := []string{"#FF0000", "#00FF00", "#0000FF", "#FFFFFF"}
	for i, sample := range result.Samples {
		if sample.Color.Hex != expectedHex[i] {
			t.Errorf("sample %d (%s) hex: got %s, want %s",
				i, sample.Label, sample.Color.Hex, expectedHex[i])
		}
	}
}

func TestSampleColorsMulti_EmptyPoints(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	result, err := SampleColorsMulti(img, []LabeledPoint{})
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}

	if len(result.Samples) != 0 {
		t.Errorf("expected 0 samples, got %d", len(result.Samples))
	}
}

func TestSampleColorsMulti_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	points := []LabeledPoint{
		{X: 50, Y: 50, Label: "valid"},
		{X: 200, Y: 50, Label: "invalid"},
	}

	_, err := SampleColorsMulti(img, points)
	if err == nil {
		t.Error("SampleColorsMulti should fail when any point is out of bounds")
	}
}

func TestRgbToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		wantH   int
		wantS   int
		wantL   int
	}{
		{"red", 255, 0, 0, 0, 100, 50},
		{"green", 0, 255, 0, 120, 100, 50},
		{"blue", 0, 0, 255, 240, 100, 50},
		{"white", 255, 255, 255, 0, 0, 100},
		{"black", 0, 0, 0, 0, 0, 0},
		{"gray", 128, 128, 128, 0, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hsl := rgbToHSL(tt.r, tt.g, tt.b)

			// Allow some tolerance for rounding
			if abs(hsl.H-tt.wantH) > 1 {
				t.Errorf("H: got %d, want %d", hsl.H, tt.wantH)
			}
			if abs(hsl.S-tt.wantS) > 1 {
				t.Errorf("S: got %d, want %d", hsl.S, tt.wantS)
			}
			if abs(hsl.L-tt.wantL) > 1 {
				t.Errorf("L: got %d, want %d", hsl.L, tt.wantL)
			}
		})
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
