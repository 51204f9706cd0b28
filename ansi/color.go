package ansi

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Palette16 holds the classic 16-color palette (SGR 30-37 and 90-97)
// using the common xterm values.
var Palette16 = [16]RGB{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// Default foreground/background used when a document or terminal gives
// no explicit color.
var (
	DefaultFg = Palette16[7]
	DefaultBg = RGBBlack
)

// Color cube values for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

// palette256 maps every 256-color index to its RGB value, built at init
var palette256 [256]RGB

func init() {
	copy(palette256[:16], Palette16[:])
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				palette256[16+36*r+6*g+b] = RGB{cubeValues[r], cubeValues[g], cubeValues[b]}
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + i*10)
		palette256[grayscaleStart+i] = RGB{v, v, v}
	}
}

// From256 returns the RGB value of a 256-color palette index.
func From256(index uint8) RGB {
	return palette256[index]
}

// cubeIndex maps a channel value to the nearest cube level 0-5
func cubeIndex(v uint8) int {
	best := 0
	bestDist := absInt(int(v) - int(cubeValues[0]))
	for j := 1; j < 6; j++ {
		d := absInt(int(v) - int(cubeValues[j]))
		if d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}

// To256 finds the nearest 256-color palette index for an RGB value,
// choosing between the 6x6x6 color cube and the grayscale ramp.
func To256(c RGB) uint8 {
	cr, cg, cb := cubeIndex(c.R), cubeIndex(c.G), cubeIndex(c.B)
	cubeDist := absInt(int(c.R)-int(cubeValues[cr])) +
		absInt(int(c.G)-int(cubeValues[cg])) +
		absInt(int(c.B)-int(cubeValues[cb]))
	cube := uint8(16 + 36*cr + 6*cg + cb)

	// Grayscale ramp only competes when the channels are close
	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	maxDiff := max(absInt(int(c.R)-gray), absInt(int(c.G)-gray), absInt(int(c.B)-gray))
	if maxDiff >= 10 {
		return cube
	}
	if gray < 4 {
		return 16 // Pure black lives in the cube
	}
	if gray > 243 {
		return 231
	}
	gi := (gray - 8) / 10
	if gi > 23 {
		gi = 23
	}
	grayLevel := 8 + gi*10
	grayDist := absInt(int(c.R)-grayLevel) + absInt(int(c.G)-grayLevel) + absInt(int(c.B)-grayLevel)
	if grayDist < cubeDist {
		return uint8(grayscaleStart + gi)
	}
	return cube
}

// Quantize clamps a color to what the mode can represent: identity for
// truecolor, nearest palette entry for 256-color mode.
func Quantize(c RGB, mode ColorMode) RGB {
	if mode == ColorModeTrueColor {
		return c
	}
	return From256(To256(c))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DetectColorMode inspects the environment for truecolor capability.
func DetectColorMode() ColorMode {
	// COLORTERM is the strongest signal, set by modern terminals
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	// Terminal-specific env vars
	for _, v := range []string{
		"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID", "WEZTERM_PANE",
	} {
		if os.Getenv(v) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") || strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}
