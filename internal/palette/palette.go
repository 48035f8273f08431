// Package palette assigns stable chart colors to status labels.
package palette

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf16"

	"casetracker/internal/models"
)

// Fixed colors for the statuses every chart shows.
var defaultColors = map[string]string{
	models.StatusCaseReceived: "#999900",
	models.StatusCaseApproved: "#00FF00",
}

// Palette maps status labels to hex colors. Labels without a fixed color get
// one derived from a hash of the label, so a status keeps its color across
// reloads without a lookup table.
type Palette struct {
	fixed map[string]string
}

// New creates a palette with the default fixed colors plus overrides.
func New(overrides map[string]string) *Palette {
	fixed := make(map[string]string, len(defaultColors)+len(overrides))
	for k, v := range defaultColors {
		fixed[k] = v
	}
	for k, v := range overrides {
		if v = strings.TrimSpace(v); v != "" {
			fixed[k] = v
		}
	}
	return &Palette{fixed: fixed}
}

// Color returns the color for a status label.
func (p *Palette) Color(status string) string {
	if p != nil {
		if c, ok := p.fixed[status]; ok {
			return c
		}
	}
	return Hash(status)
}

var (
	lightness  = []float64{0.35, 0.5, 0.65}
	saturation = []float64{0.35, 0.5, 0.65}
)

// Hash derives a color from s: a BKDR string hash picks the hue, saturation
// and lightness, and the HSL value is returned as "#rrggbb".
func Hash(s string) string {
	h := bkdrHash(s)

	hue := float64(h % 359)
	h /= 360
	sat := saturation[h%uint64(len(saturation))]
	h /= uint64(len(saturation))
	light := lightness[h%uint64(len(lightness))]

	r, g, b := hslToRGB(hue, sat, light)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func bkdrHash(s string) uint64 {
	const (
		seed  = 131
		seed2 = 137
	)
	maxSafe := uint64(9007199254740991) / seed2

	var h uint64
	// The trailing 'x' spreads short labels like "a" and "b" apart.
	for _, c := range utf16.Encode([]rune(s + "x")) {
		if h > maxSafe {
			h /= seed2
		}
		h = h*seed + uint64(c)
	}
	return h
}

func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	h /= 360
	q := l + s - l*s
	if l < 0.5 {
		q = l * (1 + s)
	}
	p := 2*l - q

	channel := func(t float64) uint8 {
		if t < 0 {
			t++
		}
		if t > 1 {
			t--
		}
		var v float64
		switch {
		case t < 1.0/6:
			v = p + (q-p)*6*t
		case t < 0.5:
			v = q
		case t < 2.0/3:
			v = p + (q-p)*6*(2.0/3-t)
		default:
			v = p
		}
		return uint8(math.Round(v * 255))
	}

	return channel(h + 1.0/3), channel(h), channel(h - 1.0/3)
}
