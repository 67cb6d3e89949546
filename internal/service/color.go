package service

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"devtools/backend/internal/model"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"brown":   "#a52a2a",
	"navy":    "#000080",
	"teal":    "#008080",
	"silver":  "#c0c0c0",
}

var rgbFuncRegex = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*[\d.]+\s*)?\)$`)

// ConvertColor reports a color in hex, rgb, hsl and cmyk notation.
func ConvertColor(input string) model.ColorResponse {
	c, ok := parseColor(input)
	if !ok {
		return model.ColorResponse{Valid: false}
	}

	r, g, b := c.RGB255()
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}

	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	k := 1 - math.Max(rf, math.Max(gf, bf))
	var cy, mg, ye float64
	if k < 1 {
		cy = (1 - rf - k) / (1 - k)
		mg = (1 - gf - k) / (1 - k)
		ye = (1 - bf - k) / (1 - k)
	}

	return model.ColorResponse{
		Valid: true,
		Hex:   c.Hex(),
		RGB:   fmt.Sprintf("rgb(%d, %d, %d)", r, g, b),
		HSL:   fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100),
		CMYK:  fmt.Sprintf("cmyk(%.0f%%, %.0f%%, %.0f%%, %.0f%%)", cy*100, mg*100, ye*100, k*100),
	}
}

func parseColor(input string) (colorful.Color, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return colorful.Color{}, false
	}
	if hex, ok := namedColors[s]; ok {
		s = hex
	}

	if m := rgbFuncRegex.FindStringSubmatch(s); m != nil {
		var ch [3]float64
		for i := range ch {
			v, _ := strconv.Atoi(m[i+1])
			if v > 255 {
				return colorful.Color{}, false
			}
			ch[i] = float64(v) / 255
		}
		return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, true
	}

	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}
