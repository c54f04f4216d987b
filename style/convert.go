package style

import (
	"image/color"
	"strconv"
	"strings"
)

// TODO use standard palette
//
// https://pkg.go.dev/github.com/AntoineAugusti/colors#StringToHexColor
func (p Property) Color() color.Color {
	if p == "default" {
		return nil
	}
	if c, ok := hexColor(p.String()); ok {
		return c
	}
	switch p {
	case "red":
		return color.RGBA{0xff, 0, 0, 0xff}
	case "green":
		return color.RGBA{0, 0xff, 0, 0xff}
	case "blue":
		return color.RGBA{0, 0, 0xff, 0xff}
	case "white":
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	case "gray", "grey":
		return color.RGBA{0x80, 0x80, 0x80, 0xff}
	}
	return color.Black
}

// hexColor recognizes 3- and 6-digit #rgb / #rrggbb values.
func hexColor(s string) (color.Color, bool) {
	if !strings.HasPrefix(s, "#") {
		return nil, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, false
	}
	return color.RGBA{uint8(n >> 16), uint8(n >> 8 & 0xff), uint8(n & 0xff), 0xff}, true
}

// ColorString returns a rough CSS color name for c, suitable for debug
// output. It is in no way a faithful inverse of Property.Color.
func ColorString(c color.Color) string {
	if c == nil {
		return "powderblue" // X11 color and CSS color
	}
	r, g, b, a := c.RGBA()
	if r == a && g == a && b == a {
		return "white"
	}
	if r == 0 && g == 0 && b == 0 {
		return "black"
	}
	if r >= 0x90 {
		return "red"
	} else if g >= 0x90 {
		return "green"
	} else if b >= 0x90 {
		return "blue"
	}
	return "gray"
}
