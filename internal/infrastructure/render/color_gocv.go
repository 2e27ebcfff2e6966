//go:build gocv
// +build gocv

package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// parseHex разбирает цвет вида #RRGGBB.
func parseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func mustHex(s string) color.RGBA {
	c, err := parseHex(s)
	if err != nil {
		return color.RGBA{R: 0xF8, G: 0x71, B: 0x71, A: 255}
	}
	return c
}
