package asmplot_api

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// The color names accepted in color lookup files, matching the common
// matplotlib names the original tables were written for
var namedColors = map[string]color.NRGBA{
	"b":         {R: 0, G: 0, B: 255, A: 255},
	"g":         {R: 0, G: 128, B: 0, A: 255},
	"r":         {R: 255, G: 0, B: 0, A: 255},
	"c":         {R: 0, G: 255, B: 255, A: 255},
	"m":         {R: 255, G: 0, B: 255, A: 255},
	"y":         {R: 255, G: 255, B: 0, A: 255},
	"k":         {R: 0, G: 0, B: 0, A: 255},
	"w":         {R: 255, G: 255, B: 255, A: 255},
	"blue":      {R: 0, G: 0, B: 255, A: 255},
	"green":     {R: 0, G: 128, B: 0, A: 255},
	"red":       {R: 255, G: 0, B: 0, A: 255},
	"cyan":      {R: 0, G: 255, B: 255, A: 255},
	"magenta":   {R: 255, G: 0, B: 255, A: 255},
	"yellow":    {R: 255, G: 255, B: 0, A: 255},
	"black":     {R: 0, G: 0, B: 0, A: 255},
	"white":     {R: 255, G: 255, B: 255, A: 255},
	"grey":      {R: 128, G: 128, B: 128, A: 255},
	"gray":      {R: 128, G: 128, B: 128, A: 255},
	"orange":    {R: 255, G: 165, B: 0, A: 255},
	"purple":    {R: 128, G: 0, B: 128, A: 255},
	"brown":     {R: 165, G: 42, B: 42, A: 255},
	"pink":      {R: 255, G: 192, B: 203, A: 255},
	"olive":     {R: 128, G: 128, B: 0, A: 255},
	"gold":      {R: 255, G: 215, B: 0, A: 255},
	"teal":      {R: 0, G: 128, B: 128, A: 255},
	"navy":      {R: 0, G: 0, B: 128, A: 255},
	"salmon":    {R: 250, G: 128, B: 114, A: 255},
	"lightblue": {R: 173, G: 216, B: 230, A: 255},
	"darkgreen": {R: 0, G: 100, B: 0, A: 255},
	"skyblue":   {R: 135, G: 206, B: 235, A: 255},
	"orchid":    {R: 218, G: 112, B: 214, A: 255},
}

// ParseColor resolves a color specification string from a lookup table:
// a known color name, "#rrggbb" hex, or "r,g,b" with 0-255 channels
func ParseColor(spec string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(spec))
	if named, ok := namedColors[name]; ok {
		return named, nil
	}

	if strings.HasPrefix(name, "#") && (len(name) == 7 || len(name) == 4) {
		digits := name[1:]
		if len(digits) == 3 {
			// Expand the #rgb shorthand to #rrggbb
			digits = string([]byte{
				digits[0], digits[0],
				digits[1], digits[1],
				digits[2], digits[2],
			})
		}
		value, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid hex color %q", spec)
		}
		return color.NRGBA{
			R: uint8(value >> 16),
			G: uint8(value >> 8),
			B: uint8(value),
			A: 255,
		}, nil
	}

	if channels := strings.Split(name, ","); len(channels) == 3 {
		var rgb [3]uint8
		for i, channel := range channels {
			value, err := strconv.ParseInt(strings.TrimSpace(channel), 10, 64)
			if err != nil || value < 0 || value > 255 {
				return nil, fmt.Errorf("invalid color channel %q in %q", channel, spec)
			}
			rgb[i] = uint8(value)
		}
		return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
	}

	return nil, fmt.Errorf("unknown color %q", spec)
}
