/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package card

import (
	"image/color"
	"strconv"
	"strings"

	"gomangacard/internal/registry"
)

// ColorResolver turns a color token into a usable RGBA value. Resolution
// order: registry name (case-insensitive, all groups), then hex or named
// literal, then the same attempt on the provided default, then black.
// It never fails.
type ColorResolver struct {
	colors registry.Colors
}

// NewColorResolver wraps the read-only color registry.
func NewColorResolver(colors registry.Colors) *ColorResolver {
	if colors == nil {
		colors = registry.Colors{}
	}
	return &ColorResolver{colors: colors}
}

// Resolve implements the resolution contract. The returned color is always
// fully opaque; widget alpha is applied separately by the drawing code.
func (r *ColorResolver) Resolve(token, def ColorToken) color.RGBA {
	val := strings.TrimSpace(string(token))
	if val == "" {
		val = strings.TrimSpace(string(def))
	}
	if hex, ok := r.colors.Lookup(val); ok {
		val = hex
	}
	if c, ok := parseLiteral(val); ok {
		return c
	}
	if c, ok := parseLiteral(strings.TrimSpace(string(def))); ok {
		return c
	}
	return color.RGBA{A: 0xFF}
}

// parseLiteral accepts #RGB, #RRGGBB and #RRGGBBAA hex forms plus a small
// built-in named set covering common CSS names the stock palette leans on.
func parseLiteral(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, false
	}
	if !strings.HasPrefix(s, "#") {
		hex, ok := namedLiterals[strings.ToLower(s)]
		if !ok {
			return color.RGBA{}, false
		}
		s = hex
	}
	return parseHex(s)
}

func parseHex(s string) (color.RGBA, bool) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3:
		r, okR := hexNibble(h[0])
		g, okG := hexNibble(h[1])
		b, okB := hexNibble(h[2])
		if !okR || !okG || !okB {
			return color.RGBA{}, false
		}
		return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 0xFF}, true
	case 6, 8:
		v, err := strconv.ParseUint(h, 16, 64)
		if err != nil {
			return color.RGBA{}, false
		}
		if len(h) == 6 {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, true
		}
		return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
	default:
		return color.RGBA{}, false
	}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// namedLiterals covers the basic CSS color names so hex-less tokens keep
// working even against a custom registry that dropped them.
var namedLiterals = map[string]string{
	"black":   "#000000",
	"white":   "#FFFFFF",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#C0C0C0",
	"red":     "#FF0000",
	"maroon":  "#800000",
	"yellow":  "#FFFF00",
	"olive":   "#808000",
	"lime":    "#00FF00",
	"green":   "#008000",
	"aqua":    "#00FFFF",
	"cyan":    "#00FFFF",
	"teal":    "#008080",
	"blue":    "#0000FF",
	"navy":    "#000080",
	"fuchsia": "#FF00FF",
	"magenta": "#FF00FF",
	"purple":  "#800080",
	"orange":  "#FFA500",
	"pink":    "#FFC0CB",
	"brown":   "#A52A2A",
	"gold":    "#FFD700",
}

// withAlpha returns c with the alpha channel replaced by a clamped value.
func withAlpha(c color.RGBA, alpha int) color.RGBA {
	c.A = uint8(clamp(alpha, 0, 255))
	return c
}
