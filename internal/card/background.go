/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package card

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// GenerateBackground produces a full-canvas RGBA layer for the descriptor.
// Unknown kinds and decode failures yield a fully transparent layer, never
// an error.
func GenerateBackground(bg Background, w, h int, colors *ColorResolver) *image.RGBA {
	switch bg.Kind {
	case BackgroundSolid:
		return solidLayer(w, h, colors.Resolve(bg.Color, "#FFFFFF"))
	case BackgroundGradient:
		return gradientLayer(w, h, colors.Resolve(bg.From, "#000000"), colors.Resolve(bg.To, "#FFFFFF"))
	case BackgroundPattern:
		return patternLayer(w, h, bg.Pattern, colors.Resolve(bg.PatternBG, "#111111"), colors.Resolve(bg.PatternFG, "#222222"))
	case BackgroundImage:
		if layer := imageLayer(bg.Image, w, h); layer != nil {
			return layer
		}
	}
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func solidLayer(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// gradientLayer interpolates vertically between c1 and c2, one scanline at a
// time: channel(y) = c1*(1-y/h) + c2*(y/h), truncated to integer.
func gradientLayer(w, h int, c1, c2 color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h)
		row := color.RGBA{
			R: uint8(float64(c1.R)*(1-t) + float64(c2.R)*t),
			G: uint8(float64(c1.G)*(1-t) + float64(c2.G)*t),
			B: uint8(float64(c1.B)*(1-t) + float64(c2.B)*t),
			A: 0xFF,
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, row)
		}
	}
	return img
}

func patternLayer(w, h int, style PatternStyle, bg, fg color.RGBA) *image.RGBA {
	img := solidLayer(w, h, bg)
	switch style {
	case PatternDots:
		dc := gg.NewContextForRGBA(img)
		dc.SetColor(fg)
		// 12px dots on a 48px grid
		for y := 0; y < h; y += 48 {
			for x := 0; x < w; x += 48 {
				dc.DrawCircle(float64(x)+6, float64(y)+6, 6)
				dc.Fill()
			}
		}
	case PatternNoise:
		// deterministic checker, purely decorative
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if (x+y)%7 == 0 {
					img.SetRGBA(x, y, fg)
				}
			}
		}
	default: // stripes
		for y := 0; y < h; y += 24 {
			band := image.Rect(0, y, w, min(y+12, h))
			draw.Draw(img, band, &image.Uniform{C: fg}, image.Point{}, draw.Src)
		}
	}
	return img
}

// imageLayer decodes the supplied bytes and stretches them to exactly fill
// the canvas; aspect ratio is not preserved. Returns nil on decode failure.
func imageLayer(data []byte, w, h int) *image.RGBA {
	if len(data) == 0 {
		return nil
	}
	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	stretched := imaging.Resize(src, w, h, imaging.Lanczos)
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), stretched, image.Point{}, draw.Src)
	return out
}
