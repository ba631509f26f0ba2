/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package card

import (
	"image"
	"strings"

	"github.com/fogleman/gg"

	"gomangacard/internal/registry"
)

// PaletteSheet renders a swatch table of the color registry: one column per
// group, a swatch plus "name #hex" per entry. Used by the /colors preview.
func PaletteSheet(colors registry.Colors, resolver *ColorResolver, fonts *FontResolver) *image.RGBA {
	groups := colors.GroupNames()
	rows := 0
	for _, g := range groups {
		if n := len(colors.ColorNames(g)); n > rows {
			rows = n
		}
	}
	const colWidth = 200
	w := colWidth * max(len(groups), 1)
	h := rows*60 + 60

	dc := gg.NewContext(w, h)
	dc.SetRGB255(255, 255, 255)
	dc.Clear()

	label := fonts.Bold("Roboto", 18)
	entry := fonts.Face("Roboto", "Regular", 14)

	for gi, g := range groups {
		gx := float64(gi * colWidth)
		dc.SetRGB255(0, 0, 0)
		dc.SetFontFace(label)
		dc.DrawStringAnchored(strings.ToUpper(g), gx+10, 10, 0, 1)
		for i, name := range colors.ColorNames(g) {
			hex, _ := colors.Hex(g, name)
			y := float64(40 + i*60)
			dc.SetColor(resolver.Resolve(ColorToken(hex), "#000000"))
			dc.DrawRectangle(gx+10, y, 50, 40)
			dc.FillPreserve()
			dc.SetRGB255(0, 0, 0)
			dc.SetLineWidth(1)
			dc.Stroke()
			dc.SetFontFace(entry)
			dc.DrawStringAnchored(name+" "+hex, gx+70, y+10, 0, 1)
		}
	}
	return toRGBA(dc.Image())
}

// FontSpecimen renders a sample line for every family and style in the
// registry. Styles whose files are missing fall back like any other render.
func FontSpecimen(fonts registry.Fonts, resolver *FontResolver) *image.RGBA {
	const (
		w      = 1200
		h      = 2000
		sample = "Manga Preview"
	)
	dc := gg.NewContext(w, h)
	dc.SetRGB255(255, 255, 255)
	dc.Clear()
	dc.SetRGB255(0, 0, 0)

	heading := resolver.Bold("Roboto", 20)
	y := 20.0
	for _, family := range fonts.FamilyNames() {
		dc.SetFontFace(heading)
		dc.DrawStringAnchored(family, 30, y, 0, 1)
		y += 30
		for _, style := range fonts.StyleNames(family) {
			dc.SetFontFace(resolver.Face(family, style, 36))
			dc.DrawStringAnchored(style+" "+sample, 50, y, 0, 1)
			y += 52
		}
		y += 16
		if y > h-120 {
			break
		}
	}
	return toRGBA(dc.Image())
}
