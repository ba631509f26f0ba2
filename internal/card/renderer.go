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
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Text block geometry.
const (
	titleX        = 60
	titleY        = 40
	metaY         = 120
	synopsisTop   = 200
	synopsisPad   = 60 // left/right inset, maxWidth = w - 2*synopsisPad
	synopsisLines = 12
	brandingInset = 40
	brandingY     = 30
	canvasBlur    = 3
)

// Glass template panel.
const (
	glassInset  = 40
	glassTop    = 320
	glassRadius = 36
	glassAlpha  = 100
)

// Renderer composes one card image from a Spec. It holds only read-only
// registries and the shared face cache, so one Renderer may serve
// concurrent renders over independent specs.
type Renderer struct {
	colors *ColorResolver
	fonts  *FontResolver
	width  int
	height int
}

// NewRenderer builds a renderer at the fixed portrait canvas size.
func NewRenderer(colors *ColorResolver, fonts *FontResolver) *Renderer {
	return &Renderer{colors: colors, fonts: fonts, width: CanvasWidth, height: CanvasHeight}
}

// Render runs the fixed-order pipeline over spec and returns the final
// RGBA buffer. Every stage degrades to a documented fallback, so the call
// always succeeds structurally; encoding and delivery are the caller's
// concern.
func (r *Renderer) Render(spec *Spec) *image.RGBA {
	dc := gg.NewContext(r.width, r.height)
	dc.SetRGB255(255, 255, 255)
	dc.Clear()

	// background replaces the white base where opaque
	dc.DrawImage(GenerateBackground(spec.Background, r.width, r.height, r.colors), 0, 0)

	if spec.Effects.Blur {
		blurred := imaging.Blur(dc.Image(), canvasBlur)
		dc = gg.NewContext(r.width, r.height)
		dc.DrawImage(blurred, 0, 0)
	}

	placeThumbnail(dc, decodeThumbnail(spec.Thumbnail), spec.Layout, spec.Effects)

	if spec.Template == TemplateGlass {
		dc.SetRGBA255(255, 255, 255, glassAlpha)
		dc.DrawRoundedRectangle(glassInset, glassTop,
			float64(r.width-2*glassInset), float64(r.height-glassTop-glassInset), glassRadius)
		dc.Fill()
	}

	r.drawTextBlocks(dc, spec)
	drawProgress(dc, spec, r.colors, r.fonts)
	drawBadges(dc, spec, r.colors, r.fonts)

	return toRGBA(dc.Image())
}

// drawTextBlocks renders title, author/year metadata, the wrapped synopsis
// and the right-aligned branding text.
func (r *Renderer) drawTextBlocks(dc *gg.Context, spec *Spec) {
	family, style := spec.Font.Family, spec.Font.Style

	title := spec.Title
	if title == "" {
		title = "Manga Title"
	}
	// ay=1 hangs the text below the y coordinate, so y is the top edge
	dc.SetColor(r.colors.Resolve(spec.TitleColor, "#000000"))
	dc.SetFontFace(r.fonts.Face(family, style, orDefault(spec.TitleSize, 50)))
	dc.DrawStringAnchored(title, titleX, titleY, 0, 1)

	author := spec.Author
	if author == "" {
		author = "Unknown"
	}
	dc.SetColor(r.colors.Resolve(spec.AuthorColor, "#000000"))
	dc.SetFontFace(r.fonts.Face(family, style, orDefault(spec.AuthorSize, 35)))
	dc.DrawStringAnchored("By "+author+"  •  "+spec.Year, titleX, metaY, 0, 1)

	synopsis := spec.Synopsis
	if synopsis == "" {
		synopsis = "No synopsis provided."
	}
	size := orDefault(spec.SynopsisSize, 30)
	face := r.fonts.Face(family, style, size)
	dc.SetColor(r.colors.Resolve(spec.SynopsisColor, "#000000"))
	dc.SetFontFace(face)
	lines := Wrap(synopsis, face, r.width-2*synopsisPad)
	if len(lines) > synopsisLines {
		lines = lines[:synopsisLines]
	}
	y := float64(synopsisTop)
	for _, line := range lines {
		dc.DrawStringAnchored(line, synopsisPad, y, 0, 1)
		y += float64(size + 8)
	}

	if spec.Branding != "" {
		dc.SetColor(r.colors.Resolve(spec.BrandingColor, "#808080"))
		dc.SetFontFace(r.fonts.Face(family, style, orDefault(spec.BrandingSize, 25)))
		dc.DrawStringAnchored(spec.Branding, float64(r.width-brandingInset), brandingY, 1, 1)
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// toRGBA converts the context's backing image, copying only if needed.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}
