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

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

const (
	thumbCornerRadius = 50
	shadowBlurSigma   = 10
	shadowOffset      = 10
	shadowAlpha       = 90
)

// thumbnailRect returns target size and top-left placement for a layout mode.
func thumbnailRect(mode LayoutMode, w, h int) (size image.Point, pos image.Point) {
	switch mode {
	case LayoutTop:
		tw := w - 180
		return image.Pt(tw, tw*66/100), image.Pt(90, 80)
	case LayoutRight:
		return image.Pt(520, 780), image.Pt(w-600, 360)
	case LayoutOverlay:
		return image.Pt(w, h), image.Pt(0, 0)
	default: // left
		return image.Pt(520, 780), image.Pt(80, 360)
	}
}

// decodeThumbnail decodes the spec's thumbnail bytes; absent or corrupt
// bytes are replaced by a neutral gray placeholder.
func decodeThumbnail(data []byte) image.Image {
	if len(data) > 0 {
		if img, err := imaging.Decode(bytes.NewReader(data)); err == nil {
			return img
		}
	}
	return imaging.New(600, 900, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
}

// placeThumbnail resizes, styles and composites the thumbnail onto dc.
// The rounded effect clips to a 50px-radius rounded rectangle; the shadow
// effect paints a blurred dark rectangle offset down-right beneath it.
func placeThumbnail(dc *gg.Context, thumb image.Image, mode LayoutMode, eff Effects) {
	size, pos := thumbnailRect(mode, dc.Width(), dc.Height())
	resized := imaging.Resize(thumb, size.X, size.Y, imaging.Lanczos)

	var layer image.Image = resized
	if eff.Rounded {
		rc := gg.NewContext(size.X, size.Y)
		rc.DrawRoundedRectangle(0, 0, float64(size.X), float64(size.Y), thumbCornerRadius)
		rc.Clip()
		rc.DrawImage(resized, 0, 0)
		layer = rc.Image()
	}

	if eff.Shadow {
		// dark rectangle offset 10px down-right, blurred on its own layer
		// so the blur halo stays inside the pasted region
		margin := 2 * shadowOffset
		sc := gg.NewContext(size.X+2*margin, size.Y+2*margin)
		sc.SetRGBA255(0, 0, 0, shadowAlpha)
		sc.DrawRectangle(float64(margin+shadowOffset), float64(margin+shadowOffset), float64(size.X), float64(size.Y))
		sc.Fill()
		shadow := imaging.Blur(sc.Image(), shadowBlurSigma)
		dc.DrawImage(shadow, pos.X-margin, pos.Y-margin)
	}

	dc.DrawImage(layer, pos.X, pos.Y)
}
