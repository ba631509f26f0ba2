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

	"github.com/fogleman/gg"
)

// Badge drawing defaults.
const (
	maxBadges          = 5
	badgeDefaultWidth  = 220
	badgeDefaultHeight = 70
	badgeDefaultRadius = 20
	badgeStackPitch    = 80
	badgeTextSize      = 28
	badgeTextInset     = 20
)

// badgeAnchor returns the fixed corner anchor point for badges.
func badgeAnchor(a Anchor, w, h int) image.Point {
	switch a {
	case AnchorTopLeft:
		return image.Pt(50, 50)
	case AnchorTopRight:
		return image.Pt(w-250, 50)
	case AnchorBottomLeft:
		return image.Pt(50, h-150)
	default: // bottom-right
		return image.Pt(w-250, h-150)
	}
}

// stackBadges assigns each of the first maxBadges badges its top-left
// position: badges sharing a corner stack downward in list order with a
// fixed 80px pitch. No collision handling beyond the pitch; callers are
// responsible for keeping per-corner counts sane.
func stackBadges(badges []Badge, w, h int) []image.Point {
	if len(badges) > maxBadges {
		badges = badges[:maxBadges]
	}
	counts := make(map[Anchor]int, 4)
	positions := make([]image.Point, len(badges))
	for i, b := range badges {
		p := badgeAnchor(b.Anchor, w, h)
		p.Y += badgeStackPitch * counts[b.Anchor]
		counts[b.Anchor]++
		positions[i] = p
	}
	return positions
}

// drawBadges renders up to five badges as translucent rounded labels with a
// 2px outline and left-inset bold text.
func drawBadges(dc *gg.Context, spec *Spec, colors *ColorResolver, fonts *FontResolver) {
	badges := spec.Badges
	if len(badges) > maxBadges {
		badges = badges[:maxBadges]
	}
	positions := stackBadges(badges, dc.Width(), dc.Height())

	for i, b := range badges {
		w := b.Width
		if w <= 0 {
			w = badgeDefaultWidth
		}
		h := b.Height
		if h <= 0 {
			h = badgeDefaultHeight
		}
		radius := b.Radius
		if radius <= 0 {
			radius = badgeDefaultRadius
		}
		fill := withAlpha(colors.Resolve(b.Background, "#FFFFFF"), b.Alpha)
		outline := colors.Resolve(b.Color, "#000000")

		x, y := float64(positions[i].X), float64(positions[i].Y)
		dc.SetColor(fill)
		dc.DrawRoundedRectangle(x, y, float64(w), float64(h), float64(clamp(radius, 0, h/2)))
		dc.FillPreserve()
		dc.SetColor(outline)
		dc.SetLineWidth(2)
		dc.Stroke()

		dc.SetFontFace(fonts.Bold(spec.Font.Family, badgeTextSize))
		dc.DrawStringAnchored(b.Text, x+badgeTextInset, y+float64(h)/2, 0, 0.5)
	}
}
