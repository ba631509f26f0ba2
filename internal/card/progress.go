/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package card

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// Progress panel geometry.
const (
	panelWidth   = 420
	panelHeight  = 120
	panelMargin  = 50
	ringRadius   = 40
	ringStroke   = 8
	percentSize  = 26
	chaptersSize = 28
)

// panelOrigin returns the top-left corner of the progress panel for an
// anchor: the matching canvas corner inset by the margin.
func panelOrigin(a Anchor, w, h int) image.Point {
	switch a {
	case AnchorBottomLeft:
		return image.Pt(panelMargin, h-panelHeight-panelMargin)
	case AnchorTopRight:
		return image.Pt(w-panelWidth-panelMargin, panelMargin)
	case AnchorTopLeft:
		return image.Pt(panelMargin, panelMargin)
	default: // bottom-right
		return image.Pt(w-panelWidth-panelMargin, h-panelHeight-panelMargin)
	}
}

// arcSweepDegrees is the gauge sweep for a (clamped) percentage:
// 360*p/100 degrees from a -90° start. p=0 draws no arc, p=100 a full circle.
func arcSweepDegrees(percent int) float64 {
	return 360 * float64(clamp(percent, 0, 100)) / 100
}

// drawProgress renders the percentage panel: rounded background, border,
// ring gauge, percent label and the optional chapter label.
func drawProgress(dc *gg.Context, spec *Spec, colors *ColorResolver, fonts *FontResolver) {
	origin := panelOrigin(spec.Progress.Anchor, dc.Width(), dc.Height())
	x, y := float64(origin.X), float64(origin.Y)

	bg := withAlpha(colors.Resolve(spec.Progress.Background, "#FFFFFF"), spec.Progress.Alpha)
	border := colors.Resolve(spec.Progress.Border, "#000000")
	radius := float64(clamp(spec.Progress.Radius, 0, panelHeight/2))

	dc.SetColor(bg)
	dc.DrawRoundedRectangle(x, y, panelWidth, panelHeight, radius)
	dc.FillPreserve()
	dc.SetColor(border)
	dc.SetLineWidth(4)
	dc.Stroke()

	// ring gauge: light gray full circle under the progress arc
	cx := x + 70
	cy := y + panelHeight/2
	dc.SetRGB255(200, 200, 200)
	dc.SetLineWidth(ringStroke)
	dc.DrawCircle(cx, cy, ringRadius)
	dc.Stroke()

	percent := clamp(spec.Percent, 0, 100)
	accent := colors.Resolve(spec.TitleColor, "#000000")
	if percent > 0 {
		// angle 0 is up, sweep clockwise
		dc.SetColor(accent)
		dc.SetLineWidth(ringStroke)
		dc.DrawArc(cx, cy, ringRadius, gg.Radians(-90), gg.Radians(-90+arcSweepDegrees(percent)))
		dc.Stroke()
	}

	dc.SetColor(accent)
	dc.SetFontFace(fonts.Bold(spec.Font.Family, percentSize))
	dc.DrawStringAnchored(fmt.Sprintf("%d%%", percent), cx, cy, 0.5, 0.5)

	if spec.Progress.ShowChapters {
		dc.SetRGB255(0, 0, 0)
		dc.SetFontFace(fonts.Face(spec.Font.Family, "Regular", chaptersSize))
		dc.DrawStringAnchored("Ch: "+spec.Chapters, cx+70, cy-15, 0, 1)
	}
}
