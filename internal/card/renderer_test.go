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
	"testing"

	"gomangacard/internal/registry"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	colors := NewColorResolver(registry.DefaultColors())
	fonts := NewFontResolver(registry.DefaultFonts(), t.TempDir())
	return NewRenderer(colors, fonts)
}

func TestRenderCanvasSize(t *testing.T) {
	img := testRenderer(t).Render(DefaultSpec())
	if img.Bounds().Dx() != 1080 || img.Bounds().Dy() != 1920 {
		t.Fatalf("canvas = %v, want 1080x1920", img.Bounds())
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := testRenderer(t)
	spec := DefaultSpec()
	spec.Title = "Berserk"
	spec.Author = "Kentaro Miura"
	spec.Year = "1989"
	spec.Synopsis = "Guts, a former mercenary now known as the Black Swordsman, seeks revenge."
	spec.Percent = 64
	spec.Background = Background{Kind: BackgroundGradient, From: "navy", To: "black"}
	spec.Effects = Effects{Rounded: true, Shadow: true}
	spec.Badges = []Badge{
		{Text: "NEW", Background: "red", Color: "white", Alpha: 220, Radius: 20, Anchor: AnchorTopRight},
	}

	a := r.Render(spec)
	b := r.Render(spec)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatalf("same spec must render pixel-identical output")
	}
}

func TestRenderSolidNoWidgets(t *testing.T) {
	r := testRenderer(t)
	spec := DefaultSpec()
	spec.Percent = 0
	spec.Badges = nil
	spec.Branding = ""

	img := r.Render(spec)
	// solid white background, no arc drawn at 0%: the region above the
	// progress panel stays untouched
	px := img.RGBAAt(1000, 1600)
	if px.R != 255 || px.G != 255 || px.B != 255 {
		t.Fatalf("expected white canvas away from widgets, got %v", px)
	}
}

func TestTitleTopAnchored(t *testing.T) {
	r := testRenderer(t)
	spec := DefaultSpec()
	spec.Title = "HEGEMONY"
	spec.Branding = ""

	img := r.Render(spec)
	// title y is the TOP of the text: no ink above it, ink below it
	above, below := 0, 0
	for y := 0; y < titleY; y++ {
		for x := 0; x < CanvasWidth; x++ {
			if px := img.RGBAAt(x, y); px.R < 128 {
				above++
			}
		}
	}
	for y := titleY; y < metaY; y++ {
		for x := 0; x < CanvasWidth; x++ {
			if px := img.RGBAAt(x, y); px.R < 128 {
				below++
			}
		}
	}
	if above != 0 {
		t.Fatalf("title ink above y=%d: %d pixels", titleY, above)
	}
	if below == 0 {
		t.Fatalf("no title ink between y=%d and y=%d", titleY, metaY)
	}
}

func TestRenderNeverPanicsOnHostileSpec(t *testing.T) {
	r := testRenderer(t)
	spec := &Spec{
		Title:      string(bytes.Repeat([]byte("x"), 4000)),
		Percent:    -40,
		Background: Background{Kind: BackgroundImage, Image: []byte("junk")},
		Thumbnail:  []byte("also junk"),
		Font:       FontSelection{Family: "Missing", Style: "Weird"},
		TitleColor: "no-such-color",
		Badges: []Badge{
			{Text: "A"}, {Text: "B"}, {Text: "C"}, {Text: "D"}, {Text: "E"}, {Text: "F"}, {Text: "G"},
		},
	}
	img := r.Render(spec)
	if img == nil {
		t.Fatalf("render must always return an image")
	}
}
