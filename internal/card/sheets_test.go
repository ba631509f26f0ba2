/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package card

import (
	"testing"

	"gomangacard/internal/registry"
)

func TestPaletteSheetCoversAllGroups(t *testing.T) {
	colors := registry.DefaultColors()
	resolver := NewColorResolver(colors)
	fonts := NewFontResolver(registry.DefaultFonts(), t.TempDir())

	img := PaletteSheet(colors, resolver, fonts)
	if img == nil {
		t.Fatalf("palette sheet is nil")
	}
	if want := 200 * len(colors.GroupNames()); img.Bounds().Dx() != want {
		t.Fatalf("sheet width = %d, want %d", img.Bounds().Dx(), want)
	}
}

func TestPaletteSheetSwatchUsesOwnGroupHex(t *testing.T) {
	// same name in two groups with different values; each column must paint
	// its own group's hex
	colors := registry.Colors{
		"alpha": {"accent": "#FF0000"},
		"beta":  {"accent": "#0000FF"},
	}
	resolver := NewColorResolver(colors)
	fonts := NewFontResolver(nil, "")

	img := PaletteSheet(colors, resolver, fonts)
	// swatch rects sit at (gx+10, 40) sized 50x40 per 200px column
	if px := img.RGBAAt(30, 60); px.R < 200 || px.B > 60 {
		t.Fatalf("alpha swatch = %v, want red", px)
	}
	if px := img.RGBAAt(230, 60); px.B < 200 || px.R > 60 {
		t.Fatalf("beta swatch = %v, want blue", px)
	}
}

func TestPaletteSheetEmptyRegistry(t *testing.T) {
	resolver := NewColorResolver(nil)
	fonts := NewFontResolver(nil, "")
	img := PaletteSheet(registry.Colors{}, resolver, fonts)
	if img == nil || img.Bounds().Dx() < 1 {
		t.Fatalf("empty registry should still yield a drawable sheet")
	}
}

func TestFontSpecimenSize(t *testing.T) {
	fonts := registry.DefaultFonts()
	resolver := NewFontResolver(fonts, t.TempDir())
	img := FontSpecimen(fonts, resolver)
	if img.Bounds().Dx() != 1200 || img.Bounds().Dy() != 2000 {
		t.Fatalf("specimen bounds = %v", img.Bounds())
	}
}
