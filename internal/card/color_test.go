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
	"testing"

	"gomangacard/internal/registry"
)

func TestResolveRegistryMatchesHexParse(t *testing.T) {
	colors := registry.DefaultColors()
	r := NewColorResolver(colors)
	// every registry token resolves to exactly the hex value it maps to
	for _, group := range colors {
		for name, hex := range group {
			want, ok := parseHex(hex)
			if !ok {
				t.Fatalf("registry hex %q does not parse", hex)
			}
			if got := r.Resolve(ColorToken(name), "#123456"); got != want {
				t.Fatalf("Resolve(%q) = %v, want %v", name, got, want)
			}
		}
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	r := NewColorResolver(registry.DefaultColors())
	if got := r.Resolve("NAVY", "#000000"); got != (color.RGBA{B: 0x80, A: 0xFF}) {
		t.Fatalf("case-insensitive lookup failed: %v", got)
	}
}

func TestResolveFallbackChain(t *testing.T) {
	r := NewColorResolver(registry.DefaultColors())

	// unknown token falls back to the default
	if got := r.Resolve("chartreuse-ish", "#FF0000"); got != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Fatalf("default fallback failed: %v", got)
	}
	// unknown token and unparseable default end at black
	if got := r.Resolve("nope", "also-nope"); got != (color.RGBA{A: 0xFF}) {
		t.Fatalf("total failure should be black, got %v", got)
	}
	// empty token uses the default
	if got := r.Resolve("", "white"); got != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Fatalf("empty token should resolve default, got %v", got)
	}
}

func TestParseHexForms(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#FFAA33", color.RGBA{R: 0xFF, G: 0xAA, B: 0x33, A: 0xFF}, true},
		{"#fa3", color.RGBA{R: 0xFF, G: 0xAA, B: 0x33, A: 0xFF}, true},
		{"#11223380", color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}, true},
		{"#1122", color.RGBA{}, false},
		{"#GGHHII", color.RGBA{}, false},
	}
	for _, c := range cases {
		got, ok := parseHex(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("parseHex(%q) = %v %v, want %v %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestNamedLiteralWithEmptyRegistry(t *testing.T) {
	r := NewColorResolver(nil)
	if got := r.Resolve("teal", "#000000"); got != (color.RGBA{G: 0x80, B: 0x80, A: 0xFF}) {
		t.Fatalf("named literal should work without registry, got %v", got)
	}
}

func TestWithAlphaClamps(t *testing.T) {
	c := color.RGBA{R: 1, G: 2, B: 3, A: 0xFF}
	if got := withAlpha(c, 300); got.A != 255 {
		t.Fatalf("alpha should clamp high, got %d", got.A)
	}
	if got := withAlpha(c, -5); got.A != 0 {
		t.Fatalf("alpha should clamp low, got %d", got.A)
	}
	if got := withAlpha(c, 128); got.A != 128 {
		t.Fatalf("alpha should pass through, got %d", got.A)
	}
}
