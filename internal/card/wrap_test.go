/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package card

import (
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"
)

// basicfont.Face7x13 advances 7px per glyph, which makes wrap widths exact.

func TestWrapRespectsWidth(t *testing.T) {
	face := basicfont.Face7x13
	// 10 chars fit in 70px
	lines := Wrap("aaa bbb ccc ddd", face, 70)
	for _, line := range lines {
		if measure(face, line) > 70 && len(strings.Fields(line)) > 1 {
			t.Fatalf("line %q exceeds width", line)
		}
	}
	// "aaa bbb" = 7 glyphs = 49px fits; adding " ccc" = 77px overflows
	if lines[0] != "aaa bbb" {
		t.Fatalf("unexpected first line %q (lines=%v)", lines[0], lines)
	}
}

func TestWrapPreservesOrderAndContent(t *testing.T) {
	face := basicfont.Face7x13
	text := "the quick brown fox jumps over the lazy dog"
	lines := Wrap(text, face, 100)
	if strings.Join(lines, " ") != text {
		t.Fatalf("wrap lost or reordered words: %v", lines)
	}
}

func TestWrapOverlongWordOwnLine(t *testing.T) {
	face := basicfont.Face7x13
	lines := Wrap("a incomprehensibilities b", face, 50)
	found := false
	for _, line := range lines {
		if line == "incomprehensibilities" {
			found = true
			if measure(face, line) <= 50 {
				t.Fatalf("test premise broken: word should be wider than 50px")
			}
		}
	}
	if !found {
		t.Fatalf("overlong word should be on its own line: %v", lines)
	}
}

func TestWrapEmptyAndWhitespace(t *testing.T) {
	face := basicfont.Face7x13
	if lines := Wrap("", face, 100); lines != nil {
		t.Fatalf("empty text should yield no lines, got %v", lines)
	}
	if lines := Wrap("   \t \n ", face, 100); lines != nil {
		t.Fatalf("whitespace-only text should yield no lines, got %v", lines)
	}
}

func TestWrapNonPositiveWidth(t *testing.T) {
	face := basicfont.Face7x13
	lines := Wrap("a b c", face, 0)
	if len(lines) != 1 || lines[0] != "a b c" {
		t.Fatalf("non-positive width should keep one line, got %v", lines)
	}
}
