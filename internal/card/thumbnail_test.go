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
	"image/png"
	"testing"
)

func TestThumbnailRectTable(t *testing.T) {
	w, h := CanvasWidth, CanvasHeight
	cases := []struct {
		mode LayoutMode
		size image.Point
		pos  image.Point
	}{
		{LayoutTop, image.Pt(900, 594), image.Pt(90, 80)},
		{LayoutRight, image.Pt(520, 780), image.Pt(480, 360)},
		{LayoutOverlay, image.Pt(1080, 1920), image.Pt(0, 0)},
		{LayoutLeft, image.Pt(520, 780), image.Pt(80, 360)},
	}
	for _, c := range cases {
		size, pos := thumbnailRect(c.mode, w, h)
		if size != c.size || pos != c.pos {
			t.Fatalf("thumbnailRect(%v) = %v at %v, want %v at %v", c.mode, size, pos, c.size, c.pos)
		}
	}
}

func TestDecodeThumbnailPlaceholder(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("garbage")} {
		img := decodeThumbnail(data)
		b := img.Bounds()
		if b.Dx() != 600 || b.Dy() != 900 {
			t.Fatalf("placeholder bounds = %v", b)
		}
		r, g, bl, a := img.At(300, 450).RGBA()
		if a != 0xFFFF || r>>8 != 200 || g>>8 != 200 || bl>>8 != 200 {
			t.Fatalf("placeholder is not gray 200: %d %d %d %d", r>>8, g>>8, bl>>8, a>>8)
		}
	}
}

func TestDecodeThumbnailValidBytes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	img := decodeThumbnail(buf.Bytes())
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("decoded bounds = %v", img.Bounds())
	}
}
