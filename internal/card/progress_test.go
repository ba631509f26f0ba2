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
	"testing"
)

func TestPanelOriginAnchors(t *testing.T) {
	w, h := CanvasWidth, CanvasHeight
	cases := []struct {
		anchor Anchor
		want   image.Point
	}{
		{AnchorBottomRight, image.Pt(1080-420-50, 1920-120-50)}, // (610, 1750)
		{AnchorBottomLeft, image.Pt(50, 1750)},
		{AnchorTopRight, image.Pt(610, 50)},
		{AnchorTopLeft, image.Pt(50, 50)},
	}
	for _, c := range cases {
		if got := panelOrigin(c.anchor, w, h); got != c.want {
			t.Fatalf("panelOrigin(%v) = %v, want %v", c.anchor, got, c.want)
		}
	}
}

func TestArcSweepExact(t *testing.T) {
	for p := 0; p <= 100; p++ {
		want := 360 * float64(p) / 100
		if got := arcSweepDegrees(p); got != want {
			t.Fatalf("sweep(%d) = %v, want %v", p, got, want)
		}
	}
	if arcSweepDegrees(0) != 0 {
		t.Fatalf("p=0 must draw no arc")
	}
	if arcSweepDegrees(100) != 360 {
		t.Fatalf("p=100 must be a full circle")
	}
}

func TestArcSweepClampsOutOfRange(t *testing.T) {
	if got := arcSweepDegrees(150); got != 360 {
		t.Fatalf("over-range percent should clamp, got %v", got)
	}
	if got := arcSweepDegrees(-10); got != 0 {
		t.Fatalf("negative percent should clamp, got %v", got)
	}
}
