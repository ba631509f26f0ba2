/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package card

import "testing"

func TestStackBadgesVerticalPitch(t *testing.T) {
	badges := make([]Badge, 5)
	for i := range badges {
		badges[i] = Badge{Text: "b", Anchor: AnchorTopLeft}
	}
	pos := stackBadges(badges, CanvasWidth, CanvasHeight)
	anchor := badgeAnchor(AnchorTopLeft, CanvasWidth, CanvasHeight)
	for i, p := range pos {
		if p.X != anchor.X || p.Y != anchor.Y+80*i {
			t.Fatalf("badge %d at %v, want (%d, %d)", i, p, anchor.X, anchor.Y+80*i)
		}
	}
}

func TestStackBadgesCapAtFive(t *testing.T) {
	badges := make([]Badge, 6)
	for i := range badges {
		badges[i] = Badge{Anchor: AnchorTopLeft}
	}
	pos := stackBadges(badges, CanvasWidth, CanvasHeight)
	if len(pos) != 5 {
		t.Fatalf("expected 5 positions, got %d", len(pos))
	}
	// offsets 0, 80, 160, 240, 320 from the corner anchor
	for i, p := range pos {
		if p.Y != 50+80*i {
			t.Fatalf("badge %d y=%d, want %d", i, p.Y, 50+80*i)
		}
	}
}

func TestStackBadgesCornersIndependent(t *testing.T) {
	badges := []Badge{
		{Anchor: AnchorTopLeft},
		{Anchor: AnchorBottomRight},
		{Anchor: AnchorTopLeft},
		{Anchor: AnchorBottomRight},
	}
	pos := stackBadges(badges, CanvasWidth, CanvasHeight)
	tl := badgeAnchor(AnchorTopLeft, CanvasWidth, CanvasHeight)
	br := badgeAnchor(AnchorBottomRight, CanvasWidth, CanvasHeight)
	// Nth badge in a corner sits at anchorY + 80*(prior badges in that corner),
	// regardless of other corners
	if pos[0].Y != tl.Y || pos[2].Y != tl.Y+80 {
		t.Fatalf("top-left stack wrong: %v %v", pos[0], pos[2])
	}
	if pos[1].Y != br.Y || pos[3].Y != br.Y+80 {
		t.Fatalf("bottom-right stack wrong: %v %v", pos[1], pos[3])
	}
}

func TestBadgeAnchorPoints(t *testing.T) {
	w, h := CanvasWidth, CanvasHeight
	if p := badgeAnchor(AnchorTopRight, w, h); p.X != w-250 || p.Y != 50 {
		t.Fatalf("top-right anchor = %v", p)
	}
	if p := badgeAnchor(AnchorBottomLeft, w, h); p.X != 50 || p.Y != h-150 {
		t.Fatalf("bottom-left anchor = %v", p)
	}
}
