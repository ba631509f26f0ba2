/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package card implements the manga card rendering pipeline: color and font
// resolution, background synthesis, thumbnail compositing, text layout, the
// progress gauge, badge stacks, and the orchestrating renderer.
//
// The pipeline never hard-fails: unknown colors, missing fonts, and corrupt
// image bytes all degrade to documented fallbacks so a render call always
// produces a structurally valid image.
package card

// Canvas dimensions of the portrait card.
const (
	CanvasWidth  = 1080
	CanvasHeight = 1920
)

// ColorToken is a free-form color reference: a registry name ("navy"), or a
// hex literal ("#FF5733"). Tokens are resolved at draw time, never validated
// up front.
type ColorToken string

// BackgroundKind selects the active background variant.
type BackgroundKind int

const (
	BackgroundNone BackgroundKind = iota
	BackgroundSolid
	BackgroundGradient
	BackgroundPattern
	BackgroundImage
)

// PatternStyle selects the procedural pattern.
type PatternStyle int

const (
	PatternStripes PatternStyle = iota
	PatternDots
	PatternNoise
)

// Background is a tagged variant; only the fields of the active Kind are
// consulted.
type Background struct {
	Kind BackgroundKind

	Color ColorToken // solid

	From ColorToken // gradient top
	To   ColorToken // gradient bottom

	Pattern   PatternStyle // pattern
	PatternBG ColorToken
	PatternFG ColorToken

	Image []byte // image
}

// LayoutMode positions the thumbnail.
type LayoutMode int

const (
	LayoutLeft LayoutMode = iota
	LayoutRight
	LayoutTop
	LayoutOverlay
)

// Effects toggles the optional visual effects. Blur applies to the whole
// composed background, not just the thumbnail.
type Effects struct {
	Rounded bool
	Shadow  bool
	Blur    bool
}

// Template selects the card variant. Only Glass changes the composition;
// the others render identically to Classic.
type Template int

const (
	TemplateClassic Template = iota
	TemplateModern
	TemplateGlass
	TemplatePoster
)

// Anchor is one of the four canvas corners, inset by a widget margin.
type Anchor int

const (
	AnchorBottomRight Anchor = iota
	AnchorBottomLeft
	AnchorTopRight
	AnchorTopLeft
)

// Format is the logical export target; encoding happens outside the core.
type Format int

const (
	FormatJPEG Format = iota
	FormatPNG
	FormatPDF
)

// FontSelection is a (family, style) pair validated against the font
// registry by the builder; the resolver falls back on unknown pairs anyway.
type FontSelection struct {
	Family string
	Style  string
}

// ProgressBox configures the percentage panel.
type ProgressBox struct {
	Anchor       Anchor
	Background   ColorToken
	Alpha        int // 0-255, clamped at draw time
	Border       ColorToken
	Radius       int
	ShowChapters bool
}

// Badge is a small decorative labeled panel placed at a corner anchor.
type Badge struct {
	Text       string
	Background ColorToken
	Color      ColorToken // text and outline color
	Alpha      int
	Radius     int
	Width      int // 0 means default
	Height     int // 0 means default
	Anchor     Anchor
}

// Spec is the aggregate of all parameters needed to produce one card image.
// It is immutable for the duration of one render call; the collaborator that
// builds it may mutate it between calls but not concurrently with a render.
type Spec struct {
	Title    string
	Author   string
	Year     string
	Synopsis string
	Branding string
	Chapters string

	Percent int // completion percentage, clamped to [0,100] at draw time

	TitleSize    int
	AuthorSize   int
	SynopsisSize int
	BrandingSize int

	TitleColor    ColorToken
	AuthorColor   ColorToken
	SynopsisColor ColorToken
	BrandingColor ColorToken

	Font     FontSelection
	Template Template

	Background Background
	Thumbnail  []byte // raw image bytes; nil means placeholder
	Layout     LayoutMode
	Effects    Effects

	Progress ProgressBox
	Badges   []Badge

	Export Format
}

// DefaultSpec returns a spec populated with the stock defaults.
func DefaultSpec() *Spec {
	return &Spec{
		Branding:      "waalords",
		Chapters:      "0",
		TitleSize:     50,
		AuthorSize:    35,
		SynopsisSize:  30,
		BrandingSize:  25,
		TitleColor:    "#000000",
		AuthorColor:   "#000000",
		SynopsisColor: "#000000",
		BrandingColor: "#808080",
		Font:          FontSelection{Family: "Roboto", Style: "Regular"},
		Template:      TemplateClassic,
		Background:    Background{Kind: BackgroundSolid, Color: "#FFFFFF"},
		Layout:        LayoutLeft,
		Progress: ProgressBox{
			Anchor:       AnchorBottomRight,
			Background:   "#FFFFFF",
			Alpha:        220,
			Border:       "#000000",
			Radius:       30,
			ShowChapters: true,
		},
		Export: FormatJPEG,
	}
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
