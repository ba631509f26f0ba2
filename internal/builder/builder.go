/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package builder accretes free-text user input into a render spec. All the
// forgiving parsing lives here: numeric clamping, enum fallbacks, color and
// effect list splitting, font validation against the registry. The rendering
// core only ever sees the typed result.
package builder

import (
	"strconv"
	"strings"

	"gomangacard/internal/card"
	"gomangacard/internal/registry"
)

// Builder mutates one spec through a sequence of free-text updates. It is not
// safe for concurrent use; each interactive session owns its own Builder.
type Builder struct {
	spec  *card.Spec
	fonts registry.Fonts
}

// New starts a builder from the stock defaults. fonts is consulted only to
// validate font selections; nil disables validation and keeps the default.
func New(fonts registry.Fonts) *Builder {
	return &Builder{spec: card.DefaultSpec(), fonts: fonts}
}

// Spec returns the spec built so far. The caller must not mutate it
// concurrently with an in-flight render that shares the instance.
func (b *Builder) Spec() *card.Spec { return b.spec }

func (b *Builder) SetThumbnail(data []byte) { b.spec.Thumbnail = data }

func (b *Builder) SetTitle(s string)    { b.spec.Title = strings.TrimSpace(s) }
func (b *Builder) SetSynopsis(s string) { b.spec.Synopsis = strings.TrimSpace(s) }
func (b *Builder) SetAuthor(s string)   { b.spec.Author = strings.TrimSpace(s) }
func (b *Builder) SetYear(s string)     { b.spec.Year = strings.TrimSpace(s) }
func (b *Builder) SetChapters(s string) { b.spec.Chapters = strings.TrimSpace(s) }

// SetPercent parses and clamps the completion percentage; junk input resets
// to zero rather than keeping a stale value.
func (b *Builder) SetPercent(s string) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		n = 0
	}
	b.spec.Percent = clampInt(n, 0, 100)
}

func (b *Builder) SetBranding(s string) {
	b.spec.Branding = orText(s, "waalords")
}

// SetFont accepts "Family Style" ("Roboto Bold"); missing style means
// Regular. Pairs absent from the registry silently revert to the default.
func (b *Builder) SetFont(s string) {
	parts := strings.Fields(s)
	family, style := "Roboto", "Regular"
	if len(parts) > 0 {
		family = parts[0]
	}
	if len(parts) > 1 {
		style = parts[1]
	}
	if b.fonts != nil && !b.fonts.Has(family, style) {
		family, style = "Roboto", "Regular"
	}
	b.spec.Font = card.FontSelection{Family: family, Style: style}
}

func (b *Builder) SetTitleSize(s string)    { b.spec.TitleSize = orInt(s, 50) }
func (b *Builder) SetAuthorSize(s string)   { b.spec.AuthorSize = orInt(s, 35) }
func (b *Builder) SetSynopsisSize(s string) { b.spec.SynopsisSize = orInt(s, 30) }
func (b *Builder) SetBrandingSize(s string) { b.spec.BrandingSize = orInt(s, 25) }

func (b *Builder) SetTitleColor(s string)    { b.spec.TitleColor = orColor(s, "black") }
func (b *Builder) SetAuthorColor(s string)   { b.spec.AuthorColor = orColor(s, "black") }
func (b *Builder) SetSynopsisColor(s string) { b.spec.SynopsisColor = orColor(s, "black") }
func (b *Builder) SetBrandingColor(s string) { b.spec.BrandingColor = orColor(s, "gray") }

func (b *Builder) SetTemplate(s string) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "modern":
		b.spec.Template = card.TemplateModern
	case "glass":
		b.spec.Template = card.TemplateGlass
	case "poster":
		b.spec.Template = card.TemplatePoster
	default:
		b.spec.Template = card.TemplateClassic
	}
}

func (b *Builder) SetLayout(s string) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		b.spec.Layout = card.LayoutRight
	case "top":
		b.spec.Layout = card.LayoutTop
	case "overlay":
		b.spec.Layout = card.LayoutOverlay
	default:
		b.spec.Layout = card.LayoutLeft
	}
}

// SetEffects parses a comma-separated effect list; "none" or junk entries
// clear or skip. Only rounded, shadow and blur are recognized.
func (b *Builder) SetEffects(s string) {
	eff := card.Effects{}
	for _, part := range strings.Split(strings.ToLower(s), ",") {
		switch strings.TrimSpace(part) {
		case "rounded":
			eff.Rounded = true
		case "shadow":
			eff.Shadow = true
		case "blur":
			eff.Blur = true
		}
	}
	b.spec.Effects = eff
}

func (b *Builder) SetExportFormat(s string) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		b.spec.Export = card.FormatPNG
	case "pdf":
		b.spec.Export = card.FormatPDF
	default:
		b.spec.Export = card.FormatJPEG
	}
}

// SetBackgroundKind selects the active variant and clears the fields of the
// others, so exactly one variant is populated at a time.
func (b *Builder) SetBackgroundKind(s string) {
	bg := card.Background{}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gradient":
		bg.Kind = card.BackgroundGradient
		bg.From, bg.To = "#000000", "#FFFFFF"
	case "pattern":
		bg.Kind = card.BackgroundPattern
		bg.Pattern = card.PatternStripes
		bg.PatternBG, bg.PatternFG = "#111111", "#222222"
	case "image":
		bg.Kind = card.BackgroundImage
	default:
		bg.Kind = card.BackgroundSolid
		bg.Color = "white"
	}
	b.spec.Background = bg
}

// SetBackgroundDetail fills in the variant-specific detail from one line of
// free text: the solid color, a "from,to" gradient pair, or a
// "style,bg,fg" pattern triple. Image backgrounds take bytes instead, via
// SetBackgroundImage.
func (b *Builder) SetBackgroundDetail(s string) {
	switch b.spec.Background.Kind {
	case card.BackgroundSolid:
		b.spec.Background.Color = orColor(s, "white")
	case card.BackgroundGradient:
		parts := splitCSV(s)
		if len(parts) >= 2 {
			b.spec.Background.From = card.ColorToken(parts[0])
			b.spec.Background.To = card.ColorToken(parts[1])
		} else {
			b.spec.Background.From, b.spec.Background.To = "#000000", "#FFFFFF"
		}
	case card.BackgroundPattern:
		parts := splitCSV(s)
		style := ""
		if len(parts) > 0 {
			style = strings.ToLower(parts[0])
		}
		switch style {
		case "dots":
			b.spec.Background.Pattern = card.PatternDots
		case "noise":
			b.spec.Background.Pattern = card.PatternNoise
		default:
			b.spec.Background.Pattern = card.PatternStripes
		}
		if len(parts) >= 3 {
			b.spec.Background.PatternBG = card.ColorToken(parts[1])
			b.spec.Background.PatternFG = card.ColorToken(parts[2])
		} else {
			b.spec.Background.PatternBG, b.spec.Background.PatternFG = "#111111", "#222222"
		}
	}
}

func (b *Builder) SetBackgroundImage(data []byte) {
	b.spec.Background = card.Background{Kind: card.BackgroundImage, Image: data}
}

func (b *Builder) SetProgressAnchor(s string) {
	b.spec.Progress.Anchor = parseAnchor(s, card.AnchorBottomRight)
}

func (b *Builder) SetProgressBackground(s string) {
	b.spec.Progress.Background = orColor(s, "white")
}

func (b *Builder) SetProgressAlpha(s string) {
	b.spec.Progress.Alpha = orInt(s, 220)
}

func (b *Builder) SetProgressBorder(s string) {
	b.spec.Progress.Border = orColor(s, "black")
}

func (b *Builder) SetProgressRadius(s string) {
	b.spec.Progress.Radius = orInt(s, 30)
}

// SetShowChapters hides the chapter label only on an explicit "no".
func (b *Builder) SetShowChapters(s string) {
	b.spec.Progress.ShowChapters = strings.ToLower(strings.TrimSpace(s)) != "no"
}

// AddBadge appends a badge with the stock styling; the SetBadge* setters
// then refine the most recently added one.
func (b *Builder) AddBadge(text string) {
	b.spec.Badges = append(b.spec.Badges, card.Badge{
		Text:       strings.TrimSpace(text),
		Background: "white",
		Color:      "black",
		Alpha:      220,
		Radius:     20,
		Anchor:     card.AnchorTopLeft,
	})
}

func (b *Builder) SetBadgeBackground(s string) {
	if badge := b.lastBadge(); badge != nil {
		badge.Background = orColor(s, "white")
	}
}

func (b *Builder) SetBadgeColor(s string) {
	if badge := b.lastBadge(); badge != nil {
		badge.Color = orColor(s, "black")
	}
}

func (b *Builder) SetBadgeAlpha(s string) {
	if badge := b.lastBadge(); badge != nil {
		badge.Alpha = orInt(s, 220)
	}
}

func (b *Builder) SetBadgeRadius(s string) {
	if badge := b.lastBadge(); badge != nil {
		badge.Radius = orInt(s, 20)
	}
}

func (b *Builder) SetBadgeAnchor(s string) {
	if badge := b.lastBadge(); badge != nil {
		badge.Anchor = parseAnchor(s, card.AnchorTopLeft)
	}
}

func (b *Builder) lastBadge() *card.Badge {
	if len(b.spec.Badges) == 0 {
		return nil
	}
	return &b.spec.Badges[len(b.spec.Badges)-1]
}

func parseAnchor(s string, def card.Anchor) card.Anchor {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bottom-right":
		return card.AnchorBottomRight
	case "bottom-left":
		return card.AnchorBottomLeft
	case "top-right":
		return card.AnchorTopRight
	case "top-left":
		return card.AnchorTopLeft
	}
	return def
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func orText(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}

func orColor(s, def string) card.ColorToken {
	return card.ColorToken(orText(s, def))
}

func orInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
