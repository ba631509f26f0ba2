/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package builder

import (
	"gomangacard/internal/card"
	"gomangacard/internal/registry"
)

// Request is the serialized form of a card order: every field is free text
// parsed with the same forgiving rules as the interactive setters, so any
// field may be omitted and the defaults apply. Binary fields are base64 in
// JSON. Both the HTTP API and the CLI consume this shape.
type Request struct {
	Title    string `json:"title"`
	Synopsis string `json:"synopsis"`
	Author   string `json:"author"`
	Year     string `json:"year"`
	Chapters string `json:"chapters"`
	Branding string `json:"branding"`
	Percent  string `json:"percent"`

	Font     string `json:"font"` // "Family Style", e.g. "Roboto Bold"
	Template string `json:"template"`
	Layout   string `json:"layout"`
	Effects  string `json:"effects"` // comma separated
	Export   string `json:"export"`

	TitleSize    string `json:"title_size"`
	AuthorSize   string `json:"author_size"`
	SynopsisSize string `json:"synopsis_size"`
	BrandingSize string `json:"branding_size"`

	TitleColor    string `json:"title_color"`
	AuthorColor   string `json:"author_color"`
	SynopsisColor string `json:"synopsis_color"`
	BrandingColor string `json:"branding_color"`

	Thumbnail []byte `json:"thumbnail,omitempty"`

	Background BackgroundRequest `json:"background"`
	Progress   ProgressRequest   `json:"progress"`
	Badges     []BadgeRequest    `json:"badges,omitempty"`
}

// BackgroundRequest selects the background: Kind plus one detail line, or
// raw image bytes which take precedence.
type BackgroundRequest struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
	Image  []byte `json:"image,omitempty"`
}

// ProgressRequest styles the percentage panel.
type ProgressRequest struct {
	Anchor       string `json:"anchor"`
	Background   string `json:"background"`
	Alpha        string `json:"alpha"`
	Border       string `json:"border"`
	Radius       string `json:"radius"`
	ShowChapters string `json:"show_chapters"`
}

// BadgeRequest is one badge order.
type BadgeRequest struct {
	Text       string `json:"text"`
	Background string `json:"background"`
	Color      string `json:"color"`
	Alpha      string `json:"alpha"`
	Radius     string `json:"radius"`
	Anchor     string `json:"anchor"`
}

// BuildSpec replays the request through a Builder so every consumer shares
// the exact clamping and fallback behavior of the interactive path.
func (req *Request) BuildSpec(fonts registry.Fonts) *card.Spec {
	b := New(fonts)
	b.SetTitle(req.Title)
	b.SetSynopsis(req.Synopsis)
	b.SetAuthor(req.Author)
	b.SetYear(req.Year)
	b.SetChapters(req.Chapters)
	b.SetBranding(req.Branding)
	b.SetPercent(req.Percent)
	b.SetFont(req.Font)
	b.SetTemplate(req.Template)
	b.SetLayout(req.Layout)
	b.SetEffects(req.Effects)
	b.SetExportFormat(req.Export)
	b.SetTitleSize(req.TitleSize)
	b.SetAuthorSize(req.AuthorSize)
	b.SetSynopsisSize(req.SynopsisSize)
	b.SetBrandingSize(req.BrandingSize)
	b.SetTitleColor(req.TitleColor)
	b.SetAuthorColor(req.AuthorColor)
	b.SetSynopsisColor(req.SynopsisColor)
	b.SetBrandingColor(req.BrandingColor)
	b.SetThumbnail(req.Thumbnail)

	if len(req.Background.Image) > 0 {
		b.SetBackgroundImage(req.Background.Image)
	} else {
		b.SetBackgroundKind(req.Background.Kind)
		b.SetBackgroundDetail(req.Background.Detail)
	}

	b.SetProgressAnchor(req.Progress.Anchor)
	b.SetProgressBackground(req.Progress.Background)
	b.SetProgressAlpha(req.Progress.Alpha)
	b.SetProgressBorder(req.Progress.Border)
	b.SetProgressRadius(req.Progress.Radius)
	b.SetShowChapters(req.Progress.ShowChapters)

	for _, bd := range req.Badges {
		b.AddBadge(bd.Text)
		b.SetBadgeBackground(bd.Background)
		b.SetBadgeColor(bd.Color)
		b.SetBadgeAlpha(bd.Alpha)
		b.SetBadgeRadius(bd.Radius)
		b.SetBadgeAnchor(bd.Anchor)
	}
	return b.Spec()
}
