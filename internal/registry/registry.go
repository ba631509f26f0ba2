/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package registry loads the read-only color and font registries consumed by
// the rendering core. Registries are plain JSON files validated against a
// schema; a missing or invalid file falls back to the embedded defaults so
// the renderer always has a usable table.
package registry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	applog "gomangacard/internal/log"
)

// Colors maps group name -> color name -> hex value ("#RRGGBB").
type Colors map[string]map[string]string

// Fonts maps family -> style -> font file name (resolved under the font dir).
type Fonts map[string]map[string]string

const colorsSchema = `{
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "additionalProperties": {
      "type": "string",
      "pattern": "^#[0-9a-fA-F]{6}$"
    }
  }
}`

const fontsSchema = `{
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "additionalProperties": { "type": "string", "minLength": 1 }
  }
}`

// DefaultColors mirrors the stock palette shipped with the bot.
func DefaultColors() Colors {
	return Colors{
		"basic": {
			"black":  "#000000",
			"white":  "#FFFFFF",
			"gray":   "#808080",
			"red":    "#FF0000",
			"blue":   "#0000FF",
			"green":  "#00FF00",
			"yellow": "#FFFF00",
			"orange": "#FFA500",
			"purple": "#800080",
			"pink":   "#FFC0CB",
		},
		"extended": {
			"cyan":    "#00FFFF",
			"magenta": "#FF00FF",
			"lime":    "#32CD32",
			"teal":    "#008080",
			"indigo":  "#4B0082",
			"brown":   "#A52A2A",
			"gold":    "#FFD700",
			"silver":  "#C0C0C0",
			"navy":    "#000080",
			"maroon":  "#800000",
		},
	}
}

// DefaultFonts is the minimal fallback font table.
func DefaultFonts() Fonts {
	return Fonts{
		"Roboto": {
			"Regular": "Roboto-Regular.ttf",
			"Bold":    "Roboto-Bold.ttf",
			"Italic":  "Roboto-Italic.ttf",
		},
	}
}

// LoadColors reads and validates the color registry at path.
// An empty path or a missing file yields the embedded defaults; an invalid
// file is reported and also falls back to the defaults.
func LoadColors(path string) Colors {
	l := applog.WithComponent("registry")
	var c Colors
	if !loadValidated(path, colorsSchema, &c, l) {
		return DefaultColors()
	}
	return c
}

// LoadFonts reads and validates the font registry at path, with the same
// fallback behavior as LoadColors.
func LoadFonts(path string) Fonts {
	l := applog.WithComponent("registry")
	var f Fonts
	if !loadValidated(path, fontsSchema, &f, l) {
		return DefaultFonts()
	}
	return f
}

func loadValidated(path, schema string, out any, l *slog.Logger) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.Warn("registry file unreadable", slog.String("path", path), slog.Any("err", err))
		}
		return false
	}
	res, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		l.Warn("registry schema check failed", slog.String("path", path), slog.Any("err", err))
		return false
	}
	if !res.Valid() {
		l.Warn("registry file rejected by schema", slog.String("path", path), slog.String("first", firstIssue(res)))
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		l.Warn("registry decode failed", slog.String("path", path), slog.Any("err", err))
		return false
	}
	return true
}

func firstIssue(res *gojsonschema.Result) string {
	for _, e := range res.Errors() {
		return e.String()
	}
	return ""
}

// Lookup finds a color name case-insensitively across all groups and returns
// its hex value. Group iteration order is not defined; names are expected to
// be unique across groups, as in the stock palette.
func (c Colors) Lookup(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, group := range c {
		if hex, ok := group[name]; ok {
			return hex, true
		}
	}
	return "", false
}

// Hex returns the hex value of name within one specific group. Unlike
// Lookup it never crosses group boundaries, so duplicate names in different
// groups stay unambiguous.
func (c Colors) Hex(group, name string) (string, bool) {
	hex, ok := c[group][strings.ToLower(strings.TrimSpace(name))]
	return hex, ok
}

// FontFile resolves family/style to a path under dir.
func (f Fonts) FontFile(dir, family, style string) (string, error) {
	styles, ok := f[family]
	if !ok {
		return "", fmt.Errorf("unknown font family %q", family)
	}
	file, ok := styles[style]
	if !ok {
		return "", fmt.Errorf("unknown style %q for family %q", style, family)
	}
	return filepath.Join(dir, file), nil
}

// Has reports whether the family/style pair exists.
func (f Fonts) Has(family, style string) bool {
	styles, ok := f[family]
	if !ok {
		return false
	}
	_, ok = styles[style]
	return ok
}

// GroupNames returns the color group names in sorted order, for stable
// palette sheet rendering.
func (c Colors) GroupNames() []string {
	names := make([]string, 0, len(c))
	for g := range c {
		names = append(names, g)
	}
	sort.Strings(names)
	return names
}

// ColorNames returns the color names of one group in sorted order.
func (c Colors) ColorNames(group string) []string {
	names := make([]string, 0, len(c[group]))
	for n := range c[group] {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FamilyNames returns font families in sorted order.
func (f Fonts) FamilyNames() []string {
	names := make([]string, 0, len(f))
	for fam := range f {
		names = append(names, fam)
	}
	sort.Strings(names)
	return names
}

// StyleNames returns the styles of one family in sorted order.
func (f Fonts) StyleNames(family string) []string {
	names := make([]string, 0, len(f[family]))
	for s := range f[family] {
		names = append(names, s)
	}
	sort.Strings(names)
	return names
}
