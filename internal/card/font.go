/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package card

import (
	"log/slog"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	applog "gomangacard/internal/log"
	"gomangacard/internal/registry"
)

// FontResolver resolves (family, style, size) to a measurable font.Face.
// Lookup and load failures of any kind fall back to the embedded Go fonts,
// so the resolver never fails its caller. Faces are cached per
// (family, style, size); the cache is safe for concurrent renders.
type FontResolver struct {
	fonts   registry.Fonts
	fontDir string

	mu     sync.Mutex
	parsed map[fontKey]*truetype.Font
	faces  map[faceKey]font.Face

	fallbackRegular *truetype.Font
	fallbackBold    *truetype.Font
}

type fontKey struct {
	family string
	style  string
}

type faceKey struct {
	family string
	style  string
	size   int
}

// NewFontResolver wraps the read-only font registry. fontDir is the
// directory the registry's file references are resolved against.
func NewFontResolver(fonts registry.Fonts, fontDir string) *FontResolver {
	if fonts == nil {
		fonts = registry.Fonts{}
	}
	fr := &FontResolver{
		fonts:   fonts,
		fontDir: fontDir,
		parsed:  make(map[fontKey]*truetype.Font),
		faces:   make(map[faceKey]font.Face),
	}
	// The embedded Go fonts always parse.
	fr.fallbackRegular, _ = truetype.Parse(goregular.TTF)
	fr.fallbackBold, _ = truetype.Parse(gobold.TTF)
	return fr
}

// Face returns a font face for family/style at the given pixel size.
// Unknown pairs, missing files and corrupt fonts yield the fallback face.
func (fr *FontResolver) Face(family, style string, size int) font.Face {
	if size <= 0 {
		size = 16
	}
	fr.mu.Lock()
	defer fr.mu.Unlock()

	key := faceKey{family: family, style: style, size: size}
	if f, ok := fr.faces[key]; ok {
		return f
	}
	f := fr.newFaceLocked(family, style, size)
	fr.faces[key] = f
	return f
}

// Bold returns a bold face of the given family at size, used for the
// percentage label and badge text. Families without a Bold style fall back
// to the embedded Go Bold.
func (fr *FontResolver) Bold(family string, size int) font.Face {
	return fr.Face(family, "Bold", size)
}

func (fr *FontResolver) newFaceLocked(family, style string, size int) font.Face {
	if f := fr.parsedFontLocked(family, style); f != nil {
		return truetype.NewFace(f, &truetype.Options{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	}
	fb := fr.fallbackRegular
	if style == "Bold" {
		fb = fr.fallbackBold
	}
	return truetype.NewFace(fb, &truetype.Options{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
}

func (fr *FontResolver) parsedFontLocked(family, style string) *truetype.Font {
	key := fontKey{family: family, style: style}
	if f, ok := fr.parsed[key]; ok {
		return f
	}
	path, err := fr.fonts.FontFile(fr.fontDir, family, style)
	if err != nil {
		fr.parsed[key] = nil
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		applog.WithComponent("fonts").Debug("font file unreadable, using fallback",
			slog.String("path", path), slog.Any("err", err))
		fr.parsed[key] = nil
		return nil
	}
	f, err := truetype.Parse(data)
	if err != nil {
		applog.WithComponent("fonts").Debug("font parse failed, using fallback",
			slog.String("path", path), slog.Any("err", err))
		fr.parsed[key] = nil
		return nil
	}
	fr.parsed[key] = f
	return f
}
