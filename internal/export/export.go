/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export encodes rendered cards into their delivery formats.
package export

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"gomangacard/internal/card"
)

// JPEG quality levels: finals slightly higher than throwaway previews.
const (
	QualityFinal   = 92
	QualityPreview = 90
)

// Encode writes img to w in the requested format at final quality.
func Encode(w io.Writer, img image.Image, f card.Format) error {
	switch f {
	case card.FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	case card.FormatPDF:
		if err := encodePDF(w, img); err != nil {
			return fmt.Errorf("encode pdf: %w", err)
		}
	default:
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: QualityFinal}); err != nil {
			return fmt.Errorf("encode jpeg: %w", err)
		}
	}
	return nil
}

// EncodePreview writes a JPEG preview regardless of the spec's export format.
func EncodePreview(w io.Writer, img image.Image) error {
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: QualityPreview}); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}

// Extension returns the file extension for a format, without the dot.
func Extension(f card.Format) string {
	switch f {
	case card.FormatPNG:
		return "png"
	case card.FormatPDF:
		return "pdf"
	default:
		return "jpg"
	}
}

// ContentType returns the MIME type for a format.
func ContentType(f card.Format) string {
	switch f {
	case card.FormatPNG:
		return "image/png"
	case card.FormatPDF:
		return "application/pdf"
	default:
		return "image/jpeg"
	}
}

// ParseFormat maps a file extension or format name to a Format; unknown
// names fall back to JPEG like everywhere else at this boundary.
func ParseFormat(s string) card.Format {
	switch s {
	case "png":
		return card.FormatPNG
	case "pdf":
		return card.FormatPDF
	default:
		return card.FormatJPEG
	}
}
