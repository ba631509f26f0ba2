/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// encodePDF wraps the rendered card in a single-page PDF. The page is sized
// 1:1 in points so the raster maps without scaling artifacts; the image
// itself is embedded as JPEG to keep the file small.
func encodePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	pageW := float64(b.Dx())
	pageH := float64(b.Dy())

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: QualityFinal}); err != nil {
		return fmt.Errorf("rasterize for pdf: %w", err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageW, Ht: pageH},
		OrientationStr: "",
	})
	pdf.SetTitle("Manga Card", false)
	pdf.AddPageFormat("", gofpdf.SizeType{Wd: pageW, Ht: pageH})

	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader("card", opts, &buf)
	pdf.ImageOptions("card", 0, 0, pageW, pageH, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
