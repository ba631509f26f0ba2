/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"gomangacard/internal/builder"
	"gomangacard/internal/card"
	"gomangacard/internal/config"
	"gomangacard/internal/crash"
	"gomangacard/internal/export"
	applog "gomangacard/internal/log"
	"gomangacard/internal/registry"
	"gomangacard/internal/version"
)

func usage() {
	fmt.Println("mangacard — manga card renderer")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  mangacard version|-v|--version       Show version")
	fmt.Println("  mangacard render <request.json> [out]  Render a card; output format follows the request")
	fmt.Println("  mangacard palette [out.png]            Render the color registry swatch sheet")
	fmt.Println("  mangacard fonts [out.png]              Render the font specimen sheet")
	fmt.Println()
	fmt.Println("Config file via MC_CONFIG; registries via MC_COLORS_FILE / MC_FONTS_FILE / MC_FONT_DIR.")
}

func main() {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	defer crash.Recover()

	args := os.Args
	if len(args) < 2 {
		usage()
		return
	}

	cfg, err := config.Load(os.Getenv("MC_CONFIG"))
	if err != nil {
		l.Error("config load failed", slog.Any("err", err))
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	colors := registry.LoadColors(cfg.Assets.ColorsFile)
	fonts := registry.LoadFonts(cfg.Assets.FontsFile)

	switch args[1] {
	case "version", "--version", "-v":
		fmt.Println("mangacard — manga card renderer")
		fmt.Println(version.String())

	case "render":
		if len(args) < 3 {
			fmt.Println("render requires <request.json>")
			usage()
			os.Exit(2)
		}
		data, err := os.ReadFile(args[2])
		if err != nil {
			l.Error("request read failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		var req builder.Request
		if err := json.Unmarshal(data, &req); err != nil {
			l.Error("request parse failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		spec := req.BuildSpec(fonts)

		renderer := card.NewRenderer(card.NewColorResolver(colors), card.NewFontResolver(fonts, cfg.Assets.FontDir))
		img := renderer.Render(spec)

		out := "card." + export.Extension(spec.Export)
		if len(args) > 3 {
			out = args[3]
		}
		if err := writeEncoded(out, func(f *os.File) error {
			return export.Encode(f, img, spec.Export)
		}); err != nil {
			l.Error("render export failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		l.Info("card rendered", slog.String("out", out))
		fmt.Println("Wrote", out)

	case "palette":
		resolver := card.NewColorResolver(colors)
		faces := card.NewFontResolver(fonts, cfg.Assets.FontDir)
		img := card.PaletteSheet(colors, resolver, faces)
		out := "palette.png"
		if len(args) > 2 {
			out = args[2]
		}
		if err := writeEncoded(out, func(f *os.File) error {
			return export.Encode(f, img, card.FormatPNG)
		}); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Println("Wrote", out)

	case "fonts":
		faces := card.NewFontResolver(fonts, cfg.Assets.FontDir)
		img := card.FontSpecimen(fonts, faces)
		out := "fonts.png"
		if len(args) > 2 {
			out = args[2]
		}
		if err := writeEncoded(out, func(f *os.File) error {
			return export.Encode(f, img, card.FormatPNG)
		}); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Println("Wrote", out)

	default:
		usage()
		os.Exit(2)
	}
}

func writeEncoded(path string, encode func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
