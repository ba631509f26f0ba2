/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"gomangacard/internal/api"
	"gomangacard/internal/config"
	applog "gomangacard/internal/log"
	"gomangacard/internal/registry"
	"gomangacard/internal/version"
)

func main() {
	cfg, err := config.Load(os.Getenv("MC_CONFIG"))
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	applog.Init(applog.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	l := applog.WithComponent("server")

	colors := registry.LoadColors(cfg.Assets.ColorsFile)
	fonts := registry.LoadFonts(cfg.Assets.FontsFile)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	api.RegisterRoutes(r, api.NewServer(colors, fonts, cfg.Assets.FontDir))

	l.Info("card server listening",
		slog.String("addr", cfg.Server.Addr),
		slog.String("version", version.String()))
	if err := r.Run(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
		l.Error("server stopped", slog.Any("err", err))
		os.Exit(1)
	}
}
