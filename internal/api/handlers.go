/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package api exposes the card renderer over HTTP. Request bodies use the
// builder's free-text Request shape, so a caller can omit anything and get
// the interactive defaults.
package api

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"gomangacard/internal/builder"
	"gomangacard/internal/card"
	"gomangacard/internal/export"
	applog "gomangacard/internal/log"
	"gomangacard/internal/registry"
	"gomangacard/internal/version"
)

// Server bundles the renderer and the read-only registries behind the
// handlers. One Server serves all requests; renders are reentrant.
type Server struct {
	renderer *card.Renderer
	colors   *card.ColorResolver
	fonts    *card.FontResolver
	colorReg registry.Colors
	fontReg  registry.Fonts
}

// NewServer wires the handler set.
func NewServer(colorReg registry.Colors, fontReg registry.Fonts, fontDir string) *Server {
	colors := card.NewColorResolver(colorReg)
	fonts := card.NewFontResolver(fontReg, fontDir)
	return &Server{
		renderer: card.NewRenderer(colors, fonts),
		colors:   colors,
		fonts:    fonts,
		colorReg: colorReg,
		fontReg:  fontReg,
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.String()})
}

func (s *Server) render(c *gin.Context) {
	var req builder.Request
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	spec := req.BuildSpec(s.fontReg)
	img := s.renderer.Render(spec)

	var buf bytes.Buffer
	if err := export.Encode(&buf, img, spec.Export); err != nil {
		applog.WithComponent("api").Error("encode failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, export.ContentType(spec.Export), buf.Bytes())
}

func (s *Server) preview(c *gin.Context) {
	var req builder.Request
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	img := s.renderer.Render(req.BuildSpec(s.fontReg))

	var buf bytes.Buffer
	if err := export.EncodePreview(&buf, img); err != nil {
		applog.WithComponent("api").Error("preview encode failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/jpeg", buf.Bytes())
}

func (s *Server) palette(c *gin.Context) {
	img := card.PaletteSheet(s.colorReg, s.colors, s.fonts)
	var buf bytes.Buffer
	if err := export.Encode(&buf, img, card.FormatPNG); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) fontSheet(c *gin.Context) {
	img := card.FontSpecimen(s.fontReg, s.fonts)
	var buf bytes.Buffer
	if err := export.Encode(&buf, img, card.FormatPNG); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
