/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package log

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestInitAndStructuredLoggingToFile verifies that Init with a file handler
// writes JSON logs and that static and contextual attributes are present.
func TestInitAndStructuredLoggingToFile(t *testing.T) {
	fpath := filepath.Join(os.TempDir(), fmt.Sprintf("mc_log_%d.json", time.Now().UnixNano()))

	Init(Options{Level: "debug", Format: "json", File: fpath})

	l := WithComponent("renderer")
	l = WithOperation(l, "render")
	l.Info("hello card", slog.String("k", "v"))

	b, err := os.ReadFile(fpath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(b) == 0 {
		t.Fatalf("log file is empty")
	}

	scanner := bufio.NewScanner(strings.NewReader(string(b)))
	var last string
	for scanner.Scan() {
		if s := strings.TrimSpace(scanner.Text()); s != "" {
			last = s
		}
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(last), &m); err != nil {
		t.Fatalf("parse log line: %v", err)
	}
	if m["app"] != "mangacard" {
		t.Fatalf("expected app attribute, got %v", m["app"])
	}
	if m["component"] != "renderer" || m["op"] != "render" {
		t.Fatalf("missing contextual attributes: %v", m)
	}

	_ = os.Remove(fpath)
}

func TestPrettyHandlerLine(t *testing.T) {
	b := &strings.Builder{}
	h := &prettyTextHandler{level: slog.LevelDebug, w: writerFunc(b.WriteString)}
	l := slog.New(h).With(slog.String("component", "badges"))
	l.Warn("too many badges", slog.Int("count", 7))

	line := b.String()
	if !strings.Contains(line, "WRN") || !strings.Contains(line, "too many badges") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "component=badges") || !strings.Contains(line, "count=7") {
		t.Fatalf("missing attrs in line: %q", line)
	}
}

type writerFunc func(string) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(string(p)) }

func TestParseLevelDefaults(t *testing.T) {
	if parseLevel("nonsense").Level() != slog.LevelInfo {
		t.Fatalf("unknown level should default to info")
	}
	if parseLevel("WARN").Level() != slog.LevelWarn {
		t.Fatalf("level parsing should be case-insensitive")
	}
}
