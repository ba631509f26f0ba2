/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package crash turns an unhandled panic into a logged crash report instead
// of a bare stack dump.
package crash

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	applog "gomangacard/internal/log"
	"gomangacard/internal/version"
)

// exitFn is swapped out in tests so Recover does not kill the test process.
var exitFn = os.Exit

// Recover captures a panic, logs it with the stacktrace, writes a report
// file under the temp dir and exits non-zero.
//
// Usage: defer crash.Recover()
func Recover() {
	r := recover()
	if r == nil {
		return
	}
	l := applog.WithComponent("crash")
	stack := debug.Stack()
	l.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))

	reportPath, err := writeReport(r, stack)
	if err != nil {
		l.Error("crash report write failed", slog.Any("err", err))
	} else {
		fmt.Fprintf(os.Stderr, "A fatal error occurred. A crash report was saved to: %s\n", reportPath)
	}
	fmt.Fprintf(os.Stderr, "Version: %s\nOS/Arch: %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH)
	exitFn(2)
}

func writeReport(panicVal any, stack []byte) (string, error) {
	name := fmt.Sprintf("mangacard-crash-%s.txt", time.Now().Format("20060102-150405"))
	path := filepath.Join(os.TempDir(), name)

	body := fmt.Sprintf("mangacard crash report\ntime: %s\nversion: %s\nos/arch: %s/%s\npanic: %v\n\n%s",
		time.Now().Format(time.RFC3339), version.String(), runtime.GOOS, runtime.GOARCH, panicVal, stack)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		return "", err
	}
	return path, nil
}
