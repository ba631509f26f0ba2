/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package card

import (
	"strings"

	"golang.org/x/image/font"
)

// Wrap breaks text into lines whose measured pixel width stays within
// maxWidth. Greedy: words accumulate until the next one would overflow.
// A single word wider than maxWidth is placed on its own, overflowing line
// rather than being split. No line count limit is enforced here; callers
// truncate.
func Wrap(text string, face font.Face, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if measure(face, candidate) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

// measure returns the advance width of s in whole pixels, rounded up.
func measure(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
