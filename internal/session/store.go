/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package session tracks in-flight card builders per chat identity. The
// rendering core never sees sessions; it only receives one spec per call.
package session

import (
	"sync"

	"gomangacard/internal/builder"
	"gomangacard/internal/registry"
)

// Store holds one Builder per chat id. Implementations must be safe for
// concurrent use; sessions do not survive a process restart.
type Store interface {
	// Get returns the session builder for id, or false if none exists.
	Get(id int64) (*builder.Builder, bool)
	// Create starts a fresh session for id, replacing any existing one.
	Create(id int64) *builder.Builder
	// Delete discards the session for id. Deleting a missing id is a no-op.
	Delete(id int64)
}

// MemoryStore is the in-process Store.
type MemoryStore struct {
	fonts registry.Fonts

	mu       sync.Mutex
	sessions map[int64]*builder.Builder
}

// NewMemoryStore builds an empty store; fonts is handed to every new
// Builder for font validation.
func NewMemoryStore(fonts registry.Fonts) *MemoryStore {
	return &MemoryStore{
		fonts:    fonts,
		sessions: make(map[int64]*builder.Builder),
	}
}

func (s *MemoryStore) Get(id int64) (*builder.Builder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.sessions[id]
	return b, ok
}

func (s *MemoryStore) Create(id int64) *builder.Builder {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := builder.New(s.fonts)
	s.sessions[id] = b
	return b
}

func (s *MemoryStore) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
