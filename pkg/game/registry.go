/*
 * popcorn is a Discord bot for movie and TV lookups and the Framed guessing game.
 * Copyright (C) 2025  Lucas Duport
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */


package game

import (
	"fmt"
	"sync"
)

// Registry maps UI component identities to the session that owns them.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Bind routes componentID to s, replacing any previous binding.
func (r *Registry) Bind(componentID string, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[componentID] = s
}

// Lookup returns the session bound to componentID or ErrNotFound.
func (r *Registry) Lookup(componentID string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[componentID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, componentID)
	}
	return s, nil
}

// Unbind removes componentID. Unknown ids are ignored.
func (r *Registry) Unbind(componentID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, componentID)
}

// Len returns the number of bound identities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sessions returns every distinct bound session.
func (r *Registry) Sessions() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[*Session]bool, len(r.sessions))
	out := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
