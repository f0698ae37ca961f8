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
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/lucasduport/popcorn/pkg/catalog"
	"github.com/lucasduport/popcorn/pkg/types"
	"github.com/stretchr/testify/require"
)

// testMovie builds a movie with the given number of backdrops and one
// similar movie per title.
func testMovie(t *testing.T, id int64, title string, backdrops int, similar ...string) *catalog.Movie {
	t.Helper()

	images := make([]map[string]any, 0, backdrops)
	for i := 0; i < backdrops; i++ {
		images = append(images, map[string]any{"file_path": fmt.Sprintf("/%d-%d.jpg", id, i)})
	}
	results := make([]map[string]any, 0, len(similar))
	for i, s := range similar {
		results = append(results, map[string]any{
			"id":           id*100 + int64(i) + 1,
			"title":        s,
			"release_date": "2001-05-04",
		})
	}

	raw, err := json.Marshal(map[string]any{
		"id":           id,
		"title":        title,
		"release_date": "1999-03-31",
		"images":       map[string]any{"backdrops": images},
		"similar":      map[string]any{"results": results},
	})
	require.NoError(t, err)

	m, err := catalog.ParseMovie(raw, "https://img.test")
	require.NoError(t, err)
	return m
}

// puzzle is a movie usable as a round target.
func puzzle(t *testing.T, id int64) *catalog.Movie {
	return testMovie(t, id, fmt.Sprintf("Movie %d", id), 3, "Alpha", "Beta", "Gamma", "Delta", "Epsilon")
}

type fakeCatalog struct {
	mu    sync.Mutex
	calls int
	next  func(call int) (*catalog.Movie, error)
}

func (f *fakeCatalog) RandomMovie(_ context.Context, _, _ string) (*catalog.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.next(f.calls)
}

func (f *fakeCatalog) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// puzzles serves a fresh valid movie on every call.
func puzzles(t *testing.T) *fakeCatalog {
	return &fakeCatalog{next: func(call int) (*catalog.Movie, error) {
		return puzzle(t, int64(call)), nil
	}}
}

type fakeStore struct {
	mu       sync.Mutex
	servers  map[string]*types.ServerSettings
	readErr  error
	writeErr error
	writes   []int
}

func newFakeStore() *fakeStore {
	return &fakeStore{servers: make(map[string]*types.ServerSettings)}
}

func (f *fakeStore) GetOrCreateServer(_ context.Context, serverID, language, region string) (*types.ServerSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	s, ok := f.servers[serverID]
	if !ok {
		s = &types.ServerSettings{ServerID: serverID, Language: language, Region: region}
		f.servers[serverID] = s
	}
	out := *s
	return &out, nil
}

func (f *fakeStore) SetHighScore(_ context.Context, serverID string, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, score)
	if f.writeErr != nil {
		return f.writeErr
	}
	if s, ok := f.servers[serverID]; ok && score > s.HighScore {
		s.HighScore = score
	}
	return nil
}

func (f *fakeStore) highScore(serverID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.servers[serverID]; ok {
		return s.HighScore
	}
	return 0
}

type recordingSurface struct {
	mu      sync.Mutex
	updates []types.UIUpdate
	err     error
}

func (r *recordingSurface) Render(_ context.Context, ui types.UIUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, ui)
	return r.err
}

func (r *recordingSurface) all() []types.UIUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]types.UIUpdate(nil), r.updates...)
}

func (r *recordingSurface) last() types.UIUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updates[len(r.updates)-1]
}

func testConfig() Config {
	return Config{
		Candidates:   4,
		MaxAttempts:  3,
		RetryBackoff: 0,
		RevealDelay:  0,
	}
}

// current returns the live component id and the correct label.
func current(s *Session) (componentID, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.componentID, s.target.TitleAndYear()
}
