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
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lucasduport/popcorn/pkg/locale"
	"github.com/lucasduport/popcorn/pkg/types"
	"github.com/lucasduport/popcorn/pkg/utils"
)

// Manager creates sessions and routes menu submissions to them.
type Manager struct {
	cfg      Config
	catalog  Catalog
	store    Store
	registry *Registry
}

// NewManager returns a manager with its own registry.
func NewManager(cfg Config, c Catalog, store Store) *Manager {
	return &Manager{
		cfg:      cfg.withDefaults(),
		catalog:  c,
		store:    store,
		registry: NewRegistry(),
	}
}

// Registry exposes the component registry.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// NewSession loads the server settings and record and returns an idle
// session. A failed read aborts so a stored record is never overwritten
// blindly.
func (m *Manager) NewSession(ctx context.Context, serverID string) (*Session, error) {
	settings, err := m.store.GetOrCreateServer(ctx, serverID, m.cfg.DefaultLanguage, m.cfg.DefaultRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings of server %s: %w", serverID, err)
	}

	language := settings.Language
	if language == "" {
		language = m.cfg.DefaultLanguage
	}
	region := settings.Region
	if region == "" {
		region = m.cfg.DefaultRegion
	}

	now := time.Now()
	return &Session{
		id:         uuid.NewString(),
		serverID:   serverID,
		language:   language,
		region:     region,
		strings:    locale.Resolve(language),
		record:     settings.HighScore,
		cfg:        m.cfg,
		catalog:    m.catalog,
		store:      m.store,
		registry:   m.registry,
		state:      StateIdle,
		scores:     NewScoreBoard(),
		startedAt:  now,
		lastActive: now,
	}, nil
}

// StartGame creates a session for serverID and renders its first round.
func (m *Manager) StartGame(ctx context.Context, serverID string, surface Surface) (*Session, error) {
	s, err := m.NewSession(ctx, serverID)
	if err != nil {
		return nil, err
	}
	if err := s.Start(ctx, surface); err != nil {
		return s, err
	}
	return s, nil
}

// HandleGuess routes a menu submission. Unknown or stale component ids
// return ErrNotFound and render nothing.
func (m *Manager) HandleGuess(ctx context.Context, surface Surface, componentID, participant, label string) error {
	s, err := m.registry.Lookup(componentID)
	if err != nil {
		return err
	}
	return s.Guess(ctx, surface, componentID, participant, label)
}

// ExpireIdle ends every session left waiting longer than the idle timeout
// and returns how many were ended.
func (m *Manager) ExpireIdle(ctx context.Context, now time.Time) int {
	cutoff := now.Add(-m.cfg.IdleTimeout)
	expired := 0
	for _, s := range m.registry.Sessions() {
		if s.expireIfIdle(ctx, cutoff) {
			expired++
		}
	}
	if expired > 0 {
		utils.InfoLog("Game: Expired %d idle sessions", expired)
	}
	return expired
}

// ActiveGames summarizes running sessions, oldest first.
func (m *Manager) ActiveGames() []types.GameSummary {
	sessions := m.registry.Sessions()
	out := make([]types.GameSummary, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.Summary())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}
