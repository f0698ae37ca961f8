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
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/lucasduport/popcorn/pkg/catalog"
	"github.com/lucasduport/popcorn/pkg/locale"
	"github.com/lucasduport/popcorn/pkg/types"
	"github.com/lucasduport/popcorn/pkg/utils"
)

// ComponentPrefix starts the custom id of every Framed menu.
const ComponentPrefix = "framed:"

// State is the lifecycle position of a Session.
type State int

const (
	StateIdle State = iota
	StateAwaitingGuess
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingGuess:
		return "awaiting_guess"
	case StateEnded:
		return "ended"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Catalog provides random puzzle targets.
type Catalog interface {
	RandomMovie(ctx context.Context, language, region string) (*catalog.Movie, error)
}

// Store persists per-server settings and the Framed record.
type Store interface {
	GetOrCreateServer(ctx context.Context, serverID, language, region string) (*types.ServerSettings, error)
	SetHighScore(ctx context.Context, serverID string, score int) error
}

// Surface shows UI snapshots to the players. Each call replaces what the
// previous one displayed.
type Surface interface {
	Render(ctx context.Context, ui types.UIUpdate) error
}

// Session is one Framed play-through.
type Session struct {
	id       string
	serverID string
	language string
	region   string
	strings  locale.Strings
	record   int
	cfg      Config

	catalog  Catalog
	store    Store
	registry *Registry

	mu          sync.Mutex
	state       State
	round       int
	componentID string
	target      *catalog.Movie
	pool        []*catalog.Movie
	image       string
	scores      *ScoreBoard
	startedAt   time.Time
	lastActive  time.Time
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Strings returns the language the session is played in.
func (s *Session) Strings() locale.Strings {
	return s.strings
}

// Start runs the first round and renders it on surface.
func (s *Session) Start(ctx context.Context, surface Surface) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return fmt.Errorf("session %s already %s", s.id, s.state)
	}
	if err := s.beginRound(ctx, surface); err != nil {
		s.finish(ctx)
		return err
	}
	utils.InfoLog("Game: Started session %s on server %s", s.id, s.serverID)
	return nil
}

// Guess evaluates label submitted by participant on the menu componentID.
// Events for a menu that is no longer the current one return ErrNotFound.
func (s *Session) Guess(ctx context.Context, surface Surface, componentID, participant, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAwaitingGuess || s.componentID != componentID {
		return fmt.Errorf("%w: %s", ErrNotFound, componentID)
	}
	s.lastActive = time.Now()

	if err := surface.Render(ctx, frozenUI(s.view(), label)); err != nil {
		utils.WarnLog("Game: Failed to freeze menu of session %s: %v", s.id, err)
	}
	_ = sleep(ctx, s.cfg.RevealDelay)

	if label != s.target.TitleAndYear() {
		utils.DebugLog("Game: Session %s wrong guess %q by %s", s.id, label, participant)
		return s.end(ctx, surface)
	}

	total := s.scores.RecordCorrectGuess(participant)
	utils.DebugLog("Game: Session %s correct guess by %s, total %d", s.id, participant, total)

	if err := s.beginRound(ctx, surface); err != nil {
		utils.ErrorLog("Game: Session %s could not start round %d: %v", s.id, s.round+1, err)
		if endErr := s.end(ctx, surface); endErr != nil {
			utils.WarnLog("Game: Failed to render end of session %s: %v", s.id, endErr)
		}
		return err
	}
	return nil
}

// expireIfIdle ends the session without rendering when it has been waiting
// for a guess since before cutoff. Busy sessions are skipped.
func (s *Session) expireIfIdle(ctx context.Context, cutoff time.Time) bool {
	if !s.mu.TryLock() {
		return false
	}
	defer s.mu.Unlock()

	if s.state != StateAwaitingGuess || !s.lastActive.Before(cutoff) {
		return false
	}
	utils.InfoLog("Game: Session %s idle since %s, ending it", s.id, s.lastActive.Format(time.RFC3339))
	s.finish(ctx)
	return true
}

// Summary describes the session for status reporting.
func (s *Session) Summary() types.GameSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	leader, _ := s.scores.Leader()
	return types.GameSummary{
		SessionID:   s.id,
		ServerID:    s.serverID,
		ComponentID: s.componentID,
		Round:       s.round,
		Score:       s.scores.Total(),
		Leader:      leader,
		StartedAt:   s.startedAt,
		LastActive:  s.lastActive,
	}
}

// beginRound picks a new target, moves the binding to a fresh component id
// and renders the round. The previous binding is only released once the new
// one exists.
func (s *Session) beginRound(ctx context.Context, surface Surface) error {
	target, pool, image, err := s.pickRound(ctx)
	if err != nil {
		return err
	}

	previous := s.componentID
	s.round++
	s.componentID = fmt.Sprintf("%s%s:%d", ComponentPrefix, s.id, s.round)
	s.target, s.pool, s.image = target, pool, image
	s.state = StateAwaitingGuess
	s.lastActive = time.Now()

	s.registry.Bind(s.componentID, s)
	if previous != "" {
		s.registry.Unbind(previous)
	}

	utils.DebugLog("Game: Session %s round %d target %d %q", s.id, s.round, target.ID, target.TitleAndYear())
	if err := surface.Render(ctx, roundUI(s.view())); err != nil {
		return fmt.Errorf("failed to render round %d: %w", s.round, err)
	}
	return nil
}

// pickRound fetches random movies until one is usable as a puzzle, at most
// MaxAttempts times. Transient failures back off linearly.
func (s *Session) pickRound(ctx context.Context) (*catalog.Movie, []*catalog.Movie, string, error) {
	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, "", err
		}

		movie, err := s.catalog.RandomMovie(ctx, s.language, s.region)
		if errors.Is(err, ErrMalformedRecord) {
			return nil, nil, "", err
		}
		if err != nil {
			lastErr = err
			utils.WarnLog("Game: Attempt %d/%d to fetch a movie failed: %v", attempt, s.cfg.MaxAttempts, err)
			if err := sleep(ctx, s.cfg.RetryBackoff*time.Duration(attempt)); err != nil {
				return nil, nil, "", err
			}
			continue
		}

		backdrops := slices.Collect(movie.Backdrops())
		if len(backdrops) == 0 {
			lastErr = fmt.Errorf("%w: %d", errNoBackdrops, movie.ID)
			utils.DebugLog("Game: Movie %d has no backdrops, fetching another", movie.ID)
			continue
		}

		pool, err := candidatePool(movie, s.cfg.Candidates)
		if err != nil {
			lastErr = err
			utils.DebugLog("Game: %v, fetching another", err)
			continue
		}
		return movie, pool, backdrops[rand.IntN(len(backdrops))], nil
	}
	return nil, nil, "", fmt.Errorf("%w after %d attempts: %w", ErrCatalogUnavailable, s.cfg.MaxAttempts, lastErr)
}

// candidatePool returns target plus n of its similar movies, shuffled.
// Similar movies whose label repeats another candidate's are ignored so
// every menu option is unique.
func candidatePool(target *catalog.Movie, n int) ([]*catalog.Movie, error) {
	seen := map[string]bool{target.TitleAndYear(): true}
	var similar []*catalog.Movie
	for _, m := range target.Similar() {
		label := m.TitleAndYear()
		if seen[label] {
			continue
		}
		seen[label] = true
		similar = append(similar, m)
	}
	if len(similar) < n {
		return nil, fmt.Errorf("%w: movie %d has %d usable similar movies, need %d",
			ErrInsufficientCandidates, target.ID, len(similar), n)
	}

	rand.Shuffle(len(similar), func(i, j int) { similar[i], similar[j] = similar[j], similar[i] })
	pool := append(similar[:n:n], target)
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool, nil
}

// end finishes the session and renders the podium.
func (s *Session) end(ctx context.Context, surface Surface) error {
	s.finish(ctx)
	utils.InfoLog("Game: Session %s ended after %d rounds with %d points", s.id, s.round, s.scores.Total())
	return surface.Render(ctx, endUI(s.view()))
}

// finish releases the binding and saves a beaten record. A failed save is
// only logged.
func (s *Session) finish(ctx context.Context) {
	s.state = StateEnded
	if s.componentID != "" {
		s.registry.Unbind(s.componentID)
	}

	total := s.scores.Total()
	if total <= s.record {
		return
	}
	if err := s.store.SetHighScore(ctx, s.serverID, total); err != nil {
		utils.ErrorLog("Game: Failed to save record %d for server %s: %v", total, s.serverID, err)
		return
	}
	s.record = total
}

func (s *Session) view() view {
	leader, _ := s.scores.Leader()
	v := view{
		strings:     s.strings,
		componentID: s.componentID,
		image:       s.image,
		score:       s.scores.Total(),
		record:      s.record,
		leader:      leader,
	}
	if s.state == StateEnded {
		v.image = ""
		v.ranked = s.scores.Ranked(podiumSize)
		return v
	}
	v.options = make([]string, len(s.pool))
	for i, m := range s.pool {
		v.options[i] = m.TitleAndYear()
	}
	return v
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
