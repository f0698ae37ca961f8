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

import "time"

// Config tunes how sessions fetch and reveal rounds.
type Config struct {
	// Candidates is the number of similar movies shown next to the target.
	Candidates   int
	MaxAttempts  int
	RetryBackoff time.Duration
	RevealDelay  time.Duration
	IdleTimeout  time.Duration

	DefaultLanguage string
	DefaultRegion   string
}

// DefaultConfig returns the production settings.
func DefaultConfig() Config {
	return Config{
		Candidates:      4,
		MaxAttempts:     10,
		RetryBackoff:    500 * time.Millisecond,
		RevealDelay:     500 * time.Millisecond,
		IdleTimeout:     time.Hour,
		DefaultLanguage: "en-US",
		DefaultRegion:   "US",
	}
}

// withDefaults fills unset fields. Zero delays are kept, they are valid.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Candidates <= 0 {
		c.Candidates = d.Candidates
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = d.MaxAttempts
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = d.IdleTimeout
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = d.DefaultLanguage
	}
	if c.DefaultRegion == "" {
		c.DefaultRegion = d.DefaultRegion
	}
	return c
}
