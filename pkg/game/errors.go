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
	"errors"

	"github.com/lucasduport/popcorn/pkg/catalog"
)

var (
	// ErrInsufficientCandidates means the target has too few distinct similar
	// movies to fill a candidate pool.
	ErrInsufficientCandidates = errors.New("not enough similar movies for a round")
	// ErrCatalogUnavailable is returned once every round-begin attempt failed.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrNotFound is returned for events aimed at an unknown, stale or ended game.
	ErrNotFound = errors.New("game not found")
	// ErrMalformedRecord aliases the catalog error so callers need one import.
	ErrMalformedRecord = catalog.ErrMalformedRecord

	errNoBackdrops = errors.New("movie has no backdrops")
)
