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

package catalog

import "errors"

var (
	// ErrMalformedRecord is returned when a catalog payload has no identity field.
	ErrMalformedRecord = errors.New("malformed catalog record: missing id")
	// ErrNotFound is returned when the catalog answers 404 for a record.
	ErrNotFound = errors.New("catalog record not found")
	// ErrNoResults is returned when a list or search query comes back empty.
	ErrNoResults = errors.New("catalog query returned no results")
)
