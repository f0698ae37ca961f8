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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreBoardTotalsAndLeader(t *testing.T) {
	b := NewScoreBoard()

	_, ok := b.Leader()
	assert.False(t, ok, "empty board has no leader")
	assert.Equal(t, 0, b.Total())

	assert.Equal(t, 1, b.RecordCorrectGuess("ann"))
	assert.Equal(t, 2, b.RecordCorrectGuess("bob"))
	assert.Equal(t, 3, b.RecordCorrectGuess("bob"))
	assert.Equal(t, 4, b.RecordCorrectGuess("ann"))

	leader, ok := b.Leader()
	assert.True(t, ok)
	assert.Equal(t, "ann", leader, "ties go to whoever scored first")

	b.RecordCorrectGuess("bob")
	leader, _ = b.Leader()
	assert.Equal(t, "bob", leader)
	assert.Equal(t, 5, b.Total())
	assert.Equal(t, 3, b.Score("bob"))
	assert.Equal(t, 0, b.Score("nobody"))
}

func TestScoreBoardRanked(t *testing.T) {
	b := NewScoreBoard()
	for _, p := range []string{"a", "b", "c", "c", "d", "e", "f", "f", "f"} {
		b.RecordCorrectGuess(p)
	}

	tests := []struct {
		name string
		n    int
		want []Entry
	}{
		{"top three", 3, []Entry{{"f", 3}, {"c", 2}, {"a", 1}}},
		{"ties keep scoring order", 5, []Entry{{"f", 3}, {"c", 2}, {"a", 1}, {"b", 1}, {"d", 1}}},
		{"all", 0, []Entry{{"f", 3}, {"c", 2}, {"a", 1}, {"b", 1}, {"d", 1}, {"e", 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Ranked(tt.n))
		})
	}
}
