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

import "sort"

// Entry is one participant's score.
type Entry struct {
	Participant string
	Score       int
}

// ScoreBoard counts correct guesses per participant in first-scored order.
// It has no locking: the owning Session serializes access.
type ScoreBoard struct {
	order  []string
	counts map[string]int
	total  int
}

// NewScoreBoard returns an empty board.
func NewScoreBoard() *ScoreBoard {
	return &ScoreBoard{counts: make(map[string]int)}
}

// RecordCorrectGuess adds one point to participant and returns the new total.
func (b *ScoreBoard) RecordCorrectGuess(participant string) int {
	if _, ok := b.counts[participant]; !ok {
		b.order = append(b.order, participant)
	}
	b.counts[participant]++
	b.total++
	return b.total
}

// Total is the sum of every participant's score.
func (b *ScoreBoard) Total() int {
	return b.total
}

// Score returns the points of one participant.
func (b *ScoreBoard) Score(participant string) int {
	return b.counts[participant]
}

// Leader returns the participant with the highest score. Ties go to whoever
// scored first. ok is false on an empty board.
func (b *ScoreBoard) Leader() (participant string, ok bool) {
	best := 0
	for _, p := range b.order {
		if c := b.counts[p]; c > best {
			participant, best = p, c
		}
	}
	return participant, best > 0
}

// Ranked returns at most n entries by descending score, ties in first-scored
// order. n <= 0 returns every entry.
func (b *ScoreBoard) Ranked(n int) []Entry {
	entries := make([]Entry, 0, len(b.order))
	for _, p := range b.order {
		entries = append(entries, Entry{Participant: p, Score: b.counts[p]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
