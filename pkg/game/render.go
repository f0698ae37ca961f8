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
	"strconv"
	"strings"

	"github.com/lucasduport/popcorn/pkg/locale"
	"github.com/lucasduport/popcorn/pkg/types"
)

const (
	colorRound = 0x5BC0DE
	colorEnded = 0xFFC107
)

// badges by rank; every rank past the third shares the last one
var badges = []string{"🏆", "🥈", "🥉", "🏅"}

const podiumSize = 5

// view is the state a payload is built from. Builders never keep it.
type view struct {
	strings     locale.Strings
	componentID string
	image       string
	options     []string
	score       int
	record      int
	leader      string
	ranked      []Entry
}

func badge(rank int) string {
	if rank < len(badges) {
		return badges[rank]
	}
	return badges[len(badges)-1]
}

func scoreFields(v view) []types.UIField {
	record := "-"
	if v.record > 0 {
		record = strconv.Itoa(v.record)
	}
	leader := "-"
	if v.leader != "" {
		leader = v.leader
	}
	return []types.UIField{
		{Name: v.strings.FieldScore, Value: strconv.Itoa(v.score), Inline: true},
		{Name: v.strings.FieldRecord, Value: record, Inline: true},
		{Name: v.strings.FieldTopScorer, Value: leader, Inline: true},
	}
}

// roundUI is the open round: backdrop, scores and an enabled menu.
func roundUI(v view) types.UIUpdate {
	return types.UIUpdate{
		Title:    v.strings.GameTitle,
		ImageURL: v.image,
		Color:    colorRound,
		Fields:   scoreFields(v),
		Menu: &types.UIMenu{
			CustomID:    v.componentID,
			Placeholder: v.strings.GamePlaceholder,
			Options:     append([]string(nil), v.options...),
		},
	}
}

// frozenUI is the round with the menu locked on the submitted label.
func frozenUI(v view, picked string) types.UIUpdate {
	ui := roundUI(v)
	ui.Menu.Disabled = true
	ui.Menu.Placeholder = picked
	return ui
}

// endUI is the final podium. It carries neither image nor menu.
func endUI(v view) types.UIUpdate {
	lines := make([]string, 0, len(v.ranked))
	for i, e := range v.ranked {
		if i == podiumSize {
			break
		}
		lines = append(lines, fmt.Sprintf("%s %s (**%d** %s)", badge(i), e.Participant, e.Score, v.strings.Points))
	}
	return types.UIUpdate{
		Title:       v.strings.GameEnded,
		Description: strings.Join(lines, "\n"),
		Color:       colorEnded,
		Fields:      scoreFields(v),
	}
}
