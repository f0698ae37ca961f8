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
	"strings"
	"testing"

	"github.com/lucasduport/popcorn/pkg/locale"
	"github.com/stretchr/testify/assert"
)

func TestEndUIPodium(t *testing.T) {
	v := view{
		strings: locale.Default(),
		score:   21,
		record:  9,
		leader:  "<@a>",
		ranked: []Entry{
			{"<@a>", 6}, {"<@b>", 5}, {"<@c>", 4}, {"<@d>", 3}, {"<@e>", 2}, {"<@f>", 1},
		},
	}

	ui := endUI(v)
	lines := strings.Split(ui.Description, "\n")
	assert.Equal(t, []string{
		"🏆 <@a> (**6** points)",
		"🥈 <@b> (**5** points)",
		"🥉 <@c> (**4** points)",
		"🏅 <@d> (**3** points)",
		"🏅 <@e> (**2** points)",
	}, lines)
	assert.Nil(t, ui.Menu)
	assert.Empty(t, ui.ImageURL)
	assert.Equal(t, "21", ui.Fields[0].Value)
	assert.Equal(t, "9", ui.Fields[1].Value)
	assert.Equal(t, "<@a>", ui.Fields[2].Value)
}

func TestRoundUIBuildsFreshPayloads(t *testing.T) {
	v := view{
		strings:     locale.Default(),
		componentID: "framed:s:1",
		image:       "https://img.test/a.jpg",
		options:     []string{"A (2001)", "B (2002)"},
	}

	open := roundUI(v)
	frozen := frozenUI(v, "B (2002)")

	assert.False(t, open.Menu.Disabled)
	assert.Equal(t, locale.Default().GamePlaceholder, open.Menu.Placeholder)
	assert.True(t, frozen.Menu.Disabled)
	assert.Equal(t, "B (2002)", frozen.Menu.Placeholder)
	assert.Equal(t, open.ImageURL, frozen.ImageURL)

	open.Menu.Options[0] = "changed"
	assert.Equal(t, "A (2001)", v.options[0], "payloads must not alias session state")
}

func TestBadge(t *testing.T) {
	for rank, want := range []string{"🏆", "🥈", "🥉", "🏅", "🏅", "🏅"} {
		assert.Equal(t, want, badge(rank))
	}
}
