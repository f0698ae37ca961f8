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


package discord

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/popcorn/pkg/catalog"
	"github.com/lucasduport/popcorn/pkg/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const movieJSON = `{
	"id": 603,
	"title": "The Matrix",
	"overview": "A hacker learns the truth.",
	"homepage": "https://matrix.test",
	"release_date": "1999-03-31",
	"runtime": 136,
	"vote_average": 8.2,
	"vote_count": 24000,
	"backdrop_path": "/matrix.jpg",
	"genres": [{"id": 28, "name": "Action"}, {"id": 878, "name": "Science Fiction"}],
	"production_companies": [{"name": "Warner Bros."}],
	"external_ids": {"imdb_id": "tt0133093"},
	"credits": {"cast": [{"name": "Keanu Reeves"}], "crew": [{"name": "Lana Wachowski", "job": "Director"}]},
	"videos": {"results": [{"site": "YouTube", "type": "Trailer", "key": "abc"}]}
}`

func TestMovieEmbed(t *testing.T) {
	m, err := catalog.ParseMovie([]byte(movieJSON), "https://img.test")
	require.NoError(t, err)

	st := locale.Resolve("pt-BR")
	embed := movieEmbed(m, st, "BR")

	assert.Equal(t, "The Matrix", embed.Title)
	assert.Equal(t, "https://matrix.test", embed.URL)
	assert.Equal(t, "https://img.test/matrix.jpg", embed.Image.URL)
	assert.Equal(t, "Lana Wachowski", embed.Author.Name)

	values := map[string]string{}
	for _, f := range embed.Fields {
		values[f.Name] = f.Value
		assert.True(t, f.Inline)
	}
	assert.Equal(t, "8.2 (24000 votos)", values[st.Rating])
	assert.Equal(t, "31/03/1999", values[st.Released])
	assert.Equal(t, "-", values[st.WatchOn])
	assert.Equal(t, "2h 16min", values[st.Runtime])
	assert.Equal(t, "Action, Science Fiction", values[st.Genres])
	assert.Equal(t, "Warner Bros.", values[st.Studios])

	rows := linkButtons(st, m.TrailerURL(), m.IMDbURL())
	require.Len(t, rows, 1)
	buttons := rows[0].(discordgo.ActionsRow).Components
	require.Len(t, buttons, 2)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", buttons[0].(discordgo.Button).URL)
	assert.Equal(t, "https://www.imdb.com/title/tt0133093", buttons[1].(discordgo.Button).URL)
}

func TestLinkButtonsWithoutLinks(t *testing.T) {
	assert.Nil(t, linkButtons(locale.Default(), "", ""))
}

func TestListEmbedIsCapped(t *testing.T) {
	var movies []*catalog.Movie
	for i := 1; i <= 25; i++ {
		m, err := catalog.ParseMovie([]byte(fmt.Sprintf(`{"id": %d, "title": "Movie %d", "release_date": "2020-01-01", "vote_average": 7}`, i, i)), "")
		require.NoError(t, err)
		movies = append(movies, m)
	}

	embed := listEmbed("Popular", movies, locale.Default())
	lines := strings.Split(embed.Description, "\n")
	assert.Len(t, lines, maxListItems)
	assert.Equal(t, "1. **Movie 1 (2020)** ⭐ 7.0", lines[0])
}
