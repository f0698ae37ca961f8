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

	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/popcorn/pkg/catalog"
	"github.com/lucasduport/popcorn/pkg/locale"
	"github.com/lucasduport/popcorn/pkg/utils"
)

const (
	maxDescription = 4096
	maxListItems   = 20
)

// movieAppends are the sub-resources needed by the details embed.
var movieAppends = []string{"credits", "external_ids", "videos", "watch/providers", "recommendations"}

// showAppends are the sub-resources needed by the show embed.
var showAppends = []string{"credits", "external_ids", "videos", "watch/providers"}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func joinOrDash(items []string) string {
	return orDash(strings.Join(items, ", "))
}

func rating(st locale.Strings, average float64, votes int) string {
	if average <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f (%d %s)", average, votes, st.Votes)
}

func inline(name, value string) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: true}
}

// movieEmbed is the details card of one movie.
func movieEmbed(m *catalog.Movie, st locale.Strings, region string) *discordgo.MessageEmbed {
	released := utils.FormatDate(m.ReleaseDate, st.DateLayout)
	if released == "" {
		released = m.Status
	}

	embed := newEmbed(colorInfo, m.Title(), utils.TruncateRunes(m.Overview, maxDescription),
		inline(st.Rating, rating(st, m.VoteAverage, m.VoteCount)),
		inline(st.Released, orDash(released)),
		inline(st.WatchOn, joinOrDash(m.WatchOn(region))),
		inline(st.Runtime, orDash(utils.FormatDuration(m.Runtime))),
		inline(st.Genres, joinOrDash(m.Genres)),
		inline(st.Studios, joinOrDash(m.Studios)),
	)
	embed.URL = m.Homepage
	if img := m.Image(); img != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: img}
	}
	if len(m.Directors) > 0 {
		embed.Author = &discordgo.MessageEmbedAuthor{Name: m.Directors[0]}
	}
	return embed
}

// showEmbed is the details card of one TV show.
func showEmbed(s *catalog.Show, st locale.Strings, region string) *discordgo.MessageEmbed {
	aired := utils.FormatDate(s.FirstAirDate, st.DateLayout)
	if aired == "" {
		aired = s.Status
	}

	embed := newEmbed(colorInfo, s.Title(), utils.TruncateRunes(s.Overview, maxDescription),
		inline(st.Rating, rating(st, s.VoteAverage, s.VoteCount)),
		inline(st.Released, orDash(aired)),
		inline(st.WatchOn, joinOrDash(s.WatchOn(region))),
		inline(st.Seasons, fmt.Sprint(s.Seasons)),
		inline(st.Episodes, fmt.Sprint(s.Episodes)),
		inline(st.Runtime, orDash(utils.FormatDuration(s.EpisodeRuntime))),
		inline(st.Genres, joinOrDash(s.Genres)),
		inline(st.Networks, joinOrDash(s.Networks)),
	)
	embed.URL = s.Homepage
	if img := s.Image(); img != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: img}
	}
	if len(s.Creators) > 0 {
		embed.Author = &discordgo.MessageEmbedAuthor{Name: strings.Join(s.Creators, ", ")}
	}
	return embed
}

// linkButtons returns a row with the trailer and IMDb links that exist.
func linkButtons(st locale.Strings, trailerURL, imdbURL string) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent
	if trailerURL != "" {
		buttons = append(buttons, discordgo.Button{Style: discordgo.LinkButton, Label: st.Trailer, URL: trailerURL})
	}
	if imdbURL != "" {
		buttons = append(buttons, discordgo.Button{Style: discordgo.LinkButton, Label: "IMDb", URL: imdbURL})
	}
	if len(buttons) == 0 {
		return nil
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

// listEmbed numbers the titles of one result page.
func listEmbed(title string, movies []*catalog.Movie, st locale.Strings) *discordgo.MessageEmbed {
	lines := make([]string, 0, min(len(movies), maxListItems))
	for i, m := range movies {
		if i == maxListItems {
			break
		}
		line := fmt.Sprintf("%d. **%s**", i+1, m.TitleAndYear())
		if m.VoteAverage > 0 {
			line += fmt.Sprintf(" ⭐ %.1f", m.VoteAverage)
		}
		lines = append(lines, line)
	}
	return newEmbed(colorInfo, title, utils.TruncateRunes(strings.Join(lines, "\n"), maxDescription))
}
