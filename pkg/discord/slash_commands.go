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
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/popcorn/pkg/catalog"
	"github.com/lucasduport/popcorn/pkg/locale"
	"github.com/lucasduport/popcorn/pkg/utils"
)

var movieLists = map[string]catalog.MovieList{
	"popular":  catalog.ListPopular,
	"trending": catalog.ListTrending,
	"top":      catalog.ListTopRated,
}

// command definitions
func (b *Bot) commandSpecs() []*discordgo.ApplicationCommand {
	languages := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(locale.Supported()))
	for _, tag := range locale.Supported() {
		languages = append(languages, &discordgo.ApplicationCommandOptionChoice{Name: tag, Value: tag})
	}
	query := &discordgo.ApplicationCommandOption{Type: discordgo.ApplicationCommandOptionString, Name: "query", Description: "Title to search", Required: true}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "game",
			Description: "Play a game",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "framed",
					Description: "Guess the movie from one of its frames",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionBoolean, Name: "hide", Description: "Only you can see the game"},
					},
				},
			},
		},
		{
			Name:        "movie",
			Description: "Look up movies",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "search", Description: "Search a movie by title", Options: []*discordgo.ApplicationCommandOption{query}},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "popular", Description: "Popular movies"},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "trending", Description: "Trending movies this week"},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "top", Description: "Top rated movies"},
			},
		},
		{
			Name:        "tv",
			Description: "Look up TV shows",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "search", Description: "Search a TV show by title", Options: []*discordgo.ApplicationCommandOption{query}},
			},
		},
		{
			Name:        "settings",
			Description: "Set the language and region used on this server",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "language", Description: "Display language", Required: true, Choices: languages},
				{Type: discordgo.ApplicationCommandOptionString, Name: "region", Description: "Two-letter region code, e.g. US or BR", Required: true, MinLength: intPtr(2), MaxLength: 3},
			},
		},
	}
}

func intPtr(v int) *int { return &v }

// commandScope returns the guild to register in, "" for global.
func (b *Bot) commandScope() string {
	if b.devGuildID != "" {
		return b.devGuildID
	}
	// a bot sitting in a single guild registers there for fast iteration
	if b.session.State != nil && len(b.session.State.Guilds) == 1 {
		return b.session.State.Guilds[0].ID
	}
	return ""
}

// registerSlashCommands registers commands globally or in a dev guild.
func (b *Bot) registerSlashCommands() error {
	if b.session == nil {
		return fmt.Errorf("session not initialized")
	}
	if b.session.State == nil || b.session.State.User == nil {
		return fmt.Errorf("session user not ready")
	}
	appID := b.session.State.User.ID
	guildID := b.commandScope()
	if guildID != "" && b.devGuildID == "" {
		b.devGuildID = guildID
		utils.InfoLog("Slash commands: auto-using guild %s for development registration", guildID)
	}

	cmds, err := b.session.ApplicationCommandBulkOverwrite(appID, guildID, b.commandSpecs())
	if err != nil {
		return fmt.Errorf("bulk overwrite: %w", err)
	}
	b.registeredCommands = cmds

	scope := "global"
	if guildID != "" {
		scope = "guild:" + guildID
	}
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	utils.InfoLog("Slash commands registered (%s): %v", scope, names)
	return nil
}

// unregisterSlashCommands removes commands from the dev guild. Global
// deletions are slow, so they are skipped.
func (b *Bot) unregisterSlashCommands() error {
	if b.session == nil || len(b.registeredCommands) == 0 || b.devGuildID == "" {
		return nil
	}
	if b.session.State == nil || b.session.State.User == nil {
		return nil
	}
	appID := b.session.State.User.ID
	for _, cmd := range b.registeredCommands {
		_ = b.session.ApplicationCommandDelete(appID, b.devGuildID, cmd.ID)
	}
	b.registeredCommands = nil
	return nil
}

// cleanupExistingCommands deletes commands in the scope we plan to use before re-registering.
func (b *Bot) cleanupExistingCommands() error {
	if b.session == nil || b.session.State == nil || b.session.State.User == nil {
		return nil
	}
	appID := b.session.State.User.ID
	guildID := b.commandScope()

	cmds, err := b.session.ApplicationCommands(appID, guildID)
	if err != nil {
		return err
	}
	for _, c := range cmds {
		if err := b.session.ApplicationCommandDelete(appID, guildID, c.ID); err != nil {
			utils.WarnLog("Failed to delete command %s in scope %q: %v", c.Name, guildID, err)
		}
	}
	return nil
}

// handleApplicationCommand routes slash commands.
func (b *Bot) handleApplicationCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	name := i.ApplicationCommandData().Name
	utils.DebugLog("Discord: /%s %s from %s in %s", name, subCommand(i), interactionUserID(i), serverKey(i))

	ctx, cancel := b.interactionContext()
	defer cancel()

	switch name {
	case "game":
		if subCommand(i) == "framed" {
			b.handleFramed(ctx, s, i)
		}
	case "movie":
		b.handleMovie(ctx, s, i)
	case "tv":
		b.handleTV(ctx, s, i)
	case "settings":
		b.handleSettings(ctx, s, i)
	}
}

// settingsFor returns the language and region of the interaction's server,
// falling back to the defaults when the store is unavailable.
func (b *Bot) settingsFor(ctx context.Context, i *discordgo.InteractionCreate) (language, region string) {
	language, region = b.cfg.DefaultLanguage, b.cfg.DefaultRegion
	settings, err := b.store.GetOrCreateServer(ctx, serverKey(i), language, region)
	if err != nil {
		utils.WarnLog("Discord: using default settings for %s: %v", serverKey(i), err)
		return language, region
	}
	if settings.Language != "" {
		language = settings.Language
	}
	if settings.Region != "" {
		region = settings.Region
	}
	return language, region
}

func (b *Bot) handleFramed(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	surface := newCommandSurface(s, i.Interaction, optBool(i, "hide"))
	if err := surface.deferReply(ctx); err != nil {
		utils.ErrorLog("Discord: failed to acknowledge /game framed: %v", err)
		return
	}

	session, err := b.games.StartGame(ctx, serverKey(i), surface)
	if err != nil {
		utils.ErrorLog("Discord: failed to start Framed for %s: %v", serverKey(i), err)
		st := locale.Default()
		if session != nil {
			st = session.Strings()
		}
		fail(ctx, surface, "❌ Framed", st.GameFailed)
		return
	}
	utils.InfoLog("Discord: %s started Framed session %s", interactionUserID(i), session.ID())
}

func (b *Bot) handleMovie(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	surface := newCommandSurface(s, i.Interaction, false)
	if err := surface.deferReply(ctx); err != nil {
		utils.ErrorLog("Discord: failed to acknowledge /movie: %v", err)
		return
	}
	language, region := b.settingsFor(ctx, i)
	st := locale.Resolve(language)

	sub := subCommand(i)
	if list, ok := movieLists[sub]; ok {
		page, err := b.catalog.ListMovies(ctx, list, language, region, 1)
		if err != nil {
			utils.ErrorLog("Discord: /movie %s failed: %v", sub, err)
			fail(ctx, surface, "❌ "+st.ListTitle, st.SearchError)
			return
		}
		if len(page.Results) == 0 {
			warn(ctx, surface, "🎬 "+st.ListTitle, st.NoResults)
			return
		}
		reply(ctx, surface, listEmbed(fmt.Sprintf("🎬 %s: %s", st.ListTitle, sub), page.Results, st))
		return
	}

	query := optString(i, "query")
	page, err := b.catalog.SearchMovies(ctx, query, language, region, 1)
	if err != nil {
		utils.ErrorLog("Discord: movie search %q failed: %v", query, err)
		fail(ctx, surface, "❌ "+query, st.SearchError)
		return
	}
	if len(page.Results) == 0 {
		warn(ctx, surface, "🔍 "+query, st.NoResults)
		return
	}

	movie, err := b.catalog.MovieDetails(ctx, page.Results[0].ID, language, region, movieAppends...)
	if err != nil {
		utils.ErrorLog("Discord: movie details %d failed: %v", page.Results[0].ID, err)
		fail(ctx, surface, "❌ "+query, st.SearchError)
		return
	}
	reply(ctx, surface, movieEmbed(movie, st, region), linkButtons(st, movie.TrailerURL(), movie.IMDbURL())...)
}

func (b *Bot) handleTV(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	surface := newCommandSurface(s, i.Interaction, false)
	if err := surface.deferReply(ctx); err != nil {
		utils.ErrorLog("Discord: failed to acknowledge /tv: %v", err)
		return
	}
	language, region := b.settingsFor(ctx, i)
	st := locale.Resolve(language)

	query := optString(i, "query")
	page, err := b.catalog.SearchShows(ctx, query, language, 1)
	if err != nil {
		utils.ErrorLog("Discord: show search %q failed: %v", query, err)
		fail(ctx, surface, "❌ "+query, st.SearchError)
		return
	}
	if len(page.Results) == 0 {
		warn(ctx, surface, "🔍 "+query, st.NoResults)
		return
	}

	show, err := b.catalog.ShowDetails(ctx, page.Results[0].ID, language, region, showAppends...)
	if err != nil {
		utils.ErrorLog("Discord: show details %d failed: %v", page.Results[0].ID, err)
		fail(ctx, surface, "❌ "+query, st.SearchError)
		return
	}
	reply(ctx, surface, showEmbed(show, st, region), linkButtons(st, show.TrailerURL(), show.IMDbURL())...)
}

func (b *Bot) handleSettings(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	surface := newCommandSurface(s, i.Interaction, true)

	st := locale.Resolve(optString(i, "language"))
	region, err := locale.NormalizeRegion(optString(i, "region"))
	if err != nil {
		warn(ctx, surface, "⚙️ Settings", err.Error())
		return
	}

	if err := b.store.UpdateSettings(ctx, serverKey(i), st.Tag, region); err != nil {
		fail(ctx, surface, "⚙️ Settings", st.SearchError)
		return
	}
	utils.InfoLog("Discord: %s set %s/%s for %s", interactionUserID(i), st.Tag, region, serverKey(i))
	success(ctx, surface, "⚙️ Settings", fmt.Sprintf(st.SettingsSaved, st.Tag, region))
}
