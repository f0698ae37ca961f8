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
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/popcorn/pkg/catalog"
	"github.com/lucasduport/popcorn/pkg/game"
	"github.com/lucasduport/popcorn/pkg/utils"
)

// MovieCatalog is the part of the catalog client the bot uses.
type MovieCatalog interface {
	game.Catalog
	MovieDetails(ctx context.Context, id int64, language, region string, appendTo ...string) (*catalog.Movie, error)
	SearchMovies(ctx context.Context, query, language, region string, page int) (*catalog.MoviePage, error)
	ListMovies(ctx context.Context, list catalog.MovieList, language, region string, page int) (*catalog.MoviePage, error)
	SearchShows(ctx context.Context, query, language string, page int) (*catalog.ShowPage, error)
	ShowDetails(ctx context.Context, id int64, language, region string, appendTo ...string) (*catalog.Show, error)
}

// SettingsStore persists per-server settings.
type SettingsStore interface {
	game.Store
	UpdateSettings(ctx context.Context, serverID, language, region string) error
}

// Config holds the bot settings
type Config struct {
	Token      string
	DevGuildID string

	DefaultLanguage string
	DefaultRegion   string

	CleanupInterval time.Duration
	// CommandTimeout bounds the work done for one interaction.
	CommandTimeout time.Duration
}

// Bot is the Discord front end of the movie commands and the Framed game
type Bot struct {
	session    *discordgo.Session
	cfg        Config
	devGuildID string

	games   *game.Manager
	catalog MovieCatalog
	store   SettingsStore

	registeredCommands []*discordgo.ApplicationCommand

	stopOnce sync.Once
	stop     chan struct{}
}

// NewBot creates a new Discord bot
func NewBot(cfg Config, games *game.Manager, c MovieCatalog, store SettingsStore) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, err
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}
	if cfg.CommandTimeout <= 0 {
		cfg.CommandTimeout = 2 * time.Minute
	}

	bot := &Bot{
		session:    dg,
		cfg:        cfg,
		devGuildID: cfg.DevGuildID,
		games:      games,
		catalog:    c,
		store:      store,
		stop:       make(chan struct{}),
	}

	dg.AddHandler(bot.handleInteractionCreate)
	dg.AddHandler(bot.handleApplicationCommand)
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		if s != nil && s.State != nil && s.State.User != nil {
			utils.InfoLog("Discord ready: %s (%s) in %d guilds", s.State.User.Username, s.State.User.ID, len(r.Guilds))
		} else {
			utils.InfoLog("Discord ready: session state not populated yet")
		}
	})

	// slash commands only, no message content needed
	dg.Identify.Intents = discordgo.IntentGuilds

	return bot, nil
}

// Start opens the gateway, registers the commands and starts the cleanup loop
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return err
	}

	scope := "global"
	if b.devGuildID != "" {
		scope = "guild"
	}
	utils.InfoLog("Slash commands: registering %s-scoped commands", scope)
	if err := b.cleanupExistingCommands(); err != nil {
		utils.WarnLog("Failed to cleanup existing commands: %v", err)
	}
	if err := b.registerSlashCommands(); err != nil {
		utils.ErrorLog("Failed to register slash commands: %v", err)
	}
	if b.devGuildID == "" {
		utils.WarnLog("Slash commands registered globally; this can take up to 1 hour to appear. Set discord-dev-guild-id to register instantly in a guild during development.")
	}

	go b.cleanupRoutine()
	return nil
}

// Stop stops the Discord bot
func (b *Bot) Stop() {
	utils.InfoLog("Stopping Discord bot")
	b.stopOnce.Do(func() { close(b.stop) })
	if err := b.unregisterSlashCommands(); err != nil {
		utils.WarnLog("Failed to unregister slash commands: %v", err)
	}
	b.session.Close()
}

// cleanupRoutine periodically ends idle games
func (b *Bot) cleanupRoutine() {
	ticker := time.NewTicker(b.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stop:
			return
		case now := <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), b.cfg.CommandTimeout)
			b.games.ExpireIdle(ctx, now)
			cancel()
		}
	}
}

// interactionContext bounds the handling of one interaction.
func (b *Bot) interactionContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), b.cfg.CommandTimeout)
}
