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
	"github.com/lucasduport/popcorn/pkg/game"
	"github.com/lucasduport/popcorn/pkg/utils"
)

// Dependencies are the services the bot talks to
type Dependencies struct {
	Games   *game.Manager
	Catalog MovieCatalog
	Store   SettingsStore
}

// Integration manages the Discord bot lifecycle
type Integration struct {
	Bot         *Bot
	Enabled     bool
	initialized bool
}

// NewIntegration creates the bot. Without a token the integration is
// disabled and Start/Stop are no-ops.
func NewIntegration(cfg Config, deps Dependencies) (*Integration, error) {
	utils.InfoLog("Initializing Discord integration")

	if cfg.Token == "" {
		utils.WarnLog("Discord bot token not provided - bot functionality disabled")
		return &Integration{Enabled: false}, nil
	}

	bot, err := NewBot(cfg, deps.Games, deps.Catalog, deps.Store)
	if err != nil {
		utils.ErrorLog("Failed to initialize Discord bot: %v", err)
		return nil, err
	}
	utils.InfoLog("Discord bot initialized")

	return &Integration{Bot: bot, Enabled: true, initialized: true}, nil
}

// Start starts the Discord integration components
func (i *Integration) Start() error {
	if !i.Enabled || !i.initialized {
		return nil
	}
	utils.InfoLog("Starting Discord bot")
	if err := i.Bot.Start(); err != nil {
		utils.ErrorLog("Failed to start Discord bot: %v", err)
		return err
	}
	return nil
}

// Stop stops the Discord integration components
func (i *Integration) Stop() {
	if !i.Enabled || !i.initialized {
		return
	}
	i.Bot.Stop()
}
