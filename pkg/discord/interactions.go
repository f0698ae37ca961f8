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
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/popcorn/pkg/game"
	"github.com/lucasduport/popcorn/pkg/utils"
)

// handleInteractionCreate processes component interactions (Framed menus).
func (b *Bot) handleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}
	data := i.MessageComponentData()
	if !strings.HasPrefix(data.CustomID, game.ComponentPrefix) {
		return
	}

	ctx, cancel := b.interactionContext()
	defer cancel()
	surface := newComponentSurface(s, i.Interaction)

	if len(data.Values) == 0 {
		_ = surface.acknowledge(ctx)
		return
	}

	err := b.games.HandleGuess(ctx, surface, data.CustomID, participant(i), data.Values[0])
	switch {
	case errors.Is(err, game.ErrNotFound):
		utils.DebugLog("Discord: dropping stale Framed event %s from %s", data.CustomID, interactionUserID(i))
	case err != nil:
		utils.ErrorLog("Discord: Framed guess on %s failed: %v", data.CustomID, err)
	}

	// answers the interaction when nothing was rendered
	if err := surface.acknowledge(ctx); err != nil {
		utils.WarnLog("Discord: failed to acknowledge %s: %v", data.CustomID, err)
	}
}
