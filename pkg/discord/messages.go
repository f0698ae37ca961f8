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
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/popcorn/pkg/utils"
)

// Common embed colors
const (
	colorInfo    = 0x5BC0DE // teal-ish
	colorSuccess = 0x28A745 // green
	colorWarn    = 0xFFC107 // amber
	colorError   = 0xDC3545 // red
)

// newEmbed builds a styled embed, skipping nil fields.
func newEmbed(color int, title, description string, fields ...*discordgo.MessageEmbedField) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if len(fields) > 0 {
		embed.Fields = make([]*discordgo.MessageEmbedField, 0, len(fields))
		for _, f := range fields {
			if f != nil {
				embed.Fields = append(embed.Fields, f)
			}
		}
	}
	return embed
}

// reply sends one embed through a surface, logging failures.
func reply(ctx context.Context, s *interactionSurface, embed *discordgo.MessageEmbed, components ...discordgo.MessageComponent) {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	if err := s.send(ctx, []*discordgo.MessageEmbed{embed}, components); err != nil {
		utils.ErrorLog("Discord: failed to send %q embed: %v", embed.Title, err)
	}
}

// Convenience wrappers with fixed color themes.
func success(ctx context.Context, s *interactionSurface, title, desc string, fields ...*discordgo.MessageEmbedField) {
	reply(ctx, s, newEmbed(colorSuccess, title, desc, fields...))
}

func warn(ctx context.Context, s *interactionSurface, title, desc string, fields ...*discordgo.MessageEmbedField) {
	reply(ctx, s, newEmbed(colorWarn, title, desc, fields...))
}

func fail(ctx context.Context, s *interactionSurface, title, desc string, fields ...*discordgo.MessageEmbedField) {
	reply(ctx, s, newEmbed(colorError, title, desc, fields...))
}
