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

	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/popcorn/pkg/types"
)

// responder is the subset of *discordgo.Session used to answer interactions.
type responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// interactionSurface renders game snapshots as the response to one
// interaction. The first render answers the interaction, later ones edit
// that answer.
type interactionSurface struct {
	api         responder
	interaction *discordgo.Interaction
	ephemeral   bool
	// inPlace answers by updating the message holding the component.
	inPlace bool

	mu    sync.Mutex
	acked bool
}

func newCommandSurface(api responder, i *discordgo.Interaction, ephemeral bool) *interactionSurface {
	return &interactionSurface{api: api, interaction: i, ephemeral: ephemeral}
}

func newComponentSurface(api responder, i *discordgo.Interaction) *interactionSurface {
	return &interactionSurface{api: api, interaction: i, inPlace: true}
}

// deferReply acknowledges a command before slow work. Renders then edit
// the placeholder.
func (s *interactionSurface) deferReply(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.acked {
		return nil
	}

	resp := &discordgo.InteractionResponse{Type: discordgo.InteractionResponseDeferredChannelMessageWithSource}
	if s.ephemeral {
		resp.Data = &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral}
	}
	if err := s.api.InteractionRespond(s.interaction, resp, discordgo.WithContext(ctx)); err != nil {
		return err
	}
	s.acked = true
	return nil
}

// acknowledge answers a component event without changing the message.
func (s *interactionSurface) acknowledge(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.acked {
		return nil
	}
	s.acked = true
	return s.api.InteractionRespond(s.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}, discordgo.WithContext(ctx))
}

// Render replaces the whole message with ui.
func (s *interactionSurface) Render(ctx context.Context, ui types.UIUpdate) error {
	return s.send(ctx, []*discordgo.MessageEmbed{toEmbed(ui)}, toComponents(ui.Menu))
}

func (s *interactionSurface) send(ctx context.Context, embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.acked {
		_, err := s.api.InteractionResponseEdit(s.interaction, &discordgo.WebhookEdit{
			Embeds:     &embeds,
			Components: &components,
		}, discordgo.WithContext(ctx))
		return err
	}

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: embeds, Components: components},
	}
	if s.inPlace {
		resp.Type = discordgo.InteractionResponseUpdateMessage
	} else if s.ephemeral {
		resp.Data.Flags = discordgo.MessageFlagsEphemeral
	}
	if err := s.api.InteractionRespond(s.interaction, resp, discordgo.WithContext(ctx)); err != nil {
		return err
	}
	s.acked = true
	return nil
}

// toEmbed converts a snapshot to an embed. An empty image URL leaves the
// embed without image.
func toEmbed(ui types.UIUpdate) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       ui.Title,
		Description: ui.Description,
		Color:       ui.Color,
	}
	if ui.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: ui.ImageURL}
	}
	if len(ui.Fields) > 0 {
		embed.Fields = make([]*discordgo.MessageEmbedField, 0, len(ui.Fields))
		for _, f := range ui.Fields {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
		}
	}
	return embed
}

// toComponents builds the action rows of a menu. A nil menu yields an empty,
// non-nil list so edits remove existing components.
func toComponents(menu *types.UIMenu) []discordgo.MessageComponent {
	if menu == nil {
		return []discordgo.MessageComponent{}
	}

	one := 1
	options := make([]discordgo.SelectMenuOption, 0, len(menu.Options))
	for _, label := range menu.Options {
		options = append(options, discordgo.SelectMenuOption{Label: label, Value: label})
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    menu.CustomID,
				Placeholder: menu.Placeholder,
				MinValues:   &one,
				MaxValues:   1,
				Options:     options,
				Disabled:    menu.Disabled,
			},
		}},
	}
}
