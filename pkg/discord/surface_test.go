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
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/popcorn/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResponder struct {
	responses []*discordgo.InteractionResponse
	edits     []*discordgo.WebhookEdit
	err       error
}

func (f *fakeResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return f.err
}

func (f *fakeResponder) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.edits = append(f.edits, edit)
	return &discordgo.Message{}, f.err
}

func roundUpdate(disabled bool) types.UIUpdate {
	return types.UIUpdate{
		Title:    "Framed",
		ImageURL: "https://img.test/a.jpg",
		Color:    0x5BC0DE,
		Fields:   []types.UIField{{Name: "Score", Value: "0", Inline: true}},
		Menu: &types.UIMenu{
			CustomID:    "framed:s:1",
			Placeholder: "Which movie?",
			Disabled:    disabled,
			Options:     []string{"A (2001)", "B (2002)"},
		},
	}
}

func selectMenu(t *testing.T, components []discordgo.MessageComponent) discordgo.SelectMenu {
	t.Helper()
	require.Len(t, components, 1)
	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 1)
	menu, ok := row.Components[0].(discordgo.SelectMenu)
	require.True(t, ok)
	return menu
}

func TestCommandSurfaceDefersThenEdits(t *testing.T) {
	ctx := context.Background()
	api := &fakeResponder{}
	s := newCommandSurface(api, &discordgo.Interaction{}, true)

	require.NoError(t, s.deferReply(ctx))
	require.Len(t, api.responses, 1)
	assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, api.responses[0].Type)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, api.responses[0].Data.Flags)

	require.NoError(t, s.Render(ctx, roundUpdate(false)))
	require.Len(t, api.edits, 1)
	assert.Len(t, api.responses, 1)

	embeds := *api.edits[0].Embeds
	require.Len(t, embeds, 1)
	assert.Equal(t, "https://img.test/a.jpg", embeds[0].Image.URL)
	assert.Equal(t, "Score", embeds[0].Fields[0].Name)

	menu := selectMenu(t, *api.edits[0].Components)
	assert.Equal(t, "framed:s:1", menu.CustomID)
	assert.False(t, menu.Disabled)
	assert.Equal(t, 1, *menu.MinValues)
	assert.Equal(t, 1, menu.MaxValues)
	assert.Equal(t, "B (2002)", menu.Options[1].Label)
	assert.Equal(t, "B (2002)", menu.Options[1].Value)
}

func TestComponentSurfaceUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	api := &fakeResponder{}
	s := newComponentSurface(api, &discordgo.Interaction{})

	require.NoError(t, s.Render(ctx, roundUpdate(true)))
	require.Len(t, api.responses, 1)
	assert.Equal(t, discordgo.InteractionResponseUpdateMessage, api.responses[0].Type)
	assert.True(t, selectMenu(t, api.responses[0].Data.Components).Disabled)

	final := types.UIUpdate{Title: "Game over", Description: "🏆 <@1> (**1** points)"}
	require.NoError(t, s.Render(ctx, final))
	require.Len(t, api.edits, 1)
	embeds := *api.edits[0].Embeds
	assert.Nil(t, embeds[0].Image)
	require.NotNil(t, api.edits[0].Components)
	assert.Empty(t, *api.edits[0].Components, "a nil menu must clear components")

	require.NoError(t, s.acknowledge(ctx))
	assert.Len(t, api.responses, 1, "acknowledge after a render sends nothing")
}

func TestComponentSurfaceAcknowledgesStaleEvents(t *testing.T) {
	api := &fakeResponder{}
	s := newComponentSurface(api, &discordgo.Interaction{})

	require.NoError(t, s.acknowledge(context.Background()))
	require.Len(t, api.responses, 1)
	assert.Equal(t, discordgo.InteractionResponseDeferredMessageUpdate, api.responses[0].Type)
	assert.Nil(t, api.responses[0].Data)
}

func TestSurfaceRespondFailureAllowsRetry(t *testing.T) {
	api := &fakeResponder{err: errors.New("unknown interaction")}
	s := newCommandSurface(api, &discordgo.Interaction{}, false)

	assert.Error(t, s.Render(context.Background(), roundUpdate(false)))
	api.err = nil
	require.NoError(t, s.Render(context.Background(), roundUpdate(false)))
	assert.Len(t, api.responses, 2)
	assert.Empty(t, api.edits)
}
