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

package types

import "time"

// ServerSettings is the persisted record for one chat server (guild).
type ServerSettings struct {
	ServerID  string    `json:"server_id"`
	Language  string    `json:"language"`
	Region    string    `json:"region"`
	HighScore int       `json:"high_score"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// UIField is one name/value pair rendered inside an embed.
type UIField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// UIMenu is a single-choice dropdown. Options are labels; each label is also
// the value submitted back when picked.
type UIMenu struct {
	CustomID    string   `json:"custom_id"`
	Placeholder string   `json:"placeholder"`
	Disabled    bool     `json:"disabled"`
	Options     []string `json:"options"`
}

// UIUpdate is a full replacement snapshot of one game message. A nil Menu
// removes any component; an empty ImageURL removes the image.
type UIUpdate struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Color       int       `json:"color"`
	Fields      []UIField `json:"fields,omitempty"`
	Menu        *UIMenu   `json:"menu,omitempty"`
}

// GameSummary describes an active game for status reporting.
type GameSummary struct {
	SessionID   string    `json:"session_id"`
	ServerID    string    `json:"server_id"`
	ComponentID string    `json:"component_id"`
	Round       int       `json:"round"`
	Score       int       `json:"score"`
	Leader      string    `json:"leader,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	LastActive  time.Time `json:"last_active"`
}

// APIResponse is a standardized API response structure
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
