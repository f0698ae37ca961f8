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


package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lucasduport/popcorn/pkg/types"
	"github.com/lucasduport/popcorn/pkg/utils"
)

// ErrServerNotFound is returned when no settings row exists for a server
var ErrServerNotFound = errors.New("server not found")

const selectServer = `
	SELECT id, language, region, frame_high_score, updated_at
	FROM servers WHERE id = $1
`

// GetServer returns the stored settings of a server
func (m *DBManager) GetServer(ctx context.Context, serverID string) (*types.ServerSettings, error) {
	if !m.IsInitialized() {
		return nil, errNotInitialized
	}

	var s types.ServerSettings
	err := m.db.QueryRowContext(ctx, selectServer, serverID).
		Scan(&s.ServerID, &s.Language, &s.Region, &s.HighScore, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrServerNotFound, serverID)
	}
	if err != nil {
		utils.ErrorLog("Database: Failed to read server %s: %v", serverID, err)
		return nil, fmt.Errorf("failed to read server %s: %w", serverID, err)
	}
	return &s, nil
}

// GetOrCreateServer returns the settings of a server, inserting the given
// defaults the first time the server is seen.
func (m *DBManager) GetOrCreateServer(ctx context.Context, serverID, language, region string) (*types.ServerSettings, error) {
	if !m.IsInitialized() {
		return nil, errNotInitialized
	}

	if _, err := m.db.ExecContext(ctx, `
		INSERT INTO servers (id, language, region)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`, serverID, language, region); err != nil {
		utils.ErrorLog("Database: Failed to create server %s: %v", serverID, err)
		return nil, fmt.Errorf("failed to create server %s: %w", serverID, err)
	}
	return m.GetServer(ctx, serverID)
}

// UpdateSettings stores the language and region of a server
func (m *DBManager) UpdateSettings(ctx context.Context, serverID, language, region string) error {
	utils.DebugLog("Database: Updating settings of server %s to %s/%s", serverID, language, region)
	if !m.IsInitialized() {
		return errNotInitialized
	}

	_, err := m.db.ExecContext(ctx, `
		INSERT INTO servers (id, language, region)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
		  language = EXCLUDED.language,
		  region = EXCLUDED.region,
		  updated_at = CURRENT_TIMESTAMP
	`, serverID, language, region)
	if err != nil {
		utils.ErrorLog("Database: Failed to update settings of server %s: %v", serverID, err)
		return fmt.Errorf("failed to update settings of server %s: %w", serverID, err)
	}
	return nil
}

// SetHighScore stores score as the server's Framed record. Lower scores
// never replace a higher stored one.
func (m *DBManager) SetHighScore(ctx context.Context, serverID string, score int) error {
	if !m.IsInitialized() {
		return errNotInitialized
	}
	if score < 0 {
		return fmt.Errorf("invalid high score %d", score)
	}

	res, err := m.db.ExecContext(ctx, `
		UPDATE servers
		SET frame_high_score = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND frame_high_score < $2
	`, serverID, score)
	if err != nil {
		utils.ErrorLog("Database: Failed to save high score for server %s: %v", serverID, err)
		return fmt.Errorf("failed to save high score for server %s: %w", serverID, err)
	}

	if n, _ := res.RowsAffected(); n > 0 {
		utils.InfoLog("Database: New Framed record %d for server %s", score, serverID)
	}
	return nil
}
