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
	"fmt"

	"github.com/lucasduport/popcorn/pkg/utils"
)

// initSchema creates database tables if they don't exist
func (m *DBManager) initSchema() error {
	utils.InfoLog("Database: Initializing schema")

	if m == nil || m.db == nil {
		return errNotInitialized
	}

	if _, err := m.db.Exec(`
		CREATE TABLE IF NOT EXISTS servers (
			id TEXT PRIMARY KEY,
			language TEXT NOT NULL,
			region TEXT NOT NULL,
			frame_high_score INTEGER NOT NULL DEFAULT 0 CHECK (frame_high_score >= 0),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		utils.ErrorLog("Database: Failed to create servers table: %v", err)
		return fmt.Errorf("failed to create servers table: %w", err)
	}

	utils.InfoLog("Database: Schema initialized successfully")
	return nil
}
