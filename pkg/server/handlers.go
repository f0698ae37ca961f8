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


package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasduport/popcorn/pkg/database"
	"github.com/lucasduport/popcorn/pkg/types"
	"github.com/lucasduport/popcorn/pkg/utils"
)

// listGames returns every running Framed session
func (s *Server) listGames(ctx *gin.Context) {
	if s.games == nil {
		ctx.JSON(http.StatusServiceUnavailable, types.APIResponse{
			Success: false,
			Error:   "Game manager not initialized",
		})
		return
	}

	games := s.games.ActiveGames()
	utils.DebugLog("API: Found %d active games", len(games))
	ctx.JSON(http.StatusOK, types.APIResponse{
		Success: true,
		Data:    games,
	})
}

// getServer returns the settings and record of one server
func (s *Server) getServer(ctx *gin.Context) {
	serverID := ctx.Param("id")
	if s.store == nil {
		ctx.JSON(http.StatusServiceUnavailable, types.APIResponse{
			Success: false,
			Error:   "Database not initialized",
		})
		return
	}

	settings, err := s.store.GetServer(ctx.Request.Context(), serverID)
	if errors.Is(err, database.ErrServerNotFound) {
		ctx.JSON(http.StatusNotFound, types.APIResponse{
			Success: false,
			Error:   "Server not found",
		})
		return
	}
	if err != nil {
		utils.ErrorLog("API: Failed to read server %s: %v", serverID, err)
		ctx.JSON(http.StatusInternalServerError, types.APIResponse{
			Success: false,
			Error:   "Failed to read server",
		})
		return
	}

	ctx.JSON(http.StatusOK, types.APIResponse{
		Success: true,
		Data:    settings,
	})
}
