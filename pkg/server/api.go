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
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lucasduport/popcorn/pkg/types"
	"github.com/lucasduport/popcorn/pkg/utils"
)

// setupInternalAPI configures the status routes
func (s *Server) setupInternalAPI(r *gin.Engine) {
	utils.InfoLog("Setting up internal API endpoints")

	api := r.Group("/api/internal")
	api.Use(s.apiKeyAuth())
	api.Use(func(ctx *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				utils.ErrorLog("API PANIC RECOVERED: %v\nStack trace: %s", err, debug.Stack())
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, types.APIResponse{
					Success: false,
					Error:   fmt.Sprintf("Internal server error: %v", err),
				})
			}
		}()
		ctx.Next()
	})

	api.GET("/ping", s.ping)
	api.GET("/games", s.listGames)
	api.GET("/servers/:id", s.getServer)
}

func (s *Server) ping(ctx *gin.Context) {
	utils.DebugLog("API ping received")
	ctx.JSON(http.StatusOK, types.APIResponse{
		Success: true,
		Message: "API is running",
		Data: map[string]interface{}{
			"time":         time.Now().UTC().Format(time.RFC3339),
			"uptime":       time.Since(s.started).Truncate(time.Second).String(),
			"db_connected": s.store != nil,
			"games_ready":  s.games != nil,
		},
	})
}
