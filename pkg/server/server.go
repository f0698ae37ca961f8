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
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lucasduport/popcorn/pkg/types"
	"github.com/lucasduport/popcorn/pkg/utils"
)

// GameLister reports running games.
type GameLister interface {
	ActiveGames() []types.GameSummary
}

// ServerStore reads per-server settings.
type ServerStore interface {
	GetServer(ctx context.Context, serverID string) (*types.ServerSettings, error)
}

// Options configures the internal API
type Options struct {
	Port int
	// APIKey guards every route. A random key is generated when empty.
	APIKey string
}

// Server is the internal status API
type Server struct {
	port    int
	apiKey  string
	games   GameLister
	store   ServerStore
	started time.Time

	httpServer *http.Server
}

// NewServer builds the API server. Either dependency may be nil; the
// matching routes then answer 503.
func NewServer(opts Options, games GameLister, store ServerStore) *Server {
	key := opts.APIKey
	if key == "" {
		key = uuid.New().String()
		utils.InfoLog("Generated new internal API key: %s", key)
	} else {
		utils.InfoLog("Using configured internal API key %s", utils.MaskString(key))
	}

	return &Server{
		port:    opts.Port,
		apiKey:  key,
		games:   games,
		store:   store,
		started: time.Now(),
	}
}

// APIKey returns the key expected in the X-API-Key header.
func (s *Server) APIKey() string {
	return s.apiKey
}

// Router builds the gin engine with every route.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), cors.Default())
	s.setupInternalAPI(router)
	return router
}

// Serve listens until Shutdown is called.
func (s *Server) Serve() error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	utils.InfoLog("[popcorn] Internal API listening on :%d", s.port)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the listener gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	utils.InfoLog("Stopping internal API")
	return s.httpServer.Shutdown(ctx)
}
