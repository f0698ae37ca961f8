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


// Package config assembles the bot configuration from viper keys.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// DiscordConfig holds the chat platform settings
type DiscordConfig struct {
	Token      string
	DevGuildID string
}

// CatalogConfig holds the movie catalog settings
type CatalogConfig struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	RedisURL     string
	CacheTTL     time.Duration
}

// DatabaseConfig holds the PostgreSQL settings
type DatabaseConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
}

// APIConfig holds the internal API settings
type APIConfig struct {
	Enabled bool
	Port    int
	Key     string
}

// GameConfig tunes the Framed game
type GameConfig struct {
	Candidates   int
	MaxAttempts  int
	RetryBackoff time.Duration
	RevealDelay  time.Duration
	IdleTimeout  time.Duration
}

// LogConfig holds the logging settings
type LogConfig struct {
	Debug bool
	Level string
	File  string
}

// BotConfig is the whole process configuration
type BotConfig struct {
	Discord  DiscordConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	API      APIConfig
	Game     GameConfig
	Log      LogConfig

	DefaultLanguage string
	DefaultRegion   string
}

// FromViper reads every key from v and validates the result.
func FromViper(v *viper.Viper) (*BotConfig, error) {
	cfg := &BotConfig{
		Discord: DiscordConfig{
			Token:      v.GetString("discord-token"),
			DevGuildID: v.GetString("discord-dev-guild-id"),
		},
		Catalog: CatalogConfig{
			APIKey:       v.GetString("tmdb-api-key"),
			BaseURL:      v.GetString("tmdb-base-url"),
			ImageBaseURL: v.GetString("tmdb-image-base-url"),
			RedisURL:     v.GetString("redis-url"),
			CacheTTL:     v.GetDuration("catalog-cache-ttl"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("db-host"),
			Port:     v.GetInt("db-port"),
			Name:     v.GetString("db-name"),
			User:     v.GetString("db-user"),
			Password: v.GetString("db-password"),
		},
		API: APIConfig{
			Enabled: v.GetBool("api-enabled"),
			Port:    v.GetInt("api-port"),
			Key:     v.GetString("internal-api-key"),
		},
		Game: GameConfig{
			Candidates:   v.GetInt("game-candidates"),
			MaxAttempts:  v.GetInt("game-max-attempts"),
			RetryBackoff: v.GetDuration("game-retry-backoff"),
			RevealDelay:  v.GetDuration("game-reveal-delay"),
			IdleTimeout:  v.GetDuration("game-idle-timeout"),
		},
		Log: LogConfig{
			Debug: v.GetBool("debug-logging"),
			Level: v.GetString("log-level"),
			File:  v.GetString("log-file"),
		},
		DefaultLanguage: v.GetString("default-language"),
		DefaultRegion:   v.GetString("default-region"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every missing or out-of-range setting at once.
func (c *BotConfig) Validate() error {
	var errs []error
	if c.Catalog.APIKey == "" {
		errs = append(errs, errors.New("tmdb-api-key is required"))
	}
	if c.Database.Host == "" {
		errs = append(errs, errors.New("db-host is required"))
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		errs = append(errs, fmt.Errorf("db-port %d is out of range", c.Database.Port))
	}
	if c.API.Enabled && (c.API.Port <= 0 || c.API.Port > 65535) {
		errs = append(errs, fmt.Errorf("api-port %d is out of range", c.API.Port))
	}
	if c.Game.Candidates < 1 || c.Game.Candidates > 24 {
		errs = append(errs, fmt.Errorf("game-candidates %d must be between 1 and 24", c.Game.Candidates))
	}
	if c.Game.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("game-max-attempts %d must be positive", c.Game.MaxAttempts))
	}
	if c.Game.RetryBackoff < 0 || c.Game.RevealDelay < 0 {
		errs = append(errs, errors.New("game delays cannot be negative"))
	}
	return errors.Join(errs...)
}

// Redacted returns a copy safe to log.
func (c BotConfig) Redacted() BotConfig {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return "***"
	}
	c.Discord.Token = mask(c.Discord.Token)
	c.Catalog.APIKey = mask(c.Catalog.APIKey)
	c.Database.Password = mask(c.Database.Password)
	c.API.Key = mask(c.API.Key)
	return c
}
