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


package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lucasduport/popcorn/pkg/catalog"
	"github.com/lucasduport/popcorn/pkg/config"
	"github.com/lucasduport/popcorn/pkg/database"
	"github.com/lucasduport/popcorn/pkg/discord"
	"github.com/lucasduport/popcorn/pkg/game"
	"github.com/lucasduport/popcorn/pkg/server"
	"github.com/lucasduport/popcorn/pkg/utils"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "popcorn",
	Short: "Discord bot for movie lookups and the Framed guessing game",
	Long: `popcorn is a Discord bot backed by a TMDb-compatible movie catalog.

It supports:
- /movie and /tv lookups with watch providers and trailers
- The Framed game: guess the movie from one of its frames
- Per-server language, region and high score
- An internal status API`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromViper(viper.GetViper())
		if err != nil {
			return utils.PrintErrorAndReturn(fmt.Errorf("invalid configuration: %w", err))
		}
		return run(cfg)
	},
	SilenceUsage: true,
}

func run(cfg *config.BotConfig) error {
	utils.SetDebug(cfg.Log.Debug)
	if cfg.Log.Level != "" {
		utils.SetLogLevel(cfg.Log.Level)
	}
	if cfg.Log.File != "" {
		if err := utils.SetLogFile(cfg.Log.File); err != nil {
			utils.WarnLog("Could not open log file %s: %v", cfg.Log.File, err)
		}
	}
	defer utils.Close()

	utils.InfoLog("[popcorn] Bot is starting...")
	utils.DebugLog("Configuration: %s", utils.PrettyPrintJSON(cfg.Redacted()))

	db, err := database.NewDBManager(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		Name:     cfg.Database.Name,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
	})
	if err != nil {
		return utils.PrintErrorAndReturn(err)
	}
	defer db.Close()

	var cache catalog.Cache
	if cfg.Catalog.RedisURL != "" {
		rc, err := catalog.NewRedisCache(cfg.Catalog.RedisURL)
		if err != nil {
			utils.WarnLog("Catalog: response cache disabled: %v", err)
		} else {
			defer rc.Close()
			cache = rc
		}
	}

	movies := catalog.NewClient(catalog.Config{
		APIKey:       cfg.Catalog.APIKey,
		BaseURL:      cfg.Catalog.BaseURL,
		ImageBaseURL: cfg.Catalog.ImageBaseURL,
		CacheTTL:     cfg.Catalog.CacheTTL,
	}, cache)

	games := game.NewManager(game.Config{
		Candidates:      cfg.Game.Candidates,
		MaxAttempts:     cfg.Game.MaxAttempts,
		RetryBackoff:    cfg.Game.RetryBackoff,
		RevealDelay:     cfg.Game.RevealDelay,
		IdleTimeout:     cfg.Game.IdleTimeout,
		DefaultLanguage: cfg.DefaultLanguage,
		DefaultRegion:   cfg.DefaultRegion,
	}, movies, db)

	bot, err := discord.NewIntegration(discord.Config{
		Token:           cfg.Discord.Token,
		DevGuildID:      cfg.Discord.DevGuildID,
		DefaultLanguage: cfg.DefaultLanguage,
		DefaultRegion:   cfg.DefaultRegion,
	}, discord.Dependencies{Games: games, Catalog: movies, Store: db})
	if err != nil {
		return utils.PrintErrorAndReturn(err)
	}
	if err := bot.Start(); err != nil {
		return utils.PrintErrorAndReturn(err)
	}
	defer bot.Stop()

	var api *server.Server
	serveErr := make(chan error, 1)
	if cfg.API.Enabled {
		api = server.NewServer(server.Options{Port: cfg.API.Port, APIKey: cfg.API.Key}, games, db)
		go func() {
			if err := api.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
		}()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		utils.InfoLog("[popcorn] Received %s, shutting down", sig)
	case err := <-serveErr:
		utils.ErrorLog("Internal API stopped: %v", err)
	}

	if api != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := api.Shutdown(ctx); err != nil {
			utils.WarnLog("Internal API shutdown: %v", err)
		}
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.popcorn.yaml)")

	// Discord
	rootCmd.Flags().String("discord-token", "", "Discord bot token")
	rootCmd.Flags().String("discord-dev-guild-id", "", "Register commands on this guild only")

	// Catalog
	rootCmd.Flags().String("tmdb-api-key", "", "TMDb API key")
	rootCmd.Flags().String("tmdb-base-url", "https://api.themoviedb.org/3", "TMDb API base URL")
	rootCmd.Flags().String("tmdb-image-base-url", catalog.DefaultImageBaseURL, "TMDb image base URL")
	rootCmd.Flags().String("redis-url", "", "Redis URL for the catalog response cache")
	rootCmd.Flags().Duration("catalog-cache-ttl", 6*time.Hour, "Catalog response cache TTL")
	rootCmd.Flags().String("default-language", "en-US", "Language used when a server has none")
	rootCmd.Flags().String("default-region", "US", "Region used when a server has none")

	// Database
	rootCmd.Flags().String("db-host", "localhost", "PostgreSQL host")
	rootCmd.Flags().Int("db-port", 5432, "PostgreSQL port")
	rootCmd.Flags().String("db-name", "popcorn", "PostgreSQL database")
	rootCmd.Flags().String("db-user", "popcorn", "PostgreSQL user")
	rootCmd.Flags().String("db-password", "", "PostgreSQL password")

	// Internal API
	rootCmd.Flags().Bool("api-enabled", true, "Serve the internal status API")
	rootCmd.Flags().Int("api-port", 8080, "Internal API listening port")
	rootCmd.Flags().String("internal-api-key", "", "Internal API key (generated when empty)")

	// Game
	defaults := game.DefaultConfig()
	rootCmd.Flags().Int("game-candidates", defaults.Candidates, "Similar movies offered next to the answer")
	rootCmd.Flags().Int("game-max-attempts", defaults.MaxAttempts, "Catalog fetch attempts per round")
	rootCmd.Flags().Duration("game-retry-backoff", defaults.RetryBackoff, "Backoff step between failed fetches")
	rootCmd.Flags().Duration("game-reveal-delay", defaults.RevealDelay, "Pause before a guess is revealed")
	rootCmd.Flags().Duration("game-idle-timeout", defaults.IdleTimeout, "End games idle for this long")

	// Logging
	rootCmd.Flags().Bool("debug-logging", false, "Enable debug logging")
	rootCmd.Flags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().String("log-file", "", "Also write logs to this file")

	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		utils.ErrorLog("Error binding PFlags to viper: %v", err)
		os.Exit(1)
	}
}

// initConfig reads in .env, config file and ENV variables if set
func initConfig() {
	if err := godotenv.Load(); err == nil {
		utils.DebugLog("Loaded environment from .env")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".popcorn")
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		utils.InfoLog("Using config file: %s", viper.ConfigFileUsed())
	}
}
