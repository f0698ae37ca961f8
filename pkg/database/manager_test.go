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
	"errors"
	"testing"
)

func TestNilManagerIsSafe(t *testing.T) {
	var m *DBManager
	ctx := context.Background()

	if m.IsInitialized() {
		t.Fatal("nil manager reported as initialized")
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close on nil manager: %v", err)
	}
	if _, err := m.GetServer(ctx, "1"); !errors.Is(err, errNotInitialized) {
		t.Errorf("GetServer: expected errNotInitialized, got %v", err)
	}
	if _, err := m.GetOrCreateServer(ctx, "1", "en-US", "US"); !errors.Is(err, errNotInitialized) {
		t.Errorf("GetOrCreateServer: expected errNotInitialized, got %v", err)
	}
	if err := m.UpdateSettings(ctx, "1", "en-US", "US"); !errors.Is(err, errNotInitialized) {
		t.Errorf("UpdateSettings: expected errNotInitialized, got %v", err)
	}
	if err := m.SetHighScore(ctx, "1", 3); !errors.Is(err, errNotInitialized) {
		t.Errorf("SetHighScore: expected errNotInitialized, got %v", err)
	}
}

func TestConnString(t *testing.T) {
	cfg := Config{Host: "db", Port: 5433, Name: "popcorn", User: "bot", Password: "secret"}
	want := "host=db port=5433 dbname=popcorn user=bot password=secret sslmode=disable"
	if got := cfg.connString(); got != want {
		t.Errorf("connString() = %q, want %q", got, want)
	}
}
