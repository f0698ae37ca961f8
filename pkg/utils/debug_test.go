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


package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveRawResponse(t *testing.T) {
	oldDir, oldDebug := DumpDir, Config.DebugLoggingEnabled
	defer func() { DumpDir, Config.DebugLoggingEnabled = oldDir, oldDebug }()

	DumpDir = t.TempDir()

	Config.DebugLoggingEnabled = false
	if got := SaveRawResponse("movie/603", []byte(`{}`)); got != "" {
		t.Fatalf("expected no dump with debug disabled, got %s", got)
	}

	Config.DebugLoggingEnabled = true
	path := SaveRawResponse("movie/603?language=en-US", []byte(`{"id":603}`))
	if path == "" {
		t.Fatal("expected a dump file")
	}
	if filepath.Dir(path) != DumpDir {
		t.Errorf("dump written outside DumpDir: %s", path)
	}
	if !strings.HasSuffix(path, "movie_603_language-en-US.json") {
		t.Errorf("unexpected file name %s", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	if string(data) != `{"id":603}` {
		t.Errorf("dump content = %s", data)
	}
}

func TestPrettyPrintJSON(t *testing.T) {
	if got := PrettyPrintJSON(nil); got != "null" {
		t.Errorf("PrettyPrintJSON(nil) = %s", got)
	}
	want := "{\n  \"a\": 1\n}"
	if got := PrettyPrintJSON(map[string]int{"a": 1}); got != want {
		t.Errorf("PrettyPrintJSON() = %q, want %q", got, want)
	}
}
