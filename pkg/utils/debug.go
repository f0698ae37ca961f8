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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DumpDir is where SaveRawResponse writes payloads. Empty disables dumps.
var DumpDir = os.Getenv("DEBUG_DUMP_DIR")

// PrettyPrintJSON returns a nicely formatted JSON string for debugging
func PrettyPrintJSON(data interface{}) string {
	if data == nil {
		return "null"
	}

	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error marshaling JSON: %v", err)
	}

	return string(jsonBytes)
}

// SaveRawResponse writes a raw upstream payload to DumpDir when debug
// logging is on, and returns the file path ("" when nothing was written).
func SaveRawResponse(name string, data []byte) string {
	if !Config.DebugLoggingEnabled || DumpDir == "" {
		return ""
	}

	if err := os.MkdirAll(DumpDir, 0755); err != nil {
		ErrorLog("Failed to create debug directory: %v", err)
		return ""
	}

	clean := strings.NewReplacer("/", "_", "?", "_", "&", "_", "=", "-").Replace(name)
	if len(clean) > 100 {
		clean = clean[:100]
	}
	timestamp := time.Now().Format("20060102_150405.000")
	filename := filepath.Join(DumpDir, fmt.Sprintf("%s_%s.json", timestamp, clean))

	if err := os.WriteFile(filename, data, 0644); err != nil {
		ErrorLog("Failed to save debug data: %v", err)
		return ""
	}
	DebugLog("Response saved to file: %s", filename)
	return filename
}
