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

package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/lucasduport/popcorn/pkg/utils"
)

// Small total accessors over raw catalog payloads. Absent, null or mistyped
// values come back as the zero value.

func str(data []byte, keys ...string) string {
	v, err := jsonparser.GetString(data, keys...)
	if err != nil {
		return ""
	}
	return v
}

func integer(data []byte, keys ...string) int64 {
	v, err := jsonparser.GetInt(data, keys...)
	if err != nil {
		return 0
	}
	return v
}

func float(data []byte, keys ...string) float64 {
	v, err := jsonparser.GetFloat(data, keys...)
	if err != nil {
		return 0
	}
	return v
}

// date parses a YYYY-MM-DD field; anything else yields the zero time.
func date(data []byte, keys ...string) time.Time {
	s := str(data, keys...)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// names collects the "name" attribute of every object in the array at keys.
func names(data []byte, keys ...string) []string {
	return pluck(data, "name", keys...)
}

func pluck(data []byte, attr string, keys ...string) []string {
	var out []string
	_, _ = jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if err != nil || dataType != jsonparser.Object {
			return
		}
		if n := str(value, attr); n != "" {
			out = append(out, n)
		}
	}, keys...)
	return out
}

func arrayLen(data []byte, keys ...string) int {
	n := 0
	_, _ = jsonparser.ArrayEach(data, func([]byte, jsonparser.ValueType, int, error) { n++ }, keys...)
	return n
}

// hasID reports whether the payload carries a numeric "id".
func hasID(data []byte) bool {
	_, dataType, _, err := jsonparser.Get(data, "id")
	return err == nil && dataType == jsonparser.Number
}

// trailerKey returns the first YouTube video key, preferring trailers.
func trailerKey(data []byte) string {
	var first, trailer string
	_, _ = jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if err != nil || dataType != jsonparser.Object {
			return
		}
		key := str(value, "key")
		if key == "" {
			return
		}
		if site := str(value, "site"); site != "" && !strings.EqualFold(site, "YouTube") {
			return
		}
		if first == "" {
			first = key
		}
		if trailer == "" && strings.EqualFold(str(value, "type"), "Trailer") {
			trailer = key
		}
	}, "videos", "results")
	if trailer != "" {
		return trailer
	}
	return first
}

// flatrateProviders maps region code to subscription provider names.
func flatrateProviders(data []byte) map[string][]string {
	out := make(map[string][]string)
	_ = jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		if dataType != jsonparser.Object {
			return nil
		}
		if providers := pluck(value, "provider_name", "flatrate"); len(providers) > 0 {
			out[strings.ToUpper(string(key))] = providers
		}
		return nil
	}, "watch/providers", "results")
	return out
}

func imageURL(base, path string) string {
	if path == "" {
		return ""
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

func watchOn(providers map[string][]string, region, mediaType, traktID string) []string {
	names := providers[strings.ToUpper(region)]
	out := make([]string, 0, len(names))
	for _, name := range names {
		if traktID == "" {
			out = append(out, name)
			continue
		}
		out = append(out, fmt.Sprintf("[%s](%s)", name, utils.WatchProviderURL(name, mediaType, traktID, region)))
	}
	return out
}
