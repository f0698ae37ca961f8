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
	"testing"
	"time"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "shorter than limit", in: "Alien", n: 10, want: "Alien"},
		{name: "exact limit", in: "Alien", n: 5, want: "Alien"},
		{name: "cut ascii", in: "Aliens", n: 5, want: "Alien"},
		{name: "cut multibyte", in: "Amélie Poulain", n: 3, want: "Amé"},
		{name: "zero limit", in: "Alien", n: 0, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunes(tt.in, tt.n); got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, ""},
		{45, "45min"},
		{120, "2h"},
		{135, "2h 15min"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}, "02/01/2006"); got != "" {
		t.Errorf("FormatDate(zero) = %q, want empty", got)
	}
	d := time.Date(1999, time.March, 31, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d, "02/01/2006"); got != "31/03/1999" {
		t.Errorf("FormatDate() = %q, want 31/03/1999", got)
	}
}

func TestWatchProviderURL(t *testing.T) {
	got := WatchProviderURL("Amazon Prime Video", "movie", "481", "BR")
	want := "https://trakt.tv/watchnow/movie/481/1/br/amazon_prime_video"
	if got != want {
		t.Errorf("WatchProviderURL() = %q, want %q", got, want)
	}
}

func TestMaskString(t *testing.T) {
	if got := MaskString(""); got != "[empty]" {
		t.Errorf("MaskString(\"\") = %q", got)
	}
	if got := MaskString("abc"); got != "a******" {
		t.Errorf("MaskString(short) = %q", got)
	}
	if got := MaskString("0123456789abcdef"); got != "0123...cdef" {
		t.Errorf("MaskString(long) = %q", got)
	}
}
