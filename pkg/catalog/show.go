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
	"time"
)

// Show is a read-only view over one catalog TV show payload.
type Show struct {
	ID             int64
	Name           string
	OriginalName   string
	Overview       string
	Homepage       string
	Status         string
	FirstAirDate   time.Time
	LastAirDate    time.Time
	Seasons        int
	Episodes       int
	EpisodeRuntime int
	VoteAverage    float64
	VoteCount      int
	Genres         []string
	Networks       []string
	Creators       []string
	IMDbID         string
	TraktID        string
	BackdropPath   string
	TrailerKey     string
	HasCast        bool
	HasCrew        bool

	HasRecommendations bool

	providers    map[string][]string
	imageBaseURL string
}

// ParseShow builds a Show from a raw catalog JSON payload.
func ParseShow(raw []byte, imageBaseURL string) (*Show, error) {
	if !hasID(raw) {
		return nil, ErrMalformedRecord
	}
	if imageBaseURL == "" {
		imageBaseURL = DefaultImageBaseURL
	}

	s := &Show{
		ID:                 integer(raw, "id"),
		Name:               str(raw, "name"),
		OriginalName:       str(raw, "original_name"),
		Overview:           str(raw, "overview"),
		Homepage:           str(raw, "homepage"),
		Status:             str(raw, "status"),
		FirstAirDate:       date(raw, "first_air_date"),
		LastAirDate:        date(raw, "last_air_date"),
		Seasons:            int(integer(raw, "number_of_seasons")),
		Episodes:           int(integer(raw, "number_of_episodes")),
		EpisodeRuntime:     int(integer(raw, "episode_run_time", "[0]")),
		VoteAverage:        float(raw, "vote_average"),
		VoteCount:          int(integer(raw, "vote_count")),
		Genres:             names(raw, "genres"),
		Networks:           names(raw, "networks"),
		Creators:           names(raw, "created_by"),
		IMDbID:             str(raw, "external_ids", "imdb_id"),
		TraktID:            str(raw, "external_ids", "trakt_id"),
		BackdropPath:       str(raw, "backdrop_path"),
		TrailerKey:         trailerKey(raw),
		HasCast:            arrayLen(raw, "credits", "cast") > 0,
		HasCrew:            arrayLen(raw, "credits", "crew") > 0,
		HasRecommendations: arrayLen(raw, "recommendations", "results") > 0,
		providers:          flatrateProviders(raw),
		imageBaseURL:       imageBaseURL,
	}
	if s.TraktID == "" {
		if id := integer(raw, "external_ids", "trakt"); id > 0 {
			s.TraktID = fmt.Sprint(id)
		}
	}
	return s, nil
}

// Title returns the localized name, falling back to the original one.
func (s *Show) Title() string {
	if s.Name != "" {
		return s.Name
	}
	return s.OriginalName
}

// TitleAndYear labels the show with its first air year, same bounds as movies.
func (s *Show) TitleAndYear() string {
	return titleAndYear(s.Title(), s.FirstAirDate)
}

// Image is the main backdrop URL, or "" when absent.
func (s *Show) Image() string {
	return imageURL(s.imageBaseURL, s.BackdropPath)
}

// IMDbURL links to the IMDb title page, or "" without an IMDb id.
func (s *Show) IMDbURL() string {
	if s.IMDbID == "" {
		return ""
	}
	return "https://www.imdb.com/title/" + s.IMDbID
}

// TrailerURL links to the YouTube trailer, or "" without one.
func (s *Show) TrailerURL() string {
	if s.TrailerKey == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + s.TrailerKey
}

// WatchOn lists subscription providers in region, linked through Trakt when possible.
func (s *Show) WatchOn(region string) []string {
	return watchOn(s.providers, region, "show", s.TraktID)
}
