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
	"iter"
	"time"

	"github.com/buger/jsonparser"
	"github.com/lucasduport/popcorn/pkg/utils"
)

// DefaultImageBaseURL is the image host used when none is configured.
const DefaultImageBaseURL = "https://image.tmdb.org/t/p/w1280"

const (
	titleYearLimit = 90
	titleLimit     = 100
)

// Movie is a read-only view over one catalog movie payload.
type Movie struct {
	ID            int64
	Name          string
	OriginalTitle string
	Overview      string
	Tagline       string
	Homepage      string
	Status        string
	ReleaseDate   time.Time
	Runtime       int
	VoteAverage   float64
	VoteCount     int
	Genres        []string
	Studios       []string
	Directors     []string
	IMDbID        string
	TraktID       string
	BackdropPath  string
	PosterPath    string
	TrailerKey    string
	HasCast       bool
	HasCrew       bool
	// HasRecommendations reports a non-empty "recommendations" list.
	HasRecommendations bool

	similar      []*Movie
	backdrops    []string
	providers    map[string][]string
	imageBaseURL string
}

// ParseMovie builds a Movie from a raw catalog JSON payload. Nested
// "similar" and "recommendations" results are parsed too; malformed nested
// entries are skipped. An empty imageBaseURL selects DefaultImageBaseURL.
func ParseMovie(raw []byte, imageBaseURL string) (*Movie, error) {
	if !hasID(raw) {
		return nil, ErrMalformedRecord
	}
	if imageBaseURL == "" {
		imageBaseURL = DefaultImageBaseURL
	}

	m := &Movie{
		ID:            integer(raw, "id"),
		Name:          str(raw, "title"),
		OriginalTitle: str(raw, "original_title"),
		Overview:      str(raw, "overview"),
		Tagline:       str(raw, "tagline"),
		Homepage:      str(raw, "homepage"),
		Status:        str(raw, "status"),
		ReleaseDate:   date(raw, "release_date"),
		Runtime:       int(integer(raw, "runtime")),
		VoteAverage:   float(raw, "vote_average"),
		VoteCount:     int(integer(raw, "vote_count")),
		Genres:        names(raw, "genres"),
		Studios:       names(raw, "production_companies"),
		IMDbID:        str(raw, "external_ids", "imdb_id"),
		TraktID:       str(raw, "external_ids", "trakt_id"),
		BackdropPath:  str(raw, "backdrop_path"),
		PosterPath:    str(raw, "poster_path"),
		TrailerKey:    trailerKey(raw),
		HasCast:       arrayLen(raw, "credits", "cast") > 0,
		HasCrew:       arrayLen(raw, "credits", "crew") > 0,
		backdrops:     pluck(raw, "file_path", "images", "backdrops"),
		providers:     flatrateProviders(raw),
		imageBaseURL:  imageBaseURL,
	}
	m.HasRecommendations = arrayLen(raw, "recommendations", "results") > 0
	if m.TraktID == "" {
		if id := integer(raw, "external_ids", "trakt"); id > 0 {
			m.TraktID = fmt.Sprint(id)
		}
	}

	_, _ = jsonparser.ArrayEach(raw, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if err != nil || dataType != jsonparser.Object {
			return
		}
		if str(value, "job") == "Director" {
			if n := str(value, "name"); n != "" {
				m.Directors = append(m.Directors, n)
			}
		}
	}, "credits", "crew")

	_, _ = jsonparser.ArrayEach(raw, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if err != nil || dataType != jsonparser.Object {
			return
		}
		similar, perr := ParseMovie(value, imageBaseURL)
		if perr != nil {
			utils.DebugLog("Catalog: skipping similar record of movie %d: %v", m.ID, perr)
			return
		}
		m.similar = append(m.similar, similar)
	}, "similar", "results")

	return m, nil
}

// Title returns the localized title, falling back to the original one.
func (m *Movie) Title() string {
	if m.Name != "" {
		return m.Name
	}
	return m.OriginalTitle
}

// HasReleaseDate reports whether the catalog provided a release date.
func (m *Movie) HasReleaseDate() bool {
	return !m.ReleaseDate.IsZero()
}

// TitleAndYear is the unique label of a movie in pickers:
// "{title[:90]} ({year})" when the release date is known, else title[:100].
func (m *Movie) TitleAndYear() string {
	return titleAndYear(m.Title(), m.ReleaseDate)
}

func titleAndYear(title string, released time.Time) string {
	if released.IsZero() {
		return utils.TruncateRunes(title, titleLimit)
	}
	return fmt.Sprintf("%s (%d)", utils.TruncateRunes(title, titleYearLimit), released.Year())
}

// Backdrops yields the full image URL of every backdrop, in catalog order.
// The sequence is empty when the payload carried no images and may be
// iterated any number of times.
func (m *Movie) Backdrops() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, path := range m.backdrops {
			if !yield(imageURL(m.imageBaseURL, path)) {
				return
			}
		}
	}
}

// Similar returns the nested similar records.
func (m *Movie) Similar() []*Movie {
	out := make([]*Movie, len(m.similar))
	copy(out, m.similar)
	return out
}

// Image is the main backdrop URL, or "" when absent.
func (m *Movie) Image() string {
	return imageURL(m.imageBaseURL, m.BackdropPath)
}

// Poster is the poster URL, or "" when absent.
func (m *Movie) Poster() string {
	return imageURL(m.imageBaseURL, m.PosterPath)
}

// IMDbURL links to the IMDb title page, or "" without an IMDb id.
func (m *Movie) IMDbURL() string {
	if m.IMDbID == "" {
		return ""
	}
	return "https://www.imdb.com/title/" + m.IMDbID
}

// TrailerURL links to the YouTube trailer, or "" without one.
func (m *Movie) TrailerURL() string {
	if m.TrailerKey == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + m.TrailerKey
}

// WatchOn lists subscription providers in region. With a Trakt id each entry
// is a markdown link to the provider's Trakt "watch now" page.
func (m *Movie) WatchOn(region string) []string {
	return watchOn(m.providers, region, "movie", m.TraktID)
}
