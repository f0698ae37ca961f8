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
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/lucasduport/popcorn/pkg/utils"
)

// MovieList names a ranked movie listing.
type MovieList string

const (
	ListPopular  MovieList = "movie/popular"
	ListTopRated MovieList = "movie/top_rated"
	ListTrending MovieList = "trending/movie/week"
	ListUpcoming MovieList = "movie/upcoming"
)

// Config holds catalog client configuration
type Config struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	Timeout      time.Duration
	CacheTTL     time.Duration
	// MaxRandomPage bounds the discover page sampled by RandomMovie.
	MaxRandomPage int
}

// Client talks to a TMDb-compatible catalog API.
type Client struct {
	client        *http.Client
	apiKey        string
	baseURL       string
	imageBaseURL  string
	cache         Cache
	cacheTTL      time.Duration
	maxRandomPage int
}

// MoviePage is one page of movie results.
type MoviePage struct {
	Page         int
	TotalPages   int
	TotalResults int
	Results      []*Movie
}

// ShowPage is one page of TV show results.
type ShowPage struct {
	Page         int
	TotalPages   int
	TotalResults int
	Results      []*Show
}

// NewClient creates a catalog client. A nil cache disables response caching.
func NewClient(cfg Config, cache Cache) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.themoviedb.org/3"
	}
	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = DefaultImageBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 6 * time.Hour
	}
	if cfg.MaxRandomPage <= 0 {
		cfg.MaxRandomPage = 20
	}
	if cache == nil {
		cache = noCache{}
	}
	return &Client{
		client:        &http.Client{Timeout: cfg.Timeout},
		apiKey:        cfg.APIKey,
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		imageBaseURL:  cfg.ImageBaseURL,
		cache:         cache,
		cacheTTL:      cfg.CacheTTL,
		maxRandomPage: cfg.MaxRandomPage,
	}
}

// doRequest performs a GET against the catalog, serving from cache when possible.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("include_adult", "false")
	reqURL := c.baseURL + "/" + strings.TrimPrefix(endpoint, "/") + "?" + params.Encode()
	key := strings.TrimPrefix(endpoint, "/") + "?" + params.Encode()

	if body, ok, err := c.cache.Get(ctx, key); err != nil {
		utils.WarnLog("Catalog: cache read failed for %s: %v", key, err)
	} else if ok {
		utils.DebugLog("Catalog: cache hit %s", key)
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", endpoint, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("catalog API error: status %d, body: %s", resp.StatusCode, utils.TruncateRunes(string(body), 200))
	}

	utils.SaveRawResponse(key, body)
	if err := c.cache.Set(ctx, key, body, c.cacheTTL); err != nil {
		utils.WarnLog("Catalog: cache write failed for %s: %v", key, err)
	}
	return body, nil
}

func localeParams(language, region string) url.Values {
	params := url.Values{}
	if language != "" {
		params.Set("language", language)
	}
	if region != "" {
		params.Set("region", region)
		params.Set("watch_region", region)
	}
	return params
}

// MovieDetails fetches one movie, appending the named sub-resources
// (images, similar, credits, videos, external_ids, watch/providers, ...).
func (c *Client) MovieDetails(ctx context.Context, id int64, language, region string, appendTo ...string) (*Movie, error) {
	params := localeParams(language, region)
	if len(appendTo) > 0 {
		params.Set("append_to_response", strings.Join(appendTo, ","))
	}
	for _, a := range appendTo {
		if a == "images" {
			// backdrops are mostly untagged; keep those next to the localized ones
			params.Set("include_image_language", imageLanguages(language))
		}
	}
	body, err := c.doRequest(ctx, "movie/"+strconv.FormatInt(id, 10), params)
	if err != nil {
		return nil, err
	}
	return ParseMovie(body, c.imageBaseURL)
}

// RandomMovie samples a discover page and returns the full record of one of
// its movies, with images and similar movies appended.
func (c *Client) RandomMovie(ctx context.Context, language, region string) (*Movie, error) {
	page, err := c.DiscoverMovies(ctx, language, region, rand.IntN(c.maxRandomPage)+1)
	if err != nil {
		return nil, err
	}
	if len(page.Results) == 0 {
		return nil, ErrNoResults
	}
	pick := page.Results[rand.IntN(len(page.Results))]
	utils.DebugLog("Catalog: random pick %d %q from discover page %d", pick.ID, pick.Title(), page.Page)
	return c.MovieDetails(ctx, pick.ID, language, region, "images", "similar")
}

// DiscoverMovies lists popular movies for a language and region.
func (c *Client) DiscoverMovies(ctx context.Context, language, region string, page int) (*MoviePage, error) {
	params := localeParams(language, region)
	params.Set("sort_by", "popularity.desc")
	params.Set("vote_count.gte", "100")
	params.Set("page", strconv.Itoa(max(page, 1)))
	body, err := c.doRequest(ctx, "discover/movie", params)
	if err != nil {
		return nil, err
	}
	return c.parseMoviePage(body)
}

// SearchMovies runs a title search.
func (c *Client) SearchMovies(ctx context.Context, query, language, region string, page int) (*MoviePage, error) {
	params := localeParams(language, region)
	params.Set("query", query)
	params.Set("page", strconv.Itoa(max(page, 1)))
	body, err := c.doRequest(ctx, "search/movie", params)
	if err != nil {
		return nil, err
	}
	return c.parseMoviePage(body)
}

// ListMovies returns one page of a ranked listing.
func (c *Client) ListMovies(ctx context.Context, list MovieList, language, region string, page int) (*MoviePage, error) {
	params := localeParams(language, region)
	params.Set("page", strconv.Itoa(max(page, 1)))
	body, err := c.doRequest(ctx, string(list), params)
	if err != nil {
		return nil, err
	}
	return c.parseMoviePage(body)
}

// SearchShows runs a TV show search.
func (c *Client) SearchShows(ctx context.Context, query, language string, page int) (*ShowPage, error) {
	params := localeParams(language, "")
	params.Set("query", query)
	params.Set("page", strconv.Itoa(max(page, 1)))
	body, err := c.doRequest(ctx, "search/tv", params)
	if err != nil {
		return nil, err
	}

	out := &ShowPage{}
	out.Page, out.TotalPages, out.TotalResults = pageInfo(body)
	_, err = jsonparser.ArrayEach(body, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if err != nil || dataType != jsonparser.Object {
			return
		}
		if s, perr := ParseShow(value, c.imageBaseURL); perr == nil {
			out.Results = append(out.Results, s)
		}
	}, "results")
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return nil, fmt.Errorf("failed to parse show results: %w", err)
	}
	return out, nil
}

// ShowDetails fetches one TV show with the named sub-resources appended.
func (c *Client) ShowDetails(ctx context.Context, id int64, language, region string, appendTo ...string) (*Show, error) {
	params := localeParams(language, region)
	if len(appendTo) > 0 {
		params.Set("append_to_response", strings.Join(appendTo, ","))
	}
	body, err := c.doRequest(ctx, "tv/"+strconv.FormatInt(id, 10), params)
	if err != nil {
		return nil, err
	}
	return ParseShow(body, c.imageBaseURL)
}

func (c *Client) parseMoviePage(body []byte) (*MoviePage, error) {
	out := &MoviePage{}
	out.Page, out.TotalPages, out.TotalResults = pageInfo(body)
	_, err := jsonparser.ArrayEach(body, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if err != nil || dataType != jsonparser.Object {
			return
		}
		if m, perr := ParseMovie(value, c.imageBaseURL); perr == nil {
			out.Results = append(out.Results, m)
		}
	}, "results")
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return nil, fmt.Errorf("failed to parse movie results: %w", err)
	}
	return out, nil
}

func pageInfo(body []byte) (page, totalPages, totalResults int) {
	return int(integer(body, "page")), int(integer(body, "total_pages")), int(integer(body, "total_results"))
}

func imageLanguages(language string) string {
	if i := strings.IndexAny(language, "-_"); i > 0 {
		language = language[:i]
	}
	if language == "" {
		return "null"
	}
	return strings.ToLower(language) + ",null"
}
