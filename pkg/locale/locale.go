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

// Package locale resolves a server language code to the bot's display strings.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Strings holds every user-facing text for one language.
type Strings struct {
	Tag        string
	DateLayout string

	GameTitle       string
	GameEnded       string
	GamePlaceholder string
	GameFailed      string
	FieldScore      string
	FieldRecord     string
	FieldTopScorer  string
	Points          string

	Rating      string
	Votes       string
	Released    string
	WatchOn     string
	Runtime     string
	Genres      string
	Studios     string
	Seasons     string
	Episodes    string
	Networks    string
	Trailer     string
	NoResults   string
	ListTitle   string
	SearchError string

	SettingsSaved string
}

var english = Strings{
	Tag:        "en-US",
	DateLayout: "01/02/2006",

	GameTitle:       "🎞️ Framed: guess the movie!",
	GameEnded:       "🎬 Game over!",
	GamePlaceholder: "Which movie is this frame from?",
	GameFailed:      "Could not start the game right now, please try again later.",
	FieldScore:      "Score",
	FieldRecord:     "Record",
	FieldTopScorer:  "Top scorer",
	Points:          "points",

	Rating:      "Rating",
	Votes:       "votes",
	Released:    "Released",
	WatchOn:     "Watch on",
	Runtime:     "Runtime",
	Genres:      "Genres",
	Studios:     "Studios",
	Seasons:     "Seasons",
	Episodes:    "Episodes",
	Networks:    "Networks",
	Trailer:     "Trailer",
	NoResults:   "Nothing found for that query.",
	ListTitle:   "Movies",
	SearchError: "The catalog is unavailable right now, please try again later.",

	SettingsSaved: "Settings saved: language `%s`, region `%s`.",
}

var portuguese = Strings{
	Tag:        "pt-BR",
	DateLayout: "02/01/2006",

	GameTitle:       "🎞️ Framed: adivinhe o filme!",
	GameEnded:       "🎬 Fim de jogo!",
	GamePlaceholder: "De qual filme é esta cena?",
	GameFailed:      "Não foi possível iniciar o jogo agora, tente novamente mais tarde.",
	FieldScore:      "Pontuação",
	FieldRecord:     "Recorde",
	FieldTopScorer:  "Maior pontuador",
	Points:          "pontos",

	Rating:      "Nota",
	Votes:       "votos",
	Released:    "Lançamento",
	WatchOn:     "Assista em",
	Runtime:     "Duração",
	Genres:      "Gêneros",
	Studios:     "Estúdios",
	Seasons:     "Temporadas",
	Episodes:    "Episódios",
	Networks:    "Emissoras",
	Trailer:     "Trailer",
	NoResults:   "Nada encontrado para essa busca.",
	ListTitle:   "Filmes",
	SearchError: "O catálogo está indisponível agora, tente novamente mais tarde.",

	SettingsSaved: "Configurações salvas: idioma `%s`, região `%s`.",
}

var spanish = Strings{
	Tag:        "es-ES",
	DateLayout: "02/01/2006",

	GameTitle:       "🎞️ Framed: ¡adivina la película!",
	GameEnded:       "🎬 ¡Fin del juego!",
	GamePlaceholder: "¿De qué película es este fotograma?",
	GameFailed:      "No se pudo iniciar el juego ahora, inténtalo más tarde.",
	FieldScore:      "Puntuación",
	FieldRecord:     "Récord",
	FieldTopScorer:  "Máximo anotador",
	Points:          "puntos",

	Rating:      "Valoración",
	Votes:       "votos",
	Released:    "Estreno",
	WatchOn:     "Ver en",
	Runtime:     "Duración",
	Genres:      "Géneros",
	Studios:     "Estudios",
	Seasons:     "Temporadas",
	Episodes:    "Episodios",
	Networks:    "Cadenas",
	Trailer:     "Tráiler",
	NoResults:   "No se encontró nada para esa búsqueda.",
	ListTitle:   "Películas",
	SearchError: "El catálogo no está disponible ahora, inténtalo más tarde.",

	SettingsSaved: "Configuración guardada: idioma `%s`, región `%s`.",
}

// first entry is the fallback
var supported = []Strings{english, portuguese, spanish}

var matcher = language.NewMatcher(func() []language.Tag {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = language.MustParse(s.Tag)
	}
	return tags
}())

// Default returns the fallback language strings.
func Default() Strings {
	return english
}

// Resolve picks the closest supported language for code ("pt", "pt_BR",
// "es-MX", ...). Unknown or invalid codes resolve to the default.
func Resolve(code string) Strings {
	code = strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if code == "" {
		return english
	}
	tag, err := language.Parse(code)
	if err != nil {
		return english
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return english
	}
	return supported[index]
}

// Supported lists the canonical tags of every available language.
func Supported() []string {
	out := make([]string, len(supported))
	for i, s := range supported {
		out[i] = s.Tag
	}
	return out
}

// NormalizeRegion validates a region code and returns it upper-cased
// ("br" -> "BR").
func NormalizeRegion(code string) (string, error) {
	region, err := language.ParseRegion(strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("invalid region %q: %w", code, err)
	}
	return region.String(), nil
}
