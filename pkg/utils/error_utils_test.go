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
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func TestParseErrorDetailLevel(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		expectedLevel ErrorDetailLevel
	}{
		{name: "none detail level", value: "none", expectedLevel: ErrorDetailNone},
		{name: "full detail level", value: "FULL", expectedLevel: ErrorDetailFull},
		{name: "simple detail level", value: "simple", expectedLevel: ErrorDetailSimple},
		{name: "empty defaults to simple", value: "", expectedLevel: ErrorDetailSimple},
		{name: "invalid value defaults to simple", value: "invalid", expectedLevel: ErrorDetailSimple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseErrorDetailLevel(tt.value); got != tt.expectedLevel {
				t.Errorf("ParseErrorDetailLevel(%q) = %v, want %v", tt.value, got, tt.expectedLevel)
			}
		})
	}
}

func TestGetErrorDetailLevelOverride(t *testing.T) {
	os.Setenv("ERROR_DETAIL_LEVEL", "none")
	defer os.Unsetenv("ERROR_DETAIL_LEVEL")

	if got := getErrorDetailLevel(); got != ErrorDetailNone {
		t.Fatalf("getErrorDetailLevel() = %v, want env value %v", got, ErrorDetailNone)
	}

	SetErrorDetailLevel("full")
	defer SetErrorDetailLevel("")
	if got := getErrorDetailLevel(); got != ErrorDetailFull {
		t.Errorf("getErrorDetailLevel() = %v, want override %v", got, ErrorDetailFull)
	}
}

func TestErrorWithLocation(t *testing.T) {
	sentinel := errors.New("catalog unavailable")

	tests := []struct {
		name            string
		err             error
		detailLevel     string
		expectedParts   []string
		unexpectedParts []string
	}{
		{
			name:        "nil error returns nil",
			err:         nil,
			detailLevel: "simple",
		},
		{
			name:            "simple detail level",
			err:             sentinel,
			detailLevel:     "simple",
			expectedParts:   []string{"error_utils_test.go", "catalog unavailable"},
			unexpectedParts: []string{"Stack Trace:", "Error Location:"},
		},
		{
			name:        "full detail level",
			err:         sentinel,
			detailLevel: "full",
			expectedParts: []string{
				"Error Location:",
				"File: error_utils_test.go",
				"Function:",
				"catalog unavailable",
				"Stack Trace:",
			},
		},
		{
			name:            "none detail level still carries location",
			err:             sentinel,
			detailLevel:     "none",
			expectedParts:   []string{"error_utils_test.go", "catalog unavailable"},
			unexpectedParts: []string{"Stack Trace:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetErrorDetailLevel(tt.detailLevel)
			defer SetErrorDetailLevel("")

			got := ErrorWithLocation(tt.err)
			if tt.err == nil {
				if got != nil {
					t.Errorf("ErrorWithLocation() = %v, want nil", got)
				}
				return
			}

			if !errors.Is(got, tt.err) {
				t.Errorf("ErrorWithLocation() lost the wrapped error: %v", got)
			}
			gotStr := got.Error()
			for _, expected := range tt.expectedParts {
				if !strings.Contains(gotStr, expected) {
					t.Errorf("ErrorWithLocation() output missing %q in:\n%s", expected, gotStr)
				}
			}
			for _, unexpected := range tt.unexpectedParts {
				if strings.Contains(gotStr, unexpected) {
					t.Errorf("ErrorWithLocation() output contains %q in:\n%s", unexpected, gotStr)
				}
			}
		})
	}
}

func TestPrintErrorAndReturn(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		detailLevel string
		shouldPrint bool
	}{
		{name: "nil error returns nil", err: nil, detailLevel: "simple", shouldPrint: false},
		{name: "prints with simple detail level", err: errors.New("boom"), detailLevel: "simple", shouldPrint: true},
		{name: "prints with full detail level", err: errors.New("boom"), detailLevel: "full", shouldPrint: true},
		{name: "suppresses print with none detail level", err: errors.New("boom"), detailLevel: "none", shouldPrint: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetErrorDetailLevel(tt.detailLevel)
			defer SetErrorDetailLevel("")

			oldStderr := os.Stderr
			r, w, _ := os.Pipe()
			os.Stderr = w

			got := PrintErrorAndReturn(tt.err)

			w.Close()
			os.Stderr = oldStderr

			output, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("Failed to read captured output: %v", err)
			}

			if tt.err == nil {
				if got != nil {
					t.Errorf("PrintErrorAndReturn() = %v, want nil", got)
				}
				return
			}

			if printed := len(output) > 0; printed != tt.shouldPrint {
				t.Errorf("PrintErrorAndReturn() printing = %v, want %v", printed, tt.shouldPrint)
			}
			if got == nil {
				t.Error("PrintErrorAndReturn() returned nil for non-nil error")
			}
		})
	}
}
