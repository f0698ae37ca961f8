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
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrorDetailLevel represents the level of error detail to display
type ErrorDetailLevel int

const (
	// ErrorDetailNone suppresses printing; wrapped errors still carry file and line
	ErrorDetailNone ErrorDetailLevel = iota
	// ErrorDetailSimple shows file, line and function (default)
	ErrorDetailSimple
	// ErrorDetailFull adds a stack trace
	ErrorDetailFull
)

// detailOverride is set from configuration; empty means read ERROR_DETAIL_LEVEL.
var detailOverride string

// ParseErrorDetailLevel maps "none", "simple" or "full" to a level.
func ParseErrorDetailLevel(name string) ErrorDetailLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return ErrorDetailNone
	case "full":
		return ErrorDetailFull
	default:
		return ErrorDetailSimple
	}
}

// SetErrorDetailLevel overrides the ERROR_DETAIL_LEVEL environment variable.
func SetErrorDetailLevel(name string) {
	detailOverride = name
}

func getErrorDetailLevel() ErrorDetailLevel {
	if detailOverride != "" {
		return ParseErrorDetailLevel(detailOverride)
	}
	return ParseErrorDetailLevel(os.Getenv("ERROR_DETAIL_LEVEL"))
}

// formatError decorates err with the location of the caller's caller.
func formatError(err error) error {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return fmt.Errorf("error occurred: %w", err)
	}
	fnName := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		fnName = fn.Name()
	}

	if getErrorDetailLevel() == ErrorDetailFull {
		buffer := make([]byte, 4096)
		n := runtime.Stack(buffer, false)
		stackLines := strings.Split(string(buffer[:n]), "\n")
		if len(stackLines) > 0 {
			stackLines = stackLines[1:]
		}

		return fmt.Errorf(`
Error Location:
  Full Path: %s
  File: %s
  Line: %d
  Function: %s
Error Details:
  %w
Stack Trace:
%s`, file, filepath.Base(file), line, fnName, err, strings.Join(stackLines, "\n"))
	}

	return fmt.Errorf("%s:%d [%s]: %w", filepath.Base(file), line, filepath.Base(fnName), err)
}

// ErrorWithLocation wraps an error with the caller's location. The original
// error stays reachable through errors.Is and errors.As.
func ErrorWithLocation(err error) error {
	if err == nil {
		return nil
	}
	return formatError(err)
}

// PrintErrorAndReturn prints the wrapped error to stderr unless the detail
// level is none, and returns it.
func PrintErrorAndReturn(err error) error {
	if err == nil {
		return nil
	}

	wrappedErr := formatError(err)
	if getErrorDetailLevel() != ErrorDetailNone {
		fmt.Fprintln(os.Stderr, wrappedErr)
	}
	return wrappedErr
}
