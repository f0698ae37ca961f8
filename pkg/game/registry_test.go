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


package game

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestRegistryBindLookupUnbind(t *testing.T) {
	r := NewRegistry()
	s := &Session{id: "one"}

	if _, err := r.Lookup("framed:one:1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("lookup before bind: expected ErrNotFound, got %v", err)
	}

	r.Bind("framed:one:1", s)
	got, err := r.Lookup("framed:one:1")
	if err != nil {
		t.Fatalf("lookup after bind: %v", err)
	}
	if got != s {
		t.Errorf("lookup returned a different session")
	}

	r.Unbind("framed:one:1")
	if _, err := r.Lookup("framed:one:1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("lookup after unbind: expected ErrNotFound, got %v", err)
	}
	r.Unbind("framed:one:1")
}

func TestRegistrySessionsAreDistinct(t *testing.T) {
	r := NewRegistry()
	a, b := &Session{id: "a"}, &Session{id: "b"}
	r.Bind("x", a)
	r.Bind("y", a)
	r.Bind("z", b)

	if got := r.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if got := len(r.Sessions()); got != 2 {
		t.Errorf("Sessions() returned %d sessions, want 2", got)
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("framed:%d:1", i)
			s := &Session{id: id}
			r.Bind(id, s)
			if got, err := r.Lookup(id); err != nil || got != s {
				t.Errorf("lookup %s: %v", id, err)
			}
			r.Unbind(id)
		}(i)
	}
	wg.Wait()

	if r.Len() != 0 {
		t.Errorf("expected empty registry, got %d entries", r.Len())
	}
}
