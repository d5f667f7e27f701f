// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"testing"
	"time"
)

func TestCacheLookupAndGetCachedLookup(t *testing.T) {
	c := NewLookupCache(time.Minute)
	name := "Alice"
	number := "5550101"

	// Initially, GetCachedLookup should miss.
	if got, ok := GetCachedLookup(c, name); ok {
		t.Errorf("GetCachedLookup(%q) = %q; want miss", name, got)
	}

	CacheLookup(c, name, number)

	if got, ok := GetCachedLookup(c, name); !ok || got != number {
		t.Errorf("GetCachedLookup(%q) = %q, %v; want %q", name, got, ok, number)
	}

	ForgetLookup(c, name)

	if _, ok := GetCachedLookup(c, name); ok {
		t.Errorf("GetCachedLookup(%q) hit after ForgetLookup", name)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := NewLookupCache(100 * time.Millisecond)
	name := "Bob"

	CacheLookup(c, name, "111")

	// Immediately after caching, the number should be retrievable.
	if got, ok := GetCachedLookup(c, name); !ok || got != "111" {
		t.Errorf("GetCachedLookup(%q) = %q, %v; want %q", name, got, ok, "111")
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got, ok := GetCachedLookup(c, name); ok {
		t.Errorf("After expiration, GetCachedLookup(%q) = %q; want miss", name, got)
	}
}
