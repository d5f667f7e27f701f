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
	"time"

	"github.com/patrickmn/go-cache"
)

// NewLookupCache creates a cache for recently looked-up numbers. Expired
// entries are swept every other TTL.
func NewLookupCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, 2*ttl)
}

func CacheLookup(c *cache.Cache, name, number string) {
	c.Set(name, number, cache.DefaultExpiration)
}

func GetCachedLookup(c *cache.Cache, name string) (string, bool) {
	val, ok := c.Get(name)
	if !ok {
		return "", false
	}
	return val.(string), true
}

func ForgetLookup(c *cache.Cache, name string) {
	c.Delete(name)
}
