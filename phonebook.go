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
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/cybrota/phonebook/index"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/willf/bloom"
)

// Phonebook owns the contact index for the lifetime of a session and is its
// only caller. It trims and validates input before it reaches the index.
//
// seen remembers every name ever added so lookups for names that were never
// stored skip the tree entirely. Removed names stay in the filter; the tree
// stays the source of truth for them.
type Phonebook struct {
	idx      *index.Index
	seen     *bloom.BloomFilter
	lookups  *cache.Cache
	contacts ContactsConfig
}

func NewPhonebook(config *Config) *Phonebook {
	return &Phonebook{
		idx:      index.New(index.WithCapacity(config.Contacts.MaxEntries)),
		seen:     bloom.New(config.Lookup.BloomSize, config.Lookup.BloomHashes),
		lookups:  NewLookupCache(config.Lookup.CacheTTL),
		contacts: config.Contacts,
	}
}

// Add stores a new contact. An existing contact with the same name is kept
// and index.ErrDuplicateKey is returned.
func (pb *Phonebook) Add(name, number string) error {
	name, err := pb.normalizeName(name)
	if err != nil {
		return err
	}
	number, err = pb.normalizeNumber(number)
	if err != nil {
		return err
	}

	if err := pb.idx.Insert(name, number); err != nil {
		return errors.Wrapf(err, "add %q", name)
	}
	pb.seen.AddString(name)
	return nil
}

// Lookup returns the number stored for name, or index.ErrNotFound.
func (pb *Phonebook) Lookup(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}

	if !pb.seen.TestString(name) {
		return "", errors.Wrapf(index.ErrNotFound, "lookup %q", name)
	}
	if number, ok := GetCachedLookup(pb.lookups, name); ok {
		return number, nil
	}

	number, ok := pb.idx.Find(name)
	if !ok {
		return "", errors.Wrapf(index.ErrNotFound, "lookup %q", name)
	}
	CacheLookup(pb.lookups, name, number)
	return number, nil
}

// Delete removes the contact stored under name.
func (pb *Phonebook) Delete(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	if err := pb.idx.Remove(name); err != nil {
		return errors.Wrapf(err, "delete %q", name)
	}
	ForgetLookup(pb.lookups, name)
	return nil
}

// Contacts yields every contact in ascending name order.
func (pb *Phonebook) Contacts() iter.Seq[index.Entry] {
	return pb.idx.All()
}

func (pb *Phonebook) Len() int {
	return pb.idx.Len()
}

// Close drops every contact. It is safe to call more than once.
func (pb *Phonebook) Close() {
	pb.idx.Clear()
	pb.seen.ClearAll()
	pb.lookups.Flush()
}

func (pb *Phonebook) normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if n := utf8.RuneCountInString(name); n > pb.contacts.MaxNameLength {
		return "", errors.Wrapf(ErrNameTooLong, "%d characters, limit %d", n, pb.contacts.MaxNameLength)
	}
	return name, nil
}

// normalizeNumber applies the number policy: "reject" refuses numbers over
// the limit, "truncate" keeps their first max_number_length characters.
func (pb *Phonebook) normalizeNumber(number string) (string, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return "", ErrEmptyNumber
	}

	limit := pb.contacts.MaxNumberLength
	n := utf8.RuneCountInString(number)
	if n <= limit {
		return number, nil
	}
	if pb.contacts.NumberPolicy == PolicyTruncate {
		return string([]rune(number)[:limit]), nil
	}
	return "", errors.Wrapf(ErrNumberTooLong, "%d characters, limit %d", n, limit)
}
