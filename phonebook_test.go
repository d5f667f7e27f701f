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
	"strings"
	"testing"

	"github.com/cybrota/phonebook/index"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBook(t *testing.T, mutate ...func(*Config)) *Phonebook {
	t.Helper()
	config := DefaultConfig()
	for _, fn := range mutate {
		fn(&config)
	}
	require.NoError(t, config.Validate())
	book := NewPhonebook(&config)
	t.Cleanup(book.Close)
	return book
}

func bookNames(book *Phonebook) []string {
	var out []string
	for e := range book.Contacts() {
		out = append(out, e.Name)
	}
	return out
}

func TestPhonebookAddAndLookup(t *testing.T) {
	book := newTestBook(t)

	require.NoError(t, book.Add("  Bob \n", " 111 "))
	require.NoError(t, book.Add("Alice", "222"))

	number, err := book.Lookup("Bob")
	require.NoError(t, err)
	assert.Equal(t, "111", number)

	number, err = book.Lookup(" Alice\t")
	require.NoError(t, err)
	assert.Equal(t, "222", number)

	assert.Equal(t, []string{"Alice", "Bob"}, bookNames(book))
	assert.Equal(t, 2, book.Len())
}

func TestPhonebookAddValidation(t *testing.T) {
	testCases := []struct {
		name    string
		contact [2]string
		wantErr error
	}{
		{"blank name", [2]string{"   ", "123"}, ErrEmptyName},
		{"blank number", [2]string{"Ann", " "}, ErrEmptyNumber},
		{"number over limit", [2]string{"Ann", "1234567890123"}, ErrNumberTooLong},
		{"name over limit", [2]string{strings.Repeat("n", 100), "1"}, ErrNameTooLong},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			book := newTestBook(t)
			err := book.Add(tc.contact[0], tc.contact[1])
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			assert.Equal(t, 0, book.Len())
		})
	}
}

func TestPhonebookNumberAtLimitAccepted(t *testing.T) {
	book := newTestBook(t)
	require.NoError(t, book.Add("Ann", "123456789012"))

	number, err := book.Lookup("Ann")
	require.NoError(t, err)
	assert.Equal(t, "123456789012", number)
}

func TestPhonebookTruncatePolicy(t *testing.T) {
	book := newTestBook(t, func(c *Config) {
		c.Contacts.NumberPolicy = PolicyTruncate
		c.Contacts.MaxNumberLength = 4
	})

	require.NoError(t, book.Add("Ann", "+44 20 7946"))

	number, err := book.Lookup("Ann")
	require.NoError(t, err)
	assert.Equal(t, "+44 ", number)
}

func TestPhonebookDuplicateKeepsFirst(t *testing.T) {
	book := newTestBook(t)
	require.NoError(t, book.Add("Bob", "111"))

	err := book.Add("Bob", "999")
	assert.True(t, errors.Is(err, index.ErrDuplicateKey))

	number, err := book.Lookup("Bob")
	require.NoError(t, err)
	assert.Equal(t, "111", number)
	assert.Equal(t, 1, book.Len())
}

func TestPhonebookLookupMissing(t *testing.T) {
	book := newTestBook(t)

	_, err := book.Lookup("Nobody")
	assert.True(t, errors.Is(err, index.ErrNotFound))

	_, err = book.Lookup("")
	assert.True(t, errors.Is(err, ErrEmptyName))
}

func TestPhonebookDeleteInvalidatesCache(t *testing.T) {
	book := newTestBook(t)
	require.NoError(t, book.Add("Bob", "111"))

	// warm the lookup cache
	_, err := book.Lookup("Bob")
	require.NoError(t, err)
	_, cached := GetCachedLookup(book.lookups, "Bob")
	require.True(t, cached)

	require.NoError(t, book.Delete("Bob"))

	_, err = book.Lookup("Bob")
	assert.True(t, errors.Is(err, index.ErrNotFound))

	// re-adding after delete stores the new number
	require.NoError(t, book.Add("Bob", "222"))
	number, err := book.Lookup("Bob")
	require.NoError(t, err)
	assert.Equal(t, "222", number)
}

func TestPhonebookDeleteMissing(t *testing.T) {
	book := newTestBook(t)
	require.NoError(t, book.Add("Alice", "1"))

	err := book.Delete("Bob")
	assert.True(t, errors.Is(err, index.ErrNotFound))
	assert.Equal(t, 1, book.Len())
}

func TestPhonebookCapacity(t *testing.T) {
	book := newTestBook(t, func(c *Config) { c.Contacts.MaxEntries = 1 })
	require.NoError(t, book.Add("Alice", "1"))

	err := book.Add("Bob", "2")
	assert.True(t, errors.Is(err, index.ErrAllocationFailure))
	assert.Equal(t, []string{"Alice"}, bookNames(book))
}

func TestPhonebookClose(t *testing.T) {
	book := newTestBook(t)
	require.NoError(t, book.Add("Alice", "1"))
	_, _ = book.Lookup("Alice")

	book.Close()
	book.Close()

	assert.Equal(t, 0, book.Len())
	assert.Empty(t, bookNames(book))
	assert.False(t, book.seen.TestString("Alice"))
	assert.Equal(t, 0, book.lookups.ItemCount())
}
