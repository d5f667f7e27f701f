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
	"io"
	"testing"

	"github.com/cybrota/phonebook/index"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
contacts:
  - name: Carl
    number: "333"
  - name: Alice
    number: "222"
  - name: Bob
    number: "111"
  - name: Alice
    number: "999"
  - name: ""
    number: "000"
  - name: Dora
    number: "12345678901234"
`

func TestLoadSeed(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/seed.yaml", []byte(seedYAML), 0644))
	book := newTestBook(t)

	report, err := LoadSeed(fs, "/seed.yaml", book, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, SeedReport{Added: 3, Duplicates: 1, Rejected: 2}, report)
	assert.Equal(t, []string{"Alice", "Bob", "Carl"}, bookNames(book))

	number, err := book.Lookup("Alice")
	require.NoError(t, err)
	assert.Equal(t, "222", number)

	// the seed file is never modified
	data, err := afero.ReadFile(fs, "/seed.yaml")
	require.NoError(t, err)
	assert.Equal(t, seedYAML, string(data))
}

func TestLoadSeedStopsWhenFull(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/seed.yaml", []byte(seedYAML), 0644))
	book := newTestBook(t, func(c *Config) { c.Contacts.MaxEntries = 2 })

	report, err := LoadSeed(fs, "/seed.yaml", book, nil)

	assert.True(t, errors.Is(err, index.ErrAllocationFailure))
	assert.Equal(t, 2, report.Added)
	assert.Equal(t, []string{"Alice", "Carl"}, bookNames(book))
}

func TestLoadSeedErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("contacts: {name"), 0644))
	book := newTestBook(t)

	_, err := LoadSeed(fs, "/missing.yaml", book, nil)
	assert.Error(t, err)

	_, err = LoadSeed(fs, "/bad.yaml", book, nil)
	assert.Error(t, err)

	assert.Equal(t, 0, book.Len())
}
