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
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, fs afero.Fs, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(fs, strings.NewReader(stdin))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := executeRoot(t, afero.NewMemMapFs(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestListCommandPlain(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/seed.yaml", []byte(seedYAML), 0644))

	out, err := executeRoot(t, fs, "", "list", "--plain", "--seed", "/seed.yaml", "--config", "/none.yaml")

	require.NoError(t, err)
	alice := strings.Index(out, "Name: Alice")
	bob := strings.Index(out, "Name: Bob")
	carl := strings.Index(out, "Name: Carl")
	require.True(t, alice >= 0 && bob >= 0 && carl >= 0, out)
	assert.Less(t, alice, bob)
	assert.Less(t, bob, carl)
}

func TestListCommandEmpty(t *testing.T) {
	out, err := executeRoot(t, afero.NewMemMapFs(), "", "list", "--config", "/none.yaml")
	require.NoError(t, err)
	assert.Equal(t, emptyNotice+"\n", out)
}

func TestListCommandMissingSeed(t *testing.T) {
	_, err := executeRoot(t, afero.NewMemMapFs(), "", "list", "--seed", "/nope.yaml", "--config", "/none.yaml")
	assert.Error(t, err)
}

func TestRootRunsMenu(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/seed.yaml", []byte(seedYAML), 0644))

	out, err := executeRoot(t, fs, "3 Bob\n5\n", "--seed", "/seed.yaml", "--config", "/none.yaml")

	require.NoError(t, err)
	assert.Contains(t, out, "Number: 111\n")
	assert.True(t, strings.HasSuffix(out, "Exiting now.\n"))
}
