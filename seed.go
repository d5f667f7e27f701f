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
	"log"

	"github.com/cybrota/phonebook/index"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML layout accepted by --seed:
//
//	contacts:
//	  - name: Ada Lovelace
//	    number: "5550101"
type seedFile struct {
	Contacts []seedContact `yaml:"contacts"`
}

type seedContact struct {
	Name   string `yaml:"name"`
	Number string `yaml:"number"`
}

// SeedReport counts what happened to each row of a seed file.
type SeedReport struct {
	Added      int
	Duplicates int
	Rejected   int
}

// LoadSeed adds every contact listed in the YAML file at path. Rows that are
// duplicates or fail validation are logged and counted, not fatal. A full
// phonebook stops the load. Progress is drawn on progress, or discarded when
// it is nil. The file is only ever read.
func LoadSeed(fs afero.Fs, path string, book *Phonebook, progress io.Writer) (SeedReport, error) {
	var report SeedReport

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return report, errors.Wrapf(err, "read seed %s", path)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return report, errors.Wrapf(err, "parse seed %s", path)
	}

	if progress == nil {
		progress = io.Discard
	}
	bar := progressbar.NewOptions(len(seed.Contacts),
		progressbar.OptionSetDescription("📇 Loading contacts..."),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	defer bar.Finish()

	for i, c := range seed.Contacts {
		_ = bar.Add(1)

		err := book.Add(c.Name, c.Number)
		switch {
		case err == nil:
			report.Added++
		case errors.Is(err, index.ErrDuplicateKey):
			report.Duplicates++
			log.Printf("seed %s: row %d: %q already present, keeping the first", path, i+1, c.Name)
		case errors.Is(err, index.ErrAllocationFailure):
			return report, errors.Wrapf(err, "seed %s: row %d", path, i+1)
		default:
			report.Rejected++
			log.Printf("seed %s: row %d skipped: %v", path, i+1, err)
		}
	}

	return report, nil
}
