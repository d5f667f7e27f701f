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
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/cybrota/phonebook/index"
	"github.com/pkg/errors"
)

const listingRule = "--------------------------------------------------------------"

// writeListing prints contacts in the menu's plain text form.
func writeListing(w io.Writer, contacts iter.Seq[index.Entry]) {
	fmt.Fprintf(w, "%sContacts.%s\n", Underline, Reset)
	for e := range contacts {
		fmt.Fprintf(w, "Name: %s\nNumber: %s\n", e.Name, e.Number)
		fmt.Fprintln(w, listingRule)
	}
}

// listingMarkdown builds a markdown table with one row per contact.
func listingMarkdown(contacts iter.Seq[index.Entry]) string {
	var b strings.Builder
	b.WriteString("# Contacts\n\n| Name | Number |\n| --- | --- |\n")
	rows := 0
	for e := range contacts {
		fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(e.Name), escapeCell(e.Number))
		rows++
	}
	fmt.Fprintf(&b, "\n_%d contact(s)_\n", rows)
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// renderListing renders the contact table for the terminal.
func renderListing(contacts iter.Seq[index.Entry], width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", errors.Wrap(err, "create markdown renderer")
	}

	out, err := r.Render(listingMarkdown(contacts))
	if err != nil {
		return "", errors.Wrap(err, "render contacts")
	}
	return out, nil
}
