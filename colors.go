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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI escapes used by the line-oriented menu.
const (
	Green     = "\033[32m"
	Red       = "\033[31m"
	Underline = "\033[4m"
	Reset     = "\033[0m"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(env)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// Styles holds all the styling for the terminal UI
type Styles struct {
	Border         lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	Number         lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates styles suited to the detected terminal background
func NewStyles(mode TerminalMode) *Styles {
	accent, muted, ok, bad := lipgloss.Color("39"), lipgloss.Color("243"), lipgloss.Color("46"), lipgloss.Color("196")
	if mode == TerminalModeLight {
		// darker shades for contrast on white
		accent, muted, ok, bad = lipgloss.Color("25"), lipgloss.Color("240"), lipgloss.Color("28"), lipgloss.Color("124")
	}

	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		Title: lipgloss.NewStyle().
			Foreground(accent).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		Number: lipgloss.NewStyle().
			Foreground(accent),
		HelpKey: lipgloss.NewStyle().
			Foreground(muted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(ok).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(bad).
			Bold(true),
	}
}
