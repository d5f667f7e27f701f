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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/phonebook/index"
	"github.com/pkg/errors"
)

// promptMode is what the text input is currently collecting.
type promptMode int

const (
	modeBrowse promptMode = iota
	modeAddName
	modeAddNumber
	modeSearch
	modeConfirmDelete
)

// contactItem represents a contact in the list
type contactItem struct {
	entry index.Entry
}

func (i contactItem) FilterValue() string { return i.entry.Name }
func (i contactItem) Title() string       { return i.entry.Name }
func (i contactItem) Description() string { return i.entry.Number }

// Model represents the Bubble Tea application state
type Model struct {
	book *Phonebook

	contacts list.Model
	input    textinput.Model

	mode        promptMode
	pendingName string // name typed in modeAddName, or selected for deletion

	status    string
	statusErr bool

	copyNumber func(string) error

	styles *Styles
	ready  bool
	width  int
	height int
}

// InitialModel creates the initial model
func InitialModel(book *Phonebook) Model {
	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 40

	contacts := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	contacts.SetShowTitle(false)
	contacts.SetShowHelp(false)
	contacts.SetFilteringEnabled(false)

	m := Model{
		book:       book,
		contacts:   contacts,
		input:      ti,
		mode:       modeBrowse,
		copyNumber: clipboard.WriteAll,
		styles:     NewStyles(detectTerminalMode()),
	}
	m.refresh()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.contacts.SetSize(max(msg.Width-4, 10), max(msg.Height-9, 3))
		m.input.Width = max(msg.Width-20, 10)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == modeBrowse {
			return m.updateBrowse(msg)
		}
		if m.mode == modeConfirmDelete {
			return m.updateConfirmDelete(msg)
		}
		return m.updatePrompt(msg)
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "a":
		return m.startPrompt(modeAddName, "Name")
	case "/":
		return m.startPrompt(modeSearch, "Search name")
	case "d":
		if e, ok := m.selected(); ok {
			m.pendingName = e.Name
			m.mode = modeConfirmDelete
			m.setStatus(fmt.Sprintf("Delete %s? (y/n)", e.Name), false)
		}
		return m, nil
	case "c", "enter":
		if e, ok := m.selected(); ok {
			if err := m.copyNumber(e.Number); err != nil {
				m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
			} else {
				m.setStatus(fmt.Sprintf("📋 Copied %s's number to clipboard", e.Name), false)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.contacts, cmd = m.contacts.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name := m.pendingName
	m.pendingName = ""
	m.mode = modeBrowse

	if msg.String() != "y" {
		m.setStatus("Delete cancelled", false)
		return m, nil
	}

	if err := m.book.Delete(name); err != nil {
		m.setStatus(missingText, true)
		return m, nil
	}
	m.refresh()
	m.setStatus(fmt.Sprintf("Deleted %s", name), false)
	return m, nil
}

func (m Model) startPrompt(mode promptMode, placeholder string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.status = ""
	return m, m.input.Focus()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.endPrompt()
		return m, nil
	case "enter":
		return m.submit(strings.TrimSpace(m.input.Value()))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) endPrompt() {
	m.mode = modeBrowse
	m.pendingName = ""
	m.input.Reset()
	m.input.Blur()
}

func (m Model) submit(value string) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAddName:
		if value == "" {
			m.setStatus("Name cannot be empty", true)
			return m, nil
		}
		m.pendingName = value
		m.mode = modeAddNumber
		m.input.Reset()
		m.input.Placeholder = "Number"
		return m, nil

	case modeAddNumber:
		name := m.pendingName
		err := m.book.Add(name, value)
		m.endPrompt()
		if err != nil {
			m.setStatus(addErrorText(err), true)
			return m, nil
		}
		m.refresh()
		m.selectName(name)
		m.setStatus(fmt.Sprintf("Added %s", name), false)
		return m, nil

	case modeSearch:
		m.endPrompt()
		number, err := m.book.Lookup(value)
		if err != nil {
			m.setStatus(missingText, true)
			return m, nil
		}
		m.selectName(value)
		m.setStatus(fmt.Sprintf("Number: %s", number), false)
		return m, nil
	}

	m.endPrompt()
	return m, nil
}

func addErrorText(err error) string {
	switch {
	case errors.Is(err, index.ErrDuplicateKey):
		return "Contact already exists"
	case errors.Is(err, index.ErrAllocationFailure):
		return "Phonebook is full"
	case errors.Is(err, ErrEmptyNumber):
		return "Number cannot be empty"
	case errors.Is(err, ErrNumberTooLong), errors.Is(err, ErrNameTooLong):
		return err.Error()
	}
	return fmt.Sprintf("Error: %v", err)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// refresh reloads the list from the phonebook, in name order.
func (m *Model) refresh() {
	var items []list.Item
	for e := range m.book.Contacts() {
		items = append(items, contactItem{entry: e})
	}
	m.contacts.SetItems(items)
}

func (m *Model) selected() (index.Entry, bool) {
	item, ok := m.contacts.SelectedItem().(contactItem)
	if !ok {
		return index.Entry{}, false
	}
	return item.entry, true
}

func (m *Model) selectName(name string) {
	name = strings.TrimSpace(name)
	for i, item := range m.contacts.Items() {
		if item.(contactItem).entry.Name == name {
			m.contacts.Select(i)
			return
		}
	}
}

// View renders the contact list, the prompt and the key help
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	title := m.styles.Title.Render(fmt.Sprintf(" 📇 Contacts (%d) ", m.book.Len()))

	var body string
	if m.book.Len() == 0 {
		body = m.styles.HelpDesc.Render(emptyNotice)
	} else {
		body = m.contacts.View()
	}

	box := m.styles.Border.
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, body))

	var prompt string
	switch m.mode {
	case modeAddName, modeAddNumber, modeSearch:
		prompt = m.styles.InputPrompt.Render(m.input.Placeholder+": ") + m.input.View()
	}

	status := m.styles.SuccessMessage.Render(m.status)
	if m.statusErr {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, box, prompt, status, m.renderHelp())
}

func (m Model) renderHelp() string {
	keys := []string{"a", "/", "d", "c", "esc"}
	descs := []string{"add", "search", "delete", "copy number", "quit"}
	switch m.mode {
	case modeConfirmDelete:
		keys = []string{"y", "any key"}
		descs = []string{"delete", "cancel"}
	case modeAddName, modeAddNumber, modeSearch:
		keys = []string{"enter", "esc"}
		descs = []string{"confirm", "cancel"}
	}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the Bubble Tea application and closes the
// phonebook when it exits.
func runBubbleTeaApp(book *Phonebook) error {
	defer book.Close()

	program := tea.NewProgram(InitialModel(book), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return errors.Wrap(err, "run terminal UI")
	}
	return nil
}
