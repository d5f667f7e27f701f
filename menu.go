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
	"bufio"
	"fmt"
	"io"

	"github.com/cybrota/phonebook/index"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

const (
	menuPrompt  = "1.New Contact\t2.Display\t3.Search\t4.Delete\t5.Quit\nEnter your choice: "
	emptyNotice = "Phonebook is empty. Please add Contacts."
	missingText = "Contact does not exist"
)

// Menu is the numbered, line-oriented session. A choice line may carry its
// arguments inline, quoted like a shell command: 1 "Ada Lovelace" 5550101.
// Whatever is not given inline is prompted for.
type Menu struct {
	book *Phonebook
	in   *bufio.Scanner
	out  io.Writer
}

func NewMenu(book *Phonebook, r io.Reader, w io.Writer) *Menu {
	return &Menu{
		book: book,
		in:   bufio.NewScanner(r),
		out:  w,
	}
}

// Run serves choices until Quit or end of input. The phonebook is closed on
// the way out.
func (m *Menu) Run() error {
	defer m.quit()

	for {
		fmt.Fprint(m.out, menuPrompt)
		line, ok := m.readLine()
		if !ok {
			break
		}

		args, err := shellwords.Parse(line)
		if err != nil {
			fmt.Fprintf(m.out, "Invalid input: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "1":
			m.add(args[1:])
		case "2":
			m.display()
		case "3":
			m.search(args[1:])
		case "4":
			m.remove(args[1:])
		case "5":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice")
		}
	}

	if err := m.in.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}
	return nil
}

func (m *Menu) quit() {
	fmt.Fprintln(m.out, "Exiting now.")
	m.book.Close()
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

// field returns args[i] when given inline, otherwise prompts for it.
func (m *Menu) field(args []string, i int, prompt string) (string, bool) {
	if i < len(args) {
		return args[i], true
	}
	fmt.Fprint(m.out, prompt)
	return m.readLine()
}

func (m *Menu) add(args []string) {
	name, ok := m.field(args, 0, "Name: ")
	if !ok {
		return
	}
	number, ok := m.field(args, 1, "Number: ")
	if !ok {
		return
	}

	err := m.book.Add(name, number)
	switch {
	case err == nil:
		fmt.Fprintln(m.out, "Contact added.")
	case errors.Is(err, index.ErrDuplicateKey):
		fmt.Fprintln(m.out, "Contact already exists")
	case errors.Is(err, index.ErrAllocationFailure):
		fmt.Fprintln(m.out, "Phonebook is full")
	case errors.Is(err, ErrEmptyName):
		fmt.Fprintln(m.out, "Name cannot be empty")
	case errors.Is(err, ErrEmptyNumber):
		fmt.Fprintln(m.out, "Number cannot be empty")
	case errors.Is(err, ErrNameTooLong):
		fmt.Fprintf(m.out, "Name is too long (max %d characters)\n", m.book.contacts.MaxNameLength)
	case errors.Is(err, ErrNumberTooLong):
		fmt.Fprintf(m.out, "Number is too long (max %d characters)\n", m.book.contacts.MaxNumberLength)
	default:
		fmt.Fprintf(m.out, "%sError:%s %v\n", Red, Reset, err)
	}
}

func (m *Menu) display() {
	if m.book.Len() == 0 {
		fmt.Fprintln(m.out, emptyNotice)
		return
	}
	writeListing(m.out, m.book.Contacts())
}

func (m *Menu) search(args []string) {
	if m.book.Len() == 0 {
		fmt.Fprintln(m.out, emptyNotice)
		return
	}
	name, ok := m.field(args, 0, "Enter the name: ")
	if !ok {
		return
	}

	number, err := m.book.Lookup(name)
	if err != nil {
		fmt.Fprintln(m.out, missingText)
		return
	}
	fmt.Fprintf(m.out, "Number: %s\n", number)
}

func (m *Menu) remove(args []string) {
	if m.book.Len() == 0 {
		fmt.Fprintln(m.out, emptyNotice)
		return
	}
	name, ok := m.field(args, 0, "Enter the name: ")
	if !ok {
		return
	}

	if err := m.book.Delete(name); err != nil {
		fmt.Fprintln(m.out, missingText)
		return
	}
	fmt.Fprintln(m.out, "Contact deleted.")
}
