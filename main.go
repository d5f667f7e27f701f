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
	"log"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const listingWidth = 80

type sessionFlags struct {
	configPath string
	seedPath   string
	tui        bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("phonebook: ")

	if err := newRootCmd(afero.NewOsFs(), os.Stdin).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(fs afero.Fs, stdin io.Reader) *cobra.Command {
	asciiLogo := `
┌─┐┬ ┬┌─┐┌┐┌┌─┐┌┐ ┌─┐┌─┐┬┌─
├─┘├─┤│ ││││├┤ ├┴┐│ ││ │├┴┐
┴  ┴ ┴└─┘┘└┘└─┘└─┘└─┘└─┘┴ ┴
Balanced-tree contact book for your terminal [Version: %s%s%s]

`
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	flags := &sessionFlags{}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Start an interactive phonebook session",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the numbered menu, or the terminal UI with --tui`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return startSession(cmd, fs, stdin, flags)
		},
	}

	var cmdList = &cobra.Command{
		Use:   "list",
		Short: "Print the contacts loaded with --seed in name order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plain, _ := cmd.Flags().GetBool("plain")
			return listContacts(cmd, fs, flags, plain)
		},
	}
	cmdList.Flags().Bool("plain", false, "print plain text instead of a rendered table")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating a default file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(flags.configPath)
			if err != nil {
				return err
			}
			displaySettings(cmd.OutOrStdout(), fs, path)
			return nil
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Phonebook usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Phonebook version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "phonebook",
		Version:      version,
		Long:         asciiLogo,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to run command when no subcommand is provided
			return startSession(cmd, fs, stdin, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default $PHONEBOOK_CONFIG or ~/.phonebook.yaml)")
	rootCmd.PersistentFlags().StringVar(&flags.seedPath, "seed", "", "YAML file of contacts to load at start")
	rootCmd.PersistentFlags().BoolVar(&flags.tui, "tui", false, "use the terminal UI instead of the numbered menu")

	rootCmd.AddCommand(cmdRun, cmdList, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

func loadSessionConfig(fs afero.Fs, explicit string) *Config {
	path, err := resolveConfigPath(explicit)
	if err != nil {
		log.Printf("Failed to locate configuration: %v. Using default settings.", err)
		config := DefaultConfig()
		return &config
	}

	config, err := LoadConfig(fs, path)
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

// openPhonebook builds the session's phonebook and applies --seed.
func openPhonebook(cmd *cobra.Command, fs afero.Fs, flags *sessionFlags) (*Phonebook, *Config, error) {
	config := loadSessionConfig(fs, flags.configPath)
	book := NewPhonebook(config)

	if flags.seedPath != "" {
		report, err := LoadSeed(fs, flags.seedPath, book, cmd.ErrOrStderr())
		if err != nil {
			book.Close()
			return nil, nil, err
		}
		log.Printf("loaded %d contact(s) from %s (%d duplicate, %d rejected)",
			report.Added, flags.seedPath, report.Duplicates, report.Rejected)
	}

	return book, config, nil
}

func startSession(cmd *cobra.Command, fs afero.Fs, stdin io.Reader, flags *sessionFlags) error {
	book, config, err := openPhonebook(cmd, fs, flags)
	if err != nil {
		return err
	}

	if flags.tui || config.UI.Mode == UIModeTUI {
		return runBubbleTeaApp(book)
	}
	return NewMenu(book, stdin, cmd.OutOrStdout()).Run()
}

func listContacts(cmd *cobra.Command, fs afero.Fs, flags *sessionFlags, plain bool) error {
	book, _, err := openPhonebook(cmd, fs, flags)
	if err != nil {
		return err
	}
	defer book.Close()

	out := cmd.OutOrStdout()
	if book.Len() == 0 {
		fmt.Fprintln(out, emptyNotice)
		return nil
	}

	if plain {
		writeListing(out, book.Contacts())
		return nil
	}

	rendered, err := renderListing(book.Contacts(), listingWidth)
	if err != nil {
		log.Printf("Falling back to plain listing: %v", err)
		writeListing(out, book.Contacts())
		return nil
	}
	fmt.Fprint(out, rendered)
	return nil
}
