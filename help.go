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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Phonebook %s**

An in-memory contact book kept in a height-balanced search tree, so adding,
finding and deleting a name stays fast however many contacts you keep.

Built with Go %s

# 1. Menu
* **1** New Contact: asks for a name and a number
* **2** Display: lists every contact in name order
* **3** Search: prints the number stored for an exact name
* **4** Delete: removes a contact by exact name
* **5** Quit

Arguments can follow the choice on the same line, quoted like a shell
command: `+"`"+`1 "Ada Lovelace" 5550101`+"`"+`

# 2. Terminal UI
Start with `+"`"+`--tui`+"`"+` or set `+"`"+`ui.mode: tui`+"`"+`.
* **a** add, **/** search, **d** delete, **c** copy number, **esc** quit

# 3. Good to know
* Names are matched exactly and compared byte by byte, so "alice" and "Alice" are different contacts
* Adding a name that already exists keeps the first number
* Contacts live in memory only; use `+"`"+`--seed contacts.yaml`+"`"+` to start with a list
* Numbers longer than `+"`"+`contacts.max_number_length`+"`"+` are refused, or cut when `+"`"+`number_policy: truncate`+"`"+`
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
