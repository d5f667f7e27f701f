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

package index

// Entry is a single contact: a unique name and its phone number.
type Entry struct {
	Name   string // ordering key, compared bytewise
	Number string // opaque text, never parsed
}

type node struct {
	entry  Entry
	height int
	left   *node
	right  *node
}

func newNode(name, number string) *node {
	return &node{entry: Entry{Name: name, Number: number}, height: 1}
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node) updateHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

// balanceFactor is height(left) - height(right).
func balanceFactor(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// leftmost returns the node holding the smallest key under n.
func leftmost(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}
