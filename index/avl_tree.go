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

import "iter"

// Index is an ordered name -> number map backed by an AVL tree.
// The zero value is not usable; create one with New.
type Index struct {
	root *node
	size int
	opts *options
}

// New returns an empty Index.
func New(opts ...Option) *Index {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(o)
	}
	return &Index{opts: o}
}

// Len returns the number of entries.
func (x *Index) Len() int {
	return x.size
}

// IsEmpty reports whether the index holds no entries.
func (x *Index) IsEmpty() bool {
	return x.root == nil
}

// Height returns the height of the tree. An empty index has height 0.
func (x *Index) Height() int {
	return height(x.root)
}

func (x *Index) full() bool {
	return x.opts.capacity > 0 && x.size >= x.opts.capacity
}

func rotateLeft(n *node) *node {
	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	// child before parent
	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

func rotateRight(n *node) *node {
	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

// Insert adds name with its number. If name is already present the index is
// left untouched and ErrDuplicateKey is returned.
func (x *Index) Insert(name, number string) error {
	root, err := x.insert(x.root, name, number)
	if err != nil {
		return err
	}
	x.root = root
	x.size++
	return nil
}

func (x *Index) insert(n *node, name, number string) (*node, error) {
	if n == nil {
		if x.full() {
			return nil, ErrAllocationFailure
		}
		return newNode(name, number), nil
	}

	switch {
	case name < n.entry.Name:
		child, err := x.insert(n.left, name, number)
		if err != nil {
			return n, err
		}
		n.left = child
	case name > n.entry.Name:
		child, err := x.insert(n.right, name, number)
		if err != nil {
			return n, err
		}
		n.right = child
	default:
		return n, ErrDuplicateKey
	}

	n.updateHeight()

	// The new key tells which grandchild grew.
	bf := balanceFactor(n)
	switch {
	case bf > 1 && name < n.left.entry.Name:
		return rotateRight(n), nil
	case bf < -1 && name > n.right.entry.Name:
		return rotateLeft(n), nil
	case bf > 1 && name > n.left.entry.Name:
		// Left-Right case
		n.left = rotateLeft(n.left)
		return rotateRight(n), nil
	case bf < -1 && name < n.right.entry.Name:
		// Right-Left case
		n.right = rotateRight(n.right)
		return rotateLeft(n), nil
	}

	return n, nil
}

// Find returns the number stored under name.
func (x *Index) Find(name string) (string, bool) {
	n := x.root
	for n != nil {
		switch {
		case name < n.entry.Name:
			n = n.left
		case name > n.entry.Name:
			n = n.right
		default:
			return n.entry.Number, true
		}
	}
	return "", false
}

// Remove deletes name from the index, rebalancing every node on the path
// back to the root. It returns ErrNotFound if name is absent.
func (x *Index) Remove(name string) error {
	root, removed := x.remove(x.root, name)
	if !removed {
		return ErrNotFound
	}
	x.root = root
	x.size--
	return nil
}

func (x *Index) remove(n *node, name string) (*node, bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case name < n.entry.Name:
		n.left, removed = x.remove(n.left, name)
	case name > n.entry.Name:
		n.right, removed = x.remove(n.right, name)
	default:
		if n.left == nil || n.right == nil {
			child := n.left
			if child == nil {
				child = n.right
			}
			n.left, n.right = nil, nil
			return child, true
		}
		// Two children: take over the in-order successor's entry, then
		// drop the successor, which has no left child.
		succ := leftmost(n.right)
		n.entry = succ.entry
		n.right, removed = x.remove(n.right, succ.entry.Name)
	}

	if !removed {
		return n, false
	}

	n.updateHeight()
	return rebalance(n), true
}

// rebalance restores the AVL property at n after a removal. Unlike insert
// there is no key to steer by, so the heavier child's own balance decides
// between a single and a double rotation.
func rebalance(n *node) *node {
	bf := balanceFactor(n)

	// Left-heavy
	if bf > 1 {
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}

	// Right-heavy
	if bf < -1 {
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}

	return n
}

// All returns the entries in ascending name order. The sequence walks the
// live tree lazily and may be ranged over any number of times; it must not
// be consumed while the index is being modified.
func (x *Index) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		walk(x.root, yield)
	}
}

func walk(n *node, yield func(Entry) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, yield) && yield(n.entry) && walk(n.right, yield)
}

// ForEach calls visit for every entry in ascending name order.
func (x *Index) ForEach(visit func(Entry)) {
	for e := range x.All() {
		visit(e)
	}
}

// Clear releases every node, children before their parent, and leaves the
// index empty. Clearing an empty index does nothing.
func (x *Index) Clear() {
	release(x.root)
	x.root = nil
	x.size = 0
}

func release(n *node) {
	if n == nil {
		return
	}
	release(n.left)
	release(n.right)
	n.left, n.right = nil, nil
}
