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

// Package index implements an AVL tree keyed by contact name. It keeps every
// node height balanced so that Insert, Find and Remove stay logarithmic in the
// number of stored entries.
//
// An Index is not safe for concurrent use. Callers that share one across
// goroutines must serialize Insert, Remove and Clear against each other and
// against any iteration in progress.
package index

import "github.com/pkg/errors"

var (
	// ErrDuplicateKey is returned by Insert when the name is already present.
	// The stored entry is left unchanged.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is returned by Remove when the name is absent.
	ErrNotFound = errors.New("key not found")

	// ErrAllocationFailure is returned by Insert when no node can be created
	// because the index has reached its capacity.
	ErrAllocationFailure = errors.New("node allocation failed")
)
