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

type options struct {
	// The maximum number of entries the index may hold. Zero means unbounded.
	capacity int
}

func defaultOptions() *options {
	return &options{capacity: 0}
}

type Option interface {
	apply(*options)
}

type funcOption struct {
	fn func(*options)
}

func (funcOpt funcOption) apply(o *options) {
	funcOpt.fn(o)
}

func newFuncOption(fn func(*options)) *funcOption {
	return &funcOption{fn: fn}
}

// WithCapacity bounds the number of entries. Inserting into a full index
// fails with ErrAllocationFailure. A value <= 0 leaves the index unbounded.
func WithCapacity(capacity int) Option {
	return newFuncOption(func(o *options) {
		if capacity < 0 {
			capacity = 0
		}
		o.capacity = capacity
	})
}
