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

import "github.com/pkg/errors"

var (
	// ErrEmptyName is returned when a name is blank after trimming.
	ErrEmptyName = errors.New("name is empty")

	// ErrEmptyNumber is returned when a number is blank after trimming.
	ErrEmptyNumber = errors.New("number is empty")

	// ErrNameTooLong is returned when a name exceeds contacts.max_name_length.
	ErrNameTooLong = errors.New("name is too long")

	// ErrNumberTooLong is returned when a number exceeds contacts.max_number_length
	// and the number policy is "reject".
	ErrNumberTooLong = errors.New("number is too long")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid configuration")
)
