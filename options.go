// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package unrolled

import (
	"fmt"

	"go.uber.org/zap"
)

// RetirementPolicy defines when a drained boundary chunk is released.
type RetirementPolicy int

// Retirement policies.
const (
	// RetireLazy keeps a drained boundary chunk linked until the next removal
	// from the same end observes it empty.
	//
	// This avoids freeing and re-allocating a chunk when the list oscillates
	// around a chunk boundary.
	RetireLazy RetirementPolicy = iota
	// RetireImmediate releases a chunk as soon as it drains.
	RetireImmediate
)

// String implements fmt.Stringer.
func (p RetirementPolicy) String() string {
	switch p {
	case RetireLazy:
		return "lazy"
	case RetireImmediate:
		return "immediate"
	default:
		return fmt.Sprintf("RetirementPolicy(%d)", int(p))
	}
}

// Options defines settings for List.
type Options struct {
	Logger *zap.Logger

	ChunkCapacity int

	Retirement RetirementPolicy
}

// defaultOptions returns default initial values.
func defaultOptions() Options {
	return Options{
		ChunkCapacity: 8,
		Retirement:    RetireLazy,
		Logger:        zap.NewNop(),
	}
}

// OptionFunc allows setting List options.
type OptionFunc func(*Options) error

// WithChunkCapacity sets the number of element slots in each chunk.
//
// Capacity is fixed for the lifetime of the List.
func WithChunkCapacity(capacity int) OptionFunc {
	return func(opt *Options) error {
		if capacity <= 0 {
			return fmt.Errorf("chunk capacity should be positive: %d", capacity)
		}

		opt.ChunkCapacity = capacity

		return nil
	}
}

// WithRetirement sets the policy for releasing drained chunks.
//
// Default is RetireLazy.
func WithRetirement(policy RetirementPolicy) OptionFunc {
	return func(opt *Options) error {
		switch policy {
		case RetireLazy, RetireImmediate:
		default:
			return fmt.Errorf("unknown retirement policy: %s", policy)
		}

		opt.Retirement = policy

		return nil
	}
}

// WithLogger sets logger for List.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(opt *Options) error {
		if logger == nil {
			return fmt.Errorf("logger should be set")
		}

		opt.Logger = logger

		return nil
	}
}
